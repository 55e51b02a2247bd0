// Package atomcss compiles utility classes into CSS for Go/templ projects.
//
// A Compiler turns tokens such as "p-4", "md:hover:bg-primary" or
// "w-[calc(100%_-_1rem)]" into CSS declarations, collapses conflicting
// classes into one canonical class string and resolves design tokens.
//
// # Compiling
//
//	c, err := atomcss.NewCompiler(atomcss.CompilerOptions{})
//	css := c.CSS("p-2", "sm:p-4", "lg:p-8")
//	class := c.Merge("px-2 py-1 bg-red-500", "bg-blue-500")
//	// class == "px-2 py-1 bg-blue-500"
//
// # Generation
//
// Scan templates and write one stylesheet with every utility they use:
//
//	result, err := atomcss.Generate(atomcss.Config{
//		SourcePaths: []string{"internal/web/**/*.templ"},
//		OutputFile:  "web/static/atoms.css",
//	})
//
// # Linting
//
// Report conflicting utilities in one class string, unknown utilities and
// broken design tokens:
//
//	result, err := atomcss.Lint(atomcss.LintConfig{
//		ScanPaths: []string{"internal/web/**/*.templ"},
//	})
//
// # CLI Tool
//
//	go install github.com/yacobolo/atomcss/cmd/atomcss@latest
package atomcss
