package engine

import "strings"

// Declaration is the compiled form of one token: a selector, its ordered
// properties and the at-rules wrapping it (outermost first). Declarations
// are shared through the engine cache and must not be modified.
type Declaration struct {
	Token      string
	Selector   string
	Properties []Property
	AtRules    []string
	Breakpoint int // 0 when unwrapped, else the largest breakpoint order
}

// CSS renders the declaration as a block, nested inside its at-rules.
func (d *Declaration) CSS() string {
	var b strings.Builder
	d.write(&b)
	return b.String()
}

func (d *Declaration) write(b *strings.Builder) {
	depth := 0
	for _, at := range d.AtRules {
		indent(b, depth)
		b.WriteString(at)
		b.WriteString(" {\n")
		depth++
	}

	indent(b, depth)
	b.WriteString(d.Selector)
	b.WriteString(" {\n")
	for _, p := range d.Properties {
		indent(b, depth+1)
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
		b.WriteString(";\n")
	}
	indent(b, depth)
	b.WriteString("}\n")

	for depth > 0 {
		depth--
		indent(b, depth)
		b.WriteString("}\n")
	}
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

// Render concatenates the CSS of decls in order.
func Render(decls []*Declaration) string {
	var b strings.Builder
	for _, d := range decls {
		d.write(&b)
	}
	return b.String()
}
