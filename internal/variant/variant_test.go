package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		wantVariants []string
		wantBase     string
	}{
		{name: "bare utility", token: "p-4", wantVariants: nil, wantBase: "p-4"},
		{name: "single variant", token: "hover:bg-red-500", wantVariants: []string{"hover"}, wantBase: "bg-red-500"},
		{name: "chained variants", token: "md:dark:hover:p-2", wantVariants: []string{"md", "dark", "hover"}, wantBase: "p-2"},
		{name: "colon inside brackets", token: "bg-[url(https://x.io/a.png)]", wantVariants: nil, wantBase: "bg-[url(https://x.io/a.png)]"},
		{name: "variant and bracket colon", token: "sm:content-[a:b]", wantVariants: []string{"sm"}, wantBase: "content-[a:b]"},
		{name: "trailing colon", token: "hover:", wantVariants: []string{"hover"}, wantBase: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variants, base := Split(tt.token)
			assert.Equal(t, tt.wantVariants, variants)
			assert.Equal(t, tt.wantBase, base)
		})
	}
}

func TestSplitKnown(t *testing.T) {
	tests := []struct {
		token      string
		wantPrefix string
		wantStem   string
	}{
		{token: "p-4", wantPrefix: "", wantStem: "p-4"},
		{token: "hover:p-4", wantPrefix: "hover:", wantStem: "p-4"},
		{token: "lg:dark:focus:bg-blue-500", wantPrefix: "lg:dark:focus:", wantStem: "bg-blue-500"},
		{token: "group-hover:p-4", wantPrefix: "", wantStem: "group-hover:p-4"},
		{token: "md:group-hover:p-4", wantPrefix: "md:", wantStem: "group-hover:p-4"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			prefix, stem := SplitKnown(tt.token)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.wantStem, stem)
		})
	}
}

func TestBreakpointsAscending(t *testing.T) {
	bps := Breakpoints()
	require.Len(t, bps, 5)
	for i, bp := range bps {
		assert.Equal(t, i+1, bp.Order, bp.Name)
		assert.Equal(t, Breakpoint, bp.Kind)
	}

	// Returned slice is a copy.
	bps[0].MinWidth = "1px"
	v, ok := Lookup("sm")
	require.True(t, ok)
	assert.Equal(t, "640px", v.MinWidth)
}

func TestLookup(t *testing.T) {
	v, ok := Lookup("dark")
	require.True(t, ok)
	assert.Equal(t, Dark, v.Kind)

	v, ok = Lookup("disabled")
	require.True(t, ok)
	assert.Equal(t, Pseudo, v.Kind)

	_, ok = Lookup("visited")
	assert.False(t, ok)
}
