package ruledoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplode(t *testing.T) {
	got := Explode([]Rule{
		StringRule("required| integer |"),
		StructuredRule{TypeName: "Password"},
		nil,
		StringRule(""),
		StringRule("regex:/^(a|b)$/"),
		StringRule("in:a,b"),
	})
	assert.Equal(t, []Rule{
		StringRule("required"),
		StringRule("integer"),
		StructuredRule{TypeName: "Password"},
		StringRule("regex:/^(a|b)$/"),
		StringRule("in:a,b"),
	}, got)
}

func TestRuleset_Lookup(t *testing.T) {
	rs := Ruleset{nil, Field("a", StringRule("x")), Field("a", StringRule("y")), Field("b")}

	fr, ok := rs.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, []Rule{StringRule("x")}, fr.Rules)

	_, ok = rs.Lookup("c")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "a", "b"}, rs.Paths())
}

func TestExplode_Regex(t *testing.T) {
	tests := []struct {
		in   string
		want []Rule
	}{
		{"regex:/^(a|b)$/", []Rule{StringRule("regex:/^(a|b)$/")}},
		{"regex:/^a$/|documentation:X", []Rule{StringRule("regex:/^a$/"), StringRule("documentation:X")}},
		{"required|regex:/a|b/i|string", []Rule{StringRule("required"), StringRule("regex:/a|b/i"), StringRule("string")}},
		{"regex:/a/b/|max:3", []Rule{StringRule("regex:/a/b/"), StringRule("max:3")}},
		{`regex:/a\/|b/|string`, []Rule{StringRule(`regex:/a\/|b/`), StringRule("string")}},
		{"regex:{a|b}|string", []Rule{StringRule("regex:{a|b}"), StringRule("string")}},
		{"regex:/unterminated|string", []Rule{StringRule("regex:/unterminated|string")}},
		{"regex:", []Rule{StringRule("regex:")}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Explode([]Rule{StringRule(tt.in)}))
		})
	}
}
