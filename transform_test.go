package ruledoc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		in   any
		typ  string
		want any
	}{
		{"25", TypeInteger, 25},
		{" 25 ", TypeInteger, 25},
		{"025", TypeInteger, 25},
		{"2.9", TypeInteger, 2},
		{"+12", TypeInteger, 12},
		{"-7", TypeInteger, -7},
		{"9007199254740993", TypeInteger, 9007199254740993},
		{"99999999999999999999", TypeInteger, math.MaxInt},
		{"-99999999999999999999", TypeInteger, math.MinInt},
		{"1e300", TypeInteger, math.MaxInt},
		{"-1e300", TypeInteger, math.MinInt},
		{"NaN", TypeInteger, 0},
		{int64(9007199254740993), TypeInteger, 9007199254740993},
		{"abc", TypeInteger, 0},
		{"", TypeInteger, 0},
		{7, TypeInteger, 7},
		{true, TypeInteger, 1},
		{"0.25", TypeNumber, 0.25},
		{"1e3", TypeNumber, 1000.0},
		{3, TypeNumber, 3.0},
		{"nope", TypeNumber, 0.0},
		{"true", TypeBoolean, true},
		{"false", TypeBoolean, false},
		{"0", TypeBoolean, false},
		{"1", TypeBoolean, true},
		{"no", TypeBoolean, false},
		{"yes", TypeBoolean, true},
		{"", TypeBoolean, false},
		{0, TypeBoolean, false},
		{2.5, TypeBoolean, true},
		{"a,b", TypeArray, []string{"a", "b"}},
		{" a , b ", TypeArray, []string{"a", "b"}},
		{`["x", 1]`, TypeArray, []string{"x", "1"}},
		{"", TypeArray, []string{}},
		{[]string{"z"}, TypeArray, []string{"z"}},
		{[]any{"z", 2}, TypeArray, []string{"z", "2"}},
		{"solo", TypeArray, []string{"solo"}},
		{12, TypeString, "12"},
		{"text", TypeString, "text"},
		{"report.pdf", TypeFile, "report.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Coerce(tt.in, tt.typ), "%#v as %s", tt.in, tt.typ)
	}
}
