package ruledoc

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

func newTestReducer(opts ...Option) *Reducer {
	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	return NewReducer(StubSynthesizer{}, opts...)
}

func stringRules(rules ...string) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = StringRule(r)
	}
	return out
}

func TestReduce_VisibilityGate(t *testing.T) {
	r := newTestReducer()
	for _, rules := range [][]string{
		nil,
		{"required"},
		{"required", "email"},
		{"sometimes", "string"},
		{"in:a,b", "integer"},
	} {
		_, ok := r.Reduce("field", stringRules(rules...))
		assert.False(t, ok, "%v", rules)
	}
}

func TestReduce_DocumentedAge(t *testing.T) {
	r := newTestReducer()

	p, ok := r.Reduce("age", stringRules("documentation:The user's age,25", "required", "integer"))
	require.True(t, ok)

	assert.Equal(t, Parameter{
		Name:        "age",
		Required:    true,
		Type:        TypeInteger,
		Value:       Some(25),
		Description: "The user's age.",
	}, p)
}

func TestReduce_Effects(t *testing.T) {
	tests := []struct {
		rule  Rule
		typ   string
		value Value
		desc  string
	}{
		{StringRule("bool"), TypeBoolean, Some(true), ""},
		{StringRule("boolean"), TypeBoolean, Some(true), ""},
		{StringRule("string"), TypeString, Some("word"), ""},
		{StringRule("int"), TypeInteger, Some(7), ""},
		{StringRule("integer"), TypeInteger, Some(7), ""},
		{StringRule("numeric"), TypeNumber, Some(3.5), ""},
		{StringRule("array"), TypeArray, Some([]string{"word"}), ""},
		{StringRule("file"), TypeFile, Value{}, ""},
		{StringRule("image"), TypeFile, Value{}, "The value must be an image."},
		{StringRule("timezone"), TypeString, Some("Africa/Accra"), "The value must be a valid time zone, such as `Africa/Accra`."},
		{StringRule("email"), TypeString, Some("user@example.com"), "The value must be a valid email address."},
		{StringRule("url"), TypeString, Some("https://example.com/docs"), "The value must be a valid URL."},
		{StringRule("ip"), TypeString, Some("192.0.2.1"), "The value must be a valid IP address."},
		{StringRule("json"), TypeString, Some(`["word","word"]`), "The value must be a valid JSON string."},
		{StringRule("date"), TypeString, Some("2024-03-05T14:07:09+0000"), "The value must be a valid date."},
		{StringRule("date_format:Y-m-d"), TypeString, Some("2024-03-05"), "The value must be a valid date in the format Y-m-d."},
		{StringRule("date_format:"), TypeString, Some(""), "The value must be a valid date in the format."},
		{StringRule("in:red,green,blue"), TypeString, Some("blue"), "The value must be one of `red`, `green`, or `blue`."},
		{StringRule("in:only"), TypeString, Some("only"), "The value must be one of `only`."},
		{StringRule("min:3"), TypeString, Value{}, ""},
		{StringRule("between:1,9"), TypeString, Value{}, ""},
		{StringRule("sometimes"), TypeString, Value{}, ""},
		{StringRule("no such rule:x,y"), TypeString, Value{}, ""},
		{StructuredRule{TypeName: "Password"}, TypeString, Value{}, ""},
	}
	r := newTestReducer()
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.rule), func(t *testing.T) {
			p, ok := r.Reduce("f", []Rule{StringRule("documentation:"), tt.rule})
			require.True(t, ok)
			assert.Equal(t, tt.typ, p.Type)
			assert.Equal(t, tt.value, p.Value)
			assert.Equal(t, tt.desc, p.Description)
			assert.False(t, p.Required)
		})
	}
}

func permutations(rules []string) [][]string {
	if len(rules) <= 1 {
		return [][]string{append([]string(nil), rules...)}
	}
	var out [][]string
	for i := range rules {
		rest := append(append([]string(nil), rules[:i]...), rules[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]string{rules[i]}, p...))
		}
	}
	return out
}

func TestReduce_OrderIndependent(t *testing.T) {
	typeRules := []string{"bool", "string", "integer", "numeric", "array", "file", "image", "email", "url", "ip", "json", "date", "date_format:d/m/Y", "in:a,b"}
	r := newTestReducer()
	for _, typeRule := range typeRules {
		perms := permutations([]string{"documentation:Doc", "required", typeRule})
		want, ok := r.Reduce("f", stringRules(perms[0]...))
		require.True(t, ok)
		for _, perm := range perms[1:] {
			got, ok := r.Reduce("f", stringRules(perm...))
			require.True(t, ok)
			assert.Equal(t, want.Type, got.Type, "%v", perm)
			assert.Equal(t, want.Value, got.Value, "%v", perm)
			assert.Equal(t, want.Required, got.Required, "%v", perm)
			assert.Equal(t, want.Description, got.Description, "%v", perm)
		}
	}
}

func TestReduce_RequiredSynthesizesValue(t *testing.T) {
	r := newTestReducer()
	tests := []struct {
		rules []string
		typ   string
		value any
	}{
		{[]string{"documentation:Name", "required"}, TypeString, "word"},
		{[]string{"documentation:Upload", "required", "file"}, TypeFile, "word.pdf"},
		{[]string{"documentation:Avatar", "required", "image"}, TypeFile, "word.pdf"},
		{[]string{"documentation:Zone", "required", "timezone"}, TypeString, "Africa/Accra"},
	}
	for _, tt := range tests {
		p, ok := r.Reduce("f", stringRules(tt.rules...))
		require.True(t, ok)
		assert.True(t, p.Required)
		assert.Equal(t, tt.typ, p.Type)
		assert.Equal(t, Some(tt.value), p.Value, "%v", tt.rules)
		assert.NoError(t, p.Validate())
	}
}

func TestReduce_ExplicitValueWins(t *testing.T) {
	r := newTestReducer()

	p, ok := r.Reduce("flag", stringRules("boolean", "documentation:Whether to notify,false"))
	require.True(t, ok)
	assert.Equal(t, Some(false), p.Value)

	p, ok = r.Reduce("ratio", stringRules("numeric", "required", "documentation:A ratio::0.25"))
	require.True(t, ok)
	assert.Equal(t, Some(0.25), p.Value)

	p, ok = r.Reduce("tags", stringRules("documentation:Tags::a, b", "array"))
	require.True(t, ok)
	assert.Equal(t, Some([]string{"a", "b"}), p.Value)

	p, ok = r.Reduce("color", stringRules("documentation:Color::teal", "in:red,green"))
	require.True(t, ok)
	assert.Equal(t, Some("teal"), p.Value)
}

func TestReduce_DescriptionOrder(t *testing.T) {
	r := newTestReducer()

	p, ok := r.Reduce("contact", stringRules("email", "in:a@x.io", "documentation:Contact address"))
	require.True(t, ok)
	assert.Equal(t, "Contact address The value must be a valid email address. The value must be one of `a@x.io`.", p.Description)

	p, ok = r.Reduce("contact", stringRules("in:a@x.io", "documentation:Contact address", "email"))
	require.True(t, ok)
	assert.Equal(t, "Contact address The value must be one of `a@x.io` The value must be a valid email address.", p.Description)
}

func TestReduce_LastDocumentationRuleWins(t *testing.T) {
	r := newTestReducer()

	p, ok := r.Reduce("f", stringRules("documentation:First,1", "integer", "documentation:Second"))
	require.True(t, ok)
	assert.Equal(t, "Second.", p.Description)
	assert.Equal(t, Some(7), p.Value)
}

func TestReduce_CustomDocumentationRule(t *testing.T) {
	r := newTestReducer(WithDocumentationRule("bodyParam"))

	_, ok := r.Reduce("f", stringRules("documentation:Ignored", "integer"))
	assert.False(t, ok)

	p, ok := r.Reduce("f", stringRules("bodyParam:Counted,3", "integer"))
	require.True(t, ok)
	assert.Equal(t, Some(3), p.Value)
}

func TestReduce_LargeIntegerExample(t *testing.T) {
	r := newTestReducer()

	p, ok := r.Reduce("id", stringRules("documentation:Id::9007199254740993", "integer"))
	require.True(t, ok)
	assert.Equal(t, Some(9007199254740993), p.Value)

	p, ok = r.Reduce("id", stringRules("documentation:Id::99999999999999999999", "integer"))
	require.True(t, ok)
	assert.Equal(t, Some(math.MaxInt), p.Value)
}
