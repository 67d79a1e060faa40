package ruledoc

import (
	"encoding/csv"
	"strings"
	"unicode"
)

// Parser splits rules into a name and arguments.
type Parser struct {
	documentationRule string
	delimiter         string
}

// NewParser returns a Parser honouring [WithDocumentationRule] and [WithDelimiter].
func NewParser(opts ...Option) Parser {
	return newParser(buildOptions(opts))
}

func newParser(o options) Parser {
	return Parser{
		documentationRule: strings.ToLower(o.documentationRule),
		delimiter:         o.delimiter,
	}
}

// Parse parses r with the default documentation rule name and delimiter.
func Parse(r Rule) ParsedRule {
	return NewParser().Parse(r)
}

// Parse splits one rule into its name and arguments. It never fails: rules it
// cannot make sense of come back with a name no effect recognizes.
func (p Parser) Parse(r Rule) ParsedRule {
	switch r := r.(type) {
	case StructuredRule:
		return ParsedRule{Name: shortTypeName(r.TypeName), Args: []string{}}
	case StringRule:
		return p.parseString(string(r))
	default:
		return ParsedRule{Args: []string{}}
	}
}

func (p Parser) parseString(raw string) ParsedRule {
	name, argsText, ok := strings.Cut(raw, ":")
	if !ok {
		return ParsedRule{Name: strings.ToLower(strings.TrimSpace(raw)), Args: []string{}}
	}
	name = strings.ToLower(strings.TrimSpace(name))

	var args []string
	switch name {
	case "regex", "date", "date_format":
		// Commas belong to the argument.
		args = []string{argsText}
	case p.documentationRule:
		args = p.splitDocumentation(argsText)
	default:
		args = splitCSV(argsText)
	}
	return ParsedRule{Name: name, Args: args}
}

// splitDocumentation always yields a description and a value slot. Without the
// delimiter, a last comma followed by a single token with no whitespace marks
// the example, so "Age,25" still carries one while "Age, in years" stays a
// description. Anything else needs the delimiter.
func (p Parser) splitDocumentation(text string) []string {
	if desc, value, ok := strings.Cut(text, p.delimiter); ok {
		return []string{desc, value}
	}
	if i := strings.LastIndex(text, ","); i >= 0 {
		if tail := text[i+1:]; tail != "" && !strings.ContainsFunc(tail, unicode.IsSpace) {
			return []string{text[:i], tail}
		}
	}
	return []string{text, ""}
}

func splitCSV(text string) []string {
	if text == "" {
		return []string{""}
	}
	r := csv.NewReader(strings.NewReader(text))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	record, err := r.Read()
	if err != nil {
		return strings.Split(text, ",")
	}
	return record
}

// shortTypeName drops any package or namespace qualifier.
func shortTypeName(name string) string {
	name = strings.TrimSpace(strings.TrimPrefix(name, "*"))
	if i := strings.LastIndexAny(name, `.\/`); i >= 0 {
		name = name[i+1:]
	}
	return name
}
