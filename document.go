package ruledoc

import "github.com/getkin/kin-openapi/openapi3"

type (
	// Rule is one rule attached to a field: a [StringRule] or a [StructuredRule].
	Rule interface {
		rule()
	}

	// StringRule is a textual rule such as "max:3" or "in:a,b". In a raw
	// ruleset it may hold several rules joined by "|".
	StringRule string

	// StructuredRule stands in for an opaque rule object. Only its type name
	// survives; it carries no arguments.
	StructuredRule struct {
		TypeName string
	}

	// ParsedRule is a rule split into its lowercase name and its arguments.
	ParsedRule struct {
		Name string
		Args []string
	}

	// Resolver reports the effective rules of a ruleset against sample data,
	// the way the host validation engine does. Wildcard paths come back with
	// every "*" replaced by a concrete index.
	Resolver interface {
		Resolve(data map[string]any, rules Ruleset) (Ruleset, error)
	}

	// ResolverFunc adapts a function to [Resolver].
	ResolverFunc func(data map[string]any, rules Ruleset) (Ruleset, error)
)

func (StringRule) rule()     {}
func (StructuredRule) rule() {}

// Resolve calls f.
func (f ResolverFunc) Resolve(data map[string]any, rules Ruleset) (Ruleset, error) {
	return f(data, rules)
}

// Semantic types shared by type inference and value coercion. They match the
// OpenAPI primitive names except for file uploads.
const (
	TypeString  = openapi3.TypeString
	TypeInteger = openapi3.TypeInteger
	TypeNumber  = openapi3.TypeNumber
	TypeBoolean = openapi3.TypeBoolean
	TypeArray   = openapi3.TypeArray
	TypeFile    = "file"
)
