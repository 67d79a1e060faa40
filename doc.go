// Package ruledoc infers documented body parameters from declarative,
// Laravel-style validation rules.
//
// A ruleset maps field paths to rules:
//
//	rs := ruledoc.Ruleset{
//	    ruledoc.Field("age", ruledoc.StringRule("documentation:The user's age,25|required|integer")),
//	    ruledoc.Field("ids.*", ruledoc.StringRule("documentation:Tag ids|integer")),
//	}
//
// [Builder.Build] normalizes wildcard paths through a [Resolver], folds every
// field's rules into a descriptor and returns the visible [Parameters]:
//
//	b := ruledoc.New(resolve.New(), fake.New(0))
//	params, err := b.Build(rs)
//
// Only fields carrying the documentation rule are emitted. Its arguments are
// a description and an optional example value, separated by "::". Without
// "::", a last comma followed by one token with no whitespace also separates
// them, so "The user's age,25" has the example 25 while "The user's age, in
// years" is all description. Descriptions like "Name,Ada" need "::" when the
// comma belongs to the text.
//
// A pipe-joined string may carry a "regex:" rule. The pattern ends at its
// closing delimiter and rules after the next "|" are read as usual.
//
// Sub-packages:
//   - resolve: reference Resolver exploding pipe-joined rules and expanding wildcards
//   - fake: gofakeit-backed Synthesizer
package ruledoc
