package ruledoc

// MissingDocumentation returns the paths of rules that lack the documentation
// rule, in order. Those fields are dropped by [Builder.Build].
//
// Use in tests to catch fields that were validated but never documented:
//
//	assert.Empty(t, ruledoc.MissingDocumentation(rules))
//	assert.Empty(t, ruledoc.MissingDocumentation(rules, "internal_flag"))
func MissingDocumentation(rules Ruleset, exclude ...string) []string {
	return missingDocumentation(rules, NewParser(), exclude)
}

// MissingDocumentationWith is like MissingDocumentation but honours a custom
// documentation rule name.
func MissingDocumentationWith(rules Ruleset, opts []Option, exclude ...string) []string {
	return missingDocumentation(rules, NewParser(opts...), exclude)
}

func missingDocumentation(rules Ruleset, p Parser, exclude []string) []string {
	excl := map[string]bool{}
	for _, e := range exclude {
		excl[e] = true
	}

	var missing []string
	for _, fr := range rules {
		if fr == nil || excl[fr.Path] {
			continue
		}
		if !documented(p, fr.Rules) {
			missing = append(missing, fr.Path)
		}
	}
	return missing
}

func documented(p Parser, rules []Rule) bool {
	for _, r := range Explode(rules) {
		if p.Parse(r).Name == p.documentationRule {
			return true
		}
	}
	return false
}
