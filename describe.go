package ruledoc

import "strings"

// ComposeDescription puts the author-supplied description ahead of the
// rule-derived one and ends a non-empty result with exactly one full stop.
func ComposeDescription(override, accumulated string) string {
	full := strings.TrimSpace(strings.TrimSpace(override) + " " + strings.TrimSpace(accumulated))
	if full == "" {
		return ""
	}
	return strings.TrimRight(full, ".") + "."
}

// appendFragment adds a rule description to desc, keeping one space between
// fragments.
func appendFragment(desc, fragment string) string {
	if fragment == "" {
		return desc
	}
	if desc != "" && !strings.HasSuffix(desc, " ") {
		desc += " "
	}
	return desc + fragment + " "
}
