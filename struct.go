package ruledoc

import "strings"

// FieldRules binds a field path to its ordered rules. A path is dot-separated
// and may contain "*" segments meaning every element of an array.
type FieldRules struct {
	Path  string
	Rules []Rule
}

// Ruleset is an ordered list of field rules.
type Ruleset []*FieldRules

// Field creates a FieldRules binding path to its rules.
func Field(path string, rules ...Rule) *FieldRules {
	return &FieldRules{
		Path:  path,
		Rules: rules,
	}
}

// Paths returns the field paths in order.
func (rs Ruleset) Paths() []string {
	paths := make([]string, 0, len(rs))
	for _, fr := range rs {
		if fr == nil {
			continue
		}
		paths = append(paths, fr.Path)
	}
	return paths
}

// Lookup returns the first FieldRules bound to path.
func (rs Ruleset) Lookup(path string) (*FieldRules, bool) {
	for _, fr := range rs {
		if fr != nil && fr.Path == path {
			return fr, true
		}
	}
	return nil, false
}

// Explode splits pipe-joined string rules into single rules, dropping blanks.
// A "regex:" pattern keeps any "|" it contains: the pattern runs to its closing
// delimiter (plus modifiers), and only a "|" after that starts the next rule.
// Patterns whose end cannot be found keep the rest of the string.
func Explode(rules []Rule) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		s, ok := r.(StringRule)
		if !ok {
			if r != nil {
				out = append(out, r)
			}
			continue
		}
		out = explodeString(out, string(s))
	}
	return out
}

func explodeString(out []Rule, s string) []Rule {
	for {
		s = strings.TrimLeft(s, " \t|")
		if s == "" {
			return out
		}
		if strings.HasPrefix(strings.ToLower(s), "regex:") {
			end := regexEnd(s)
			out = append(out, StringRule(strings.TrimSpace(s[:end])))
			s = s[end:]
			continue
		}
		part, rest, _ := strings.Cut(s, "|")
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, StringRule(part))
		}
		s = rest
	}
}

// regexEnd returns the index just past a "regex:/pattern/flags" rule at the
// start of s, or len(s) when the pattern does not end before a "|".
func regexEnd(s string) int {
	const prefix = len("regex:")
	if len(s) <= prefix {
		return len(s)
	}
	delim := s[prefix]
	if delim == '\\' || delim == ' ' || isAlnum(delim) {
		return len(s)
	}
	if closing, ok := map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}[delim]; ok {
		delim = closing
	}
	for i := prefix + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case delim:
			j := i + 1
			for j < len(s) && isAlnum(s[j]) {
				j++
			}
			if j == len(s) || s[j] == '|' {
				return j
			}
		}
	}
	return len(s)
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
