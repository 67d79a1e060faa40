package ruledoc

import "strings"

func inEffect(args []string, r *Reducer) change {
	c := change{fragment: "The value must be one of " + friendlyList(args)}
	if len(args) > 0 {
		c.value = Some(r.synth.Element(args))
	}
	return c
}

// friendlyList renders values as "`a`, `b`, or `c`".
func friendlyList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "`" + v + "`"
	}
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " or " + quoted[1]
	default:
		return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
	}
}
