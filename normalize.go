package ruledoc

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Normalizer resolves a raw ruleset into per-path rule lists with wildcard
// notation restored.
//
// Resolvers commonly skip "list.*" and "list.*.field" unless list exists in
// the data being validated, so the Normalizer hands them throwaway sample
// data containing one element per array.
type Normalizer struct {
	resolver    Resolver
	placeholder func() string
}

// NewNormalizer returns a Normalizer backed by resolver.
func NewNormalizer(resolver Resolver) *Normalizer {
	return &Normalizer{
		resolver:    resolver,
		placeholder: uuid.NewString,
	}
}

// Normalize resolves rules. It fails with [ErrNoResolver] when no resolver
// is configured and wraps resolver failures with [ErrResolve].
func (n *Normalizer) Normalize(rules Ruleset) (Ruleset, error) {
	if n == nil || n.resolver == nil {
		return nil, ErrNoResolver
	}

	resolved, err := n.resolver.Resolve(n.SampleData(rules), rules)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolve, err)
	}

	original := make(map[string]bool, len(rules))
	for _, path := range rules.Paths() {
		original[path] = true
	}

	out := make(Ruleset, 0, len(resolved))
	index := make(map[string]int, len(resolved))
	for _, fr := range resolved {
		if fr == nil {
			continue
		}
		path := fr.Path
		if strings.Contains(path, ".0") {
			// Only paths the caller wrote with a wildcard go back to it;
			// explicitly indexed paths stay as they are.
			if generic := strings.ReplaceAll(path, ".0", ".*"); original[generic] {
				path = generic
			}
		}
		if i, ok := index[path]; ok {
			out[i] = Field(path, fr.Rules...)
			continue
		}
		index[path] = len(out)
		out = append(out, Field(path, fr.Rules...))
	}
	return out, nil
}

// SampleData builds data under which every wildcard path of rules exists:
// "ids.*" gets ids: [placeholder] and "users.*.name" gets
// users: [{name: placeholder}]. Only one level of ".*." is honoured.
func (n *Normalizer) SampleData(rules Ruleset) map[string]any {
	data := map[string]any{}
	for _, path := range rules.Paths() {
		if !strings.Contains(path, "*") {
			continue
		}
		switch {
		case strings.HasSuffix(path, ".*"):
			setPath(data, strings.TrimSuffix(path, ".*"), []any{n.placeholder()})
		case strings.Contains(path, ".*."):
			parts := strings.Split(path, ".*.")
			setPath(data, parts[0], []any{map[string]any{parts[1]: n.placeholder()}})
		}
	}
	return data
}

// setPath stores value at a dotted path, creating intermediate maps.
func setPath(data map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	cur := data
	for _, seg := range segments[:len(segments)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[seg] = next
		}
		cur = next
	}
	cur[segments[len(segments)-1]] = value
}
