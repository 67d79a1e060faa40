// Package resolve provides a reference [ruledoc.Resolver] that reports
// effective rules the way Laravel's validator does: pipe-joined rule strings
// are exploded and wildcard paths are expanded against the data.
package resolve

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Gobd/ruledoc"
)

// Resolver expands rulesets against data. The zero value is ready to use.
type Resolver struct{}

// New returns a Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Resolve explodes every field's rules and expands wildcard paths into the
// concrete indexes present in data. A wildcard with nothing to iterate yields
// no path. Paths appearing more than once have their rules merged in order.
func (r *Resolver) Resolve(data map[string]any, rules ruledoc.Ruleset) (ruledoc.Ruleset, error) {
	out := ruledoc.Ruleset{}
	index := map[string]int{}

	for i, fr := range rules {
		if fr == nil {
			continue
		}
		if err := validation.Validate(fr.Path, validation.Required); err != nil {
			return nil, fmt.Errorf("field %d: path %w", i, err)
		}

		exploded := ruledoc.Explode(fr.Rules)
		paths := []string{fr.Path}
		if strings.Contains(fr.Path, "*") {
			paths = Expand(data, fr.Path)
		}

		for _, path := range paths {
			if j, ok := index[path]; ok {
				out[j].Rules = append(out[j].Rules, exploded...)
				continue
			}
			index[path] = len(out)
			out = append(out, ruledoc.Field(path, append([]ruledoc.Rule(nil), exploded...)...))
		}
	}
	return out, nil
}

// Expand returns the concrete paths matching a wildcard pattern in data.
// Each "*" iterates the elements of the array (or the keys of the map) found
// at that point; the remaining segments need not exist.
func Expand(data map[string]any, pattern string) []string {
	return expand(data, strings.Split(pattern, "."), nil)
}

func expand(node any, segments, prefix []string) []string {
	if len(segments) == 0 {
		return []string{strings.Join(prefix, ".")}
	}
	seg, rest := segments[0], segments[1:]

	if seg != "*" {
		return expand(child(node, seg), rest, extend(prefix, seg))
	}

	var out []string
	for _, key := range keys(node) {
		out = append(out, expand(child(node, key), rest, extend(prefix, key))...)
	}
	return out
}

func extend(prefix []string, seg string) []string {
	return append(append(make([]string, 0, len(prefix)+1), prefix...), seg)
}

// keys lists the element keys of a slice or map node in a stable order.
func keys(node any) []string {
	rv := reflect.ValueOf(node)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]string, rv.Len())
		for i := range rv.Len() {
			out[i] = strconv.Itoa(i)
		}
		return out
	case reflect.Map:
		out := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			out = append(out, fmt.Sprint(k.Interface()))
		}
		sort.Strings(out)
		return out
	}
	return nil
}

func child(node any, key string) any {
	rv := reflect.ValueOf(node)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil
		}
		return v.Interface()
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil
		}
		return rv.Index(i).Interface()
	}
	return nil
}
