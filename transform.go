package ruledoc

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
)

// Coerce converts an example value to the native representation of typ.
// Examples written by authors arrive as text, so "25" becomes 25 for an
// integer and "a,b" becomes []string{"a", "b"} for an array. Text that does
// not convert yields the type's zero value.
func Coerce(v any, typ string) any {
	switch typ {
	case TypeString:
		if s, ok := v.(string); ok {
			return s
		}
		return govalidator.ToString(v)
	case TypeInteger:
		return toInt(v)
	case TypeNumber:
		return toFloat(v)
	case TypeBoolean:
		return toBool(v)
	case TypeArray:
		return toStrings(v)
	default:
		return v
	}
}

// toInt parses decimal text exactly and clamps anything out of range.
func toInt(v any) int {
	switch v := v.(type) {
	case int:
		return v
	case int64:
		switch {
		case v > math.MaxInt:
			return math.MaxInt
		case v < math.MinInt:
			return math.MinInt
		}
		return int(v)
	case string:
		s := strings.TrimSpace(v)
		n, err := strconv.ParseInt(s, 10, strconv.IntSize)
		if err == nil {
			return int(n)
		}
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(s, "-") {
				return math.MinInt
			}
			return math.MaxInt
		}
	}
	return clampInt(toFloat(v))
}

func clampInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= float64(math.MaxInt):
		return math.MaxInt
	case f <= float64(math.MinInt):
		return math.MinInt
	}
	return int(f)
}

func toFloat(v any) float64 {
	switch v := v.(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return 0
		}
		f, err := govalidator.ToFloat(v)
		if err != nil {
			return 0
		}
		return f
	}
	f, err := govalidator.ToFloat(v)
	if err != nil {
		return 0
	}
	return f
}

func toBool(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case string:
		s := strings.TrimSpace(v)
		if b, err := govalidator.ToBoolean(s); err == nil {
			return b
		}
		switch strings.ToLower(s) {
		case "", "no", "off", "null":
			return false
		}
		return true
	}
	return toFloat(v) != 0
}

func toStrings(v any) []string {
	switch v := v.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, len(v))
		for i := range v {
			out[i] = govalidator.ToString(v[i])
		}
		return out
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return []string{}
		}
		if strings.HasPrefix(s, "[") {
			var items []any
			if err := json.Unmarshal([]byte(s), &items); err == nil {
				return toStrings(items)
			}
		}
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return []string{govalidator.ToString(v)}
}
