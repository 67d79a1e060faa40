package ruledoc

import "encoding/json"

type valueState uint8

const (
	absent valueState = iota
	null
	present
)

// Value is an example value that may be absent, an explicit null, or set.
// The zero Value is absent.
type Value struct {
	v     any
	state valueState
}

// Some returns a Value holding v. A nil v is still a present value; use
// [Null] for an explicit null.
func Some(v any) Value {
	return Value{v: v, state: present}
}

// Null returns an explicit null Value.
func Null() Value {
	return Value{state: null}
}

// IsAbsent reports whether no value was produced.
func (v Value) IsAbsent() bool {
	return v.state == absent
}

// IsNull reports whether v is an explicit null.
func (v Value) IsNull() bool {
	return v.state == null
}

// Get returns the held value and true when v is neither absent nor null.
func (v Value) Get() (any, bool) {
	if v.state != present {
		return nil, false
	}
	return v.v, true
}

// MarshalJSON encodes null and absent values as JSON null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.state != present {
		return []byte("null"), nil
	}
	return json.Marshal(v.v)
}
