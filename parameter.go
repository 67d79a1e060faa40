package ruledoc

import (
	"bytes"
	"encoding/json"
)

// Parameter documents one body field. It is encoded without its name, which
// keys it within [Parameters].
type Parameter struct {
	Name        string `json:"-"`
	Required    bool   `json:"required"`
	Type        string `json:"type"`
	Value       Value  `json:"value"`
	Description string `json:"description"`
}

// MarshalJSON omits the value when none was produced.
func (p Parameter) MarshalJSON() ([]byte, error) {
	type out struct {
		Required    bool   `json:"required"`
		Type        string `json:"type"`
		Value       *Value `json:"value,omitempty"`
		Description string `json:"description"`
	}
	o := out{Required: p.Required, Type: p.Type, Description: p.Description}
	if !p.Value.IsAbsent() {
		o.Value = &p.Value
	}
	return json.Marshal(o)
}

// Parameters is an ordered list of documented fields.
type Parameters []Parameter

// Lookup returns the parameter named name.
func (ps Parameters) Lookup(name string) (Parameter, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// Names returns the parameter names in order.
func (ps Parameters) Names() []string {
	names := make([]string, len(ps))
	for i := range ps {
		names[i] = ps[i].Name
	}
	return names
}

// MarshalJSON encodes ps as an object keyed by field path, in order.
func (ps Parameters) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range ps {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
