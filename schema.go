package ruledoc

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Schema returns an OpenAPI property schema for p: its type, description and
// example. File parameters become binary strings and arrays hold strings.
// Required-ness belongs to the enclosing object and is left to the caller.
func (p Parameter) Schema() *openapi3.Schema {
	var schema *openapi3.Schema
	switch p.Type {
	case TypeFile:
		schema = openapi3.NewStringSchema().WithFormat("binary")
	case TypeArray:
		schema = openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
	case TypeInteger:
		schema = openapi3.NewIntegerSchema()
	case TypeNumber:
		schema = openapi3.NewFloat64Schema()
	case TypeBoolean:
		schema = openapi3.NewBoolSchema()
	default:
		schema = openapi3.NewStringSchema()
	}
	schema.Description = p.Description
	if v, ok := p.Value.Get(); ok {
		schema.Example = v
	} else if p.Value.IsNull() {
		schema.Nullable = true
	}
	return schema
}
