package ruledoc

import (
	"time"

	"go.uber.org/zap"
)

// descriptor is the fold state for one field. It only changes through
// apply, so an effect can never observe what earlier rules did.
type descriptor struct {
	required            bool
	typ                 string
	value               Value
	description         string
	visible             bool
	overrideValue       Value
	overrideDescription string
}

// change is what one rule contributes. Zero fields leave the descriptor as is.
type change struct {
	typ      string
	value    Value
	required bool
	fragment string
	document *documentation
}

type documentation struct {
	description string
	value       Value
}

func (d descriptor) apply(c change) descriptor {
	if c.required {
		d.required = true
	}
	if c.typ != "" {
		d.typ = c.typ
	}
	if !c.value.IsAbsent() {
		d.value = c.value
	}
	d.description = appendFragment(d.description, c.fragment)
	if c.document != nil {
		d.overrideDescription = c.document.description
		d.overrideValue = c.document.value
		d.visible = true
	}
	return d
}

// effect maps a rule's arguments to its change.
type effect func(args []string, r *Reducer) change

// effects lists the supported rules. Every rule here must be one a dummy
// value can be synthesized for; min, max and between stay out because their
// meaning depends on the field's type.
var effects = map[string]effect{
	"required":    requiredEffect,
	"bool":        booleanEffect,
	"boolean":     booleanEffect,
	"string":      stringEffect,
	"int":         integerEffect,
	"integer":     integerEffect,
	"numeric":     numericEffect,
	"array":       arrayEffect,
	"file":        fileEffect,
	"timezone":    timezoneEffect,
	"email":       emailEffect,
	"url":         urlEffect,
	"ip":          ipEffect,
	"json":        jsonEffect,
	"date":        dateEffect,
	"date_format": dateFormatEffect,
	"image":       imageEffect,
	"in":          inEffect,
}

// Reducer folds a field's rules into a [Parameter].
type Reducer struct {
	parser Parser
	synth  Synthesizer
	now    func() time.Time
	logger *zap.Logger
}

// NewReducer returns a Reducer drawing example values from synth. A nil synth
// yields fixed placeholder values.
func NewReducer(synth Synthesizer, opts ...Option) *Reducer {
	return newReducer(synth, buildOptions(opts))
}

func newReducer(synth Synthesizer, o options) *Reducer {
	if synth == nil {
		synth = placeholderSynthesizer{}
	}
	return &Reducer{
		parser: newParser(o),
		synth:  synth,
		now:    o.now,
		logger: o.logger,
	}
}

// Reduce applies rules to a fresh descriptor in order and finalizes it. The
// second result is false when the field lacks the documentation rule and must
// not be emitted.
func (r *Reducer) Reduce(path string, rules []Rule) (Parameter, bool) {
	var d descriptor
	for _, rule := range rules {
		d = d.apply(r.change(path, r.parser.Parse(rule)))
	}
	return r.finalize(path, d)
}

func (r *Reducer) change(path string, pr ParsedRule) change {
	if pr.Name == r.parser.documentationRule {
		return documentationEffect(pr.Args)
	}
	fn, ok := effects[pr.Name]
	if !ok {
		r.logger.Debug("rule not supported", zap.String("field", path), zap.String("rule", pr.Name))
		return change{}
	}
	return fn(pr.Args, r)
}

func (r *Reducer) finalize(path string, d descriptor) (Parameter, bool) {
	if !d.visible {
		r.logger.Debug("field not documented", zap.String("field", path))
		return Parameter{}, false
	}

	typ := d.typ
	if typ == "" {
		typ = TypeString
	}
	value := d.value
	if d.required && value.IsAbsent() {
		value = Some(DummyValue(r.synth, typ))
	}
	if !d.overrideValue.IsAbsent() {
		value = d.overrideValue
	}
	if v, ok := value.Get(); ok {
		value = Some(Coerce(v, typ))
	}

	return Parameter{
		Name:        path,
		Required:    d.required,
		Type:        typ,
		Value:       value,
		Description: ComposeDescription(d.overrideDescription, d.description),
	}, true
}
