package ruledoc

import (
	"go.uber.org/zap"
)

// Builder turns raw rulesets into documented parameters.
type Builder struct {
	normalizer *Normalizer
	reducer    *Reducer
	logger     *zap.Logger
}

// New returns a Builder resolving rules with resolver and drawing example
// values from synth. A nil synth yields fixed placeholder values.
func New(resolver Resolver, synth Synthesizer, opts ...Option) *Builder {
	o := buildOptions(opts)
	return &Builder{
		normalizer: NewNormalizer(resolver),
		reducer:    newReducer(synth, o),
		logger:     o.logger,
	}
}

// Build normalizes rules, reduces every field and returns the documented
// ones in normalized order. Resolver failures abort the whole build.
// Parameters failing [Parameter.Validate], such as an empty path reported by
// a custom resolver, are kept and logged at warn level.
func (b *Builder) Build(rules Ruleset) (Parameters, error) {
	normalized, err := b.normalizer.Normalize(rules)
	if err != nil {
		return nil, err
	}

	params := make(Parameters, 0, len(normalized))
	for _, fr := range normalized {
		p, ok := b.reducer.Reduce(fr.Path, fr.Rules)
		if !ok {
			continue
		}
		if err := p.Validate(); err != nil {
			b.logger.Warn("inconsistent parameter", zap.String("field", p.Name), zap.Error(err))
		}
		params = append(params, p)
	}
	b.logger.Debug("parameters built",
		zap.Int("fields", len(normalized)),
		zap.Int("documented", len(params)),
	)
	return params, nil
}
