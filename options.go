package ruledoc

import (
	"time"

	"go.uber.org/zap"
)

const (
	// DocumentationRule is the default name of the documentation-only rule.
	DocumentationRule = "documentation"
	// DocumentationDelimiter separates the documentation rule's description
	// from its example value.
	DocumentationDelimiter = "::"
)

type options struct {
	logger            *zap.Logger
	documentationRule string
	delimiter         string
	now               func() time.Time
}

func defaultOptions() options {
	return options{
		logger:            zap.NewNop(),
		documentationRule: DocumentationRule,
		delimiter:         DocumentationDelimiter,
		now:               time.Now,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a [Builder], [Parser] or [MissingDocumentation].
type Option func(*options)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithDocumentationRule renames the documentation-only rule.
func WithDocumentationRule(name string) Option {
	return func(o *options) {
		if name != "" {
			o.documentationRule = name
		}
	}
}

// WithDelimiter sets the separator between the documentation rule's
// description and example value.
func WithDelimiter(delim string) Option {
	return func(o *options) {
		if delim != "" {
			o.delimiter = delim
		}
	}
}

// WithClock sets the time source used for date examples.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
