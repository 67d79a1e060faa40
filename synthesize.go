package ruledoc

// Synthesizer produces plausible example values. The kind argument names the
// semantic type or rule asking for the value; implementations may ignore it.
type Synthesizer interface {
	Boolean() bool
	String(kind string) string
	Integer(kind string) int
	Number(kind string) float64
	Element(list []string) string
	Email(kind string) string
	URL(kind string) string
	IPv4(kind string) string
	Timezone(kind string) string
	Word(kind string) string
}

// DummyValue synthesizes an example of the given semantic type.
func DummyValue(s Synthesizer, typ string) any {
	switch typ {
	case TypeInteger:
		return s.Integer(typ)
	case TypeNumber:
		return s.Number(typ)
	case TypeBoolean:
		return s.Boolean()
	case TypeArray:
		return []string{s.String(TypeString)}
	default:
		return s.String(typ)
	}
}

// placeholderSynthesizer stands in when no Synthesizer is given.
type placeholderSynthesizer struct{}

func (placeholderSynthesizer) Boolean() bool { return true }

func (placeholderSynthesizer) String(kind string) string {
	if kind == TypeFile {
		return "document.txt"
	}
	return "string"
}

func (placeholderSynthesizer) Integer(string) int     { return 1 }
func (placeholderSynthesizer) Number(string) float64  { return 1.5 }
func (placeholderSynthesizer) Email(string) string    { return "user@example.com" }
func (placeholderSynthesizer) URL(string) string      { return "https://example.com" }
func (placeholderSynthesizer) IPv4(string) string     { return "127.0.0.1" }
func (placeholderSynthesizer) Timezone(string) string { return "UTC" }
func (placeholderSynthesizer) Word(string) string     { return "word" }

func (placeholderSynthesizer) Element(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}
