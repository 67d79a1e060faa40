package ruledoc

// StubSynthesizer returns fixed examples so tests can assert exact values.
type StubSynthesizer struct{}

func (StubSynthesizer) Boolean() bool { return true }

func (StubSynthesizer) String(kind string) string {
	if kind == TypeFile {
		return "word.pdf"
	}
	return "word"
}

func (StubSynthesizer) Integer(string) int     { return 7 }
func (StubSynthesizer) Number(string) float64  { return 3.5 }
func (StubSynthesizer) Email(string) string    { return "user@example.com" }
func (StubSynthesizer) URL(string) string      { return "https://example.com/docs" }
func (StubSynthesizer) IPv4(string) string     { return "192.0.2.1" }
func (StubSynthesizer) Timezone(string) string { return "Africa/Accra" }
func (StubSynthesizer) Word(string) string     { return "word" }

// Element picks the last element so tests notice when it is not the first.
func (StubSynthesizer) Element(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[len(list)-1]
}
