// Package fake implements [ruledoc.Synthesizer] with gofakeit.
package fake

import (
	"math"
	"sync"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/Gobd/ruledoc"
)

// Synthesizer draws example values from a seeded faker. It is safe for
// concurrent use.
type Synthesizer struct {
	mu sync.Mutex
	f  *gofakeit.Faker
}

var _ ruledoc.Synthesizer = (*Synthesizer)(nil)

// New returns a Synthesizer. A zero seed picks a random one; any other seed
// makes the sequence of examples reproducible.
func New(seed uint64) *Synthesizer {
	return &Synthesizer{f: gofakeit.New(seed)}
}

// Boolean returns a random bool.
func (s *Synthesizer) Boolean() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Bool()
}

// String returns a word, or a file name for the file type.
func (s *Synthesizer) String(kind string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if kind == ruledoc.TypeFile {
		return s.f.Word() + "." + s.f.FileExtension()
	}
	return s.f.Word()
}

// Integer returns a number between 1 and 20.
func (s *Synthesizer) Integer(_ string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Number(1, 20)
}

// Number returns a float with two decimals.
func (s *Synthesizer) Number(_ string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return math.Round(s.f.Float64Range(1, 20)*100) / 100
}

// Element picks one entry of list, or "" when list is empty.
func (s *Synthesizer) Element(list []string) string {
	if len(list) == 0 {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.RandomString(list)
}

// Email returns an email address.
func (s *Synthesizer) Email(_ string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Email()
}

// URL returns an absolute URL.
func (s *Synthesizer) URL(_ string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.URL()
}

// IPv4 returns a dotted IPv4 address.
func (s *Synthesizer) IPv4(_ string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.IPv4Address()
}

// Timezone returns an IANA time zone name such as "Europe/Paris".
func (s *Synthesizer) Timezone(_ string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.TimeZoneRegion()
}

// Word returns a random word.
func (s *Synthesizer) Word(_ string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Word()
}
