package filter

import (
	"iter"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"chipselect/internal/domain"
)

// Service derives suggestions from the live available sequence. It never
// mutates its source and keeps no result cache: every iteration reads the
// source again.
type Service struct {
	state    *State
	sourceFn func() []*domain.Item // current available items
}

// NewService creates a new filter service
func NewService(source func() []*domain.Item) *Service {
	return &Service{
		state:    &State{},
		sourceFn: source,
	}
}

// SetSource sets the function that supplies candidate items
func (s *Service) SetSource(fn func() []*domain.Item) {
	s.sourceFn = fn
}

// SetQuery replaces the current query
func (s *Service) SetQuery(query any) {
	s.state.Query = query
}

// Query returns the current query
func (s *Service) Query() any {
	return s.state.Query
}

// QueryText returns the current query as text, or "" when absent or not a string
func (s *Service) QueryText() string {
	text, _ := s.state.Query.(string)
	return text
}

// Suggestions returns a restartable sequence over the items matching the
// current query
func (s *Service) Suggestions() iter.Seq[*domain.Item] {
	return s.Match(s.state.Query)
}

// Collect materialises the current suggestions
func (s *Service) Collect() []*domain.Item {
	return slices.Collect(s.Suggestions())
}

// Match returns a restartable sequence over the source items matching
// query. A nil or empty query yields the whole source in order; a
// non-empty string yields items whose ViewValue contains it,
// case-insensitively; anything else yields nothing.
func (s *Service) Match(query any) iter.Seq[*domain.Item] {
	return func(yield func(*domain.Item) bool) {
		if s.sourceFn == nil {
			return
		}

		var needle string
		switch q := query.(type) {
		case nil:
		case string:
			needle = strings.ToLower(q)
		default:
			return
		}

		for _, item := range s.sourceFn() {
			if needle != "" && !strings.Contains(strings.ToLower(item.ViewValue), needle) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// ShouldHighlight reports whether text contains the current query
func (s *Service) ShouldHighlight(text string) bool {
	query := s.QueryText()
	if query == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}

// HighlightRange returns the byte range in text of the first match of the
// current query, comparing rune by rune under simple case folding. The
// range always falls on rune boundaries of text.
func (s *Service) HighlightRange(text string) (start, end int, ok bool) {
	query := s.QueryText()
	if query == "" {
		return 0, 0, false
	}
	for start = 0; start < len(text); {
		if end, ok = matchAt(text, start, query); ok {
			return start, end, true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		start += size
	}
	return 0, 0, false
}

// matchAt reports whether query matches text at byte offset i and where
// the match ends
func matchAt(text string, i int, query string) (int, bool) {
	for _, q := range query {
		if i >= len(text) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if !foldEqual(r, q) {
			return 0, false
		}
		i += size
	}
	return i, true
}

func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
