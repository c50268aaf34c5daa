// Package learning steps through the flashcards of one category.
package learning

import (
	"fmt"

	"codeberg.org/snonux/kidsworld/internal/catalog"
)

// Session is a zero-based position in a category's items
type Session struct {
	cat   *catalog.Category
	index int
}

// New starts a session at the first item of cat
func New(cat *catalog.Category) *Session {
	return &Session{cat: cat}
}

// Category returns the category being learned
func (s *Session) Category() *catalog.Category {
	return s.cat
}

// Current returns the item at the current index
func (s *Session) Current() catalog.LearningItem {
	return s.cat.Items[s.index]
}

// Index returns the current zero-based index
func (s *Session) Index() int {
	return s.index
}

// Len returns the number of items
func (s *Session) Len() int {
	return len(s.cat.Items)
}

// IsLast reports whether the current item is the final one
func (s *Session) IsLast() bool {
	return s.index >= len(s.cat.Items)-1
}

// Next advances to the following item. It returns false at the last item,
// where the caller moves on to the quiz.
func (s *Session) Next() bool {
	if s.IsLast() {
		return false
	}
	s.index++
	return true
}

// Previous steps back one item; a no-op at the first item
func (s *Session) Previous() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	return true
}

// SpeechText is what gets spoken for the current item: the lyrics for a
// rhyme, the name otherwise
func (s *Session) SpeechText() string {
	item := s.Current()
	if s.cat.IsRhymes() && item.AudioText != "" {
		return item.AudioText
	}
	return item.Name
}

// Position renders the index as "3 / 12"
func (s *Session) Position() string {
	return fmt.Sprintf("%d / %d", s.index+1, s.Len())
}
