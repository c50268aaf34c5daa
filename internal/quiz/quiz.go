// Package quiz runs the multiple-choice quiz that follows a learning
// session. Each round asks for one item among up to four options.
package quiz

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"codeberg.org/snonux/kidsworld/internal/catalog"
)

const (
	// MaxRounds caps the number of questions per quiz
	MaxRounds = 5
	// MaxDistractors is the number of wrong options per round
	MaxDistractors = 3
	// PointsPerCorrect is awarded for each correct answer
	PointsPerCorrect = 25
)

// Feedback is the state shown after an answer
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "correct"
	case FeedbackWrong:
		return "wrong"
	default:
		return "none"
	}
}

// Round is one question
type Round struct {
	Index   int
	Target  catalog.LearningItem
	Options []catalog.LearningItem
}

// Rounds returns the number of questions for a category of n items
func Rounds(n int) int {
	return min(MaxRounds, n)
}

// Session is a quiz over one category
type Session struct {
	id       string
	cat      *catalog.Category
	rng      *rand.Rand
	rounds   int
	round    Round
	score    int
	feedback Feedback
	done     bool
}

// New starts a quiz over cat. rng drives option sampling and order.
func New(cat *catalog.Category, rng *rand.Rand) *Session {
	s := &Session{
		id:     uuid.NewString(),
		cat:    cat,
		rng:    rng,
		rounds: Rounds(len(cat.Items)),
	}
	s.ask(0)
	return s
}

// ID identifies the session in logs
func (s *Session) ID() string {
	return s.id
}

// Category returns the category being quizzed
func (s *Session) Category() *catalog.Category {
	return s.cat
}

// Round returns the current question
func (s *Session) Round() Round {
	return s.round
}

// Total returns the number of rounds in this quiz
func (s *Session) Total() int {
	return s.rounds
}

// Score returns the points collected so far
func (s *Session) Score() int {
	return s.score
}

// Feedback returns the feedback being shown
func (s *Session) Feedback() Feedback {
	return s.feedback
}

// Done reports whether all rounds were answered
func (s *Session) Done() bool {
	return s.done
}

// Question is the spoken prompt for the current round
func (s *Session) Question() string {
	return "Where is the " + s.round.Target.Name + "? Can you find it?"
}

// Answer checks the chosen item id. Answers are ignored while feedback is
// showing or after the quiz is done; accepted is false then.
func (s *Session) Answer(id string) (fb Feedback, accepted bool) {
	if s.done || s.feedback != FeedbackNone {
		return s.feedback, false
	}

	if id == s.round.Target.ID {
		s.score += PointsPerCorrect
		s.feedback = FeedbackCorrect
	} else {
		s.feedback = FeedbackWrong
	}
	return s.feedback, true
}

// Resolve ends the feedback window. After a correct answer it moves to the
// next round or completes the quiz; after a wrong one the same round is
// asked again. It returns true when the quiz has just completed.
func (s *Session) Resolve() bool {
	fb := s.feedback
	s.feedback = FeedbackNone

	if fb != FeedbackCorrect {
		return false
	}

	next := s.round.Index + 1
	if next >= s.rounds {
		s.done = true
		return true
	}
	s.ask(next)
	return false
}

// IsDimmed reports whether an option is de-emphasized: every option other
// than the target while wrong-answer feedback shows
func (s *Session) IsDimmed(id string) bool {
	return s.feedback == FeedbackWrong && id != s.round.Target.ID
}

func (s *Session) ask(index int) {
	target := s.cat.Items[index]

	others := make([]catalog.LearningItem, 0, len(s.cat.Items)-1)
	for _, item := range s.cat.Items {
		if item.ID != target.ID {
			others = append(others, item)
		}
	}
	s.rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })

	options := append([]catalog.LearningItem{target}, others[:min(MaxDistractors, len(others))]...)
	s.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	s.round = Round{Index: index, Target: target, Options: options}
}
