// Package gate implements the arithmetic challenge that keeps small
// children out of the settings. It is friction, not security: answers are
// easy to guess and attempts are not limited.
package gate

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

// ErrorFlash is how long a wrong answer is flagged
const ErrorFlash = time.Second

// maxDigits bounds the typed answer; sums never exceed 10
const maxDigits = 2

// Gate is one challenge
type Gate struct {
	a, b       int
	input      string
	errorUntil time.Time
	unlocked   bool
}

// New creates a challenge with two addends drawn from 1 to 5
func New(rng *rand.Rand) *Gate {
	return &Gate{
		a: rng.IntN(5) + 1,
		b: rng.IntN(5) + 1,
	}
}

// Prompt returns the question to show
func (g *Gate) Prompt() string {
	return fmt.Sprintf("What is %d + %d?", g.a, g.b)
}

// Input returns the answer typed so far
func (g *Gate) Input() string {
	return g.input
}

// Type appends a digit; other runes are ignored
func (g *Gate) Type(r rune) {
	if r < '0' || r > '9' || len(g.input) >= maxDigits {
		return
	}
	g.input += string(r)
}

// Backspace removes the last typed digit
func (g *Gate) Backspace() {
	if g.input != "" {
		g.input = g.input[:len(g.input)-1]
	}
}

// Submit checks the typed answer. A wrong answer clears the input and
// flags an error until ErrorFlash after now.
func (g *Gate) Submit(now time.Time) bool {
	answer, err := strconv.Atoi(g.input)
	if err == nil && answer == g.a+g.b {
		g.unlocked = true
		return true
	}

	g.input = ""
	g.errorUntil = now.Add(ErrorFlash)
	return false
}

// ShowingError reports whether the wrong-answer flag is still up at now
func (g *Gate) ShowingError(now time.Time) bool {
	return now.Before(g.errorUntil)
}

// Unlocked reports whether the challenge was solved
func (g *Gate) Unlocked() bool {
	return g.unlocked
}
