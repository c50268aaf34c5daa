package game

import (
	"time"

	"codeberg.org/snonux/kidsworld/internal/catalog"
)

// Event is an input to App.Handle: a control, a voice command or the
// completion of an earlier Command
type Event interface {
	event()
}

type (
	// Start leaves the home screen
	Start struct{}

	// SelectCategory opens a category for learning
	SelectCategory struct{ ID catalog.CategoryID }

	// FinishLearning moves from learning to the quiz
	FinishLearning struct{}

	// Next shows the following flashcard
	Next struct{}

	// Previous shows the preceding flashcard
	Previous struct{}

	// Repeat speaks the current item or question again
	Repeat struct{}

	// AnimalSound plays the current item's sound
	AnimalSound struct{}

	// Answer picks a quiz option
	Answer struct{ ItemID string }

	// ResolveFeedback ends the feedback pause of a quiz answer
	ResolveFeedback struct{ QuizID string }

	// Announce speaks the current item or question once a confirmation
	// phrase had time to play
	Announce struct{ Gen int }

	// PlayAgain returns from the rewards screen
	PlayAgain struct{}

	// GoBack moves to the logical predecessor screen
	GoBack struct{}

	// GoHome returns from the category picker to the home screen
	GoHome struct{}

	// SetLanguage switches the display and speech language
	SetLanguage struct{ Code string }

	// VoiceCommand is a normalized recognition transcript
	VoiceCommand struct{ Transcript string }

	// LabelTranslated delivers the result of a TranslateLabel command
	LabelTranslated struct{ Text, Lang, Translation string }

	// OpenGate shows the parental gate
	OpenGate struct{}

	// CloseGate hides the parental gate and the settings
	CloseGate struct{}

	// GateDigit types a digit into the gate
	GateDigit struct{ Digit rune }

	// GateBackspace deletes the last typed digit
	GateBackspace struct{}

	// GateSubmit checks the typed answer
	GateSubmit struct{ Now time.Time }

	// ResetProgress wipes the player's progress from the settings
	ResetProgress struct{}

	// Tick only asks for a redraw
	Tick struct{}
)

func (Start) event()           {}
func (SelectCategory) event()  {}
func (FinishLearning) event()  {}
func (Next) event()            {}
func (Previous) event()        {}
func (Repeat) event()          {}
func (AnimalSound) event()     {}
func (Answer) event()          {}
func (ResolveFeedback) event() {}
func (Announce) event()        {}
func (PlayAgain) event()       {}
func (GoBack) event()          {}
func (GoHome) event()          {}
func (SetLanguage) event()     {}
func (VoiceCommand) event()    {}
func (LabelTranslated) event() {}
func (OpenGate) event()        {}
func (CloseGate) event()       {}
func (GateDigit) event()       {}
func (GateBackspace) event()   {}
func (GateSubmit) event()      {}
func (ResetProgress) event()   {}
func (Tick) event()            {}
