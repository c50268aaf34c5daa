package game

import (
	"time"

	"codeberg.org/snonux/kidsworld/internal/catalog"
	"codeberg.org/snonux/kidsworld/internal/progress"
)

// Command is a side effect requested by App.Handle. Commands are executed
// in the order returned.
type Command interface {
	command()
}

type (
	// Speak says an English phrase in the active language
	Speak struct{ Text string }

	// PlayAnimalSound plays an item's sound text untranslated
	PlayAnimalSound struct{ Item catalog.LearningItem }

	// SaveProgress persists the whole progress record
	SaveProgress struct{ Progress progress.UserProgress }

	// ResetStore archives the stored progress and saves the defaults
	ResetStore struct{}

	// ChangeLanguage switches the speech language
	ChangeLanguage struct{ Code string }

	// TranslateLabel translates a displayed item name and reports back
	// with a LabelTranslated event
	TranslateLabel struct{ Text, Lang string }

	// Celebrate shows the reward animation
	Celebrate struct{ Stars int }

	// After delivers Event once Delay has passed
	After struct {
		Delay time.Duration
		Event Event
	}
)

func (Speak) command()           {}
func (PlayAnimalSound) command() {}
func (SaveProgress) command()    {}
func (ResetStore) command()      {}
func (ChangeLanguage) command()  {}
func (TranslateLabel) command()  {}
func (Celebrate) command()       {}
func (After) command()           {}
