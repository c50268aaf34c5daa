package game

import (
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/kidsworld/internal/catalog"
	"codeberg.org/snonux/kidsworld/internal/gate"
	"codeberg.org/snonux/kidsworld/internal/learning"
	"codeberg.org/snonux/kidsworld/internal/progress"
	"codeberg.org/snonux/kidsworld/internal/quiz"
	"codeberg.org/snonux/kidsworld/internal/translation"
)

// Pauses between an answer and the next step of the quiz
const (
	CorrectPause = 2000 * time.Millisecond
	WrongPause   = 1200 * time.Millisecond
)

// AnnounceDelay lets a confirmation phrase play before the first item or
// question of a new screen is spoken
const AnnounceDelay = 1500 * time.Millisecond

// Spoken phrases, in English; the speaker translates them
const (
	PhraseStart          = "Hi! Let's play together!"
	PhraseFinishLearning = "Let's do a fun quiz!"
	PhraseGoBack         = "Going back!"
	PhrasePlayAgain      = "Let's pick another one!"
	PhraseLanguage       = "Okay! Changing language!"
	PhraseCorrect        = "Yay! You found it! Great job!"
	PhraseWrong          = "Oh no! That's not it. Try again!"
)

// PhraseSelect is spoken when a category is opened
func PhraseSelect(name string) string {
	return "Let's go to " + name + "! Yay!"
}

// Reward is the outcome of the last completed quiz
type Reward struct {
	Category catalog.CategoryID
	Score    int
	Stars    int
	LevelUp  bool
}

// App is the application state
type App struct {
	cats   []catalog.Category
	rng    *rand.Rand
	logger zerolog.Logger

	screen   Screen
	category *catalog.Category
	learning *learning.Session
	quiz     *quiz.Session
	progress progress.UserProgress
	reward   Reward

	gate     *gate.Gate
	settings bool

	gen     int
	labels  map[string]string
	pending map[string]bool
}

// New creates the application on the home screen
func New(cats []catalog.Category, p progress.UserProgress, rng *rand.Rand, logger zerolog.Logger) *App {
	return &App{
		cats:     cats,
		rng:      rng,
		logger:   logger,
		screen:   Home,
		progress: p,
		labels:   make(map[string]string),
		pending:  make(map[string]bool),
	}
}

// Screen returns the active screen
func (a *App) Screen() Screen { return a.screen }

// Categories returns the catalog in display order
func (a *App) Categories() []catalog.Category { return a.cats }

// Category returns the selected category, nil outside learning and quiz
func (a *App) Category() *catalog.Category { return a.category }

// Learning returns the flashcard session while learning
func (a *App) Learning() *learning.Session { return a.learning }

// Quiz returns the quiz session while quizzing
func (a *App) Quiz() *quiz.Session { return a.quiz }

// Progress returns the player's progress
func (a *App) Progress() progress.UserProgress { return a.progress }

// Reward returns the outcome of the last completed quiz
func (a *App) Reward() Reward { return a.reward }

// Gate returns the parental gate while it is open
func (a *App) Gate() *gate.Gate { return a.gate }

// GateOpen reports whether the gate overlay is showing
func (a *App) GateOpen() bool { return a.gate != nil }

// SettingsOpen reports whether the gate was solved and settings show
func (a *App) SettingsOpen() bool { return a.settings }

// Label returns the translated display name of text, or text itself
func (a *App) Label(text string) string {
	if v, ok := a.labels[text]; ok {
		return v
	}
	return text
}

// LabelPending reports whether a translation for text is outstanding
func (a *App) LabelPending(text string) bool {
	return a.pending[text]
}

// Handle applies ev and returns the commands to execute
func (a *App) Handle(ev Event) []Command {
	switch ev := ev.(type) {
	case Start:
		return a.start()
	case SelectCategory:
		return a.selectCategory(ev.ID)
	case FinishLearning:
		return a.finishLearning()
	case Next:
		return a.next()
	case Previous:
		return a.previous()
	case Repeat:
		return a.repeat()
	case AnimalSound:
		return a.animalSound()
	case Answer:
		return a.answer(ev.ItemID)
	case ResolveFeedback:
		return a.resolveFeedback(ev.QuizID)
	case Announce:
		if ev.Gen != a.gen {
			return nil
		}
		return a.repeat()
	case PlayAgain:
		return a.playAgain()
	case GoBack:
		return a.goBack()
	case GoHome:
		if a.screen == CategorySelect {
			a.screen = Transition(a.screen, TriggerHome)
		}
		return nil
	case SetLanguage:
		return a.setLanguage(ev.Code)
	case VoiceCommand:
		return a.voiceCommand(ev.Transcript)
	case LabelTranslated:
		return a.labelTranslated(ev)
	case OpenGate:
		if a.gate == nil && !a.settings {
			a.gate = gate.New(a.rng)
		}
		return nil
	case CloseGate:
		a.gate = nil
		a.settings = false
		return nil
	case GateDigit:
		if a.gate != nil {
			a.gate.Type(ev.Digit)
		}
		return nil
	case GateBackspace:
		if a.gate != nil {
			a.gate.Backspace()
		}
		return nil
	case GateSubmit:
		return a.gateSubmit(ev.Now)
	case ResetProgress:
		return a.resetProgress()
	case Tick:
		return nil
	default:
		a.logger.Warn().Type("event", ev).Msg("unhandled event")
		return nil
	}
}

func (a *App) start() []Command {
	if a.screen != Home {
		return nil
	}
	a.screen = Transition(a.screen, TriggerStart)
	return []Command{Speak{Text: PhraseStart}}
}

func (a *App) selectCategory(id catalog.CategoryID) []Command {
	if a.screen != CategorySelect {
		return nil
	}
	cat, ok := catalog.Find(a.cats, id)
	if !ok {
		a.logger.Warn().Str("category", string(id)).Msg("unknown category selected")
		return nil
	}

	a.category = cat
	a.screen = Transition(a.screen, TriggerSelectCategory)
	a.logger.Info().Str("category", string(id)).Msg("learning started")

	cmds := []Command{Speak{Text: PhraseSelect(cat.Name)}}
	return append(cmds, a.enterLearning()...)
}

// enterLearning starts a fresh flashcard session and schedules the first
// item to be spoken after the confirmation phrase
func (a *App) enterLearning() []Command {
	a.learning = learning.New(a.category)
	a.quiz = nil
	a.gen++
	cmds := []Command{After{Delay: AnnounceDelay, Event: Announce{Gen: a.gen}}}
	return append(cmds, a.translateLabel(a.learning.Current().Name)...)
}

func (a *App) finishLearning() []Command {
	if a.screen != Learning {
		return nil
	}
	a.screen = Transition(a.screen, TriggerFinishLearning)
	a.quiz = quiz.New(a.category, a.rng)
	a.gen++
	a.logger.Info().Str("quiz", a.quiz.ID()).Str("category", string(a.category.ID)).Msg("quiz started")

	cmds := []Command{
		Speak{Text: PhraseFinishLearning},
		After{Delay: AnnounceDelay, Event: Announce{Gen: a.gen}},
	}
	return append(cmds, a.translateLabel(a.quiz.Round().Target.Name)...)
}

func (a *App) next() []Command {
	if a.screen != Learning {
		return nil
	}
	if !a.learning.Next() {
		return a.finishLearning()
	}
	return a.itemChanged()
}

func (a *App) previous() []Command {
	if a.screen != Learning || !a.learning.Previous() {
		return nil
	}
	return a.itemChanged()
}

func (a *App) itemChanged() []Command {
	a.gen++
	cmds := []Command{Speak{Text: a.learning.SpeechText()}}
	return append(cmds, a.translateLabel(a.learning.Current().Name)...)
}

func (a *App) repeat() []Command {
	switch a.screen {
	case Learning:
		return []Command{Speak{Text: a.learning.SpeechText()}}
	case Quiz:
		return []Command{Speak{Text: a.quiz.Question()}}
	default:
		return nil
	}
}

func (a *App) animalSound() []Command {
	if a.screen != Learning {
		return nil
	}
	item := a.learning.Current()
	if !item.HasAnimalSound() {
		return nil
	}
	return []Command{PlayAnimalSound{Item: item}}
}

func (a *App) answer(itemID string) []Command {
	if a.screen != Quiz {
		return nil
	}
	fb, ok := a.quiz.Answer(itemID)
	if !ok {
		return nil
	}

	resolve := ResolveFeedback{QuizID: a.quiz.ID()}
	if fb == quiz.FeedbackCorrect {
		return []Command{
			Speak{Text: PhraseCorrect},
			After{Delay: CorrectPause, Event: resolve},
		}
	}
	return []Command{
		Speak{Text: PhraseWrong},
		After{Delay: WrongPause, Event: resolve},
	}
}

func (a *App) resolveFeedback(quizID string) []Command {
	if a.screen != Quiz || a.quiz == nil || a.quiz.ID() != quizID {
		return nil
	}

	round := a.quiz.Round().Index
	if a.quiz.Resolve() {
		return a.completeQuiz()
	}
	if a.quiz.Round().Index == round {
		return nil
	}

	a.gen++
	cmds := []Command{Speak{Text: a.quiz.Question()}}
	return append(cmds, a.translateLabel(a.quiz.Round().Target.Name)...)
}

func (a *App) completeQuiz() []Command {
	score := a.quiz.Score()
	before := a.progress
	a.progress = a.progress.ApplyQuizScore(string(a.category.ID), score)
	a.reward = Reward{
		Category: a.category.ID,
		Score:    score,
		Stars:    progress.EarnedStars(score),
		LevelUp:  a.progress.Level > before.Level,
	}
	a.logger.Info().Str("quiz", a.quiz.ID()).Int("score", score).Int("stars", a.reward.Stars).Msg("quiz completed")

	a.screen = Transition(a.screen, TriggerCompleteQuiz)
	return []Command{
		SaveProgress{Progress: a.progress},
		Celebrate{Stars: a.reward.Stars},
	}
}

func (a *App) playAgain() []Command {
	if a.screen != Rewards {
		return nil
	}
	a.screen = Transition(a.screen, TriggerPlayAgain)
	a.leaveCategory()
	return []Command{Speak{Text: PhrasePlayAgain}}
}

func (a *App) goBack() []Command {
	from := a.screen
	a.screen = Transition(from, TriggerGoBack)

	cmds := []Command{Speak{Text: PhraseGoBack}}
	switch a.screen {
	case Learning:
		cmds = append(cmds, a.enterLearning()...)
	case CategorySelect, Home:
		a.leaveCategory()
	}
	return cmds
}

func (a *App) leaveCategory() {
	a.category = nil
	a.learning = nil
	a.quiz = nil
	a.gen++
}

func (a *App) setLanguage(code string) []Command {
	if _, ok := translation.LookupLanguage(code); !ok {
		return nil
	}

	a.progress = a.progress.WithLanguage(code)
	a.labels = make(map[string]string)
	a.pending = make(map[string]bool)

	cmds := []Command{
		ChangeLanguage{Code: code},
		SaveProgress{Progress: a.progress},
		Speak{Text: PhraseLanguage},
	}
	if text := a.currentLabel(); text != "" {
		cmds = append(cmds, a.translateLabel(text)...)
	}
	return cmds
}

func (a *App) voiceCommand(transcript string) []Command {
	before := a.screen

	var cmds []Command
	if rule, ok := Match(RootRules, transcript); ok && rule.Allowed(a.screen) {
		cmds = a.Handle(rule.Event)
	}

	if a.screen != before {
		return cmds
	}
	if rule, ok := Match(ScreenRules[a.screen], transcript); ok {
		cmds = append(cmds, a.Handle(rule.Event)...)
	}
	return cmds
}

// currentLabel is the item name on display, empty when none is
func (a *App) currentLabel() string {
	switch a.screen {
	case Learning:
		return a.learning.Current().Name
	case Quiz:
		return a.quiz.Round().Target.Name
	default:
		return ""
	}
}

func (a *App) translateLabel(text string) []Command {
	lang := a.progress.Language
	if lang == translation.English {
		return nil
	}
	if _, ok := a.labels[text]; ok || a.pending[text] {
		return nil
	}
	a.pending[text] = true
	return []Command{TranslateLabel{Text: text, Lang: lang}}
}

func (a *App) labelTranslated(ev LabelTranslated) []Command {
	if ev.Lang != a.progress.Language {
		return nil
	}
	delete(a.pending, ev.Text)
	if ev.Text != a.currentLabel() {
		return nil
	}
	a.labels[ev.Text] = ev.Translation
	return nil
}

func (a *App) gateSubmit(now time.Time) []Command {
	if a.gate == nil {
		return nil
	}
	if a.gate.Submit(now) {
		a.gate = nil
		a.settings = true
		return nil
	}
	return []Command{After{Delay: gate.ErrorFlash, Event: Tick{}}}
}

func (a *App) resetProgress() []Command {
	if !a.settings {
		return nil
	}
	a.progress = progress.Defaults()
	a.labels = make(map[string]string)
	a.pending = make(map[string]bool)
	a.logger.Info().Msg("progress reset from settings")
	return []Command{ResetStore{}, ChangeLanguage{Code: a.progress.Language}}
}
