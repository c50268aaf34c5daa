package game

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/kidsworld/internal/catalog"
	"codeberg.org/snonux/kidsworld/internal/progress"
)

func testCatalog() []catalog.Category {
	return []catalog.Category{
		{
			ID: catalog.FarmAnimals, Name: "Farm Animals",
			Items: []catalog.LearningItem{
				{ID: "cow", Name: "Cow", Image: "🐄", SoundPhonetic: "Moo! Moo!"},
				{ID: "dog", Name: "Dog", Image: "🐕", SoundPhonetic: "Woof! Woof!"},
				{ID: "cat", Name: "Cat", Image: "🐈", SoundPhonetic: "Meow!"},
			},
		},
		{
			ID: catalog.Months, Name: "Months",
			Items: []catalog.LearningItem{
				{ID: "jan", Name: "January", Image: "❄️"},
				{ID: "feb", Name: "February", Image: "💖"},
				{ID: "mar", Name: "March", Image: "🍀"},
				{ID: "apr", Name: "April", Image: "☔"},
				{ID: "may", Name: "May", Image: "🌸"},
				{ID: "jun", Name: "June", Image: "☀️"},
			},
		},
	}
}

func newApp() *App {
	return New(testCatalog(), progress.Defaults(), rand.New(rand.NewPCG(1, 2)), zerolog.Nop())
}

func find[T Command](cmds []Command) (T, bool) {
	for _, c := range cmds {
		if v, ok := c.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func spoken(cmds []Command) []string {
	var texts []string
	for _, c := range cmds {
		if s, ok := c.(Speak); ok {
			texts = append(texts, s.Text)
		}
	}
	return texts
}

// playTo drives a fresh app to the given screen with the Months category
func playTo(t *testing.T, s Screen) *App {
	t.Helper()
	a := newApp()
	if s == Home {
		return a
	}
	a.Handle(Start{})
	if s == CategorySelect {
		return a
	}
	a.Handle(SelectCategory{ID: catalog.Months})
	if s == Learning {
		return a
	}
	a.Handle(FinishLearning{})
	if s == Quiz {
		return a
	}
	for !a.Quiz().Done() {
		a.Handle(Answer{ItemID: a.Quiz().Round().Target.ID})
		a.Handle(ResolveFeedback{QuizID: a.Quiz().ID()})
	}
	if a.Screen() != s {
		t.Fatalf("Expected %s, got %s", s, a.Screen())
	}
	return a
}

func TestStart(t *testing.T) {
	a := newApp()
	cmds := a.Handle(Start{})

	if a.Screen() != CategorySelect {
		t.Fatalf("Expected CATEGORY_SELECT, got %s", a.Screen())
	}
	if got := spoken(cmds); len(got) != 1 || got[0] != PhraseStart {
		t.Errorf("Unexpected speech %v", got)
	}

	// start is only honored on the home screen
	if cmds := a.Handle(Start{}); cmds != nil || a.Screen() != CategorySelect {
		t.Error("Expected Start outside HOME to be ignored")
	}
}

func TestSelectCategory(t *testing.T) {
	a := playTo(t, CategorySelect)
	cmds := a.Handle(SelectCategory{ID: catalog.FarmAnimals})

	if a.Screen() != Learning || a.Category() == nil || a.Category().ID != catalog.FarmAnimals {
		t.Fatalf("Expected learning Farm Animals, got %s", a.Screen())
	}
	if got := spoken(cmds); len(got) != 1 || got[0] != "Let's go to Farm Animals! Yay!" {
		t.Errorf("Unexpected speech %v", got)
	}

	after, ok := find[After](cmds)
	if !ok || after.Delay != AnnounceDelay {
		t.Fatalf("Expected scheduled announcement, got %v", cmds)
	}
	if got := spoken(a.Handle(after.Event)); len(got) != 1 || got[0] != "Cow" {
		t.Errorf("Expected first item announced, got %v", got)
	}

	if _, ok := find[TranslateLabel](cmds); ok {
		t.Error("English labels need no translation")
	}
}

func TestSelectUnknownCategory(t *testing.T) {
	a := playTo(t, CategorySelect)
	if cmds := a.Handle(SelectCategory{ID: "NOPE"}); cmds != nil || a.Screen() != CategorySelect {
		t.Error("Expected unknown category to be ignored")
	}
}

func TestLearningFlow(t *testing.T) {
	a := newApp()
	a.Handle(Start{})
	a.Handle(SelectCategory{ID: catalog.FarmAnimals})

	if cmds := a.Handle(Previous{}); cmds != nil || a.Learning().Index() != 0 {
		t.Error("Previous at index 0 must be a no-op")
	}

	cmds := a.Handle(Next{})
	if got := spoken(cmds); len(got) != 1 || got[0] != "Dog" {
		t.Errorf("Expected Dog spoken once, got %v", got)
	}

	cmds = a.Handle(AnimalSound{})
	if snd, ok := find[PlayAnimalSound](cmds); !ok || snd.Item.ID != "dog" {
		t.Errorf("Expected dog sound, got %v", cmds)
	}

	a.Handle(Next{})
	cmds = a.Handle(Next{})
	if a.Screen() != Quiz {
		t.Fatalf("Expected next at the last item to start the quiz, got %s", a.Screen())
	}
	if got := spoken(cmds); len(got) != 1 || got[0] != PhraseFinishLearning {
		t.Errorf("Unexpected speech %v", got)
	}
}

func TestAnnounceIsDroppedAfterNavigation(t *testing.T) {
	a := playTo(t, CategorySelect)
	cmds := a.Handle(SelectCategory{ID: catalog.FarmAnimals})
	after, _ := find[After](cmds)

	a.Handle(Next{})
	if cmds := a.Handle(after.Event); cmds != nil {
		t.Errorf("Expected stale announcement dropped, got %v", cmds)
	}
}

func TestRepeat(t *testing.T) {
	a := playTo(t, Learning)
	if got := spoken(a.Handle(Repeat{})); len(got) != 1 || got[0] != "January" {
		t.Errorf("Unexpected repeat %v", got)
	}

	a = playTo(t, Quiz)
	want := fmt.Sprintf("Where is the %s? Can you find it?", a.Quiz().Round().Target.Name)
	if got := spoken(a.Handle(Repeat{})); len(got) != 1 || got[0] != want {
		t.Errorf("Expected question %q, got %v", want, got)
	}
}

func TestQuizCorrectAndWrong(t *testing.T) {
	a := playTo(t, Quiz)
	q := a.Quiz()
	target := q.Round().Target

	var wrong string
	for _, o := range q.Round().Options {
		if o.ID != target.ID {
			wrong = o.ID
			break
		}
	}

	cmds := a.Handle(Answer{ItemID: wrong})
	if got := spoken(cmds); len(got) != 1 || got[0] != PhraseWrong {
		t.Errorf("Unexpected speech %v", got)
	}
	after, ok := find[After](cmds)
	if !ok || after.Delay != WrongPause {
		t.Fatalf("Expected wrong pause, got %v", cmds)
	}

	// taps during feedback are ignored
	if cmds := a.Handle(Answer{ItemID: target.ID}); cmds != nil {
		t.Errorf("Expected answer during feedback ignored, got %v", cmds)
	}

	a.Handle(after.Event)
	cmds = a.Handle(Answer{ItemID: target.ID})
	after, ok = find[After](cmds)
	if !ok || after.Delay != CorrectPause {
		t.Fatalf("Expected correct pause, got %v", cmds)
	}
	if got := spoken(cmds); len(got) != 1 || got[0] != PhraseCorrect {
		t.Errorf("Unexpected speech %v", got)
	}

	cmds = a.Handle(after.Event)
	if q.Round().Index != 1 {
		t.Errorf("Expected second round, got %d", q.Round().Index)
	}
	if got := spoken(cmds); len(got) != 1 || got[0] != q.Question() {
		t.Errorf("Expected next question spoken, got %v", got)
	}
}

func TestQuizCompletion(t *testing.T) {
	a := playTo(t, Quiz)

	var last []Command
	for i := 0; i < 5; i++ {
		a.Handle(Answer{ItemID: a.Quiz().Round().Target.ID})
		last = a.Handle(ResolveFeedback{QuizID: a.Quiz().ID()})
	}

	if a.Screen() != Rewards {
		t.Fatalf("Expected REWARDS, got %s", a.Screen())
	}

	save, ok := find[SaveProgress](last)
	if !ok {
		t.Fatal("Expected progress to be saved")
	}
	if save.Progress.Stars != 6 || save.Progress.Level != 2 {
		t.Errorf("Expected 6 stars at level 2, got %+v", save.Progress)
	}
	if !save.Progress.IsCompleted(string(catalog.Months)) {
		t.Error("Expected Months to be completed")
	}
	if c, ok := find[Celebrate](last); !ok || c.Stars != 6 {
		t.Errorf("Expected celebration with 6 stars, got %v", last)
	}

	r := a.Reward()
	if r.Score != 125 || r.Stars != 6 || !r.LevelUp {
		t.Errorf("Unexpected reward %+v", r)
	}
}

func TestStaleResolveIgnored(t *testing.T) {
	a := playTo(t, Quiz)
	a.Handle(Answer{ItemID: a.Quiz().Round().Target.ID})

	if cmds := a.Handle(ResolveFeedback{QuizID: "another-quiz"}); cmds != nil {
		t.Errorf("Expected stale resolve ignored, got %v", cmds)
	}
	if a.Quiz().Round().Index != 0 {
		t.Error("Stale resolve must not advance the quiz")
	}

	a.Handle(GoBack{})
	if a.Screen() != Learning {
		t.Fatalf("Expected LEARNING, got %s", a.Screen())
	}
	if cmds := a.Handle(ResolveFeedback{QuizID: "x"}); cmds != nil {
		t.Error("Resolve outside the quiz must be ignored")
	}
}

func TestGoBack(t *testing.T) {
	tests := []struct {
		from Screen
		want Screen
	}{
		{Home, Home},
		{CategorySelect, Home},
		{Learning, CategorySelect},
		{Quiz, Learning},
		{Rewards, CategorySelect},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			a := playTo(t, tt.from)
			cmds := a.Handle(GoBack{})

			if a.Screen() != tt.want {
				t.Errorf("GoBack from %s = %s, want %s", tt.from, a.Screen(), tt.want)
			}
			if got := spoken(cmds); len(got) != 1 || got[0] != PhraseGoBack {
				t.Errorf("Expected %q, got %v", PhraseGoBack, got)
			}
			if (a.Screen() == Learning || a.Screen() == Quiz) && a.Category() == nil {
				t.Error("Category must be set while learning or quizzing")
			}
			if a.Screen() == Learning && a.Learning().Index() != 0 {
				t.Error("Expected learning to restart at the first item")
			}
		})
	}
}

func TestPlayAgain(t *testing.T) {
	a := playTo(t, Rewards)
	cmds := a.Handle(PlayAgain{})

	if a.Screen() != CategorySelect || a.Category() != nil {
		t.Errorf("Expected CATEGORY_SELECT without category, got %s", a.Screen())
	}
	if got := spoken(cmds); len(got) != 1 || got[0] != PhrasePlayAgain {
		t.Errorf("Unexpected speech %v", got)
	}
}

func TestGoHome(t *testing.T) {
	a := playTo(t, CategorySelect)
	a.Handle(GoHome{})
	if a.Screen() != Home {
		t.Errorf("Expected HOME, got %s", a.Screen())
	}

	a = playTo(t, Learning)
	a.Handle(GoHome{})
	if a.Screen() != Learning {
		t.Error("GoHome is only available on the category picker")
	}
}

func TestVoiceCommands(t *testing.T) {
	tests := []struct {
		name       string
		from       Screen
		transcript string
		want       Screen
	}{
		{"play now on home", Home, "play now", CategorySelect},
		{"start game on home", Home, "start game", CategorySelect},
		{"play game ignored while learning", Learning, "play game", Learning},
		{"quiz while learning", Learning, "start quiz", Quiz},
		{"quiz ignored on home", Home, "quiz", Home},
		{"back from quiz", Quiz, "go back", Learning},
		{"back from rewards", Rewards, "back", CategorySelect},
		{"unknown phrase", CategorySelect, "banana", CategorySelect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := playTo(t, tt.from)
			a.Handle(VoiceCommand{Transcript: tt.transcript})
			if a.Screen() != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, a.Screen())
			}
		})
	}
}

func TestVoiceScreenRules(t *testing.T) {
	a := playTo(t, Learning)

	cmds := a.Handle(VoiceCommand{Transcript: "next please"})
	if a.Learning().Index() != 1 {
		t.Errorf("Expected index 1, got %d", a.Learning().Index())
	}
	if got := spoken(cmds); len(got) != 1 || got[0] != "February" {
		t.Errorf("Unexpected speech %v", got)
	}

	a.Handle(VoiceCommand{Transcript: "previous"})
	if a.Learning().Index() != 0 {
		t.Errorf("Expected index 0, got %d", a.Learning().Index())
	}

	// going back changes the screen, so learning rules do not also fire
	cmds = a.Handle(VoiceCommand{Transcript: "go back and repeat"})
	if a.Screen() != CategorySelect {
		t.Fatalf("Expected CATEGORY_SELECT, got %s", a.Screen())
	}
	if got := spoken(cmds); len(got) != 1 || got[0] != PhraseGoBack {
		t.Errorf("Expected only %q, got %v", PhraseGoBack, got)
	}

	q := playTo(t, Quiz)
	if got := spoken(q.Handle(VoiceCommand{Transcript: "repeat"})); len(got) != 1 || got[0] != q.Quiz().Question() {
		t.Errorf("Expected question re-asked, got %v", got)
	}
}

func TestSetLanguage(t *testing.T) {
	a := newApp()
	cmds := a.Handle(SetLanguage{Code: "es"})

	if a.Progress().Language != "es" {
		t.Fatalf("Expected es, got %s", a.Progress().Language)
	}
	if len(cmds) != 3 {
		t.Fatalf("Expected 3 commands, got %v", cmds)
	}
	if c, ok := cmds[0].(ChangeLanguage); !ok || c.Code != "es" {
		t.Errorf("Expected language change first, got %v", cmds[0])
	}
	if s, ok := cmds[1].(SaveProgress); !ok || s.Progress.Language != "es" {
		t.Errorf("Expected progress saved, got %v", cmds[1])
	}
	if s, ok := cmds[2].(Speak); !ok || s.Text != PhraseLanguage {
		t.Errorf("Expected language phrase, got %v", cmds[2])
	}

	if cmds := a.Handle(SetLanguage{Code: "tlh"}); cmds != nil || a.Progress().Language != "es" {
		t.Error("Unsupported language must be ignored")
	}
}

func TestLabels(t *testing.T) {
	a := newApp()
	a.Handle(SetLanguage{Code: "fr"})
	a.Handle(Start{})
	cmds := a.Handle(SelectCategory{ID: catalog.FarmAnimals})

	tl, ok := find[TranslateLabel](cmds)
	if !ok || tl.Text != "Cow" || tl.Lang != "fr" {
		t.Fatalf("Expected label translation for Cow, got %v", cmds)
	}
	if !a.LabelPending("Cow") {
		t.Error("Expected Cow pending")
	}

	a.Handle(LabelTranslated{Text: "Cow", Lang: "fr", Translation: "Vache"})
	if a.Label("Cow") != "Vache" || a.LabelPending("Cow") {
		t.Errorf("Expected Vache, got %q", a.Label("Cow"))
	}

	// a result for an item no longer shown is dropped
	a.Handle(Next{})
	a.Handle(LabelTranslated{Text: "Cow", Lang: "fr", Translation: "stale"})
	a.Handle(LabelTranslated{Text: "Dog", Lang: "de", Translation: "Hund"})
	if a.Label("Dog") != "Dog" {
		t.Errorf("Expected wrong-language result dropped, got %q", a.Label("Dog"))
	}
	a.Handle(LabelTranslated{Text: "Dog", Lang: "fr", Translation: "Chien"})
	if a.Label("Dog") != "Chien" {
		t.Errorf("Expected Chien, got %q", a.Label("Dog"))
	}
}

func TestParentalGate(t *testing.T) {
	a := playTo(t, CategorySelect)
	a.Handle(OpenGate{})
	if !a.GateOpen() {
		t.Fatal("Expected gate open")
	}

	var x, y int
	if _, err := fmt.Sscanf(a.Gate().Prompt(), "What is %d + %d?", &x, &y); err != nil {
		t.Fatalf("Unexpected prompt %q: %v", a.Gate().Prompt(), err)
	}

	now := time.Now()
	a.Handle(GateDigit{Digit: '0'})
	cmds := a.Handle(GateSubmit{Now: now})
	if after, ok := find[After](cmds); !ok || after.Delay != time.Second {
		t.Errorf("Expected redraw after the error flash, got %v", cmds)
	}
	if !a.Gate().ShowingError(now) || a.SettingsOpen() {
		t.Error("Expected error flag and locked settings")
	}

	if cmds := a.Handle(ResetProgress{}); cmds != nil {
		t.Error("Reset must require the gate")
	}

	for _, r := range fmt.Sprint(x + y) {
		a.Handle(GateDigit{Digit: r})
	}
	a.Handle(GateSubmit{Now: now})
	if a.GateOpen() || !a.SettingsOpen() {
		t.Fatal("Expected settings unlocked")
	}

	cmds = a.Handle(ResetProgress{})
	if _, ok := find[ResetStore](cmds); !ok {
		t.Errorf("Expected store reset, got %v", cmds)
	}

	a.Handle(CloseGate{})
	if a.SettingsOpen() {
		t.Error("Expected settings closed")
	}
}

func TestResetProgress(t *testing.T) {
	p := progress.UserProgress{Stars: 9, Level: 3, Language: "de", CompletedCategories: []string{"BIRDS"}}
	a := New(testCatalog(), p, rand.New(rand.NewPCG(3, 4)), zerolog.Nop())
	a.settings = true

	cmds := a.Handle(ResetProgress{})
	if a.Progress().Stars != 0 || a.Progress().Level != 1 || a.Progress().Language != "en" {
		t.Errorf("Expected defaults, got %+v", a.Progress())
	}
	if c, ok := find[ChangeLanguage](cmds); !ok || c.Code != "en" {
		t.Errorf("Expected speech language reset, got %v", cmds)
	}
}
