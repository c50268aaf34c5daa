package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/kidsworld/internal/game"
	"codeberg.org/snonux/kidsworld/internal/translation"
)

const (
	tickInterval      = 200 * time.Millisecond
	celebrationFrames = 15
	gridColumns       = 5
)

type tickMsg time.Time

type eventMsg struct {
	event game.Event
}

// Voice wraps a recognized command as a message for tea.Program.Send
func Voice(transcript string) tea.Msg {
	return eventMsg{event: game.VoiceCommand{Transcript: transcript}}
}

// Model is the bubbletea model around the game
type Model struct {
	app *game.App
	fx  Effects
	now func() time.Time

	width     int
	height    int
	cursor    int
	celebrate int
}

// New creates the model
func New(app *game.App, fx Effects) Model {
	return Model{
		app:    app,
		fx:     fx,
		now:    time.Now,
		width:  80,
		height: 24,
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.celebrate > 0 {
			m.celebrate--
		}
		return m, tick()

	case eventMsg:
		return m.dispatch(msg.event)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		ev, quit := m.keyEvent(msg)
		if quit {
			return m, tea.Quit
		}
		if ev == nil {
			return m, nil
		}
		return m.dispatch(ev)
	}
	return m, nil
}

// dispatch hands ev to the game and runs the returned commands
func (m Model) dispatch(ev game.Event) (tea.Model, tea.Cmd) {
	screen, round, settings := m.position()
	cmds := m.app.Handle(ev)

	if s, r, open := m.position(); s != screen || r != round || open != settings {
		m.cursor = 0
		if open && !settings {
			m.cursor = languageIndex(m.app.Progress().Language)
		}
	}
	return m, m.execute(cmds)
}

func (m Model) position() (game.Screen, int, bool) {
	round := -1
	if q := m.app.Quiz(); q != nil {
		round = q.Round().Index
	}
	return m.app.Screen(), round, m.app.SettingsOpen()
}

// execute runs quick effects in order and returns the slow ones as a batch
func (m *Model) execute(cmds []game.Command) tea.Cmd {
	var async []tea.Cmd
	for _, c := range cmds {
		switch c := c.(type) {
		case game.Speak:
			m.fx.Speak(c.Text)
		case game.PlayAnimalSound:
			m.fx.PlayAnimalSound(c.Item)
		case game.ChangeLanguage:
			m.fx.ChangeLanguage(c.Code)
		case game.SaveProgress:
			m.fx.SaveProgress(c.Progress)
		case game.ResetStore:
			m.fx.ResetProgress()
		case game.Celebrate:
			m.celebrate = celebrationFrames
		case game.TranslateLabel:
			async = append(async, translateLabel(m.fx, c))
		case game.After:
			async = append(async, after(c))
		}
	}
	return tea.Batch(async...)
}

func translateLabel(fx Effects, c game.TranslateLabel) tea.Cmd {
	return func() tea.Msg {
		return eventMsg{event: game.LabelTranslated{
			Text:        c.Text,
			Lang:        c.Lang,
			Translation: fx.TranslateLabel(c.Text, c.Lang),
		}}
	}
}

func after(c game.After) tea.Cmd {
	return tea.Tick(c.Delay, func(time.Time) tea.Msg {
		return eventMsg{event: c.Event}
	})
}

func languageIndex(code string) int {
	for i, l := range translation.SupportedLanguages {
		if l.Code == code {
			return i
		}
	}
	return 0
}

// keyEvent maps a key press to a game event for the visible screen
func (m *Model) keyEvent(msg tea.KeyMsg) (game.Event, bool) {
	key := msg.String()

	if g := m.app.Gate(); g != nil {
		switch key {
		case "esc":
			return game.CloseGate{}, false
		case "backspace":
			return game.GateBackspace{}, false
		case "enter":
			return game.GateSubmit{Now: m.now()}, false
		}
		if r, ok := digit(msg); ok {
			return game.GateDigit{Digit: r}, false
		}
		return nil, false
	}

	if m.app.SettingsOpen() {
		n := len(translation.SupportedLanguages)
		switch key {
		case "esc":
			return game.CloseGate{}, false
		case "left", "up":
			m.cursor = (m.cursor + n - 1) % n
		case "right", "down":
			m.cursor = (m.cursor + 1) % n
		case "enter":
			return game.SetLanguage{Code: translation.SupportedLanguages[m.cursor].Code}, false
		case "r":
			return game.ResetProgress{}, false
		}
		return nil, false
	}

	switch m.app.Screen() {
	case game.Home:
		return m.homeKey(msg)
	case game.CategorySelect:
		return m.categoryKey(key), false
	case game.Learning:
		return learningKey(key), false
	case game.Quiz:
		return m.quizKey(msg), false
	case game.Rewards:
		switch key {
		case "enter", " ", "p":
			return game.PlayAgain{}, false
		case "esc", "backspace", "b":
			return game.GoBack{}, false
		}
	}
	return nil, false
}

func (m *Model) homeKey(msg tea.KeyMsg) (game.Event, bool) {
	switch msg.String() {
	case "q", "esc":
		return nil, true
	case "enter", " ", "p":
		return game.Start{}, false
	case "s":
		return game.OpenGate{}, false
	}
	if r, ok := digit(msg); ok {
		i := int(r - '1')
		if r == '0' {
			i = 9
		}
		if i < len(translation.SupportedLanguages) {
			return game.SetLanguage{Code: translation.SupportedLanguages[i].Code}, false
		}
	}
	return nil, false
}

func (m *Model) categoryKey(key string) game.Event {
	cats := m.app.Categories()
	n := len(cats)
	if n == 0 {
		return nil
	}
	switch key {
	case "left":
		m.cursor = (m.cursor + n - 1) % n
	case "right", "tab":
		m.cursor = (m.cursor + 1) % n
	case "up":
		if m.cursor >= gridColumns {
			m.cursor -= gridColumns
		}
	case "down":
		if m.cursor+gridColumns < n {
			m.cursor += gridColumns
		}
	case "enter", " ":
		return game.SelectCategory{ID: cats[m.cursor].ID}
	case "h", "home":
		return game.GoHome{}
	case "s":
		return game.OpenGate{}
	case "esc", "backspace", "b":
		return game.GoBack{}
	}
	return nil
}

func learningKey(key string) game.Event {
	switch key {
	case "right", "n", " ":
		return game.Next{}
	case "left", "p":
		return game.Previous{}
	case "enter", "r":
		return game.Repeat{}
	case "a":
		return game.AnimalSound{}
	case "f":
		return game.FinishLearning{}
	case "esc", "backspace", "b":
		return game.GoBack{}
	}
	return nil
}

func (m *Model) quizKey(msg tea.KeyMsg) game.Event {
	options := m.app.Quiz().Round().Options
	n := len(options)
	if n == 0 {
		return nil
	}
	switch msg.String() {
	case "left":
		m.cursor = (m.cursor + n - 1) % n
		return nil
	case "right", "tab":
		m.cursor = (m.cursor + 1) % n
		return nil
	case "enter", " ":
		return game.Answer{ItemID: options[m.cursor].ID}
	case "r":
		return game.Repeat{}
	case "esc", "backspace", "b":
		return game.GoBack{}
	}
	if r, ok := digit(msg); ok {
		if i := int(r - '1'); i >= 0 && i < n {
			m.cursor = i
			return game.Answer{ItemID: options[i].ID}
		}
	}
	return nil
}

func digit(msg tea.KeyMsg) (rune, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	return r, r >= '0' && r <= '9'
}
