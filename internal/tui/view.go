package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codeberg.org/snonux/kidsworld/internal/catalog"
	"codeberg.org/snonux/kidsworld/internal/game"
	"codeberg.org/snonux/kidsworld/internal/quiz"
	"codeberg.org/snonux/kidsworld/internal/translation"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	textStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("239")).Bold(true)
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	starStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 1)
	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
	dimmedStyle = tileStyle.Foreground(lipgloss.Color("238"))
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 4).
			Align(lipgloss.Center)
	lockStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 3).
			Align(lipgloss.Center)
)

var confetti = []string{"🎉", "✨", "🎈", "⭐", "🎊"}

func (m Model) View() string {
	var body string
	switch {
	case m.app.GateOpen():
		body = m.viewGate()
	case m.app.SettingsOpen():
		body = m.viewSettings()
	default:
		switch m.app.Screen() {
		case game.Home:
			body = m.viewHome()
		case game.CategorySelect:
			body = m.viewCategories()
		case game.Learning:
			body = m.viewLearning()
		case game.Quiz:
			body = m.viewQuiz()
		case game.Rewards:
			body = m.viewRewards()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		"",
		body,
		"",
		m.viewStatus(),
		m.viewHelp(),
	)
}

func (m Model) viewHeader() string {
	p := m.app.Progress()
	lang, _ := translation.LookupLanguage(p.Language)
	return titleStyle.Render("Kids Learning World") + "  " +
		starStyle.Render(fmt.Sprintf("⭐ %d", p.Stars)) + "  " +
		textStyle.Render(fmt.Sprintf("Level %d", p.Level)) + "  " +
		mutedStyle.Render(lang.Flag+" "+lang.Name)
}

func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Let's learn and play!") + "\n\n")
	b.WriteString(selectedStyle.Render("▶ PLAY NOW") + "\n\n")

	current := m.app.Progress().Language
	for i, l := range translation.SupportedLanguages {
		label := fmt.Sprintf("%d %s %s", (i+1)%10, l.Flag, l.Name)
		if l.Code == current {
			b.WriteString(goodStyle.Render("● "+label) + "\n")
		} else {
			b.WriteString(mutedStyle.Render("  "+label) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewCategories() string {
	cats := m.app.Categories()
	completed := m.app.Progress()

	var rows []string
	var row []string
	for i, c := range cats {
		label := c.Icon + " " + c.Name
		if completed.IsCompleted(string(c.ID)) {
			label += " ✔"
		}
		style := tileStyle
		if i == m.cursor {
			style = selectedStyle
		}
		row = append(row, style.Render(label))
		if len(row) == gridColumns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return titleStyle.Render("Pick something to learn!") + "\n\n" +
		lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) label(name string) string {
	text := m.app.Label(name)
	if m.app.LabelPending(name) {
		text += " …"
	}
	return text
}

func (m Model) viewLearning() string {
	s := m.app.Learning()
	cat := s.Category()
	item := s.Current()

	name := lipgloss.NewStyle().Bold(true)
	if item.Color != "" {
		name = name.Foreground(lipgloss.Color(item.Color))
	}

	card := item.Image + "\n\n" + name.Render(m.label(item.Name))
	if cat.IsRhymes() && item.AudioText != "" {
		card += "\n\n" + mutedStyle.Render(item.AudioText)
	}
	if item.HasAnimalSound() {
		card += "\n\n" + mutedStyle.Render("🔊 "+item.SoundPhonetic)
	}

	return titleStyle.Render(cat.Icon+" "+cat.Name) + "  " + mutedStyle.Render(s.Position()) +
		"\n\n" + cardStyle.Render(card)
}

func (m Model) viewQuiz() string {
	q := m.app.Quiz()
	round := q.Round()

	var tiles []string
	for i, opt := range round.Options {
		style := tileStyle
		switch {
		case q.IsDimmed(opt.ID):
			style = dimmedStyle
		case i == m.cursor:
			style = selectedStyle
		}
		tiles = append(tiles, style.Render(fmt.Sprintf("%d\n%s\n%s", i+1, opt.Image, m.label(opt.Name))))
	}

	var feedback string
	switch q.Feedback() {
	case quiz.FeedbackCorrect:
		feedback = goodStyle.Render("Yay! You found it!")
	case quiz.FeedbackWrong:
		feedback = badStyle.Render("Oh no! Try again!")
	}

	return titleStyle.Render(fmt.Sprintf("Quiz %d / %d", round.Index+1, q.Total())) + "  " +
		starStyle.Render(fmt.Sprintf("Score %d", q.Score())) + "\n\n" +
		textStyle.Render("Where is the "+m.label(round.Target.Name)+"?") + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, tiles...) + "\n\n" +
		feedback
}

func (m Model) viewRewards() string {
	r := m.app.Reward()

	banner := strings.Repeat("🎉 ", 5)
	if m.celebrate > 0 {
		var b strings.Builder
		for i := range 9 {
			b.WriteString(confetti[(i+m.celebrate)%len(confetti)] + " ")
		}
		banner = b.String()
	}

	name := string(r.Category)
	if cat, ok := catalog.Find(m.app.Categories(), r.Category); ok {
		name = cat.Name
	}

	out := banner + "\n\n" +
		titleStyle.Render("Well done!") + "\n\n" +
		textStyle.Render(fmt.Sprintf("%s: %d points", name, r.Score)) + "\n" +
		starStyle.Render(fmt.Sprintf("You earned %d %s", r.Stars, plural(r.Stars, "star")))
	if r.LevelUp {
		out += "\n" + goodStyle.Render(fmt.Sprintf("Level up! You are now level %d", m.app.Progress().Level))
	}
	return out
}

func (m Model) viewGate() string {
	g := m.app.Gate()
	input := g.Input()
	if input == "" {
		input = "_"
	}

	content := titleStyle.Render("Grown-ups only") + "\n\n" +
		textStyle.Render(g.Prompt()) + "\n\n" +
		starStyle.Render(input)
	if g.ShowingError(m.now()) {
		content += "\n\n" + badStyle.Render("Not quite, try again")
	}
	return lockStyle.Render(content)
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings") + "\n\n")

	current := m.app.Progress().Language
	for i, l := range translation.SupportedLanguages {
		marker := "  "
		if l.Code == current {
			marker = "● "
		}
		line := marker + l.Flag + " " + l.Name
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(line) + "\n")
		} else {
			b.WriteString(textStyle.Render(line) + "\n")
		}
	}
	p := m.app.Progress()
	b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("%d stars, level %d, %d categories completed",
		p.Stars, p.Level, len(p.CompletedCategories))))
	return b.String()
}

// viewStatus shows the listening indicator and the last heard command
func (m Model) viewStatus() string {
	var status string
	switch {
	case m.fx.VoiceDisabled():
		status = mutedStyle.Render("🎤 voice off")
	case m.fx.Listening():
		status = goodStyle.Render("● LISTENING")
	default:
		status = mutedStyle.Render("○ STANDBY")
	}
	if last := m.fx.LastCommand(); last != "" {
		status += "  " + mutedStyle.Render(fmt.Sprintf("heard: %q", last))
	}
	if m.fx.Translating() {
		status += "  " + mutedStyle.Render("translating…")
	}
	return status
}

func (m Model) viewHelp() string {
	var keys [][2]string
	switch {
	case m.app.GateOpen():
		keys = [][2]string{{"0-9", "type"}, {"enter", "check"}, {"esc", "close"}}
	case m.app.SettingsOpen():
		keys = [][2]string{{"←/→", "language"}, {"enter", "choose"}, {"r", "reset progress"}, {"esc", "close"}}
	default:
		switch m.app.Screen() {
		case game.Home:
			keys = [][2]string{{"enter", "play"}, {"1-0", "language"}, {"s", "settings"}, {"q", "quit"}}
		case game.CategorySelect:
			keys = [][2]string{{"arrows", "move"}, {"enter", "open"}, {"h", "home"}, {"s", "settings"}, {"esc", "back"}}
		case game.Learning:
			keys = [][2]string{{"←/→", "previous/next"}, {"r", "repeat"}, {"a", "animal sound"}, {"f", "quiz"}, {"esc", "back"}}
		case game.Quiz:
			keys = [][2]string{{"1-4", "answer"}, {"←/→", "move"}, {"r", "repeat"}, {"esc", "back"}}
		case game.Rewards:
			keys = [][2]string{{"enter", "play again"}, {"esc", "back"}}
		}
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, keyStyle.Render(k[0])+helpStyle.Render(" "+k[1]))
	}
	return strings.Join(parts, helpStyle.Render(" · "))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
