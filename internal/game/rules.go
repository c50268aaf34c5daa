package game

import (
	"slices"
	"strings"
)

// Rule maps spoken phrases to an event. A rule matches when the transcript
// contains any of its phrases; Screens limits where the event is honored,
// empty meaning everywhere.
type Rule struct {
	Phrases []string
	Screens []Screen
	Event   Event
}

// Allowed reports whether the rule's event is honored on screen s
func (r Rule) Allowed(s Screen) bool {
	return len(r.Screens) == 0 || slices.Contains(r.Screens, s)
}

// Match returns the first rule with a phrase contained in transcript
func Match(rules []Rule, transcript string) (Rule, bool) {
	for _, r := range rules {
		for _, p := range r.Phrases {
			if strings.Contains(transcript, p) {
				return r, true
			}
		}
	}
	return Rule{}, false
}

// RootRules are evaluated on every screen. Only the first matching rule
// counts, even when its screen does not allow it.
var RootRules = []Rule{
	{Phrases: []string{"go back", "back"}, Event: GoBack{}},
	{Phrases: []string{"start quiz", "quiz"}, Screens: []Screen{Learning}, Event: FinishLearning{}},
	{Phrases: []string{"play now", "start game", "play game"}, Screens: []Screen{Home}, Event: Start{}},
}

// ScreenRules are evaluated for the active screen when the root rules left
// the screen unchanged
var ScreenRules = map[Screen][]Rule{
	Learning: {
		{Phrases: []string{"next", "forward"}, Event: Next{}},
		{Phrases: []string{"previous"}, Event: Previous{}},
		{Phrases: []string{"repeat", "speak", "play sound"}, Event: Repeat{}},
		{Phrases: []string{"animal sound", "make sound"}, Event: AnimalSound{}},
	},
	Quiz: {
		{Phrases: []string{"repeat", "speak"}, Event: Repeat{}},
	},
}
