package game

// Screen is the top-level mode of the application
type Screen int

const (
	Home Screen = iota
	CategorySelect
	Learning
	Quiz
	Rewards
)

func (s Screen) String() string {
	switch s {
	case Home:
		return "HOME"
	case CategorySelect:
		return "CATEGORY_SELECT"
	case Learning:
		return "LEARNING"
	case Quiz:
		return "QUIZ"
	case Rewards:
		return "REWARDS"
	default:
		return "UNKNOWN"
	}
}

// Trigger causes a screen transition
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerSelectCategory
	TriggerFinishLearning
	TriggerCompleteQuiz
	TriggerPlayAgain
	TriggerGoBack
	TriggerHome
)

type edge struct {
	from    Screen
	trigger Trigger
}

var transitions = map[edge]Screen{
	{Home, TriggerStart}:                    CategorySelect,
	{CategorySelect, TriggerSelectCategory}: Learning,
	{CategorySelect, TriggerHome}:           Home,
	{Learning, TriggerFinishLearning}:       Quiz,
	{Quiz, TriggerCompleteQuiz}:             Rewards,
	{Rewards, TriggerPlayAgain}:             CategorySelect,
}

// Transition returns the screen reached from s on t. Pairs without a
// transition leave the screen unchanged.
func Transition(s Screen, t Trigger) Screen {
	if t == TriggerGoBack {
		return Predecessor(s)
	}
	if next, ok := transitions[edge{s, t}]; ok {
		return next
	}
	return s
}

// Predecessor returns the logical predecessor of s. Home has none and stays.
func Predecessor(s Screen) Screen {
	switch s {
	case CategorySelect:
		return Home
	case Learning:
		return CategorySelect
	case Quiz:
		return Learning
	case Rewards:
		return CategorySelect
	default:
		return s
	}
}
