package progress

import (
	"fmt"
	"slices"

	"github.com/bytedance/sonic"

	"codeberg.org/snonux/kidsworld/internal/translation"
)

// StorageKey is the key the progress blob is stored under
const StorageKey = "KIDS_LEARNING_WORLD_V1"

// PointsPerStar converts quiz score to stars
const PointsPerStar = 20

// LevelUpStars is the number of stars a single quiz must beat to level up
const LevelUpStars = 2

// UserProgress is the persisted player record
type UserProgress struct {
	Stars               int      `json:"stars"`
	CompletedCategories []string `json:"completedCategories"`
	Level               int      `json:"level"`
	Language            string   `json:"language"`
}

// Defaults returns the progress of a new player
func Defaults() UserProgress {
	return UserProgress{
		Stars:               0,
		CompletedCategories: []string{},
		Level:               1,
		Language:            translation.English,
	}
}

// Merge decodes raw over the defaults field by field. Fields that are
// missing or carry the wrong type keep their default value. Only input that
// is not a JSON object yields the defaults and the decode error.
func Merge(raw []byte) (UserProgress, error) {
	merged := Defaults()
	if len(raw) == 0 {
		return merged, nil
	}

	var fields map[string]sonic.NoCopyRawMessage
	if err := sonic.Unmarshal(raw, &fields); err != nil {
		return merged, fmt.Errorf("malformed progress: %w", err)
	}

	decoded := Defaults()
	decodeField(fields["stars"], &decoded.Stars)
	decodeField(fields["completedCategories"], &decoded.CompletedCategories)
	decodeField(fields["level"], &decoded.Level)
	decodeField(fields["language"], &decoded.Language)

	return normalize(decoded), nil
}

// decodeField overwrites dst only when raw decodes cleanly into its type
func decodeField[T any](raw sonic.NoCopyRawMessage, dst *T) {
	if len(raw) == 0 {
		return
	}
	var v T
	if err := sonic.Unmarshal(raw, &v); err != nil {
		return
	}
	*dst = v
}

// Encode serializes progress for storage
func Encode(p UserProgress) ([]byte, error) {
	return sonic.Marshal(normalize(p))
}

func normalize(p UserProgress) UserProgress {
	if p.Stars < 0 {
		p.Stars = 0
	}
	if p.Level < 1 {
		p.Level = 1
	}
	if p.CompletedCategories == nil {
		p.CompletedCategories = []string{}
	}
	if _, ok := translation.LookupLanguage(p.Language); !ok {
		p.Language = translation.English
	}
	return p
}

// EarnedStars converts a quiz score to stars
func EarnedStars(score int) int {
	if score <= 0 {
		return 0
	}
	return score / PointsPerStar
}

// ApplyQuizScore adds the stars earned by score, levels up when more than
// LevelUpStars were earned and records categoryID as completed.
func (p UserProgress) ApplyQuizScore(categoryID string, score int) UserProgress {
	earned := EarnedStars(score)
	p.Stars += earned
	if earned > LevelUpStars {
		p.Level++
	}
	return p.CompleteCategory(categoryID)
}

// CompleteCategory records categoryID once
func (p UserProgress) CompleteCategory(categoryID string) UserProgress {
	if categoryID == "" || slices.Contains(p.CompletedCategories, categoryID) {
		return p
	}
	completed := make([]string, 0, len(p.CompletedCategories)+1)
	completed = append(completed, p.CompletedCategories...)
	p.CompletedCategories = append(completed, categoryID)
	return p
}

// WithLanguage returns p with the language switched to code
func (p UserProgress) WithLanguage(code string) UserProgress {
	p.Language = code
	return normalize(p)
}

// IsCompleted reports whether categoryID has a finished quiz
func (p UserProgress) IsCompleted(categoryID string) bool {
	return slices.Contains(p.CompletedCategories, categoryID)
}
