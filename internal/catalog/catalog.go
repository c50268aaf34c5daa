package catalog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CategoryID identifies a category
type CategoryID string

const (
	Alphabet    CategoryID = "ALPHABET"
	Numbers     CategoryID = "NUMBERS"
	Flowers     CategoryID = "FLOWERS"
	Birds       CategoryID = "BIRDS"
	Insects     CategoryID = "INSECTS"
	Days        CategoryID = "DAYS"
	Months      CategoryID = "MONTHS"
	Rhymes      CategoryID = "RHYMES"
	FarmAnimals CategoryID = "FARM_ANIMALS"
	WildAnimals CategoryID = "WILD_ANIMALS"
)

// LearningItem is one flashcard. AudioText holds rhyme lyrics and
// SoundPhonetic an animal-sound utterance.
type LearningItem struct {
	ID            string `json:"id" yaml:"id" validate:"required"`
	Name          string `json:"name" yaml:"name" validate:"required"`
	Image         string `json:"image" yaml:"image" validate:"required"`
	Color         string `json:"color" yaml:"color"`
	AudioText     string `json:"audioText,omitempty" yaml:"audioText,omitempty"`
	SoundPhonetic string `json:"soundPhonetic,omitempty" yaml:"soundPhonetic,omitempty"`
}

// HasAnimalSound reports whether the item carries a sound utterance
func (i LearningItem) HasAnimalSound() bool {
	return strings.TrimSpace(i.SoundPhonetic) != ""
}

// Category is a themed list of items in display order
type Category struct {
	ID    CategoryID     `json:"id" yaml:"id" validate:"required"`
	Name  string         `json:"name" yaml:"name" validate:"required"`
	Icon  string         `json:"icon" yaml:"icon"`
	Color string         `json:"color" yaml:"color"`
	Items []LearningItem `json:"items" yaml:"items" validate:"required,min=1,dive"`
}

// IsRhymes reports whether items of this category are spoken by lyrics
func (c *Category) IsRhymes() bool {
	return c.ID == Rhymes
}

var validate = validator.New()

// Validate checks every category and rejects duplicate ids
func Validate(cats []Category) error {
	if len(cats) == 0 {
		return fmt.Errorf("catalog has no categories")
	}

	seen := make(map[CategoryID]bool)
	for i := range cats {
		cat := &cats[i]
		if err := validate.Struct(cat); err != nil {
			return fmt.Errorf("invalid category %q: %w", cat.ID, err)
		}
		if seen[cat.ID] {
			return fmt.Errorf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = true

		items := make(map[string]bool)
		for _, item := range cat.Items {
			if items[item.ID] {
				return fmt.Errorf("duplicate item id %q in category %q", item.ID, cat.ID)
			}
			items[item.ID] = true
		}
	}
	return nil
}

// Find returns the category with the given id
func Find(cats []Category, id CategoryID) (*Category, bool) {
	for i := range cats {
		if cats[i].ID == id {
			return &cats[i], true
		}
	}
	return nil, false
}
