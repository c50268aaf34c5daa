// Package catalog holds the static learning content: categories of
// flashcard items shown in the picker, the learning flow and the quiz.
// The built-in catalog can be replaced by a YAML or JSON file.
package catalog
