// Package models lists the models available to the configured API keys so
// a parent can pick a translation or speech model for kidsworld.
package models
