// Package tui draws the game in the terminal with bubbletea. Keys and voice
// commands become game events; the commands the game returns are executed
// through an Effects implementation.
package tui
