// Package voice keeps a speech recognition session running so spoken
// commands reach the game. Sessions that end or fail are restarted after a
// short delay. When no recognizer is available voice control is switched
// off without surfacing an error.
package voice
