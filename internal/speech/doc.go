// Package speech speaks text to the child. A Speaker translates phrases
// into the active language, picks a voice for that language and hands the
// utterance to a SpeechOutput backend (espeak-ng or OpenAI TTS). Only the
// newest utterance plays; starting a new one cancels the previous.
package speech
