package speech

import "strings"

// DefaultFriendlyMarkers are voice name fragments that usually mark a
// child-like or standard vendor voice
var DefaultFriendlyMarkers = []string{"kid", "child", "junior", "google"}

// LangTag returns the locale tag used for a language code
func LangTag(code string) string {
	if code == "en" {
		return "en-US"
	}
	return code
}

// SelectVoice picks a voice for lang. Voices whose locale starts with the
// language prefix are candidates; a candidate whose name contains one of
// markers wins, otherwise the first candidate. ok is false when no voice
// matches the language.
func SelectVoice(voices []Voice, lang string, markers []string) (Voice, bool) {
	prefix := strings.ToLower(lang)
	if i := strings.IndexAny(prefix, "-_"); i > 0 {
		prefix = prefix[:i]
	}
	if prefix == "" {
		return Voice{}, false
	}

	var candidates []Voice
	for _, v := range voices {
		if strings.HasPrefix(strings.ToLower(v.Lang), prefix) {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return Voice{}, false
	}

	for _, v := range candidates {
		name := strings.ToLower(v.Name)
		for _, m := range markers {
			if m != "" && strings.Contains(name, strings.ToLower(m)) {
				return v, true
			}
		}
	}
	return candidates[0], true
}
