package translation

// English is the source language of all catalog content
const English = "en"

// Language is a selectable display and speech language
type Language struct {
	Code string
	Name string
	Flag string
}

// SupportedLanguages lists the languages offered on the home screen
var SupportedLanguages = []Language{
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "es", Name: "Español", Flag: "🇪🇸"},
	{Code: "fr", Name: "Français", Flag: "🇫🇷"},
	{Code: "hi", Name: "Hindi", Flag: "🇮🇳"},
	{Code: "ar", Name: "Arabic", Flag: "🇸🇦"},
	{Code: "zh", Name: "Chinese", Flag: "🇨🇳"},
	{Code: "de", Name: "Deutsch", Flag: "🇩🇪"},
	{Code: "pt", Name: "Português", Flag: "🇧🇷"},
	{Code: "ja", Name: "Japanese", Flag: "🇯🇵"},
	{Code: "ru", Name: "Russian", Flag: "🇷🇺"},
}

// LookupLanguage finds a supported language by code
func LookupLanguage(code string) (Language, bool) {
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// languageFor returns the supported language or a bare one named by its code
func languageFor(code string) Language {
	if l, ok := LookupLanguage(code); ok {
		return l
	}
	return Language{Code: code, Name: code}
}
