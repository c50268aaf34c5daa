package speech

import (
	"context"
	"reflect"
	"testing"

	"codeberg.org/snonux/kidsworld/internal/catalog"
	"codeberg.org/snonux/kidsworld/internal/testutil"
)

func TestSpeaker_EnglishIsNotTranslated(t *testing.T) {
	out := &FakeOutput{}
	tr := testutil.NewMockTranslator(map[string]string{})
	s := NewSpeaker(out, tr)

	s.Speak(context.Background(), "Hi! Let's play together!")
	s.Wait()

	if got := out.Texts(); !reflect.DeepEqual(got, []string{"Hi! Let's play together!"}) {
		t.Errorf("Unexpected utterances: %v", got)
	}
	if len(tr.Requests()) != 0 {
		t.Errorf("Expected no translation requests, got %v", tr.Requests())
	}

	u := out.Utterances()[0]
	if u.Pitch != 1.7 || u.Rate != 1.05 || u.Volume != 1 {
		t.Errorf("Unexpected acoustic params: %+v", u)
	}
	if u.Lang != "en-US" {
		t.Errorf("Expected en-US, got %s", u.Lang)
	}
}

func TestSpeaker_TranslatesIntoActiveLanguage(t *testing.T) {
	out := &FakeOutput{VoiceList: []Voice{{Name: "Monica", Lang: "es-ES"}}}
	tr := testutil.NewMockTranslator(map[string]string{"Going back!": "¡Volviendo!"})
	s := NewSpeaker(out, tr)
	s.SetLanguage("es")

	s.Speak(context.Background(), "Going back!")
	s.Wait()

	utterances := out.Utterances()
	if len(utterances) != 1 {
		t.Fatalf("Expected 1 utterance, got %d", len(utterances))
	}
	u := utterances[0]
	if u.Text != "¡Volviendo!" || u.Lang != "es" {
		t.Errorf("Unexpected utterance: %+v", u)
	}
	if u.Voice == nil || u.Voice.Name != "Monica" {
		t.Errorf("Expected Monica voice, got %+v", u.Voice)
	}
}

func TestSpeaker_NoMatchingVoice(t *testing.T) {
	out := &FakeOutput{VoiceList: []Voice{{Name: "Samantha", Lang: "en-US"}}}
	s := NewSpeaker(out, nil)
	s.SetLanguage("ja")

	s.Speak(context.Background(), "Hello")
	s.Wait()

	if u := out.Utterances()[0]; u.Voice != nil {
		t.Errorf("Expected system default voice, got %+v", u.Voice)
	}
}

func TestSpeaker_PlayAnimalSound(t *testing.T) {
	out := &FakeOutput{VoiceList: []Voice{{Name: "Thomas", Lang: "fr-FR"}}}
	tr := testutil.NewMockTranslator(map[string]string{"Moo! Moo!": "Meuh!"})
	s := NewSpeaker(out, tr)
	s.SetLanguage("fr")

	s.PlayAnimalSound(context.Background(), catalog.LearningItem{ID: "cow", Name: "Cow", SoundPhonetic: "Moo! Moo!"})
	s.Wait()

	u := out.Utterances()[0]
	if u.Text != "Moo! Moo!" {
		t.Errorf("Expected untranslated sound, got %q", u.Text)
	}
	if u.Rate != 0.9 || u.Pitch != 1.2 {
		t.Errorf("Unexpected animal params: %+v", u)
	}
	if u.Voice == nil || u.Voice.Name != "Thomas" {
		t.Errorf("Expected current language voice, got %+v", u.Voice)
	}
	if len(tr.Requests()) != 0 {
		t.Errorf("Expected no translation, got %v", tr.Requests())
	}
}

func TestSpeaker_PlayAnimalSoundWithoutSound(t *testing.T) {
	out := &FakeOutput{}
	s := NewSpeaker(out, nil)

	s.PlayAnimalSound(context.Background(), catalog.LearningItem{ID: "rose", Name: "Rose"})
	s.Wait()

	if len(out.Texts()) != 0 {
		t.Errorf("Expected silence, got %v", out.Texts())
	}
}

// gatedTranslator blocks translation of one phrase until released
type gatedTranslator struct {
	phrase  string
	entered chan struct{}
	release chan struct{}
}

func (g *gatedTranslator) Translate(ctx context.Context, text, lang string) string {
	if text == g.phrase {
		close(g.entered)
		<-g.release
	}
	return text + " (" + lang + ")"
}

func TestSpeaker_NewestWins(t *testing.T) {
	out := &FakeOutput{}
	tr := &gatedTranslator{phrase: "first", entered: make(chan struct{}), release: make(chan struct{})}
	s := NewSpeaker(out, tr)
	s.SetLanguage("de")

	s.Speak(context.Background(), "first")
	<-tr.entered

	s.Speak(context.Background(), "second")
	close(tr.release)
	s.Wait()

	if got := out.Texts(); !reflect.DeepEqual(got, []string{"second (de)"}) {
		t.Errorf("Expected only the newest utterance, got %v", got)
	}
	if out.Cancels() < 2 {
		t.Errorf("Expected each Speak to cancel the previous, got %d cancels", out.Cancels())
	}
}

func TestSpeaker_NilOutput(t *testing.T) {
	s := NewSpeaker(nil, nil)

	s.Speak(context.Background(), "anything")
	s.Wait()

	if err := s.Utter(context.Background(), "anything"); err != ErrUnavailable {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
}

func TestSpeaker_EmptyTextKeepsCurrentUtterance(t *testing.T) {
	out := &FakeOutput{}
	s := NewSpeaker(out, nil)

	s.Speak(context.Background(), "")
	s.Wait()

	if out.Cancels() != 0 {
		t.Errorf("Expected no cancellation, got %d", out.Cancels())
	}
	if len(out.Texts()) != 0 {
		t.Errorf("Expected silence, got %v", out.Texts())
	}
}

func TestSpeaker_RetriesVoiceListing(t *testing.T) {
	out := &FakeOutput{VoiceList: []Voice{{Name: "Anna", Lang: "de-DE"}}, VoiceFailures: 1}
	s := NewSpeaker(out, nil)
	s.SetLanguage("de")

	s.Speak(context.Background(), "Hallo")
	s.Wait()
	s.Speak(context.Background(), "Tschüss")
	s.Wait()
	s.Speak(context.Background(), "Danke")
	s.Wait()

	utterances := out.Utterances()
	if len(utterances) != 3 {
		t.Fatalf("Expected 3 utterances, got %d", len(utterances))
	}
	if utterances[0].Voice != nil {
		t.Errorf("Expected default voice after failed listing, got %+v", utterances[0].Voice)
	}
	for _, u := range utterances[1:] {
		if u.Voice == nil || u.Voice.Name != "Anna" {
			t.Errorf("Expected Anna after retry, got %+v", u.Voice)
		}
	}
	if out.Listings() != 2 {
		t.Errorf("Expected 2 listings, got %d", out.Listings())
	}
}
