package speech

import (
	"context"
	"sync"
)

// FakeOutput records utterances instead of playing them
type FakeOutput struct {
	VoiceList []Voice
	Err       error

	// VoiceFailures makes the first Voices calls fail
	VoiceFailures int

	mu         sync.Mutex
	utterances []Utterance
	cancels    int
	listings   int
}

// Name returns the backend name
func (f *FakeOutput) Name() string {
	return "fake"
}

// Voices returns VoiceList once VoiceFailures calls have failed
func (f *FakeOutput) Voices(ctx context.Context) ([]Voice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listings++
	if f.listings <= f.VoiceFailures {
		return nil, ErrUnavailable
	}
	return f.VoiceList, nil
}

// Listings returns how often Voices was called
func (f *FakeOutput) Listings() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listings
}

// Speak records u unless ctx is already done
func (f *FakeOutput) Speak(ctx context.Context, u Utterance) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.utterances = append(f.utterances, u)
	return f.Err
}

// Cancel counts cancellations
func (f *FakeOutput) Cancel() {
	f.mu.Lock()
	f.cancels++
	f.mu.Unlock()
}

// Utterances returns a copy of everything spoken
func (f *FakeOutput) Utterances() []Utterance {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Utterance(nil), f.utterances...)
}

// Texts returns the text of everything spoken
func (f *FakeOutput) Texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	texts := make([]string, len(f.utterances))
	for i, u := range f.utterances {
		texts[i] = u.Text
	}
	return texts
}

// Cancels returns how often Cancel was called
func (f *FakeOutput) Cancels() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancels
}
