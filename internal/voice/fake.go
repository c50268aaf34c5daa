package voice

import (
	"context"
	"sync"
)

// FakeSession is one scripted recognition session
type FakeSession struct {
	Transcripts []string
	Err         error
}

// FakeRecognizer replays scripted sessions. Once the script is exhausted
// it blocks until the context is done.
type FakeRecognizer struct {
	mu       sync.Mutex
	sessions []FakeSession
	started  int
}

// NewFake creates a recognizer playing sessions in order
func NewFake(sessions ...FakeSession) *FakeRecognizer {
	return &FakeRecognizer{sessions: sessions}
}

func (f *FakeRecognizer) Name() string { return "fake" }

// Recognize emits the next session's transcripts and returns its error
func (f *FakeRecognizer) Recognize(ctx context.Context, emit func(string)) error {
	f.mu.Lock()
	f.started++
	if len(f.sessions) == 0 {
		f.mu.Unlock()
		<-ctx.Done()
		return nil
	}
	s := f.sessions[0]
	f.sessions = f.sessions[1:]
	f.mu.Unlock()

	for _, t := range s.Transcripts {
		emit(t)
	}
	return s.Err
}

// Started returns how many sessions were started
func (f *FakeRecognizer) Started() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.started
}
