package speech

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingSynth records utterances and blocks until its context is
// cancelled or release is closed.
type blockingSynth struct {
	mu        sync.Mutex
	started   []string
	cancelled []string
	release   chan struct{}
}

func newBlockingSynth() *blockingSynth {
	return &blockingSynth{release: make(chan struct{})}
}

func (b *blockingSynth) fn(ctx context.Context, u Utterance) error {
	b.mu.Lock()
	b.started = append(b.started, u.Text)
	b.mu.Unlock()

	select {
	case <-ctx.Done():
		b.mu.Lock()
		b.cancelled = append(b.cancelled, u.Text)
		b.mu.Unlock()
		return ctx.Err()
	case <-b.release:
		return nil
	}
}

func (b *blockingSynth) startedTexts() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.started...)
}

func (b *blockingSynth) cancelledTexts() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.cancelled...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSpeakStartsUtterance(t *testing.T) {
	synth := newBlockingSynth()
	speaker := NewSpeaker(synth.fn)

	speaker.Speak(Utterance{Text: "Paneer Tikka"})
	waitFor(t, func() bool { return len(synth.startedTexts()) == 1 })
	assert.True(t, speaker.Speaking())

	close(synth.release)
	waitFor(t, func() bool { return !speaker.Speaking() })
}

// Starting a new utterance is the cancellation mechanism for the
// previous one: at most one utterance is active system-wide.
func TestSpeakCancelsPrevious(t *testing.T) {
	synth := newBlockingSynth()
	speaker := NewSpeaker(synth.fn)

	speaker.Speak(Utterance{Text: "first"})
	waitFor(t, func() bool { return len(synth.startedTexts()) == 1 })

	speaker.Speak(Utterance{Text: "second"})
	waitFor(t, func() bool { return len(synth.cancelledTexts()) == 1 })

	require.Equal(t, []string{"first"}, synth.cancelledTexts())
	assert.True(t, speaker.Speaking(), "the new utterance must still own the slot")
}

// A late completion from a superseded utterance must not clear the
// slot owned by a newer one.
func TestLateCallbackDoesNotClearNewerSlot(t *testing.T) {
	var mu sync.Mutex
	done := make(map[string]chan struct{})

	synth := func(ctx context.Context, u Utterance) error {
		mu.Lock()
		ch := make(chan struct{})
		done[u.Text] = ch
		mu.Unlock()
		<-ch
		return nil
	}

	speaker := NewSpeaker(synth)

	speaker.Speak(Utterance{Text: "old"})
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return done["old"] != nil
	})

	speaker.Speak(Utterance{Text: "new"})
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return done["new"] != nil
	})

	// The old utterance completes late, after being superseded.
	mu.Lock()
	close(done["old"])
	mu.Unlock()

	time.Sleep(50 * time.Millisecond)
	assert.True(t, speaker.Speaking(), "late completion of the old utterance cleared the new slot")

	mu.Lock()
	close(done["new"])
	mu.Unlock()
	waitFor(t, func() bool { return !speaker.Speaking() })
}

func TestStop(t *testing.T) {
	synth := newBlockingSynth()
	speaker := NewSpeaker(synth.fn)

	speaker.Speak(Utterance{Text: "halt me"})
	waitFor(t, func() bool { return len(synth.startedTexts()) == 1 })

	speaker.Stop()
	assert.False(t, speaker.Speaking())
	waitFor(t, func() bool { return len(synth.cancelledTexts()) == 1 })
}
