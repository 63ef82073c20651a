package speech

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Utterance is one speech request.
type Utterance struct {
	Text string
	Rate int // words per minute; 0 means the synthesizer default
}

// SynthFunc performs the actual, blocking synthesis. It must honour
// context cancellation.
type SynthFunc func(ctx context.Context, u Utterance) error

// Speaker holds at most one active utterance system-wide. Starting a
// new utterance cancels the active one; that is the only cancellation
// mechanism. A late completion from a superseded utterance must never
// clear the slot of a newer one, so the slot is guarded by a
// generation counter.
type Speaker struct {
	mu     sync.Mutex
	synth  SynthFunc
	cancel context.CancelFunc
	gen    uint64
}

// NewSpeaker builds a Speaker backed by the given synthesis function.
// Pass nil to use the platform command synthesizer.
func NewSpeaker(synth SynthFunc) *Speaker {
	if synth == nil {
		synth = CommandSynth("")
	}
	return &Speaker{synth: synth}
}

// Speak cancels any active utterance and starts a new one. It returns
// as soon as the utterance has been started; synthesis completes in
// the background.
func (s *Speaker) Speak(u Utterance) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	go func() {
		err := s.synth(ctx, u)
		if err != nil && ctx.Err() == nil {
			log.Warnf("speech synthesis failed: %v", err)
		}

		s.mu.Lock()
		// Only the utterance that still owns the slot may clear it.
		if s.gen == gen {
			s.cancel = nil
		}
		s.mu.Unlock()
	}()
}

// Stop cancels the active utterance, if any.
func (s *Speaker) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
}

// Speaking reports whether an utterance currently owns the slot.
func (s *Speaker) Speaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// CommandSynth synthesizes through an external command: the given one
// when set, otherwise `say` on macOS and `espeak` elsewhere.
func CommandSynth(command string) SynthFunc {
	return func(ctx context.Context, u Utterance) error {
		name := command
		if name == "" {
			if runtime.GOOS == "darwin" {
				name = "say"
			} else {
				name = "espeak"
			}
		}

		args := []string{}
		if u.Rate > 0 {
			switch name {
			case "say":
				args = append(args, "-r", strconv.Itoa(u.Rate))
			case "espeak":
				args = append(args, "-s", strconv.Itoa(u.Rate))
			}
		}
		args = append(args, u.Text)

		cmd := exec.CommandContext(ctx, name, args...)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s failed: %w", name, err)
		}
		return nil
	}
}
