// Package audio plays the game's soundtrack and cues through beep.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/fatcat/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// speakerLock serializes mixer changes with the speaker's playback goroutine.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Player is a game.Audio backed by a beep mixer.
type Player struct {
	mu          sync.Mutex
	lock        sync.Locker // Guards mixer contents against the output goroutine
	mixer       *beep.Mixer
	loops       map[game.Track]*beep.Ctrl
	rate        beep.SampleRate
	initialized bool
}

var _ game.Audio = (*Player)(nil)

// NewPlayer creates a player. Nothing is audible until Initialize succeeds.
func NewPlayer() *Player {
	return &Player{
		lock:  speakerLock{},
		mixer: &beep.Mixer{},
		loops: make(map[game.Track]*beep.Ctrl),
		rate:  sampleRate,
	}
}

// Initialize opens the speaker and starts streaming the mixer at volume
// (0..1).
func (p *Player) Initialize(volume float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(masterVolume(p.mixer, volume))
	p.initialized = true
	return nil
}

func masterVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Close silences everything and closes the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.lock.Lock()
	p.mixer.Clear()
	p.lock.Unlock()
	clear(p.loops)
	speaker.Close()
	p.initialized = false
}

// PlayLoop starts a looping track. A track that is already playing is left alone.
func (p *Player) PlayLoop(track game.Track) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if ctrl, ok := p.loops[track]; ok && !ctrl.Paused {
		return
	}
	ctrl := &beep.Ctrl{Streamer: TrackStreamer(track, p.rate)}
	p.loops[track] = ctrl
	p.lock.Lock()
	p.mixer.Add(ctrl)
	p.lock.Unlock()
}

// Stop stops a looping track.
func (p *Player) Stop(track game.Track) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctrl, ok := p.loops[track]
	if !ok {
		return
	}
	delete(p.loops, track)
	p.lock.Lock()
	ctrl.Paused = true
	ctrl.Streamer = nil // Mixer drops it on the next pass
	p.lock.Unlock()
}

// PlayOnce plays a cue over whatever else is sounding.
func (p *Player) PlayOnce(cue game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := CueStreamer(cue, p.rate)
	if s == nil {
		return
	}
	p.lock.Lock()
	p.mixer.Add(s)
	p.lock.Unlock()
}

// Playing returns the number of streamers currently in the mixer.
func (p *Player) Playing() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.mixer.Len()
}
