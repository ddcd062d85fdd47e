package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/tomz197/fatcat/internal/game"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

func sample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Note is one step of a sequence. A zero Freq is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// sequence plays notes back to back with a short fade at each note edge.
// With loop set it never ends.
type sequence struct {
	notes  []Note
	lens   []int // Samples per note
	wave   WaveType
	amp    float64
	rate   beep.SampleRate
	loop   bool
	index  int
	pos    int
	phase  float64
	finish bool
}

// fadeSamples is the attack/release length applied to every note to avoid clicks.
const fadeSamples = 64

// NewSequence creates a streamer playing notes with the given waveform and
// amplitude. speed scales the tempo: 2 plays twice as fast.
func NewSequence(notes []Note, wave WaveType, amp, speed float64, rate beep.SampleRate, loop bool) beep.Streamer {
	if speed <= 0 {
		speed = 1
	}
	lens := make([]int, len(notes))
	for i, n := range notes {
		lens[i] = rate.N(time.Duration(float64(n.Duration) / speed))
		if lens[i] < 1 {
			lens[i] = 1
		}
	}
	return &sequence{
		notes:  notes,
		lens:   lens,
		wave:   wave,
		amp:    amp,
		rate:   rate,
		loop:   loop,
		finish: len(notes) == 0,
	}
}

func (s *sequence) Stream(samples [][2]float64) (n int, ok bool) {
	if s.finish {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.lens[s.index] {
			s.pos = 0
			s.index++
			if s.index >= len(s.notes) {
				if !s.loop {
					s.finish = true
					return i, i > 0
				}
				s.index = 0
			}
		}

		note := s.notes[s.index]
		var val float64
		if note.Freq > 0 {
			val = sample(s.wave, s.phase) * s.amp * edgeGain(s.pos, s.lens[s.index])
			s.phase += note.Freq / float64(s.rate)
			s.phase -= math.Floor(s.phase)
		}
		samples[i][0] = val
		samples[i][1] = val
		s.pos++
	}
	return len(samples), true
}

func (s *sequence) Err() error { return nil }

func edgeGain(pos, length int) float64 {
	fade := fadeSamples
	if length < 2*fade {
		fade = length / 2
	}
	if fade == 0 {
		return 1
	}
	switch {
	case pos < fade:
		return float64(pos) / float64(fade)
	case pos >= length-fade:
		return float64(length-pos) / float64(fade)
	}
	return 1
}

// Note frequencies in Hz.
const (
	noteC3 = 130.81
	noteG3 = 196.00
	noteA3 = 220.00
	noteC4 = 261.63
	noteE4 = 329.63
	noteF4 = 349.23
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteA5 = 880.00
	noteE6 = 1318.51
)

// soundtrackSpeed doubles the tempo of the background loop.
const soundtrackSpeed = 2.0

var soundtrackNotes = []Note{
	{noteC4, 200 * time.Millisecond}, {noteE4, 200 * time.Millisecond},
	{noteG4, 200 * time.Millisecond}, {noteE4, 200 * time.Millisecond},
	{noteF4, 200 * time.Millisecond}, {noteA4, 200 * time.Millisecond},
	{noteG4, 400 * time.Millisecond},
	{noteA3, 200 * time.Millisecond}, {noteC4, 200 * time.Millisecond},
	{noteE4, 200 * time.Millisecond}, {noteC4, 200 * time.Millisecond},
	{noteG3, 200 * time.Millisecond}, {0, 200 * time.Millisecond},
	{noteC3, 400 * time.Millisecond},
}

// TrackStreamer returns an endless streamer for a looping track.
func TrackStreamer(track game.Track, rate beep.SampleRate) beep.Streamer {
	switch track {
	case game.TrackSoundtrack:
		return NewSequence(soundtrackNotes, WaveTriangle, 0.2, soundtrackSpeed, rate, true)
	default:
		return beep.Silence(-1)
	}
}

// CueStreamer returns a finite streamer for a one-shot cue.
func CueStreamer(cue game.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case game.CueStart:
		return NewSequence([]Note{
			{noteC5, 100 * time.Millisecond},
			{noteE5, 100 * time.Millisecond},
			{noteG5, 150 * time.Millisecond},
		}, WaveSquare, 0.15, 1, rate, false)
	case game.CueEat:
		return NewSequence([]Note{
			{noteA5, 50 * time.Millisecond},
			{noteE6, 70 * time.Millisecond},
		}, WaveSquare, 0.15, 1, rate, false)
	case game.CueLose:
		return NewSequence([]Note{
			{noteG4, 200 * time.Millisecond},
			{noteC4, 200 * time.Millisecond},
			{noteG3, 300 * time.Millisecond},
		}, WaveSine, 0.35, 1, rate, false)
	default:
		return nil
	}
}
