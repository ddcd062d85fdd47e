// Package web hosts the game for browsers: the page draws on a canvas and
// streams pointer samples over a websocket, the server runs one session per
// connection and answers every frame with the state to draw.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Message types.
const (
	// Client to server
	TypePointer = "pointer"
	TypeKey     = "key"
	TypeResize  = "resize"

	// Server to client
	TypeFrame = "frame"
)

// ErrUnknownMessage is returned for envelopes with an unrecognized type.
var ErrUnknownMessage = errors.New("unknown message type")

// Envelope wraps every message on the wire.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}

// Encode marshals payload inside an envelope of type t.
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, errors.New("encode: empty envelope type")
	}
	if payload == nil {
		return nil, fmt.Errorf("encode %s: nil payload", t)
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", t, err)
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

// DecodeEnvelope unmarshals the outer envelope.
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, errors.New("decode: empty message")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return e, nil
}

// DecodePayload unmarshals the envelope payload into T.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("decode %s: empty payload", env.T)
	}
	if err := json.Unmarshal(env.P, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", env.T, err)
	}
	return out, nil
}

// PointerMsg is a pointer sample in canvas pixels.
type PointerMsg struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// KeyMsg is a key press, named by KeyboardEvent.code.
type KeyMsg struct {
	Code string `json:"code"`
}

// ResizeMsg reports the canvas size in pixels.
type ResizeMsg struct {
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

// EntityState is one sprite to draw.
type EntityState struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Size   float64 `json:"size"`
	Facing string  `json:"facing,omitempty"`
}

// SoundEvent asks the page to start, stop or fire a sound.
type SoundEvent struct {
	Action string `json:"action"` // loop, stop or once
	Name   string `json:"name"`
}

// FrameMsg is everything the page needs to draw one frame.
type FrameMsg struct {
	Screens    []string     `json:"screens"`
	Score      int          `json:"score"`
	FinalScore int          `json:"finalScore"`
	Player     *EntityState `json:"player,omitempty"`
	Pursuer    *EntityState `json:"pursuer,omitempty"`
	Pickup     *EntityState `json:"pickup,omitempty"`
	Sounds     []SoundEvent `json:"sounds,omitempty"`
}

// command is a decoded client message ready to apply to a session.
type command struct {
	kind    string
	pointer PointerMsg
	key     KeyMsg
	resize  ResizeMsg
}

// decodeCommand turns a raw client message into a command.
func decodeCommand(b []byte) (command, error) {
	env, err := DecodeEnvelope(b)
	if err != nil {
		return command{}, err
	}
	cmd := command{kind: env.T}
	switch env.T {
	case TypePointer:
		cmd.pointer, err = DecodePayload[PointerMsg](env)
	case TypeKey:
		cmd.key, err = DecodePayload[KeyMsg](env)
	case TypeResize:
		cmd.resize, err = DecodePayload[ResizeMsg](env)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownMessage, env.T)
	}
	return cmd, err
}
