package web

import (
	"errors"
	"testing"
)

func TestEncodeDecodeFrame(t *testing.T) {
	b, err := Encode(TypeFrame, FrameMsg{Screens: []string{"game"}, Score: 300})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.T != TypeFrame {
		t.Fatalf("type = %q", env.T)
	}
	f, err := DecodePayload[FrameMsg](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if f.Score != 300 || len(f.Screens) != 1 || f.Screens[0] != "game" {
		t.Fatalf("frame = %+v", f)
	}
}

func TestEncodeRejectsEmpty(t *testing.T) {
	if _, err := Encode("", PointerMsg{}); err == nil {
		t.Fatalf("expected error for empty type")
	}
	if _, err := Encode(TypePointer, nil); err == nil {
		t.Fatalf("expected error for nil payload")
	}
}

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    command
		wantErr error
	}{
		{name: "pointer", in: `{"t":"pointer","p":{"x":12.5,"y":40}}`, want: command{kind: TypePointer, pointer: PointerMsg{X: 12.5, Y: 40}}},
		{name: "key", in: `{"t":"key","p":{"code":"Space"}}`, want: command{kind: TypeKey, key: KeyMsg{Code: "Space"}}},
		{name: "resize", in: `{"t":"resize","p":{"w":1024,"h":768}}`, want: command{kind: TypeResize, resize: ResizeMsg{Width: 1024, Height: 768}}},
		{name: "unknown", in: `{"t":"chat","p":{"text":"hi"}}`, wantErr: ErrUnknownMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeCommand([]byte(tt.in))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeCommandMalformed(t *testing.T) {
	for _, in := range []string{"", "not json", `{"t":"pointer"}`, `{"t":"pointer","p":"x"}`} {
		if _, err := decodeCommand([]byte(in)); err == nil {
			t.Fatalf("decodeCommand(%q) succeeded", in)
		}
	}
}
