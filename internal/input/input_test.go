package input

import (
	"reflect"
	"testing"
)

func TestParseKeys(t *testing.T) {
	in, rest := Parse([]byte(" x\r"))
	if !in.Space || !in.Enter || in.Quit {
		t.Fatalf("keys = %+v", in)
	}
	if rest != nil {
		t.Fatalf("rest = %q, want none", rest)
	}
	if in, _ := Parse([]byte("q")); !in.Quit {
		t.Fatalf("q should quit")
	}
}

func TestParseSGRMotion(t *testing.T) {
	data := []byte("\x1b[<35;10;5M\x1b[<35;12;6M")
	in, rest := Parse(data)
	want := []Pointer{{Col: 9, Row: 4}, {Col: 11, Row: 5}}
	if !reflect.DeepEqual(in.Moves, want) {
		t.Fatalf("moves = %v, want %v", in.Moves, want)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %q", rest)
	}
}

func TestParseSGRIgnoresReleaseAndWheel(t *testing.T) {
	in, _ := Parse([]byte("\x1b[<0;3;3m\x1b[<64;4;4M"))
	if len(in.Moves) != 0 {
		t.Fatalf("moves = %v, want none", in.Moves)
	}
}

func TestParseKeepsIncompleteSequence(t *testing.T) {
	in, rest := Parse([]byte(" \x1b[<35;1"))
	if !in.Space {
		t.Fatalf("space before partial sequence lost")
	}
	if string(rest) != "\x1b[<35;1" {
		t.Fatalf("rest = %q", rest)
	}

	in, rest = Parse(append(rest, []byte("0;7M")...))
	if len(in.Moves) != 1 || in.Moves[0] != (Pointer{Col: 9, Row: 6}) {
		t.Fatalf("moves = %v", in.Moves)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %q", rest)
	}
}

func TestParseArrowIsNotQuit(t *testing.T) {
	in, _ := Parse([]byte("\x1b[A"))
	if in.Quit {
		t.Fatalf("arrow key parsed as escape")
	}
}

func TestParseMalformedMouse(t *testing.T) {
	in, rest := Parse([]byte("\x1b[<35;x;1M "))
	if len(in.Moves) != 0 || !in.Space || len(rest) != 0 {
		t.Fatalf("in = %+v rest = %q", in, rest)
	}
}

func newTestStream(bytes ...byte) *Stream {
	s := &Stream{ch: make(chan byte, 64)}
	for _, b := range bytes {
		s.ch <- b
	}
	return s
}

func TestReadInputLoneEscapeQuitsNextFrame(t *testing.T) {
	s := newTestStream('\x1b')
	if in := ReadInput(s); in.Quit {
		t.Fatalf("escape quit before the sequence could complete")
	}
	if in := ReadInput(s); !in.Quit {
		t.Fatalf("lone escape never quit; pending = %q", s.pending)
	}
	if len(s.pending) != 0 {
		t.Fatalf("pending = %q after escape consumed", s.pending)
	}
}

func TestReadInputEscapeSplitAcrossFrames(t *testing.T) {
	s := newTestStream('\x1b')
	ReadInput(s)
	for _, b := range []byte("[<35;4;3M") {
		s.ch <- b
	}
	in := ReadInput(s)
	if in.Quit {
		t.Fatalf("mouse report split across frames read as Esc")
	}
	if len(in.Moves) != 1 || in.Moves[0] != (Pointer{Col: 3, Row: 2}) {
		t.Fatalf("moves = %v", in.Moves)
	}
}

func TestReadInputClosedStreamQuits(t *testing.T) {
	s := newTestStream(' ')
	close(s.ch)
	in := ReadInput(s)
	if !in.Space || !in.Quit {
		t.Fatalf("input = %+v, want space then quit", in)
	}
}
