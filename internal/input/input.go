// Package input turns a raw terminal byte stream into key presses and
// pointer motion.
package input

import (
	"bufio"
	"io"
)

// Escape sequences that switch xterm-compatible terminals into reporting
// every pointer motion in SGR encoding, and back.
const (
	EnableMouse  = "\033[?1003h\033[?1006h"
	DisableMouse = "\033[?1006l\033[?1003l"
)

// maxPending bounds how many bytes of an unfinished escape sequence are
// carried into the next frame.
const maxPending = 32

// Pointer is a pointer position in 0-based terminal cells.
type Pointer struct {
	Col, Row int
}

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Space   bool
	Enter   bool
	Moves   []Pointer // Every pointer sample since the last frame, oldest first
	Pressed []byte    // Raw bytes received this frame
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	pending []byte
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := &Stream{ch: make(chan byte, 256)}
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream without blocking.
func ReadInput(s *Stream) Input {
	buf := s.pending
	carried := len(buf)
	s.pending = nil

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in, rest := Parse(buf)
	// An escape left waiting a whole frame with nothing after it was the Esc key.
	if len(rest) == 1 && carried == 1 && len(buf) == 1 {
		in.Quit = true
		rest = nil
	}
	if len(rest) > 0 && len(rest) <= maxPending && !s.closed {
		s.pending = append(s.pending[:0], rest...)
	}
	if s.closed {
		in.Quit = true
	}
	return in
}

// Parse decodes buf. It returns any trailing bytes that start an escape
// sequence which is not yet complete.
func Parse(buf []byte) (Input, []byte) {
	in := Input{Pressed: buf}
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == '\x1b' {
			if i+1 >= len(buf) {
				return in, buf[i:]
			}
			if buf[i+1] == '[' {
				if i+2 >= len(buf) {
					return in, buf[i:]
				}
				if buf[i+2] == '<' {
					n, p, complete := parseSGRMouse(buf[i:])
					if !complete {
						return in, buf[i:]
					}
					if p != nil {
						in.Moves = append(in.Moves, *p)
					}
					i += n - 1
					continue
				}
				// Other CSI sequences (arrows etc.) are skipped.
				i += 2
				continue
			}
			in.Quit = true // Bare escape
			continue
		}
		applyByte(&in, b)
	}
	return in, nil
}

func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', 0x03: // q or Ctrl-C
		in.Quit = true
	case ' ':
		in.Space = true
	case '\n', '\r':
		in.Enter = true
	}
}

// parseSGRMouse decodes "ESC [ < btn ; col ; row M|m" at the start of data.
// It returns the sequence length, the pointer position for press, drag and
// motion reports (nil for releases, wheel events and malformed sequences),
// and whether the sequence was complete.
func parseSGRMouse(data []byte) (int, *Pointer, bool) {
	end := 3
	for end < len(data) && data[end] != 'M' && data[end] != 'm' {
		if end-3 > maxPending {
			return end, nil, true
		}
		end++
	}
	if end >= len(data) {
		return 0, nil, false
	}

	var fields [3]int
	field := 0
	for _, c := range data[3:end] {
		switch {
		case c >= '0' && c <= '9':
			fields[field] = fields[field]*10 + int(c-'0')
		case c == ';' && field < 2:
			field++
		default:
			return end + 1, nil, true
		}
	}
	if field != 2 || fields[1] < 1 || fields[2] < 1 {
		return end + 1, nil, true
	}

	btn := fields[0]
	if btn&64 != 0 || data[end] == 'm' {
		return end + 1, nil, true
	}
	return end + 1, &Pointer{Col: fields[1] - 1, Row: fields[2] - 1}, true
}
