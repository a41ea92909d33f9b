// Package input turns the wireless command byte stream into a latched,
// edge-triggered flag set consumed once per simulation tick.
package input

import "io"

// State is the latched command set. A flag goes true when its command
// byte arrives and stays true until Clear, however many loop iterations
// pass in between. Multiple flags may be true at once: commands arriving
// in the same poll window are OR-combined, never queued.
type State struct {
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	Select bool
	Back   bool
}

// Clear resets every flag. The loop calls this after a scene consumed
// the state on a gated tick.
func (s *State) Clear() {
	*s = State{}
}

// Any returns true if at least one flag is latched.
func (s State) Any() bool {
	return s != State{}
}

// Decoder drains buffered command bytes and latches them into a State.
// Producers (key handler, radio bridge) feed bytes from any goroutine;
// Poll and Clear belong to the single consumer loop.
type Decoder struct {
	buf   chan byte
	state State
}

// NewDecoder creates a decoder with a small receive buffer. The channel
// stands in for the radio module's own byte buffer.
func NewDecoder() *Decoder {
	return &Decoder{buf: make(chan byte, 64)}
}

// Feed queues one received byte. It never blocks: when the buffer is
// full the byte is dropped, matching a transport with no flow control.
func (d *Decoder) Feed(b byte) {
	select {
	case d.buf <- b:
	default:
	}
}

// FeedString queues every byte of s.
func (d *Decoder) FeedString(s string) {
	for i := 0; i < len(s); i++ {
		d.Feed(s[i])
	}
}

// Pump copies bytes from r into the decoder until read error or EOF.
// Intended to run in its own goroutine per transport connection.
func (d *Decoder) Pump(r io.Reader) error {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for i := 0; i < n; i++ {
			d.Feed(buf[i])
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// Poll drains all currently-buffered bytes, latches recognized commands
// into the state and returns it. It never suspends; an empty buffer is a
// cheap no-op. Unrecognized bytes are silently ignored.
func (d *Decoder) Poll() *State {
	for {
		select {
		case b := <-d.buf:
			d.latch(b)
		default:
			return &d.state
		}
	}
}

// Clear resets the latched state.
func (d *Decoder) Clear() {
	d.state.Clear()
}

// latch maps one command byte onto the flag set. N and P are menu
// navigation aliases for Down and Up.
func (d *Decoder) latch(b byte) {
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	switch b {
	case 'U', 'P':
		d.state.Up = true
	case 'D', 'N':
		d.state.Down = true
	case 'L':
		d.state.Left = true
	case 'R':
		d.state.Right = true
	case 'S':
		d.state.Select = true
	case 'B':
		d.state.Back = true
	}
}
