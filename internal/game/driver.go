package game

// Driver runs a session off a Clock: each frame calls Tick once and re-arms
// the clock only while Tick returns StepContinue.
type Driver struct {
	clock   Clock
	session *Session
	armed   bool
}

// NewDriver binds a session to a clock.
func NewDriver(clock Clock, s *Session) *Driver {
	return &Driver{clock: clock, session: s}
}

// Start starts the session and schedules its first tick.
func (d *Driver) Start() {
	d.session.Start()
	d.arm()
}

// Restart forwards a restart request and schedules ticks if a run started.
func (d *Driver) Restart() bool {
	if !d.session.RequestRestart() {
		return false
	}
	d.arm()
	return true
}

// Armed reports whether a tick is pending on the clock.
func (d *Driver) Armed() bool { return d.armed }

func (d *Driver) arm() {
	if d.armed {
		return
	}
	d.armed = true
	d.clock.OnNextFrame(d.frame)
}

func (d *Driver) frame() {
	d.armed = false
	if d.session.Tick() == StepContinue {
		d.arm()
	}
}

// FrameQueue is a Clock for hosts that own their frame loop: callbacks
// scheduled during a frame run on the next call to Advance.
type FrameQueue struct {
	pending []func()
}

// OnNextFrame implements Clock.
func (q *FrameQueue) OnNextFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Advance runs the callbacks scheduled before this call.
func (q *FrameQueue) Advance() {
	due := q.pending
	q.pending = nil
	for _, fn := range due {
		fn()
	}
}

// Len returns the number of pending callbacks.
func (q *FrameQueue) Len() int { return len(q.pending) }
