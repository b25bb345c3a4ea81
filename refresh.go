package atelier

// TransformPoll drives the periodic reflection of object transforms into a
// host panel. The host calls Tick from its frame loop; the callback fires at
// the configured rate unless a drag holds a suspend token.
type TransformPoll struct {
	interval  float64
	last      float64
	suspended int
	fn        func()
}

func NewTransformPoll(hz float64, fn func()) *TransformPoll {
	if hz <= 0 {
		hz = 10
	}
	return &TransformPoll{interval: 1 / hz, fn: fn}
}

// Tick fires the callback when the interval has elapsed since the last
// firing. now is in seconds.
func (p *TransformPoll) Tick(now float64) {
	if p.suspended > 0 {
		return
	}
	if now-p.last < p.interval {
		return
	}
	p.last = now
	if p.fn != nil {
		p.fn()
	}
}

// Suspend pauses the poll until the returned token is resumed. Tokens nest:
// the poll runs again once every outstanding token has been resumed.
func (p *TransformPoll) Suspend() *SuspendToken {
	p.suspended++
	return &SuspendToken{poll: p}
}

func (p *TransformPoll) Suspended() bool { return p.suspended > 0 }

// SuspendToken resumes its poll exactly once, no matter how many times
// Resume is called.
type SuspendToken struct {
	poll *TransformPoll
	done bool
}

func (t *SuspendToken) Resume() {
	if t == nil || t.done {
		return
	}
	t.done = true
	if t.poll.suspended > 0 {
		t.poll.suspended--
	}
}
