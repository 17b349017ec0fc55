package services

// SwipeThreshold is the horizontal displacement, in logical pixels, at
// which a drag commits to a decision instead of snapping back.
const SwipeThreshold = 100.0

// Direction is the committed side of a swipe.
type Direction int

const (
	DirectionReject Direction = iota // left, pass
	DirectionAccept                  // right, like
)

func (d Direction) String() string {
	if d == DirectionAccept {
		return "accept"
	}
	return "reject"
}

// GestureFrame is the per-move readout used for card translation and
// label fade. Ratio is presentation only and never feeds the commit
// decision.
type GestureFrame struct {
	Dx    float64
	Dy    float64
	Ratio float64
}

// GestureOutcome resolves a finished drag: either a committed direction
// or a cancel (snap back, no decision).
type GestureOutcome struct {
	Committed bool
	Direction Direction
}

// GestureTracker classifies one pointer interaction on the front card
// into a commit or a cancel. It only interprets input; it never touches
// the queue. State lives for a single down/move/up sequence.
type GestureTracker struct {
	threshold float64
	active    bool
	startX    float64
	startY    float64
	curX      float64
	curY      float64
}

// NewGestureTracker returns a tracker with the default commit distance.
func NewGestureTracker() *GestureTracker {
	return &GestureTracker{threshold: SwipeThreshold}
}

// Begin starts tracking at the pointer-down position. A Begin while a
// gesture is already active restarts from the new origin.
func (g *GestureTracker) Begin(x, y float64) {
	g.active = true
	g.startX = x
	g.startY = y
	g.curX = x
	g.curY = y
}

// Active reports whether a gesture is in progress.
func (g *GestureTracker) Active() bool {
	return g.active
}

// Update records a pointer move and returns the current frame. Without
// an active gesture it is a silent no-op (duplicate move events after
// release are normal).
func (g *GestureTracker) Update(x, y float64) (GestureFrame, bool) {
	if !g.active {
		return GestureFrame{}, false
	}
	g.curX = x
	g.curY = y
	dx := x - g.startX
	dy := y - g.startY
	ratio := abs(dx) / g.threshold
	if ratio > 1 {
		ratio = 1
	}
	return GestureFrame{Dx: dx, Dy: dy, Ratio: ratio}, true
}

// End resolves the gesture at the pointer-up position. Displacement at
// or past the threshold commits toward sign(dx); anything shorter
// cancels. Without an active gesture End is a no-op cancel.
func (g *GestureTracker) End(x float64) GestureOutcome {
	if !g.active {
		return GestureOutcome{}
	}
	g.active = false
	dx := x - g.startX
	if abs(dx) >= g.threshold {
		dir := DirectionReject
		if dx > 0 {
			dir = DirectionAccept
		}
		return GestureOutcome{Committed: true, Direction: dir}
	}
	return GestureOutcome{}
}

// Cancel resolves the gesture as cancelled, whatever the displacement.
// Used for platform-level interruptions (pointer capture lost); those
// must never turn into a silent commit.
func (g *GestureTracker) Cancel() GestureOutcome {
	g.active = false
	return GestureOutcome{}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
