// Package input turns raw key, mouse and window events into per-tick snapshots.
//
// Steering and throttle keys are level-sensitive: they count for as long as they
// are held. Everything else arrives as an edge event that fires once per press.
package input

// Key is a level-sensitive control.
type Key uint8

// Held controls.
const (
	KeyLeft Key = iota
	KeyRight
	KeyAccelerate
	KeyBrake
	keyCount
)

// EventType identifies an edge event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventToggleAnimation
	EventToggleDRS
	EventToggleHelp
	EventScreenshot
	EventScroll
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Width  int
	Height int
	Scroll float32
}

// Snapshot is the input for one tick. It is not modified after it is taken.
type Snapshot struct {
	held    [keyCount]bool
	Events  []Event
	MouseDX float32
	MouseDY float32
}

// Held reports whether k was down when the snapshot was taken.
func (s Snapshot) Held(k Key) bool {
	if k >= keyCount {
		return false
	}
	return s.held[k]
}

// Count returns how many events of type t arrived this tick.
func (s Snapshot) Count(t EventType) int {
	n := 0
	for _, e := range s.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Has reports whether at least one event of type t arrived this tick.
func (s Snapshot) Has(t EventType) bool {
	return s.Count(t) > 0
}

// Scroll returns the summed scroll amount of this tick.
func (s Snapshot) Scroll() float32 {
	var total float32
	for _, e := range s.Events {
		if e.Type == EventScroll {
			total += e.Scroll
		}
	}
	return total
}

// Collector accumulates input between ticks.
type Collector struct {
	held   [keyCount]bool
	events []Event
	dx, dy float32
}

// New creates an empty collector.
func New() *Collector {
	return &Collector{
		events: make([]Event, 0, 16),
	}
}

// SetHeld records a held key going down or up.
func (c *Collector) SetHeld(k Key, down bool) {
	if k < keyCount {
		c.held[k] = down
	}
}

// ReleaseAll marks every held key as up, e.g. when the window loses focus
// and key-up events would be missed.
func (c *Collector) ReleaseAll() {
	c.held = [keyCount]bool{}
}

// Trigger queues an edge event for a key press. Auto-repeat presses are dropped
// so a key held across many ticks fires exactly once.
func (c *Collector) Trigger(t EventType, repeat bool) {
	if repeat {
		return
	}
	c.events = append(c.events, Event{Type: t})
}

// Push queues an event as is.
func (c *Collector) Push(e Event) {
	c.events = append(c.events, e)
}

// AddMouse accumulates relative mouse motion.
func (c *Collector) AddMouse(dx, dy float32) {
	c.dx += dx
	c.dy += dy
}

// Snapshot returns the input gathered since the previous call and starts a new tick.
// Held keys carry over; events and mouse motion do not.
func (c *Collector) Snapshot() Snapshot {
	s := Snapshot{
		held:    c.held,
		MouseDX: c.dx,
		MouseDY: c.dy,
	}
	if len(c.events) > 0 {
		s.Events = make([]Event, len(c.events))
		copy(s.Events, c.events)
	}
	c.events = c.events[:0]
	c.dx, c.dy = 0, 0
	return s
}

// NewSnapshot builds a snapshot directly, for callers that do not poll devices.
func NewSnapshot(held []Key, events ...Event) Snapshot {
	var s Snapshot
	for _, k := range held {
		if k < keyCount {
			s.held[k] = true
		}
	}
	s.Events = events
	return s
}
