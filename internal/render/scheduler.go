package render

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/pixself/pixself-api/internal/entities"
)

// HashSelections returns a stable content hash of a selection set. Part
// keys are sorted before serialization so the hash is independent of map
// iteration order.
func HashSelections(selections entities.SelectionSet) string {
	keys := make([]string, 0, len(selections))
	for part := range selections {
		keys = append(keys, string(part))
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, key := range keys {
		sel := selections[entities.PartKey(key)]
		data, _ := json.Marshal(sel)
		h.Write([]byte(key))
		h.Write([]byte{':'})
		h.Write(data)
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// DefaultFrameInterval caps interactive redraws at roughly 60 per second
const DefaultFrameInterval = time.Second / 60

// Scheduler coalesces interactive redraw requests. Redundant requests
// (same content hash as the last draw) are dropped and cancel any queued
// state; requests inside the frame budget replace any pending one, so only
// the most recent selection state is ever drawn. Stale states are
// discarded rather than drawn late.
type Scheduler struct {
	draw     func(entities.SelectionSet)
	interval time.Duration

	mu       sync.Mutex
	lastHash string
	lastDraw time.Time
	pending  entities.SelectionSet
	timer    *time.Timer
	stopped  bool
}

// NewScheduler creates a scheduler that invokes draw with the winning
// selection state. interval <= 0 uses the default frame budget.
func NewScheduler(interval time.Duration, draw func(entities.SelectionSet)) *Scheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Scheduler{
		draw:     draw,
		interval: interval,
	}
}

// Request asks for a redraw of the given state. Returns true when the
// request was accepted (drawn now or queued), false when it was dropped as
// redundant.
func (s *Scheduler) Request(selections entities.SelectionSet) bool {
	hash := HashSelections(selections)

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return false
	}
	if hash == s.lastHash {
		// The screen already shows this state. The newest request still
		// supersedes anything queued, so a pending older state must not
		// paint over it.
		s.pending = nil
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
		s.mu.Unlock()
		return false
	}

	now := time.Now()
	if now.Sub(s.lastDraw) >= s.interval && s.timer == nil {
		s.lastHash = hash
		s.lastDraw = now
		s.mu.Unlock()
		s.draw(selections)
		return true
	}

	// Inside the frame budget: keep only the newest pending state.
	s.pending = selections
	if s.timer == nil {
		wait := s.interval - now.Sub(s.lastDraw)
		if wait < 0 {
			wait = 0
		}
		s.timer = time.AfterFunc(wait, s.flush)
	}
	s.mu.Unlock()
	return true
}

func (s *Scheduler) flush() {
	s.mu.Lock()
	s.timer = nil
	sel := s.pending
	s.pending = nil
	if s.stopped || sel == nil {
		s.mu.Unlock()
		return
	}
	hash := HashSelections(sel)
	if hash == s.lastHash {
		s.mu.Unlock()
		return
	}
	s.lastHash = hash
	s.lastDraw = time.Now()
	s.mu.Unlock()

	s.draw(sel)
}

// Stop cancels any pending redraw
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
}
