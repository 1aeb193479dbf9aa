// Package slider implements the interval store behind a multi-handle range
// slider.
//
// A Store owns the axis bounds, the step, the range type and an ordered set of
// non-overlapping intervals. Every mutation either commits a new valid set and
// notifies listeners synchronously, or leaves the store untouched.
package slider

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/aalvaropc/multirange/internal/domain"
)

// addGapSteps is the distance, in steps, between the last interval and one
// appended without an explicit start.
const addGapSteps = 4

// View selects the working set or the baseline captured at construction.
type View int

const (
	ViewWorking View = iota
	ViewInitial
)

func (v View) String() string {
	if v == ViewInitial {
		return "initial"
	}
	return "working"
}

func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "working":
		return ViewWorking, nil
	case "initial", "baseline":
		return ViewInitial, nil
	default:
		return ViewWorking, fmt.Errorf("unsupported view %q (expected working|initial)", s)
	}
}

// State is a deep copy of the store contents, in base units.
type State struct {
	Bounds    domain.Bounds
	Step      float64
	RangeType domain.RangeType
	Intervals []domain.Interval
	Initial   []domain.Interval
}

type Store struct {
	mu sync.Mutex

	tr        domain.Transformer
	bounds    domain.Bounds
	rangeType domain.RangeType
	intervals []domain.Interval
	initial   []domain.Interval

	ids      IDGenerator
	log      *slog.Logger
	notifier notifier
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDGenerator replaces the default random-namespace sequence.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) {
		if g != nil {
			s.ids = g
		}
	}
}

// New builds a store from a config in transformed units.
// It fails with a KindInvalidConfig error when step is outside (0, 1],
// min >= max, the range type is unknown, or two intervals share an id.
func New(cfg domain.SliderConfig, opts ...Option) (*Store, error) {
	const op = "slider.new"

	step := cfg.Step
	switch {
	case math.IsNaN(step):
		return nil, domain.ConfigError(op, "step must be a number")
	case step > 1:
		return nil, domain.ConfigError(op, "step must be less than or equal to 1")
	case step <= 0:
		return nil, domain.ConfigError(op, "step must be greater than 0")
	}

	rt, err := domain.ParseRangeType(string(cfg.RangeType))
	if err != nil {
		return nil, domain.ConfigError(op, err.Error())
	}

	s := &Store{
		tr:        domain.NewTransformer(step),
		rangeType: rt,
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = NewRandomSequenceIDs()
	}

	s.bounds = domain.Bounds{Min: s.tr.ToBase(cfg.Min), Max: s.tr.ToBase(cfg.Max)}
	if !(s.bounds.Min < s.bounds.Max) {
		return nil, domain.ConfigError(op, fmt.Sprintf("min %v must be less than max %v", cfg.Min, cfg.Max))
	}

	intervals, dup := s.fromSpecs(cfg.Intervals, true)
	if dup != "" {
		return nil, domain.ConfigError(op, fmt.Sprintf("duplicate interval id %q", dup))
	}
	s.intervals = intervals
	s.initial = domain.CloneIntervals(intervals)

	s.log.Debug("slider.created",
		"min", s.bounds.Min,
		"max", s.bounds.Max,
		"step", step,
		"range_type", string(rt),
		"intervals", len(intervals),
	)
	return s, nil
}

func (s *Store) Transformer() domain.Transformer { return s.tr }
func (s *Store) Step() float64                   { return s.tr.Step() }
func (s *Store) RangeType() domain.RangeType     { return s.rangeType }

// Bounds returns the axis in base units.
func (s *Store) Bounds() domain.Bounds { return s.bounds }

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.intervals)
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// All returns the selected set in transformed units.
func (s *Store) All(v View) []domain.Interval {
	return s.tr.TransformAll(s.AllBase(v))
}

// AllBase returns the selected set in base units.
func (s *Store) AllBase(v View) []domain.Interval {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneIntervals(s.viewLocked(v))
}

// One returns a single interval in transformed units.
func (s *Store) One(id string, v View) (domain.Interval, bool) {
	iv, ok := s.OneBase(id, v)
	if !ok {
		return domain.Interval{}, false
	}
	return s.tr.TransformInterval(iv), true
}

func (s *Store) OneBase(id string, v View) (domain.Interval, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.viewLocked(v)
	if i := indexOf(set, id); i >= 0 {
		return set[i], true
	}
	return domain.Interval{}, false
}

// Update edits one edge of interval id. mutate receives a copy of the interval
// in base units; only the named edge of its result is used.
//
// The candidate is rejected when it would make start >= end. Otherwise the
// edge is snapped to the neighbouring interval (or the axis) it would overlap.
// Update reports whether the store changed; unknown ids and rejected or
// unchanged candidates return false without notifying.
//
// mutate runs without the store lock held, so it may read the store.
func (s *Store) Update(id string, edge domain.Edge, mutate func(domain.Interval) domain.Interval) bool {
	if mutate == nil || (edge != domain.EdgeStart && edge != domain.EdgeEnd) {
		return false
	}

	seen, ok := s.OneBase(id, ViewWorking)
	if !ok {
		return false
	}
	v := edge.Value(mutate(seen))

	s.mu.Lock()

	// The interval may have been deleted while mutate ran.
	i := indexOf(s.intervals, id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}

	orig := s.intervals[i]
	cand := edge.Set(orig, v)

	if reason := rejectReason(cand, edge); reason != "" {
		s.mu.Unlock()
		s.log.Debug("slider.update.rejected", "id", id, "edge", string(edge), "value", v, "reason", reason)
		return false
	}

	cand = s.clampLocked(i, cand, edge)
	if cand.Start >= cand.End || cand == orig {
		s.mu.Unlock()
		return false
	}

	s.intervals[i] = cand
	st := s.stateLocked()
	s.mu.Unlock()

	s.notifier.emit(st, []Change{{Kind: ChangeUpdated, Interval: cand, store: s}})
	return true
}

// SetEdge moves one edge of interval id to value (base units).
func (s *Store) SetEdge(id string, edge domain.Edge, value float64) bool {
	return s.Update(id, edge, func(iv domain.Interval) domain.Interval {
		return edge.Set(iv, value)
	})
}

// Add appends a new interval. p is in transformed units; a missing start is
// placed a few steps after the last interval (or at the axis minimum) and a
// missing end one step after the start. A supplied start is raised to the
// axis minimum and to the end of the last interval, and the end is clamped to
// the axis maximum. A KindInvalidRange error is returned, and logged, when
// the result would have start >= end or the supplied id is already in use.
func (s *Store) Add(p domain.PartialInterval) (domain.Interval, error) {
	const op = "slider.add"
	step := s.tr.Step()

	s.mu.Lock()

	var start float64
	switch {
	case p.Start != nil:
		start = max(s.tr.ToBase(*p.Start), s.bounds.Min)
		if n := len(s.intervals); n > 0 {
			start = max(start, s.intervals[n-1].End)
		}
	case len(s.intervals) > 0:
		start = domain.Round2(s.intervals[len(s.intervals)-1].End + addGapSteps*step)
	default:
		start = s.bounds.Min
	}

	end := domain.Round2(start + step)
	if p.End != nil {
		end = s.tr.ToBase(*p.End)
	}
	if end > s.bounds.Max {
		end = s.bounds.Max
	}

	if !(start < end) {
		s.mu.Unlock()
		err := domain.InvalidRangeError(op, start, end)
		s.log.Warn("slider.add.invalid_range", "start", start, "end", end, "err", err)
		return domain.Interval{}, err
	}

	id := p.ID
	if id == "" {
		id = freshID(s.ids, s.takenLocked())
	} else if indexOf(s.intervals, id) >= 0 {
		s.mu.Unlock()
		err := &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidRange,
			Err:  fmt.Errorf("interval id %q already in use: %w", id, domain.ErrInvalidRange),
		}
		s.log.Warn("slider.add.duplicate_id", "id", id)
		return domain.Interval{}, err
	}

	iv := domain.Interval{ID: id, Start: start, End: end}
	s.intervals = append(s.intervals, iv)
	st := s.stateLocked()
	s.mu.Unlock()

	s.notifier.emit(st, []Change{{Kind: ChangeCreated, Interval: iv, store: s}})
	return iv, nil
}

// Delete removes the first interval with the given id.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()

	i := indexOf(s.intervals, id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}

	removed := s.intervals[i]
	s.intervals = slices.Delete(domain.CloneIntervals(s.intervals), i, i+1)
	st := s.stateLocked()
	s.mu.Unlock()

	s.notifier.emit(st, []Change{{Kind: ChangeDeleted, Interval: removed, store: s}})
	return true
}

// ReplaceAll swaps the working set for specs (transformed units). Missing or
// repeated ids are replaced with generated ones; nothing else is validated.
// With resetBaseline the initial snapshot is overwritten as well.
func (s *Store) ReplaceAll(specs []domain.IntervalSpec, resetBaseline bool) {
	s.mu.Lock()
	next, _ := s.fromSpecs(specs, false)
	s.replaceLocked(next, resetBaseline)
}

// Reset restores the working set to the baseline.
func (s *Store) Reset() {
	s.mu.Lock()
	s.replaceLocked(domain.CloneIntervals(s.initial), false)
}

// Subscribe registers fn to receive the state after every committed mutation.
func (s *Store) Subscribe(fn Listener) *Subscription {
	return s.notifier.add(entry{onState: fn})
}

// OnChange registers fn to receive per-interval changes.
func (s *Store) OnChange(fn ChangeListener) *Subscription {
	return s.notifier.add(entry{onChange: fn})
}

// replaceLocked must be called with s.mu held; it releases it.
func (s *Store) replaceLocked(next []domain.Interval, resetBaseline bool) {
	prev := s.intervals
	s.intervals = next
	if resetBaseline {
		s.initial = domain.CloneIntervals(next)
	}
	st := s.stateLocked()
	s.mu.Unlock()

	s.log.Debug("slider.replaced", "intervals", len(next), "reset_baseline", resetBaseline)
	s.notifier.emit(st, s.diff(prev, next))
}

func (s *Store) diff(prev, next []domain.Interval) []Change {
	var out []Change
	for _, iv := range next {
		if i := indexOf(prev, iv.ID); i >= 0 && prev[i] == iv {
			continue
		}
		out = append(out, Change{Kind: ChangeReplaced, Interval: iv, store: s})
	}
	for _, iv := range prev {
		if indexOf(next, iv.ID) < 0 {
			out = append(out, Change{Kind: ChangeDeleted, Interval: iv, store: s})
		}
	}
	return out
}

func (s *Store) fromSpecs(specs []domain.IntervalSpec, strict bool) ([]domain.Interval, string) {
	supplied := make([]string, len(specs))
	for i, sp := range specs {
		supplied[i] = strings.TrimSpace(sp.ID)
	}
	ids, dup := assignIDs(s.ids, supplied, strict)
	if dup != "" {
		return nil, dup
	}

	out := make([]domain.Interval, len(specs))
	for i, sp := range specs {
		out[i] = domain.Interval{ID: ids[i], Start: s.tr.ToBase(sp.Start), End: s.tr.ToBase(sp.End)}
	}
	return out, ""
}

func (s *Store) clampLocked(i int, cand domain.Interval, edge domain.Edge) domain.Interval {
	last := len(s.intervals) - 1
	switch edge {
	case domain.EdgeStart:
		if i > 0 {
			if prev := s.intervals[i-1]; prev.End > cand.Start {
				cand.Start = prev.End
			}
		} else if cand.Start < s.bounds.Min {
			cand.Start = s.bounds.Min
		}
	case domain.EdgeEnd:
		if i < last {
			if next := s.intervals[i+1]; next.Start < cand.End {
				cand.End = next.Start
			}
		} else if cand.End > s.bounds.Max {
			cand.End = s.bounds.Max
		}
	}
	return cand
}

func (s *Store) viewLocked(v View) []domain.Interval {
	if v == ViewInitial {
		return s.initial
	}
	return s.intervals
}

func (s *Store) takenLocked() map[string]bool {
	taken := make(map[string]bool, len(s.intervals))
	for _, iv := range s.intervals {
		taken[iv.ID] = true
	}
	return taken
}

func (s *Store) stateLocked() State {
	return State{
		Bounds:    s.bounds,
		Step:      s.tr.Step(),
		RangeType: s.rangeType,
		Intervals: domain.CloneIntervals(s.intervals),
		Initial:   domain.CloneIntervals(s.initial),
	}
}

func rejectReason(cand domain.Interval, edge domain.Edge) string {
	v := edge.Value(cand)
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return "not a finite number"
	case edge == domain.EdgeStart && cand.Start >= cand.End:
		return "start must stay below end"
	case edge == domain.EdgeEnd && cand.End <= cand.Start:
		return "end must stay above start"
	}
	return ""
}

func indexOf(set []domain.Interval, id string) int {
	for i, iv := range set {
		if iv.ID == id {
			return i
		}
	}
	return -1
}
