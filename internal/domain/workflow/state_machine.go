// Package workflow holds the status-tracking rules shared by every work order kind:
// transition validation, history bookkeeping, attachments and the clinic/lab thread.
package workflow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"odonto_docs/internal/domain/entities"

	"github.com/looplab/fsm"
)

var (
	ErrForbiddenTransition = errors.New("forbidden state transition")
	ErrUnknownState        = errors.New("unknown state")
	ErrMissingActor        = errors.New("missing actor")
	ErrAlreadySeeded       = errors.New("work order history already started")
)

// ForbiddenTransitionError identifies the rejected from -> to pair.
type ForbiddenTransitionError struct {
	Kind string
	From string
	To   string
}

func (e *ForbiddenTransitionError) Error() string {
	return fmt.Sprintf("%s: transition %q -> %q not allowed", e.Kind, e.From, e.To)
}

func (e *ForbiddenTransitionError) Is(target error) bool {
	return target == ErrForbiddenTransition
}

// StateMachine validates status changes over a closed set of states.
//
// A nil successor table builds a permissive machine where every state is reachable
// from every state, including itself. Otherwise only the listed successors are allowed
// and states with an empty row are terminal.
//
// Each target state is registered as a looplab/fsm event whose sources are the states
// allowed to reach it.
type StateMachine[S ~string] struct {
	kind       string
	states     []S
	known      map[S]struct{}
	strict     bool
	events     []fsm.EventDesc
	completion map[S]struct{}
}

func New[S ~string](kind string, states []S, table map[S][]S) *StateMachine[S] {
	m := &StateMachine[S]{
		kind:       kind,
		states:     append([]S(nil), states...),
		known:      make(map[S]struct{}, len(states)),
		strict:     table != nil,
		completion: map[S]struct{}{},
	}
	for _, s := range states {
		m.known[s] = struct{}{}
	}

	for _, to := range states {
		var src []string
		for _, from := range states {
			if !m.strict || contains(table[from], to) {
				src = append(src, string(from))
			}
		}
		if len(src) == 0 {
			continue
		}
		m.events = append(m.events, fsm.EventDesc{Name: string(to), Src: src, Dst: string(to)})
	}
	return m
}

// CompletesAt marks the states that close the work. Entering one stamps
// ActualCompletionAt; on permissive machines they are also reported as terminal.
func (m *StateMachine[S]) CompletesAt(states ...S) *StateMachine[S] {
	for _, s := range states {
		m.completion[s] = struct{}{}
	}
	return m
}

func (m *StateMachine[S]) Kind() string { return m.kind }

func (m *StateMachine[S]) Strict() bool { return m.strict }

func (m *StateMachine[S]) States() []S { return append([]S(nil), m.states...) }

func (m *StateMachine[S]) Known(s S) bool {
	_, ok := m.known[s]
	return ok
}

// Parse maps raw input onto a known state, ignoring surrounding blanks and case.
func (m *StateMachine[S]) Parse(raw string) (S, error) {
	raw = strings.TrimSpace(raw)
	for _, s := range m.states {
		if strings.EqualFold(string(s), raw) {
			return s, nil
		}
	}
	var zero S
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownState, m.kind, raw)
}

func (m *StateMachine[S]) Can(from, to S) bool {
	if !m.Known(from) || !m.Known(to) {
		return false
	}
	return fsm.NewFSM(string(from), m.events, nil).Can(string(to))
}

// AllowedSuccessors returns the reachable states from `from` in enumeration order.
func (m *StateMachine[S]) AllowedSuccessors(from S) []S {
	out := []S{}
	if !m.Known(from) {
		return out
	}
	f := fsm.NewFSM(string(from), m.events, nil)
	for _, s := range m.states {
		if f.Can(string(s)) {
			out = append(out, s)
		}
	}
	return out
}

// IsTerminal reports whether no further work is expected from s. Only strict machines
// enforce it.
func (m *StateMachine[S]) IsTerminal(s S) bool {
	if m.strict {
		return m.Known(s) && len(m.AllowedSuccessors(s)) == 0
	}
	_, ok := m.completion[s]
	return ok
}

// Seed writes the first history entry of a new order.
func (m *StateMachine[S]) Seed(order *entities.WorkOrder[S], initial S, actorID, note string, now time.Time) error {
	if len(order.History) > 0 {
		return ErrAlreadySeeded
	}
	if !m.Known(initial) {
		return fmt.Errorf("%w: %s %q", ErrUnknownState, m.kind, initial)
	}
	if strings.TrimSpace(actorID) == "" {
		return ErrMissingActor
	}
	m.appendTransition(order, initial, actorID, note, now)
	return nil
}

// Apply moves the order to `to`. On error the order is left untouched.
func (m *StateMachine[S]) Apply(order *entities.WorkOrder[S], to S, actorID, note string, now time.Time) error {
	if !m.Known(to) {
		return fmt.Errorf("%w: %s %q", ErrUnknownState, m.kind, to)
	}
	if strings.TrimSpace(actorID) == "" {
		return ErrMissingActor
	}
	from := order.CurrentState
	if !m.Can(from, to) {
		return &ForbiddenTransitionError{Kind: m.kind, From: string(from), To: string(to)}
	}
	m.appendTransition(order, to, actorID, note, now)
	return nil
}

func (m *StateMachine[S]) appendTransition(order *entities.WorkOrder[S], to S, actorID, note string, now time.Time) {
	now = now.UTC()
	if last, ok := order.LastTransition(); ok && now.Before(last.OccurredAt) {
		now = last.OccurredAt
	}

	order.History = append(order.History, entities.StateTransitionRecord[S]{
		State:      to,
		OccurredAt: now,
		ActorID:    strings.TrimSpace(actorID),
		Note:       strings.TrimSpace(note),
	})
	order.CurrentState = to
	order.UpdatedAt = now

	if _, done := m.completion[to]; done {
		if order.ActualCompletionAt == nil {
			at := now
			order.ActualCompletionAt = &at
		}
	} else {
		order.ActualCompletionAt = nil
	}
}

func contains[S comparable](list []S, v S) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
