package search

import (
	"strconv"
	"strings"
)

// State is the selector's current mode.
type State int

// Selector states.
const (
	Idle State = iota
	ShowingResults
)

// ActionKind classifies what the host should do with the user's input.
type ActionKind int

// Selector actions.
const (
	// ActionExecute runs the selected result's invocation.
	ActionExecute ActionKind = iota
	// ActionEdit loads the invocation into the input buffer without running it.
	ActionEdit
	// ActionCancel leaves search mode with no selection.
	ActionCancel
	// ActionRequery runs a new search with Query and shows its results.
	ActionRequery
)

// Action is the selector's decision for one line of follow-up input.
type Action struct {
	Kind   ActionKind
	Result *Result // set for Execute and Edit
	Query  string  // set for Requery
}

// Selector interprets the user's follow-up input after search results were
// displayed. It is a two-state machine: Idle until results are shown, then
// ShowingResults until a selection, a cancel or nothing-in-range returns it
// to Idle. Any input that is not a selection re-enters search with that
// input as the new query.
type Selector struct {
	state   State
	results []Result
}

// NewSelector creates a selector in the Idle state
func NewSelector() *Selector {
	return &Selector{state: Idle}
}

// State returns the current state
func (s *Selector) State() State {
	return s.state
}

// Show records displayed results and enters ShowingResults.
func (s *Selector) Show(results []Result) {
	s.results = results
	s.state = ShowingResults
}

// Resolve translates one line of user input into an action.
//
//   - empty input cancels;
//   - a bare 1-based integer N executes result N;
//   - "e" followed by N edits result N;
//   - an out-of-range N in either form cancels (no candidate);
//   - anything else is a new query, and the selector stays in
//     ShowingResults awaiting the refreshed results via Show.
func (s *Selector) Resolve(input string) Action {
	input = strings.TrimSpace(input)

	if s.state != ShowingResults {
		if input == "" {
			return Action{Kind: ActionCancel}
		}
		return Action{Kind: ActionRequery, Query: input}
	}

	if input == "" {
		s.reset()
		return Action{Kind: ActionCancel}
	}

	if n, err := strconv.Atoi(input); err == nil && n >= 0 {
		return s.pick(n, ActionExecute)
	}

	if rest, ok := strings.CutPrefix(input, "e"); ok {
		if n, err := strconv.Atoi(rest); err == nil && n >= 0 {
			return s.pick(n, ActionEdit)
		}
	}

	return Action{Kind: ActionRequery, Query: input}
}

// pick selects the 1-based result n, treating out-of-range as cancellation.
func (s *Selector) pick(n int, kind ActionKind) Action {
	defer s.reset()
	if n < 1 || n > len(s.results) {
		return Action{Kind: ActionCancel}
	}
	result := s.results[n-1]
	return Action{Kind: kind, Result: &result}
}

func (s *Selector) reset() {
	s.results = nil
	s.state = Idle
}
