// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

// State is a node of the session state graph.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	LoadFailed
	Ready
	Submitting
	SubmitSucceeded
	SubmitFailed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case LoadFailed:
		return "load_failed"
	case Ready:
		return "ready"
	case Submitting:
		return "submitting"
	case SubmitSucceeded:
		return "submit_succeeded"
	case SubmitFailed:
		return "submit_failed"
	}
	return "unknown"
}

// Terminal reports whether no further transition leaves s.
func (s State) Terminal() bool {
	return s == LoadFailed || s == SubmitSucceeded
}

// transitions lists the allowed edges of the graph.
var transitions = map[State][]State{
	Idle:         {Loading},
	Loading:      {Loaded, LoadFailed},
	Loaded:       {Ready},
	Ready:        {Submitting},
	Submitting:   {SubmitSucceeded, SubmitFailed},
	SubmitFailed: {Ready},
}

func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
