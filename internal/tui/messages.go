// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type formLoadedMsg struct {
	err error
}

// submitDoneMsg carries the message shown in the result overlay.
type submitDoneMsg struct {
	message string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
