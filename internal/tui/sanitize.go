// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	displayPolicyOnce sync.Once
	displayPolicy     *bluemonday.Policy
)

// displayText strips markup from server-supplied text before it is drawn.
// It only affects what the terminal shows; labels keep their original value
// as payload keys.
func displayText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}
	cleaned := displaySanitizer().Sanitize(raw)
	return html.UnescapeString(cleaned)
}

func displaySanitizer() *bluemonday.Policy {
	displayPolicyOnce.Do(func() {
		displayPolicy = bluemonday.StrictPolicy()
	})
	return displayPolicy
}
