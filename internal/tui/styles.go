// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

const (
	inputWidth     = 48
	textareaHeight = 4
	uiDivider      = "──────────────────────────────────────────────────────"
)

var (
	appStyle          = lipgloss.NewStyle().Padding(1, 2)
	titleStyle        = lipgloss.NewStyle().Bold(true)
	labelStyle        = lipgloss.NewStyle()
	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	requiredStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626"))
	helpStyle         = lipgloss.NewStyle().Faint(true)
	errorStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#dc2626"))
	overlayBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	buttonStyle         = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder())
	focusedButtonStyle  = buttonStyle.Bold(true).BorderForeground(lipgloss.Color("39"))
	disabledButtonStyle = buttonStyle.Faint(true)
)
