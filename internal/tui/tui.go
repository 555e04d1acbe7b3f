// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders a server-supplied form in the terminal. Widgets are
// chosen by the control category of each field, and submission goes through
// the client form service.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	service service.ClientFormService
	logger  *logger.Logger
}

func New(svc service.ClientFormService, logger *logger.Logger) *TUI {
	return &TUI{service: svc, logger: logger}
}

// Run blocks until the user leaves the form. It returns ErrUserQuit when
// the program was interrupted with ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	finalModel, err := tea.NewProgram(
		newModel(ctx, t.service, t.logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		return fmt.Errorf("tui program failed: %w", err)
	}

	result, ok := finalModel.(model)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
