// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-form-runner/internal/config"
	"github.com/MKhiriev/go-form-runner/internal/form"
	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/service"
	"github.com/MKhiriev/go-form-runner/internal/tui"
)

// App runs one form client session.
type App struct {
	formService service.ClientFormService
	ui          UI
	cfg         config.ClientRuntime
	out         io.Writer
	logger      *logger.Logger
}

// NewApp constructs the client application. The terminal UI is used unless
// cfg.AnswersFile is set.
func NewApp(services *service.ClientServices, cfg config.ClientRuntime, logger *logger.Logger) (*App, error) {
	if services == nil || services.FormService == nil {
		return nil, errNoServices
	}

	return &App{
		formService: services.FormService,
		ui:          tui.New(services.FormService, logger),
		cfg:         cfg,
		out:         os.Stdout,
		logger:      logger,
	}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context) error {
	if a.cfg.AnswersFile != "" {
		return a.runHeadless(ctx)
	}

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("user left the form")
		return nil
	}
	return err
}

// runHeadless fills the form from the answers file and submits it. The
// outcome message is printed to out.
func (a *App) runHeadless(ctx context.Context) error {
	answers, err := LoadAnswers(a.cfg.AnswersFile)
	if err != nil {
		return err
	}

	if err = a.formService.Load(ctx); err != nil {
		fmt.Fprintln(a.out, a.formService.Session().Message())
		return err
	}

	def, _ := a.formService.Session().Form()
	raw, err := answers.Raw(def)
	if err != nil {
		return err
	}

	for _, f := range def.Fields {
		if form.RequiredUnmet(f, raw) {
			return fmt.Errorf("%w: %s", ErrRequiredAnswer, f.PayloadKey())
		}
	}

	message, err := a.formService.Submit(ctx, raw)
	if err != nil {
		var subErr *service.SubmissionError
		if errors.As(err, &subErr) {
			fmt.Fprintln(a.out, subErr.Message)
		}
		return err
	}

	a.logger.Info().Str("answers", a.cfg.AnswersFile).Msg("headless submission accepted")
	fmt.Fprintln(a.out, message)
	return nil
}
