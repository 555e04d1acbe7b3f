// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-form-runner/internal/app"
	"github.com/MKhiriev/go-form-runner/internal/form"
	"github.com/MKhiriev/go-form-runner/internal/logger"
	"github.com/MKhiriev/go-form-runner/internal/service"
	"github.com/MKhiriev/go-form-runner/internal/session"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"
)

// clipboardWriteAll is replaced in tests.
var clipboardWriteAll = clipboard.WriteAll

const statusTTL = 2 * time.Second

// model renders one form instance. The session of the form service is the
// source of truth for load and submit state; the model only adds focus,
// widget state and the result overlay.
type model struct {
	ctx     context.Context
	service service.ClientFormService
	logger  *logger.Logger

	spinner spinner.Model
	title   string
	fields  []fieldModel

	// focus indexes fields; len(fields) is the submit button.
	focus int

	submitting bool
	payload    string

	overlay        string
	overlaySuccess bool
	status         string

	quitByUser bool
}

func newModel(ctx context.Context, svc service.ClientFormService, log *logger.Logger) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return model{
		ctx:     ctx,
		service: svc,
		logger:  log,
		spinner: s,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		return m.updateKey(msg)
	case formLoadedMsg:
		if msg.err != nil {
			return m, nil
		}
		cmd := m.buildFields()
		return m, cmd
	case submitDoneMsg:
		m.submitting = false
		m.overlay = msg.message
		m.overlaySuccess = msg.err == nil
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "model.Update").Msg("copy to clipboard failed")
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Payload copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state() {
	case session.Idle, session.Loading, session.Loaded:
		return m, nil
	case session.LoadFailed:
		if key.Matches(msg, keys.enter, keys.esc) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.overlay != "" {
		switch {
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(m.payload)
		case key.Matches(msg, keys.enter, keys.esc):
			if m.overlaySuccess {
				return m, tea.Quit
			}
			m.overlay = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		cmd := m.setFocus(m.focus + 1)
		return m, cmd
	case key.Matches(msg, keys.backtab):
		cmd := m.setFocus(m.focus - 1)
		return m, cmd
	case key.Matches(msg, keys.submit):
		return m.submit()
	case key.Matches(msg, keys.enter):
		if m.onSubmitButton() {
			return m.submit()
		}
		if !m.fields[m.focus].multiline() {
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		}
	case key.Matches(msg, keys.esc):
		return m, tea.Quit
	}

	return m.updateFocused(msg)
}

func (m model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.onSubmitButton() || m.focus >= len(m.fields) {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].update(msg)
	return m, cmd
}

func (m *model) buildFields() tea.Cmd {
	def, ok := m.service.Session().Form()
	if !ok {
		return nil
	}

	m.title = displayText(def.FormName)
	controls := form.MapControls(def)
	m.fields = make([]fieldModel, 0, len(controls))
	for _, c := range controls {
		if !c.Recognized {
			m.logger.Debug().Str("field", c.Field.FieldID).Str("type", string(c.Field.FieldType)).
				Msg("unrecognized field type rendered as text input")
		}
		m.fields = append(m.fields, newFieldModel(c))
	}

	m.focus = len(m.fields)
	return m.setFocus(0)
}

// setFocus moves focus to i, wrapping around the fields and the submit
// button.
func (m *model) setFocus(i int) tea.Cmd {
	total := len(m.fields) + 1
	i = ((i % total) + total) % total

	if m.focus < len(m.fields) {
		m.fields[m.focus].blur()
	}
	m.focus = i
	if i < len(m.fields) {
		return m.fields[i].focus()
	}
	return nil
}

func (m model) onSubmitButton() bool {
	return m.focus == len(m.fields)
}

// submit mirrors a browser form: an empty natively required control blocks
// the attempt and takes focus.
func (m model) submit() (tea.Model, tea.Cmd) {
	if m.submitting || !m.service.Session().CanSubmit() {
		return m, nil
	}

	raw := m.rawSubmission()
	for i := range m.fields {
		m.fields[i].err = ""
	}
	for i, f := range m.fields {
		if form.RequiredUnmet(f.control.Field, raw) {
			m.fields[i].err = displayText(f.control.Field.PayloadKey()) + " " + app.MsgIsRequired
			cmd := m.setFocus(i)
			return m, cmd
		}
	}

	if payload, err := m.service.Payload(raw); err == nil {
		if b, err := json.MarshalIndent(payload, "", "  "); err == nil {
			m.payload = string(b)
		}
	}

	m.submitting = true
	cmd := m.cmdSubmit(raw)
	return m, cmd
}

func (m model) rawSubmission() form.RawSubmission {
	raw := make(form.RawSubmission, len(m.fields))
	for _, f := range m.fields {
		f.collect(raw)
	}
	return raw
}

func (m model) state() session.State {
	return m.service.Session().State()
}

func (m model) loading() bool {
	st := m.state()
	return st == session.Idle || st == session.Loading
}

func (m model) cmdLoad() tea.Cmd {
	ctx, svc := m.ctx, m.service
	return func() tea.Msg {
		return formLoadedMsg{err: svc.Load(ctx)}
	}
}

func (m model) cmdSubmit(raw form.RawSubmission) tea.Cmd {
	ctx, svc := m.ctx, m.service
	return func() tea.Msg {
		message, err := svc.Submit(ctx, raw)
		if err != nil {
			var subErr *service.SubmissionError
			if errors.As(err, &subErr) {
				return submitDoneMsg{message: subErr.Message, err: err}
			}
			return submitDoneMsg{message: app.MsgSubmissionFailed, err: err}
		}
		return submitDoneMsg{message: message}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m model) View() string {
	var body string
	switch m.state() {
	case session.Idle, session.Loading, session.Loaded:
		body = m.spinner.View() + " Loading..."
	case session.LoadFailed:
		body = renderPage(app.MsgNoFormFound, "", "enter / esc quit")
	default:
		body = m.formView()
	}
	return appStyle.Render(body)
}

func (m model) formView() string {
	parts := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		parts = append(parts, f.view())
	}

	var b strings.Builder
	b.WriteString(strings.Join(parts, "\n\n"))
	b.WriteString("\n\n")
	b.WriteString(m.buttonView())

	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}

	page := renderPage(titleStyle.Render(m.title), b.String(),
		"tab / shift+tab move  space toggle  ←/→ change  ctrl+s submit  esc quit")

	if m.overlay != "" {
		page += "\n\n" + m.overlayView()
	}
	return page
}

func (m model) buttonView() string {
	caption := app.MsgSubmit
	if m.submitting || m.state() == session.Submitting {
		caption = app.MsgSubmitting
	}

	switch {
	case m.submitting || !m.service.Session().CanSubmit():
		return disabledButtonStyle.Render(caption)
	case m.onSubmitButton():
		return focusedButtonStyle.Render(caption)
	default:
		return buttonStyle.Render(caption)
	}
}

func (m model) overlayView() string {
	content := m.overlay
	if !m.overlaySuccess {
		content = errorStyle.Render(content)
	}
	hint := "c copy payload  enter / esc close"
	if m.overlaySuccess {
		hint = "c copy payload  enter / esc quit"
	}
	return overlayBoxStyle.Render(content + "\n\n" + helpStyle.Render(hint))
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n\n")
		b.WriteString(uiDivider)
		b.WriteString("\n")
	}

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}
