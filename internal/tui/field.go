// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-form-runner/internal/form"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const filePathHint = "path to a local file"

// fieldModel is the widget of one form control. Which of its parts are in
// use depends on the control category.
type fieldModel struct {
	control form.Control
	label   string

	// input backs SimpleScalar and FileReference controls.
	input textinput.Model
	// area backs MultilineScalar controls.
	area textarea.Model

	// cursor is the highlighted option of choice controls. For a dropdown
	// it is also the current value.
	cursor int
	// chosen is the selected radio option, -1 while none is selected.
	chosen int
	// checked holds the selected options of a checkbox group.
	checked map[int]bool
	// on is the state of a single boolean checkbox.
	on bool

	focused bool
	err     string
}

func newFieldModel(c form.Control) fieldModel {
	f := fieldModel{
		control: c,
		label:   displayText(c.Label()),
		chosen:  -1,
		checked: make(map[int]bool),
	}

	switch c.Category {
	case form.SimpleScalar, form.FileReference:
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Width = inputWidth
		if c.Masked() {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		if c.ShowsPlaceholder() {
			ti.Placeholder = displayText(c.Field.Placeholder)
		}
		if c.Category == form.FileReference {
			ti.Placeholder = filePathHint
		}
		f.input = ti
	case form.MultilineScalar:
		ta := textarea.New()
		ta.ShowLineNumbers = false
		ta.SetWidth(inputWidth)
		ta.SetHeight(textareaHeight)
		ta.Placeholder = displayText(c.Field.Placeholder)
		f.area = ta
	}

	return f
}

func (f *fieldModel) focus() tea.Cmd {
	f.focused = true
	switch f.control.Category {
	case form.SimpleScalar, form.FileReference:
		return f.input.Focus()
	case form.MultilineScalar:
		return f.area.Focus()
	}
	return nil
}

func (f *fieldModel) blur() {
	f.focused = false
	switch f.control.Category {
	case form.SimpleScalar, form.FileReference:
		f.input.Blur()
	case form.MultilineScalar:
		f.area.Blur()
	}
}

// multiline reports whether enter belongs to the widget.
func (f fieldModel) multiline() bool {
	return f.control.Category == form.MultilineScalar
}

func (f fieldModel) update(msg tea.Msg) (fieldModel, tea.Cmd) {
	var cmd tea.Cmd
	switch f.control.Category {
	case form.SimpleScalar, form.FileReference:
		f.input, cmd = f.input.Update(msg)
		return f, cmd
	case form.MultilineScalar:
		f.area, cmd = f.area.Update(msg)
		return f, cmd
	}

	k, ok := msg.(tea.KeyMsg)
	n := len(f.control.Options)
	if !ok || n == 0 && !f.control.Boolean() {
		return f, nil
	}

	switch f.control.Category {
	case form.SingleChoiceList:
		switch {
		case key.Matches(k, keys.left, keys.up):
			f.cursor = (f.cursor - 1 + n) % n
		case key.Matches(k, keys.right, keys.down, keys.toggle):
			f.cursor = (f.cursor + 1) % n
		}
	case form.MultiOrBoolean:
		if f.control.Boolean() {
			if key.Matches(k, keys.toggle) {
				f.on = !f.on
			}
			break
		}
		f.moveCursor(k, n)
		if key.Matches(k, keys.toggle) {
			f.checked[f.cursor] = !f.checked[f.cursor]
		}
	case form.ExclusiveChoice:
		f.moveCursor(k, n)
		if key.Matches(k, keys.toggle) {
			f.chosen = f.cursor
		}
	}

	return f, nil
}

func (f *fieldModel) moveCursor(k tea.KeyMsg, n int) {
	switch {
	case key.Matches(k, keys.up, keys.left):
		if f.cursor > 0 {
			f.cursor--
		}
	case key.Matches(k, keys.down, keys.right):
		if f.cursor < n-1 {
			f.cursor++
		}
	}
}

// collect writes what the control would submit into raw. Unset radio
// groups, unchecked checkboxes and empty file paths submit nothing.
func (f fieldModel) collect(raw form.RawSubmission) {
	id := f.control.Field.FieldID
	opts := f.control.Options

	switch f.control.Category {
	case form.SimpleScalar:
		raw.Set(id, form.Text(f.input.Value()))
	case form.MultilineScalar:
		raw.Set(id, form.Text(f.area.Value()))
	case form.SingleChoiceList:
		if len(opts) > 0 {
			raw.Set(id, form.Text(opts[f.cursor]))
		}
	case form.MultiOrBoolean:
		if f.control.Boolean() {
			if f.on {
				raw.Set(id, form.Text(form.CheckboxOn))
			}
			return
		}
		for i, opt := range opts {
			if f.checked[i] {
				raw.Add(id, form.Text(opt))
			}
		}
	case form.ExclusiveChoice:
		if f.chosen >= 0 && f.chosen < len(opts) {
			raw.Set(id, form.Text(opts[f.chosen]))
		}
	case form.FileReference:
		if h, ok := form.OpenFileHandle(f.input.Value()); ok {
			raw.Set(id, form.File(h))
		}
	}
}

func (f fieldModel) view() string {
	var b strings.Builder

	style := labelStyle
	if f.focused {
		style = focusedLabelStyle
	}
	b.WriteString(style.Render(f.label))
	if f.control.RequiredMarker() {
		b.WriteString(" " + requiredStyle.Render("*"))
	}
	b.WriteString("\n")

	opts := f.control.Options
	switch f.control.Category {
	case form.SimpleScalar:
		b.WriteString(f.input.View())
	case form.FileReference:
		b.WriteString(f.input.View())
		if h, ok := form.OpenFileHandle(f.input.Value()); ok {
			b.WriteString("\n" + helpStyle.Render("selected: "+h.Name))
		}
	case form.MultilineScalar:
		b.WriteString(f.area.View())
	case form.SingleChoiceList:
		if len(opts) == 0 {
			b.WriteString(helpStyle.Render("(no options)"))
			break
		}
		b.WriteString("‹ " + displayText(opts[f.cursor]) + " ›")
	case form.MultiOrBoolean:
		if f.control.Boolean() {
			b.WriteString(checkbox(f.on, f.focused) + " " + f.label)
			break
		}
		b.WriteString(f.optionLines(func(i int) string { return checkbox(f.checked[i], false) }))
	case form.ExclusiveChoice:
		b.WriteString(f.optionLines(func(i int) string { return radio(f.chosen == i) }))
	}

	if f.err != "" {
		b.WriteString("\n" + errorStyle.Render(f.err))
	}
	return b.String()
}

func (f fieldModel) optionLines(mark func(i int) string) string {
	lines := make([]string, 0, len(f.control.Options))
	for i, opt := range f.control.Options {
		cursor := "  "
		if f.focused && i == f.cursor {
			cursor = "> "
		}
		lines = append(lines, cursor+mark(i)+" "+displayText(opt))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func checkbox(on, focused bool) string {
	box := "[ ]"
	if on {
		box = "[x]"
	}
	if focused {
		return "> " + box
	}
	return box
}

func radio(on bool) string {
	if on {
		return "(•)"
	}
	return "( )"
}
