// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package tui provides terminal user interface components for
// reviewing a proposed refactor before it is written anywhere.
//
// # Description
//
// This package implements the interactive refactor review TUI using
// bubbletea. It lets the user page between the original listing, the
// refactored listing, and the style diagnostics, then accept or
// discard the result.
//
// # Thread Safety
//
// TUI components are designed for single-threaded use within the
// bubbletea event loop. Do not access TUI state from multiple
// goroutines.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codementor-ai/codementor/pkg/stylecheck"
)

// =============================================================================
// View Mode
// =============================================================================

// ViewMode determines which pane is displayed.
type ViewMode int

const (
	// ViewOriginal shows the listing as submitted.
	ViewOriginal ViewMode = iota

	// ViewRefactored shows the proposed refactored listing.
	ViewRefactored

	// ViewDiagnostics shows the style findings for the original.
	ViewDiagnostics
)

func (v ViewMode) title() string {
	switch v {
	case ViewOriginal:
		return "Original"
	case ViewRefactored:
		return "Refactored"
	case ViewDiagnostics:
		return "Diagnostics"
	default:
		return "?"
	}
}

// =============================================================================
// Messages
// =============================================================================

// DoneMsg signals the review is complete.
type DoneMsg struct {
	// Accepted is true when the user chose to keep the refactored
	// listing.
	Accepted bool
}

// =============================================================================
// Model
// =============================================================================

// RefactorModel is the bubbletea model for reviewing a refactor.
//
// # Description
//
// Holds the original and refactored listings plus the diagnostics
// produced for the original, and renders whichever pane is selected
// inside a scrollable viewport.
type RefactorModel struct {
	original    string
	refactored  string
	diagnostics []stylecheck.Diagnostic

	viewMode ViewMode
	viewport viewport.Model

	width  int
	height int

	ready    bool
	accepted bool
	quitting bool
}

// NewRefactorModel creates a refactor review model.
//
// # Inputs
//
//   - original: The listing as submitted.
//   - refactored: The proposed replacement.
//   - diags: Style findings for the original listing.
//
// # Outputs
//
//   - RefactorModel: Ready-to-use model for tea.NewProgram.
func NewRefactorModel(original, refactored string, diags []stylecheck.Diagnostic) RefactorModel {
	return RefactorModel{
		original:    original,
		refactored:  refactored,
		diagnostics: diags,
		viewMode:    ViewRefactored,
	}
}

// Init implements tea.Model.
func (m RefactorModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m RefactorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}

		m.updateViewportContent()

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y", "enter":
			m.accepted = true
			m.quitting = true
			return m, tea.Sequence(
				func() tea.Msg { return DoneMsg{Accepted: true} },
				tea.Quit,
			)

		case "n", "N", "q", "Q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(
				func() tea.Msg { return DoneMsg{Accepted: false} },
				tea.Quit,
			)

		case "tab", "right", "l":
			m.nextView()
			m.updateViewportContent()

		case "shift+tab", "left", "h":
			m.prevView()
			m.updateViewportContent()

		case "j", "down":
			m.viewport.LineDown(1)

		case "k", "up":
			m.viewport.LineUp(1)

		case "ctrl+d":
			m.viewport.HalfViewDown()

		case "ctrl+u":
			m.viewport.HalfViewUp()

		case "g", "home":
			m.viewport.GotoTop()

		case "G", "end":
			m.viewport.GotoBottom()
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m RefactorModel) View() string {
	if m.quitting {
		if m.accepted {
			return "Refactor accepted.\n"
		}
		return "Refactor discarded.\n"
	}

	if !m.ready {
		return "Loading...\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// Accepted reports the user's decision after the TUI exits.
func (m RefactorModel) Accepted() bool {
	return m.accepted
}

// =============================================================================
// Navigation
// =============================================================================

func (m *RefactorModel) nextView() {
	m.viewMode = (m.viewMode + 1) % 3
}

func (m *RefactorModel) prevView() {
	m.viewMode = (m.viewMode + 2) % 3
}

// =============================================================================
// Rendering
// =============================================================================

func (m *RefactorModel) updateViewportContent() {
	if !m.ready {
		return
	}

	var content string
	switch m.viewMode {
	case ViewOriginal:
		content = numberLines(m.original)
	case ViewRefactored:
		content = numberLines(m.refactored)
	case ViewDiagnostics:
		content = m.renderDiagnostics()
	}

	m.viewport.SetContent(content)
}

func (m RefactorModel) renderHeader() string {
	var tabs []string
	for _, v := range []ViewMode{ViewOriginal, ViewRefactored, ViewDiagnostics} {
		label := v.title()
		if v == ViewDiagnostics {
			label = fmt.Sprintf("%s (%d)", label, len(m.diagnostics))
		}
		if v == m.viewMode {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return titleStyle.Render("Refactor Review") + "  " + strings.Join(tabs, " ")
}

func (m RefactorModel) renderFooter() string {
	return footerStyle.Render("y accept · n discard · tab switch pane · j/k scroll · q quit")
}

func (m RefactorModel) renderDiagnostics() string {
	if len(m.diagnostics) == 0 {
		return cleanStyle.Render("No style issues found.")
	}

	var b strings.Builder
	for _, d := range m.diagnostics {
		b.WriteString(lineNumStyle.Render(fmt.Sprintf("%4d", d.Line)))
		b.WriteString(" ")
		b.WriteString(ruleStyle.Render(string(d.Rule)))
		b.WriteString(" ")
		b.WriteString(d.Message)
		b.WriteString("\n")
	}
	return b.String()
}

func numberLines(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(lineNumStyle.Render(fmt.Sprintf("%4d", i+1)))
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// Styles
// =============================================================================

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	lineNumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	cleanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
