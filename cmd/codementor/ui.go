// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/codementor-ai/codementor/pkg/stylecheck"
	"github.com/codementor-ai/codementor/services/review"
)

// --- Styles ---

var (
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	scoreCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

func ruleBadge(rule stylecheck.RuleTag) string {
	return badgeStyle.Render("[" + string(rule) + "]")
}

// printDiagnostics renders diagnostics for a single listing.
func printDiagnostics(diags []stylecheck.Diagnostic) {
	if len(diags) == 0 {
		fmt.Println(okStyle.Render("✓ no style issues"))
		return
	}
	for _, d := range diags {
		fmt.Printf("  line %d: %s %s\n", d.Line, ruleBadge(d.Rule), d.Message)
	}
}

// renderScoreCard renders the quality score box shown after a review.
func renderScoreCard(score review.ScoreResult) string {
	valueStyle := errStyle
	switch {
	case score.Value >= 70:
		valueStyle = okStyle
	case score.Value >= 50:
		valueStyle = warnStyle
	}

	body := fmt.Sprintf("Quality Score: %s  %s",
		valueStyle.Bold(true).Render(fmt.Sprintf("%d/100", score.Value)),
		score.Label)
	if score.Source == review.ScoreSourceKeyword {
		body += "\n" + warnStyle.Render("(estimated from review text)")
	}
	return scoreCardStyle.Render(body)
}

// --- Spinner ---

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner is an animated terminal loading indicator.
type spinner struct {
	message string
	stop    chan struct{}
	done    chan struct{}
	mu      sync.Mutex
	running bool
}

func newSpinner(message string) *spinner {
	return &spinner{
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins the animation. No-op if already running.
func (s *spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		frame := 0
		for {
			select {
			case <-s.stop:
				// Clear the spinner line
				fmt.Print("\r\033[K")
				close(s.done)
				return
			case <-ticker.C:
				fmt.Printf("\r%s %s", spinnerStyle.Render(spinnerFrames[frame]), s.message)
				frame = (frame + 1) % len(spinnerFrames)
			}
		}
	}()
}

// Stop halts the animation and clears the line.
func (s *spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stop)
	<-s.done
}

// withSpinner runs fn behind a spinner.
func withSpinner(message string, fn func() error) error {
	spin := newSpinner(message)
	spin.Start()
	err := fn()
	spin.Stop()
	return err
}
