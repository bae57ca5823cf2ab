// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractModelScore(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr bool
	}{
		{
			name: "valid score line",
			text: "The code is fine.\nSCORE: {\"score\": 88}",
			want: 88,
		},
		{
			name: "score line mid-text",
			text: "Analysis.\nSCORE: {\"score\": 42}\ntrailing",
			want: 42,
		},
		{
			name:    "no score line",
			text:    "Just prose, the model ignored the instruction.",
			wantErr: true,
		},
		{
			name:    "score out of range",
			text:    "SCORE: {\"score\": 150}",
			wantErr: true,
		},
		{
			name:    "missing score field",
			text:    "SCORE: {\"rating\": 80}",
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			text:    "SCORE: {score: 5}",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractModelScore(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeywordScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "neutral text keeps the base",
			text: "solid work overall",
			want: 70,
		},
		{
			name: "negatives subtract eight each",
			text: "there is a bug and an error here",
			want: 54,
		},
		{
			name: "positives add five each",
			text: "good and clean and efficient code",
			want: 85,
		},
		{
			name: "clamped at zero",
			text: strings.Repeat("bug ", 10),
			want: 0,
		},
		{
			name: "clamped at one hundred",
			text: strings.Repeat("good ", 7),
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keywordScore(tt.text))
		})
	}
}

func TestScoreLabel(t *testing.T) {
	assert.Equal(t, "Excellent", ScoreLabel(85))
	assert.Equal(t, "Excellent", ScoreLabel(100))
	assert.Equal(t, "Good", ScoreLabel(70))
	assert.Equal(t, "Good", ScoreLabel(84))
	assert.Equal(t, "Fair", ScoreLabel(50))
	assert.Equal(t, "Needs Improvement", ScoreLabel(49))
	assert.Equal(t, "Needs Improvement", ScoreLabel(0))
}

func TestScoreReview_ModelScoreWins(t *testing.T) {
	// Text full of negative keywords, but the structured score is
	// present so the heuristic must not run.
	text := "bug error issue problem\nSCORE: {\"score\": 90}"

	got := scoreReview(text)
	assert.Equal(t, 90, got.Value)
	assert.Equal(t, "Excellent", got.Label)
	assert.Equal(t, ScoreSourceModel, got.Source)
	assert.Empty(t, got.Reason)
}

func TestScoreReview_FallbackRecordsReason(t *testing.T) {
	got := scoreReview("good and clean code, no structured line")
	assert.Equal(t, ScoreSourceKeyword, got.Source)
	assert.Equal(t, 80, got.Value)
	assert.Equal(t, "Good", got.Label)
	assert.NotEmpty(t, got.Reason)
}

func TestStripScoreLine(t *testing.T) {
	text := "The review body.\nSCORE: {\"score\": 77}"
	assert.Equal(t, "The review body.", stripScoreLine(text))

	// No score line: text passes through trimmed.
	assert.Equal(t, "plain reply", stripScoreLine("  plain reply\n"))
}
