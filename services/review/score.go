// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package review

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ScoreSource identifies how a quality score was produced.
type ScoreSource string

const (
	// ScoreSourceModel means the model self-reported a structured score
	// that was successfully extracted.
	ScoreSourceModel ScoreSource = "model"

	// ScoreSourceKeyword means extraction failed and the score was
	// computed from review keywords instead.
	ScoreSourceKeyword ScoreSource = "keyword-fallback"
)

// ScoreResult is a typed quality score. Extraction failures are never
// swallowed: when the structured score cannot be recovered from the
// model's reply, Source records the fallback and Reason says why.
type ScoreResult struct {
	Value  int         `json:"value"`
	Label  string      `json:"label"`
	Source ScoreSource `json:"source"`
	Reason string      `json:"reason,omitempty"`
}

var scoreLineRe = regexp.MustCompile(`SCORE:\s*(\{[^}]*\})`)

// scoreReview derives a ScoreResult from the model's review text: the
// self-reported JSON score when present and sane, else the keyword
// heuristic with the failure reason attached.
func scoreReview(text string) ScoreResult {
	value, err := extractModelScore(text)
	if err == nil {
		return ScoreResult{
			Value:  value,
			Label:  ScoreLabel(value),
			Source: ScoreSourceModel,
		}
	}
	value = keywordScore(text)
	return ScoreResult{
		Value:  value,
		Label:  ScoreLabel(value),
		Source: ScoreSourceKeyword,
		Reason: err.Error(),
	}
}

// extractModelScore pulls the `SCORE: {"score": N}` line out of the
// review text.
func extractModelScore(text string) (int, error) {
	m := scoreLineRe.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("no SCORE line in model reply")
	}
	var payload struct {
		Score *int `json:"score"`
	}
	if err := json.Unmarshal([]byte(m[1]), &payload); err != nil {
		return 0, fmt.Errorf("SCORE line is not valid JSON: %v", err)
	}
	if payload.Score == nil {
		return 0, fmt.Errorf("SCORE JSON has no score field")
	}
	if *payload.Score < 0 || *payload.Score > 100 {
		return 0, fmt.Errorf("model score %d outside 0-100", *payload.Score)
	}
	return *payload.Score, nil
}

// Keyword lists for the fallback score. Occurrence counts, not word
// boundaries, matching the original heuristic's behavior.
var (
	negativeKeywords = []string{
		"bug", "error", "issue", "problem", "inefficient",
		"poor", "bad practice", "unnecessary", "redundant",
		"memory leak", "security", "vulnerable",
	}
	positiveKeywords = []string{
		"good", "well", "clean", "efficient", "optimized",
		"best practice", "excellent", "proper",
	}
)

// keywordScore computes the fallback quality score: start at 70, lose
// 8 per negative keyword occurrence, gain 5 per positive, clamp to
// [0, 100].
func keywordScore(text string) int {
	lower := strings.ToLower(text)
	score := 70
	for _, w := range negativeKeywords {
		score -= 8 * strings.Count(lower, w)
	}
	for _, w := range positiveKeywords {
		score += 5 * strings.Count(lower, w)
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ScoreLabel maps a score to its display label.
func ScoreLabel(score int) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 50:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

// stripScoreLine removes the machine-readable SCORE line from the
// review text before display.
func stripScoreLine(text string) string {
	return strings.TrimSpace(scoreLineRe.ReplaceAllString(text, ""))
}
