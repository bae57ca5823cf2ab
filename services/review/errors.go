// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package review

import "errors"

// Sentinel errors for the review service.
var (
	// ErrLLMUnavailable indicates no LLM backend is configured; local
	// style checking still works.
	ErrLLMUnavailable = errors.New("LLM backend unavailable")

	// ErrLLMRequest indicates the LLM call itself failed. Results
	// produced locally before the call are still returned.
	ErrLLMRequest = errors.New("LLM request failed")

	// ErrEmptyCode indicates the request carried no source listing.
	ErrEmptyCode = errors.New("no code provided")
)
