// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package stylecheck

import "errors"

// ErrInvalidInput is the only error Check surfaces. It indicates an
// absent or non-text source. Everything else degrades locally: the
// affected line is skipped for the affected rule and checking
// continues.
var ErrInvalidInput = errors.New("invalid input")
