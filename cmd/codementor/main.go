// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command codementor is a CLI for checking, reviewing and refactoring
// Python code.
//
// Usage:
//
//	codementor check script.py
//	codementor check --json --no-line-length script.py
//	cat script.py | codementor check -
//	codementor review script.py
//	codementor refactor script.py -o script_clean.py
//	codementor history
//	codementor serve --port 8080
//
// The check command is fully local. review and refactor need an OpenAI
// API key in the config file or the OPENAI_API_KEY environment
// variable.
package main

import (
	"fmt"
	"os"
)

// Exit codes for the check command.
const (
	exitClean       = 0
	exitDiagnostics = 1
	exitError       = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}
}
