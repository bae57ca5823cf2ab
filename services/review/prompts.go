// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package review

import "fmt"

const reviewSystemPrompt = "You are a helpful code review assistant that explains things clearly to beginners."

const refactorSystemPrompt = "You are a Python expert who refactors code to be clean and efficient. Return only code, no explanations."

// reviewPrompt builds the user prompt for a code review request. The
// trailing score instruction feeds the structured-score extraction; if
// the model ignores it the service falls back to the keyword score.
func reviewPrompt(code string) string {
	return fmt.Sprintf(`You are an expert code reviewer helping beginners understand and improve their code.

Analyze the following Python code and provide:

1. **Code Explanation**: Explain what this code does in simple, beginner-friendly language.

2. **Issues Found**: Identify any bugs, errors, or potential problems.

3. **Code Quality Issues**: Point out poor variable names, lack of comments, code duplication, or style issues.

4. **Performance Issues**: Highlight any inefficiencies or better approaches.

5. **Best Practices**: Suggest Python best practices that should be followed.

6. **Security Concerns**: Mention any security issues if present.

Be specific, clear, and educational. Use simple language suitable for beginners.

CODE TO REVIEW:
`+"```python\n%s\n```"+`

Please provide your analysis, then end your reply with a single line of the form:
SCORE: {"score": <integer 0-100 rating overall code quality>}`, code)
}

// refactorPrompt builds the user prompt for a refactor request.
func refactorPrompt(code string) string {
	return fmt.Sprintf(`You are an expert Python developer. Refactor the following code to make it:
- Cleaner and more readable
- More efficient
- Following Python best practices (PEP 8)
- Well-commented
- Using better variable/function names
- Properly structured

IMPORTANT: Return ONLY the refactored Python code with comments. Do NOT include explanations, markdown formatting, or anything else. Just the clean code.

CODE TO REFACTOR:
`+"```python\n%s\n```"+`

Refactored code:`, code)
}
