package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Evaluate parses question text back into an expression and computes its
// answer. Text always originates from the Generator, so a parse failure is
// a defensive condition, not normal play.
func Evaluate(text string) (int, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != 3 {
		return 0, fmt.Errorf("malformed question: %q", text)
	}

	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("malformed question: %q", text)
	}
	b, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("malformed question: %q", text)
	}

	switch fields[1] {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul, "*":
		// The client historically normalized × to * before evaluating, so
		// accept both glyphs.
		return a * b, nil
	}
	return 0, fmt.Errorf("malformed question: %q", text)
}

// Check recomputes the answer for the question text and compares it against
// the submission. Operands are integers so exact equality is correct.
func Check(text string, submitted int) (bool, int, error) {
	answer, err := Evaluate(text)
	if err != nil {
		return false, 0, err
	}
	return submitted == answer, answer, nil
}
