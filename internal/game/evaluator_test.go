package game

import "testing"

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		text string
		want int
	}{
		{"23 + 47", 70},
		{"9 - 4", 5},
		{"10 - 10", 0},
		{"6 × 7", 42},
		{"6 * 7", 42},
		{"1 + 1", 2},
		{"100 × 100", 10000},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			got, err := Evaluate(tc.text)
			if err != nil {
				t.Fatalf("Evaluate(%q) failed: %v", tc.text, err)
			}
			if got != tc.want {
				t.Errorf("Evaluate(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}

func TestEvaluateMalformed(t *testing.T) {
	testCases := []string{
		"",
		"abc",
		"1 +",
		"1 + 2 + 3",
		"one + two",
		"1 ? 2",
		"1 / 2",
	}

	for _, text := range testCases {
		t.Run(text, func(t *testing.T) {
			if _, err := Evaluate(text); err == nil {
				t.Errorf("Expected error for %q", text)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	testCases := []struct {
		text      string
		submitted int
		correct   bool
		answer    int
	}{
		{"23 + 47", 70, true, 70},
		{"23 + 47", 71, false, 70},
		{"8 × 8", 64, true, 64},
		{"5 - 3", -2, false, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			correct, answer, err := Check(tc.text, tc.submitted)
			if err != nil {
				t.Fatalf("Check(%q) failed: %v", tc.text, err)
			}
			if correct != tc.correct {
				t.Errorf("Check(%q, %d) correct = %v, want %v", tc.text, tc.submitted, correct, tc.correct)
			}
			if answer != tc.answer {
				t.Errorf("Check(%q) answer = %d, want %d", tc.text, answer, tc.answer)
			}
		})
	}
}
