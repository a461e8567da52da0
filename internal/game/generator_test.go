package game

import (
	"math/rand"
	"strings"
	"testing"
)

func TestTierForGrade(t *testing.T) {
	testCases := []struct {
		grade string
		max   int
	}{
		{"Grade 1", 10},
		{"Grade 1 (2025)", 10},
		{"Grade 2", 20},
		{"Grade 3", 50},
		{"Grade 4", 100},
		{"Grade 7", 100},
		{"", 100},
	}

	for _, tc := range testCases {
		t.Run(tc.grade, func(t *testing.T) {
			tier := TierForGrade(tc.grade)
			if tier.Min != 1 {
				t.Errorf("Expected min 1, got %d", tier.Min)
			}
			if tier.Max != tc.max {
				t.Errorf("Expected max %d, got %d", tc.max, tier.Max)
			}
		})
	}
}

func TestGenerateOperandsInRange(t *testing.T) {
	gen := NewGeneratorWithSource(rand.New(rand.NewSource(1)))

	for _, grade := range []string{"Grade 1", "Grade 2", "Grade 3", "Grade 6"} {
		tier := TierForGrade(grade)
		for i := 0; i < 1000; i++ {
			q := gen.Generate(grade)
			if q.A < tier.Min || q.A > tier.Max {
				t.Fatalf("%s: operand %d outside [%d,%d] in %q", grade, q.A, tier.Min, tier.Max, q.Text)
			}
			if q.B < tier.Min || q.B > tier.Max {
				t.Fatalf("%s: operand %d outside [%d,%d] in %q", grade, q.B, tier.Min, tier.Max, q.Text)
			}
		}
	}
}

func TestSubtractionNeverNegative(t *testing.T) {
	gen := NewGeneratorWithSource(rand.New(rand.NewSource(42)))

	for _, grade := range []string{"Grade 1", "Grade 2", "Grade 3", "Grade 6"} {
		for i := 0; i < 10000; i++ {
			q := gen.Generate(grade)
			if q.Operator != OpSub {
				continue
			}
			if q.A-q.B < 0 {
				t.Fatalf("%s: negative subtraction result for %q", grade, q.Text)
			}
		}
	}
}

func TestGenerateEvaluateRoundTrip(t *testing.T) {
	gen := NewGeneratorWithSource(rand.New(rand.NewSource(7)))

	for i := 0; i < 10000; i++ {
		q := gen.Generate("Grade 3")

		var want int
		switch q.Operator {
		case OpAdd:
			want = q.A + q.B
		case OpSub:
			want = q.A - q.B
		case OpMul:
			want = q.A * q.B
		default:
			t.Fatalf("unexpected operator %q", q.Operator)
		}

		got, err := Evaluate(q.Text)
		if err != nil {
			t.Fatalf("Evaluate(%q) failed: %v", q.Text, err)
		}
		if got != want {
			t.Fatalf("Evaluate(%q) = %d, want %d", q.Text, got, want)
		}
	}
}

func TestGenerateQuestionShape(t *testing.T) {
	gen := NewGeneratorWithSource(rand.New(rand.NewSource(3)))

	q := gen.Generate("Grade 2")
	if q.ID == "" {
		t.Error("Expected a question id")
	}
	if len(strings.Fields(q.Text)) != 3 {
		t.Errorf("Expected text of the form 'a op b', got %q", q.Text)
	}
	if q.Operator != OpAdd && q.Operator != OpSub && q.Operator != OpMul {
		t.Errorf("Unexpected operator %q", q.Operator)
	}
}
