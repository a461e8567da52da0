package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Generator produces randomized arithmetic questions bounded by grade tier.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewGeneratorWithSource(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// TierForGrade resolves a grade label to its operand range.
func TierForGrade(grade string) Tier {
	for _, t := range tiers {
		if strings.Contains(grade, t.label) {
			return t.tier
		}
	}
	return defaultTier
}

var operators = []string{OpAdd, OpSub, OpMul}

// Generate builds one question for the given grade. Subtraction draws the
// second operand from [min, first] so the result is never negative.
func (g *Generator) Generate(grade string) Question {
	tier := TierForGrade(grade)
	op := operators[g.rng.Intn(len(operators))]

	a := g.intInRange(tier.Min, tier.Max)
	var b int
	if op == OpSub {
		b = g.intInRange(tier.Min, a)
	} else {
		b = g.intInRange(tier.Min, tier.Max)
	}

	return Question{
		ID:       fmt.Sprintf("%d-%06x", time.Now().UnixMilli(), g.rng.Intn(1<<24)),
		Text:     fmt.Sprintf("%d %s %d", a, op, b),
		Operator: op,
		A:        a,
		B:        b,
	}
}

// intInRange returns a uniform value in [min, max].
func (g *Generator) intInRange(min, max int) int {
	return g.rng.Intn(max-min+1) + min
}
