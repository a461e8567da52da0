package game

// Operators as they appear in question text. Multiplication uses the ×
// glyph the client renders.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "×"
)

// Question is ephemeral: it exists only for one request/response cycle and
// is never persisted. The server recomputes the expected answer from Text
// at submission time.
type Question struct {
	ID       string `json:"questionId"`
	Text     string `json:"question"`
	Operator string `json:"type"`
	A        int    `json:"-"`
	B        int    `json:"-"`
}

// Tier maps a grade label onto the operand range used for that grade.
type Tier struct {
	Min int
	Max int
}

// tiers is ordered: the first grade whose label appears in the user's grade
// wins, everything else gets the hardest range.
var tiers = []struct {
	label string
	tier  Tier
}{
	{"Grade 1", Tier{Min: 1, Max: 10}},
	{"Grade 2", Tier{Min: 1, Max: 20}},
	{"Grade 3", Tier{Min: 1, Max: 50}},
}

var defaultTier = Tier{Min: 1, Max: 100}
