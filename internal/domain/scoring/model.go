package scoring

import (
	"math"
	"strings"
)

// Coefficients weight each input of the unified score.
type Coefficients struct {
	Goal               float64
	Assist             float64
	Save               float64
	CleanSheetDefender float64
	CleanSheetOther    float64
	OwnGoalPenalty     float64
	RatingDefender     float64
	RatingOther        float64
}

func DefaultCoefficients() Coefficients {
	return Coefficients{
		Goal:               3,
		Assist:             2,
		Save:               0.5,
		CleanSheetDefender: 3,
		CleanSheetOther:    2,
		OwnGoalPenalty:     2,
		RatingDefender:     2.6,
		RatingOther:        2,
	}
}

var baseDefenderTokens = []string{"defender", "cb", "lb", "rb", "lwb", "rwb", "sw", "cdm"}

// Policy is the one scoring function used for ranking and awards.
type Policy struct {
	Coefficients   Coefficients
	DefenderTokens []string
}

// Options toggle the two variants operators may choose between.
type Options struct {
	OwnGoalPenalty  bool
	DefenderMatchDM bool
}

// DefaultOptions applies the own-goal penalty and treats "dm" as a defender token.
func DefaultOptions() Options {
	return Options{OwnGoalPenalty: true, DefenderMatchDM: true}
}

func NewPolicy(opts Options) Policy {
	coeffs := DefaultCoefficients()
	if !opts.OwnGoalPenalty {
		coeffs.OwnGoalPenalty = 0
	}

	tokens := append([]string(nil), baseDefenderTokens...)
	if opts.DefenderMatchDM {
		tokens = append(tokens, "dm")
	}
	return Policy{Coefficients: coeffs, DefenderTokens: tokens}
}

func DefaultPolicy() Policy {
	return NewPolicy(DefaultOptions())
}

// IsDefender is a case-insensitive substring test of position against the defender tokens.
func (p Policy) IsDefender(position string) bool {
	position = strings.ToLower(strings.TrimSpace(position))
	if position == "" {
		return false
	}
	for _, token := range p.DefenderTokens {
		if strings.Contains(position, token) {
			return true
		}
	}
	return false
}

// Line is the scoring input for one player.
type Line struct {
	Goals         int
	Assists       int
	Saves         int
	CleanSheets   int
	OwnGoals      int
	AverageRating float64
	Defender      bool
}

func (p Policy) Score(l Line) float64 {
	c := p.Coefficients
	cleanSheet, rating := c.CleanSheetOther, c.RatingOther
	if l.Defender {
		cleanSheet, rating = c.CleanSheetDefender, c.RatingDefender
	}

	total := float64(l.Goals)*c.Goal +
		float64(l.Assists)*c.Assist +
		float64(l.Saves)*c.Save +
		float64(l.CleanSheets)*cleanSheet -
		float64(l.OwnGoals)*c.OwnGoalPenalty +
		l.AverageRating*rating
	return Round10(total)
}

// Round10 rounds to one decimal place.
func Round10(x float64) float64 {
	return math.Round(x*10) / 10
}

// Average returns sum/count, or 0 when count is 0.
func Average(sum float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return sum / float64(count)
}
