package risk

import (
	"math/rand"

	"trustshield/internal/models"
)

// DemoFlagProbability is the share of sample transactions flagged.
const DemoFlagProbability = 0.15

// Score ranges drawn by the demo policy, inclusive.
const (
	FlaggedScoreMin   = 70
	FlaggedScoreMax   = 99
	UnflaggedScoreMax = 64
	maxDemoReasons    = 3
)

// AnomalyReasons are the reasons sample transactions can be flagged with.
var AnomalyReasons = []string{
	"Unusual location",
	ReasonHighAmount,
	"Multiple transactions in short timeframe",
	"First international transaction",
	"New merchant category",
	"Irregular time of day",
	"Multiple declined attempts",
	"New device used",
	"Velocity check failed",
}

// DemoDataPolicy assigns random risk to generated sample data. The outcome
// does not depend on the transaction, so it must never score user input.
type DemoDataPolicy struct {
	rng *rand.Rand
}

func NewDemoDataPolicy(rng *rand.Rand) *DemoDataPolicy {
	if rng == nil {
		panic("rng is required")
	}
	return &DemoDataPolicy{rng: rng}
}

// Assess flips the flag coin first, then draws a score from the matching
// range and, for flagged results, one to three distinct reasons.
func (p *DemoDataPolicy) Assess() models.RiskAssessment {
	flagged := p.rng.Float64() < DemoFlagProbability

	var score int
	if flagged {
		score = FlaggedScoreMin + p.rng.Intn(FlaggedScoreMax-FlaggedScoreMin+1)
	} else {
		score = p.rng.Intn(UnflaggedScoreMax + 1)
	}

	assessment := models.RiskAssessment{
		RiskScore: score,
		Flagged:   flagged,
		Level:     LevelFor(score),
	}
	if flagged {
		assessment.AnomalyDetails = p.drawReasons()
	}
	return assessment
}

func (p *DemoDataPolicy) drawReasons() []string {
	draws := p.rng.Intn(maxDemoReasons) + 1
	reasons := make([]string, 0, draws)
	seen := make(map[string]bool, draws)
	for i := 0; i < draws; i++ {
		reason := AnomalyReasons[p.rng.Intn(len(AnomalyReasons))]
		if seen[reason] {
			continue
		}
		seen[reason] = true
		reasons = append(reasons, reason)
	}
	return reasons
}
