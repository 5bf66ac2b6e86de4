package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeQuestionCatalog is the minimal branching catalog used across tests:
// q1 is unweighted yes/no, q2 is weighted 2x with a partial option, q3 is
// skipped entirely when q1 is answered "yes".
func threeQuestionCatalog() []Question {
	return []Question{
		{
			ID:       "q1",
			Category: CategoryAdministrative,
			Text:     "Do you have written policies?",
			Options: []Option{
				{Value: "yes", Label: "Yes", RiskScore: 0},
				{Value: "no", Label: "No", RiskScore: 5},
			},
		},
		{
			ID:             "q2",
			Category:       CategoryTechnical,
			Text:           "Is PHI encrypted in transit?",
			SeverityWeight: 2,
			Options: []Option{
				{Value: "yes", Label: "Yes", RiskScore: 0},
				{Value: "partial", Label: "Sometimes", RiskScore: 2},
				{Value: "no", Label: "No", RiskScore: 4},
			},
		},
		{
			ID:       "q3",
			Category: CategoryAdministrative,
			Text:     "Is there a remediation plan for the policy gap?",
			SkipIf:   &SkipCondition{QuestionID: "q1", Answer: "yes"},
			Options: []Option{
				{Value: "yes", Label: "Yes", RiskScore: 0},
				{Value: "no", Label: "No", RiskScore: 3},
			},
		},
	}
}

func TestApplicableQuestions(t *testing.T) {
	catalog := threeQuestionCatalog()

	t.Run("no answers includes everything", func(t *testing.T) {
		applicable := ApplicableQuestions(catalog, Answers{})
		require.Len(t, applicable, 3)
		assert.Equal(t, "q1", applicable[0].ID)
		assert.Equal(t, "q2", applicable[1].ID)
		assert.Equal(t, "q3", applicable[2].ID)
	})

	t.Run("skip condition satisfied excludes the question", func(t *testing.T) {
		applicable := ApplicableQuestions(catalog, Answers{"q1": "yes"})
		require.Len(t, applicable, 2)
		assert.Equal(t, "q1", applicable[0].ID)
		assert.Equal(t, "q2", applicable[1].ID)
	})

	t.Run("skip condition not satisfied keeps the question", func(t *testing.T) {
		applicable := ApplicableQuestions(catalog, Answers{"q1": "no"})
		assert.Len(t, applicable, 3)
	})

	t.Run("catalog order is preserved", func(t *testing.T) {
		applicable := ApplicableQuestions(catalog, Answers{"q1": "no", "q2": "yes"})
		for i := 1; i < len(applicable); i++ {
			assert.True(t, applicable[i-1].ID < "q4")
		}
		assert.Equal(t, []string{"q1", "q2", "q3"},
			[]string{applicable[0].ID, applicable[1].ID, applicable[2].ID})
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		answers := Answers{"q1": "yes"}
		_ = ApplicableQuestions(catalog, answers)
		assert.Equal(t, Answers{"q1": "yes"}, answers)
		assert.Len(t, catalog, 3)
	})
}

func TestScoreScenarios(t *testing.T) {
	catalog := threeQuestionCatalog()

	t.Run("fully compliant with branch skipped", func(t *testing.T) {
		answers := Answers{"q1": "yes", "q2": "yes"}
		result := Score(answers, ApplicableQuestions(catalog, answers))

		// q3 skipped: max = 5 + 4*2 = 13, total = 0.
		assert.Equal(t, 0, result.TotalRiskScore)
		assert.Equal(t, 13, result.MaxPossibleScore)
		assert.Equal(t, 0, result.RiskPercentage)
		assert.Equal(t, RiskLow, result.RiskLevel)
	})

	t.Run("deficient across the board", func(t *testing.T) {
		answers := Answers{"q1": "no", "q2": "partial", "q3": "no"}
		result := Score(answers, ApplicableQuestions(catalog, answers))

		// total = 5 + 2*2 + 3 = 12, max = 5 + 8 + 3 = 16 -> 75%.
		assert.Equal(t, 12, result.TotalRiskScore)
		assert.Equal(t, 16, result.MaxPossibleScore)
		assert.Equal(t, 75, result.RiskPercentage)
		assert.Equal(t, RiskHigh, result.RiskLevel)
	})

	t.Run("unanswered questions score at maximum risk", func(t *testing.T) {
		answers := Answers{"q1": "no"}
		result := Score(answers, ApplicableQuestions(catalog, answers))

		// q2 and q3 unanswered: both contribute their max.
		assert.Equal(t, 16, result.TotalRiskScore)
		assert.Equal(t, 16, result.MaxPossibleScore)
		assert.Equal(t, 100, result.RiskPercentage)
		assert.Equal(t, RiskHigh, result.RiskLevel)
	})
}

func TestScoreEdgeCases(t *testing.T) {
	catalog := threeQuestionCatalog()

	t.Run("empty applicable set yields low risk, zero percent", func(t *testing.T) {
		result := Score(Answers{}, nil)
		assert.Equal(t, Result{TotalRiskScore: 0, MaxPossibleScore: 0, RiskPercentage: 0, RiskLevel: RiskLow}, result)
	})

	t.Run("unknown answer value treated as unanswered", func(t *testing.T) {
		answers := Answers{"q1": "maybe", "q2": "yes", "q3": "yes"}
		result := Score(answers, ApplicableQuestions(catalog, answers))

		// q1 contributes its max of 5.
		assert.Equal(t, 5, result.TotalRiskScore)
		assert.Equal(t, 16, result.MaxPossibleScore)
	})

	t.Run("answers for skipped questions contribute nothing", func(t *testing.T) {
		// q3 answered "no" but q1=yes skips it; neither side of the ratio
		// may see it.
		answers := Answers{"q1": "yes", "q2": "yes", "q3": "no"}
		result := Score(answers, ApplicableQuestions(catalog, answers))

		assert.Equal(t, 0, result.TotalRiskScore)
		assert.Equal(t, 13, result.MaxPossibleScore)
	})

	t.Run("does not mutate the answer map", func(t *testing.T) {
		answers := Answers{"q1": "no"}
		_ = Score(answers, ApplicableQuestions(catalog, answers))
		assert.Equal(t, Answers{"q1": "no"}, answers)
	})
}

func TestScoreProperties(t *testing.T) {
	catalog := threeQuestionCatalog()

	t.Run("determinism", func(t *testing.T) {
		answers := Answers{"q1": "no", "q2": "partial"}
		applicable := ApplicableQuestions(catalog, answers)
		first := Score(answers, applicable)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Score(answers, applicable))
		}
	})

	t.Run("monotonicity: a worse answer never lowers the score", func(t *testing.T) {
		base := Answers{"q1": "no", "q2": "yes", "q3": "yes"}
		worse := Answers{"q1": "no", "q2": "partial", "q3": "yes"}
		worst := Answers{"q1": "no", "q2": "no", "q3": "yes"}

		applicable := ApplicableQuestions(catalog, base)
		baseResult := Score(base, applicable)
		worseResult := Score(worse, applicable)
		worstResult := Score(worst, applicable)

		assert.LessOrEqual(t, baseResult.TotalRiskScore, worseResult.TotalRiskScore)
		assert.LessOrEqual(t, worseResult.TotalRiskScore, worstResult.TotalRiskScore)
		assert.LessOrEqual(t, baseResult.RiskPercentage, worseResult.RiskPercentage)
		assert.LessOrEqual(t, worseResult.RiskPercentage, worstResult.RiskPercentage)
	})

	t.Run("bounds hold for arbitrary answer combinations", func(t *testing.T) {
		values := []string{"yes", "partial", "no", "bogus", ""}
		for _, v1 := range values {
			for _, v2 := range values {
				for _, v3 := range values {
					answers := Answers{}
					if v1 != "" {
						answers["q1"] = v1
					}
					if v2 != "" {
						answers["q2"] = v2
					}
					if v3 != "" {
						answers["q3"] = v3
					}
					result := Score(answers, ApplicableQuestions(catalog, answers))

					assert.GreaterOrEqual(t, result.TotalRiskScore, 0)
					assert.LessOrEqual(t, result.TotalRiskScore, result.MaxPossibleScore)
					assert.GreaterOrEqual(t, result.RiskPercentage, 0)
					assert.LessOrEqual(t, result.RiskPercentage, 100)
				}
			}
		}
	})

	t.Run("removing an answer never lowers its contribution", func(t *testing.T) {
		full := Answers{"q1": "no", "q2": "yes", "q3": "yes"}
		missing := Answers{"q1": "no", "q3": "yes"}

		applicable := ApplicableQuestions(catalog, full)
		assert.GreaterOrEqual(t,
			Score(missing, applicable).TotalRiskScore,
			Score(full, applicable).TotalRiskScore)
	})
}

func TestClassifyPercentage(t *testing.T) {
	tests := []struct {
		pct  int
		want RiskLevel
	}{
		{0, RiskLow},
		{19, RiskLow},
		{20, RiskMedium},
		{35, RiskMedium},
		{50, RiskMedium},
		{51, RiskHigh},
		{100, RiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyPercentage(tt.pct), "pct=%d", tt.pct)
	}
}

func TestQuestionHelpers(t *testing.T) {
	q := Question{
		Options: []Option{
			{Value: "a", RiskScore: 1},
			{Value: "b", RiskScore: 4},
			{Value: "c", RiskScore: 2},
		},
	}
	assert.Equal(t, 4, q.MaxRiskScore())
	assert.Equal(t, 1, q.Weight())

	q.SeverityWeight = 3
	assert.Equal(t, 3, q.Weight())
}
