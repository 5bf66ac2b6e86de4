package service

import (
	"complipilot_backend/internal/scoring"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planQuestions() []scoring.Question {
	return []scoring.Question{
		{
			ID:       "encryption",
			Category: scoring.CategoryTechnical,
			Text:     "Are all devices encrypted?",
			Options: []scoring.Option{
				{Value: "yes", RiskScore: 0},
				{Value: "partial", RiskScore: 2},
				{Value: "no", RiskScore: 5},
			},
			SeverityWeight: 5,
		},
		{
			ID:       "training",
			Category: scoring.CategoryAdministrative,
			Text:     "Is staff trained annually?",
			Options: []scoring.Option{
				{Value: "yes", RiskScore: 0},
				{Value: "no", RiskScore: 4},
			},
			SeverityWeight: 2,
		},
		{
			ID:       "visitor_log",
			Category: scoring.CategoryPhysical,
			Text:     "Are visitors logged?",
			Options: []scoring.Option{
				{Value: "yes", RiskScore: 0},
				{Value: "no", RiskScore: 2},
			},
		},
	}
}

func TestBuildPlanItems(t *testing.T) {
	qs := planQuestions()

	t.Run("orders items worst first", func(t *testing.T) {
		answers := scoring.Answers{
			"encryption":  "no",  // 5*5 = 25
			"training":    "no",  // 4*2 = 8
			"visitor_log": "no",  // 2*1 = 2
		}
		items := BuildPlanItems(answers, qs)
		require.Len(t, items, 3)

		assert.Equal(t, "encryption", items[0].QuestionID)
		assert.Equal(t, "training", items[1].QuestionID)
		assert.Equal(t, "visitor_log", items[2].QuestionID)

		for i, item := range items {
			assert.Equal(t, i+1, item.Order)
		}
	})

	t.Run("priority follows weighted contribution", func(t *testing.T) {
		answers := scoring.Answers{
			"encryption":  "no",
			"training":    "no",
			"visitor_log": "no",
		}
		items := BuildPlanItems(answers, qs)
		require.Len(t, items, 3)

		assert.Equal(t, "high", items[0].Priority)
		assert.Equal(t, "medium", items[1].Priority)
		assert.Equal(t, "low", items[2].Priority)
	})

	t.Run("clean answers produce no items", func(t *testing.T) {
		answers := scoring.Answers{
			"encryption":  "yes",
			"training":    "yes",
			"visitor_log": "yes",
		}
		items := BuildPlanItems(answers, qs)
		assert.Empty(t, items)
	})

	t.Run("unanswered question counts at its maximum", func(t *testing.T) {
		answers := scoring.Answers{
			"training":    "yes",
			"visitor_log": "yes",
		}
		items := BuildPlanItems(answers, qs)
		require.Len(t, items, 1)

		assert.Equal(t, "encryption", items[0].QuestionID)
		assert.Equal(t, "high", items[0].Priority)
		assert.True(t, strings.HasPrefix(items[0].Recommendation, "Not assessed:"))
	})

	t.Run("answered gap carries a different recommendation", func(t *testing.T) {
		answers := scoring.Answers{
			"encryption":  "partial",
			"training":    "yes",
			"visitor_log": "yes",
		}
		items := BuildPlanItems(answers, qs)
		require.Len(t, items, 1)
		assert.Contains(t, items[0].Recommendation, "indicates a gap")
	})

	t.Run("partial answer lowers priority", func(t *testing.T) {
		answers := scoring.Answers{
			"encryption":  "partial", // 2*5 = 10, still high at the boundary
			"training":    "yes",
			"visitor_log": "yes",
		}
		items := BuildPlanItems(answers, qs)
		require.Len(t, items, 1)
		assert.Equal(t, "high", items[0].Priority)
	})

	t.Run("category carried onto the item", func(t *testing.T) {
		answers := scoring.Answers{"encryption": "no", "training": "yes", "visitor_log": "yes"}
		items := BuildPlanItems(answers, qs)
		require.Len(t, items, 1)
		assert.Equal(t, string(scoring.CategoryTechnical), items[0].Category)
	})

	t.Run("empty question set yields empty plan", func(t *testing.T) {
		items := BuildPlanItems(scoring.Answers{}, nil)
		assert.Empty(t, items)
	})
}

func TestPlanPriority(t *testing.T) {
	cases := []struct {
		contribution int
		want         string
	}{
		{25, "high"},
		{10, "high"},
		{9, "medium"},
		{4, "medium"},
		{3, "low"},
		{1, "low"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, planPriority(tc.contribution), "contribution %d", tc.contribution)
	}
}
