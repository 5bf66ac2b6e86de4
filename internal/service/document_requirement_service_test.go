package service

import (
	"complipilot_backend/internal/scoring"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requirementsByType(reqs []DocumentRequirement) map[string]DocumentRequirement {
	byType := make(map[string]DocumentRequirement, len(reqs))
	for _, r := range reqs {
		byType[r.DocumentType] = r
	}
	return byType
}

func TestDeriveDocumentRequirements(t *testing.T) {
	catalog := scoring.Catalog()

	t.Run("every rule yields a checklist entry", func(t *testing.T) {
		reqs := DeriveDocumentRequirements(scoring.Answers{}, scoring.ApplicableQuestions(catalog, scoring.Answers{}))
		assert.Len(t, reqs, len(requirementRules))
	})

	t.Run("unanswered triggers fire conservatively", func(t *testing.T) {
		reqs := DeriveDocumentRequirements(scoring.Answers{}, scoring.ApplicableQuestions(catalog, scoring.Answers{}))
		byType := requirementsByType(reqs)

		pp, ok := byType["privacy_policy"]
		require.True(t, ok)
		assert.True(t, pp.Missing)
		require.NotEmpty(t, pp.MissingReasons)
		assert.Contains(t, pp.MissingReasons[0], "(not yet assessed)")
	})

	t.Run("good answer clears the requirement", func(t *testing.T) {
		answers := scoring.Answers{"written_policies": "yes", "risk_analysis_done": "yes"}
		reqs := DeriveDocumentRequirements(answers, scoring.ApplicableQuestions(catalog, answers))
		byType := requirementsByType(reqs)

		assert.False(t, byType["privacy_policy"].Missing)
		assert.False(t, byType["security_policy"].Missing)
	})

	t.Run("deficient answer marks the document missing", func(t *testing.T) {
		answers := scoring.Answers{"written_policies": "partial"}
		reqs := DeriveDocumentRequirements(answers, scoring.ApplicableQuestions(catalog, answers))
		byType := requirementsByType(reqs)

		pp := byType["privacy_policy"]
		assert.True(t, pp.Missing)
		require.Len(t, pp.MissingReasons, 1)
		assert.NotContains(t, pp.MissingReasons[0], "(not yet assessed)")
	})

	t.Run("skipped question never fires", func(t *testing.T) {
		// No cloud services: cloud_baa is pruned by the applicability
		// filter, so only the vendor trigger can mark baa_template.
		answers := scoring.Answers{
			"uses_cloud_services":   "no",
			"uses_vendors_with_phi": "yes",
			"baa_signed":            "yes",
		}
		applicable := scoring.ApplicableQuestions(catalog, answers)
		for _, q := range applicable {
			assert.NotEqual(t, "cloud_baa", q.ID)
		}

		reqs := DeriveDocumentRequirements(answers, applicable)
		byType := requirementsByType(reqs)
		assert.False(t, byType["baa_template"].Missing)
	})

	t.Run("one trigger is enough", func(t *testing.T) {
		answers := scoring.Answers{
			"uses_cloud_services":   "yes",
			"cloud_baa":             "no",
			"uses_vendors_with_phi": "yes",
			"baa_signed":            "yes",
		}
		reqs := DeriveDocumentRequirements(answers, scoring.ApplicableQuestions(catalog, answers))
		byType := requirementsByType(reqs)

		bt := byType["baa_template"]
		assert.True(t, bt.Missing)
		require.Len(t, bt.MissingReasons, 1)
		assert.Contains(t, bt.MissingReasons[0], "Cloud providers")
	})

	t.Run("rules reference catalog questions only", func(t *testing.T) {
		known := make(map[string]bool, len(catalog))
		for _, q := range catalog {
			known[q.ID] = true
		}
		for _, rule := range requirementRules {
			for _, trigger := range rule.Triggers {
				assert.True(t, known[trigger.QuestionID], "rule %s references unknown question %s", rule.DocumentType, trigger.QuestionID)
			}
		}
	})
}
