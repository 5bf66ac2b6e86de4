package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsValid(t *testing.T) {
	require.NoError(t, ValidateCatalog(Catalog()))
}

func TestCatalogCoversAllCategories(t *testing.T) {
	counts := map[Category]int{}
	for _, q := range Catalog() {
		counts[q.Category]++
	}
	assert.Greater(t, counts[CategoryAdministrative], 0)
	assert.Greater(t, counts[CategoryPhysical], 0)
	assert.Greater(t, counts[CategoryTechnical], 0)
}

func TestCatalogReturnsFreshCopies(t *testing.T) {
	first := Catalog()
	first[0].ID = "mutated"
	first[0].Options[0].RiskScore = 99

	second := Catalog()
	assert.NotEqual(t, "mutated", second[0].ID)
	assert.NotEqual(t, 99, second[0].Options[0].RiskScore)
}

func TestValidateCatalog(t *testing.T) {
	valid := func() []Question {
		return []Question{
			{
				ID:       "a",
				Category: CategoryAdministrative,
				Options:  []Option{{Value: "yes", RiskScore: 0}, {Value: "no", RiskScore: 5}},
			},
			{
				ID:       "b",
				Category: CategoryTechnical,
				SkipIf:   &SkipCondition{QuestionID: "a", Answer: "no"},
				Options:  []Option{{Value: "yes", RiskScore: 0}, {Value: "no", RiskScore: 3}},
			},
		}
	}

	t.Run("accepts a valid catalog", func(t *testing.T) {
		assert.NoError(t, ValidateCatalog(valid()))
	})

	t.Run("rejects empty id", func(t *testing.T) {
		c := valid()
		c[0].ID = ""
		assert.Error(t, ValidateCatalog(c))
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		c := valid()
		c[1].ID = "a"
		c[1].SkipIf = nil
		assert.Error(t, ValidateCatalog(c))
	})

	t.Run("rejects a question with no options", func(t *testing.T) {
		c := valid()
		c[0].Options = nil
		assert.Error(t, ValidateCatalog(c))
	})

	t.Run("rejects out-of-range risk score", func(t *testing.T) {
		c := valid()
		c[0].Options[1].RiskScore = MaxOptionRiskScore + 1
		assert.Error(t, ValidateCatalog(c))

		c = valid()
		c[0].Options[1].RiskScore = -1
		assert.Error(t, ValidateCatalog(c))
	})

	t.Run("rejects out-of-range severity weight", func(t *testing.T) {
		c := valid()
		c[0].SeverityWeight = MaxSeverityWeight + 1
		assert.Error(t, ValidateCatalog(c))
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		c := valid()
		c[0].Category = "organizational"
		assert.Error(t, ValidateCatalog(c))
	})

	t.Run("rejects forward skip reference", func(t *testing.T) {
		c := valid()
		c[0].SkipIf = &SkipCondition{QuestionID: "b", Answer: "yes"}
		assert.Error(t, ValidateCatalog(c))
	})

	t.Run("rejects skip answer that is not an option", func(t *testing.T) {
		c := valid()
		c[1].SkipIf.Answer = "never"
		assert.Error(t, ValidateCatalog(c))
	})
}

// The compiled-in catalog is static configuration: make sure the branching
// it declares actually prunes questions, and that pruning is reflected in
// the score denominator.
func TestCatalogBranching(t *testing.T) {
	catalog := Catalog()

	noCloud := Answers{"uses_cloud_services": "no"}
	pruned := ApplicableQuestions(catalog, noCloud)
	for _, q := range pruned {
		assert.NotEqual(t, "cloud_baa", q.ID)
		assert.NotEqual(t, "cloud_access_config", q.ID)
	}

	withCloud := Answers{"uses_cloud_services": "yes"}
	assert.Greater(t,
		Score(withCloud, ApplicableQuestions(catalog, withCloud)).MaxPossibleScore,
		Score(noCloud, ApplicableQuestions(catalog, noCloud)).MaxPossibleScore)
}
