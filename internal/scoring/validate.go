package scoring

import "fmt"

// ValidateCatalog checks catalog-authoring invariants once at startup so the
// per-assessment hot path never has to. It returns the first violation found:
//   - duplicate or empty question ids
//   - a question with no options
//   - an option risk score outside [0, MaxOptionRiskScore]
//   - a severity weight outside [1, MaxSeverityWeight] (when set)
//   - a SkipIf referencing an unknown question, a later question, or itself
func ValidateCatalog(catalog []Question) error {
	seen := make(map[string]int, len(catalog))

	for i, q := range catalog {
		if q.ID == "" {
			return fmt.Errorf("question at index %d has an empty id", i)
		}
		if prev, dup := seen[q.ID]; dup {
			return fmt.Errorf("question %q: duplicate of index %d", q.ID, prev)
		}

		if len(q.Options) == 0 {
			return fmt.Errorf("question %q has no options", q.ID)
		}
		optValues := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if opt.Value == "" {
				return fmt.Errorf("question %q has an option with an empty value", q.ID)
			}
			if optValues[opt.Value] {
				return fmt.Errorf("question %q: duplicate option value %q", q.ID, opt.Value)
			}
			optValues[opt.Value] = true
			if opt.RiskScore < 0 || opt.RiskScore > MaxOptionRiskScore {
				return fmt.Errorf("question %q option %q: risk score %d outside [0,%d]",
					q.ID, opt.Value, opt.RiskScore, MaxOptionRiskScore)
			}
		}

		if q.SeverityWeight != 0 && (q.SeverityWeight < 1 || q.SeverityWeight > MaxSeverityWeight) {
			return fmt.Errorf("question %q: severity weight %d outside [1,%d]",
				q.ID, q.SeverityWeight, MaxSeverityWeight)
		}

		switch q.Category {
		case CategoryAdministrative, CategoryPhysical, CategoryTechnical:
		default:
			return fmt.Errorf("question %q: unknown category %q", q.ID, q.Category)
		}

		if q.SkipIf != nil {
			// skipIf may only reference an earlier question, so branching can
			// never be circular.
			ref, ok := seen[q.SkipIf.QuestionID]
			if !ok {
				return fmt.Errorf("question %q: skipIf references %q which is not an earlier question",
					q.ID, q.SkipIf.QuestionID)
			}
			refQ := catalog[ref]
			validAnswer := false
			for _, opt := range refQ.Options {
				if opt.Value == q.SkipIf.Answer {
					validAnswer = true
					break
				}
			}
			if !validAnswer {
				return fmt.Errorf("question %q: skipIf answer %q is not an option of %q",
					q.ID, q.SkipIf.Answer, q.SkipIf.QuestionID)
			}
		}

		seen[q.ID] = i
	}

	return nil
}
