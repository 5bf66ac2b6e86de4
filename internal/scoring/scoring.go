// Package scoring reduces a risk-assessment answer set to a risk verdict.
// It is deliberately dependency-free: no I/O, no globals, no mutation of
// inputs, so it can be called from any handler or test without coordination.
package scoring

import "math"

// Category groups questions by HIPAA safeguard family.
type Category string

const (
	CategoryAdministrative Category = "administrative"
	CategoryPhysical       Category = "physical"
	CategoryTechnical      Category = "technical"
)

// RiskLevel is the three-bucket classification of an assessment.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Classification thresholds over the risk percentage. Fixed policy
// constants: below LowMax is low, up to and including MediumMax is medium,
// anything above is high.
const (
	LowMaxPercent    = 20
	MediumMaxPercent = 50
)

// Per-question bounds enforced by ValidateCatalog.
const (
	MaxOptionRiskScore = 5
	MaxSeverityWeight  = 5
)

// Option is one selectable answer for a question. RiskScore is how much
// risk choosing it implies: 0 is fully compliant, MaxOptionRiskScore is the
// worst answer.
type Option struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	RiskScore int    `json:"riskScore"`
}

// SkipCondition excludes a question whenever an earlier question was
// answered with exactly Answer.
type SkipCondition struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// Question is an immutable catalog entry. SeverityWeight scales the
// question's contribution to the aggregate; zero means unweighted (1x).
type Question struct {
	ID             string         `json:"id"`
	Category       Category       `json:"category"`
	Text           string         `json:"text"`
	Options        []Option       `json:"options"`
	SeverityWeight int            `json:"severityWeight,omitempty"`
	SkipIf         *SkipCondition `json:"skipIf,omitempty"`
}

// Answers maps question id to the selected option value. Keys are a subset
// of the catalog ids; missing keys mean the question was not answered yet.
type Answers map[string]string

// Result is the scoring verdict. It is recomputed wholesale on every
// invocation, never patched incrementally.
type Result struct {
	TotalRiskScore   int       `json:"totalRiskScore"`
	MaxPossibleScore int       `json:"maxPossibleScore"`
	RiskPercentage   int       `json:"riskPercentage"`
	RiskLevel        RiskLevel `json:"riskLevel"`
}

// Weight returns the question's severity multiplier, defaulting to 1.
func (q Question) Weight() int {
	if q.SeverityWeight > 0 {
		return q.SeverityWeight
	}
	return 1
}

// MaxRiskScore returns the highest risk score among the question's options,
// before severity weighting.
func (q Question) MaxRiskScore() int {
	max := 0
	for _, opt := range q.Options {
		if opt.RiskScore > max {
			max = opt.RiskScore
		}
	}
	return max
}

// ApplicableQuestions returns the ordered subset of catalog the respondent
// must answer given the current answers. A question is excluded only when
// its SkipIf question is currently answered with exactly the skip value;
// an unanswered SkipIf reference means the question stays in.
//
// This is the single source of truth for visibility: the wizard UI and the
// scoring call site both go through here so the denominator can never
// diverge from what the respondent was shown.
func ApplicableQuestions(catalog []Question, answers Answers) []Question {
	applicable := make([]Question, 0, len(catalog))
	for _, q := range catalog {
		if q.SkipIf != nil {
			if got, ok := answers[q.SkipIf.QuestionID]; ok && got == q.SkipIf.Answer {
				continue
			}
		}
		applicable = append(applicable, q)
	}
	return applicable
}

// Score reduces answers against the applicable question set into a Result.
//
// Unanswered questions, and answers whose value matches none of the
// question's options, are scored at the question's maximum risk: an
// incomplete assessment never under-reports. Respondent input can therefore
// never make Score fail; catalog mistakes are caught by ValidateCatalog at
// startup and are not re-checked here.
func Score(answers Answers, applicable []Question) Result {
	total := 0
	maxPossible := 0

	for _, q := range applicable {
		weight := q.Weight()
		maxScore := q.MaxRiskScore()

		optScore := maxScore
		if value, ok := answers[q.ID]; ok {
			for _, opt := range q.Options {
				if opt.Value == value {
					optScore = opt.RiskScore
					break
				}
			}
		}

		total += optScore * weight
		maxPossible += maxScore * weight
	}

	pct := 0
	if maxPossible > 0 {
		pct = int(math.Round(float64(total) / float64(maxPossible) * 100))
	}

	return Result{
		TotalRiskScore:   total,
		MaxPossibleScore: maxPossible,
		RiskPercentage:   pct,
		RiskLevel:        ClassifyPercentage(pct),
	}
}

// ClassifyPercentage maps a risk percentage to a RiskLevel using the fixed
// thresholds above.
func ClassifyPercentage(pct int) RiskLevel {
	switch {
	case pct < LowMaxPercent:
		return RiskLow
	case pct <= MediumMaxPercent:
		return RiskMedium
	default:
		return RiskHigh
	}
}
