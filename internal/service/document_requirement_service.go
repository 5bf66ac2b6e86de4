package service

import (
	"complipilot_backend/internal/model"
	"complipilot_backend/internal/scoring"
)

// DocumentRequirement flags one policy document the organization needs,
// derived from raw assessment answers. Derivation is a sibling of the
// scoring engine: both consume the same answer map, neither consumes the
// other's output, and the UI may invoke them in either order.
type DocumentRequirement struct {
	DocumentType   string                 `json:"documentType"`
	Title          string                 `json:"title"`
	Category       model.DocumentCategory `json:"category"`
	Missing        bool                   `json:"missing"`
	MissingReasons []string               `json:"missingReasons,omitempty"`
}

// requirementRule declares when a document counts as missing. A trigger
// fires when the question is answered with one of the listed values, or
// conservatively when it is unanswered; an unapplicable (skipped) question
// never fires.
type requirementRule struct {
	DocumentType string
	Title        string
	Category     model.DocumentCategory
	Triggers     []requirementTrigger
}

type requirementTrigger struct {
	QuestionID string
	Values     []string
	Reason     string
}

var requirementRules = []requirementRule{
	{
		DocumentType: "privacy_policy",
		Title:        "HIPAA Privacy Policy",
		Category:     model.DocumentCritical,
		Triggers: []requirementTrigger{
			{QuestionID: "written_policies", Values: []string{"no", "partial"}, Reason: "Written privacy and security policies are missing or incomplete"},
		},
	},
	{
		DocumentType: "security_policy",
		Title:        "Security Management Policy",
		Category:     model.DocumentCritical,
		Triggers: []requirementTrigger{
			{QuestionID: "written_policies", Values: []string{"no", "partial"}, Reason: "Written privacy and security policies are missing or incomplete"},
			{QuestionID: "risk_analysis_done", Values: []string{"no"}, Reason: "No security risk analysis has been conducted"},
		},
	},
	{
		DocumentType: "incident_response_plan",
		Title:        "Security Incident Response Plan",
		Category:     model.DocumentCritical,
		Triggers: []requirementTrigger{
			{QuestionID: "incident_response_plan", Values: []string{"no", "partial"}, Reason: "No tested incident response plan exists"},
		},
	},
	{
		DocumentType: "breach_notification_policy",
		Title:        "Breach Notification Policy",
		Category:     model.DocumentCritical,
		Triggers: []requirementTrigger{
			{QuestionID: "breach_notification_process", Values: []string{"no"}, Reason: "No breach notification process is in place"},
		},
	},
	{
		DocumentType: "contingency_plan",
		Title:        "Contingency and Disaster Recovery Plan",
		Category:     model.DocumentRequired,
		Triggers: []requirementTrigger{
			{QuestionID: "contingency_plan", Values: []string{"no", "partial"}, Reason: "Contingency planning is incomplete"},
			{QuestionID: "backups", Values: []string{"no", "partial"}, Reason: "Backups are missing, untested, or unencrypted"},
		},
	},
	{
		DocumentType: "sanction_policy",
		Title:        "Workforce Sanction Policy",
		Category:     model.DocumentRequired,
		Triggers: []requirementTrigger{
			{QuestionID: "sanction_policy", Values: []string{"no"}, Reason: "No sanction policy for privacy and security violations"},
		},
	},
	{
		DocumentType: "training_program",
		Title:        "HIPAA Training Program",
		Category:     model.DocumentRequired,
		Triggers: []requirementTrigger{
			{QuestionID: "staff_training", Values: []string{"no", "partial"}, Reason: "Workforce HIPAA training is missing or untracked"},
		},
	},
	{
		DocumentType: "baa_template",
		Title:        "Business Associate Agreement Template",
		Category:     model.DocumentCritical,
		Triggers: []requirementTrigger{
			{QuestionID: "baa_signed", Values: []string{"no", "partial"}, Reason: "Vendors handling PHI lack signed BAAs"},
			{QuestionID: "cloud_baa", Values: []string{"no", "partial"}, Reason: "Cloud providers storing PHI lack signed BAAs"},
		},
	},
	{
		DocumentType: "access_control_policy",
		Title:        "Access Control and Termination Policy",
		Category:     model.DocumentRequired,
		Triggers: []requirementTrigger{
			{QuestionID: "unique_user_ids", Values: []string{"no", "partial"}, Reason: "Shared accounts are in use on PHI systems"},
			{QuestionID: "termination_procedures", Values: []string{"no", "partial"}, Reason: "Offboarding does not promptly revoke PHI access"},
			{QuestionID: "access_review", Values: []string{"no", "partial"}, Reason: "PHI access is not periodically reviewed"},
		},
	},
	{
		DocumentType: "device_media_policy",
		Title:        "Device and Media Control Policy",
		Category:     model.DocumentRequired,
		Triggers: []requirementTrigger{
			{QuestionID: "device_encryption", Values: []string{"no", "partial"}, Reason: "Devices accessing PHI are not fully encrypted"},
			{QuestionID: "media_disposal", Values: []string{"no"}, Reason: "Media is not sanitized before disposal"},
			{QuestionID: "byod_policy", Values: []string{"no", "partial"}, Reason: "Personal devices access PHI without an enforced BYOD policy"},
		},
	},
	{
		DocumentType: "notice_privacy_practices",
		Title:        "Notice of Privacy Practices",
		Category:     model.DocumentRequired,
		Triggers: []requirementTrigger{
			{QuestionID: "npp_provided", Values: []string{"no", "partial"}, Reason: "Patients do not receive or acknowledge a privacy notice"},
		},
	},
}

// DeriveDocumentRequirements maps raw answers to the document checklist.
// Pure: no I/O, no dependence on the scoring result.
func DeriveDocumentRequirements(answers scoring.Answers, applicable []scoring.Question) []DocumentRequirement {
	applicableSet := make(map[string]bool, len(applicable))
	for _, q := range applicable {
		applicableSet[q.ID] = true
	}

	reqs := make([]DocumentRequirement, 0, len(requirementRules))
	for _, rule := range requirementRules {
		req := DocumentRequirement{
			DocumentType: rule.DocumentType,
			Title:        rule.Title,
			Category:     rule.Category,
		}

		for _, trigger := range rule.Triggers {
			if !applicableSet[trigger.QuestionID] {
				continue
			}
			value, answered := answers[trigger.QuestionID]
			if !answered {
				req.Missing = true
				req.MissingReasons = append(req.MissingReasons, trigger.Reason+" (not yet assessed)")
				continue
			}
			for _, v := range trigger.Values {
				if value == v {
					req.Missing = true
					req.MissingReasons = append(req.MissingReasons, trigger.Reason)
					break
				}
			}
		}

		reqs = append(reqs, req)
	}
	return reqs
}
