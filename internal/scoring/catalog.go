package scoring

// Catalog returns the HIPAA security risk assessment question set. The
// slice is rebuilt on each call so callers can never mutate shared state;
// the App validates it once at startup and hands the same snapshot to every
// request.
func Catalog() []Question {
	return []Question{
		// Administrative safeguards
		{
			ID:       "risk_analysis_done",
			Category: CategoryAdministrative,
			Text:     "Has your organization conducted a security risk analysis within the last 12 months?",
			Options:  yesPartialNo("We completed one within the year", "One exists but it is over a year old", "We have never conducted one"),
			SeverityWeight: 5,
		},
		{
			ID:       "security_officer_named",
			Category: CategoryAdministrative,
			Text:     "Have you designated a HIPAA Security Officer responsible for your security program?",
			Options:  yesNo(5),
			SeverityWeight: 4,
		},
		{
			ID:       "privacy_officer_named",
			Category: CategoryAdministrative,
			Text:     "Have you designated a HIPAA Privacy Officer?",
			Options:  yesNo(5),
			SeverityWeight: 4,
		},
		{
			ID:       "written_policies",
			Category: CategoryAdministrative,
			Text:     "Do you maintain written HIPAA privacy and security policies and procedures?",
			Options:  yesPartialNo("Complete and reviewed annually", "Some policies exist but are incomplete or outdated", "No written policies"),
			SeverityWeight: 5,
		},
		{
			ID:       "staff_training",
			Category: CategoryAdministrative,
			Text:     "Do all workforce members receive HIPAA training at hire and annually thereafter?",
			Options:  yesPartialNo("Everyone, with completion records", "Some staff, or training is not tracked", "No formal training"),
			SeverityWeight: 4,
		},
		{
			ID:       "training_records",
			Category: CategoryAdministrative,
			Text:     "Do you keep documentation of completed HIPAA training for each workforce member?",
			Options:  yesNo(3),
			SkipIf:   &SkipCondition{QuestionID: "staff_training", Answer: "no"},
		},
		{
			ID:       "sanction_policy",
			Category: CategoryAdministrative,
			Text:     "Do you have a sanction policy for workforce members who violate privacy or security policies?",
			Options:  yesNo(3),
		},
		{
			ID:       "incident_response_plan",
			Category: CategoryAdministrative,
			Text:     "Do you have a documented security incident response plan?",
			Options:  yesPartialNo("Documented and tested", "Documented but never tested", "No plan"),
			SeverityWeight: 4,
		},
		{
			ID:       "breach_notification_process",
			Category: CategoryAdministrative,
			Text:     "Do you have a breach notification process covering patients, HHS, and the media where required?",
			Options:  yesNo(5),
			SeverityWeight: 4,
		},
		{
			ID:       "contingency_plan",
			Category: CategoryAdministrative,
			Text:     "Do you have a contingency plan covering data backup, disaster recovery, and emergency mode operation?",
			Options:  yesPartialNo("All three components documented", "Partial coverage", "No contingency plan"),
			SeverityWeight: 3,
		},
		{
			ID:       "workforce_screening",
			Category: CategoryAdministrative,
			Text:     "Do you screen workforce members (e.g. background checks) before granting PHI access?",
			Options:  yesNo(2),
		},
		{
			ID:       "termination_procedures",
			Category: CategoryAdministrative,
			Text:     "When a workforce member leaves, is their access to PHI systems revoked the same day?",
			Options:  yesPartialNo("Same-day, with a checklist", "Usually within a week", "No formal offboarding"),
			SeverityWeight: 3,
		},
		{
			ID:       "access_review",
			Category: CategoryAdministrative,
			Text:     "Do you periodically review who has access to PHI and at what level?",
			Options:  yesPartialNo("At least quarterly", "Occasionally, without a schedule", "Never"),
		},
		{
			ID:       "uses_vendors_with_phi",
			Category: CategoryAdministrative,
			Text:     "Do any outside vendors or contractors create, receive, maintain, or transmit PHI on your behalf?",
			Options: []Option{
				{Value: "yes", Label: "Yes", RiskScore: 0},
				{Value: "no", Label: "No", RiskScore: 0},
			},
		},
		{
			ID:       "baa_signed",
			Category: CategoryAdministrative,
			Text:     "Do you have signed Business Associate Agreements with every vendor that handles PHI?",
			Options:  yesPartialNo("All vendors, tracked in an inventory", "Some vendors", "No BAAs in place"),
			SeverityWeight: 5,
			SkipIf:   &SkipCondition{QuestionID: "uses_vendors_with_phi", Answer: "no"},
		},
		{
			ID:       "baa_inventory",
			Category: CategoryAdministrative,
			Text:     "Do you maintain a current inventory of all business associates and their agreements?",
			Options:  yesNo(3),
			SkipIf:   &SkipCondition{QuestionID: "uses_vendors_with_phi", Answer: "no"},
		},
		{
			ID:       "npp_provided",
			Category: CategoryAdministrative,
			Text:     "Do you provide a Notice of Privacy Practices to patients and obtain acknowledgment?",
			Options:  yesPartialNo("Provided and acknowledgment recorded", "Provided but acknowledgment not tracked", "Not provided"),
			SeverityWeight: 3,
		},
		{
			ID:       "minimum_necessary",
			Category: CategoryAdministrative,
			Text:     "Do your procedures limit PHI use and disclosure to the minimum necessary for each purpose?",
			Options:  yesPartialNo("Role-based limits are documented", "Informal practice only", "No limits"),
		},
		{
			ID:       "patient_rights_process",
			Category: CategoryAdministrative,
			Text:     "Do you have a process for handling patient requests to access, amend, or restrict their records?",
			Options:  yesNo(3),
		},
		{
			ID:       "risk_management_process",
			Category: CategoryAdministrative,
			Text:     "Do you track identified risks to remediation with owners and deadlines?",
			Options:  yesPartialNo("A living risk register", "An informal list", "Findings are not tracked"),
			SeverityWeight: 3,
		},

		// Physical safeguards
		{
			ID:       "has_physical_office",
			Category: CategoryPhysical,
			Text:     "Does your organization operate a physical office or facility where PHI is handled?",
			Options: []Option{
				{Value: "yes", Label: "Yes", RiskScore: 0},
				{Value: "no", Label: "No, we are fully remote", RiskScore: 0},
			},
		},
		{
			ID:       "facility_access_controls",
			Category: CategoryPhysical,
			Text:     "Is physical access to areas where PHI is stored restricted (locks, badges, visitor logs)?",
			Options:  yesPartialNo("Restricted and logged", "Locked but no visitor controls", "Unrestricted"),
			SeverityWeight: 3,
			SkipIf:   &SkipCondition{QuestionID: "has_physical_office", Answer: "no"},
		},
		{
			ID:       "workstation_placement",
			Category: CategoryPhysical,
			Text:     "Are workstations displaying PHI positioned or shielded so the public cannot view them?",
			Options:  yesNo(2),
			SkipIf:   &SkipCondition{QuestionID: "has_physical_office", Answer: "no"},
		},
		{
			ID:       "keeps_paper_records",
			Category: CategoryPhysical,
			Text:     "Do you keep paper records containing PHI?",
			Options: []Option{
				{Value: "yes", Label: "Yes", RiskScore: 0},
				{Value: "no", Label: "No, fully electronic", RiskScore: 0},
			},
		},
		{
			ID:       "paper_storage_locked",
			Category: CategoryPhysical,
			Text:     "Are paper records with PHI stored in locked cabinets or rooms when not in use?",
			Options:  yesNo(4),
			SeverityWeight: 2,
			SkipIf:   &SkipCondition{QuestionID: "keeps_paper_records", Answer: "no"},
		},
		{
			ID:       "paper_disposal",
			Category: CategoryPhysical,
			Text:     "Are paper records with PHI destroyed by shredding or a certified destruction service?",
			Options:  yesNo(4),
			SeverityWeight: 2,
			SkipIf:   &SkipCondition{QuestionID: "keeps_paper_records", Answer: "no"},
		},
		{
			ID:       "device_inventory",
			Category: CategoryPhysical,
			Text:     "Do you maintain an inventory of all devices (laptops, phones, tablets, servers) that access PHI?",
			Options:  yesPartialNo("Complete and current", "Partial or outdated", "No inventory"),
			SeverityWeight: 2,
		},
		{
			ID:       "media_disposal",
			Category: CategoryPhysical,
			Text:     "Are hard drives and other media sanitized or destroyed before disposal or reuse?",
			Options:  yesNo(5),
			SeverityWeight: 3,
		},
		{
			ID:       "device_encryption",
			Category: CategoryPhysical,
			Text:     "Are laptops and mobile devices that store or access PHI encrypted at rest?",
			Options:  yesPartialNo("All devices, enforced centrally", "Some devices", "Not encrypted"),
			SeverityWeight: 4,
		},
		{
			ID:       "allows_byod",
			Category: CategoryPhysical,
			Text:     "Do workforce members use personal devices (BYOD) to access PHI?",
			Options: []Option{
				{Value: "yes", Label: "Yes", RiskScore: 0},
				{Value: "no", Label: "No", RiskScore: 0},
			},
		},
		{
			ID:       "byod_policy",
			Category: CategoryPhysical,
			Text:     "Do you have a BYOD policy with required controls (screen lock, encryption, remote wipe)?",
			Options:  yesPartialNo("Policy with enforced controls", "Policy without enforcement", "No policy"),
			SeverityWeight: 3,
			SkipIf:   &SkipCondition{QuestionID: "allows_byod", Answer: "no"},
		},

		// Technical safeguards
		{
			ID:       "unique_user_ids",
			Category: CategoryTechnical,
			Text:     "Does every workforce member use a unique login for systems containing PHI (no shared accounts)?",
			Options:  yesPartialNo("Unique accounts everywhere", "Some shared accounts remain", "Accounts are commonly shared"),
			SeverityWeight: 4,
		},
		{
			ID:       "mfa_enabled",
			Category: CategoryTechnical,
			Text:     "Is multi-factor authentication required for remote or administrative access to PHI systems?",
			Options:  yesPartialNo("Required everywhere", "Enabled on some systems", "Not used"),
			SeverityWeight: 4,
		},
		{
			ID:       "password_policy",
			Category: CategoryTechnical,
			Text:     "Do you enforce a password policy (length, complexity or passphrases, no reuse)?",
			Options:  yesNo(3),
		},
		{
			ID:       "auto_logoff",
			Category: CategoryTechnical,
			Text:     "Do workstations and applications with PHI automatically lock after a period of inactivity?",
			Options:  yesNo(2),
		},
		{
			ID:       "audit_logging",
			Category: CategoryTechnical,
			Text:     "Are access and activity logs kept for systems containing PHI, and reviewed for anomalies?",
			Options:  yesPartialNo("Logged and reviewed on a schedule", "Logged but not reviewed", "No logging"),
			SeverityWeight: 3,
		},
		{
			ID:       "transmission_encryption",
			Category: CategoryTechnical,
			Text:     "Is PHI encrypted in transit (TLS, VPN, secure messaging) whenever it leaves your network?",
			Options:  yesPartialNo("Always", "Sometimes, e.g. email is unencrypted", "Not encrypted"),
			SeverityWeight: 5,
		},
		{
			ID:       "email_phi",
			Category: CategoryTechnical,
			Text:     "Do workforce members send PHI by email?",
			Options: []Option{
				{Value: "yes", Label: "Yes", RiskScore: 0},
				{Value: "no", Label: "No", RiskScore: 0},
			},
		},
		{
			ID:       "secure_email",
			Category: CategoryTechnical,
			Text:     "When PHI is emailed, is a secure/encrypted email solution used?",
			Options:  yesPartialNo("Always, enforced by policy and tooling", "Available but optional", "Regular unencrypted email"),
			SeverityWeight: 4,
			SkipIf:   &SkipCondition{QuestionID: "email_phi", Answer: "no"},
		},
		{
			ID:       "uses_cloud_services",
			Category: CategoryTechnical,
			Text:     "Do you store or process PHI in cloud services (EHR, file storage, backup, messaging)?",
			Options: []Option{
				{Value: "yes", Label: "Yes", RiskScore: 0},
				{Value: "no", Label: "No", RiskScore: 0},
			},
		},
		{
			ID:       "cloud_baa",
			Category: CategoryTechnical,
			Text:     "Do you have a signed BAA with every cloud provider that stores or processes PHI?",
			Options:  yesPartialNo("All providers", "Some providers", "No cloud BAAs"),
			SeverityWeight: 5,
			SkipIf:   &SkipCondition{QuestionID: "uses_cloud_services", Answer: "no"},
		},
		{
			ID:       "cloud_access_config",
			Category: CategoryTechnical,
			Text:     "Have you reviewed cloud sharing and access settings so PHI is not publicly reachable?",
			Options:  yesNo(5),
			SeverityWeight: 3,
			SkipIf:   &SkipCondition{QuestionID: "uses_cloud_services", Answer: "no"},
		},
		{
			ID:       "backups",
			Category: CategoryTechnical,
			Text:     "Is PHI backed up on a schedule, with backups encrypted and restores tested?",
			Options:  yesPartialNo("Scheduled, encrypted, restore-tested", "Backups exist but are untested or unencrypted", "No backups"),
			SeverityWeight: 4,
		},
		{
			ID:       "patching",
			Category: CategoryTechnical,
			Text:     "Are operating systems and applications on PHI systems kept up to date with security patches?",
			Options:  yesPartialNo("Patched automatically or on a schedule", "Patched irregularly", "Rarely or never patched"),
			SeverityWeight: 3,
		},
		{
			ID:       "antimalware",
			Category: CategoryTechnical,
			Text:     "Is anti-malware or endpoint protection deployed on all devices that access PHI?",
			Options:  yesNo(3),
		},
		{
			ID:       "firewall",
			Category: CategoryTechnical,
			Text:     "Is your network protected by a firewall, with Wi-Fi secured (WPA2/WPA3, separate guest network)?",
			Options:  yesPartialNo("Firewall and segmented Wi-Fi", "Firewall only", "Neither"),
			SeverityWeight: 2,
		},
		{
			ID:       "remote_access",
			Category: CategoryTechnical,
			Text:     "Is remote access to PHI systems limited to secure channels (VPN or equivalent)?",
			Options:  yesPartialNo("VPN or zero-trust access required", "Some remote access is unmanaged", "Open remote access"),
			SeverityWeight: 3,
		},
		{
			ID:       "integrity_controls",
			Category: CategoryTechnical,
			Text:     "Do you have controls to detect unauthorized alteration or destruction of PHI?",
			Options:  yesNo(2),
		},
	}
}

func yesNo(noRisk int) []Option {
	return []Option{
		{Value: "yes", Label: "Yes", RiskScore: 0},
		{Value: "no", Label: "No", RiskScore: noRisk},
	}
}

func yesPartialNo(yesLabel, partialLabel, noLabel string) []Option {
	return []Option{
		{Value: "yes", Label: yesLabel, RiskScore: 0},
		{Value: "partial", Label: partialLabel, RiskScore: 2},
		{Value: "no", Label: noLabel, RiskScore: 4},
	}
}
