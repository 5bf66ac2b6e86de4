package service

import (
	"bytes"
	"complipilot_backend/internal/config"
	"complipilot_backend/internal/model"
	"complipilot_backend/internal/repository"
	"complipilot_backend/internal/scoring"
	"complipilot_backend/internal/util"
	"complipilot_backend/pkg/monitoring"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gorm.io/gorm"
)

// DocGenClient talks to the external document generation service. The
// contract is a single render call: document type plus the raw answer map
// and organization evidence in, rendered policy text out.
type DocGenClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewDocGenClient(cfg *config.DocGenConfig) *DocGenClient {
	timeout := cfg.TimeoutSeconds
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &DocGenClient{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type renderRequest struct {
	DocumentType string                 `json:"documentType"`
	Answers      scoring.Answers        `json:"answers"`
	EvidenceData map[string]interface{} `json:"evidenceData"`
}

type renderResponse struct {
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
}

func (c *DocGenClient) Render(ctx context.Context, documentType string, answers scoring.Answers, evidence map[string]interface{}) ([]byte, string, error) {
	body, err := json.Marshal(renderRequest{
		DocumentType: documentType,
		Answers:      answers,
		EvidenceData: evidence,
	})
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/render", bytes.NewReader(body))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("document service returned status %d", resp.StatusCode)
	}

	var rendered renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&rendered); err != nil {
		return nil, "", err
	}
	contentType := rendered.ContentType
	if contentType == "" {
		contentType = util.MimeMarkdown
	}
	return []byte(rendered.Content), contentType, nil
}

type DocumentService struct {
	Repo       *repository.DocumentRepository
	OrgRepo    *repository.OrganizationRepository
	Assessment *AssessmentService
	OrgService *OrganizationService
	Storage    *StorageService
	Client     *DocGenClient
	catalog    []scoring.Question
}

func NewDocumentService(repo *repository.DocumentRepository, orgRepo *repository.OrganizationRepository, assessment *AssessmentService, orgService *OrganizationService, storage *StorageService, client *DocGenClient, catalog []scoring.Question) *DocumentService {
	return &DocumentService{
		Repo:       repo,
		OrgRepo:    orgRepo,
		Assessment: assessment,
		OrgService: orgService,
		Storage:    storage,
		Client:     client,
		catalog:    catalog,
	}
}

// Requirements derives the document checklist from the organization's raw
// answers. It works on partial answer sets too: the UI shows the checklist
// before scoring is done, and must not depend on it.
func (s *DocumentService) Requirements(orgID uint) ([]DocumentRequirement, error) {
	answers, err := s.Assessment.RawAnswers(orgID)
	if err != nil {
		return nil, err
	}
	applicable := scoring.ApplicableQuestions(s.catalog, answers)
	return DeriveDocumentRequirements(answers, applicable), nil
}

// Generate renders one policy document through the external service and
// stores the result. Re-generating a type replaces the stored content.
func (s *DocumentService) Generate(ctx context.Context, orgID uint, documentType string) (*model.GeneratedDocument, error) {
	rule := findRequirementRule(documentType)
	if rule == nil {
		return nil, util.ErrDocumentNotFound
	}

	org, err := s.OrgRepo.FindByID(orgID)
	if err != nil {
		return nil, err
	}

	answers, err := s.Assessment.RawAnswers(orgID)
	if err != nil {
		return nil, err
	}

	doc, err := s.Repo.FindByOrgAndType(orgID, documentType)
	if err == gorm.ErrRecordNotFound {
		doc = &model.GeneratedDocument{
			OrgID:        orgID,
			DocumentType: documentType,
			Title:        rule.Title,
			Status:       model.DocumentPending,
		}
		if err := s.Repo.Create(doc); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	evidence := map[string]interface{}{
		"organizationName": org.Name,
		"organizationType": org.Type,
		"employeeCount":    org.EmployeeCount,
		"state":            org.State,
		"ehrVendor":        org.EHRVendor,
	}

	content, contentType, err := s.Client.Render(ctx, documentType, answers, evidence)
	if err != nil {
		doc.Status = model.DocumentFailed
		_ = s.Repo.Update(doc)
		monitoring.DocumentsGenerated.WithLabelValues(model.DocumentFailed).Inc()
		return nil, err
	}

	key := fmt.Sprintf("org_%d/%s.md", orgID, documentType)
	url, err := s.Storage.Upload(ctx, key, bytes.NewReader(content), int64(len(content)), contentType)
	if err != nil {
		doc.Status = model.DocumentFailed
		_ = s.Repo.Update(doc)
		monitoring.DocumentsGenerated.WithLabelValues(model.DocumentFailed).Inc()
		return nil, err
	}

	now := time.Now()
	doc.Status = model.DocumentGenerated
	doc.StorageKey = key
	doc.URL = url
	doc.GeneratedAt = &now
	if err := s.Repo.Update(doc); err != nil {
		return nil, err
	}

	monitoring.DocumentsGenerated.WithLabelValues(model.DocumentGenerated).Inc()

	_ = s.OrgService.AdvanceOnboarding(orgID, model.StepDocuments)

	return doc, nil
}

func (s *DocumentService) List(orgID uint) ([]model.GeneratedDocument, error) {
	return s.Repo.ListByOrg(orgID)
}

// Download streams a generated document's stored content. The caller owns
// closing the reader.
func (s *DocumentService) Download(ctx context.Context, orgID, docID uint) (*model.GeneratedDocument, io.ReadCloser, error) {
	doc, err := s.Repo.FindByID(docID)
	if err != nil || doc.OrgID != orgID {
		return nil, nil, util.ErrDocumentNotFound
	}
	if doc.Status != model.DocumentGenerated {
		return nil, nil, util.ErrDocumentNotFound
	}

	reader, err := s.Storage.Fetch(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return doc, reader, nil
}

func findRequirementRule(documentType string) *requirementRule {
	for i := range requirementRules {
		if requirementRules[i].DocumentType == documentType {
			return &requirementRules[i]
		}
	}
	return nil
}
