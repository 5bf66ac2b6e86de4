package service

import (
	"complipilot_backend/internal/model"
	"complipilot_backend/internal/repository"
	"encoding/json"
)

// ContentService serves marketing-site content. Public reads return only
// published/active rows; the admin surface sees everything.
type ContentService struct {
	Repo *repository.ContentRepository
}

func NewContentService(repo *repository.ContentRepository) *ContentService {
	return &ContentService{Repo: repo}
}

func (s *ContentService) PublishedTestimonials() ([]model.Testimonial, error) {
	return s.Repo.ListPublishedTestimonials()
}

func (s *ContentService) AllTestimonials() ([]model.Testimonial, error) {
	return s.Repo.ListAllTestimonials()
}

type TestimonialRequest struct {
	AuthorName  string `json:"authorName" binding:"required"`
	AuthorTitle string `json:"authorTitle"`
	Quote       string `json:"quote" binding:"required"`
	Order       int    `json:"order"`
	Published   bool   `json:"published"`
}

func (s *ContentService) CreateTestimonial(req TestimonialRequest) (*model.Testimonial, error) {
	t := &model.Testimonial{
		AuthorName:  req.AuthorName,
		AuthorTitle: req.AuthorTitle,
		Quote:       req.Quote,
		Order:       req.Order,
		Published:   req.Published,
	}
	if err := s.Repo.CreateTestimonial(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *ContentService) UpdateTestimonial(id uint, req TestimonialRequest) (*model.Testimonial, error) {
	t, err := s.Repo.FindTestimonialByID(id)
	if err != nil {
		return nil, err
	}
	t.AuthorName = req.AuthorName
	t.AuthorTitle = req.AuthorTitle
	t.Quote = req.Quote
	t.Order = req.Order
	t.Published = req.Published
	if err := s.Repo.UpdateTestimonial(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *ContentService) DeleteTestimonial(id uint) error {
	return s.Repo.DeleteTestimonial(id)
}

func (s *ContentService) ActivePlans() ([]model.PricingPlan, error) {
	return s.Repo.ListActivePlans()
}

func (s *ContentService) AllPlans() ([]model.PricingPlan, error) {
	return s.Repo.ListAllPlans()
}

type PricingPlanRequest struct {
	Code       string   `json:"code" binding:"required"`
	Name       string   `json:"name" binding:"required"`
	PriceCents int      `json:"priceCents"`
	Interval   string   `json:"interval" binding:"omitempty,oneof=month year"`
	Features   []string `json:"features"`
	Order      int      `json:"order"`
	Active     bool     `json:"active"`
}

func (s *ContentService) CreatePlan(req PricingPlanRequest) (*model.PricingPlan, error) {
	features, err := json.Marshal(req.Features)
	if err != nil {
		return nil, err
	}
	p := &model.PricingPlan{
		Code:       req.Code,
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Interval:   req.Interval,
		Features:   features,
		Order:      req.Order,
		Active:     req.Active,
	}
	if p.Interval == "" {
		p.Interval = "month"
	}
	if err := s.Repo.CreatePlan(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ContentService) UpdatePlan(id uint, req PricingPlanRequest) (*model.PricingPlan, error) {
	p, err := s.Repo.FindPlanByID(id)
	if err != nil {
		return nil, err
	}
	features, err := json.Marshal(req.Features)
	if err != nil {
		return nil, err
	}
	p.Code = req.Code
	p.Name = req.Name
	p.PriceCents = req.PriceCents
	if req.Interval != "" {
		p.Interval = req.Interval
	}
	p.Features = features
	p.Order = req.Order
	p.Active = req.Active
	if err := s.Repo.UpdatePlan(p); err != nil {
		return nil, err
	}
	return p, nil
}
