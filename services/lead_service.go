package services

import (
	"fmt"

	"github.com/amitxthedev/Zenox-Dev-Apis/domain"
	"github.com/amitxthedev/Zenox-Dev-Apis/models"
	"github.com/amitxthedev/Zenox-Dev-Apis/repositories"
)

// CreateLeadInput carries the fields accepted when a lead is created.
// Status may be set to pending, waiting or rejected; approved is not
// reachable at creation because a price can only be attached through a
// status change.
type CreateLeadInput struct {
	BusinessName string              `json:"business_name"`
	Phone        string              `json:"phone"`
	Category     models.LeadCategory `json:"category"`
	City         string              `json:"city"`
	Notes        string              `json:"notes"`
	Status       models.LeadStatus   `json:"status"`
}

// UpdateLeadInput carries the editable descriptive fields. Status and price
// are deliberately absent; they only move through ChangeStatus.
type UpdateLeadInput struct {
	BusinessName string              `json:"business_name"`
	Phone        string              `json:"phone"`
	Category     models.LeadCategory `json:"category"`
	City         string              `json:"city"`
	Notes        string              `json:"notes"`
}

// LeadService owns the lead lifecycle. Every write goes through it so the
// price invariant — price is set exactly when the status is approved — holds
// no matter what the caller sends.
type LeadService struct {
	store repositories.LeadStore
}

func NewLeadService(store repositories.LeadStore) *LeadService {
	return &LeadService{store: store}
}

// Create stores a new lead. Price is always null at creation.
func (s *LeadService) Create(input CreateLeadInput) (*models.Lead, error) {
	if input.BusinessName == "" || input.Phone == "" {
		return nil, fmt.Errorf("%w: business name and phone are required", domain.ErrValidation)
	}

	category := input.Category
	if category == "" {
		category = models.CategoryOther
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, input.Status)
	}
	if status == models.StatusApproved {
		return nil, fmt.Errorf("%w: a lead cannot be created as approved; approve it with a price instead", domain.ErrValidation)
	}

	lead := &models.Lead{
		BusinessName: input.BusinessName,
		Phone:        input.Phone,
		Category:     category,
		City:         input.City,
		Notes:        input.Notes,
		Status:       status,
		Price:        nil,
	}
	if err := s.store.Create(lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// UpdateFields edits the descriptive fields of a lead and never touches its
// status or price.
func (s *LeadService) UpdateFields(id uint, input UpdateLeadInput) (*models.Lead, error) {
	if input.BusinessName == "" || input.Phone == "" {
		return nil, fmt.Errorf("%w: business name and phone are required", domain.ErrValidation)
	}

	category := input.Category
	if category == "" {
		category = models.CategoryOther
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
	}

	lead, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}

	lead.BusinessName = input.BusinessName
	lead.Phone = input.Phone
	lead.Category = category
	lead.City = input.City
	lead.Notes = input.Notes

	if err := s.store.Update(lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// ChangeStatus moves a lead to newStatus. Any status is reachable from any
// other. Approving requires a positive price; leaving approved (or moving
// between the other statuses) forces the price back to null regardless of
// what the caller passed.
func (s *LeadService) ChangeStatus(id uint, newStatus models.LeadStatus, price *float64) (*models.Lead, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, newStatus)
	}

	if newStatus == models.StatusApproved {
		if price == nil {
			return nil, fmt.Errorf("%w: price is required for approved leads", domain.ErrValidation)
		}
		if *price <= 0 {
			return nil, fmt.Errorf("%w: price must be greater than zero", domain.ErrValidation)
		}
	}

	lead, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}

	lead.Status = newStatus
	if newStatus == models.StatusApproved {
		p := *price
		lead.Price = &p
	} else {
		lead.Price = nil
	}

	if err := s.store.Update(lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// Get returns a single lead by id.
func (s *LeadService) Get(id uint) (*models.Lead, error) {
	return s.store.GetByID(id)
}

// Delete permanently removes a lead. Deleting a missing id is an error.
func (s *LeadService) Delete(id uint) error {
	return s.store.Delete(id)
}

// List returns the leads matching filter, newest first.
func (s *LeadService) List(filter repositories.LeadFilter) ([]models.Lead, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, filter.Status)
	}
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, filter.Category)
	}
	return s.store.List(filter)
}
