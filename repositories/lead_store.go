package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/amitxthedev/Zenox-Dev-Apis/domain"
	"github.com/amitxthedev/Zenox-Dev-Apis/models"
)

// LeadFilter narrows a listing. Zero values mean "no constraint"; Search is a
// case-insensitive substring match against business name or phone.
type LeadFilter struct {
	Status   models.LeadStatus
	Category models.LeadCategory
	Search   string
}

// LeadStore wraps the external lead table. List always returns the full
// matching set, newest first.
type LeadStore interface {
	List(filter LeadFilter) ([]models.Lead, error)
	GetByID(id uint) (*models.Lead, error)
	Create(lead *models.Lead) error
	Update(lead *models.Lead) error
	Delete(id uint) error
}

// GormLeadStore is the Postgres-backed LeadStore.
type GormLeadStore struct {
	db *gorm.DB
}

func NewGormLeadStore(db *gorm.DB) *GormLeadStore {
	return &GormLeadStore{db: db}
}

func (s *GormLeadStore) List(filter LeadFilter) ([]models.Lead, error) {
	q := s.db.Model(&models.Lead{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(business_name) LIKE ? OR LOWER(phone) LIKE ?", pattern, pattern)
	}

	var leads []models.Lead
	if err := q.Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("%w: list leads: %v", domain.ErrDependency, err)
	}
	return leads, nil
}

func (s *GormLeadStore) GetByID(id uint) (*models.Lead, error) {
	var lead models.Lead
	if err := s.db.First(&lead, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: lead", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: get lead: %v", domain.ErrDependency, err)
	}
	return &lead, nil
}

func (s *GormLeadStore) Create(lead *models.Lead) error {
	if err := s.db.Create(lead).Error; err != nil {
		return fmt.Errorf("%w: create lead: %v", domain.ErrDependency, err)
	}
	return nil
}

// Update writes every column of the lead, including null prices. Save alone
// would skip zero-valued fields through the struct path, so the price column
// is written explicitly.
func (s *GormLeadStore) Update(lead *models.Lead) error {
	err := s.db.Model(&models.Lead{}).Where("id = ?", lead.ID).
		Select("business_name", "phone", "category", "city", "notes", "status", "price").
		Updates(map[string]interface{}{
			"business_name": lead.BusinessName,
			"phone":         lead.Phone,
			"category":      lead.Category,
			"city":          lead.City,
			"notes":         lead.Notes,
			"status":        lead.Status,
			"price":         lead.Price,
		}).Error
	if err != nil {
		return fmt.Errorf("%w: update lead: %v", domain.ErrDependency, err)
	}
	return nil
}

func (s *GormLeadStore) Delete(id uint) error {
	result := s.db.Delete(&models.Lead{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: delete lead: %v", domain.ErrDependency, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: lead", domain.ErrNotFound)
	}
	return nil
}
