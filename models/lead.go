package models

import "time"

// LeadStatus is the pipeline stage a lead is in.
type LeadStatus string

const (
	StatusPending  LeadStatus = "pending"
	StatusWaiting  LeadStatus = "waiting"
	StatusApproved LeadStatus = "approved"
	StatusRejected LeadStatus = "rejected"
)

// Valid reports whether s is one of the four pipeline statuses.
func (s LeadStatus) Valid() bool {
	switch s {
	case StatusPending, StatusWaiting, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// LeadCategory is the kind of business a lead belongs to.
type LeadCategory string

const (
	CategoryRestaurant LeadCategory = "Restaurant"
	CategoryHotel      LeadCategory = "Hotel"
	CategoryShop       LeadCategory = "Shop"
	CategoryOffice     LeadCategory = "Office"
	CategoryFactory    LeadCategory = "Factory"
	CategoryOther      LeadCategory = "Other"
)

// Valid reports whether c is one of the known categories.
func (c LeadCategory) Valid() bool {
	switch c {
	case CategoryRestaurant, CategoryHotel, CategoryShop, CategoryOffice, CategoryFactory, CategoryOther:
		return true
	}
	return false
}

// Lead is a prospective business contact tracked through the sales pipeline.
// Price is set only while the lead is approved; it is null in every other
// status.
type Lead struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	BusinessName string       `json:"business_name" gorm:"not null"`
	Phone        string       `json:"phone" gorm:"not null"`
	Category     LeadCategory `json:"category" gorm:"not null;default:Other"`
	City         string       `json:"city"`
	Notes        string       `json:"notes"`
	Status       LeadStatus   `json:"status" gorm:"not null;default:pending;index"`
	Price        *float64     `json:"price"`
	CreatedAt    time.Time    `json:"created_at"`
}
