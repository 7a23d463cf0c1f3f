package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/amitxthedev/Zenox-Dev-Apis/domain"
	"github.com/amitxthedev/Zenox-Dev-Apis/models"
	"github.com/amitxthedev/Zenox-Dev-Apis/repositories"
	"github.com/amitxthedev/Zenox-Dev-Apis/services"
)

// LeadHandler binds the lead lifecycle and analytics services to HTTP.
type LeadHandler struct {
	Leads     *services.LeadService
	Analytics *services.AnalyticsService
}

func NewLeadHandler(leads *services.LeadService, analytics *services.AnalyticsService) *LeadHandler {
	return &LeadHandler{Leads: leads, Analytics: analytics}
}

// List handles GET /api/leads?status&category&search
func (h *LeadHandler) List(c *fiber.Ctx) error {
	filter := repositories.LeadFilter{
		Status:   models.LeadStatus(c.Query("status")),
		Category: models.LeadCategory(c.Query("category")),
		Search:   c.Query("search"),
	}

	leads, err := h.Leads.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(leads)
}

// Get handles GET /api/leads/:id
func (h *LeadHandler) Get(c *fiber.Ctx) error {
	id, err := leadID(c)
	if err != nil {
		return respondError(c, err)
	}

	lead, err := h.Leads.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lead)
}

// Create handles POST /api/leads
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var input services.CreateLeadInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Message: "Failed to parse request body"})
	}

	lead, err := h.Leads.Create(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(lead)
}

// Update handles PUT /api/leads/:id
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	id, err := leadID(c)
	if err != nil {
		return respondError(c, err)
	}

	var input services.UpdateLeadInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Message: "Failed to parse request body"})
	}

	lead, err := h.Leads.UpdateFields(id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lead)
}

type statusRequest struct {
	Status models.LeadStatus `json:"status"`
	Price  *float64          `json:"price"`
}

// UpdateStatus handles PUT /api/leads/:id/status
func (h *LeadHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := leadID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Message: "Failed to parse request body"})
	}

	lead, err := h.Leads.ChangeStatus(id, req.Status, req.Price)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lead)
}

// Delete handles DELETE /api/leads/:id
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	id, err := leadID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Leads.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Lead deleted successfully"})
}

// Stats handles GET /api/leads/stats
func (h *LeadHandler) Stats(c *fiber.Ctx) error {
	summary, err := h.Analytics.GetSummary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// ChartData handles GET /api/leads/chart-data
func (h *LeadHandler) ChartData(c *fiber.Ctx) error {
	breakdown, err := h.Analytics.GetBreakdown()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(breakdown)
}

func leadID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid lead id", domain.ErrValidation)
	}
	return uint(id), nil
}
