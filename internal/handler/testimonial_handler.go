package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "foodcart/internal/errors"
	"foodcart/internal/service"
)

// TestimonialHandler handles testimonial endpoints.
type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

// NewTestimonialHandler creates a new testimonial handler.
func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// TestimonialRequest represents a public testimonial submission. Approval
// state cannot be set by the caller.
type TestimonialRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Content      string `json:"content" validate:"required"`
	Rating       int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// List godoc
// @Summary List approved testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {array} model.Testimonial
// @Router /testimonials [get]
func (h *TestimonialHandler) List(c echo.Context) error {
	testimonials, err := h.testimonialService.ListApproved(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testimonials)
}

// ListAll godoc
// @Summary List all testimonials, approved or not
// @Tags testimonials
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Testimonial
// @Failure 403 {object} errors.ErrorResponse
// @Router /testimonials/all [get]
func (h *TestimonialHandler) ListAll(c echo.Context) error {
	testimonials, err := h.testimonialService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testimonials)
}

// Create godoc
// @Summary Submit a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param request body TestimonialRequest true "Testimonial data"
// @Success 201 {object} map[string]interface{}
// @Router /testimonials [post]
func (h *TestimonialHandler) Create(c echo.Context) error {
	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	testimonial, err := h.testimonialService.Create(c.Request().Context(), service.CreateTestimonial{
		CustomerName: req.CustomerName,
		Location:     req.Location,
		Content:      req.Content,
		Rating:       req.Rating,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":     "Thank you for your review! It will be visible after approval.",
		"testimonial": testimonial,
	})
}

// Approve godoc
// @Summary Approve a testimonial
// @Tags testimonials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} model.Testimonial
// @Failure 404 {object} errors.ErrorResponse
// @Router /testimonials/{id}/approve [put]
func (h *TestimonialHandler) Approve(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrTestimonialNotFound
	}

	testimonial, err := h.testimonialService.Approve(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testimonial)
}

// Delete godoc
// @Summary Delete a testimonial
// @Tags testimonials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrTestimonialNotFound
	}

	if err := h.testimonialService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Testimonial removed"})
}
