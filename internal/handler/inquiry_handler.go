package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "foodcart/internal/errors"
	"foodcart/internal/model"
	"foodcart/internal/service"
)

// InquiryHandler handles customer inquiry endpoints.
type InquiryHandler struct {
	inquiryService service.InquiryService
}

// NewInquiryHandler creates a new inquiry handler.
func NewInquiryHandler(inquiryService service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// InquiryRequest represents a public inquiry submission.
type InquiryRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Requirement string `json:"requirement" validate:"required"`
	ProductID   string `json:"productId"`
}

// InquiryStatusRequest represents a status change.
type InquiryStatusRequest struct {
	Status model.InquiryStatus `json:"status" validate:"required,oneof=pending contacted resolved"`
}

// Create godoc
// @Summary Submit a new inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body InquiryRequest true "Inquiry data"
// @Success 201 {object} map[string]interface{}
// @Router /inquiries [post]
func (h *InquiryHandler) Create(c echo.Context) error {
	var req InquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := service.CreateInquiry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Requirement: req.Requirement,
	}
	if req.ProductID != "" {
		if productID, err := uuid.Parse(req.ProductID); err == nil {
			in.ProductID = &productID
		}
	}

	inquiry, err := h.inquiryService.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Inquiry submitted successfully! We will contact you soon.",
		"inquiry": inquiry,
	})
}

// List godoc
// @Summary List all inquiries
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Inquiry
// @Failure 403 {object} errors.ErrorResponse
// @Router /inquiries [get]
func (h *InquiryHandler) List(c echo.Context) error {
	inquiries, err := h.inquiryService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inquiries)
}

// Get godoc
// @Summary Get a single inquiry
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Success 200 {object} model.Inquiry
// @Failure 404 {object} errors.ErrorResponse
// @Router /inquiries/{id} [get]
func (h *InquiryHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrInquiryNotFound
	}

	inquiry, err := h.inquiryService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inquiry)
}

// UpdateStatus godoc
// @Summary Update inquiry status
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Param request body InquiryStatusRequest true "New status"
// @Success 200 {object} model.Inquiry
// @Failure 404 {object} errors.ErrorResponse
// @Router /inquiries/{id} [put]
func (h *InquiryHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrInquiryNotFound
	}

	var req InquiryStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inquiry, err := h.inquiryService.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inquiry)
}

// Delete godoc
// @Summary Delete an inquiry
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrInquiryNotFound
	}

	if err := h.inquiryService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Inquiry removed"})
}
