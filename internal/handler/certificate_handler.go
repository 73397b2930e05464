package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "foodcart/internal/errors"
	"foodcart/internal/model"
	"foodcart/internal/service"
)

// CertificateHandler handles certificate endpoints.
type CertificateHandler struct {
	certificateService service.CertificateService
}

// NewCertificateHandler creates a new certificate handler.
func NewCertificateHandler(certificateService service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certificateService: certificateService}
}

// CertificateRequest represents a certificate create request.
type CertificateRequest struct {
	Name               string                `json:"name" validate:"required"`
	Type               model.CertificateType `json:"type" validate:"required,oneof=gst iec udyam other"`
	RegistrationNumber string                `json:"registrationNumber" validate:"required"`
	ImageURL           string                `json:"imageUrl" validate:"required"`
	DownloadURL        string                `json:"downloadUrl"`
}

// CertificateUpdateRequest represents a partial certificate update.
type CertificateUpdateRequest struct {
	Name               *string                `json:"name"`
	Type               *model.CertificateType `json:"type" validate:"omitempty,oneof=gst iec udyam other"`
	RegistrationNumber *string                `json:"registrationNumber"`
	ImageURL           *string                `json:"imageUrl"`
	DownloadURL        *string                `json:"downloadUrl"`
}

// List godoc
// @Summary List all certificates
// @Tags certificates
// @Produce json
// @Success 200 {array} model.Certificate
// @Router /certificates [get]
func (h *CertificateHandler) List(c echo.Context) error {
	certificates, err := h.certificateService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, certificates)
}

// Create godoc
// @Summary Create a certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CertificateRequest true "Certificate data"
// @Success 201 {object} model.Certificate
// @Failure 403 {object} errors.ErrorResponse
// @Router /certificates [post]
func (h *CertificateHandler) Create(c echo.Context) error {
	var req CertificateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	certificate := &model.Certificate{
		Name:               req.Name,
		Type:               req.Type,
		RegistrationNumber: req.RegistrationNumber,
		ImageURL:           req.ImageURL,
		DownloadURL:        req.DownloadURL,
	}
	if err := h.certificateService.Create(c.Request().Context(), certificate); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, certificate)
}

// Update godoc
// @Summary Update a certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Param request body CertificateUpdateRequest true "Fields to update"
// @Success 200 {object} model.Certificate
// @Failure 404 {object} errors.ErrorResponse
// @Router /certificates/{id} [put]
func (h *CertificateHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrCertificateNotFound
	}

	var req CertificateUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	certificate, err := h.certificateService.Update(c.Request().Context(), id, service.CertificateUpdate{
		Name:               req.Name,
		Type:               req.Type,
		RegistrationNumber: req.RegistrationNumber,
		ImageURL:           req.ImageURL,
		DownloadURL:        req.DownloadURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, certificate)
}

// Delete godoc
// @Summary Delete a certificate
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /certificates/{id} [delete]
func (h *CertificateHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ErrCertificateNotFound
	}

	if err := h.certificateService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Certificate removed"})
}
