package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"foodcart/internal/auth"
	"foodcart/internal/config"
	apperrors "foodcart/internal/errors"
	"foodcart/internal/handler"
	"foodcart/internal/repository"
)

// Handlers bundles the resource handlers the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	Product     *handler.ProductHandler
	Inquiry     *handler.InquiryHandler
	Certificate *handler.CertificateHandler
	Testimonial *handler.TestimonialHandler
	Settings    *handler.SettingsHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	logger *zap.Logger,
	tokens *auth.TokenService,
	users repository.UserRepository,
	h Handlers,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(corsWithAllowlist(NewAllowlist(cfg.Origins())))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = newHTTPErrorHandler(cfg.IsProduction(), logger)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "Server is running",
		})
	})

	protect := authRequired(tokens, users)

	// Auth routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/auth/profile", h.Auth.Profile, protect)

	// Product routes: public reads, admin mutations
	products := api.Group("/products")
	products.GET("", h.Product.List)
	products.GET("/:id", h.Product.Get)
	products.POST("", h.Product.Create, protect, adminOnly)
	products.PUT("/:id", h.Product.Update, protect, adminOnly)
	products.DELETE("/:id", h.Product.Delete, protect, adminOnly)

	// Inquiry routes: public submission, admin management
	inquiries := api.Group("/inquiries")
	inquiries.POST("", h.Inquiry.Create)
	inquiries.GET("", h.Inquiry.List, protect, adminOnly)
	inquiries.GET("/:id", h.Inquiry.Get, protect, adminOnly)
	inquiries.PUT("/:id", h.Inquiry.UpdateStatus, protect, adminOnly)
	inquiries.DELETE("/:id", h.Inquiry.Delete, protect, adminOnly)

	// Certificate routes: public reads, admin mutations
	certificates := api.Group("/certificates")
	certificates.GET("", h.Certificate.List)
	certificates.POST("", h.Certificate.Create, protect, adminOnly)
	certificates.PUT("/:id", h.Certificate.Update, protect, adminOnly)
	certificates.DELETE("/:id", h.Certificate.Delete, protect, adminOnly)

	// Testimonial routes: public submission and approved listing
	testimonials := api.Group("/testimonials")
	testimonials.GET("", h.Testimonial.List)
	testimonials.POST("", h.Testimonial.Create)
	testimonials.GET("/all", h.Testimonial.ListAll, protect, adminOnly)
	testimonials.PUT("/:id/approve", h.Testimonial.Approve, protect, adminOnly)
	testimonials.DELETE("/:id", h.Testimonial.Delete, protect, adminOnly)

	// Settings routes: public map read, admin upserts
	settings := api.Group("/settings")
	settings.GET("", h.Settings.GetAll)
	settings.PUT("", h.Settings.Update, protect, adminOnly)
	settings.POST("/init", h.Settings.Init, protect, adminOnly)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// newHTTPErrorHandler renders every error as the uniform {message} envelope.
// Domain errors keep their message and mapped status; everything else answers
// 500 with the detail included only outside production.
func newHTTPErrorHandler(isProduction bool, logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal Server Error"
		detail := ""

		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		case apperrors.IsDomain(err):
			status = apperrors.StatusFor(err)
			message = err.Error()
		default:
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
			)
			if !isProduction {
				detail = err.Error()
			}
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, apperrors.ErrorResponse{Message: message, Detail: detail})
		}
		if writeErr != nil {
			logger.Error("write error response", zap.Error(writeErr))
		}
	}
}
