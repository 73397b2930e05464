package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserExists is returned when registering an email that is already taken.
	ErrUserExists = errors.New("User already exists")
	// ErrInvalidCredentials is returned on login failure. The same error covers
	// an unknown email and a wrong password so responses cannot be used for
	// account enumeration.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrNotAuthorized is returned when a request lacks a valid session token.
	ErrNotAuthorized = errors.New("Not authorized, token failed")
	// ErrNotAdmin is returned when a valid user lacks the admin role.
	ErrNotAdmin = errors.New("Not authorized as admin")

	// ErrProductNotFound is returned when a product id has no matching record.
	ErrProductNotFound = errors.New("Product not found")
	// ErrInquiryNotFound is returned when an inquiry id has no matching record.
	ErrInquiryNotFound = errors.New("Inquiry not found")
	// ErrCertificateNotFound is returned when a certificate id has no matching record.
	ErrCertificateNotFound = errors.New("Certificate not found")
	// ErrTestimonialNotFound is returned when a testimonial id has no matching record.
	ErrTestimonialNotFound = errors.New("Testimonial not found")
)

// ErrorResponse is the uniform error envelope of the API.
type ErrorResponse struct {
	Message string `json:"message"`
	// Detail carries the underlying error outside production.
	Detail string `json:"error,omitempty"`
}

// StatusFor maps domain errors to HTTP status codes. Unknown errors are
// reported as internal server errors with the detail suppressed by the
// router's error handler in production.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrUserExists):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrNotAuthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrInquiryNotFound),
		errors.Is(err, ErrCertificateNotFound),
		errors.Is(err, ErrTestimonialNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsDomain reports whether err is one of the sentinel errors above, i.e. its
// message is safe to return to the client as-is.
func IsDomain(err error) bool {
	return StatusFor(err) != http.StatusInternalServerError
}
