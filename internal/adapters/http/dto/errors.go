// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/brandgen/internal/domain"
	"github.com/jsamuelsen/brandgen/internal/platform/logging"
)

// ErrorResponse is the standard error envelope for all error responses.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details maps request fields to what is wrong with them.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	// ErrorCodeNotFound indicates the requested resource was not found.
	ErrorCodeNotFound = "NOT_FOUND"

	// ErrorCodeValidation indicates request validation failed, including
	// enumeration keys missing from the catalog.
	ErrorCodeValidation = "VALIDATION_ERROR"

	// ErrorCodeBadRequest indicates the request was malformed.
	ErrorCodeBadRequest = "BAD_REQUEST"

	// ErrorCodePayloadTooLarge indicates the body exceeded the server limit.
	ErrorCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"

	// ErrorCodeMethodNotAllowed indicates the route exists for another method.
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"

	// ErrorCodeInternal indicates an internal server error.
	ErrorCodeInternal = "INTERNAL_ERROR"

	// ErrorCodeTimeout indicates generation did not finish before the deadline.
	ErrorCodeTimeout = "TIMEOUT"

	// ErrorCodeClientClosed indicates the caller went away mid-request.
	// Nothing is written back for it.
	ErrorCodeClientClosed = "CLIENT_CLOSED_REQUEST"
)

// StatusClientClosedRequest is the nginx convention for a request the client
// abandoned. It only ever reaches logs and metrics.
const StatusClientClosedRequest = 499

// internalMessage hides internals from callers of failed requests.
const internalMessage = "an internal error occurred"

// traceIDKey is the gin context key consulted when no span is active.
const traceIDKey = "trace_id"

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	resp := NewErrorResponse(code, message)
	resp.Error.Details = details

	return resp
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrorCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrorCodeClientClosed:
		return StatusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

// MapError maps an error from binding, validation or the brand service to an
// error response. Unknown errors become a generic internal error.
func MapError(err error) *ErrorResponse {
	var (
		maxBytesErr    *http.MaxBytesError
		optionErr      *domain.UnrecognizedOptionError
		domainValidErr *domain.ValidationError
	)

	switch {
	case errors.As(err, &maxBytesErr):
		return NewErrorResponse(ErrorCodePayloadTooLarge, "request body too large")

	case errors.Is(err, ErrBinding):
		return NewErrorResponseWithDetails(ErrorCodeBadRequest, "malformed request", BindingErrors(err))

	case errors.Is(err, ErrValidation):
		return NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", ValidationErrors(err))

	case errors.As(err, &optionErr):
		return NewErrorResponseWithDetails(ErrorCodeValidation, optionErr.Error(), map[string]string{
			optionErr.Option: "unrecognized value " + optionErr.Value,
		})

	case errors.As(err, &domainValidErr):
		resp := NewErrorResponse(ErrorCodeValidation, domainValidErr.Error())
		if domainValidErr.Field != "" {
			resp.Error.Details = map[string]string{domainValidErr.Field: domainValidErr.Message}
		}

		return resp

	case domain.IsValidation(err):
		return NewErrorResponse(ErrorCodeValidation, err.Error())

	case domain.IsNotFound(err):
		return NewErrorResponse(ErrorCodeNotFound, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return NewErrorResponse(ErrorCodeTimeout, "generation did not finish before the request deadline")

	case errors.Is(err, context.Canceled):
		return NewErrorResponse(ErrorCodeClientClosed, "client closed request")

	default:
		return NewErrorResponse(ErrorCodeInternal, internalMessage)
	}
}

// HandleError writes the error response for err, tagged with the trace ID.
// Internal errors are logged with their cause. A client abort gets a bare 499
// and no body, since nobody is left to read it.
func HandleError(c *gin.Context, err error) {
	resp := MapError(err).WithTraceID(GetTraceID(c))
	status := HTTPStatusFromCode(resp.Error.Code)

	if resp.Error.Code == ErrorCodeClientClosed {
		logging.FromContext(c.Request.Context()).InfoContext(c.Request.Context(), "client closed request",
			slog.String("path", c.Request.URL.Path),
			slog.String("trace_id", resp.TraceID),
		)
		c.AbortWithStatus(status)

		return
	}

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
			slog.Any("error", err),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.AbortWithStatusJSON(status, resp)
}

// AbortWithCode aborts the request with a fixed error code and message.
func AbortWithCode(c *gin.Context, code, message string) {
	resp := NewErrorResponse(code, message).WithTraceID(GetTraceID(c))
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), resp)
}

// GetTraceID returns the trace ID of the active span, falling back to a
// trace_id string stored on the gin context.
func GetTraceID(c *gin.Context) string {
	if c.Request != nil {
		if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
			return sc.TraceID().String()
		}
	}

	if v, ok := c.Get(traceIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}

	return ""
}
