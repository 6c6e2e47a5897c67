package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"error"`
	HTTPStatus int    `json:"-"`
	Details    any    `json:"details,omitempty"`
	Note       string `json:"note,omitempty"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy of e carrying details for the client.
func (e *AppError) WithDetails(details any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithNote returns a copy of e carrying a user-facing note.
func (e *AppError) WithNote(note string) *AppError {
	cp := *e
	cp.Note = note
	return &cp
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// NoteDebitedNotSettled is attached when a wallet was debited but a later step failed.
const NoteDebitedNotSettled = "Amount has been deducted from your wallet but transfer failed. Please contact support."

// ---- Validation (VAL) ----

// Validation returns a generic 400 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrMissingFields() *AppError {
	return New("VAL_002", "Missing required fields", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_003", "Amount must be greater than 0", http.StatusBadRequest)
}

func ErrInvalidDates(message string) *AppError {
	return New("VAL_004", message, http.StatusBadRequest)
}

func ErrBodyTooLarge() *AppError {
	return New("VAL_005", "Request body too large", http.StatusRequestEntityTooLarge)
}

// ---- Not found (NF) ----

func ErrNotFound(entity string) *AppError {
	return New("NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrNoWallets() *AppError {
	return New("NF_002", "No wallets found", http.StatusNotFound)
}

// ---- Payment (PAY) ----

func ErrInsufficientBalance(current, required any) *AppError {
	return New("PAY_001", "Insufficient balance", http.StatusBadRequest).
		WithDetails(map[string]any{
			"currentBalance": current,
			"requiredAmount": required,
		})
}

func ErrPaymentFailed(err error) *AppError {
	return Wrap("PAY_002", "Payment failed", http.StatusInternalServerError, err)
}

// ---- Upstream (UPS) ----

// Upstream wraps a failed call to a remote service. status is the HTTP status
// returned to the client.
func Upstream(message string, status int, err error) *AppError {
	return Wrap("UPS_001", message, status, err)
}

// ---- Configuration (CFG) ----

func ErrConfiguration(message string) *AppError {
	return New("CFG_001", message, http.StatusInternalServerError)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrRegistrationRejected(message string) *AppError {
	return New("AUTH_002", message, http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrStoreError(err error) *AppError {
	return Wrap("SYS_001", "Internal storage error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
