package apperrors

import (
	"net/http"
)

// ErrInvalidStatus reports a refused status transition (409).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// --- Applications ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrMissingRequiredDocuments = New(
	CodeValidationFailed,
	"application",
	"Identification and income proof documents are required",
	http.StatusBadRequest,
)

// --- Claims ---

var ErrClaimNotFound = New(
	CodeNotFound,
	"claim",
	"Claim not found",
	http.StatusNotFound,
)

var ErrClaimDocumentsRequired = New(
	CodeValidationFailed,
	"claim",
	"At least one supporting document is required",
	http.StatusBadRequest,
)

var ErrReviewerMismatch = New(
	CodeForbidden,
	"claim",
	"reviewerId must be the authenticated admin",
	http.StatusForbidden,
)

var ErrInvalidClaimAmount = New(
	CodeValidationFailed,
	"claim",
	"Claim amount must be a positive decimal number",
	http.StatusBadRequest,
)

// --- Policies ---

var ErrPolicyNotFound = New(
	CodeNotFound,
	"policy",
	"Policy not found",
	http.StatusNotFound,
)

var ErrAdminNotFound = New(
	CodeNotFound,
	"admin",
	"Admin not found",
	http.StatusNotFound,
)

// --- Uploads & vault ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeUnsupportedFile,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

var ErrNoFiles = New(
	CodeValidationFailed,
	"upload",
	"No files provided",
	http.StatusBadRequest,
)

var ErrDocumentNotFound = New(
	CodeNotFound,
	"vault",
	"Document not found",
	http.StatusNotFound,
)

var ErrStorageFailure = New(
	CodeExternalServiceError,
	"upload",
	"File storage is unavailable",
	http.StatusInternalServerError,
)

// --- Accounts ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrUsernameTaken = New(
	CodeAlreadyExists,
	"auth",
	"Username already taken",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)
