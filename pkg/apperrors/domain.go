package apperrors

import "net/http"

// Domain errors and factories for the marketplace. Static conditions get
// predeclared variables; conditions that need an underlying error or a
// per-call message get factories.

// --- Factories ---

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"The provided credentials are incorrect.",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidRole = New(
	CodeValidationFailed,
	"auth",
	"Invalid role selected",
	http.StatusBadRequest,
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

// --- Catalog ---

var ErrProductNotFound = New(
	CodeNotFound,
	"catalog",
	"Product not found",
	http.StatusNotFound,
)

var ErrCategoryNotFound = New(
	CodeNotFound,
	"catalog",
	"Category not found",
	http.StatusNotFound,
)

var ErrVendorNotFound = New(
	CodeNotFound,
	"catalog",
	"Vendor not found",
	http.StatusNotFound,
)

// --- Vendor self-service ---

// ErrProductNotOwned: the product exists but belongs to another vendor. Kept
// distinct from ErrProductNotFound so ownership failures surface as 403.
var ErrProductNotOwned = New(
	CodeForbidden,
	"vendor",
	"You do not have permission to manage this product",
	http.StatusForbidden,
)

var ErrVendorProfileNotFound = New(
	CodeNotFound,
	"vendor",
	"Vendor profile not found",
	http.StatusNotFound,
)

var ErrSKUAlreadyExists = New(
	CodeAlreadyExists,
	"vendor",
	"SKU is already in use by another product",
	http.StatusConflict,
)

var ErrTooManyImages = New(
	CodeLimitExceeded,
	"vendor",
	"A product can have at most 5 images",
	http.StatusBadRequest,
)

var ErrImageTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"Image size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidImageType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
