package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput         = "INVALID_INPUT"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeNotFound             = "NOT_FOUND"
	CodeConflict             = "CONFLICT"
	CodeInvalidState         = "INVALID_STATE"
	CodePrerequisiteMissing  = "PREREQUISITE_MISSING"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeTooManyRequests      = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeStorageFailure     = "STORAGE_FAILURE"
	CodeSchedulingFailure  = "SCHEDULING_FAILURE"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
