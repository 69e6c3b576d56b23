package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
	AuthInvalidApiKey          ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound  ErrorCode = "CUSTOMER_001"
	CustomerInvalidID ErrorCode = "CUSTOMER_002"
)

// Period/bucket error codes (PERIOD_*)
const (
	PeriodMonthNotFound    ErrorCode = "PERIOD_001"
	PeriodWeekNotFound     ErrorCode = "PERIOD_002"
	PeriodDayNotFound      ErrorCode = "PERIOD_003"
	PeriodInvalidMonth     ErrorCode = "PERIOD_004"
	PeriodInvalidWeek      ErrorCode = "PERIOD_005"
	PeriodNotMaterialized  ErrorCode = "PERIOD_006"
	PeriodUnbucketedRecord ErrorCode = "PERIOD_007"
)

// Sync error codes (SYNC_*)
const (
	SyncUpstreamUnavailable ErrorCode = "SYNC_001"
	SyncAlreadyRunning      ErrorCode = "SYNC_002"
	SyncFailed              ErrorCode = "SYNC_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthInvalidApiKey:          "Invalid or missing API key",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Customer errors
	CustomerNotFound:  "Customer not found",
	CustomerInvalidID: "Invalid customer ID format",

	// Period errors
	PeriodMonthNotFound:    "Month bucket not found",
	PeriodWeekNotFound:     "Week bucket not found",
	PeriodDayNotFound:      "Day bucket not found",
	PeriodInvalidMonth:     "Month must be between 1 and 12",
	PeriodInvalidWeek:      "Week number is out of range for this month",
	PeriodNotMaterialized:  "Parent bucket has not been expanded yet",
	PeriodUnbucketedRecord: "A record could not be assigned to any week span",

	// Sync errors
	SyncUpstreamUnavailable: "ERP gateway is unreachable",
	SyncAlreadyRunning:      "A synchronization run is already in progress",
	SyncFailed:              "Synchronization run failed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
