package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// Date errors
	ErrInvalidDate  = "INVALID_DATE"
	ErrInvalidRange = "INVALID_RANGE"
	ErrNoLastPick   = "NO_LAST_PICK"

	// File errors
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnStateNotSaved  = "STATE_NOT_SAVED"
	WarnInitialOutside = "INITIAL_OUTSIDE_RANGE"
)
