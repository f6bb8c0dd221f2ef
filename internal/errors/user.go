package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Signing
	// ===================
	{
		err: ErrUnknownAlgorithm,
		info: ErrorInfo{
			Message: "Unknown signing format.",
			Action:  "Use --format blake3 or --format ed25519.",
		},
	},
	{
		err: ErrInvalidKeySize,
		info: ErrorInfo{
			Message: "The key file does not contain a key of the expected size for this format.",
			Action:  "Check that --format matches the key, or generate a new one with 'rcli text generate'.",
		},
	},
	{
		err: ErrMalformedSignature,
		info: ErrorInfo{
			Message: "The signature is not valid URL-safe base64 for this format.",
			Action:  "Pass the exact text printed by 'rcli text sign'.",
		},
	},
	{
		err: ErrInvalidSignature,
		info: ErrorInfo{
			Message: "The signature does not match the message and key.",
		},
	},
	{
		err: ErrKeyExists,
		info: ErrorInfo{
			Message: "A key file already exists at the output location.",
			Action:  "Choose another directory with -o or pass --force to overwrite it.",
		},
	},

	// ===================
	// Input & output
	// ===================
	{
		err: ErrSourceUnavailable,
		info: ErrorInfo{
			Message: "Could not read the input.",
			Action:  "Check that the file exists and is readable, or use '-' for standard input.",
		},
	},
	{
		err: ErrInputNotFound,
		info: ErrorInfo{
			Message: "The input file does not exist.",
			Action:  "Check the path, or use '-' to read from standard input.",
		},
	},
	{
		err: ErrOutputNotDirectory,
		info: ErrorInfo{
			Message: "The output location must be an existing directory.",
			Action:  "Create the directory first or pass a different --output.",
		},
	},
	{
		err: ErrInvalidBase64,
		info: ErrorInfo{
			Message: "The input is not valid base64 for the selected format.",
			Action:  "Check --format (standard or urlsafe) matches how the data was encoded.",
		},
	},
	{
		err: ErrInvalidCSV,
		info: ErrorInfo{
			Message: "The CSV input could not be parsed.",
			Action:  "Check the --delimiter and that every row has the same number of fields.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConflictingFlags,
		info: ErrorInfo{
			Message: "The specified flags cannot be used together.",
			Action:  "Check the command help for valid flag combinations.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid --output value.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrUnsupportedOutputFormat,
		info: ErrorInfo{
			Message: "Unsupported conversion format.",
			Action:  "Use json, yaml or toml.",
		},
	},
	{
		err: ErrInvalidBase64Format,
		info: ErrorInfo{
			Message: "Unknown base64 format.",
			Action:  "Use --format standard or --format urlsafe.",
		},
	},
	{
		err: ErrInvalidDelimiter,
		info: ErrorInfo{
			Message: "The CSV delimiter must be a single character.",
		},
	},
	{
		err: ErrNoCharacterClasses,
		info: ErrorInfo{
			Message: "At least one character class must be enabled.",
			Action:  "Enable one of --uppercase, --lowercase, --number or --symbol.",
		},
	},
	{
		err: ErrInvalidPasswordLength,
		info: ErrorInfo{
			Message: "Password length is out of range.",
			Action:  "Choose a --length between 4 and 128.",
		},
	},
	{
		err: ErrNonInteractiveMode,
		info: ErrorInfo{
			Message: "Confirmation is required but the terminal is not interactive.",
			Action:  "Re-run with --force.",
		},
	},
	{
		err: ErrInvalidArgument,
		info: ErrorInfo{
			Message: "An invalid argument was provided.",
			Action:  "Check the command help for valid arguments.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries a direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
//
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that have no clear action, the action string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
