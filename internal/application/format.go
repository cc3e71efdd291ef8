package application

import "strings"

// User facing messages produced by FormatErrorMessage.
const (
	MsgPermissionDenied = "You do not have permission to perform this action"
	MsgNetworkError     = "Network error. Please check your connection and try again"
	MsgUnexpectedError  = "An unexpected error occurred"
)

// FormatErrorMessage translates any error into a displayable string. It never
// panics and never returns an empty string.
func FormatErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpectedError
	}

	if tagged, ok := AsError(err); ok {
		switch tagged.Kind {
		case KindValidation:
			return fallbackMessage(tagged.Message)
		case KindSchedulingConflict:
			return "Scheduling conflict: " + tagged.Message
		case KindPermissionDenied:
			return MsgPermissionDenied
		case KindNetwork:
			return MsgNetworkError
		default:
			return fallbackMessage(tagged.Message)
		}
	}

	return fallbackMessage(safeErrorString(err))
}

func fallbackMessage(message string) string {
	if strings.TrimSpace(message) == "" {
		return MsgUnexpectedError
	}
	return message
}

// safeErrorString guards against foreign error values whose Error method panics,
// such as typed nil pointers with value receivers.
func safeErrorString(err error) (message string) {
	defer func() {
		if recover() != nil {
			message = ""
		}
	}()
	return err.Error()
}
