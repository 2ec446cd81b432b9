package response

const (
	// MessageSuccess is the message returned on success.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned for internal errors.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error code for internal errors.
	InternalServerErrorCode = 500

	// DateFormat is the wire format for dates.
	DateFormat = "2006-01-02"
)
