package response

const (
	MessageSuccess = "Success"

	DateFormat = "2006-01-02"

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong"
)
