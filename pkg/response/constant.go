package response

const (
	MessageSuccess = "Success"

	InternalServerErrorCode = 500
	BadGatewayErrorCode     = 502

	DefaultErrorMessage         = "Something went wrong"
	DefaultUpstreamErrorMessage = "Backend connection error, please try again later"
)
