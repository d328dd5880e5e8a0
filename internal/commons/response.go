package commons

// Response is the envelope every endpoint returns. Exactly one of Data and
// Errors is populated, matching the Success flag.
type Response[T any] struct {
	Success    bool     `json:"success"`
	StatusCode int      `json:"statusCode"`
	Data       *T       `json:"data,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](statusCode int, data T) Response[T] {
	return Response[T]{
		Success:    true,
		StatusCode: statusCode,
		Data:       &data,
	}
}

func ErrorResponse[T any](statusCode int, errors ...string) Response[T] {
	return Response[T]{
		Success:    false,
		StatusCode: statusCode,
		Errors:     errors,
	}
}
