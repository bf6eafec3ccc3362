package shared

type ApiErrorType string

const (
	ApiErrorTypeUnauthorized ApiErrorType = "unauthorized"
	ApiErrorTypeNotFound     ApiErrorType = "not_found"

	ApiErrorTypeOther ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`
}

func (e *ApiError) Error() string {
	return e.Msg
}
