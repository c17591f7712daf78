package httpError

import "net/http"

// Stable error codes the rest of the system branches on. Messages are
// user-facing and overwritten per call site; codes never are.
const (
	CodeBadRequest          = "BAD_REQUEST"
	CodeNotFound            = "NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeValidationError     = "VALIDATION_ERROR"
	CodeInvalidState        = "INVALID_STATE_TRANSITION"
	CodeDuplicateRating     = "DUPLICATE_RATING"
	CodeAlreadySubscribed   = "ALREADY_SUBSCRIBED"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

type CommonError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HttpStatus int    `json:"-"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{Code: CodeBadRequest, Message: "bad request", HttpStatus: http.StatusBadRequest}
}

func NewNotFound() *CommonError {
	return &CommonError{Code: CodeNotFound, Message: "not found", HttpStatus: http.StatusNotFound}
}

func NewUnauthorized() *CommonError {
	return &CommonError{Code: CodeUnauthorized, Message: "unauthorized", HttpStatus: http.StatusForbidden}
}

func NewValidationError() *CommonError {
	return &CommonError{Code: CodeValidationError, Message: "validation error", HttpStatus: http.StatusUnprocessableEntity}
}

func NewInvalidState() *CommonError {
	return &CommonError{Code: CodeInvalidState, Message: "invalid state transition", HttpStatus: http.StatusConflict}
}

func NewDuplicateRating() *CommonError {
	return &CommonError{Code: CodeDuplicateRating, Message: "rating already exists", HttpStatus: http.StatusConflict}
}

func NewAlreadySubscribed() *CommonError {
	return &CommonError{Code: CodeAlreadySubscribed, Message: "subscription already active", HttpStatus: http.StatusConflict}
}

func NewInternalServerError() *CommonError {
	return &CommonError{Code: CodeInternalServerError, Message: "internal server error", HttpStatus: http.StatusInternalServerError}
}
