package pkg

// AppError is the error envelope handlers return to HTTP clients.
//
// Code is a stable machine-readable identifier; Message is safe to show to
// end users. Err keeps the underlying cause for logs and is never serialized.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int

	// ActualStatus carries the authoritative resource state when a request
	// was rejected because of a state precondition, so clients can
	// resynchronize instead of guessing.
	ActualStatus string
}

// HTTPError is the JSON body produced by ToHTTPError.
type HTTPError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	ActualStatus string `json:"actual_status,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithActualStatus attaches the current authoritative state to the envelope.
func (e *AppError) WithActualStatus(status string) *AppError {
	e.ActualStatus = status
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, ActualStatus: e.ActualStatus}
}
