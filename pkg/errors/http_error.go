package errors

import "net/http"

// HttpError несёт HTTP-код и сообщение для пользователя, исходная
// ошибка остаётся внутри для логов.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Details: details,
	}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, ErrBadRequest, nil)
}

func NewNotFoundError(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message, ErrNotFound, nil)
}

func NewConflictError(message string) *HttpError {
	return NewHttpError(http.StatusConflict, message, ErrConflict, nil)
}

func NewUnauthorizedError(message string) *HttpError {
	return NewHttpError(http.StatusUnauthorized, message, ErrUnauthorized, nil)
}
