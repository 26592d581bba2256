package news

import "errors"

var (
	// ErrUnavailable — новости получить не удалось.
	// Ему соответствует любая *ServiceError.
	ErrUnavailable = errors.New("news unavailable")
	// ErrUnknownImpl — запрошена неизвестная реализация Service.
	ErrUnknownImpl = errors.New("unknown news service implementation")
)

// ServiceError — доменная ошибка Service.
//
// Хранит исходную причину только для диагностики (логов). Unwrap намеренно
// не реализован: errors.As/errors.Is не достают транспортный тип через
// ServiceError, и вызывающий не может на него завязаться.
type ServiceError struct {
	// Msg — человекочитаемое описание.
	Msg   string
	cause error
}

// NewServiceError создаёт доменную ошибку с причиной cause.
func NewServiceError(msg string, cause error) *ServiceError {
	return &ServiceError{Msg: msg, cause: cause}
}

// Error возвращает сообщение без деталей причины.
func (e *ServiceError) Error() string {
	return e.Msg
}

// Cause возвращает исходную ошибку. Только для логирования.
func (e *ServiceError) Cause() error {
	return e.cause
}

// Is позволяет проверять ошибку через errors.Is(err, ErrUnavailable).
func (e *ServiceError) Is(target error) bool {
	return target == ErrUnavailable
}

// IsDomain сообщает, является ли err доменной ошибкой Service.
// Голый ErrUnavailable без *ServiceError доменной ошибкой не считается:
// реализация обязана вернуть *ServiceError.
func IsDomain(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}
