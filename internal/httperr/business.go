package httperr

import (
	"errors"
	"fmt"
)

// ===============================
// Códigos de erro de negócio
// ===============================

const (
	CodeValidation        = "ValidationError"
	CodeInvalidRange      = "InvalidRange"
	CodeOverlap           = "Overlap"
	CodeSlotBooked        = "SlotBooked"
	CodeNotFound          = "NotFound"
	CodeSlotUnavailable   = "SlotUnavailable"
	CodeInvalidTransition = "InvalidTransition"
	CodeStorageFailure    = "StorageFailure"
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e BusinessError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	case e.Message != "":
		return e.Code + ": " + e.Message
	case e.Err != nil:
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func New(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func Newf(code, format string, args ...any) error {
	return BusinessError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Storage embrulha falhas do banco que não são regra de negócio.
// Erros de negócio já classificados passam intactos.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	var be BusinessError
	if errors.As(err, &be) {
		return err
	}
	return BusinessError{Code: CodeStorageFailure, Message: "persistência indisponível", Err: err}
}

func asBusiness(err error, target *BusinessError) bool {
	return errors.As(err, target)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf devolve o código do erro, ou "" para erros não classificados.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
