package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// StatusFor mapeia o código de negócio para o status HTTP.
func StatusFor(code string) int {
	switch code {
	case CodeValidation, CodeInvalidRange:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeSlotUnavailable, CodeOverlap, CodeSlotBooked, CodeInvalidTransition:
		return http.StatusConflict
	case CodeStorageFailure:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

var defaultMessages = map[string]string{
	CodeValidation:        "Dados inválidos.",
	CodeInvalidRange:      "Intervalo de horário inválido.",
	CodeOverlap:           "Horário sobreposto a outro slot.",
	CodeSlotBooked:        "Slot já reservado.",
	CodeNotFound:          "Registro não encontrado.",
	CodeSlotUnavailable:   "Horário indisponível. Escolha outro horário.",
	CodeInvalidTransition: "Transição de status inválida.",
	CodeStorageFailure:    "Serviço temporariamente indisponível.",
}

// FromError escreve a resposta JSON de qualquer erro vindo dos use cases.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if !asBusiness(err, &be) {
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	message := be.Message
	if message == "" || be.Code == CodeStorageFailure {
		message = defaultMessages[be.Code]
	}
	Write(c, StatusFor(be.Code), be.Code, message)
}
