package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/braider-booking/internal/httperr"
)

// uuidParam lê um parâmetro de rota; em caso de erro já respondeu 400.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Identificador inválido.")
		return uuid.Nil, false
	}
	return id, true
}

func parseUUID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, httperr.Newf(httperr.CodeValidation, "identificador inválido: %q", raw)
	}
	return id, nil
}

func badRequest(c *gin.Context) {
	httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos.")
}
