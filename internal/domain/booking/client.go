package booking

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

// ClientInfo são os dados de contato informados na reserva.
type ClientInfo struct {
	Name    string `validate:"required,max=100"`
	Email   string `validate:"required,email,max=100"`
	Phone   string `validate:"required,min=6,max=20"`
	Address string `validate:"max=255"`
}

var validate = validator.New()

// Normalize remove espaços das bordas.
func (c ClientInfo) Normalize() ClientInfo {
	return ClientInfo{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:   strings.TrimSpace(c.Phone),
		Address: strings.TrimSpace(c.Address),
	}
}

// ValidateClient checa os campos exigidos pelo tipo de atendimento.
func ValidateClient(c ClientInfo, kind models.AppointmentType) error {
	if !kind.Valid() {
		return httperr.Newf(httperr.CodeValidation, "tipo de atendimento inválido: %q", kind)
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return httperr.Newf(httperr.CodeValidation, "campo %s inválido (%s)", strings.ToLower(fe.Field()), fe.Tag())
		}
		return httperr.New(httperr.CodeValidation, err.Error())
	}

	if kind == models.AtHome && c.Address == "" {
		return httperr.New(httperr.CodeValidation, "endereço obrigatório para atendimento em domicílio")
	}

	return nil
}
