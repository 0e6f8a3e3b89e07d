package catalog

import (
	"strings"

	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Review aplica a decisão da revisão da plataforma.
func Review(p *models.Provider, d Decision) error {
	switch d {
	case DecisionApprove:
		p.Status = models.ProviderApproved
	case DecisionReject:
		p.Status = models.ProviderRejected
	default:
		return httperr.Newf(httperr.CodeValidation, "decisão inválida: %q", d)
	}
	return nil
}

func ValidateService(name string, price float64, durationMin int) error {
	if strings.TrimSpace(name) == "" {
		return httperr.New(httperr.CodeValidation, "nome do serviço obrigatório")
	}
	if price < 0 {
		return httperr.New(httperr.CodeValidation, "preço não pode ser negativo")
	}
	if durationMin <= 0 {
		return httperr.New(httperr.CodeValidation, "duração deve ser positiva")
	}
	return nil
}

// RequireVisible esconde providers não aprovados ou desativados.
func RequireVisible(p *models.Provider) error {
	if p == nil || !p.Visible() {
		return httperr.New(httperr.CodeNotFound, "provider não encontrado")
	}
	return nil
}
