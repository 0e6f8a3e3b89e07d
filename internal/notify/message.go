package notify

import (
	"fmt"

	"github.com/BruksfildServices01/braider-booking/internal/events"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

var subjects = map[events.Type]string{
	events.BookingCreated:   "Pedido de reserva recebido",
	events.BookingConfirmed: "Reserva confirmada",
	events.BookingCancelled: "Reserva cancelada",
	events.BookingRejected:  "Reserva recusada",
}

var leads = map[events.Type]string{
	events.BookingCreated:   "Recebemos seu pedido de reserva. Ele aguarda a confirmação da profissional.",
	events.BookingConfirmed: "Sua reserva foi confirmada.",
	events.BookingCancelled: "Sua reserva foi cancelada e o horário foi liberado.",
	events.BookingRejected:  "Infelizmente sua reserva foi recusada.",
}

// Render monta a mensagem em texto simples para o cliente.
func Render(ev events.Event) (Message, error) {
	subject, ok := subjects[ev.Type]
	if !ok {
		return Message{}, fmt.Errorf("unknown event type %q", ev.Type)
	}
	if ev.ClientEmail == "" {
		return Message{}, fmt.Errorf("event %s without recipient", ev.BookingID)
	}

	body := fmt.Sprintf(
		"%s\n\nData: %s\nHorário: %s\nReserva: %s\n",
		leads[ev.Type],
		ev.SlotDate,
		ev.SlotTime,
		ev.BookingID,
	)

	return Message{
		To:      ev.ClientEmail,
		Subject: subject,
		Body:    body,
	}, nil
}
