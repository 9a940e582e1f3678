package contracts

import (
	"time"

	"github.com/ronaldorededigital/confin/internal/domain/ticket"
)

type TicketCreateRequest struct {
	Subject string `json:"subject" binding:"required,max=255"`
}

type TicketResponse struct {
	Id        string     `json:"id"`
	UserName  string     `json:"userName"`
	Subject   string     `json:"subject"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func ToTicketResponse(t *ticket.SupportTicket) TicketResponse {
	return TicketResponse{
		Id:        t.Id.String(),
		UserName:  t.UserName,
		Subject:   t.Subject,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func ToTicketResponses(tickets []*ticket.SupportTicket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToTicketResponse(t))
	}
	return out
}
