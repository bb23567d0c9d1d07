package handler

import "github.com/msomdec/social-media-api/internal/domain"

// AccountDTO is the JSON representation of an account. Password is read from
// requests and never written back.
type AccountDTO struct {
	ID       int64  `json:"account_id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

func (d AccountDTO) toDomain() domain.Account {
	return domain.Account{ID: d.ID, Username: d.Username, Password: d.Password}
}

func toAccountDTO(a *domain.Account) AccountDTO {
	return AccountDTO{ID: a.ID, Username: a.Username}
}

// MessageDTO is the JSON representation of a message.
type MessageDTO struct {
	ID            int64  `json:"message_id"`
	PostedBy      int64  `json:"posted_by"`
	Text          string `json:"message_text"`
	PostedAtEpoch int64  `json:"time_posted_epoch"`
}

func (d MessageDTO) toDomain() domain.Message {
	return domain.Message{ID: d.ID, PostedBy: d.PostedBy, Text: d.Text, PostedAtEpoch: d.PostedAtEpoch}
}

func toMessageDTO(m *domain.Message) MessageDTO {
	return MessageDTO{ID: m.ID, PostedBy: m.PostedBy, Text: m.Text, PostedAtEpoch: m.PostedAtEpoch}
}

func toMessageDTOs(msgs []domain.Message) []MessageDTO {
	dtos := make([]MessageDTO, len(msgs))
	for i := range msgs {
		dtos[i] = toMessageDTO(&msgs[i])
	}
	return dtos
}
