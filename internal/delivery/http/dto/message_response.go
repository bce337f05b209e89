package dto

import (
	"time"

	"jobmatch/internal/usecase/marketplace"
)

type ParticipantResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MessageResponse struct {
	ID         int64               `json:"id"`
	Text       string              `json:"text"`
	SenderInfo ParticipantResponse `json:"sender_info"`
	Timestamp  time.Time           `json:"timestamp"`
}

type ThreadResponse struct {
	ApplicationID int64               `json:"application_id"`
	OtherUser     ParticipantResponse `json:"other_user"`
	JobTitle      string              `json:"job_title"`
	LastMessage   string              `json:"last_message"`
	UnreadCount   int                 `json:"unread_count"`
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

func participant(p marketplace.Party) ParticipantResponse {
	return ParticipantResponse{ID: p.ID, Name: p.Name, Email: p.Email}
}

func NewMessageResponse(v marketplace.MessageView) MessageResponse {
	return MessageResponse{
		ID:         v.Message.ID,
		Text:       v.Message.Text,
		SenderInfo: participant(v.Sender),
		Timestamp:  v.Message.Timestamp,
	}
}

func NewMessageListResponse(views []marketplace.MessageView) []MessageResponse {
	out := make([]MessageResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewMessageResponse(v))
	}
	return out
}

func NewThreadListResponse(views []marketplace.ThreadView) []ThreadResponse {
	out := make([]ThreadResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ThreadResponse{
			ApplicationID: v.ApplicationID,
			OtherUser:     participant(v.Other),
			JobTitle:      v.JobTitle,
			LastMessage:   v.LastMessage,
			UnreadCount:   v.UnreadCount,
		})
	}
	return out
}
