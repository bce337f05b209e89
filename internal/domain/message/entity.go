package message

import "time"

type Participant struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (p Participant) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Email
}

type Thread struct {
	ApplicationID int64       `json:"application_id"`
	OtherUser     Participant `json:"other_user"`
	JobTitle      string      `json:"job_title"`
	LastMessage   string      `json:"last_message"`
	UnreadCount   int         `json:"unread_count"`
}

func (t Thread) DisplayName() string {
	return t.OtherUser.DisplayName()
}

type Message struct {
	ID         int64       `json:"id"`
	Text       string      `json:"text"`
	SenderInfo Participant `json:"sender_info"`
	Timestamp  time.Time   `json:"timestamp"`
}

// FindThread returns the thread addressed by an application id.
func FindThread(threads []Thread, applicationID int64) (Thread, bool) {
	for _, t := range threads {
		if t.ApplicationID == applicationID {
			return t, true
		}
	}
	return Thread{}, false
}

func TotalUnread(threads []Thread) int {
	n := 0
	for _, t := range threads {
		if t.UnreadCount > 0 {
			n += t.UnreadCount
		}
	}
	return n
}
