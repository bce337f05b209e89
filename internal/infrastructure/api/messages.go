package api

import (
	"context"
	"fmt"
	"net/http"

	"jobmatch/internal/domain/message"
)

func (c *Client) Messages(ctx context.Context, applicationID int64) ([]message.Message, error) {
	var out []message.Message
	if err := c.do(ctx, call{method: http.MethodGet, path: messagesPath(applicationID), auth: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type sendPayload struct {
	Text string `json:"text"`
}

func (c *Client) SendMessage(ctx context.Context, applicationID int64, text string) (message.Message, error) {
	var out message.Message
	err := c.do(ctx, call{method: http.MethodPost, path: messagesPath(applicationID), json: sendPayload{Text: text}, auth: true}, &out)
	return out, err
}

func (c *Client) MarkRead(ctx context.Context, applicationID int64) error {
	return c.do(ctx, call{method: http.MethodPost, path: fmt.Sprintf("/applications/%d/mark-read/", applicationID), json: struct{}{}, auth: true}, nil)
}

func (c *Client) Threads(ctx context.Context) ([]message.Thread, error) {
	var out []message.Thread
	if err := c.do(ctx, call{method: http.MethodGet, path: "/messages/threads/", auth: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type unreadPayload struct {
	UnreadCount int `json:"unread_count"`
}

func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var out unreadPayload
	if err := c.do(ctx, call{method: http.MethodGet, path: "/messages/unread-count/", auth: true}, &out); err != nil {
		return 0, err
	}
	return out.UnreadCount, nil
}

func messagesPath(applicationID int64) string {
	return fmt.Sprintf("/applications/%d/messages/", applicationID)
}
