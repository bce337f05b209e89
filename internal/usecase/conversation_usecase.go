package usecase

import (
	"context"
	"log"
	"strings"

	"jobmatch/internal/domain/message"
	"jobmatch/internal/state"
)

type MessagesAPI interface {
	Messages(ctx context.Context, applicationID int64) ([]message.Message, error)
	SendMessage(ctx context.Context, applicationID int64, text string) (message.Message, error)
	MarkRead(ctx context.Context, applicationID int64) error
}

// Conversation is the message list of one application at a time. Switching
// applications discards responses for the previous one.
type Conversation struct {
	gate
	api      MessagesAPI
	markRead bool

	sel  state.Selection[int64]
	msgs *state.Resource[[]message.Message]

	notice notice
}

// NewConversation binds a conversation to the lifecycle of its view. With
// markRead set, every committed fetch also marks the thread read.
func NewConversation(api MessagesAPI, sess SessionStore, life *state.Lifecycle, markRead bool, logger *log.Logger) *Conversation {
	return &Conversation{
		gate:     gate{sess: sess, logger: logger},
		api:      api,
		markRead: markRead,
		msgs:     state.NewResource[[]message.Message](life),
	}
}

// Open switches to an application and fetches its messages.
func (c *Conversation) Open(ctx context.Context, applicationID int64) error {
	c.Select(applicationID)
	return c.Refresh(ctx)
}

// Select switches without fetching.
func (c *Conversation) Select(applicationID int64) {
	c.sel.Select(applicationID)
	c.msgs.Reset()
	c.notice.clear()
}

func (c *Conversation) Close() {
	c.sel.Clear()
	c.msgs.Reset()
	c.notice.clear()
}

// Refresh refetches the selected application's messages.
func (c *Conversation) Refresh(ctx context.Context) error {
	t, ok := c.sel.Ticket()
	if !ok {
		return nil
	}
	return c.fetch(ctx, t)
}

func (c *Conversation) fetch(ctx context.Context, t state.Ticket[int64]) error {
	committed, err := load(ctx, c.gate, c.msgs, func(ctx context.Context) ([]message.Message, error) {
		return c.api.Messages(ctx, t.Key)
	}, func() bool { return c.sel.Valid(t) })
	if !committed {
		// superseded by another selection; only a lost session matters
		if err == ErrLoginRequired {
			return err
		}
		return nil
	}
	if err != nil {
		c.notice.set(err, "Failed to load messages")
		return err
	}
	if c.markRead {
		if err := c.api.MarkRead(ctx, t.Key); err != nil {
			if err = c.settle(ctx, err); err == ErrLoginRequired {
				return err
			}
			c.logf("[Messages] mark read error application_id=%d err=%v", t.Key, err)
		}
	}
	return nil
}

// Send posts a message then refetches the thread, since ordering and
// timestamps are assigned by the server.
func (c *Conversation) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return invalid("Message cannot be empty")
	}
	t, ok := c.sel.Ticket()
	if !ok {
		return invalid("No conversation selected")
	}
	if err := c.require(); err != nil {
		return err
	}

	if _, err := c.api.SendMessage(ctx, t.Key, text); err != nil {
		err = c.settle(ctx, err)
		c.notice.set(err, "Failed to send message")
		return err
	}
	c.notice.clear()
	return c.fetch(ctx, t)
}

func (c *Conversation) Selected() (int64, bool) {
	return c.sel.Current()
}

func (c *Conversation) Messages() []message.Message {
	return valueOr(c.msgs, nil)
}

func (c *Conversation) Loading() bool {
	return c.msgs.Loading()
}

func (c *Conversation) Error() string {
	return c.notice.String()
}
