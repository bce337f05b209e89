package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"jobmatch/internal/domain/message"
	"jobmatch/internal/poll"
	"jobmatch/internal/state"
)

type InboxAPI interface {
	Threads(ctx context.Context) ([]message.Thread, error)
	UnreadCount(ctx context.Context) (int, error)
	MessagesAPI
}

// Inbox is the messaging view. While mounted it polls the thread list and
// the unread count, and polls the open thread's messages; the message poller
// restarts whenever another thread is opened.
type Inbox struct {
	gate
	api InboxAPI

	life    state.Lifecycle
	threads *state.Resource[[]message.Thread]
	unread  *state.Resource[int]
	conv    *Conversation

	threadPoll  *poll.Poller
	unreadPoll  *poll.Poller
	messagePoll *poll.Poller

	mu         sync.Mutex
	ctx        context.Context
	autoSelect int64
	lost       chan struct{}
	lostOnce   *sync.Once
}

func NewInbox(api InboxAPI, sess SessionStore, interval time.Duration, logger *log.Logger) *Inbox {
	i := &Inbox{gate: gate{sess: sess, logger: logger}, api: api}
	i.threads = state.NewResource[[]message.Thread](&i.life)
	i.unread = state.NewResource[int](&i.life)
	i.conv = NewConversation(api, sess, &i.life, true, logger)

	i.threadPoll = poll.New("threads", interval, i.pollThreads, logger)
	i.unreadPoll = poll.New("unread", interval, i.pollUnread, logger)
	i.messagePoll = poll.New("messages", interval, i.pollMessages, logger)
	return i
}

// Mount starts the thread and unread pollers. When autoSelect is non-zero
// the thread for that application is opened as soon as it shows up in the
// thread list.
func (i *Inbox) Mount(ctx context.Context, autoSelect int64) error {
	if err := i.require(); err != nil {
		return err
	}
	i.life.Mount()
	ctx, cancel := context.WithCancel(ctx)

	i.mu.Lock()
	i.ctx = ctx
	i.autoSelect = autoSelect
	i.lost = make(chan struct{})
	i.lostOnce = &sync.Once{}
	i.mu.Unlock()

	i.threadPoll.BindTo(&i.life)
	i.unreadPoll.BindTo(&i.life)
	i.messagePoll.BindTo(&i.life)
	// runs first on unmount, so no poller can be restarted afterwards
	i.life.OnUnmount(cancel)

	i.threadPoll.Start(ctx)
	i.unreadPoll.Start(ctx)
	return nil
}

// Unmount stops every poller and waits for them to exit.
func (i *Inbox) Unmount() {
	i.life.Unmount()
	i.conv.Close()
}

// SessionLost is closed when a poll found the session rejected. The owner
// should unmount and send the user to login.
func (i *Inbox) SessionLost() <-chan struct{} {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.lost
}

// Select opens a thread and restarts the message poller for it.
func (i *Inbox) Select(applicationID int64) {
	i.mu.Lock()
	ctx := i.ctx
	i.autoSelect = 0
	i.mu.Unlock()
	if ctx == nil || !i.life.Mounted() {
		return
	}

	i.conv.Select(applicationID)
	i.messagePoll.Start(ctx)
}

func (i *Inbox) Send(ctx context.Context, text string) error {
	err := i.conv.Send(ctx, text)
	i.checkLost(err)
	return err
}

func (i *Inbox) Threads() []message.Thread {
	return valueOr(i.threads, nil)
}

func (i *Inbox) UnreadCount() int {
	return valueOr(i.unread, 0)
}

func (i *Inbox) Selected() (message.Thread, bool) {
	id, ok := i.conv.Selected()
	if !ok {
		return message.Thread{}, false
	}
	if t, found := message.FindThread(i.Threads(), id); found {
		return t, true
	}
	return message.Thread{ApplicationID: id}, true
}

func (i *Inbox) Messages() []message.Message {
	return i.conv.Messages()
}

func (i *Inbox) LoadingThreads() bool {
	return i.threads.Loading()
}

func (i *Inbox) LoadingMessages() bool {
	return i.conv.Loading()
}

func (i *Inbox) Error() string {
	return i.conv.Error()
}

func (i *Inbox) pollThreads(ctx context.Context) {
	committed, err := load(ctx, i.gate, i.threads, i.api.Threads)
	if i.checkLost(err) {
		return
	}
	if err != nil {
		i.logf("[Inbox] threads error: %v", err)
		return
	}
	if !committed {
		return
	}

	i.mu.Lock()
	want := i.autoSelect
	i.mu.Unlock()
	if want == 0 {
		return
	}
	if _, ok := message.FindThread(i.Threads(), want); ok {
		i.Select(want)
	}
}

func (i *Inbox) pollUnread(ctx context.Context) {
	_, err := load(ctx, i.gate, i.unread, i.api.UnreadCount)
	if !i.checkLost(err) && err != nil {
		i.logf("[Inbox] unread count error: %v", err)
	}
}

func (i *Inbox) pollMessages(ctx context.Context) {
	err := i.conv.Refresh(ctx)
	if !i.checkLost(err) && err != nil {
		i.logf("[Inbox] messages error: %v", err)
	}
}

func (i *Inbox) checkLost(err error) bool {
	if err != ErrLoginRequired {
		return false
	}
	i.mu.Lock()
	ch, once := i.lost, i.lostOnce
	i.mu.Unlock()
	if once != nil {
		once.Do(func() { close(ch) })
	}
	return true
}
