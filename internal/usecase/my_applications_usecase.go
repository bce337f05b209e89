package usecase

import (
	"context"
	"log"

	"jobmatch/internal/domain/application"
	"jobmatch/internal/state"
)

type MyApplicationsAPI interface {
	MyApplications(ctx context.Context) ([]application.Application, error)
	MessagesAPI
}

type MyApplications struct {
	gate
	api MyApplicationsAPI

	life state.Lifecycle
	apps *state.Resource[[]application.Application]
	conv *Conversation
}

func NewMyApplications(api MyApplicationsAPI, sess SessionStore, logger *log.Logger) *MyApplications {
	m := &MyApplications{gate: gate{sess: sess, logger: logger}, api: api}
	m.apps = state.NewResource[[]application.Application](&m.life)
	m.conv = NewConversation(api, sess, &m.life, false, logger)
	return m
}

func (m *MyApplications) Mount(ctx context.Context) error {
	if err := m.require(); err != nil {
		return err
	}
	m.life.Mount()
	return m.Refresh(ctx)
}

func (m *MyApplications) Unmount() {
	m.conv.Close()
	m.life.Unmount()
}

func (m *MyApplications) Refresh(ctx context.Context) error {
	_, err := load(ctx, m.gate, m.apps, m.api.MyApplications)
	return err
}

func (m *MyApplications) Applications() []application.Application {
	return valueOr(m.apps, nil)
}

func (m *MyApplications) Conversation() *Conversation {
	return m.conv
}

func (m *MyApplications) Error() string {
	return Describe(m.apps.Err(), "Failed to load applications")
}
