package reconciler

import (
	"context"
	"sync"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	PublishFunc func(ctx context.Context, ev domain.ChangeEvent) (int, error)

	calls struct {
		Publish []struct {
			Ctx context.Context
			Ev  domain.ChangeEvent
		}
	}
	lockPublish sync.RWMutex
}

func (mock *notifierMock) Publish(ctx context.Context, ev domain.ChangeEvent) (int, error) {
	if mock.PublishFunc == nil {
		panic("notifierMock.PublishFunc: method is nil but notifier.Publish was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.ChangeEvent
	}{Ctx: ctx, Ev: ev}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, ev)
}

func (mock *notifierMock) PublishCalls() []struct {
	Ctx context.Context
	Ev  domain.ChangeEvent
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
