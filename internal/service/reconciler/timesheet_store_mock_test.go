package reconciler

import (
	"context"
	"sync"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

var _ timesheetStore = &timesheetStoreMock{}

type timesheetStoreMock struct {
	UpdateTimesheetAggregateFunc func(ctx context.Context, documentID string, upd domain.AggregateUpdate) error

	calls struct {
		UpdateTimesheetAggregate []struct {
			Ctx        context.Context
			DocumentID string
			Upd        domain.AggregateUpdate
		}
	}
	lockUpdateTimesheetAggregate sync.RWMutex
}

func (mock *timesheetStoreMock) UpdateTimesheetAggregate(ctx context.Context, documentID string, upd domain.AggregateUpdate) error {
	if mock.UpdateTimesheetAggregateFunc == nil {
		panic("timesheetStoreMock.UpdateTimesheetAggregateFunc: method is nil but timesheetStore.UpdateTimesheetAggregate was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DocumentID string
		Upd        domain.AggregateUpdate
	}{Ctx: ctx, DocumentID: documentID, Upd: upd}
	mock.lockUpdateTimesheetAggregate.Lock()
	mock.calls.UpdateTimesheetAggregate = append(mock.calls.UpdateTimesheetAggregate, callInfo)
	mock.lockUpdateTimesheetAggregate.Unlock()
	return mock.UpdateTimesheetAggregateFunc(ctx, documentID, upd)
}

func (mock *timesheetStoreMock) UpdateTimesheetAggregateCalls() []struct {
	Ctx        context.Context
	DocumentID string
	Upd        domain.AggregateUpdate
} {
	mock.lockUpdateTimesheetAggregate.RLock()
	calls := mock.calls.UpdateTimesheetAggregate
	mock.lockUpdateTimesheetAggregate.RUnlock()
	return calls
}
