package timesheet

import (
	"context"
	"sync"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

var _ timesheetRepo = &timesheetRepoMock{}

type timesheetRepoMock struct {
	CreateTimesheetFunc     func(ctx context.Context, ts domain.Timesheet) (*domain.Timesheet, error)
	DeleteTimesheetFunc     func(ctx context.Context, documentID string) error
	FindTimesheetByWeekFunc func(ctx context.Context, week int, year int) (*domain.Timesheet, error)
	GetTimesheetFunc        func(ctx context.Context, documentID string) (*domain.Timesheet, error)
	ListTimesheetsFunc      func(ctx context.Context, f domain.TimesheetFilter) (*domain.TimesheetPage, error)

	calls struct {
		CreateTimesheet []struct {
			Ctx context.Context
			Ts  domain.Timesheet
		}
		DeleteTimesheet []struct {
			Ctx        context.Context
			DocumentID string
		}
		FindTimesheetByWeek []struct {
			Ctx  context.Context
			Week int
			Year int
		}
		GetTimesheet []struct {
			Ctx        context.Context
			DocumentID string
		}
		ListTimesheets []struct {
			Ctx context.Context
			F   domain.TimesheetFilter
		}
	}
	lockCreateTimesheet     sync.RWMutex
	lockDeleteTimesheet     sync.RWMutex
	lockFindTimesheetByWeek sync.RWMutex
	lockGetTimesheet        sync.RWMutex
	lockListTimesheets      sync.RWMutex
}

func (mock *timesheetRepoMock) CreateTimesheet(ctx context.Context, ts domain.Timesheet) (*domain.Timesheet, error) {
	if mock.CreateTimesheetFunc == nil {
		panic("timesheetRepoMock.CreateTimesheetFunc: method is nil but timesheetRepo.CreateTimesheet was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ts  domain.Timesheet
	}{Ctx: ctx, Ts: ts}
	mock.lockCreateTimesheet.Lock()
	mock.calls.CreateTimesheet = append(mock.calls.CreateTimesheet, callInfo)
	mock.lockCreateTimesheet.Unlock()
	return mock.CreateTimesheetFunc(ctx, ts)
}

func (mock *timesheetRepoMock) CreateTimesheetCalls() []struct {
	Ctx context.Context
	Ts  domain.Timesheet
} {
	mock.lockCreateTimesheet.RLock()
	calls := mock.calls.CreateTimesheet
	mock.lockCreateTimesheet.RUnlock()
	return calls
}

func (mock *timesheetRepoMock) DeleteTimesheet(ctx context.Context, documentID string) error {
	if mock.DeleteTimesheetFunc == nil {
		panic("timesheetRepoMock.DeleteTimesheetFunc: method is nil but timesheetRepo.DeleteTimesheet was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DocumentID string
	}{Ctx: ctx, DocumentID: documentID}
	mock.lockDeleteTimesheet.Lock()
	mock.calls.DeleteTimesheet = append(mock.calls.DeleteTimesheet, callInfo)
	mock.lockDeleteTimesheet.Unlock()
	return mock.DeleteTimesheetFunc(ctx, documentID)
}

func (mock *timesheetRepoMock) DeleteTimesheetCalls() []struct {
	Ctx        context.Context
	DocumentID string
} {
	mock.lockDeleteTimesheet.RLock()
	calls := mock.calls.DeleteTimesheet
	mock.lockDeleteTimesheet.RUnlock()
	return calls
}

func (mock *timesheetRepoMock) FindTimesheetByWeek(ctx context.Context, week int, year int) (*domain.Timesheet, error) {
	if mock.FindTimesheetByWeekFunc == nil {
		panic("timesheetRepoMock.FindTimesheetByWeekFunc: method is nil but timesheetRepo.FindTimesheetByWeek was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Week int
		Year int
	}{Ctx: ctx, Week: week, Year: year}
	mock.lockFindTimesheetByWeek.Lock()
	mock.calls.FindTimesheetByWeek = append(mock.calls.FindTimesheetByWeek, callInfo)
	mock.lockFindTimesheetByWeek.Unlock()
	return mock.FindTimesheetByWeekFunc(ctx, week, year)
}

func (mock *timesheetRepoMock) FindTimesheetByWeekCalls() []struct {
	Ctx  context.Context
	Week int
	Year int
} {
	mock.lockFindTimesheetByWeek.RLock()
	calls := mock.calls.FindTimesheetByWeek
	mock.lockFindTimesheetByWeek.RUnlock()
	return calls
}

func (mock *timesheetRepoMock) GetTimesheet(ctx context.Context, documentID string) (*domain.Timesheet, error) {
	if mock.GetTimesheetFunc == nil {
		panic("timesheetRepoMock.GetTimesheetFunc: method is nil but timesheetRepo.GetTimesheet was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DocumentID string
	}{Ctx: ctx, DocumentID: documentID}
	mock.lockGetTimesheet.Lock()
	mock.calls.GetTimesheet = append(mock.calls.GetTimesheet, callInfo)
	mock.lockGetTimesheet.Unlock()
	return mock.GetTimesheetFunc(ctx, documentID)
}

func (mock *timesheetRepoMock) GetTimesheetCalls() []struct {
	Ctx        context.Context
	DocumentID string
} {
	mock.lockGetTimesheet.RLock()
	calls := mock.calls.GetTimesheet
	mock.lockGetTimesheet.RUnlock()
	return calls
}

func (mock *timesheetRepoMock) ListTimesheets(ctx context.Context, f domain.TimesheetFilter) (*domain.TimesheetPage, error) {
	if mock.ListTimesheetsFunc == nil {
		panic("timesheetRepoMock.ListTimesheetsFunc: method is nil but timesheetRepo.ListTimesheets was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.TimesheetFilter
	}{Ctx: ctx, F: f}
	mock.lockListTimesheets.Lock()
	mock.calls.ListTimesheets = append(mock.calls.ListTimesheets, callInfo)
	mock.lockListTimesheets.Unlock()
	return mock.ListTimesheetsFunc(ctx, f)
}

func (mock *timesheetRepoMock) ListTimesheetsCalls() []struct {
	Ctx context.Context
	F   domain.TimesheetFilter
} {
	mock.lockListTimesheets.RLock()
	calls := mock.calls.ListTimesheets
	mock.lockListTimesheets.RUnlock()
	return calls
}
