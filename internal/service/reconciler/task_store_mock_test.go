package reconciler

import (
	"context"
	"sync"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

var _ taskStore = &taskStoreMock{}

type taskStoreMock struct {
	CreateTaskFunc func(ctx context.Context, task domain.Task) (*domain.Task, error)
	DeleteTaskFunc func(ctx context.Context, documentID string) error
	UpdateTaskFunc func(ctx context.Context, documentID string, task domain.Task) (*domain.Task, error)

	calls struct {
		CreateTask []struct {
			Ctx  context.Context
			Task domain.Task
		}
		DeleteTask []struct {
			Ctx        context.Context
			DocumentID string
		}
		UpdateTask []struct {
			Ctx        context.Context
			DocumentID string
			Task       domain.Task
		}
	}
	lockCreateTask sync.RWMutex
	lockDeleteTask sync.RWMutex
	lockUpdateTask sync.RWMutex
}

func (mock *taskStoreMock) CreateTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	if mock.CreateTaskFunc == nil {
		panic("taskStoreMock.CreateTaskFunc: method is nil but taskStore.CreateTask was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Task domain.Task
	}{Ctx: ctx, Task: task}
	mock.lockCreateTask.Lock()
	mock.calls.CreateTask = append(mock.calls.CreateTask, callInfo)
	mock.lockCreateTask.Unlock()
	return mock.CreateTaskFunc(ctx, task)
}

func (mock *taskStoreMock) CreateTaskCalls() []struct {
	Ctx  context.Context
	Task domain.Task
} {
	mock.lockCreateTask.RLock()
	calls := mock.calls.CreateTask
	mock.lockCreateTask.RUnlock()
	return calls
}

func (mock *taskStoreMock) DeleteTask(ctx context.Context, documentID string) error {
	if mock.DeleteTaskFunc == nil {
		panic("taskStoreMock.DeleteTaskFunc: method is nil but taskStore.DeleteTask was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DocumentID string
	}{Ctx: ctx, DocumentID: documentID}
	mock.lockDeleteTask.Lock()
	mock.calls.DeleteTask = append(mock.calls.DeleteTask, callInfo)
	mock.lockDeleteTask.Unlock()
	return mock.DeleteTaskFunc(ctx, documentID)
}

func (mock *taskStoreMock) DeleteTaskCalls() []struct {
	Ctx        context.Context
	DocumentID string
} {
	mock.lockDeleteTask.RLock()
	calls := mock.calls.DeleteTask
	mock.lockDeleteTask.RUnlock()
	return calls
}

func (mock *taskStoreMock) UpdateTask(ctx context.Context, documentID string, task domain.Task) (*domain.Task, error) {
	if mock.UpdateTaskFunc == nil {
		panic("taskStoreMock.UpdateTaskFunc: method is nil but taskStore.UpdateTask was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DocumentID string
		Task       domain.Task
	}{Ctx: ctx, DocumentID: documentID, Task: task}
	mock.lockUpdateTask.Lock()
	mock.calls.UpdateTask = append(mock.calls.UpdateTask, callInfo)
	mock.lockUpdateTask.Unlock()
	return mock.UpdateTaskFunc(ctx, documentID, task)
}

func (mock *taskStoreMock) UpdateTaskCalls() []struct {
	Ctx        context.Context
	DocumentID string
	Task       domain.Task
} {
	mock.lockUpdateTask.RLock()
	calls := mock.calls.UpdateTask
	mock.lockUpdateTask.RUnlock()
	return calls
}
