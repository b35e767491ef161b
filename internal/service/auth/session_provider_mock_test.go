package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/timesheet-relay/internal/domain"
)

var _ sessionProvider = &sessionProviderMock{}

type sessionProviderMock struct {
	LoginFunc    func(ctx context.Context, identifier string, password string) (*domain.Session, error)
	RegisterFunc func(ctx context.Context, username string, email string, password string) (*domain.Session, error)

	calls struct {
		Login []struct {
			Ctx        context.Context
			Identifier string
			Password   string
		}
		Register []struct {
			Ctx      context.Context
			Username string
			Email    string
			Password string
		}
	}
	lockLogin    sync.RWMutex
	lockRegister sync.RWMutex
}

func (mock *sessionProviderMock) Login(ctx context.Context, identifier string, password string) (*domain.Session, error) {
	if mock.LoginFunc == nil {
		panic("sessionProviderMock.LoginFunc: method is nil but sessionProvider.Login was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Identifier string
		Password   string
	}{Ctx: ctx, Identifier: identifier, Password: password}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, identifier, password)
}

func (mock *sessionProviderMock) LoginCalls() []struct {
	Ctx        context.Context
	Identifier string
	Password   string
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *sessionProviderMock) Register(ctx context.Context, username string, email string, password string) (*domain.Session, error) {
	if mock.RegisterFunc == nil {
		panic("sessionProviderMock.RegisterFunc: method is nil but sessionProvider.Register was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
		Email    string
		Password string
	}{Ctx: ctx, Username: username, Email: email, Password: password}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, username, email, password)
}

func (mock *sessionProviderMock) RegisterCalls() []struct {
	Ctx      context.Context
	Username string
	Email    string
	Password string
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}
