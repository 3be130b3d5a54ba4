package rest

import (
	"context"
	"sync"
)

var _ dbPinger = &dbPingerMock{}

type dbPingerMock struct {
	PingFunc func(ctx context.Context) error

	calls struct {
		Ping []struct {
			Ctx context.Context
		}
	}
	lockPing sync.RWMutex
}

func (mock *dbPingerMock) Ping(ctx context.Context) error {
	if mock.PingFunc == nil {
		panic("dbPingerMock.PingFunc: method is nil but dbPinger.Ping was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockPing.Lock()
	mock.calls.Ping = append(mock.calls.Ping, callInfo)
	mock.lockPing.Unlock()
	return mock.PingFunc(ctx)
}

func (mock *dbPingerMock) PingCalls() []struct {
	Ctx context.Context
} {
	mock.lockPing.RLock()
	calls := mock.calls.Ping
	mock.lockPing.RUnlock()
	return calls
}
