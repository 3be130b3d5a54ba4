package reminder

import (
	"context"
	"sync"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

var _ dispatchLedger = &dispatchLedgerMock{}

type dispatchLedgerMock struct {
	ReserveFunc func(ctx context.Context, key domain.DispatchKey) (bool, error)
	ReleaseFunc func(ctx context.Context, key domain.DispatchKey) error
	AttachFunc  func(ctx context.Context, key domain.DispatchKey, logID int64) error

	calls struct {
		Reserve []struct {
			Ctx context.Context
			Key domain.DispatchKey
		}
		Release []struct {
			Ctx context.Context
			Key domain.DispatchKey
		}
		Attach []struct {
			Ctx   context.Context
			Key   domain.DispatchKey
			LogID int64
		}
	}
	lockReserve sync.RWMutex
	lockRelease sync.RWMutex
	lockAttach  sync.RWMutex
}

func (mock *dispatchLedgerMock) Reserve(ctx context.Context, key domain.DispatchKey) (bool, error) {
	if mock.ReserveFunc == nil {
		panic("dispatchLedgerMock.ReserveFunc: method is nil but dispatchLedger.Reserve was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.DispatchKey
	}{Ctx: ctx, Key: key}
	mock.lockReserve.Lock()
	mock.calls.Reserve = append(mock.calls.Reserve, callInfo)
	mock.lockReserve.Unlock()
	return mock.ReserveFunc(ctx, key)
}

func (mock *dispatchLedgerMock) ReserveCalls() []struct {
	Ctx context.Context
	Key domain.DispatchKey
} {
	mock.lockReserve.RLock()
	calls := mock.calls.Reserve
	mock.lockReserve.RUnlock()
	return calls
}

func (mock *dispatchLedgerMock) Release(ctx context.Context, key domain.DispatchKey) error {
	if mock.ReleaseFunc == nil {
		panic("dispatchLedgerMock.ReleaseFunc: method is nil but dispatchLedger.Release was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.DispatchKey
	}{Ctx: ctx, Key: key}
	mock.lockRelease.Lock()
	mock.calls.Release = append(mock.calls.Release, callInfo)
	mock.lockRelease.Unlock()
	return mock.ReleaseFunc(ctx, key)
}

func (mock *dispatchLedgerMock) ReleaseCalls() []struct {
	Ctx context.Context
	Key domain.DispatchKey
} {
	mock.lockRelease.RLock()
	calls := mock.calls.Release
	mock.lockRelease.RUnlock()
	return calls
}

func (mock *dispatchLedgerMock) Attach(ctx context.Context, key domain.DispatchKey, logID int64) error {
	if mock.AttachFunc == nil {
		panic("dispatchLedgerMock.AttachFunc: method is nil but dispatchLedger.Attach was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Key   domain.DispatchKey
		LogID int64
	}{Ctx: ctx, Key: key, LogID: logID}
	mock.lockAttach.Lock()
	mock.calls.Attach = append(mock.calls.Attach, callInfo)
	mock.lockAttach.Unlock()
	return mock.AttachFunc(ctx, key, logID)
}

func (mock *dispatchLedgerMock) AttachCalls() []struct {
	Ctx   context.Context
	Key   domain.DispatchKey
	LogID int64
} {
	mock.lockAttach.RLock()
	calls := mock.calls.Attach
	mock.lockAttach.RUnlock()
	return calls
}
