package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/renewal-manager/internal/service/reminder"
)

var _ sweeper = &sweeperMock{}

type sweeperMock struct {
	TriggerManuallyFunc func(ctx context.Context) (reminder.SweepResult, error)

	calls struct {
		TriggerManually []struct {
			Ctx context.Context
		}
	}
	lockTriggerManually sync.RWMutex
}

func (mock *sweeperMock) TriggerManually(ctx context.Context) (reminder.SweepResult, error) {
	if mock.TriggerManuallyFunc == nil {
		panic("sweeperMock.TriggerManuallyFunc: method is nil but sweeper.TriggerManually was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockTriggerManually.Lock()
	mock.calls.TriggerManually = append(mock.calls.TriggerManually, callInfo)
	mock.lockTriggerManually.Unlock()
	return mock.TriggerManuallyFunc(ctx)
}

func (mock *sweeperMock) TriggerManuallyCalls() []struct {
	Ctx context.Context
} {
	mock.lockTriggerManually.RLock()
	calls := mock.calls.TriggerManually
	mock.lockTriggerManually.RUnlock()
	return calls
}
