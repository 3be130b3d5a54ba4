package reminder

import (
	"context"
	"sync"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

var _ reminderLogRepo = &reminderLogRepoMock{}

type reminderLogRepoMock struct {
	CreateFunc func(ctx context.Context, l domain.ReminderLog) (*domain.ReminderLog, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   domain.ReminderLog
		}
	}
	lockCreate sync.RWMutex
}

func (mock *reminderLogRepoMock) Create(ctx context.Context, l domain.ReminderLog) (*domain.ReminderLog, error) {
	if mock.CreateFunc == nil {
		panic("reminderLogRepoMock.CreateFunc: method is nil but reminderLogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.ReminderLog
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *reminderLogRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   domain.ReminderLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
