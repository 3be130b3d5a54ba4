package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

var _ reminderLogReader = &reminderLogReaderMock{}

type reminderLogReaderMock struct {
	ListByRenewableFunc func(ctx context.Context, renewableID int64) ([]domain.ReminderLog, error)
	ListRecentFunc      func(ctx context.Context, limit int) ([]domain.ReminderLog, error)

	calls struct {
		ListByRenewable []struct {
			Ctx         context.Context
			RenewableID int64
		}
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockListByRenewable sync.RWMutex
	lockListRecent      sync.RWMutex
}

func (mock *reminderLogReaderMock) ListByRenewable(ctx context.Context, renewableID int64) ([]domain.ReminderLog, error) {
	if mock.ListByRenewableFunc == nil {
		panic("reminderLogReaderMock.ListByRenewableFunc: method is nil but reminderLogReader.ListByRenewable was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RenewableID int64
	}{Ctx: ctx, RenewableID: renewableID}
	mock.lockListByRenewable.Lock()
	mock.calls.ListByRenewable = append(mock.calls.ListByRenewable, callInfo)
	mock.lockListByRenewable.Unlock()
	return mock.ListByRenewableFunc(ctx, renewableID)
}

func (mock *reminderLogReaderMock) ListByRenewableCalls() []struct {
	Ctx         context.Context
	RenewableID int64
} {
	mock.lockListByRenewable.RLock()
	calls := mock.calls.ListByRenewable
	mock.lockListByRenewable.RUnlock()
	return calls
}

func (mock *reminderLogReaderMock) ListRecent(ctx context.Context, limit int) ([]domain.ReminderLog, error) {
	if mock.ListRecentFunc == nil {
		panic("reminderLogReaderMock.ListRecentFunc: method is nil but reminderLogReader.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *reminderLogReaderMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}
