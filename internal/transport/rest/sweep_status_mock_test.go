package rest

import (
	"sync"

	"github.com/heartmarshall/renewal-manager/internal/service/reminder"
)

var _ sweepStatus = &sweepStatusMock{}

type sweepStatusMock struct {
	StatusFunc func() reminder.Status

	calls struct {
		Status []struct {
		}
	}
	lockStatus sync.RWMutex
}

func (mock *sweepStatusMock) Status() reminder.Status {
	if mock.StatusFunc == nil {
		panic("sweepStatusMock.StatusFunc: method is nil but sweepStatus.Status was just called")
	}
	callInfo := struct {
	}{}
	mock.lockStatus.Lock()
	mock.calls.Status = append(mock.calls.Status, callInfo)
	mock.lockStatus.Unlock()
	return mock.StatusFunc()
}

func (mock *sweepStatusMock) StatusCalls() []struct {
} {
	mock.lockStatus.RLock()
	calls := mock.calls.Status
	mock.lockStatus.RUnlock()
	return calls
}
