package reminder

import (
	"context"
	"sync"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

var _ renewableRepo = &renewableRepoMock{}

type renewableRepoMock struct {
	ListActiveFunc func(ctx context.Context) ([]domain.Renewable, error)

	calls struct {
		ListActive []struct {
			Ctx context.Context
		}
	}
	lockListActive sync.RWMutex
}

func (mock *renewableRepoMock) ListActive(ctx context.Context) ([]domain.Renewable, error) {
	if mock.ListActiveFunc == nil {
		panic("renewableRepoMock.ListActiveFunc: method is nil but renewableRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *renewableRepoMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}
