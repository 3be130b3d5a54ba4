package reminder

import (
	"context"
	"sync"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

var _ itemTypeRepo = &itemTypeRepoMock{}

type itemTypeRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.ItemType, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *itemTypeRepoMock) GetByID(ctx context.Context, id int64) (*domain.ItemType, error) {
	if mock.GetByIDFunc == nil {
		panic("itemTypeRepoMock.GetByIDFunc: method is nil but itemTypeRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemTypeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
