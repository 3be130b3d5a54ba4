package seeder

import (
	"context"
	"sync"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

var _ itemTypeStore = &itemTypeStoreMock{}

type itemTypeStoreMock struct {
	ListFunc   func(ctx context.Context) ([]domain.ItemType, error)
	CreateFunc func(ctx context.Context, it domain.ItemType) (*domain.ItemType, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			It  domain.ItemType
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
}

func (mock *itemTypeStoreMock) List(ctx context.Context) ([]domain.ItemType, error) {
	if mock.ListFunc == nil {
		panic("itemTypeStoreMock.ListFunc: method is nil but itemTypeStore.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *itemTypeStoreMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *itemTypeStoreMock) Create(ctx context.Context, it domain.ItemType) (*domain.ItemType, error) {
	if mock.CreateFunc == nil {
		panic("itemTypeStoreMock.CreateFunc: method is nil but itemTypeStore.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		It  domain.ItemType
	}{Ctx: ctx, It: it}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, it)
}

func (mock *itemTypeStoreMock) CreateCalls() []struct {
	Ctx context.Context
	It  domain.ItemType
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
