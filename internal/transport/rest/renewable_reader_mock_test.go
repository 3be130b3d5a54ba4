package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

var _ renewableReader = &renewableReaderMock{}

type renewableReaderMock struct {
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.Renewable, error)
	ListUpcomingFunc func(ctx context.Context, days int) ([]domain.Renewable, error)
	ListExpiredFunc  func(ctx context.Context) ([]domain.Renewable, error)
	StatsFunc        func(ctx context.Context) (domain.RenewableStats, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		ListUpcoming []struct {
			Ctx  context.Context
			Days int
		}
		ListExpired []struct {
			Ctx context.Context
		}
		Stats []struct {
			Ctx context.Context
		}
	}
	lockGetByID      sync.RWMutex
	lockListUpcoming sync.RWMutex
	lockListExpired  sync.RWMutex
	lockStats        sync.RWMutex
}

func (mock *renewableReaderMock) GetByID(ctx context.Context, id int64) (*domain.Renewable, error) {
	if mock.GetByIDFunc == nil {
		panic("renewableReaderMock.GetByIDFunc: method is nil but renewableReader.GetByID was just called")
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

func (mock *renewableReaderMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *renewableReaderMock) ListUpcoming(ctx context.Context, days int) ([]domain.Renewable, error) {
	if mock.ListUpcomingFunc == nil {
		panic("renewableReaderMock.ListUpcomingFunc: method is nil but renewableReader.ListUpcoming was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Days int
	}{Ctx: ctx, Days: days}
	mock.lockListUpcoming.Lock()
	mock.calls.ListUpcoming = append(mock.calls.ListUpcoming, callInfo)
	mock.lockListUpcoming.Unlock()
	return mock.ListUpcomingFunc(ctx, days)
}

func (mock *renewableReaderMock) ListUpcomingCalls() []struct {
	Ctx  context.Context
	Days int
} {
	mock.lockListUpcoming.RLock()
	calls := mock.calls.ListUpcoming
	mock.lockListUpcoming.RUnlock()
	return calls
}

func (mock *renewableReaderMock) ListExpired(ctx context.Context) ([]domain.Renewable, error) {
	if mock.ListExpiredFunc == nil {
		panic("renewableReaderMock.ListExpiredFunc: method is nil but renewableReader.ListExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListExpired.Lock()
	mock.calls.ListExpired = append(mock.calls.ListExpired, callInfo)
	mock.lockListExpired.Unlock()
	return mock.ListExpiredFunc(ctx)
}

func (mock *renewableReaderMock) ListExpiredCalls() []struct {
	Ctx context.Context
} {
	mock.lockListExpired.RLock()
	calls := mock.calls.ListExpired
	mock.lockListExpired.RUnlock()
	return calls
}

func (mock *renewableReaderMock) Stats(ctx context.Context) (domain.RenewableStats, error) {
	if mock.StatsFunc == nil {
		panic("renewableReaderMock.StatsFunc: method is nil but renewableReader.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *renewableReaderMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
