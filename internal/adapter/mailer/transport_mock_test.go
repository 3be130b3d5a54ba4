package mailer

import (
	"context"
	"sync"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

var _ Transport = &TransportMock{}

type TransportMock struct {
	DeliverFunc func(ctx context.Context, from string, e domain.Email) error

	calls struct {
		Deliver []struct {
			Ctx  context.Context
			From string
			E    domain.Email
		}
	}
	lockDeliver sync.RWMutex
}

func (mock *TransportMock) Deliver(ctx context.Context, from string, e domain.Email) error {
	if mock.DeliverFunc == nil {
		panic("TransportMock.DeliverFunc: method is nil but Transport.Deliver was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From string
		E    domain.Email
	}{Ctx: ctx, From: from, E: e}
	mock.lockDeliver.Lock()
	mock.calls.Deliver = append(mock.calls.Deliver, callInfo)
	mock.lockDeliver.Unlock()
	return mock.DeliverFunc(ctx, from, e)
}

func (mock *TransportMock) DeliverCalls() []struct {
	Ctx  context.Context
	From string
	E    domain.Email
} {
	mock.lockDeliver.RLock()
	calls := mock.calls.Deliver
	mock.lockDeliver.RUnlock()
	return calls
}
