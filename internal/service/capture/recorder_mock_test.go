package capture

import (
	"context"
	"sync"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
)

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	AppendFunc func(ctx context.Context, records []domain.ChangeRecord) error

	calls struct {
		Append []struct {
			Ctx     context.Context
			Records []domain.ChangeRecord
		}
	}
	lockAppend sync.RWMutex
}

func (mock *recordStoreMock) Append(ctx context.Context, records []domain.ChangeRecord) error {
	if mock.AppendFunc == nil {
		panic("recordStoreMock.AppendFunc: method is nil but recordStore.Append was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Records []domain.ChangeRecord
	}{Ctx: ctx, Records: records}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, records)
}

func (mock *recordStoreMock) AppendCalls() []struct {
	Ctx     context.Context
	Records []domain.ChangeRecord
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PublishFunc func(records []domain.ChangeRecord) error

	calls struct {
		Publish []struct {
			Records []domain.ChangeRecord
		}
	}
	lockPublish sync.RWMutex
}

func (mock *eventPublisherMock) Publish(records []domain.ChangeRecord) error {
	if mock.PublishFunc == nil {
		panic("eventPublisherMock.PublishFunc: method is nil but eventPublisher.Publish was just called")
	}
	callInfo := struct {
		Records []domain.ChangeRecord
	}{Records: records}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(records)
}

func (mock *eventPublisherMock) PublishCalls() []struct {
	Records []domain.ChangeRecord
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
