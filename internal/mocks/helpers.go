package mocks

import (
	"context"
	"testing"

	"github.com/facturepro/facturepro-api/internal/db"
	"go.uber.org/mock/gomock"
)

// NewMockStoreForTest creates a new mock Store whose ExecTx runs the callback
// against the same mock, so expectations can be set on one object.
func NewMockStoreForTest(t *testing.T) *MockStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	store := NewMockStore(ctrl)
	store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(db.Querier) error) error {
			return fn(store)
		},
	).AnyTimes()
	return store
}

// NewMockPaymentProviderForTest creates a new mock PaymentProvider for testing
func NewMockPaymentProviderForTest(t *testing.T) *MockPaymentProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPaymentProvider(ctrl)
}
