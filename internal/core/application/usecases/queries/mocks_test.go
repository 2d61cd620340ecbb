package queries_test

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateSession(ctx context.Context, req ports.PaymentRequest) (order.PaymentSession, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(order.PaymentSession), args.Error(1)
}

func (m *MockPaymentGateway) GetStatus(ctx context.Context, orderRef string) (ports.PaymentState, error) {
	args := m.Called(ctx, orderRef)
	return args.Get(0).(ports.PaymentState), args.Error(1)
}

func (m *MockPaymentGateway) VerifyNotification(n ports.PaymentNotification) bool {
	return m.Called(n).Bool(0)
}

type MockCourierGateway struct{ mock.Mock }

func (m *MockCourierGateway) QuoteRates(ctx context.Context, req ports.RateRequest) ([]order.CourierQuote, error) {
	args := m.Called(ctx, req)
	quotes, _ := args.Get(0).([]order.CourierQuote)
	return quotes, args.Error(1)
}

func (m *MockCourierGateway) Track(ctx context.Context, req ports.TrackRequest) (ports.Tracking, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.Tracking), args.Error(1)
}
