package commands_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindPendingOnlinePayments(ctx context.Context, olderThan time.Time, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, olderThan, limit)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockBranchRepository struct{ mock.Mock }

func (m *MockBranchRepository) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*branch.Branch)
	return b, args.Error(1)
}

func (m *MockBranchRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) (*branch.Branch, error) {
	args := m.Called(ctx, ownerID)
	b, _ := args.Get(0).(*branch.Branch)
	return b, args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) GetItems(ctx context.Context, ids []kernel.UUID) ([]*catalog.Item, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]*catalog.Item)
	return items, args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, messages ...*notification.Message) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

func (m *MockOutboxRepository) ClaimPending(ctx context.Context, limit int) ([]*notification.Message, error) {
	args := m.Called(ctx, limit)
	messages, _ := args.Get(0).([]*notification.Message)
	return messages, args.Error(1)
}

func (m *MockOutboxRepository) Update(ctx context.Context, message *notification.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) BranchRepository() ports.BranchRepository {
	args := m.Called()
	return args.Get(0).(ports.BranchRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

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
	args := m.Called(n)
	return args.Bool(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, message *notification.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// fixtures

func testContact(t *testing.T) order.Contact {
	t.Helper()
	loc, err := kernel.NewLocation(-6.2, 106.8)
	require.NoError(t, err)
	c, err := order.NewContact("Sari", "081234567890", "Jl. Melati 5", loc)
	require.NoError(t, err)
	return c
}

func testBranch(t *testing.T, ownerID kernel.UUID, pickup branch.PickupOptions) *branch.Branch {
	t.Helper()
	b, err := branch.RestoreBranch(kernel.NewUUID(), ownerID, "Laundry Wangi", "0221234567", "Jl. Dago 10",
		nil, 7000, pickup)
	require.NoError(t, err)
	return b
}

func testLine(t *testing.T, price int64) order.LineItem {
	t.Helper()
	line, err := order.NewLineItem(kernel.NewUUID(), "Kemeja", decimal.NewFromInt(1), order.UnitPcs, price, price)
	require.NoError(t, err)
	return line
}

func testItem(t *testing.T, line order.LineItem, branchID kernel.UUID, active bool) *catalog.Item {
	t.Helper()
	item, err := catalog.RestoreItem(line.ItemID(), branchID, kernel.NewUUID(), "Kemeja", order.UnitPcs, line.PricePerUnit(), active)
	require.NoError(t, err)
	return item
}

func testQuote(company string, fee int64) *order.CourierQuote {
	return &order.CourierQuote{
		Company:     company,
		CourierName: company,
		CourierCode: company,
		ServiceName: "Instant",
		ServiceCode: "instant",
		Rate:        fee,
		ShippingFee: fee,
	}
}

type orderFixture struct {
	customerID    kernel.UUID
	branchID      kernel.UUID
	status        order.Status
	paymentStatus order.PaymentStatus
	paymentMethod order.PaymentMethod
	deliveryFee   int64
	session       *order.PaymentSession
}

func testOrder(t *testing.T, f orderFixture) *order.Order {
	t.Helper()
	number, err := order.GenerateNumber(time.Now())
	require.NoError(t, err)
	pricing, err := order.NewPricing(order.PricingWeight, nil, 3, 7000, 21000, 0)
	require.NoError(t, err)

	var paidAt *time.Time
	if f.paymentStatus == order.PaymentPaid {
		at := time.Now()
		paidAt = &at
	}
	o, err := order.RestoreOrder(order.State{
		ID:             kernel.NewUUID(),
		Number:         number,
		CustomerID:     f.customerID,
		BranchID:       f.branchID,
		Contact:        testContact(t),
		Pricing:        pricing,
		DeliveryFee:    f.deliveryFee,
		PickupMethod:   order.PickupFree,
		Status:         f.status,
		PaymentStatus:  f.paymentStatus,
		PaymentMethod:  f.paymentMethod,
		PaymentSession: f.session,
		PaidAt:         paidAt,
		CreatedAt:      time.Now().Add(-time.Hour),
		UpdatedAt:      time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)
	return o
}
