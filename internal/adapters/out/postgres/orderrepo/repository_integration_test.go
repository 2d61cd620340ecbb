package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/pgtest"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), &orderrepo.OrderDTO{})
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(pickup order.PickupMethod) *order.Order {
	loc, err := kernel.NewLocation(-6.2, 106.816666)
	suite.Require().NoError(err)
	contact, err := order.NewContact("Sari", "081234567890", "Jl. Melati 5", loc)
	suite.Require().NoError(err)

	item, err := order.NewLineItem(kernel.NewUUID(), "Cuci Setrika", decimal.RequireFromString("2.5"), order.UnitKg, 8000, 20000)
	suite.Require().NoError(err)

	var (
		fee     int64
		courier *order.CourierSnapshot
	)
	if pickup.IsCourier() {
		fee = 15000
		s, err := order.NewCourierSnapshot(order.CourierQuote{
			Company:     pickup.String(),
			CourierName: "GoSend",
			CourierCode: pickup.String(),
			ServiceName: "Instant",
			ServiceCode: "instant",
			Duration:    "1 - 3 hours",
			Rate:        fee,
			ShippingFee: fee,
			Tracking:    order.CourierTracking{WaybillID: "WB-1"},
		})
		suite.Require().NoError(err)
		courier = &s
	}

	pricing, err := order.NewPricing(order.PricingItemized, []order.LineItem{item}, 0, 0, 20000, fee)
	suite.Require().NoError(err)
	number, err := order.GenerateNumber(baseTime)
	suite.Require().NoError(err)

	o, err := order.NewOrder(order.Draft{
		ID:            kernel.NewUUID(),
		Number:        number,
		CustomerID:    kernel.NewUUID(),
		BranchID:      kernel.NewUUID(),
		Contact:       contact,
		Pricing:       pricing,
		PickupMethod:  pickup,
		PickupCourier: courier,
		Notes:         "ring the bell",
		CreatedAt:     baseTime,
	})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsTheAggregate() {
	ctx := context.Background()
	o := suite.newOrder(order.PickupGojek)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
	suite.Equal(o.Number(), got.Number())
	suite.Equal(order.StatusPending, got.Status())
	suite.Equal(order.PaymentUnpaid, got.PaymentStatus())
	suite.Equal(int64(35000), got.TotalAmount())
	suite.Equal(order.PricingItemized, got.Pricing().Path())
	suite.Require().Len(got.Pricing().Items(), 1)
	suite.Equal("2.5", got.Pricing().Items()[0].Quantity().String())
	suite.Require().NotNil(got.PickupCourier())
	suite.Equal("gojek", got.PickupCourier().Company())
	suite.Equal("WB-1", got.PickupCourier().Quote().Tracking.WaybillID)
	suite.Nil(got.DeliveryCourier())
	suite.Equal("ring the bell", got.Notes())
	suite.Equal(-6.2, got.Contact().Location().Latitude())
	suite.True(baseTime.Equal(got.CreatedAt()))

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsAlreadyExists() {
	ctx := context.Background()
	first := suite.newOrder(order.PickupFree)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.newOrder(order.PickupFree)
	clash, err := order.RestoreOrder(order.State{
		ID:            second.ID(),
		Number:        first.Number(),
		CustomerID:    second.CustomerID(),
		BranchID:      second.BranchID(),
		Contact:       second.Contact(),
		Pricing:       second.Pricing(),
		PickupMethod:  order.PickupFree,
		Status:        order.StatusPending,
		PaymentStatus: order.PaymentUnpaid,
		CreatedAt:     baseTime,
	})
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, clash)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsPaymentAndActualWeight() {
	ctx := context.Background()
	o := suite.newOrder(order.PickupFree)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	now := baseTime.Add(time.Hour)
	suite.Require().NoError(o.UpdateStatus(order.StatusReady, "", now))
	suite.Require().NoError(o.ChooseDeliveryAndPayment(order.DeliveryFree, order.PaymentChoiceOnline, nil, now))
	suite.Require().NoError(o.AttachPaymentSession(order.PaymentSession{
		Token: "snap-1", RedirectURL: "https://pay/1", ExpiresAt: now.Add(24 * time.Hour),
	}, now))
	item, err := order.NewLineItem(kernel.NewUUID(), "Cuci Setrika", decimal.RequireFromString("3"), order.UnitKg, 8000, 24000)
	suite.Require().NoError(err)
	weight := decimal.RequireFromString("3.25")
	suite.Require().NoError(o.RecordActualWeight([]order.LineItem{item}, &weight, "https://cdn/v.mp4", "", now))

	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusReady, got.Status())
	suite.Equal(order.PaymentPending, got.PaymentStatus())
	suite.Equal(order.PaymentMethodMidtrans, got.PaymentMethod())
	suite.Equal(order.DeliveryFree, got.DeliveryMethod())
	suite.Require().NotNil(got.PaymentSession())
	suite.Equal("snap-1", got.PaymentSession().Token)
	suite.Require().NotNil(got.Actual())
	suite.Equal(int64(24000), got.Actual().TotalAmount)
	suite.Require().NotNil(got.Actual().Weight)
	suite.True(weight.Equal(*got.Actual().Weight))
	suite.Equal(int64(20000), got.TotalAmount())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newOrder(order.PickupFree))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber() {
	ctx := context.Background()
	o := suite.newOrder(order.PickupFree)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.GetByNumber(ctx, o.Number().String())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))

	_, err = suite.repository.GetByNumber(ctx, "ORD-20250101-ZZZZZZ")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(got)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindPendingOnlinePayments() {
	ctx := context.Background()

	stale := suite.newOrder(order.PickupFree)
	fresh := suite.newOrder(order.PickupFree)
	cash := suite.newOrder(order.PickupFree)
	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))
	suite.Require().NoError(suite.repository.Add(ctx, cash))

	for o, at := range map[*order.Order]time.Time{
		stale: baseTime.Add(time.Minute),
		fresh: baseTime.Add(2 * time.Hour),
	} {
		suite.Require().NoError(o.UpdateStatus(order.StatusReady, "", at))
		suite.Require().NoError(o.ChooseDeliveryAndPayment(order.DeliverySelfPickup, order.PaymentChoiceOnline, nil, at))
		suite.Require().NoError(suite.repository.Update(ctx, o))
	}
	suite.Require().NoError(cash.UpdateStatus(order.StatusReady, "", baseTime))
	suite.Require().NoError(cash.ChooseDeliveryAndPayment(order.DeliverySelfPickup, order.PaymentChoiceCash, nil, baseTime))
	suite.Require().NoError(suite.repository.Update(ctx, cash))

	got, err := suite.repository.FindPendingOnlinePayments(ctx, baseTime.Add(time.Hour), 10)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.True(got[0].IsEqual(stale))
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
