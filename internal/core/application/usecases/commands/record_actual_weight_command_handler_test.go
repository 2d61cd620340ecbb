package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRecordActualWeightCommand(t *testing.T) {
	tests := []struct {
		name    string
		items   []order.LineItem
		url     string
		wantErr error
	}{
		{name: "valid with video", items: []order.LineItem{testLine(t, 7000)}, url: "https://cdn.example.com/proof.mp4"},
		{name: "valid without video", items: []order.LineItem{testLine(t, 7000)}},
		{name: "no items", wantErr: errs.ErrValueIsRequired},
		{name: "relative video url", items: []order.LineItem{testLine(t, 7000)}, url: "proof.mp4", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewRecordActualWeightCommand(kernel.NewUUID(), kernel.NewUUID(), tt.items, nil, tt.url, "")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRecordActualWeightCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	b := testBranch(t, owner, branch.PickupOptions{})
	o := testOrder(t, orderFixture{customerID: kernel.NewUUID(), branchID: b.ID(), status: order.StatusProcessing, paymentStatus: order.PaymentUnpaid, deliveryFee: 5000})
	weight := decimal.RequireFromString("3.4")
	cmd, err := commands.NewRecordActualWeightCommand(owner, o.ID(),
		[]order.LineItem{testLine(t, 7000), testLine(t, 16800)}, &weight, "https://cdn.example.com/proof.mp4", "")
	require.NoError(t, err)

	branchRepo := new(MockBranchRepository)
	orderRepo := new(MockOrderRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BranchRepository").Return(branchRepo).Once(),
		branchRepo.On("GetByOwner", ctx, owner).Return(b, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("Add", ctx, mock.MatchedBy(func(ms []*notification.Message) bool {
			return len(ms) == 1 && ms[0].Kind() == notification.KindCustomerActualWeight
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordActualWeightCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated.Actual())
	assert.Equal(t, int64(7000+16800+5000), updated.Actual().TotalAmount)
	assert.Equal(t, int64(21000), updated.TotalAmount(), "estimate is kept")
	assert.Equal(t, order.StatusProcessing, updated.Status())
	uow.AssertExpectations(t)
	outbox.AssertExpectations(t)
}

func TestRecordActualWeightCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()
	actor := kernel.NewUUID()
	cmd, err := commands.NewRecordActualWeightCommand(actor, kernel.NewUUID(), []order.LineItem{testLine(t, 7000)}, nil, "", "")
	require.NoError(t, err)

	branchRepo := new(MockBranchRepository)
	branchRepo.On("GetByOwner", ctx, actor).Return(nil, errs.NewObjectNotFoundError("owner_id", actor))
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("BranchRepository").Return(branchRepo)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordActualWeightCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertNotCalled(t, "OutboxRepository")
}
