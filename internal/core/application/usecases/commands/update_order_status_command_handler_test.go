package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), kernel.NewUUID(), order.StatusWashing, "")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, order.StatusWashing, cmd.Status())
	})

	t.Run("missing ids and unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, kernel.UUID{}, order.StatusUnknown, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	b := testBranch(t, owner, branch.PickupOptions{})
	o := testOrder(t, orderFixture{customerID: kernel.NewUUID(), branchID: b.ID(), status: order.StatusProcessing, paymentStatus: order.PaymentUnpaid})
	cmd, err := commands.NewUpdateOrderStatusCommand(owner, o.ID(), order.StatusWashing, "pakai pewangi")
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
			return len(ms) == 1 && ms[0].Kind() == notification.KindCustomerStatusUpdate &&
				ms[0].Recipient() == o.Contact().Phone()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusWashing, updated.Status())
	assert.Equal(t, "pakai pewangi", updated.Notes())
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	outbox.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ActorRunsNoBranch(t *testing.T) {
	ctx := t.Context()
	actor := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(actor, kernel.NewUUID(), order.StatusWashing, "")
	require.NoError(t, err)

	branchRepo := new(MockBranchRepository)
	branchRepo.On("GetByOwner", ctx, actor).Return(nil, errs.NewObjectNotFoundError("owner_id", actor))
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("BranchRepository").Return(branchRepo)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderOfAnotherBranch(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	b := testBranch(t, owner, branch.PickupOptions{})
	o := testOrder(t, orderFixture{customerID: kernel.NewUUID(), branchID: kernel.NewUUID(), status: order.StatusProcessing, paymentStatus: order.PaymentUnpaid})
	cmd, err := commands.NewUpdateOrderStatusCommand(owner, o.ID(), order.StatusWashing, "")
	require.NoError(t, err)

	branchRepo := new(MockBranchRepository)
	branchRepo.On("GetByOwner", ctx, owner).Return(b, nil)
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("BranchRepository").Return(branchRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, order.StatusProcessing, o.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	b := testBranch(t, owner, branch.PickupOptions{})
	o := testOrder(t, orderFixture{customerID: kernel.NewUUID(), branchID: b.ID(), status: order.StatusCompleted, paymentStatus: order.PaymentPaid, paymentMethod: order.PaymentMethodCash})
	cmd, err := commands.NewUpdateOrderStatusCommand(owner, o.ID(), order.StatusWashing, "")
	require.NoError(t, err)

	branchRepo := new(MockBranchRepository)
	branchRepo.On("GetByOwner", ctx, owner).Return(b, nil)
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("BranchRepository").Return(branchRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "OutboxRepository")
	uow.AssertNotCalled(t, "Commit", ctx)
}
