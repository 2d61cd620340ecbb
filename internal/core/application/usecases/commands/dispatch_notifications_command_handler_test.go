package commands_test

import (
	"errors"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testMessage(t *testing.T, kind notification.Kind, recipient string) *notification.Message {
	t.Helper()
	msg, err := notification.NewMessage(kernel.NewUUID(), kind, kernel.NewUUID(), "ORD-20250301-7KQ2ZD", recipient, "Halo", time.Now())
	require.NoError(t, err)
	return msg
}

func TestNewDispatchNotificationsCommand(t *testing.T) {
	_, err := commands.NewDispatchNotificationsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	cmd, err := commands.NewDispatchNotificationsCommand(25)
	require.NoError(t, err)
	assert.Equal(t, 25, cmd.BatchSize())
}

func TestDispatchNotificationsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	delivered := testMessage(t, notification.KindBranchNewOrder, "0221234567")
	undeliverable := testMessage(t, notification.KindCustomerStatusUpdate, "")

	outbox := new(MockOutboxRepository)
	claimer := new(MockUoW)
	mock.InOrder(
		claimer.On("Begin", ctx).Return(nil).Once(),
		claimer.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("ClaimPending", ctx, 10).Return([]*notification.Message{delivered, undeliverable}, nil).Once(),
		outbox.On("Update", ctx, delivered).Return(nil).Once(),
		outbox.On("Update", ctx, undeliverable).Return(nil).Once(),
		claimer.On("Commit", ctx).Return(nil).Once(),
		claimer.On("Rollback", ctx).Return(nil).Once(),
	)

	failedOutbox := new(MockOutboxRepository)
	failedOutbox.On("Update", ctx, mock.MatchedBy(func(m *notification.Message) bool {
		return m == undeliverable && m.State() == notification.StateFailed
	})).Return(nil).Once()
	recorder := new(MockUoW)
	recorder.On("OutboxRepository").Return(failedOutbox).Once()

	factory := new(MockOutboxUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(claimer).Once(),
		factory.On("Create").Return(recorder).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("Notify", ctx, delivered).Return(nil).Once()
	notifier.On("Notify", ctx, undeliverable).Return(errors.New("target is empty")).Once()
	mirror := new(MockNotifier)
	mirror.On("Notify", ctx, delivered).Return(errors.New("telegram down")).Once()
	mirror.On("Notify", ctx, undeliverable).Return(nil).Once()

	cmd, err := commands.NewDispatchNotificationsCommand(10)
	require.NoError(t, err)

	h := commands.NewDispatchNotificationsCommandHandler(factory, notifier, mirror)
	res, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "target is empty")
	assert.Contains(t, err.Error(), "telegram down")
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 1, res.Claimed[notification.KindBranchNewOrder])
	assert.Equal(t, 1, res.Claimed[notification.KindCustomerStatusUpdate])
	assert.Equal(t, notification.StateDispatched, delivered.State())
	assert.Equal(t, notification.StateFailed, undeliverable.State())
	assert.Equal(t, "target is empty", undeliverable.LastError())
	recorder.AssertNotCalled(t, "Begin", mock.Anything)
	outbox.AssertExpectations(t)
	failedOutbox.AssertExpectations(t)
	notifier.AssertExpectations(t)
	mirror.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDispatchNotificationsCommandHandler_Handle_ClaimError(t *testing.T) {
	ctx := t.Context()
	outbox := new(MockOutboxRepository)
	outbox.On("ClaimPending", ctx, 5).Return(nil, errors.New("lock timeout"))
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OutboxRepository").Return(outbox)
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	cmd, err := commands.NewDispatchNotificationsCommand(5)
	require.NoError(t, err)

	h := commands.NewDispatchNotificationsCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "lock timeout")
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
