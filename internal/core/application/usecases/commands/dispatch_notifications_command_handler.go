package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/ports"
)

type DispatchNotificationsResult struct {
	Claimed map[notification.Kind]int
	Sent    int
	Failed  int
}

// DispatchNotificationsCommandHandler delivers outbox messages at most once.
//
// A batch is claimed and marked dispatched in one transaction, so concurrent
// dispatchers never pick the same rows. Sending happens after the commit; a
// failed send is recorded on the message and is not retried. Mirrors receive
// every message as well, but their failures are only reported.
type DispatchNotificationsCommandHandler struct {
	uowFactory OutboxUoWFactory
	notifier   ports.Notifier
	mirrors    []ports.Notifier
}

func NewDispatchNotificationsCommandHandler(
	uowFactory OutboxUoWFactory,
	notifier ports.Notifier,
	mirrors ...ports.Notifier,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		mirrors:    mirrors,
	}
}

func (h *DispatchNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchNotificationsCommand,
) (DispatchNotificationsResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchNotificationsResult{}, err
	}

	claimed, err := h.claim(ctx, cmd.BatchSize())
	if err != nil {
		return DispatchNotificationsResult{}, err
	}

	result := DispatchNotificationsResult{Claimed: make(map[notification.Kind]int)}
	var errList []error
	for _, msg := range claimed {
		result.Claimed[msg.Kind()]++

		for _, mirror := range h.mirrors {
			if err := mirror.Notify(ctx, msg); err != nil {
				errList = append(errList, fmt.Errorf("mirror %s: %w", msg.ID(), err))
			}
		}

		sendErr := h.notifier.Notify(ctx, msg)
		if sendErr == nil {
			result.Sent++
			continue
		}

		result.Failed++
		errList = append(errList, fmt.Errorf("message %s: %w", msg.ID(), sendErr))
		msg.MarkFailed(sendErr)
		if err := h.uowFactory.Create().OutboxRepository().Update(ctx, msg); err != nil {
			errList = append(errList, fmt.Errorf("record failure of %s: %w", msg.ID(), err))
		}
	}

	return result, errors.Join(errList...)
}

func (h *DispatchNotificationsCommandHandler) claim(ctx context.Context, limit int) ([]*notification.Message, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	messages, err := outbox.ClaimPending(ctx, limit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, msg := range messages {
		if err = msg.MarkDispatched(now); err != nil {
			return nil, err
		}
		if err = outbox.Update(ctx, msg); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return messages, nil
}
