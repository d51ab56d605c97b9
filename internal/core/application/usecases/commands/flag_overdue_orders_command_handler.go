package commands

import (
	"context"
	"fmt"
	"strings"

	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/services"
)

const overdueAlertPrefix = "promise deadline missed"

// FlagOverdueOrdersCommandHandler runs the overdue sweep.
// Orders already carrying an overdue alert are skipped, so an order that
// stays late across many sweeps is flagged exactly once.
type FlagOverdueOrdersCommandHandler struct {
	uowFactory   OrderUoWFactory
	slaEvaluator services.SlaEvaluator
}

// NewFlagOverdueOrdersCommandHandler creates a handler for the overdue sweep.
func NewFlagOverdueOrdersCommandHandler(uowFactory OrderUoWFactory) FlagOverdueOrdersCommandHandler {
	return FlagOverdueOrdersCommandHandler{
		uowFactory:   uowFactory,
		slaEvaluator: services.NewSlaEvaluator(),
	}
}

// Handle processes one sweep run and returns how many orders were flagged.
func (h *FlagOverdueOrdersCommandHandler) Handle(ctx context.Context, cmd FlagOverdueOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	overdue, err := orderRepo.GetActiveBefore(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	flagged := 0
	for _, aggregate := range overdue {
		if hasOverdueAlert(aggregate) {
			continue
		}

		classification := h.slaEvaluator.Classify(aggregate.PromisedAt(), cmd.Now())
		notes := fmt.Sprintf("%s: %s", overdueAlertPrefix, classification.Label)
		if _, err = aggregate.AppendEvent(aggregate.Status(), order.EventAlert, nil, notes, cmd.Now()); err != nil {
			return 0, err
		}

		if err = orderRepo.AppendEvents(ctx, aggregate); err != nil {
			return 0, err
		}
		flagged++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return flagged, nil
}

func hasOverdueAlert(aggregate *order.Order) bool {
	for _, event := range aggregate.Events() {
		if event.EventType() == order.EventAlert && strings.HasPrefix(event.Notes(), overdueAlertPrefix) {
			return true
		}
	}
	return false
}
