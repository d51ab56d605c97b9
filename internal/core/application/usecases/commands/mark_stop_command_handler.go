package commands

import (
	"context"
	"time"
)

// MarkStopCommandHandler handles stop resolution on manifests.
type MarkStopCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewMarkStopCommandHandler creates a handler for stop resolution.
func NewMarkStopCommandHandler(uowFactory ManifestUoWFactory) MarkStopCommandHandler {
	return MarkStopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stop resolution command.
// Persists the stop's new state and, when this was the first resolution, the
// manifest's move to in progress.
func (h *MarkStopCommandHandler) Handle(ctx context.Context, cmd MarkStopCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	manifestRepo := uow.ManifestRepository()
	aggregate, err := manifestRepo.Get(ctx, cmd.ManifestID())
	if err != nil {
		return err
	}

	statusBefore := aggregate.Status()
	stop, err := aggregate.MarkStop(cmd.StopID(), cmd.Status(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = manifestRepo.UpdateStop(ctx, stop); err != nil {
		return err
	}
	if aggregate.Status() != statusBefore {
		if err = manifestRepo.UpdateStatus(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
