package commands

import (
	"context"
)

// CompleteManifestCommandHandler handles manifest completion.
// Completion fails with IncompleteStopsError while unresolved stops remain,
// which the transport maps to a conflict response.
type CompleteManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewCompleteManifestCommandHandler creates a handler for manifest completion.
func NewCompleteManifestCommandHandler(uowFactory ManifestUoWFactory) CompleteManifestCommandHandler {
	return CompleteManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompleteManifestCommandHandler) Handle(ctx context.Context, cmd CompleteManifestCommand) error {
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

	if err = aggregate.Complete(); err != nil {
		return err
	}

	if err = manifestRepo.UpdateStatus(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
