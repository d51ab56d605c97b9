package commands

import (
	"context"
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/manifest"
	"laundryops/internal/core/ports"
	"laundryops/internal/pkg/errs"
)

// GenerateManifestCommandHandler instantiates daily manifests from route
// templates. Used both by the scheduled morning job and by manual regeneration
// from the back office.
type GenerateManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
	routes     ports.RouteProvider
}

// NewGenerateManifestCommandHandler creates a handler for manifest generation.
// Requires a RouteProvider for the stop templates.
func NewGenerateManifestCommandHandler(
	uowFactory ManifestUoWFactory,
	routes ports.RouteProvider,
) GenerateManifestCommandHandler {
	return GenerateManifestCommandHandler{
		uowFactory: uowFactory,
		routes:     routes,
	}
}

// Handle processes the generation command.
// If no manifest exists for (route, date) one is created with the route's
// template stops. If one already exists, only stops at positions the manifest
// does not cover yet are added; resolved work is never disturbed. Losing a
// concurrent insert race degrades to the regeneration path.
func (h *GenerateManifestCommandHandler) Handle(ctx context.Context, cmd GenerateManifestCommand) (*manifest.Manifest, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	templateStops, err := h.routes.GetStops(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	manifestRepo := uow.ManifestRepository()

	existing, err := manifestRepo.GetByRouteAndDate(ctx, cmd.RouteID(), cmd.Date())
	switch {
	case err == nil:
		existing, err = h.fillMissingStops(ctx, manifestRepo, existing, templateStops)
	case errors.Is(err, errs.ErrObjectNotFound):
		existing, err = h.createManifest(ctx, manifestRepo, cmd, templateStops)
	default:
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}

func (h *GenerateManifestCommandHandler) createManifest(
	ctx context.Context,
	manifestRepo ports.ManifestRepository,
	cmd GenerateManifestCommand,
	templateStops []ports.RouteStop,
) (*manifest.Manifest, error) {
	stops := make([]*manifest.Stop, 0, len(templateStops))
	for _, template := range templateStops {
		stop, err := manifest.NewStop(kernel.NewUUID(), template.ClientID, template.Position)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}

	aggregate, err := manifest.NewManifest(
		kernel.NewUUID(),
		cmd.UnitID(),
		cmd.RouteID(),
		cmd.Date(),
		stops,
	)
	if err != nil {
		return nil, err
	}

	if err = manifestRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}
	return aggregate, nil
}

func (h *GenerateManifestCommandHandler) fillMissingStops(
	ctx context.Context,
	manifestRepo ports.ManifestRepository,
	aggregate *manifest.Manifest,
	templateStops []ports.RouteStop,
) (*manifest.Manifest, error) {
	missing := make([]*manifest.Stop, 0)
	for _, template := range templateStops {
		if aggregate.HasStopAtPosition(template.Position) {
			continue
		}
		stop, err := manifest.NewStop(kernel.NewUUID(), template.ClientID, template.Position)
		if err != nil {
			return nil, err
		}
		missing = append(missing, stop)
	}

	if len(missing) == 0 {
		return aggregate, nil
	}

	if err := manifestRepo.AddStops(ctx, aggregate.ID(), missing); err != nil {
		return nil, err
	}
	return manifestRepo.Get(ctx, aggregate.ID())
}
