package commands_test

import (
	"testing"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/manifest"
	"laundryops/internal/core/ports"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var manifestDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestGenerateManifestCommandHandler_Handle_CreatesNewManifest(t *testing.T) {
	ctx := t.Context()
	unitID := kernel.NewUUID()
	routeID := kernel.NewUUID()
	cmd, err := commands.NewGenerateManifestCommand(unitID, routeID, manifestDate)
	require.NoError(t, err)

	routes := new(MockRouteProvider)
	routes.On("GetStops", ctx, routeID).Return([]ports.RouteStop{
		{ClientID: kernel.NewUUID(), Position: 1},
		{ClientID: kernel.NewUUID(), Position: 2},
	}, nil).Once()

	repo := new(MockManifestRepository)
	uow := new(MockManifestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManifestRepository").Return(repo).Once(),
		repo.On("GetByRouteAndDate", mock.Anything, routeID, manifestDate).
			Return(nil, errs.NewObjectNotFoundError("routeId", routeID.String())).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*manifest.Manifest")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateManifestCommandHandler(factory, routes)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, manifest.StatusPending, created.Status())
	require.Len(t, created.Stops(), 2)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	routes.AssertExpectations(t)
}

func TestGenerateManifestCommandHandler_Handle_ExistingManifestIsKept(t *testing.T) {
	ctx := t.Context()
	unitID := kernel.NewUUID()
	routeID := kernel.NewUUID()
	cmd, err := commands.NewGenerateManifestCommand(unitID, routeID, manifestDate)
	require.NoError(t, err)

	stop, err := manifest.NewStop(kernel.NewUUID(), kernel.NewUUID(), 1)
	require.NoError(t, err)
	existing, err := manifest.NewManifest(kernel.NewUUID(), unitID, routeID, manifestDate, []*manifest.Stop{stop})
	require.NoError(t, err)

	routes := new(MockRouteProvider)
	routes.On("GetStops", ctx, routeID).Return([]ports.RouteStop{
		{ClientID: stop.ClientID(), Position: 1},
	}, nil).Once()

	repo := new(MockManifestRepository)
	uow := new(MockManifestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManifestRepository").Return(repo).Once(),
		repo.On("GetByRouteAndDate", mock.Anything, routeID, manifestDate).Return(existing, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateManifestCommandHandler(factory, routes)
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Same(t, existing, got)
	repo.AssertNotCalled(t, "AddStops", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestGenerateManifestCommandHandler_Handle_AddsNewTemplateStops(t *testing.T) {
	ctx := t.Context()
	unitID := kernel.NewUUID()
	routeID := kernel.NewUUID()
	cmd, err := commands.NewGenerateManifestCommand(unitID, routeID, manifestDate)
	require.NoError(t, err)

	stop, err := manifest.NewStop(kernel.NewUUID(), kernel.NewUUID(), 1)
	require.NoError(t, err)
	existing, err := manifest.NewManifest(kernel.NewUUID(), unitID, routeID, manifestDate, []*manifest.Stop{stop})
	require.NoError(t, err)

	routes := new(MockRouteProvider)
	routes.On("GetStops", ctx, routeID).Return([]ports.RouteStop{
		{ClientID: stop.ClientID(), Position: 1},
		{ClientID: kernel.NewUUID(), Position: 2},
	}, nil).Once()

	repo := new(MockManifestRepository)
	uow := new(MockManifestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManifestRepository").Return(repo).Once(),
		repo.On("GetByRouteAndDate", mock.Anything, routeID, manifestDate).Return(existing, nil).Once(),
		repo.On("AddStops", mock.Anything, existing.ID(), mock.MatchedBy(func(stops []*manifest.Stop) bool {
			return len(stops) == 1 && stops[0].Position() == 2
		})).Return(nil).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateManifestCommandHandler(factory, routes)
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
