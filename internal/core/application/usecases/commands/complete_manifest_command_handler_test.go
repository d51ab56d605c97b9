package commands_test

import (
	"testing"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/manifest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteManifestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredManifest(t, 1)
	_, err := stored.MarkStop(stored.Stops()[0].ID(), manifest.StopVisited, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewCompleteManifestCommand(stored.ID())
	require.NoError(t, err)

	repo := new(MockManifestRepository)
	uow := new(MockManifestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManifestRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("UpdateStatus", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteManifestCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, manifest.StatusCompleted, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteManifestCommandHandler_Handle_PendingStopsBlock(t *testing.T) {
	ctx := t.Context()
	stored := newStoredManifest(t, 2)

	cmd, err := commands.NewCompleteManifestCommand(stored.ID())
	require.NoError(t, err)

	repo := new(MockManifestRepository)
	uow := new(MockManifestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManifestRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteManifestCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, manifest.ErrIncompleteStops)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}
