package commands_test

import (
	"testing"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/manifest"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoredManifest(t *testing.T, stopCount int) *manifest.Manifest {
	t.Helper()

	stops := make([]*manifest.Stop, 0, stopCount)
	for i := 1; i <= stopCount; i++ {
		stop, err := manifest.NewStop(kernel.NewUUID(), kernel.NewUUID(), i)
		require.NoError(t, err)
		stops = append(stops, stop)
	}

	m, err := manifest.NewManifest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), stops)
	require.NoError(t, err)
	return m
}

func TestMarkStopCommandHandler_Handle_FirstResolutionMovesManifest(t *testing.T) {
	ctx := t.Context()
	stored := newStoredManifest(t, 2)
	stopID := stored.Stops()[0].ID()
	cmd, err := commands.NewMarkStopCommand(stored.ID(), stopID, manifest.StopVisited)
	require.NoError(t, err)

	repo := new(MockManifestRepository)
	uow := new(MockManifestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManifestRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("UpdateStop", mock.Anything, stored.Stops()[0]).Return(nil).Once(),
		repo.On("UpdateStatus", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkStopCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, manifest.StatusInProgress, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkStopCommandHandler_Handle_RemarkSkipsStatusWrite(t *testing.T) {
	ctx := t.Context()
	stored := newStoredManifest(t, 2)
	stopID := stored.Stops()[0].ID()
	_, err := stored.MarkStop(stopID, manifest.StopVisited, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewMarkStopCommand(stored.ID(), stopID, manifest.StopSkipped)
	require.NoError(t, err)

	repo := new(MockManifestRepository)
	uow := new(MockManifestUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManifestRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("UpdateStop", mock.Anything, stored.Stops()[0]).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkStopCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestMarkStopCommandHandler_Handle_UnknownStop(t *testing.T) {
	ctx := t.Context()
	stored := newStoredManifest(t, 1)
	cmd, err := commands.NewMarkStopCommand(stored.ID(), kernel.NewUUID(), manifest.StopVisited)
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

	h := commands.NewMarkStopCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
}

func TestNewMarkStopCommand_PendingIsNotATarget(t *testing.T) {
	_, err := commands.NewMarkStopCommand(kernel.NewUUID(), kernel.NewUUID(), manifest.StopPending)
	require.Error(t, err)
}
