package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picklist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartPickListCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	list := newOpenList(t, 1, 10)

	cmd, err := commands.NewStartPickListCommand(list.ID(), "team-tunnel-3")
	require.NoError(t, err)

	listRepo := new(MockPickListRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickListRepository").Return(listRepo).Once(),
		listRepo.On("Get", ctx, list.ID()).Return(list, nil).Once(),
		listRepo.On("Update", ctx, list).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickListUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartPickListCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, picklist.InProgress, list.Status())
	assert.Equal(t, "team-tunnel-3", list.AssignedTo())
	uow.AssertExpectations(t)
}

func TestStartPickListCommandHandler_Handle_KeepsFirstAssignee(t *testing.T) {
	ctx := t.Context()
	list := newOpenList(t, 1, 10)
	require.NoError(t, list.Start("team-a"))

	cmd, err := commands.NewStartPickListCommand(list.ID(), "team-b")
	require.NoError(t, err)

	listRepo := new(MockPickListRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PickListRepository").Return(listRepo).Once()
	listRepo.On("Get", ctx, list.ID()).Return(list, nil).Once()
	listRepo.On("Update", ctx, list).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPickListUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartPickListCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "team-a", list.AssignedTo())
}

func TestNewStartPickListCommand_RequiresAssignee(t *testing.T) {
	_, err := commands.NewStartPickListCommand(kernel.NewUUID(), "")

	require.ErrorIs(t, err, commands.ErrAssigneeIsRequired)
}
