package commands_test

import (
	"context"
	"errors"
	"testing"

	"packnow/internal/core/application/usecases/commands"
	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/material"
	"packnow/internal/core/domain/model/packer"
	"packnow/internal/core/ports"
	"packnow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRestockPackerRepository struct{ mock.Mock }

func (m *MockRestockPackerRepository) Add(ctx context.Context, p *packer.Packer) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRestockPackerRepository) Update(ctx context.Context, p *packer.Packer) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRestockPackerRepository) Get(ctx context.Context, id kernel.UUID) (*packer.Packer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*packer.Packer), args.Error(1)
}

func (m *MockRestockPackerRepository) GetAllAvailable(ctx context.Context) ([]*packer.Packer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*packer.Packer), args.Error(1)
}

type MockRestockUoW struct{ mock.Mock }

func (m *MockRestockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestockUoW) PackerRepository() ports.PackerRepository {
	args := m.Called()
	return args.Get(0).(ports.PackerRepository)
}

type MockRestockUoWFactory struct{ mock.Mock }

func (m *MockRestockUoWFactory) Create() commands.PackerUoW {
	args := m.Called()
	return args.Get(0).(commands.PackerUoW)
}

const restockLowStockThreshold = 10

func newRestockPacker(t *testing.T, inventory packer.Inventory, available bool) *packer.Packer {
	t.Helper()

	location, err := kernel.NewGeoPoint(19.076, 72.8777)
	require.NoError(t, err)
	restocked, err := packer.RestorePacker(kernel.NewUUID(), "Asha", location, inventory, available, 4.5)
	require.NoError(t, err)

	return restocked
}

func TestRestockPackerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testPacker := newRestockPacker(t, packer.Inventory{
		material.BubbleWrap:  2,
		material.PackingTape: 3,
	}, false)

	cmd, err := commands.NewRestockPackerCommand(testPacker.ID(), map[string]int{
		material.BubbleWrap:  50,
		material.PackingTape: 20,
	})
	require.NoError(t, err)

	packerRepo := new(MockRestockPackerRepository)
	uow := new(MockRestockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackerRepository").Return(packerRepo).Once(),
		packerRepo.On("Get", ctx, testPacker.ID()).Return(testPacker, nil).Once(),
		packerRepo.On("Update", ctx, mock.AnythingOfType("*packer.Packer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRestockPackerCommandHandler(factory, restockLowStockThreshold)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	packerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)

	// Stock added and availability restored now that nothing is low
	updatedPacker := packerRepo.Calls[1].Arguments[1].(*packer.Packer)
	assert.Equal(t, 52, updatedPacker.Inventory()[material.BubbleWrap])
	assert.Equal(t, 23, updatedPacker.Inventory()[material.PackingTape])
	assert.True(t, updatedPacker.IsAvailable())
}

func TestRestockPackerCommandHandler_Handle_StaysUnavailableWhenStillLow(t *testing.T) {
	ctx := t.Context()

	testPacker := newRestockPacker(t, packer.Inventory{
		material.BubbleWrap:  2,
		material.PackingTape: 3,
	}, false)

	// Only one material is topped up; the other stays below the threshold
	cmd, err := commands.NewRestockPackerCommand(testPacker.ID(), map[string]int{
		material.BubbleWrap: 50,
	})
	require.NoError(t, err)

	packerRepo := new(MockRestockPackerRepository)
	uow := new(MockRestockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackerRepository").Return(packerRepo).Once(),
		packerRepo.On("Get", ctx, testPacker.ID()).Return(testPacker, nil).Once(),
		packerRepo.On("Update", ctx, mock.AnythingOfType("*packer.Packer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRestockPackerCommandHandler(factory, restockLowStockThreshold)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	updatedPacker := packerRepo.Calls[1].Arguments[1].(*packer.Packer)
	assert.Equal(t, 52, updatedPacker.Inventory()[material.BubbleWrap])
	assert.Equal(t, 3, updatedPacker.Inventory()[material.PackingTape])
	assert.False(t, updatedPacker.IsAvailable())
}

func TestRestockPackerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RestockPackerCommand{} // not constructed properly

	factory := new(MockRestockUoWFactory)
	handler := commands.NewRestockPackerCommandHandler(factory, restockLowStockThreshold)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRestockPackerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRestockPackerCommandHandler_Handle_NoPackerFound(t *testing.T) {
	ctx := t.Context()
	packerID := kernel.NewUUID()
	cmd, err := commands.NewRestockPackerCommand(packerID, map[string]int{material.BubbleWrap: 50})
	require.NoError(t, err)

	packerRepo := new(MockRestockPackerRepository)
	uow := new(MockRestockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackerRepository").Return(packerRepo).Once(),
		packerRepo.On("Get", ctx, packerID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRestockPackerCommandHandler(factory, restockLowStockThreshold)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoPackerFound)
}

func TestRestockPackerCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRestockPackerCommand(kernel.NewUUID(), map[string]int{material.BubbleWrap: 50})
	require.NoError(t, err)

	uow := new(MockRestockUoW)
	factory := new(MockRestockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewRestockPackerCommandHandler(factory, restockLowStockThreshold)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestRestockPackerCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()

	testPacker := newRestockPacker(t, packer.Inventory{material.BubbleWrap: 2}, false)
	cmd, err := commands.NewRestockPackerCommand(testPacker.ID(), map[string]int{material.BubbleWrap: 50})
	require.NoError(t, err)

	packerRepo := new(MockRestockPackerRepository)
	uow := new(MockRestockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackerRepository").Return(packerRepo).Once(),
		packerRepo.On("Get", ctx, testPacker.ID()).Return(testPacker, nil).Once(),
		packerRepo.On("Update", ctx, mock.AnythingOfType("*packer.Packer")).
			Return(errors.New("update error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRestockPackerCommandHandler(factory, restockLowStockThreshold)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "update error")
}

func TestRestockPackerCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	testPacker := newRestockPacker(t, packer.Inventory{material.BubbleWrap: 2}, false)
	cmd, err := commands.NewRestockPackerCommand(testPacker.ID(), map[string]int{material.BubbleWrap: 50})
	require.NoError(t, err)

	packerRepo := new(MockRestockPackerRepository)
	uow := new(MockRestockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackerRepository").Return(packerRepo).Once(),
		packerRepo.On("Get", ctx, testPacker.ID()).Return(testPacker, nil).Once(),
		packerRepo.On("Update", ctx, mock.AnythingOfType("*packer.Packer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRestockPackerCommandHandler(factory, restockLowStockThreshold)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
