package commands_test

import (
	"context"
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testDefaults = commands.Defaults{Currency: "USD", PhoneCountryCode: "+1"}

func TestCreateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	cmd, err := commands.NewCreateCustomerCommand("Ada", "Lovelace", "Ada@Example.com")
	require.NoError(t, err)
	cmd = cmd.WithPhone("555-123-4567", "").WithAddress(validAddressInput())

	var added *customer.Customer
	h.expectTx(ctx)
	h.customers.On("GetByEmail", ctx, mustEmail(t, "ada@example.com")).Return(nil, false, nil).Once()
	h.customers.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).
		Run(func(args mock.Arguments) { added = args.Get(1).(*customer.Customer) }).
		Return(nil).Once()
	h.publisher.On("Publish", ctx, publishedNames(
		customer.EventCustomerRegistered,
		customer.EventCustomerPhoneChanged,
		customer.EventCustomerAddressChanged,
	)).Return(nil).Once()

	handler := commands.NewCreateCustomerCommandHandler(h.factory, h.publisher, testDefaults, h.logger)
	res, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, res.IsSuccess(), res.Error())
	require.NotNil(t, added)
	assert.True(t, res.Value().Equals(added.ID()))
	assert.Equal(t, "ada@example.com", added.Email().Value())
	phone, ok := added.Phone()
	require.True(t, ok)
	assert.Equal(t, "+1", phone.CountryCode())
	assert.Empty(t, added.DomainEvents(), "events are cleared after publishing")
	h.assertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_InvalidEmail(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	cmd, _ := commands.NewCreateCustomerCommand("Ada", "Lovelace", "not-an-email")

	handler := commands.NewCreateCustomerCommandHandler(h.factory, h.publisher, testDefaults, h.logger)
	res, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, res.IsFailure())
	assert.Contains(t, res.Error(), "email")
	h.factory.AssertNotCalled(t, "Create")
}

func TestCreateCustomerCommandHandler_Handle_InvalidPhone(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	cmd, _ := commands.NewCreateCustomerCommand("Ada", "Lovelace", "ada@example.com")
	cmd = cmd.WithPhone("12345", "+1")

	handler := commands.NewCreateCustomerCommandHandler(h.factory, h.publisher, testDefaults, h.logger)
	res, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, res.IsFailure())
	assert.Contains(t, res.Error(), errs.ErrValueIsOutOfRange.Error())
	h.factory.AssertNotCalled(t, "Create")
}

func TestCreateCustomerCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	cmd, _ := commands.NewCreateCustomerCommand("Ada", "Lovelace", "ada@example.com")
	existing := existingCustomer(t, "ada@example.com", customer.Active)

	h.expectAbortedTx(ctx)
	h.customers.On("GetByEmail", ctx, existing.Email()).Return(existing, true, nil).Once()

	handler := commands.NewCreateCustomerCommandHandler(h.factory, h.publisher, testDefaults, h.logger)
	res, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, res.IsFailure())
	assert.Contains(t, res.Error(), errs.ErrObjectAlreadyExists.Error())
	h.customers.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	h.assertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_InfrastructureErrors(t *testing.T) {
	t.Run("begin", func(t *testing.T) {
		ctx := context.Background()
		h := newHarness()
		cmd, _ := commands.NewCreateCustomerCommand("Ada", "Lovelace", "ada@example.com")
		beginErr := errors.New("begin error")
		h.uow.On("Begin", ctx).Return(beginErr).Once()

		handler := commands.NewCreateCustomerCommandHandler(h.factory, h.publisher, testDefaults, h.logger)
		_, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, beginErr)
		h.assertExpectations(t)
	})

	t.Run("add", func(t *testing.T) {
		ctx := context.Background()
		h := newHarness()
		cmd, _ := commands.NewCreateCustomerCommand("Ada", "Lovelace", "ada@example.com")
		addErr := errors.New("add error")
		h.expectAbortedTx(ctx)
		h.customers.On("GetByEmail", ctx, mock.Anything).Return(nil, false, nil).Once()
		h.customers.On("Add", ctx, mock.Anything).Return(addErr).Once()

		handler := commands.NewCreateCustomerCommandHandler(h.factory, h.publisher, testDefaults, h.logger)
		_, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, addErr)
		h.assertExpectations(t)
	})

	t.Run("commit", func(t *testing.T) {
		ctx := context.Background()
		h := newHarness()
		cmd, _ := commands.NewCreateCustomerCommand("Ada", "Lovelace", "ada@example.com")
		commitErr := errors.New("commit error")
		h.uow.On("Begin", ctx).Return(nil).Once()
		h.uow.On("Commit", ctx).Return(commitErr).Once()
		h.uow.On("Rollback", ctx).Return(nil).Once()
		h.customers.On("GetByEmail", ctx, mock.Anything).Return(nil, false, nil).Once()
		h.customers.On("Add", ctx, mock.Anything).Return(nil).Once()

		handler := commands.NewCreateCustomerCommandHandler(h.factory, h.publisher, testDefaults, h.logger)
		_, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commitErr)
		h.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		h.assertExpectations(t)
	})

	t.Run("publish keeps the events for a retry", func(t *testing.T) {
		ctx := context.Background()
		h := newHarness()
		cmd, _ := commands.NewCreateCustomerCommand("Ada", "Lovelace", "ada@example.com")
		publishErr := errors.New("broker unavailable")
		var added *customer.Customer
		h.expectTx(ctx)
		h.customers.On("GetByEmail", ctx, mock.Anything).Return(nil, false, nil).Once()
		h.customers.On("Add", ctx, mock.Anything).
			Run(func(args mock.Arguments) { added = args.Get(1).(*customer.Customer) }).
			Return(nil).Once()
		h.publisher.On("Publish", ctx, mock.Anything).Return(publishErr).Once()

		handler := commands.NewCreateCustomerCommandHandler(h.factory, h.publisher, testDefaults, h.logger)
		_, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, publishErr)
		assert.Len(t, added.DomainEvents(), 1)
		h.assertExpectations(t)
	})
}

func TestCreateCustomerCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := newHarness()
	handler := commands.NewCreateCustomerCommandHandler(h.factory, h.publisher, testDefaults, h.logger)

	_, err := handler.Handle(context.Background(), commands.CreateCustomerCommand{})

	require.ErrorIs(t, err, commands.ErrCreateCustomerCommandIsNotConstructed)
}
