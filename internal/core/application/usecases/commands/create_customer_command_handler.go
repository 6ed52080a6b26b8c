package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/result"
)

// CreateCustomerCommandHandler registers new customers. E-mail addresses are unique:
// registering an address that is already taken yields a failed Result.
//
// Example:
//
//	handler := NewCreateCustomerCommandHandler(uowFactory, publisher, defaults, logger)
//	res, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // storage or publisher failure
//	}
//	if res.IsFailure() {
//	    return respondBadRequest(res.Error())
//	}
//	id := res.Value()
type CreateCustomerCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.DomainEventPublisher
	defaults   Defaults
	logger     *slog.Logger
}

func NewCreateCustomerCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.DomainEventPublisher,
	defaults Defaults,
	logger *slog.Logger,
) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		defaults:   defaults,
		logger:     logger.With("component", "create_customer_handler"),
	}
}

// Handle validates the contact details, checks e-mail uniqueness, persists the new
// customer and publishes CustomerRegistered (plus phone and address events when given).
func (h CreateCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCustomerCommand,
) (result.Result[customer.CustomerID], error) {
	if err := cmd.Validate(); err != nil {
		return result.Result[customer.CustomerID]{}, err
	}

	email, ok, msg := kernel.TryCreateEmail(cmd.Email())
	if !ok {
		h.logger.DebugContext(ctx, "rejected e-mail address", "reason", msg)
		return result.Failure[customer.CustomerID](msg), nil
	}

	phone, err := h.phone(cmd)
	if err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}

	var address *kernel.Address
	if input, ok := cmd.Address(); ok {
		a, err := input.build()
		if err != nil {
			return resolve[customer.CustomerID](ctx, h.logger, err)
		}
		address = &a
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	if _, taken, err := repo.GetByEmail(ctx, email); err != nil || taken {
		if err == nil {
			err = errs.NewObjectAlreadyExistsError("customer email", email.Value())
		}
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}

	c, err := customer.NewCustomer(customer.NewCustomerID(), cmd.FirstName(), cmd.LastName(), email)
	if err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}
	if phone != nil {
		if err = c.ChangePhone(*phone); err != nil {
			return resolve[customer.CustomerID](ctx, h.logger, err)
		}
	}
	if address != nil {
		if err = c.ChangeAddress(*address); err != nil {
			return resolve[customer.CustomerID](ctx, h.logger, err)
		}
	}

	if err = repo.Add(ctx, c); err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}
	if err = uow.Commit(ctx); err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}
	if err = publishAndClear(ctx, h.publisher, c); err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}

	h.logger.InfoContext(ctx, "customer registered", "customer_id", c.ID().String())
	return result.Success(c.ID()), nil
}

func (h CreateCustomerCommandHandler) phone(cmd CreateCustomerCommand) (*kernel.PhoneNumber, error) {
	number, countryCode, ok := cmd.Phone()
	if !ok {
		return nil, nil
	}
	if countryCode == "" {
		countryCode = h.defaults.PhoneCountryCode
	}

	p, err := kernel.NewPhoneNumber(number, countryCode)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
