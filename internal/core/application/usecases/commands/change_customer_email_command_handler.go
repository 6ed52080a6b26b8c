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

// ChangeCustomerEmailCommandHandler moves a customer to a new e-mail address.
// The address must not belong to another customer; changing to the current address
// succeeds without recording an event.
type ChangeCustomerEmailCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.DomainEventPublisher
	logger     *slog.Logger
}

func NewChangeCustomerEmailCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.DomainEventPublisher,
	logger *slog.Logger,
) ChangeCustomerEmailCommandHandler {
	return ChangeCustomerEmailCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "change_customer_email_handler"),
	}
}

func (h ChangeCustomerEmailCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeCustomerEmailCommand,
) (result.Result[customer.CustomerID], error) {
	if err := cmd.Validate(); err != nil {
		return result.Result[customer.CustomerID]{}, err
	}

	email, ok, msg := kernel.TryCreateEmail(cmd.Email())
	if !ok {
		h.logger.DebugContext(ctx, "rejected e-mail address", "reason", msg)
		return result.Failure[customer.CustomerID](msg), nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	c, found, err := repo.GetByID(ctx, cmd.CustomerID())
	if err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}
	if !found {
		return resolve[customer.CustomerID](ctx, h.logger, errs.NewObjectNotFoundError("customer", cmd.CustomerID()))
	}

	owner, taken, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}
	if taken && !owner.IsEqual(c) {
		return resolve[customer.CustomerID](ctx, h.logger, errs.NewObjectAlreadyExistsError("customer email", email.Value()))
	}

	if err = c.ChangeEmail(email); err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}
	if len(c.DomainEvents()) == 0 {
		return result.Success(c.ID()), nil
	}

	if err = repo.Update(ctx, c); err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}
	if err = uow.Commit(ctx); err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}
	if err = publishAndClear(ctx, h.publisher, c); err != nil {
		return resolve[customer.CustomerID](ctx, h.logger, err)
	}

	h.logger.InfoContext(ctx, "customer e-mail changed", "customer_id", c.ID().String())
	return result.Success(c.ID()), nil
}
