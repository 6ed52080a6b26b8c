package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) GetByID(ctx context.Context, id customer.CustomerID) (*customer.Customer, bool, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Bool(1), args.Error(2)
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]*customer.Customer)
	return cs, args.Error(1)
}

func (m *MockCustomerRepository) Find(ctx context.Context, predicate func(*customer.Customer) bool) ([]*customer.Customer, error) {
	args := m.Called(ctx, predicate)
	cs, _ := args.Get(0).([]*customer.Customer)
	return cs, args.Error(1)
}

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id customer.CustomerID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerRepository) Exists(ctx context.Context, id customer.CustomerID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, bool, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Bool(1), args.Error(2)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) GetByID(ctx context.Context, id order.OrderID) (*order.Order, bool, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Bool(1), args.Error(2)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*order.Order)
	return list, args.Error(1)
}

func (m *MockOrderRepository) Find(ctx context.Context, predicate func(*order.Order) bool) ([]*order.Order, error) {
	args := m.Called(ctx, predicate)
	list, _ := args.Get(0).([]*order.Order)
	return list, args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id order.OrderID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id order.OrderID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, id customer.CustomerID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).([]*order.Order)
	return list, args.Error(1)
}

type MockUoW struct {
	mock.Mock
	customers *MockCustomerRepository
	orders    *MockOrderRepository
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.customers
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	return m.Called().Get(0).(ports.UnitOfWork)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}

// harness bundles the mocks every handler test needs.
type harness struct {
	customers *MockCustomerRepository
	orders    *MockOrderRepository
	uow       *MockUoW
	factory   *MockUoWFactory
	publisher *MockPublisher
	logger    *slog.Logger
}

func newHarness() *harness {
	h := &harness{
		customers: new(MockCustomerRepository),
		orders:    new(MockOrderRepository),
		factory:   new(MockUoWFactory),
		publisher: new(MockPublisher),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	h.uow = &MockUoW{customers: h.customers, orders: h.orders}
	h.factory.On("Create").Return(h.uow).Maybe()
	return h
}

// expectTx sets up a transaction that begins, commits and is rolled back by the deferred call.
func (h *harness) expectTx(ctx context.Context) {
	h.uow.On("Begin", ctx).Return(nil).Once()
	h.uow.On("Commit", ctx).Return(nil).Once()
	h.uow.On("Rollback", ctx).Return(nil).Once()
}

// expectAbortedTx sets up a transaction that begins and is rolled back without commit.
func (h *harness) expectAbortedTx(ctx context.Context) {
	h.uow.On("Begin", ctx).Return(nil).Once()
	h.uow.On("Rollback", ctx).Return(nil).Once()
}

func (h *harness) assertExpectations(t *testing.T) {
	t.Helper()
	h.customers.AssertExpectations(t)
	h.orders.AssertExpectations(t)
	h.uow.AssertExpectations(t)
	h.publisher.AssertExpectations(t)
}

func eventNames(events []kernel.DomainEvent) []string {
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.EventName())
	}
	return names
}

func publishedNames(want ...string) any {
	return mock.MatchedBy(func(events []kernel.DomainEvent) bool {
		got := eventNames(events)
		if len(got) != len(want) {
			return false
		}
		for i := range got {
			if got[i] != want[i] {
				return false
			}
		}
		return true
	})
}

func mustEmail(t *testing.T, s string) kernel.Email {
	t.Helper()
	e, err := kernel.NewEmail(s)
	require.NoError(t, err)
	return e
}

func existingCustomer(t *testing.T, email string, status customer.Status) *customer.Customer {
	t.Helper()
	c, err := customer.RestoreCustomer(customer.NewCustomerID(), "Ada", "Lovelace", mustEmail(t, email), nil, nil, status)
	require.NoError(t, err)
	return c
}

func validAddressInput() commands.AddressInput {
	return commands.AddressInput{
		Street:     "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Country:    "USA",
	}
}

func existingOrder(t *testing.T, customerID customer.CustomerID, status order.Status) *order.Order {
	t.Helper()
	address, err := kernel.NewAddress("1 Main St", "Springfield", "IL", "62701", "USA")
	require.NoError(t, err)
	price, err := kernel.NewMoneyFromString("9.99", "USD")
	require.NoError(t, err)
	item, err := order.NewLineItem("Notebook", price, 1)
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.NewOrderID(), customerID, address, "USD", []order.LineItem{item}, status, "")
	require.NoError(t, err)
	return o
}
