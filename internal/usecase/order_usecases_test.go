package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/example/customer-page-service/internal/adapter/cache"
	"github.com/example/customer-page-service/internal/domain"
	"github.com/example/customer-page-service/internal/domain/mocks"
)

var customer = domain.Customer{ID: 42, Email: "spencor.hopkin@spryker.com"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type OrderUsecasesSuite struct {
	suite.Suite
	ctx       context.Context
	sales     *mocks.MockSalesClient
	shipments *mocks.MockShipmentGrouper
	expander  *mocks.MockShipmentGroupExpander
	customers *mocks.MockCustomerClient
	defaults  domain.OrderListDefaults
}

func TestOrderUsecasesSuite(t *testing.T) {
	suite.Run(t, new(OrderUsecasesSuite))
}

func (s *OrderUsecasesSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = context.Background()
	s.sales = mocks.NewMockSalesClient(ctrl)
	s.shipments = mocks.NewMockShipmentGrouper(ctrl)
	s.expander = mocks.NewMockShipmentGroupExpander(ctrl)
	s.customers = mocks.NewMockCustomerClient(ctrl)
	s.defaults = domain.OrderListDefaults{
		SortField:     "created_at",
		SortDirection: "DESC",
		PerPage:       10,
		ItemsVisible:  true,
	}
}

func (s *OrderUsecasesSuite) listUC() GetOrderList {
	return GetOrderList{Sales: s.sales, Defaults: s.defaults}
}

func (s *OrderUsecasesSuite) detailsUC() GetOrderDetails {
	return GetOrderDetails{Sales: s.sales, Shipments: s.shipments, Expander: s.expander, Logger: discardLogger()}
}

func (s *OrderUsecasesSuite) TestOrderListOverviewUsesDefaults() {
	want := domain.OrderListQuery{
		Filter:     domain.Filter{OrderBy: "created_at", OrderDirection: "DESC"},
		Pagination: domain.Pagination{Page: 1, MaxPerPage: 10},
		Format:     domain.OrderListFormat{ExpandWithItems: false},
		Customer:   customer,
		CustomerID: 42,
	}
	list := domain.OrderList{Pagination: domain.Pagination{Page: 1}}
	s.sales.EXPECT().GetPaginatedCustomerOrdersOverview(gomock.Any(), want).Return(list, nil)

	got, err := s.listUC().Execute(s.ctx, customer, ListParams{}, OverviewStrategy)

	s.Require().NoError(err)
	s.Equal(list, got)
}

func (s *OrderUsecasesSuite) TestOrderListSearchExpandsItems() {
	s.sales.EXPECT().SearchOrders(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.OrderListQuery) (domain.OrderList, error) {
			s.True(q.Format.ExpandWithItems)
			s.Equal(3, q.Pagination.Page)
			s.Equal(25, q.Pagination.MaxPerPage)
			return domain.OrderList{}, nil
		})

	_, err := s.listUC().Execute(s.ctx, customer, ListParams{Page: 3, PerPage: 25}, SearchStrategy)

	s.Require().NoError(err)
}

func (s *OrderUsecasesSuite) TestOrderListSearchWithoutVisibleItems() {
	s.defaults.ItemsVisible = false

	q := s.listUC().Query(customer, ListParams{}, SearchStrategy)

	s.False(q.Format.ExpandWithItems)
}

func (s *OrderUsecasesSuite) TestOrderListPropagatesSalesError() {
	boom := errors.New("sales unavailable")
	s.sales.EXPECT().SearchOrders(gomock.Any(), gomock.Any()).Return(domain.OrderList{}, boom)

	_, err := s.listUC().Execute(s.ctx, customer, ListParams{}, SearchStrategy)

	s.ErrorIs(err, boom)
}

func (s *OrderUsecasesSuite) TestOrderDetailsNotFoundSkipsGrouping() {
	s.sales.EXPECT().
		GetOrderDetails(gomock.Any(), domain.OrderDetailsRequest{OrderID: 5, CustomerID: 42}).
		Return(domain.Order{}, nil)
	// grouping and expander mocks have no expectations: any call fails the test

	_, err := s.detailsUC().Execute(s.ctx, customer, 5)

	s.Require().ErrorIs(err, domain.ErrNotFound)
	s.Contains(err.Error(), "order with provided ID 5 doesn't exist")
}

func (s *OrderUsecasesSuite) TestOrderDetailsGroupsAndMatchesExpenses() {
	id := int64(5)
	shipment := &domain.Shipment{ID: 7}
	order := domain.Order{
		ID:         &id,
		Reference:  "DE--5",
		CustomerID: 42,
		Items:      []domain.Item{{ID: 1, SKU: "a", Shipment: shipment}},
		Expenses: []domain.Expense{
			{Type: domain.ExpenseTypeShipment, Name: "Standard", Shipment: shipment},
			{Type: "PAYMENT_EXPENSE_TYPE", Name: "Invoice"},
		},
	}
	grouped := []domain.ShipmentGroup{{Shipment: *shipment, Items: order.Items}}
	expanded := []domain.ShipmentGroup{{Shipment: *shipment, Items: order.Items, Hash: "H1"}}

	s.sales.EXPECT().GetOrderDetails(gomock.Any(), gomock.Any()).Return(order, nil)
	s.shipments.EXPECT().GroupItemsByShipment(order.Items).Return(grouped)
	s.expander.EXPECT().ExpandShipmentGroupsWithCartItems(grouped, order).Return(expanded)

	got, err := s.detailsUC().Execute(s.ctx, customer, 5)

	s.Require().NoError(err)
	s.Equal(order, got.Order)
	s.Equal(expanded, got.ShipmentGroups)
	s.Require().NotNil(got.OrderShipmentExpenses.Lookup("H1"))
	s.Equal("Standard", got.OrderShipmentExpenses.Lookup("H1").Name)
	s.Empty(got.OrderShipmentExpenses.Unmatched)
}

func (s *OrderUsecasesSuite) TestOrderDetailsPropagatesSalesError() {
	boom := errors.New("sales unavailable")
	s.sales.EXPECT().GetOrderDetails(gomock.Any(), gomock.Any()).Return(domain.Order{}, boom)

	_, err := s.detailsUC().Execute(s.ctx, customer, 5)

	s.ErrorIs(err, boom)
	s.NotErrorIs(err, domain.ErrNotFound)
}

func (s *OrderUsecasesSuite) TestGetUsername() {
	uc := GetUsername{Customers: s.customers, Logger: discardLogger()}
	s.customers.EXPECT().CurrentCustomer(gomock.Any(), "token").Return(customer, nil)
	s.customers.EXPECT().CurrentCustomer(gomock.Any(), "").Return(domain.Customer{}, domain.ErrNotLoggedIn)
	s.customers.EXPECT().CurrentCustomer(gomock.Any(), "broken").Return(domain.Customer{}, errors.New("redis down"))

	name, ok := uc.Execute(s.ctx, "token")
	s.True(ok)
	s.Equal("spencor.hopkin@spryker.com", name)

	name, ok = uc.Execute(s.ctx, "")
	s.False(ok)
	s.Empty(name)

	_, ok = uc.Execute(s.ctx, "broken")
	s.False(ok)
}

func TestStrategyFor(t *testing.T) {
	assert.Equal(t, SearchStrategy, StrategyFor(true))
	assert.Equal(t, OverviewStrategy, StrategyFor(false))
	assert.Equal(t, "search", SearchStrategy.String())
	assert.Equal(t, "overview", OverviewStrategy.String())
}

type memoryRepo struct {
	rows    map[int64][]byte
	order   []int64
	failing error
}

func newMemoryRepo() *memoryRepo { return &memoryRepo{rows: make(map[int64][]byte)} }

func (r *memoryRepo) Upsert(_ context.Context, id, _ int64, raw []byte) error {
	if r.failing != nil {
		return r.failing
	}
	if _, ok := r.rows[id]; !ok {
		r.order = append(r.order, id)
	}
	r.rows[id] = raw
	return nil
}

func (r *memoryRepo) LoadAll(_ context.Context, fn func(raw []byte) error) error {
	for _, id := range r.order {
		if err := fn(r.rows[id]); err != nil {
			return err
		}
	}
	return nil
}

func TestProcessIncomingOrder(t *testing.T) {
	repo := newMemoryRepo()
	c := cache.NewMemoryOrderCache()
	uc := ProcessIncomingOrder{Repo: repo, Cache: c}

	o, err := uc.Execute(context.Background(), []byte(`{"id_sales_order":5,"fk_customer":42,"order_reference":"DE--5"}`))

	require.NoError(t, err)
	assert.Equal(t, "DE--5", o.Reference)
	cached, ok := c.Get(5)
	require.True(t, ok)
	assert.Equal(t, int64(42), cached.CustomerID)
	assert.Contains(t, repo.rows, int64(5))
}

func TestProcessIncomingOrderValidation(t *testing.T) {
	uc := ProcessIncomingOrder{Repo: newMemoryRepo(), Cache: cache.NewMemoryOrderCache()}

	for _, raw := range []string{`{`, `{"fk_customer":42}`, `{"id_sales_order":5}`} {
		_, err := uc.Execute(context.Background(), []byte(raw))
		assert.ErrorIs(t, err, domain.ErrValidation, raw)
	}
}

func TestProcessIncomingOrderRepoFailureSkipsCache(t *testing.T) {
	repo := newMemoryRepo()
	repo.failing = errors.New("db down")
	c := cache.NewMemoryOrderCache()
	uc := ProcessIncomingOrder{Repo: repo, Cache: c}

	_, err := uc.Execute(context.Background(), []byte(`{"id_sales_order":5,"fk_customer":42}`))

	assert.ErrorIs(t, err, repo.failing)
	assert.Equal(t, 0, c.Len())
}

func TestLoadCacheSkipsCorruptRows(t *testing.T) {
	repo := newMemoryRepo()
	require.NoError(t, repo.Upsert(context.Background(), 1, 42, []byte(`{"id_sales_order":1,"fk_customer":42}`)))
	require.NoError(t, repo.Upsert(context.Background(), 2, 42, []byte(`not json`)))
	require.NoError(t, repo.Upsert(context.Background(), 3, 42, []byte(`{"fk_customer":42}`)))
	c := cache.NewMemoryOrderCache()

	loaded, err := LoadCache{Repo: repo, Cache: c, Logger: discardLogger()}.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, loaded)
	assert.Len(t, c.ListByCustomer(42), 1)
}
