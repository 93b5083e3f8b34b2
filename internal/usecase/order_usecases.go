package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/customer-page-service/internal/domain"
)

// OrderListStrategy выбирает операцию сервиса продаж для списка заказов.
// Выбирается один раз на запрос.
type OrderListStrategy int

const (
	OverviewStrategy OrderListStrategy = iota
	SearchStrategy
)

func StrategyFor(searchEnabled bool) OrderListStrategy {
	if searchEnabled {
		return SearchStrategy
	}
	return OverviewStrategy
}

func (s OrderListStrategy) IsSearch() bool { return s == SearchStrategy }

func (s OrderListStrategy) String() string {
	if s == SearchStrategy {
		return "search"
	}
	return "overview"
}

// ListParams содержит параметры страницы из запроса; нули заменяются значениями по умолчанию.
type ListParams struct {
	Page    int
	PerPage int
}

const defaultPage = 1

// GetOrderList собирает запрос списка заказов и передаёт его в сервис продаж.
type GetOrderList struct {
	Sales    domain.SalesClient
	Defaults domain.OrderListDefaults
}

func (uc GetOrderList) Execute(ctx context.Context, customer domain.Customer, params ListParams, strategy OrderListStrategy) (domain.OrderList, error) {
	q := uc.Query(customer, params, strategy)
	if strategy.IsSearch() {
		return uc.Sales.SearchOrders(ctx, q)
	}
	return uc.Sales.GetPaginatedCustomerOrdersOverview(ctx, q)
}

func (uc GetOrderList) Query(customer domain.Customer, params ListParams, strategy OrderListStrategy) domain.OrderListQuery {
	page := params.Page
	if page == 0 {
		page = defaultPage
	}
	perPage := params.PerPage
	if perPage == 0 {
		perPage = uc.Defaults.PerPage
	}

	return domain.OrderListQuery{
		Filter: domain.Filter{
			OrderBy:        uc.Defaults.SortField,
			OrderDirection: uc.Defaults.SortDirection,
		},
		Pagination: domain.Pagination{Page: page, MaxPerPage: perPage},
		Format: domain.OrderListFormat{
			ExpandWithItems: strategy.IsSearch() && uc.Defaults.ItemsVisible,
		},
		Customer:   customer,
		CustomerID: customer.ID,
	}
}

// OrderDetails содержит данные страницы заказа.
type OrderDetails struct {
	Order                 domain.Order
	ShipmentGroups        []domain.ShipmentGroup
	OrderShipmentExpenses domain.ShipmentExpenseMap
}

// GetOrderDetails загружает заказ покупателя и раскладывает его по доставкам.
type GetOrderDetails struct {
	Sales     domain.SalesClient
	Shipments domain.ShipmentGrouper
	Expander  domain.ShipmentGroupExpander
	Logger    *slog.Logger
}

func (uc GetOrderDetails) Execute(ctx context.Context, customer domain.Customer, orderID int64) (OrderDetails, error) {
	o, err := uc.Sales.GetOrderDetails(ctx, domain.OrderDetailsRequest{
		OrderID:    orderID,
		CustomerID: customer.ID,
	})
	if err != nil {
		return OrderDetails{}, err
	}
	if !o.Found() {
		return OrderDetails{}, fmt.Errorf("order with provided ID %d doesn't exist: %w", orderID, domain.ErrNotFound)
	}

	groups := uc.Shipments.GroupItemsByShipment(o.Items)
	groups = uc.Expander.ExpandShipmentGroupsWithCartItems(groups, o)

	expenses := MatchShipmentExpenses(o.Expenses, groups)
	if len(expenses.Replaced) > 0 {
		// TODO: confirm with sales whether duplicate shipment expenses should be summed instead.
		uc.Logger.WarnContext(ctx, "shipment expense replaced by a later expense for the same shipment group",
			"order_reference", o.Reference,
			"replaced", len(expenses.Replaced),
		)
	}

	return OrderDetails{
		Order:                 o,
		ShipmentGroups:        groups,
		OrderShipmentExpenses: expenses,
	}, nil
}

// GetUsername возвращает email вошедшего покупателя.
type GetUsername struct {
	Customers domain.CustomerClient
	Logger    *slog.Logger
}

func (uc GetUsername) Execute(ctx context.Context, sessionID string) (string, bool) {
	c, err := uc.Customers.CurrentCustomer(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotLoggedIn) {
			uc.Logger.DebugContext(ctx, "customer lookup failed", "error", err)
		}
		return "", false
	}
	return c.Email, true
}

// LoadCache загружает все заказы из репозитория в кэш при старте.
type LoadCache struct {
	Repo   domain.OrderRepository
	Cache  domain.OrderCache
	Logger *slog.Logger
}

func (uc LoadCache) Execute(ctx context.Context) (int, error) {
	loaded := 0
	err := uc.Repo.LoadAll(ctx, func(raw []byte) error {
		var o domain.Order
		if err := json.Unmarshal(raw, &o); err != nil || !o.Found() {
			// пропускаем битые записи, не прерывая полную загрузку
			uc.Logger.WarnContext(ctx, "skipping undecodable order row", "error", err)
			return nil
		}
		uc.Cache.Set(o)
		loaded++
		return nil
	})
	return loaded, err
}

// ProcessIncomingOrder сохраняет входящее сообщение заказа и обновляет кэш.
type ProcessIncomingOrder struct {
	Repo  domain.OrderRepository
	Cache domain.OrderCache
}

func (uc ProcessIncomingOrder) Execute(ctx context.Context, raw []byte) (domain.Order, error) {
	var o domain.Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return domain.Order{}, fmt.Errorf("decode order: %w", domain.ErrValidation)
	}
	if !o.Found() || o.CustomerID == 0 {
		return domain.Order{}, domain.ErrValidation
	}
	if err := uc.Repo.Upsert(ctx, o.IDValue(), o.CustomerID, raw); err != nil {
		return domain.Order{}, err
	}
	uc.Cache.Set(o)
	return o, nil
}
