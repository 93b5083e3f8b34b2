package domain

import "context"

//go:generate mockgen -source=clients.go -destination=mocks/mocks.go -package=mocks

// SalesClient обращается к сервису продаж.
type SalesClient interface {
	SearchOrders(ctx context.Context, q OrderListQuery) (OrderList, error)
	GetPaginatedCustomerOrdersOverview(ctx context.Context, q OrderListQuery) (OrderList, error)
	// GetOrderDetails возвращает заказ с пустым ID, если заказ не найден
	// или принадлежит другому покупателю.
	GetOrderDetails(ctx context.Context, req OrderDetailsRequest) (Order, error)
}

type ShipmentGrouper interface {
	GroupItemsByShipment(items []Item) []ShipmentGroup
}

type ShipmentGroupExpander interface {
	ExpandShipmentGroupsWithCartItems(groups []ShipmentGroup, o Order) []ShipmentGroup
}

// CustomerClient определяет покупателя по идентификатору сессии.
type CustomerClient interface {
	// CurrentCustomer возвращает ErrNotLoggedIn, если сессии нет.
	CurrentCustomer(ctx context.Context, sessionID string) (Customer, error)
}
