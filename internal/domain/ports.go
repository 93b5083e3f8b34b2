package domain

import "context"

// OrderRepository хранит сырые сообщения заказов.
type OrderRepository interface {
	Upsert(ctx context.Context, id, customerID int64, raw []byte) error
	LoadAll(ctx context.Context, fn func(raw []byte) error) error
}

// OrderCache даёт быстрый доступ к заказам, в том числе по покупателю.
type OrderCache interface {
	Get(id int64) (Order, bool)
	Set(o Order)
	ListByCustomer(customerID int64) []Order
}

// MessageSubscriber подписывается на входящие сообщения заказов.
type MessageSubscriber interface {
	// Subscribe регистрирует обработчик; ack и повторные доставки реализует адаптер.
	Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error
}

// Общие доменные ошибки
var (
	ErrNotFound    = notFoundError("not found")
	ErrValidation  = validationError("invalid data")
	ErrNotLoggedIn = notLoggedInError("customer is not logged in")
)

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

type validationError string

func (e validationError) Error() string { return string(e) }

type notLoggedInError string

func (e notLoggedInError) Error() string { return string(e) }
