package domain

import "time"

// ExpenseTypeShipment помечает расход как стоимость доставки.
const ExpenseTypeShipment = "SHIPMENT_EXPENSE_TYPE"

// Order описывает заказ покупателя в том виде, в каком его отдаёт сервис продаж.
// Пустой ID означает, что заказ не найден.
type Order struct {
	ID         *int64    `json:"id_sales_order"`
	Reference  string    `json:"order_reference"`
	CustomerID int64     `json:"fk_customer"`
	CreatedAt  time.Time `json:"created_at"`
	Currency   string    `json:"currency"`
	GrandTotal int64     `json:"grand_total"`
	Items      []Item    `json:"items"`
	Expenses   []Expense `json:"expenses"`
}

// Found сообщает, вернул ли сервис продаж существующий заказ.
func (o Order) Found() bool { return o.ID != nil }

// IDValue возвращает идентификатор заказа или 0.
func (o Order) IDValue() int64 {
	if o.ID == nil {
		return 0
	}
	return *o.ID
}

type Item struct {
	ID        int64     `json:"id_sales_order_item"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
	State     string    `json:"state"`
	Shipment  *Shipment `json:"shipment,omitempty"`
}

type Shipment struct {
	ID                    int64  `json:"id_sales_shipment"`
	Carrier               string `json:"carrier"`
	Method                string `json:"method"`
	RequestedDeliveryDate string `json:"requested_delivery_date"`
	Address               string `json:"address"`
}

type Expense struct {
	Type     string    `json:"type"`
	Name     string    `json:"name"`
	SumPrice int64     `json:"sum_price"`
	Shipment *Shipment `json:"shipment,omitempty"`
}

// IsShipmentExpense сообщает, относится ли расход к конкретной доставке.
func (e Expense) IsShipmentExpense() bool {
	return e.Type == ExpenseTypeShipment && e.Shipment != nil
}

// ShipmentGroup объединяет позиции заказа одной доставки.
type ShipmentGroup struct {
	Shipment  Shipment `json:"shipment"`
	Items     []Item   `json:"items"`
	CartItems []Item   `json:"cart_items"`
	Hash      string   `json:"hash"`
}

// ShipmentExpenseMap хранит расходы на доставку, сопоставленные группам по Hash.
// Replaced содержит расходы, перезаписанные более поздним расходом той же группы.
type ShipmentExpenseMap struct {
	Matched   map[string]Expense
	Unmatched []Expense
	Replaced  []Expense
}

func (m ShipmentExpenseMap) Lookup(hash string) *Expense {
	e, ok := m.Matched[hash]
	if !ok {
		return nil
	}
	return &e
}

type Customer struct {
	ID        int64  `json:"id_customer"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
