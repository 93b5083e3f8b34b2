package domain

type Filter struct {
	OrderBy        string
	OrderDirection string
}

type Pagination struct {
	Page         int
	MaxPerPage   int
	NbResults    int
	FirstIndex   int
	LastIndex    int
	FirstPage    int
	LastPage     int
	PreviousPage int
	NextPage     int
}

// Pages возвращает номера страниц для навигации в шаблоне.
func (p Pagination) Pages() []int {
	if p.LastPage < 1 {
		return nil
	}
	pages := make([]int, 0, p.LastPage)
	for i := 1; i <= p.LastPage; i++ {
		pages = append(pages, i)
	}
	return pages
}

type OrderListFormat struct {
	ExpandWithItems bool
}

// OrderListQuery описывает запрос списка заказов к сервису продаж.
type OrderListQuery struct {
	Filter     Filter
	Pagination Pagination
	Format     OrderListFormat
	Customer   Customer
	CustomerID int64
}

type OrderList struct {
	Orders     []Order
	Pagination Pagination
}

// OrderListDefaults задаёт сортировку и размер страницы истории заказов по умолчанию.
type OrderListDefaults struct {
	SortField     string
	SortDirection string
	PerPage       int
	ItemsVisible  bool
}

type OrderDetailsRequest struct {
	OrderID    int64
	CustomerID int64
}
