package sales

import (
	"context"
	"sort"
	"strings"

	"github.com/example/customer-page-service/internal/domain"
)

const (
	defaultMaxPerPage = 10

	SortCreatedAt  = "created_at"
	SortReference  = "reference"
	SortGrandTotal = "grand_total"
	SortID         = "id"

	DirectionAsc  = "ASC"
	DirectionDesc = "DESC"
)

// Client serves sales queries from the order cache.
type Client struct {
	Cache domain.OrderCache
}

func NewClient(c domain.OrderCache) *Client {
	return &Client{Cache: c}
}

// SearchOrders keeps order items only when the query asks to expand them.
func (c *Client) SearchOrders(_ context.Context, q domain.OrderListQuery) (domain.OrderList, error) {
	return c.list(q, q.Format.ExpandWithItems), nil
}

// GetPaginatedCustomerOrdersOverview returns order headers without items.
func (c *Client) GetPaginatedCustomerOrdersOverview(_ context.Context, q domain.OrderListQuery) (domain.OrderList, error) {
	return c.list(q, false), nil
}

func (c *Client) GetOrderDetails(_ context.Context, req domain.OrderDetailsRequest) (domain.Order, error) {
	o, ok := c.Cache.Get(req.OrderID)
	if !ok || o.CustomerID != req.CustomerID {
		return domain.Order{}, nil
	}
	return o, nil
}

func (c *Client) list(q domain.OrderListQuery, withItems bool) domain.OrderList {
	orders := c.Cache.ListByCustomer(q.CustomerID)
	sortOrders(orders, q.Filter)

	page, p := paginate(orders, q.Pagination)
	out := make([]domain.Order, len(page))
	for i, o := range page {
		if !withItems {
			o.Items = nil
		}
		o.Expenses = nil
		out[i] = o
	}

	return domain.OrderList{Orders: out, Pagination: p}
}

func sortOrders(orders []domain.Order, f domain.Filter) {
	desc := !strings.EqualFold(f.OrderDirection, DirectionAsc)

	var less func(a, b domain.Order) bool
	switch strings.ToLower(f.OrderBy) {
	case SortReference:
		less = func(a, b domain.Order) bool { return a.Reference < b.Reference }
	case SortGrandTotal:
		less = func(a, b domain.Order) bool { return a.GrandTotal < b.GrandTotal }
	case SortID:
		less = func(a, b domain.Order) bool { return a.IDValue() < b.IDValue() }
	default:
		less = func(a, b domain.Order) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}

	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if !less(a, b) && !less(b, a) {
			// cache order is random, tie-break on id to keep pages stable
			if desc {
				return a.IDValue() > b.IDValue()
			}
			return a.IDValue() < b.IDValue()
		}
		if desc {
			return less(b, a)
		}
		return less(a, b)
	})
}

func paginate(orders []domain.Order, req domain.Pagination) ([]domain.Order, domain.Pagination) {
	perPage := req.MaxPerPage
	if perPage < 1 {
		perPage = defaultMaxPerPage
	}
	n := len(orders)
	lastPage := (n + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	page := min(max(req.Page, 1), lastPage)

	first := (page - 1) * perPage
	last := min(first+perPage, n)

	p := domain.Pagination{
		Page:         page,
		MaxPerPage:   perPage,
		NbResults:    n,
		FirstPage:    1,
		LastPage:     lastPage,
		PreviousPage: max(page-1, 1),
		NextPage:     min(page+1, lastPage),
	}
	if n > 0 {
		p.FirstIndex = first + 1
		p.LastIndex = last
	}

	return orders[first:last], p
}

var _ domain.SalesClient = (*Client)(nil)
