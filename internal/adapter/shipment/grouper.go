package shipment

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/example/customer-page-service/internal/domain"
)

// Grouper partitions order items by shipment. Items without a shipment share a
// group with a zero Shipment.
type Grouper struct{}

func (Grouper) GroupItemsByShipment(items []domain.Item) []domain.ShipmentGroup {
	var groups []domain.ShipmentGroup
	index := make(map[int64]int)

	for _, it := range items {
		var s domain.Shipment
		if it.Shipment != nil {
			s = *it.Shipment
		}
		i, ok := index[s.ID]
		if !ok {
			i = len(groups)
			index[s.ID] = i
			groups = append(groups, domain.ShipmentGroup{Shipment: s})
		}
		groups[i].Items = append(groups[i].Items, it)
	}

	return groups
}

var _ domain.ShipmentGrouper = Grouper{}

// Expander attaches cart items and the group hash to shipment groups.
type Expander struct{}

func (Expander) ExpandShipmentGroupsWithCartItems(groups []domain.ShipmentGroup, _ domain.Order) []domain.ShipmentGroup {
	out := make([]domain.ShipmentGroup, len(groups))
	for i, g := range groups {
		g.CartItems = cartItems(g.Items)
		g.Hash = groupHash(g.Shipment, g.CartItems)
		out[i] = g
	}
	return out
}

var _ domain.ShipmentGroupExpander = Expander{}

// cartItems merges sales order items of the same SKU back into one line.
func cartItems(items []domain.Item) []domain.Item {
	var out []domain.Item
	index := make(map[string]int)
	for _, it := range items {
		if i, ok := index[it.SKU]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		index[it.SKU] = len(out)
		out = append(out, it)
	}
	return out
}

func groupHash(s domain.Shipment, cart []domain.Item) string {
	lines := make([]string, 0, len(cart))
	for _, it := range cart {
		lines = append(lines, it.SKU+":"+strconv.Itoa(it.Quantity))
	}
	sort.Strings(lines)

	var b strings.Builder
	fmt.Fprintf(&b, "%d|%s|%s|%s|%s|", s.ID, s.Carrier, s.Method, s.RequestedDeliveryDate, s.Address)
	b.WriteString(strings.Join(lines, ","))

	return strconv.FormatUint(xxhash.Sum64String(b.String()), 16)
}
