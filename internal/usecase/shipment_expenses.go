package usecase

import "github.com/example/customer-page-service/internal/domain"

// MatchShipmentExpenses сопоставляет расходы на доставку группам доставок.
// Расходы без доставки или другого типа отбрасываются. Расход, для которого
// группа не найдена, попадает в Unmatched. При повторе хэша побеждает
// последний расход, а перезаписанный сохраняется в Replaced.
func MatchShipmentExpenses(expenses []domain.Expense, groups []domain.ShipmentGroup) domain.ShipmentExpenseMap {
	out := domain.ShipmentExpenseMap{Matched: make(map[string]domain.Expense)}

	for _, e := range expenses {
		if !e.IsShipmentExpense() {
			continue
		}

		hash, ok := findShipmentHash(groups, e.Shipment.ID)
		if !ok {
			out.Unmatched = append(out.Unmatched, e)
			continue
		}

		if prev, exists := out.Matched[hash]; exists {
			out.Replaced = append(out.Replaced, prev)
		}
		out.Matched[hash] = e
	}

	return out
}

func findShipmentHash(groups []domain.ShipmentGroup, shipmentID int64) (string, bool) {
	for _, g := range groups {
		if g.Shipment.ID == shipmentID {
			return g.Hash, true
		}
	}
	return "", false
}
