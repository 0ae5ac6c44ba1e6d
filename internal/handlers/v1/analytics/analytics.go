package analytics

import (
	"time"

	"github.com/pennyledger/expense-server/internal/service"
)

// RecentExpense is the wire representation of one recent expense on the
// dashboard.
type RecentExpense struct {
	ID            string  `json:"id" doc:"Expense id"`
	Amount        float64 `json:"amount" doc:"Expense amount"`
	CategoryID    string  `json:"category_id,omitempty" doc:"Linked category id"`
	CategoryName  string  `json:"category_name,omitempty" doc:"Denormalized category name"`
	Description   string  `json:"description,omitempty" doc:"Free-text description"`
	PaymentMethod string  `json:"payment_method" doc:"Payment method"`
	Date          string  `json:"date" doc:"RFC3339 expense date"`
}

// BreakdownEntry is one category group of the dashboard breakdown. A null
// category_id groups the expenses that carried no category reference.
type BreakdownEntry struct {
	CategoryID   *string `json:"category_id" doc:"Category id, null for uncategorized spend"`
	CategoryName *string `json:"category_name" doc:"Category name, null when the id does not resolve"`
	Total        float64 `json:"total" doc:"Total spend in the group"`
}

func recentFromService(e service.Expense) RecentExpense {
	out := RecentExpense{
		ID:            e.ID.Hex(),
		Amount:        e.Amount,
		CategoryName:  e.CategoryName,
		Description:   e.Description,
		PaymentMethod: e.PaymentMethod,
		Date:          e.Date.Format(time.RFC3339),
	}
	if !e.CategoryID.IsZero() {
		out.CategoryID = e.CategoryID.String()
	}
	return out
}

func breakdownFromService(entries []service.BreakdownEntry) []BreakdownEntry {
	out := make([]BreakdownEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, BreakdownEntry{
			CategoryID:   entry.CategoryID,
			CategoryName: entry.CategoryName,
			Total:        entry.Total,
		})
	}
	return out
}
