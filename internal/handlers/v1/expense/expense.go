package expense

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pennyledger/expense-server/internal/service"
	"github.com/pennyledger/expense-server/internal/storage/mongoconfig"
)

// Expense is the wire representation of an expense. The store-internal
// identifier and any category reference are rendered as plain strings.
type Expense struct {
	ID            string  `json:"id" doc:"Expense id"`
	Amount        float64 `json:"amount" doc:"Expense amount"`
	CategoryID    string  `json:"category_id,omitempty" doc:"Linked category id"`
	CategoryName  string  `json:"category_name,omitempty" doc:"Denormalized category name"`
	Description   string  `json:"description,omitempty" doc:"Free-text description"`
	PaymentMethod string  `json:"payment_method" doc:"Payment method"`
	Date          string  `json:"date" doc:"RFC3339 expense date"`
	AttachmentURL string  `json:"attachment_url,omitempty" doc:"URL to a receipt image"`
	UpdatedAt     string  `json:"updated_at,omitempty" doc:"RFC3339 time of the last update"`
}

// ExpenseBody is the request body for creating or replacing an expense.
type ExpenseBody struct {
	Amount        float64 `json:"amount" required:"true" exclusiveMinimum:"0" doc:"Expense amount, must be greater than zero"`
	CategoryID    string  `json:"category_id,omitempty" doc:"Linked category id; malformed values are kept as opaque strings"`
	CategoryName  string  `json:"category_name,omitempty" doc:"Denormalized category name for quick lookup"`
	Description   string  `json:"description,omitempty" maxLength:"300" doc:"Free-text description"`
	PaymentMethod string  `json:"payment_method,omitempty" enum:"cash,card,bank,wallet,other" doc:"Payment method, defaults to other"`
	Date          string  `json:"date,omitempty" doc:"Expense date (RFC3339 or YYYY-MM-DD), defaults to now"`
	AttachmentURL string  `json:"attachment_url,omitempty" doc:"URL to a receipt image"`
}

func bodyToService(body ExpenseBody) (service.Expense, error) {
	expense := service.Expense{
		Amount:        body.Amount,
		CategoryName:  body.CategoryName,
		Description:   body.Description,
		PaymentMethod: body.PaymentMethod,
		AttachmentURL: body.AttachmentURL,
	}
	if body.CategoryID != "" {
		expense.CategoryID = mongoconfig.ParseCategoryRef(body.CategoryID)
	}
	if body.Date != "" {
		date, err := parseDate(body.Date)
		if err != nil {
			return service.Expense{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		expense.Date = date
	}
	return expense, nil
}

func expenseFromService(e service.Expense) Expense {
	out := Expense{
		ID:            e.ID.Hex(),
		Amount:        e.Amount,
		CategoryName:  e.CategoryName,
		Description:   e.Description,
		PaymentMethod: e.PaymentMethod,
		Date:          e.Date.Format(time.RFC3339),
		AttachmentURL: e.AttachmentURL,
	}
	if !e.CategoryID.IsZero() {
		out.CategoryID = e.CategoryID.String()
	}
	if e.UpdatedAt != nil {
		out.UpdatedAt = e.UpdatedAt.Format(time.RFC3339)
	}
	return out
}

// parseDate accepts a full RFC3339 timestamp or a bare calendar date.
func parseDate(value string) (time.Time, error) {
	if date, err := time.Parse(time.RFC3339, value); err == nil {
		return date, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.UTC)
}
