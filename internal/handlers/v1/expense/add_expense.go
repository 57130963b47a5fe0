package expense

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

const recordAddedMessage = "Record added successfully!"

// AddExpenseBody is the request body for recording an expense. Field names follow
// the existing mobile client. Every field is optional at the schema level so
// missing required fields reach the handler and are reported as a 400.
type AddExpenseBody struct {
	Date          *string `json:"Date,omitempty" doc:"Expense date, YYYY-MM-DD"`
	Category      *string `json:"Category,omitempty" doc:"Expense category, title-cased on save"`
	Amount        any     `json:"Amount,omitempty" doc:"Non-negative amount, as a number or numeric string"`
	UserID        *string `json:"User_ID,omitempty" doc:"Owning user"`
	PaymentMethod *string `json:"Payment_Method,omitempty" doc:"Payment method, title-cased on save"`
	Notes         *string `json:"Notes,omitempty" doc:"Free text notes"`
}

// AddExpenseInput is the Huma input for recording an expense.
type AddExpenseInput struct {
	Body AddExpenseBody
}

// AddExpenseResponse is the response body for recording an expense.
type AddExpenseResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
	ID      string `json:"id" doc:"Created expense UUID"`
}

// AddExpenseOutput is the Huma output for recording an expense.
type AddExpenseOutput struct {
	Status int
	Body   AddExpenseResponse
}

// expenseAdder is the interface for recording expenses.
type expenseAdder interface {
	AddExpense(ctx context.Context, input service.ExpenseInput) (uuid.UUID, error)
}

// AddExpenseHandler handles POST /v1/expense.
type AddExpenseHandler struct {
	ExpenseService expenseAdder
}

// NewAddExpenseHandler creates a new AddExpenseHandler.
func NewAddExpenseHandler(svc expenseAdder) *AddExpenseHandler {
	return &AddExpenseHandler{ExpenseService: svc}
}

// Register registers the add expense endpoint with the Huma API.
func (h *AddExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "add-expense",
		Method:      http.MethodPost,
		Path:        "/v1/expense",
		Summary:     "Add expense",
		Description: "Records a new expense for a user.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *AddExpenseHandler) handle(ctx context.Context, input *AddExpenseInput) (*AddExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("addExpenseMs")
	}
	id, err := h.ExpenseService.AddExpense(ctx, service.ExpenseInput{
		Date:          input.Body.Date,
		Category:      input.Body.Category,
		Amount:        input.Body.Amount,
		UserID:        input.Body.UserID,
		PaymentMethod: input.Body.PaymentMethod,
		Notes:         input.Body.Notes,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return nil, huma.NewError(http.StatusBadRequest, validationErr.Message)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to add expense", err)
	}

	if logData != nil {
		logData.AddData("expenseID", id.String())
	}

	return &AddExpenseOutput{
		Status: http.StatusCreated,
		Body: AddExpenseResponse{
			Message: recordAddedMessage,
			ID:      id.String(),
		},
	}, nil
}
