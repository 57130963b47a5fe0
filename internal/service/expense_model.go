package service

// ExpenseInput carries the raw ingestion fields. Nil pointers (and a nil
// Amount) mean the field was absent.
type ExpenseInput struct {
	Date          *string
	Category      *string
	Amount        any
	UserID        *string
	PaymentMethod *string
	Notes         *string
}
