package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// ValidTransactionType reports whether t is a known type.
func ValidTransactionType(t TransactionType) bool {
	return t == TransactionIncome || t == TransactionExpense
}

// TransactionCategory is the closed set of spending/earning buckets.
type TransactionCategory string

const (
	CategorySalary      TransactionCategory = "salary"
	CategoryFreelance   TransactionCategory = "freelance"
	CategoryInvestments TransactionCategory = "investments"
	CategoryFood        TransactionCategory = "food"
	CategoryTransport   TransactionCategory = "transport"
	CategoryHousing     TransactionCategory = "housing"
	CategoryLeisure     TransactionCategory = "leisure"
	CategoryHealth      TransactionCategory = "health"
	CategoryEducation   TransactionCategory = "education"
	CategoryOther       TransactionCategory = "other"
)

// Categories lists every transaction category.
var Categories = []TransactionCategory{
	CategorySalary, CategoryFreelance, CategoryInvestments,
	CategoryFood, CategoryTransport, CategoryHousing,
	CategoryLeisure, CategoryHealth, CategoryEducation, CategoryOther,
}

// ValidTransactionCategory reports whether c is a known category.
func ValidTransactionCategory(c TransactionCategory) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction is a single money movement against an account.
// AccountID references an Account owned by the same user.
type Transaction struct {
	ID          string              `json:"id"`
	Description string              `json:"description"`
	Amount      float64             `json:"amount"`
	Type        TransactionType     `json:"type"`
	Category    TransactionCategory `json:"category"`
	Date        time.Time           `json:"date"`
	AccountID   string              `json:"account_id"`
	User        string              `json:"user"`
}

// NewTransaction creates a transaction with a generated id.
func NewTransaction(description string, amount float64, txType TransactionType, category TransactionCategory, date time.Time, accountID, user string) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Date:        date,
		AccountID:   accountID,
		User:        user,
	}
}

// Account is a bank account. The balance is seed data and is not
// recomputed from transactions.
type Account struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Bank    string  `json:"bank"`
	Balance float64 `json:"balance"`
	Color   string  `json:"color"`
	User    string  `json:"user"`
}

// NewAccount creates an account with a generated id.
func NewAccount(name, bank string, balance float64, color, user string) Account {
	return Account{
		ID:      uuid.NewString(),
		Name:    name,
		Bank:    bank,
		Balance: balance,
		Color:   color,
		User:    user,
	}
}

// FinancialGoal tracks saving toward a target amount by a deadline.
type FinancialGoal struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	Deadline      time.Time `json:"deadline"`
	Color         string    `json:"color"`
	User          string    `json:"user"`
}

// NewFinancialGoal creates a financial goal with a generated id.
func NewFinancialGoal(name string, target, current float64, deadline time.Time, color, user string) FinancialGoal {
	return FinancialGoal{
		ID:            uuid.NewString(),
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
		Color:         color,
		User:          user,
	}
}
