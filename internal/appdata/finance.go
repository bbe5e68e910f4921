package appdata

import (
	"github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/store"
	"github.com/lifeos-app/lifeos/internal/validate"
)

// AddTransaction validates and appends a transaction. The account id
// must resolve to an account owned by the same user.
func (s *Store) AddTransaction(tx model.Transaction) (model.Transaction, error) {
	if err := validate.Name(tx.Description); err != nil {
		return model.Transaction{}, err
	}
	if err := validate.Amount(tx.Amount); err != nil {
		return model.Transaction{}, err
	}
	if err := validate.TransactionType(tx.Type); err != nil {
		return model.Transaction{}, err
	}
	if err := validate.TransactionCategory(tx.Category); err != nil {
		return model.Transaction{}, err
	}
	if !s.accountExists(tx.AccountID, tx.User) {
		return model.Transaction{}, errors.ErrAccountNotFound
	}

	created := model.NewTransaction(tx.Description, tx.Amount, tx.Type, tx.Category, tx.Date, tx.AccountID, tx.User)
	s.Update(func(cur State) State {
		cur.Transactions = append(append([]model.Transaction{}, cur.Transactions...), created)
		return cur
	})
	return created, nil
}

// UpdateTransaction merges partial fields into the matching
// transaction. A new account id must resolve for the owning user.
func (s *Store) UpdateTransaction(id string, partial store.Partial) error {
	if v, ok := partial["amount"]; ok {
		amount, _ := v.(float64)
		if err := validate.Amount(amount); err != nil {
			return err
		}
	}
	if v, ok := partial["type"]; ok {
		txType, _ := v.(string)
		if err := validate.TransactionType(model.TransactionType(txType)); err != nil {
			return err
		}
	}
	if v, ok := partial["category"]; ok {
		category, _ := v.(string)
		if err := validate.TransactionCategory(model.TransactionCategory(category)); err != nil {
			return err
		}
	}
	if v, ok := partial["account_id"]; ok {
		accountID, _ := v.(string)
		owner := ""
		for _, tx := range s.Get().Transactions {
			if tx.ID == id {
				owner = tx.User
				break
			}
		}
		if owner != "" && !s.accountExists(accountID, owner) {
			return errors.ErrAccountNotFound
		}
	}

	s.Update(func(cur State) State {
		cur.Transactions, _ = replaceByID(cur.Transactions, id, transactionID, func(tx model.Transaction) model.Transaction {
			return applyPartial(tx, partial)
		})
		return cur
	})
	return nil
}

// DeleteTransaction removes the matching transaction.
func (s *Store) DeleteTransaction(id string) {
	s.Update(func(cur State) State {
		cur.Transactions = removeByID(cur.Transactions, id, transactionID)
		return cur
	})
}

// TransactionsByUser returns the user's transactions in insertion order.
func (s *Store) TransactionsByUser(user string) []model.Transaction {
	return filterByUser(s.Get().Transactions, user, func(tx model.Transaction) string { return tx.User })
}

// AddAccount validates and appends an account.
func (s *Store) AddAccount(a model.Account) (model.Account, error) {
	if err := validate.Name(a.Name); err != nil {
		return model.Account{}, err
	}
	if err := validate.HexColor(a.Color); err != nil {
		return model.Account{}, err
	}

	created := model.NewAccount(a.Name, a.Bank, a.Balance, a.Color, a.User)
	s.Update(func(cur State) State {
		cur.Accounts = append(append([]model.Account{}, cur.Accounts...), created)
		return cur
	})
	return created, nil
}

// UpdateAccount merges partial fields into the matching account.
func (s *Store) UpdateAccount(id string, partial store.Partial) error {
	if v, ok := partial["color"]; ok {
		color, _ := v.(string)
		if err := validate.HexColor(color); err != nil {
			return err
		}
	}
	s.Update(func(cur State) State {
		cur.Accounts, _ = replaceByID(cur.Accounts, id, accountID, func(a model.Account) model.Account {
			return applyPartial(a, partial)
		})
		return cur
	})
	return nil
}

// DeleteAccount removes the matching account. Transactions referencing
// it are left behind with a dangling account id; reads must tolerate
// the missing lookup.
func (s *Store) DeleteAccount(id string) {
	s.Update(func(cur State) State {
		cur.Accounts = removeByID(cur.Accounts, id, accountID)
		return cur
	})
}

// AccountsByUser returns the user's accounts in insertion order.
func (s *Store) AccountsByUser(user string) []model.Account {
	return filterByUser(s.Get().Accounts, user, func(a model.Account) string { return a.User })
}

// AccountByID looks up an account. The second result is false when the
// id does not resolve.
func (s *Store) AccountByID(id string) (model.Account, bool) {
	for _, a := range s.Get().Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return model.Account{}, false
}

// AddFinancialGoal validates and appends a financial goal.
func (s *Store) AddFinancialGoal(g model.FinancialGoal) (model.FinancialGoal, error) {
	if err := validate.Name(g.Name); err != nil {
		return model.FinancialGoal{}, err
	}
	if err := validate.Amount(g.TargetAmount); err != nil {
		return model.FinancialGoal{}, err
	}

	created := model.NewFinancialGoal(g.Name, g.TargetAmount, g.CurrentAmount, g.Deadline, g.Color, g.User)
	s.Update(func(cur State) State {
		cur.FinancialGoals = append(append([]model.FinancialGoal{}, cur.FinancialGoals...), created)
		return cur
	})
	return created, nil
}

// UpdateFinancialGoal merges partial fields into the matching goal.
func (s *Store) UpdateFinancialGoal(id string, partial store.Partial) error {
	s.Update(func(cur State) State {
		cur.FinancialGoals, _ = replaceByID(cur.FinancialGoals, id, financialGoalID, func(g model.FinancialGoal) model.FinancialGoal {
			return applyPartial(g, partial)
		})
		return cur
	})
	return nil
}

// DeleteFinancialGoal removes the matching goal.
func (s *Store) DeleteFinancialGoal(id string) {
	s.Update(func(cur State) State {
		cur.FinancialGoals = removeByID(cur.FinancialGoals, id, financialGoalID)
		return cur
	})
}

// FinancialGoalsByUser returns the user's goals in insertion order.
func (s *Store) FinancialGoalsByUser(user string) []model.FinancialGoal {
	return filterByUser(s.Get().FinancialGoals, user, func(g model.FinancialGoal) string { return g.User })
}

func (s *Store) accountExists(id, user string) bool {
	for _, a := range s.Get().Accounts {
		if a.ID == id && a.User == user {
			return true
		}
	}
	return false
}

func transactionID(tx model.Transaction) string   { return tx.ID }
func accountID(a model.Account) string            { return a.ID }
func financialGoalID(g model.FinancialGoal) string { return g.ID }
