package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account holds a non-negative balance. It is created by Customer.OpenAccount
// and lives as long as its owner keeps it.
type Account struct {
	number  int
	balance decimal.Decimal
}

func (a *Account) Number() int {
	return a.number
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) HasSufficientFunds(amount decimal.Decimal) bool {
	return a.balance.GreaterThanOrEqual(amount)
}

func (a *Account) Deposit(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}

	a.balance = a.balance.Add(amount)
	return true
}

func (a *Account) Withdraw(amount decimal.Decimal) bool {
	if !amount.IsPositive() || !a.HasSufficientFunds(amount) {
		return false
	}

	a.balance = a.balance.Sub(amount)
	return true
}

// Transfer moves amount to other. Nothing changes unless both the target is a
// different account and the withdrawal succeeds.
func (a *Account) Transfer(other *Account, amount decimal.Decimal) bool {
	if other == nil || a.Equal(other) {
		return false
	}

	if !a.Withdraw(amount) {
		return false
	}

	other.Deposit(amount)
	return true
}

func (a *Account) Equal(other *Account) bool {
	return other != nil && a.number == other.number
}

func (a *Account) ShortLabel() string {
	return fmt.Sprintf("Account Number: %d", a.number)
}

func (a *Account) LongLabel() string {
	return fmt.Sprintf("%s\n\tBalance: %s", a.ShortLabel(), FormatMoney(a.balance))
}

func (a *Account) View() AccountView {
	return AccountView{Number: a.number, Balance: a.balance, Label: a.LongLabel()}
}

func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
