package core

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

const MaxAccounts = 5

type Customer struct {
	id       int
	name     string
	address  Address
	accounts []*Account
	ids      *IDGenerator
}

func (c *Customer) ID() int { return c.id }
func (c *Customer) Name() string { return c.name }
func (c *Customer) Address() Address { return c.address }
func (c *Customer) NumAccounts() int { return len(c.accounts) }
func (c *Customer) SetName(n string) { c.name = n }
func (c *Customer) SetAddress(a Address) { c.address = a }

func (c *Customer) Accounts() iter.Seq[*Account] {
	return slices.Values(c.accounts)
}

// OpenAccount returns nil once the customer holds MaxAccounts accounts.
func (c *Customer) OpenAccount() *Account {
	if len(c.accounts) >= MaxAccounts {
		return nil
	}

	number := c.ids.Unique(AccountNumberRange, c.hasAccount)
	a := &Account{number: number}
	c.accounts = append(c.accounts, a)
	return a
}

// CloseAccount only removes an account this customer holds with a zero balance.
func (c *Customer) CloseAccount(a *Account) bool {
	if a == nil {
		return false
	}

	i := slices.IndexFunc(c.accounts, a.Equal)
	if i < 0 {
		return false
	}

	if !c.accounts[i].balance.IsZero() {
		return false
	}

	c.accounts = slices.Delete(c.accounts, i, i+1)
	return true
}

// Account looks up an account by number. Numbers that are not exactly nine
// digits long are rejected before the lookup.
func (c *Customer) Account(number int) *Account {
	if len(strconv.Itoa(number)) != AccountNumberRange.Digits() {
		return nil
	}

	for _, a := range c.accounts {
		if a.number == number {
			return a
		}
	}

	return nil
}

func (c *Customer) hasAccount(number int) bool {
	return slices.ContainsFunc(c.accounts, func(a *Account) bool { return a.number == number })
}

func (c *Customer) ShortLabel() string {
	return fmt.Sprintf("(%d) %s", c.id, c.name)
}

func (c *Customer) LongLabel() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d)\n%s", c.name, c.id, c.address)
	if len(c.accounts) == 0 {
		b.WriteString("\n\tNo accounts open")
		return b.String()
	}

	for _, a := range c.accounts {
		b.WriteString("\n\t")
		b.WriteString(a.LongLabel())
	}

	return b.String()
}

func (c *Customer) View() CustomerView {
	v := CustomerView{
		ID:       c.id,
		Name:     c.name,
		Address:  viewAddress(c.address),
		Accounts: make([]AccountView, 0, len(c.accounts)),
		Label:    c.LongLabel(),
	}
	for _, a := range c.accounts {
		v.Accounts = append(v.Accounts, a.View())
	}

	return v
}

func (c *Customer) summary() Summary {
	return Summary{ID: c.id, Name: c.name, Label: c.ShortLabel()}
}
