package core

import "github.com/shopspring/decimal"

// Views are detached copies handed to front ends; mutating them has no effect
// on the directory.

type AddressView struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Valid  bool   `json:"valid"`
	Text   string `json:"text"`
}

// Summary is a one-line listing entry for a child entity.
type Summary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

type AccountView struct {
	Number  int             `json:"number"`
	Balance decimal.Decimal `json:"balance"`
	Label   string          `json:"label"`
}

type CustomerView struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Address  AddressView   `json:"address"`
	Accounts []AccountView `json:"accounts"`
	Label    string        `json:"label"`
}

type BranchView struct {
	Code      int         `json:"code"`
	Name      string      `json:"name"`
	Address   AddressView `json:"address"`
	Customers []Summary   `json:"customers"`
	Label     string      `json:"label"`
}

type BankView struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Branches []Summary `json:"branches"`
	Label    string    `json:"label"`
}

func viewAddress(a Address) AddressView {
	return AddressView{
		Street: a.street,
		City:   a.city,
		State:  a.state,
		Zip:    a.zip,
		Valid:  a.valid,
		Text:   a.String(),
	}
}
