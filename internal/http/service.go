package http

import (
	"context"

	"github.com/shopspring/decimal"

	"bankmanager/internal/core"
)

//go:generate go tool go.uber.org/mock/mockgen -source=service.go -destination=service_mock.go -package=http

type DirectoryService interface {
	ListBanks() []core.Summary
	CreateBank(name string) (core.BankView, error)
	GetBank(id int) (core.BankView, error)
	RenameBank(id int, name string) (core.BankView, error)
	RemoveBank(id int) error

	CreateBranch(bankID int, name string, address core.Address) (core.BranchView, error)
	GetBranch(ref core.BranchRef) (core.BranchView, error)
	UpdateBranch(ref core.BranchRef, update core.DetailsUpdate) (core.BranchView, error)
	RemoveBranch(ref core.BranchRef) error

	AddCustomer(ref core.BranchRef, name string, address core.Address) (core.CustomerView, error)
	GetCustomer(ref core.CustomerRef) (core.CustomerView, error)
	UpdateCustomer(ref core.CustomerRef, update core.DetailsUpdate) (core.CustomerView, error)
	RemoveCustomer(ref core.CustomerRef) error

	OpenAccount(ref core.CustomerRef) (core.AccountView, error)
	GetAccount(ref core.AccountRef) (core.AccountView, error)
	CloseAccount(ref core.AccountRef) error
	Deposit(ref core.AccountRef, amount decimal.Decimal) (core.AccountView, error)
	Withdraw(ref core.AccountRef, amount decimal.Decimal) (core.AccountView, error)
	Transfer(from, to core.AccountRef, amount decimal.Decimal) (core.TransferResult, error)

	Save(ctx context.Context) error
}
