package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"bankmanager/internal/core"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type NameRequest struct {
	Name string `json:"name" validate:"required,max=100,excludesall=0123456789"`
}

// AddressRequest accepts either the four fields or a single
// "street, city, state, zip" text. Malformed values are not rejected; the
// resulting address is flagged invalid.
type AddressRequest struct {
	Text   string `json:"text,omitempty"`
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

func (a AddressRequest) ToDomain() core.Address {
	if a.Text != "" {
		return core.ParseAddress(a.Text)
	}

	return core.NewAddress(a.Street, a.City, a.State, a.Zip)
}

type CreateBranchRequest struct {
	Name    string          `json:"name" validate:"required,max=100,excludesall=0123456789"`
	Address *AddressRequest `json:"address" validate:"required"`
}

type AddCustomerRequest struct {
	Name    string          `json:"name" validate:"required,max=100,excludesall=0123456789"`
	Address *AddressRequest `json:"address" validate:"required"`
}

type UpdateDetailsRequest struct {
	Name    *string         `json:"name,omitempty" validate:"omitnil,min=1,max=100,excludesall=0123456789"`
	Address *AddressRequest `json:"address,omitempty"`
}

func (req UpdateDetailsRequest) ToDomain() (core.DetailsUpdate, error) {
	if req.Name == nil && req.Address == nil {
		return core.DetailsUpdate{}, errors.New("nothing to update")
	}

	update := core.DetailsUpdate{Name: req.Name}
	if req.Address != nil {
		a := req.Address.ToDomain()
		update.Address = &a
	}

	return update, nil
}

type AmountRequest struct {
	Amount string `json:"amount" validate:"required"`
}

type TransferTarget struct {
	BankID        int `json:"bank_id,omitempty"`
	BranchCode    int `json:"branch_code,omitempty"`
	CustomerID    int `json:"customer_id" validate:"required"`
	AccountNumber int `json:"account_number" validate:"required"`
}

// TransferRequest defaults the target bank and branch to the source's, which
// matches a transfer within one branch.
type TransferRequest struct {
	Amount string         `json:"amount" validate:"required"`
	To     TransferTarget `json:"to" validate:"required"`
}

func (req TransferRequest) Target(from core.AccountRef) core.AccountRef {
	to := core.AccountRef{
		CustomerRef: core.CustomerRef{
			BranchRef:  from.BranchRef,
			CustomerID: req.To.CustomerID,
		},
		AccountNumber: req.To.AccountNumber,
	}
	if req.To.BankID != 0 {
		to.BankID = req.To.BankID
	}
	if req.To.BranchCode != 0 {
		to.BranchCode = req.To.BranchCode
	}

	return to
}

// ParseAmount reads a positive amount with at most two decimal places.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Decimal{}, fmt.Errorf("amount cannot be empty")
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount format: %w", err)
	}

	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount must be greater than zero")
	}

	if !d.Equal(d.Round(2)) {
		return decimal.Decimal{}, fmt.Errorf("amount has more than two decimal places")
	}

	return d, nil
}
