package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"bankmanager/internal/core"
)

const banner = `================================================================================
Welcome to Banking Manager. Here, organize every inch of detail of your banks,
from various branches to individual customer accounts. To begin, type in the
appropriate input whenever prompted. To move back, simply enter -1. Enjoy.
================================================================================`

const (
	back    = -1
	cancel  = "0"
	confirm = "yes"
)

type Service interface {
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
	Dirty() bool
}

var validate = validator.New()

type nameInput struct {
	Name string `validate:"required,excludesall=0123456789"`
}

// Console drives the directory through numbered text menus. Closing the input
// behaves like quitting from the bank selection.
type Console struct {
	service Service
	in      *bufio.Scanner
	out     io.Writer
}

func New(service Service, in io.Reader, out io.Writer) *Console {
	return &Console{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run shows menus until the user quits, then saves the session. A session
// without changes is not saved, which leaves a snapshot that failed to load
// untouched.
func (c *Console) Run(ctx context.Context) error {
	c.println(banner)

	if err := c.selectBanks(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	var err error
	if !c.service.Dirty() {
		c.println("No changes to save.")
	} else if err = c.service.Save(ctx); err != nil {
		c.println("Saving error. This session is not saved.")
	} else {
		c.println("Database saved")
	}
	c.println("Thank you for using Banking Manager")

	return err
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// readLine returns the next trimmed line, or io.EOF once input is exhausted.
func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) readInt(prompt string) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		c.println("\nInvalid Input. Please enter integers only.")
	}
}

// readName keeps prompting until a name without digits is entered. It reports
// false when the user cancels with "0".
func (c *Console) readName(prompt, kind string) (string, bool, error) {
	for {
		name, err := c.readLine(prompt)
		if err != nil {
			return "", false, err
		}
		if name == cancel {
			return "", false, nil
		}
		if validate.Struct(nameInput{Name: name}) == nil {
			return name, true, nil
		}
		c.printf("%s name is invalid, please enter alphabets only.\n", kind)
	}
}

// readAddress reads "street, city, state, zip". It reports false on "0".
func (c *Console) readAddress(kind string) (core.Address, bool, error) {
	c.printf("Please enter %s address (Street, City, State, Zip Code). Enter \"0\" to cancel.\n", kind)
	line, err := c.readLine("Address: ")
	if err != nil || line == cancel {
		return core.Address{}, false, err
	}

	return core.ParseAddress(line), true, nil
}

// readAmount accepts a positive amount with at most two decimal places. It
// reports false when the user enters 0.
func (c *Console) readAmount() (decimal.Decimal, bool, error) {
	for {
		line, err := c.readLine("Amount: $")
		if err != nil {
			return decimal.Decimal{}, false, err
		}

		amount, err := decimal.NewFromString(line)
		switch {
		case err != nil, amount.IsNegative(), !amount.Equal(amount.Round(2)):
			c.println("Invalid amount. Please enter a positive nominal.")
		case amount.IsZero():
			return decimal.Decimal{}, false, nil
		default:
			return amount, true, nil
		}
	}
}

func (c *Console) confirmed() (bool, error) {
	c.println("Type \"YES\" to proceed.")
	line, err := c.readLine("Input: ")
	if err != nil {
		return false, err
	}

	return strings.EqualFold(line, confirm), nil
}
