package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

type BranchRef struct {
	BankID     int
	BranchCode int
}

type CustomerRef struct {
	BranchRef
	CustomerID int
}

type AccountRef struct {
	CustomerRef
	AccountNumber int
}

// DetailsUpdate carries the optional fields of a branch or customer edit.
// Nil fields are left untouched.
type DetailsUpdate struct {
	Name    *string
	Address *Address
}

type TransferResult struct {
	From AccountView `json:"from"`
	To   AccountView `json:"to"`
}

// Recorder observes the outcome of every mutating operation.
type Recorder interface {
	RecordOperation(op string, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordOperation(string, error) {}

type Option func(*Service)

func WithRandomSource(src RandomSource) Option {
	return func(s *Service) {
		s.ids = NewIDGenerator(src)
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// Service owns the process-wide Directory. Every operation holds the same
// lock, so one Service may back several concurrent front ends.
type Service struct {
	mu        sync.Mutex
	directory *Directory
	dirty     bool

	storage  Storage
	logger   Logger
	recorder Recorder
	ids      *IDGenerator
}

func NewService(storage Storage, logger Logger, opts ...Option) *Service {
	if logger == nil {
		logger = nopLogger{}
	}

	s := &Service{
		storage:  storage,
		logger:   logger,
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = NewIDGenerator(nil)
	}
	s.directory = NewDirectory(s.ids)

	return s
}

// Load replaces the directory with the stored snapshot. Any failure leaves an
// empty directory in place and is only logged. It reports whether a snapshot
// was restored.
func (s *Service) Load(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.directory = NewDirectory(s.ids)
	s.dirty = false

	snap, err := s.storage.Load(ctx)
	s.recorder.RecordOperation("load", err)
	if errors.Is(err, ErrSnapshotNotFound) {
		s.logger.InfoContext(ctx, "no saved directory, starting empty")
		return false
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load directory", "error", err)
		return false
	}

	d, err := RestoreDirectory(snap, s.ids)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to restore directory", "error", err)
		return false
	}

	s.directory = d
	s.logger.InfoContext(ctx, "directory loaded", "banks", d.Size())
	return true
}

func (s *Service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.directory.Snapshot()
	err := s.storage.Save(ctx, snap)
	s.recorder.RecordOperation("save", err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save directory", "error", err)
		return fmt.Errorf("save directory: %w", err)
	}

	s.dirty = false
	s.logger.InfoContext(ctx, "directory saved", "banks", len(snap.Banks))
	return nil
}

// Dirty reports whether the directory changed since the last Load or Save.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dirty
}

func (s *Service) mutate(op string, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := fn()
	if err == nil {
		s.dirty = true
	}
	s.recorder.RecordOperation(op, err)

	return err
}

func (s *Service) read(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn()
}

func (s *Service) ListBanks() []Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	banks := make([]Summary, 0, s.directory.Size())
	for b := range s.directory.Banks() {
		banks = append(banks, b.summary())
	}

	return banks
}

func (s *Service) CreateBank(name string) (BankView, error) {
	var v BankView
	err := s.mutate("create_bank", func() error {
		b := s.directory.createBank(name)
		if b == nil {
			return fmt.Errorf("bank %q: %w", name, ErrDuplicateName)
		}
		v = b.View()
		return nil
	})

	return v, err
}

func (s *Service) GetBank(id int) (BankView, error) {
	var v BankView
	err := s.read(func() error {
		b, err := s.bank(id)
		if err != nil {
			return err
		}
		v = b.View()
		return nil
	})

	return v, err
}

func (s *Service) RenameBank(id int, name string) (BankView, error) {
	var v BankView
	err := s.mutate("rename_bank", func() error {
		b, err := s.bank(id)
		if err != nil {
			return err
		}
		if !s.directory.RenameBank(id, name) {
			return fmt.Errorf("bank %q: %w", name, ErrDuplicateName)
		}
		v = b.View()
		return nil
	})

	return v, err
}

func (s *Service) RemoveBank(id int) error {
	return s.mutate("remove_bank", func() error {
		if !s.directory.RemoveBank(id) {
			return fmt.Errorf("bank %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

func (s *Service) CreateBranch(bankID int, name string, address Address) (BranchView, error) {
	var v BranchView
	err := s.mutate("create_branch", func() error {
		b, err := s.bank(bankID)
		if err != nil {
			return err
		}
		br := b.createBranch(name, address)
		if br == nil {
			return fmt.Errorf("branch %q: %w", name, ErrDuplicateName)
		}
		v = br.View()
		return nil
	})

	return v, err
}

func (s *Service) GetBranch(ref BranchRef) (BranchView, error) {
	var v BranchView
	err := s.read(func() error {
		_, br, err := s.branch(ref)
		if err != nil {
			return err
		}
		v = br.View()
		return nil
	})

	return v, err
}

func (s *Service) UpdateBranch(ref BranchRef, update DetailsUpdate) (BranchView, error) {
	var v BranchView
	err := s.mutate("update_branch", func() error {
		b, br, err := s.branch(ref)
		if err != nil {
			return err
		}
		if update.Name != nil && !b.RenameBranch(ref.BranchCode, *update.Name) {
			return fmt.Errorf("branch %q: %w", *update.Name, ErrDuplicateName)
		}
		if update.Address != nil {
			br.SetAddress(*update.Address)
		}
		v = br.View()
		return nil
	})

	return v, err
}

func (s *Service) RemoveBranch(ref BranchRef) error {
	return s.mutate("remove_branch", func() error {
		b, _, err := s.branch(ref)
		if err != nil {
			return err
		}
		b.RemoveBranch(ref.BranchCode)
		return nil
	})
}

func (s *Service) AddCustomer(ref BranchRef, name string, address Address) (CustomerView, error) {
	var v CustomerView
	err := s.mutate("add_customer", func() error {
		_, br, err := s.branch(ref)
		if err != nil {
			return err
		}
		v = br.addCustomer(name, address).View()
		return nil
	})

	return v, err
}

func (s *Service) GetCustomer(ref CustomerRef) (CustomerView, error) {
	var v CustomerView
	err := s.read(func() error {
		_, c, err := s.customer(ref)
		if err != nil {
			return err
		}
		v = c.View()
		return nil
	})

	return v, err
}

func (s *Service) UpdateCustomer(ref CustomerRef, update DetailsUpdate) (CustomerView, error) {
	var v CustomerView
	err := s.mutate("update_customer", func() error {
		_, c, err := s.customer(ref)
		if err != nil {
			return err
		}
		if update.Name != nil {
			c.SetName(*update.Name)
		}
		if update.Address != nil {
			c.SetAddress(*update.Address)
		}
		v = c.View()
		return nil
	})

	return v, err
}

func (s *Service) RemoveCustomer(ref CustomerRef) error {
	return s.mutate("remove_customer", func() error {
		br, _, err := s.customer(ref)
		if err != nil {
			return err
		}
		br.RemoveCustomer(ref.CustomerID)
		return nil
	})
}

func (s *Service) OpenAccount(ref CustomerRef) (AccountView, error) {
	var v AccountView
	err := s.mutate("open_account", func() error {
		_, c, err := s.customer(ref)
		if err != nil {
			return err
		}
		a := c.OpenAccount()
		if a == nil {
			return fmt.Errorf("customer %d: %w", ref.CustomerID, ErrAccountLimit)
		}
		v = a.View()
		return nil
	})

	return v, err
}

func (s *Service) GetAccount(ref AccountRef) (AccountView, error) {
	var v AccountView
	err := s.read(func() error {
		_, a, err := s.account(ref)
		if err != nil {
			return err
		}
		v = a.View()
		return nil
	})

	return v, err
}

func (s *Service) CloseAccount(ref AccountRef) error {
	return s.mutate("close_account", func() error {
		c, a, err := s.account(ref)
		if err != nil {
			return err
		}
		if !c.CloseAccount(a) {
			return fmt.Errorf("account %d: %w", a.number, ErrNonZeroBalance)
		}
		return nil
	})
}

func (s *Service) Deposit(ref AccountRef, amount decimal.Decimal) (AccountView, error) {
	var v AccountView
	err := s.mutate("deposit", func() error {
		_, a, err := s.account(ref)
		if err != nil {
			return err
		}
		if !a.Deposit(amount) {
			return fmt.Errorf("deposit %s: %w", amount, ErrInvalidAmount)
		}
		v = a.View()
		return nil
	})

	return v, err
}

func (s *Service) Withdraw(ref AccountRef, amount decimal.Decimal) (AccountView, error) {
	var v AccountView
	err := s.mutate("withdraw", func() error {
		_, a, err := s.account(ref)
		if err != nil {
			return err
		}
		if err := checkDebit(a, amount); err != nil {
			return err
		}
		a.Withdraw(amount)
		v = a.View()
		return nil
	})

	return v, err
}

// Transfer moves amount between any two accounts of the directory.
func (s *Service) Transfer(from, to AccountRef, amount decimal.Decimal) (TransferResult, error) {
	var res TransferResult
	err := s.mutate("transfer", func() error {
		_, src, err := s.account(from)
		if err != nil {
			return err
		}
		_, dst, err := s.account(to)
		if err != nil {
			return err
		}
		if src.Equal(dst) {
			return fmt.Errorf("account %d: %w", src.number, ErrSameAccount)
		}
		if err := checkDebit(src, amount); err != nil {
			return err
		}
		src.Transfer(dst, amount)
		res = TransferResult{From: src.View(), To: dst.View()}
		return nil
	})

	return res, err
}

func checkDebit(a *Account, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount %s: %w", amount, ErrInvalidAmount)
	}
	if !a.HasSufficientFunds(amount) {
		return fmt.Errorf("account %d balance %s: %w", a.number, FormatMoney(a.balance), ErrInsufficientFunds)
	}

	return nil
}

func (s *Service) bank(id int) (*Bank, error) {
	b := s.directory.Bank(id)
	if b == nil {
		return nil, fmt.Errorf("bank %d: %w", id, ErrNotFound)
	}

	return b, nil
}

func (s *Service) branch(ref BranchRef) (*Bank, *Branch, error) {
	b, err := s.bank(ref.BankID)
	if err != nil {
		return nil, nil, err
	}

	br := b.Branch(ref.BranchCode)
	if br == nil {
		return nil, nil, fmt.Errorf("branch %d: %w", ref.BranchCode, ErrNotFound)
	}

	return b, br, nil
}

func (s *Service) customer(ref CustomerRef) (*Branch, *Customer, error) {
	_, br, err := s.branch(ref.BranchRef)
	if err != nil {
		return nil, nil, err
	}

	c := br.Customer(ref.CustomerID)
	if c == nil {
		return nil, nil, fmt.Errorf("customer %d: %w", ref.CustomerID, ErrNotFound)
	}

	return br, c, nil
}

func (s *Service) account(ref AccountRef) (*Customer, *Account, error) {
	_, c, err := s.customer(ref.CustomerRef)
	if err != nil {
		return nil, nil, err
	}

	a := c.Account(ref.AccountNumber)
	if a == nil {
		return nil, nil, fmt.Errorf("account %d: %w", ref.AccountNumber, ErrNotFound)
	}

	return c, a, nil
}
