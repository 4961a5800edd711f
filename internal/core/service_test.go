package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discardLogger = slog.New(slog.DiscardHandler)

func TestService_Load(t *testing.T) {
	t.Parallel()

	populated := newPopulatedDirectory(t).Snapshot()
	corrupt := newPopulatedDirectory(t).Snapshot()
	corrupt.Banks[0].ID = 1

	tests := []struct {
		name          string
		mockSetup     func(*MockStorage)
		expectedOK    bool
		expectedBanks int
	}{
		{
			name: "restores_saved_directory",
			mockSetup: func(m *MockStorage) {
				m.EXPECT().Load(gomock.Any()).Return(populated, nil)
			},
			expectedOK:    true,
			expectedBanks: 2,
		},
		{
			name: "nothing_saved_yet",
			mockSetup: func(m *MockStorage) {
				m.EXPECT().Load(gomock.Any()).Return(Snapshot{}, ErrSnapshotNotFound)
			},
		},
		{
			name: "storage_error",
			mockSetup: func(m *MockStorage) {
				m.EXPECT().Load(gomock.Any()).Return(Snapshot{}, errors.New("disk on fire"))
			},
		},
		{
			name: "corrupt_snapshot",
			mockSetup: func(m *MockStorage) {
				m.EXPECT().Load(gomock.Any()).Return(corrupt, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			storage := NewMockStorage(ctrl)
			tt.mockSetup(storage)

			service := NewService(storage, discardLogger)
			_, err := service.CreateBank("Stale")
			require.NoError(t, err)

			require.Equal(t, tt.expectedOK, service.Load(context.Background()))
			require.Len(t, service.ListBanks(), tt.expectedBanks)
			require.False(t, service.Dirty())
		})
	}
}

func TestService_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes_whole_directory", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		storage := NewMockStorage(ctrl)
		service := NewService(storage, discardLogger)

		bank, err := service.CreateBank("Acme")
		require.NoError(t, err)
		require.True(t, service.Dirty())

		storage.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snap Snapshot) error {
				require.Len(t, snap.Banks, 1)
				require.Equal(t, bank.ID, snap.Banks[0].ID)
				require.Equal(t, "Acme", snap.Banks[0].Name)
				return nil
			}).
			Times(1)

		require.NoError(t, service.Save(context.Background()))
		require.False(t, service.Dirty())
	})

	t.Run("storage_failure_keeps_dirty", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		storage := NewMockStorage(ctrl)
		service := NewService(storage, discardLogger)

		_, err := service.CreateBank("Acme")
		require.NoError(t, err)

		dbErr := errors.New("read-only file system")
		storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(dbErr)

		err = service.Save(context.Background())
		require.ErrorIs(t, err, dbErr)
		require.True(t, service.Dirty())
	})
}

type recordedOp struct {
	op  string
	err error
}

type recorderStub struct {
	ops []recordedOp
}

func (r *recorderStub) RecordOperation(op string, err error) {
	r.ops = append(r.ops, recordedOp{op: op, err: err})
}

func TestService_RecordsOperations(t *testing.T) {
	t.Parallel()

	rec := &recorderStub{}
	service := NewService(nil, discardLogger, WithRecorder(rec))

	_, err := service.CreateBank("Acme")
	require.NoError(t, err)
	_, err = service.CreateBank("ACME")
	require.ErrorIs(t, err, ErrDuplicateName)

	require.Len(t, rec.ops, 2)
	require.Equal(t, "create_bank", rec.ops[0].op)
	require.NoError(t, rec.ops[0].err)
	require.ErrorIs(t, rec.ops[1].err, ErrDuplicateName)
}

// newServiceWithAccount builds bank -> branch -> customer -> account and
// returns the account reference.
func newServiceWithAccount(t *testing.T) (*Service, AccountRef) {
	t.Helper()

	service := NewService(nil, discardLogger)

	bank, err := service.CreateBank("Acme")
	require.NoError(t, err)

	branch, err := service.CreateBranch(bank.ID, "Downtown", testAddress)
	require.NoError(t, err)
	branchRef := BranchRef{BankID: bank.ID, BranchCode: branch.Code}

	customer, err := service.AddCustomer(branchRef, "Alice", testAddress)
	require.NoError(t, err)
	customerRef := CustomerRef{BranchRef: branchRef, CustomerID: customer.ID}

	account, err := service.OpenAccount(customerRef)
	require.NoError(t, err)

	return service, AccountRef{CustomerRef: customerRef, AccountNumber: account.Number}
}

func TestService_LookupErrors(t *testing.T) {
	t.Parallel()

	service, ref := newServiceWithAccount(t)

	badBank := ref
	badBank.BankID++
	badBranch := ref
	badBranch.BranchCode = 1000
	badCustomer := ref
	badCustomer.CustomerID = 1
	badAccount := ref
	badAccount.AccountNumber = 12345

	for _, r := range []AccountRef{badBank, badBranch, badCustomer, badAccount} {
		_, err := service.GetAccount(r)
		require.ErrorIs(t, err, ErrNotFound)
	}

	_, err := service.GetBank(badBank.BankID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetBranch(badBranch.BranchRef)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetCustomer(badCustomer.CustomerRef)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, service.RemoveBank(badBank.BankID), ErrNotFound)
	require.ErrorIs(t, service.RemoveBranch(badBranch.BranchRef), ErrNotFound)
	require.ErrorIs(t, service.RemoveCustomer(badCustomer.CustomerRef), ErrNotFound)
	require.ErrorIs(t, service.CloseAccount(badAccount), ErrNotFound)
}

func TestService_AccountOperations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		run             func(s *Service, ref AccountRef) error
		expectedErr     error
		expectedBalance string
	}{
		{
			name: "deposit",
			run: func(s *Service, ref AccountRef) error {
				_, err := s.Deposit(ref, dec("25"))
				return err
			},
			expectedBalance: "125",
		},
		{
			name: "deposit_zero",
			run: func(s *Service, ref AccountRef) error {
				_, err := s.Deposit(ref, dec("0"))
				return err
			},
			expectedErr:     ErrInvalidAmount,
			expectedBalance: "100",
		},
		{
			name: "withdraw",
			run: func(s *Service, ref AccountRef) error {
				_, err := s.Withdraw(ref, dec("99.99"))
				return err
			},
			expectedBalance: "0.01",
		},
		{
			name: "withdraw_negative",
			run: func(s *Service, ref AccountRef) error {
				_, err := s.Withdraw(ref, dec("-1"))
				return err
			},
			expectedErr:     ErrInvalidAmount,
			expectedBalance: "100",
		},
		{
			name: "withdraw_overdraft",
			run: func(s *Service, ref AccountRef) error {
				_, err := s.Withdraw(ref, dec("100.01"))
				return err
			},
			expectedErr:     ErrInsufficientFunds,
			expectedBalance: "100",
		},
		{
			name: "transfer_to_self",
			run: func(s *Service, ref AccountRef) error {
				_, err := s.Transfer(ref, ref, dec("1"))
				return err
			},
			expectedErr:     ErrSameAccount,
			expectedBalance: "100",
		},
		{
			name: "transfer_to_unknown_account",
			run: func(s *Service, ref AccountRef) error {
				to := ref
				to.AccountNumber = 999999999
				_, err := s.Transfer(ref, to, dec("1"))
				return err
			},
			expectedErr:     ErrNotFound,
			expectedBalance: "100",
		},
		{
			name: "close_with_funds",
			run: func(s *Service, ref AccountRef) error {
				return s.CloseAccount(ref)
			},
			expectedErr:     ErrNonZeroBalance,
			expectedBalance: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, ref := newServiceWithAccount(t)
			_, err := service.Deposit(ref, dec("100"))
			require.NoError(t, err)

			err = tt.run(service, ref)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}

			account, err := service.GetAccount(ref)
			require.NoError(t, err)
			require.True(t, dec(tt.expectedBalance).Equal(account.Balance), "balance %s", account.Balance)
		})
	}
}

func TestService_AccountLimit(t *testing.T) {
	t.Parallel()

	service, ref := newServiceWithAccount(t)
	for range MaxAccounts - 1 {
		_, err := service.OpenAccount(ref.CustomerRef)
		require.NoError(t, err)
	}

	_, err := service.OpenAccount(ref.CustomerRef)
	require.ErrorIs(t, err, ErrAccountLimit)

	customer, err := service.GetCustomer(ref.CustomerRef)
	require.NoError(t, err)
	require.Len(t, customer.Accounts, MaxAccounts)
}

func TestService_UpdateBranch(t *testing.T) {
	t.Parallel()

	service, ref := newServiceWithAccount(t)
	other, err := service.CreateBranch(ref.BankID, "Uptown", testAddress)
	require.NoError(t, err)

	_, err = service.CreateBranch(ref.BankID, "UPTOWN", testAddress)
	require.ErrorIs(t, err, ErrDuplicateName)

	clash := "uptown"
	newAddress := ParseAddress("2 Pine St, Oakland, CA, 94601")
	_, err = service.UpdateBranch(ref.BranchRef, DetailsUpdate{Name: &clash, Address: &newAddress})
	require.ErrorIs(t, err, ErrDuplicateName)

	unchanged, err := service.GetBranch(ref.BranchRef)
	require.NoError(t, err)
	require.Equal(t, "Downtown", unchanged.Name)
	require.Equal(t, "San Francisco", unchanged.Address.City)

	name := "Midtown"
	updated, err := service.UpdateBranch(ref.BranchRef, DetailsUpdate{Name: &name, Address: &newAddress})
	require.NoError(t, err)
	require.Equal(t, "Midtown", updated.Name)
	require.Equal(t, "2 Pine St, Oakland, CA 94601", updated.Address.Text)

	bank, err := service.GetBank(ref.BankID)
	require.NoError(t, err)
	require.Equal(t, []Summary{
		{ID: ref.BranchCode, Name: "Midtown", Label: fmt.Sprintf("[%d] Midtown", ref.BranchCode)},
		{ID: other.Code, Name: "Uptown", Label: fmt.Sprintf("[%d] Uptown", other.Code)},
	}, bank.Branches)
}

func TestService_UpdateCustomer(t *testing.T) {
	t.Parallel()

	service, ref := newServiceWithAccount(t)

	name := "Alice Smith"
	updated, err := service.UpdateCustomer(ref.CustomerRef, DetailsUpdate{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Alice Smith", updated.Name)
	require.True(t, updated.Address.Valid)

	bad := ParseAddress("1 Way, Town, ST, 1")
	updated, err = service.UpdateCustomer(ref.CustomerRef, DetailsUpdate{Address: &bad})
	require.NoError(t, err)
	require.Equal(t, "Alice Smith", updated.Name)
	require.False(t, updated.Address.Valid)
	require.Equal(t, "Invalid Address", updated.Address.Text)
}

func TestService_RenameBank(t *testing.T) {
	t.Parallel()

	service := NewService(nil, discardLogger)
	acme, err := service.CreateBank("Acme")
	require.NoError(t, err)
	_, err = service.CreateBank("Globex")
	require.NoError(t, err)

	_, err = service.RenameBank(acme.ID, "GLOBEX")
	require.ErrorIs(t, err, ErrDuplicateName)

	renamed, err := service.RenameBank(acme.ID, "Acme Holdings")
	require.NoError(t, err)
	require.Equal(t, "Acme Holdings", renamed.Name)

	_, err = service.RenameBank(1, "Nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_EndToEnd(t *testing.T) {
	t.Parallel()

	service := NewService(nil, discardLogger)

	bank, err := service.CreateBank("Acme")
	require.NoError(t, err)

	branch, err := service.CreateBranch(bank.ID, "Downtown", testAddress)
	require.NoError(t, err)
	branchRef := BranchRef{BankID: bank.ID, BranchCode: branch.Code}

	customer, err := service.AddCustomer(branchRef, "Alice", testAddress)
	require.NoError(t, err)
	customerRef := CustomerRef{BranchRef: branchRef, CustomerID: customer.ID}

	first, err := service.OpenAccount(customerRef)
	require.NoError(t, err)
	require.True(t, first.Balance.IsZero())
	ref1 := AccountRef{CustomerRef: customerRef, AccountNumber: first.Number}

	first, err = service.Deposit(ref1, dec("100"))
	require.NoError(t, err)
	require.True(t, dec("100").Equal(first.Balance))

	_, err = service.Withdraw(ref1, dec("150"))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	first, err = service.GetAccount(ref1)
	require.NoError(t, err)
	require.True(t, dec("100").Equal(first.Balance))

	second, err := service.OpenAccount(customerRef)
	require.NoError(t, err)
	ref2 := AccountRef{CustomerRef: customerRef, AccountNumber: second.Number}

	customer, err = service.GetCustomer(customerRef)
	require.NoError(t, err)
	require.Len(t, customer.Accounts, 2)

	res, err := service.Transfer(ref1, ref2, dec("100"))
	require.NoError(t, err)
	require.True(t, res.From.Balance.IsZero())
	require.True(t, dec("100").Equal(res.To.Balance))

	require.NoError(t, service.CloseAccount(ref1))
	require.ErrorIs(t, service.CloseAccount(ref2), ErrNonZeroBalance)

	customer, err = service.GetCustomer(customerRef)
	require.NoError(t, err)
	require.Len(t, customer.Accounts, 1)
	require.Equal(t, second.Number, customer.Accounts[0].Number)
}
