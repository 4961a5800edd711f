package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCustomer() *Customer {
	return &Customer{
		id:      12345,
		name:    "Alice",
		address: ParseAddress("1 Main St, Springfield, IL, 62704"),
		ids:     NewIDGenerator(nil),
	}
}

func TestCustomer_OpenAccount(t *testing.T) {
	t.Parallel()

	c := newTestCustomer()

	seen := map[int]bool{}
	for range MaxAccounts {
		a := c.OpenAccount()
		require.NotNil(t, a)
		require.True(t, a.Balance().IsZero())
		require.True(t, AccountNumberRange.Contains(a.Number()))
		require.False(t, seen[a.Number()], "duplicate account number %d", a.Number())
		seen[a.Number()] = true
	}

	before := collect(c.Accounts())
	require.Nil(t, c.OpenAccount())
	require.Equal(t, MaxAccounts, c.NumAccounts())
	require.Equal(t, before, collect(c.Accounts()))
}

func TestCustomer_OpenAccountRetriesOnCollision(t *testing.T) {
	t.Parallel()

	c := newTestCustomer()
	c.ids = NewIDGenerator(&scriptedSource{values: []int{0, 0, 1}})

	first := c.OpenAccount()
	second := c.OpenAccount()

	require.Equal(t, 100000000, first.Number())
	require.Equal(t, 100000001, second.Number())
}

func TestCustomer_CloseAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setup      func(c *Customer) *Account
		expectedOK bool
		remaining  int
	}{
		{
			name:       "zero_balance",
			setup:      func(c *Customer) *Account { return c.OpenAccount() },
			expectedOK: true,
			remaining:  1,
		},
		{
			name: "non_zero_balance",
			setup: func(c *Customer) *Account {
				a := c.OpenAccount()
				a.Deposit(dec("0.01"))
				return a
			},
			remaining: 2,
		},
		{
			name:      "foreign_account",
			setup:     func(*Customer) *Account { return &Account{number: 111111111} },
			remaining: 1,
		},
		{
			name:      "nil_account",
			setup:     func(*Customer) *Account { return nil },
			remaining: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestCustomer()
			kept := c.OpenAccount()
			target := tt.setup(c)

			require.Equal(t, tt.expectedOK, c.CloseAccount(target))
			require.Equal(t, tt.remaining, c.NumAccounts())
			require.Same(t, kept, c.Account(kept.Number()))
		})
	}
}

func TestCustomer_CloseAccountKeepsOrder(t *testing.T) {
	t.Parallel()

	c := newTestCustomer()
	a1, a2, a3 := c.OpenAccount(), c.OpenAccount(), c.OpenAccount()

	require.True(t, c.CloseAccount(a2))
	require.Equal(t, []*Account{a1, a3}, collect(c.Accounts()))
}

func TestCustomer_Account(t *testing.T) {
	t.Parallel()

	c := newTestCustomer()
	c.accounts = []*Account{{number: 123456789}}

	require.NotNil(t, c.Account(123456789))
	require.Nil(t, c.Account(987654321))
	require.Nil(t, c.Account(12345678))
	require.Nil(t, c.Account(1234567890))
	require.Nil(t, c.Account(-12345678))
}

func TestCustomer_Labels(t *testing.T) {
	t.Parallel()

	c := newTestCustomer()
	require.Equal(t, "(12345) Alice", c.ShortLabel())
	require.Equal(t, "Alice (12345)\n1 Main St, Springfield, IL 62704\n\tNo accounts open", c.LongLabel())

	c.accounts = []*Account{{number: 123456789, balance: dec("100")}}
	require.Equal(t,
		"Alice (12345)\n1 Main St, Springfield, IL 62704\n\tAccount Number: 123456789\n\tBalance: $100.00",
		c.LongLabel(),
	)
}

func TestCustomer_Setters(t *testing.T) {
	t.Parallel()

	c := newTestCustomer()
	c.SetName("Alice B")
	c.SetAddress(ParseAddress("bad"))

	require.Equal(t, "Alice B", c.Name())
	require.False(t, c.Address().Valid())
}
