package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Snapshot is the storage-neutral form of a whole Directory. Slices keep the
// insertion order of every level.
type Snapshot struct {
	Banks []BankSnapshot `json:"banks"`
}

type BankSnapshot struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"`
	Branches []BranchSnapshot `json:"branches"`
}

type BranchSnapshot struct {
	Code      int                `json:"code"`
	Name      string             `json:"name"`
	Address   AddressSnapshot    `json:"address"`
	Customers []CustomerSnapshot `json:"customers"`
}

type CustomerSnapshot struct {
	ID       int               `json:"id"`
	Name     string            `json:"name"`
	Address  AddressSnapshot   `json:"address"`
	Accounts []AccountSnapshot `json:"accounts"`
}

type AccountSnapshot struct {
	Number  int             `json:"number"`
	Balance decimal.Decimal `json:"balance"`
}

type AddressSnapshot struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Valid  bool   `json:"valid"`
}

func snapshotAddress(a Address) AddressSnapshot {
	return AddressSnapshot{Street: a.street, City: a.city, State: a.state, Zip: a.zip, Valid: a.valid}
}

func (a AddressSnapshot) restore() Address {
	return RestoreAddress(a.Street, a.City, a.State, a.Zip, a.Valid)
}

func (d *Directory) Snapshot() Snapshot {
	snap := Snapshot{Banks: make([]BankSnapshot, 0, d.banks.Len())}
	for b := range d.banks.Values() {
		bs := BankSnapshot{ID: b.id, Name: b.name, Branches: make([]BranchSnapshot, 0, b.branches.Len())}
		for br := range b.branches.Values() {
			brs := BranchSnapshot{
				Code:      br.code,
				Name:      br.name,
				Address:   snapshotAddress(br.address),
				Customers: make([]CustomerSnapshot, 0, br.customers.Len()),
			}
			for c := range br.customers.Values() {
				cs := CustomerSnapshot{
					ID:       c.id,
					Name:     c.name,
					Address:  snapshotAddress(c.address),
					Accounts: make([]AccountSnapshot, 0, len(c.accounts)),
				}
				for _, a := range c.accounts {
					cs.Accounts = append(cs.Accounts, AccountSnapshot{Number: a.number, Balance: a.balance})
				}
				brs.Customers = append(brs.Customers, cs)
			}
			bs.Branches = append(bs.Branches, brs)
		}
		snap.Banks = append(snap.Banks, bs)
	}

	return snap
}

// RestoreDirectory rebuilds a directory with the exact ids and balances of
// snap. Snapshots that break an entity invariant are rejected whole.
func RestoreDirectory(snap Snapshot, ids *IDGenerator) (*Directory, error) {
	d := NewDirectory(ids)

	for _, bs := range snap.Banks {
		if !BankIDRange.Contains(bs.ID) || d.banks.Has(bs.ID) {
			return nil, fmt.Errorf("%w: bank id %d", ErrCorruptSnapshot, bs.ID)
		}
		if d.bankNamed(bs.Name, 0) != nil {
			return nil, fmt.Errorf("%w: duplicate bank name %q", ErrCorruptSnapshot, bs.Name)
		}

		b := newBank(bs.ID, bs.Name, d.ids)
		for _, brs := range bs.Branches {
			if !BranchCodeRange.Contains(brs.Code) || b.branches.Has(brs.Code) {
				return nil, fmt.Errorf("%w: branch code %d in bank %d", ErrCorruptSnapshot, brs.Code, bs.ID)
			}
			if b.branchNamed(brs.Name, 0) != nil {
				return nil, fmt.Errorf("%w: duplicate branch name %q in bank %d", ErrCorruptSnapshot, brs.Name, bs.ID)
			}

			br := newBranch(brs.Code, brs.Name, brs.Address.restore(), d.ids)
			for _, cs := range brs.Customers {
				c, err := restoreCustomer(cs, d.ids)
				if err != nil {
					return nil, err
				}
				if !br.customers.Put(c.id, c) {
					return nil, fmt.Errorf("%w: customer id %d in branch %d", ErrCorruptSnapshot, c.id, brs.Code)
				}
			}
			b.branches.Put(br.code, br)
		}
		d.banks.Put(b.id, b)
	}

	return d, nil
}

func restoreCustomer(cs CustomerSnapshot, ids *IDGenerator) (*Customer, error) {
	if !CustomerIDRange.Contains(cs.ID) {
		return nil, fmt.Errorf("%w: customer id %d", ErrCorruptSnapshot, cs.ID)
	}
	if len(cs.Accounts) > MaxAccounts {
		return nil, fmt.Errorf("%w: customer %d holds %d accounts", ErrCorruptSnapshot, cs.ID, len(cs.Accounts))
	}

	c := &Customer{id: cs.ID, name: cs.Name, address: cs.Address.restore(), ids: ids}
	for _, as := range cs.Accounts {
		if !AccountNumberRange.Contains(as.Number) || c.hasAccount(as.Number) {
			return nil, fmt.Errorf("%w: account number %d", ErrCorruptSnapshot, as.Number)
		}
		if as.Balance.IsNegative() {
			return nil, fmt.Errorf("%w: account %d has negative balance", ErrCorruptSnapshot, as.Number)
		}
		c.accounts = append(c.accounts, &Account{number: as.Number, balance: as.Balance})
	}

	return c, nil
}
