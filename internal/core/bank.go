package core

import (
	"fmt"
	"iter"
	"strings"
)

type Bank struct {
	id       int
	name     string
	branches *orderedMap[*Branch]
	ids      *IDGenerator
}

func newBank(id int, name string, ids *IDGenerator) *Bank {
	return &Bank{
		id:       id,
		name:     name,
		branches: newOrderedMap[*Branch](),
		ids:      ids,
	}
}

func (b *Bank) ID() int {
	return b.id
}

func (b *Bank) Name() string {
	return b.name
}

// CreateBranch refuses a name already used by a branch of this bank, ignoring case.
func (b *Bank) CreateBranch(name string, address Address) bool {
	return b.createBranch(name, address) != nil
}

func (b *Bank) createBranch(name string, address Address) *Branch {
	if b.branchNamed(name, 0) != nil {
		return nil
	}

	code := b.ids.Unique(BranchCodeRange, b.branches.Has)
	br := newBranch(code, name, address, b.ids)
	b.branches.Put(code, br)
	return br
}

// RenameBranch applies the creation-time uniqueness rule against the other
// branches of this bank.
func (b *Bank) RenameBranch(code int, name string) bool {
	br := b.Branch(code)
	if br == nil || b.branchNamed(name, code) != nil {
		return false
	}

	br.SetName(name)
	return true
}

func (b *Bank) RemoveBranch(code int) bool {
	return b.branches.Delete(code)
}

func (b *Bank) Branch(code int) *Branch {
	br, _ := b.branches.Get(code)
	return br
}

func (b *Bank) Branches() iter.Seq[*Branch] {
	return b.branches.Values()
}

func (b *Bank) NumBranches() int {
	return b.branches.Len()
}

func (b *Bank) branchNamed(name string, except int) *Branch {
	for br := range b.branches.Values() {
		if br.code != except && strings.EqualFold(br.name, name) {
			return br
		}
	}

	return nil
}

func (b *Bank) ShortLabel() string {
	return fmt.Sprintf("[%d] %s", b.id, b.name)
}

func (b *Bank) LongLabel() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%s [%d]\n\tAvailable Branches:", b.name, b.id)
	if b.branches.Len() == 0 {
		s.WriteString("\n\t\t- No branches available -")
		return s.String()
	}

	for br := range b.branches.Values() {
		s.WriteString("\n\t\t")
		s.WriteString(br.ShortLabel())
	}

	return s.String()
}

func (b *Bank) View() BankView {
	v := BankView{
		ID:       b.id,
		Name:     b.name,
		Branches: make([]Summary, 0, b.branches.Len()),
		Label:    b.LongLabel(),
	}
	for br := range b.branches.Values() {
		v.Branches = append(v.Branches, br.summary())
	}

	return v
}

func (b *Bank) summary() Summary {
	return Summary{ID: b.id, Name: b.name, Label: b.ShortLabel()}
}
