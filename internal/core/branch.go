package core

import (
	"fmt"
	"iter"
	"strings"
)

type Branch struct {
	code      int
	name      string
	address   Address
	customers *orderedMap[*Customer]
	ids       *IDGenerator
}

func newBranch(code int, name string, address Address, ids *IDGenerator) *Branch {
	return &Branch{
		code:      code,
		name:      name,
		address:   address,
		customers: newOrderedMap[*Customer](),
		ids:       ids,
	}
}

func (b *Branch) Code() int {
	return b.code
}

func (b *Branch) Name() string {
	return b.name
}

func (b *Branch) Address() Address {
	return b.address
}

func (b *Branch) SetName(name string) {
	b.name = name
}

func (b *Branch) SetAddress(address Address) {
	b.address = address
}

// AddCustomer always inserts: customer names may repeat within a branch. It
// reports true when the customer was newly inserted.
func (b *Branch) AddCustomer(name string, address Address) bool {
	return b.addCustomer(name, address) != nil
}

func (b *Branch) addCustomer(name string, address Address) *Customer {
	id := b.ids.Unique(CustomerIDRange, b.customers.Has)
	c := &Customer{id: id, name: name, address: address, ids: b.ids}
	if !b.customers.Put(id, c) {
		return nil
	}

	return c
}

func (b *Branch) RemoveCustomer(id int) bool {
	return b.customers.Delete(id)
}

func (b *Branch) Customer(id int) *Customer {
	c, _ := b.customers.Get(id)
	return c
}

func (b *Branch) Customers() iter.Seq[*Customer] {
	return b.customers.Values()
}

func (b *Branch) NumCustomers() int {
	return b.customers.Len()
}

func (b *Branch) ShortLabel() string {
	return fmt.Sprintf("[%d] %s", b.code, b.name)
}

func (b *Branch) LongLabel() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%s [%d]\n\t%s\n\tCustomers:", b.name, b.code, b.address)
	if b.customers.Len() == 0 {
		s.WriteString("\n\t\t- No customers found -")
		return s.String()
	}

	for c := range b.customers.Values() {
		s.WriteString("\n\t\t")
		s.WriteString(c.ShortLabel())
	}

	return s.String()
}

func (b *Branch) View() BranchView {
	v := BranchView{
		Code:      b.code,
		Name:      b.name,
		Address:   viewAddress(b.address),
		Customers: make([]Summary, 0, b.customers.Len()),
		Label:     b.LongLabel(),
	}
	for c := range b.customers.Values() {
		v.Customers = append(v.Customers, c.summary())
	}

	return v
}

func (b *Branch) summary() Summary {
	return Summary{ID: b.code, Name: b.name, Label: b.ShortLabel()}
}
