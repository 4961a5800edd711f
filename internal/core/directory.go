package core

import (
	"iter"
	"strings"
)

// Directory is the root of the entity graph and the unit of persistence.
// Neither it nor the entities below it are safe for concurrent use; Service
// serialises access.
type Directory struct {
	banks *orderedMap[*Bank]
	ids   *IDGenerator
}

func NewDirectory(ids *IDGenerator) *Directory {
	if ids == nil {
		ids = NewIDGenerator(nil)
	}

	return &Directory{
		banks: newOrderedMap[*Bank](),
		ids:   ids,
	}
}

func (d *Directory) CreateBank(name string) bool {
	return d.createBank(name) != nil
}

func (d *Directory) createBank(name string) *Bank {
	if d.bankNamed(name, 0) != nil {
		return nil
	}

	id := d.ids.Unique(BankIDRange, d.banks.Has)
	b := newBank(id, name, d.ids)
	d.banks.Put(id, b)
	return b
}

func (d *Directory) RenameBank(id int, name string) bool {
	b := d.Bank(id)
	if b == nil || d.bankNamed(name, id) != nil {
		return false
	}

	b.name = name
	return true
}

func (d *Directory) RemoveBank(id int) bool {
	return d.banks.Delete(id)
}

func (d *Directory) Bank(id int) *Bank {
	b, _ := d.banks.Get(id)
	return b
}

func (d *Directory) Banks() iter.Seq[*Bank] {
	return d.banks.Values()
}

func (d *Directory) Size() int {
	return d.banks.Len()
}

func (d *Directory) bankNamed(name string, except int) *Bank {
	for b := range d.banks.Values() {
		if b.id != except && strings.EqualFold(b.name, name) {
			return b
		}
	}

	return nil
}
