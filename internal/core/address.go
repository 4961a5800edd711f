package core

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	invalidAddressText = "Invalid Address"
	zipCodeLength      = 5
)

// Address is an immutable postal address. Malformed input never fails
// construction: the address is flagged invalid and the offending fields are
// left blank.
type Address struct {
	street string
	city   string
	state  string
	zip    string
	valid  bool
}

// ParseAddress reads "street, city, state, zip". Trailing empty parts are
// ignored, so a dangling comma still yields four fields.
func ParseAddress(s string) Address {
	parts := strings.Split(s, ",")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != 4 {
		return Address{}
	}

	return NewAddress(parts[0], parts[1], parts[2], parts[3])
}

func NewAddress(street, city, state, zip string) Address {
	a := Address{
		street: strings.TrimSpace(street),
		city:   strings.TrimSpace(city),
		state:  strings.TrimSpace(state),
		zip:    strings.TrimSpace(zip),
		valid:  true,
	}

	if hasDigit(a.city) {
		a.city = ""
		a.valid = false
	}
	if hasDigit(a.state) {
		a.state = ""
		a.valid = false
	}
	if utf8.RuneCountInString(a.zip) != zipCodeLength {
		a.zip = ""
		a.valid = false
	}

	return a
}

// RestoreAddress rebuilds a persisted address without revalidating it.
func RestoreAddress(street, city, state, zip string, valid bool) Address {
	return Address{street: street, city: city, state: state, zip: zip, valid: valid}
}

func (a Address) Street() string { return a.street }
func (a Address) City() string { return a.city }
func (a Address) State() string { return a.state }
func (a Address) Zip() string { return a.zip }
func (a Address) Valid() bool { return a.valid }

func (a Address) String() string {
	if !a.valid {
		return invalidAddressText
	}

	return fmt.Sprintf("%s, %s, %s %s", a.street, a.city, a.state, a.zip)
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
