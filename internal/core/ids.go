package core

import (
	"math/rand/v2"
	"strconv"
)

type IDRange struct {
	Min int
	Max int
}

var (
	BankIDRange        = IDRange{Min: 1000, Max: 9999}
	BranchCodeRange    = IDRange{Min: 100, Max: 999}
	CustomerIDRange    = IDRange{Min: 10000, Max: 99999}
	AccountNumberRange = IDRange{Min: 100000000, Max: 999999999}
)

func (r IDRange) Contains(id int) bool {
	return id >= r.Min && id <= r.Max
}

// Digits is the fixed width of every id in the range.
func (r IDRange) Digits() int {
	return len(strconv.Itoa(r.Min))
}

// RandomSource is satisfied by *rand.Rand from math/rand/v2.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// IDGenerator hands out random fixed-width identifiers. It keeps no record of
// what it has issued; callers supply the sibling set to avoid.
type IDGenerator struct {
	src RandomSource
}

func NewIDGenerator(src RandomSource) *IDGenerator {
	if src == nil {
		src = globalSource{}
	}

	return &IDGenerator{src: src}
}

// Generate returns a uniformly distributed id in [r.Min, r.Max].
func (g *IDGenerator) Generate(r IDRange) int {
	return r.Min + g.src.IntN(r.Max-r.Min+1)
}

// Unique regenerates until taken reports the candidate as free.
func (g *IDGenerator) Unique(r IDRange, taken func(id int) bool) int {
	for {
		id := g.Generate(r)
		if !taken(id) {
			return id
		}
	}
}
