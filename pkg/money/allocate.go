package money

import (
	"hash/fnv"
	"math/big"
	"math/rand"
	"sort"
)

// RemainderPolicy selects how Allocate distributes the leftover units that
// integer division can't assign evenly.
type RemainderPolicy int

const (
	// First increments the lowest-indexed shares.
	First RemainderPolicy = iota
	// Last increments the highest-indexed shares.
	Last
	// Largest increments the shares with the largest fractional
	// remainder, ties broken by First order.
	Largest
	// Random increments shares chosen by a deterministic pseudo-shuffle
	// seeded from the allocated amount.
	Random
)

// PartitionSpec describes how to split a Price: either into n equal shares,
// or proportionally to a list of non-negative ratios whose sum is > 0.
type PartitionSpec struct {
	equal   int
	isEqual bool
	ratios  []*big.Int
}

// EqualParts builds a PartitionSpec that splits into n equal shares.
func EqualParts(n int) PartitionSpec {
	return PartitionSpec{equal: n, isEqual: true}
}

// RatioParts builds a PartitionSpec that splits proportionally to ratios.
func RatioParts(ratios ...int64) PartitionSpec {
	rs := make([]*big.Int, len(ratios))
	for i, r := range ratios {
		rs[i] = big.NewInt(r)
	}
	return PartitionSpec{ratios: rs}
}

// Allocate splits p into shares per the partition and remainder policy. The
// returned shares always sum bit-exactly to p: every unit of remainder that
// integer division drops is handed back to exactly one share, never lost or
// duplicated.
func Allocate(p Price, spec PartitionSpec, policy RemainderPolicy) ([]Price, error) {
	bases, weights, err := partitionBases(p.amount, spec)
	if err != nil {
		return nil, err
	}
	k := len(bases)

	used := big.NewInt(0)
	for _, b := range bases {
		used.Add(used, b)
	}
	remainder := new(big.Int).Sub(p.amount, used)

	count := int(new(big.Int).Abs(remainder).Int64())
	increment := int64(1)
	if remainder.Sign() < 0 {
		increment = -1
	}

	order := remainderOrder(k, weights, policy, p.amount)
	for i := 0; i < count && i < len(order); i++ {
		idx := order[i]
		bases[idx].Add(bases[idx], big.NewInt(increment))
	}

	shares := make([]Price, k)
	for i, b := range bases {
		shares[i] = Price{amount: b, currency: p.currency, scale: p.scale}
	}
	return shares, nil
}

// partitionBases computes the truncated integer base share for each index
// and, for the Largest policy, each index's fractional "weight" (bigger
// weight = bigger fractional remainder = higher priority for the leftover
// unit).
func partitionBases(amount *big.Int, spec PartitionSpec) (bases []*big.Int, weights []*big.Int, err error) {
	if spec.isEqual {
		if spec.equal < 1 {
			return nil, nil, invalidPartitionErr("equal partition count must be at least 1")
		}
		n := big.NewInt(int64(spec.equal))
		base := new(big.Int).Quo(amount, n)
		bases = make([]*big.Int, spec.equal)
		weights = make([]*big.Int, spec.equal)
		for i := range bases {
			bases[i] = new(big.Int).Set(base)
			weights[i] = big.NewInt(0)
		}
		return bases, weights, nil
	}

	if len(spec.ratios) == 0 {
		return nil, nil, invalidPartitionErr("ratio partition requires at least one ratio")
	}
	sum := big.NewInt(0)
	for _, r := range spec.ratios {
		if r.Sign() < 0 {
			return nil, nil, invalidPartitionErr("ratios must not be negative")
		}
		sum.Add(sum, r)
	}
	if sum.Sign() == 0 {
		return nil, nil, invalidPartitionErr("ratios must not all be zero")
	}

	bases = make([]*big.Int, len(spec.ratios))
	weights = make([]*big.Int, len(spec.ratios))
	for i, r := range spec.ratios {
		numerator := new(big.Int).Mul(amount, r)
		base, rem := new(big.Int).QuoRem(numerator, sum, new(big.Int))
		bases[i] = base
		weights[i] = new(big.Int).Abs(rem)
	}
	return bases, weights, nil
}

// remainderOrder returns, for a k-way allocation, the index order in which
// the leftover units should be handed out under policy.
func remainderOrder(k int, weights []*big.Int, policy RemainderPolicy, amount *big.Int) []int {
	order := make([]int, k)
	for i := range order {
		order[i] = i
	}

	switch policy {
	case Last:
		for i, j := 0, k-1; i < k; i, j = i+1, j-1 {
			order[i] = j
		}
	case Largest:
		sort.SliceStable(order, func(a, b int) bool {
			return weights[order[a]].Cmp(weights[order[b]]) > 0
		})
	case Random:
		r := rand.New(rand.NewSource(seedFromAmount(amount)))
		r.Shuffle(k, func(a, b int) { order[a], order[b] = order[b], order[a] })
	case First:
		// order is already 0..k-1
	}
	return order
}

// seedFromAmount derives a deterministic PRNG seed from amount's absolute
// value, so the Random remainder policy is reproducible for the same
// input regardless of magnitude: it seeds from the absolute amount, never
// from system entropy.
func seedFromAmount(amount *big.Int) int64 {
	abs := new(big.Int).Abs(amount)
	h := fnv.New64a()
	_, _ = h.Write(abs.Bytes())
	return int64(h.Sum64())
}
