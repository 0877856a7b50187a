// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/big"
)

// New validates p and returns the field Z/pZ.
// Returns ErrInvalidCharacteristic when p < 2 or p is composite.
// Complexity: O(p) when the inverse table is built, O(1) otherwise.
func New(p uint32) (*Zp, error) {
	if !IsPrime(p) {
		return nil, fmt.Errorf("New(%d): %w", p, ErrInvalidCharacteristic)
	}
	f := &Zp{p: p}
	if p <= MaxTablePrime {
		f.inverse = buildInverseTable(p)
	}

	return f, nil
}

// IsPrime reports whether p is a prime. The test is exact for every uint32
// (ProbablyPrime is deterministic below 2^64).
func IsPrime(p uint32) bool {
	if p < 2 {
		return false
	}

	return new(big.Int).SetUint64(uint64(p)).ProbablyPrime(0)
}

// buildInverseTable fills inverse[a] for every a in [1, p) using the
// recurrence inv(a) = -(p/a) * inv(p mod a), which needs no division in Z/pZ.
func buildInverseTable(p uint32) []Element {
	inv := make([]Element, p)
	if p > 1 {
		inv[1] = 1
	}
	for a := uint64(2); a < uint64(p); a++ {
		q := uint64(p) / a
		r := uint64(p) % a
		// p = q*a + r  ⇒  a^-1 = -q * r^-1 (mod p)
		inv[a] = Element((uint64(p) - (q*uint64(inv[r]))%uint64(p)) % uint64(p))
	}

	return inv
}

// Characteristic returns the prime p.
func (f *Zp) Characteristic() uint32 { return f.p }

// AdditiveIdentity returns 0.
func (f *Zp) AdditiveIdentity() Element { return 0 }

// MultiplicativeIdentity returns 1.
func (f *Zp) MultiplicativeIdentity() Element { return 1 }

// FromInt reduces a signed integer into [0, p). Boundary coefficients such as
// -1 become p-1.
func (f *Zp) FromInt(v int) Element {
	m := int64(v) % int64(f.p)
	if m < 0 {
		m += int64(f.p)
	}

	return Element(m)
}

// Add returns a+b mod p.
func (f *Zp) Add(a, b Element) Element {
	return Element((uint64(a) + uint64(b)) % uint64(f.p))
}

// Sub returns a-b mod p.
func (f *Zp) Sub(a, b Element) Element {
	return Element((uint64(a) + uint64(f.p) - uint64(b)) % uint64(f.p))
}

// Neg returns -a mod p.
func (f *Zp) Neg(a Element) Element {
	if a == 0 {
		return 0
	}

	return Element(f.p - uint32(a))
}

// Multiply returns a*b mod p.
func (f *Zp) Multiply(a, b Element) Element {
	return Element((uint64(a) * uint64(b)) % uint64(f.p))
}

// Inverse returns a^-1.
// Returns ErrDivisionByZero when a is the additive identity.
func (f *Zp) Inverse(a Element) (Element, error) {
	a = Element(uint32(a) % f.p)
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	if f.inverse != nil {
		return f.inverse[a], nil
	}

	return f.euclidInverse(a), nil
}

// Divide returns a * b^-1.
// Returns ErrDivisionByZero when b is the additive identity.
func (f *Zp) Divide(a, b Element) (Element, error) {
	inv, err := f.Inverse(b)
	if err != nil {
		return 0, err
	}

	return f.Multiply(a, inv), nil
}

// IsZero reports whether a is the additive identity.
func (f *Zp) IsZero(a Element) bool { return uint32(a)%f.p == 0 }

// euclidInverse runs the extended Euclidean algorithm on (a, p).
// a must be non-zero; p is prime so gcd(a, p) == 1.
func (f *Zp) euclidInverse(a Element) Element {
	var (
		t, newT int64 = 0, 1
		r, newR int64 = int64(f.p), int64(a)
	)
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if t < 0 {
		t += int64(f.p)
	}

	return Element(t)
}

// String implements fmt.Stringer.
func (f *Zp) String() string {
	return fmt.Sprintf("Z/%dZ", f.p)
}
