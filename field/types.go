// SPDX-License-Identifier: MIT

package field

import "errors"

// Sentinel errors for field operations.
var (
	// ErrInvalidCharacteristic indicates that the requested modulus is not a prime ≥ 2.
	ErrInvalidCharacteristic = errors.New("field: characteristic must be a prime")

	// ErrDivisionByZero indicates an attempt to invert the additive identity.
	ErrDivisionByZero = errors.New("field: division by zero")
)

// Element is a residue class of Z/pZ, always kept in the range [0, p).
type Element uint32

// DefaultCharacteristic is the prime used when a caller does not pick one.
const DefaultCharacteristic uint32 = 11

// MaxTablePrime is the largest prime for which New precomputes the whole
// inverse table (4 bytes per element).
const MaxTablePrime uint32 = 65537

// Zp describes the field Z/pZ for a fixed prime p.
type Zp struct {
	p       uint32
	inverse []Element // inverse[a] = a^-1; nil when p > MaxTablePrime
}
