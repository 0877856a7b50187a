// SPDX-License-Identifier: MIT

// Package field implements arithmetic in the prime field Z/pZ, the coefficient
// ring used by every matrix entry of the persistence engine.
//
// What:
//
//   - Zp is an immutable description of the field for one prime p.
//   - Element values live in [0, p) and are combined only through Zp methods.
//   - Incidence coefficients (+1/-1, or any signed integer) enter the field via FromInt.
//
// Why:
//
//   - Persistent (co)homology over a field is well defined and its diagrams are
//     a complete invariant; the prime decides which torsion is visible
//     (Z/2Z ignores orientation, Z/3Z detects 2-torsion of the projective plane...).
//
// Complexity:
//
//   - New:       O(p) time and memory when the inverse table is built (p ≤ MaxTablePrime),
//     O(1) otherwise.
//   - Add/Sub/Neg/Multiply: O(1).
//   - Inverse:   O(1) with the table, O(log p) by the extended Euclidean algorithm otherwise.
//
// Errors:
//
//   - ErrInvalidCharacteristic: p is zero, one or composite.
//   - ErrDivisionByZero: the additive identity has no inverse.
//
// Concurrency:
//
//   - A Zp is read-only after New and safe for concurrent use.
package field
