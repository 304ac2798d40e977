// Package ff defines the prime-field arithmetic capability the poseidon core
// is generic over, together with an arbitrary-modulus implementation backed by
// math/big. Fixed-modulus adapters over gnark-crypto live in subpackages.
package ff

import "math/big"

// Field is the arithmetic capability interface. All operations write their
// result through the first pointer argument, mirroring the gnark-crypto
// Element API, so that fixed-modulus element types can satisfy it without
// allocation.
//
// Implementations must be stateless or read-only after construction: a single
// Field value is shared by every concurrent hash call of an instance.
type Field[E any] interface {
	// Modulus returns the prime p. Callers must not mutate the result.
	Modulus() *big.Int

	SetZero(z *E)
	SetOne(z *E)
	SetUint64(z *E, v uint64)
	// SetBigInt reduces v mod p.
	SetBigInt(z *E, v *big.Int)
	// SetString parses a decimal or 0x-prefixed hexadecimal value,
	// reduced mod p. A malformed string is the only error condition.
	SetString(z *E, s string) error
	Set(z, x *E)

	Add(z, x, y *E)
	Sub(z, x, y *E)
	Mul(z, x, y *E)
	// Exp computes x^k for k >= 0.
	Exp(z, x *E, k *big.Int)
	// Inverse computes 1/x; the inverse of zero is zero.
	Inverse(z, x *E)
	Neg(z, x *E)

	IsZero(x *E) bool
	Equal(x, y *E) bool

	// BigInt writes the canonical (fully reduced) value of x into z.
	BigInt(x *E, z *big.Int)
	// String renders x in its canonical decimal form.
	String(x *E) string
}
