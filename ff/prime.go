package ff

import (
	"fmt"
	"math/big"
)

// Prime implements Field over an arbitrary odd prime modulus using math/big.
// Elements are big.Int values held in [0, p).
type Prime struct {
	p *big.Int
}

// NewPrime builds a big.Int-backed field for the given modulus. The modulus
// must be an odd probable prime greater than 3.
func NewPrime(p *big.Int) (*Prime, error) {
	if p == nil || p.Sign() <= 0 || p.Bit(0) == 0 || p.Cmp(big.NewInt(3)) <= 0 {
		return nil, fmt.Errorf("ff: modulus must be an odd prime > 3")
	}
	if !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("ff: modulus %s is not prime", p.String())
	}
	return &Prime{p: new(big.Int).Set(p)}, nil
}

func (f *Prime) Modulus() *big.Int { return f.p }

func (f *Prime) SetZero(z *big.Int)          { z.SetInt64(0) }
func (f *Prime) SetOne(z *big.Int)           { z.SetInt64(1) }
func (f *Prime) SetUint64(z *big.Int, v uint64) {
	z.SetUint64(v)
	z.Mod(z, f.p)
}

func (f *Prime) SetBigInt(z, v *big.Int) {
	z.Mod(v, f.p)
}

func (f *Prime) SetString(z *big.Int, s string) error {
	if _, ok := z.SetString(s, 0); !ok {
		return fmt.Errorf("ff: cannot parse %q as a field element", s)
	}
	z.Mod(z, f.p)
	return nil
}

func (f *Prime) Set(z, x *big.Int) { z.Set(x) }

func (f *Prime) Add(z, x, y *big.Int) {
	z.Add(x, y)
	z.Mod(z, f.p)
}

func (f *Prime) Sub(z, x, y *big.Int) {
	z.Sub(x, y)
	z.Mod(z, f.p)
}

func (f *Prime) Mul(z, x, y *big.Int) {
	z.Mul(x, y)
	z.Mod(z, f.p)
}

func (f *Prime) Exp(z, x *big.Int, k *big.Int) {
	z.Exp(x, k, f.p)
}

func (f *Prime) Inverse(z, x *big.Int) {
	if x.Sign() == 0 {
		z.SetInt64(0)
		return
	}
	z.ModInverse(x, f.p)
}

func (f *Prime) Neg(z, x *big.Int) {
	z.Neg(x)
	z.Mod(z, f.p)
}

func (f *Prime) IsZero(x *big.Int) bool     { return x.Sign() == 0 }
func (f *Prime) Equal(x, y *big.Int) bool   { return x.Cmp(y) == 0 }
func (f *Prime) BigInt(x, z *big.Int)       { z.Set(x) }
func (f *Prime) String(x *big.Int) string   { return x.String() }
