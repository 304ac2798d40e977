// Package bls12381 adapts the gnark-crypto BLS12-381 scalar field to the
// ff.Field capability.
package bls12381

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Field implements ff.Field[fr.Element] for the BLS12-381 scalar field.
type Field struct{}

func (Field) Modulus() *big.Int { return fr.Modulus() }

func (Field) SetZero(z *fr.Element)             { z.SetZero() }
func (Field) SetOne(z *fr.Element)              { z.SetOne() }
func (Field) SetUint64(z *fr.Element, v uint64) { z.SetUint64(v) }
func (Field) SetBigInt(z *fr.Element, v *big.Int) { z.SetBigInt(v) }

func (Field) SetString(z *fr.Element, s string) error {
	_, err := z.SetString(s)
	return err
}

func (Field) Set(z, x *fr.Element) { z.Set(x) }

func (Field) Add(z, x, y *fr.Element) { z.Add(x, y) }
func (Field) Sub(z, x, y *fr.Element) { z.Sub(x, y) }
func (Field) Mul(z, x, y *fr.Element) { z.Mul(x, y) }

func (Field) Exp(z, x *fr.Element, k *big.Int) { z.Exp(*x, k) }
func (Field) Inverse(z, x *fr.Element)         { z.Inverse(x) }
func (Field) Neg(z, x *fr.Element)             { z.Neg(x) }

func (Field) IsZero(x *fr.Element) bool   { return x.IsZero() }
func (Field) Equal(x, y *fr.Element) bool { return x.Equal(y) }

func (Field) BigInt(x *fr.Element, z *big.Int) { x.BigInt(z) }
func (Field) String(x *fr.Element) string      { return x.String() }
