/*
Package bigint provides BigInt, an arbitrary-precision signed integer
encoded as sign + magnitude over a little-endian slice of limbs.

BigInt is a cheap-to-copy handle onto a reference-counted, immutable body;
every operation returns a freshly constructed value rather than mutating
its receiver in place.

Simple example:

	a, _ := FromString("999999999999999999", 10)
	b, _ := FromString("888888888888888888", 10)
	fmt.Println(a.Mul(b))
	// Output: 888888888888888887111111111111111112

BigInt can be created from a variety of sources:

	FromInt32(v int32) BigInt
	FromInt64(v int64) BigInt
	FromUint32(v uint32) BigInt
	FromUint64(v uint64) BigInt
	FromString(s string, base int) (out BigInt, err error)
	FromBigInt(v *big.Int) BigInt
	Zero() BigInt
	One() BigInt

Ownership of a BigInt follows the retain/release discipline described on
Retain, Release and Copy: a handle returned by a constructor or an
operation starts with a reference count of one, additional owners acquire
a reference with Retain, and every owner must call Release exactly once.
*/
package bigint
