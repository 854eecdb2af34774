package bigint

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit digest of x, XORing its sign into the digest so
// that x and -x (x != 0) hash differently. The digest is over the
// little-endian magnitude bytes with high zero bytes dropped, independent
// of limbBits, so it agrees across the bigint_limb16/32 build tags for
// equal values.
func (x BigInt) Hash() uint64 {
	assertValid(x)

	seed := uint64(0)
	if x.b.neg {
		seed = 1
	}

	buf := make([]byte, 0, len(x.b.limbs)*(limbBits/8))
	for _, l := range x.b.limbs {
		v := uint64(l)
		for j := 0; j < limbBits/8; j++ {
			buf = append(buf, byte(v))
			v >>= 8
		}
	}
	for len(buf) > 0 && buf[len(buf)-1] == 0 {
		buf = buf[:len(buf)-1]
	}
	return xxhash.Sum64(buf) ^ seed
}

// primeCache memoizes IsPrime results keyed by BigInt.Hash() combined with
// the decimal text of the value, so a large value that gets tested
// repeatedly (e.g. by NextPrime scanning odd candidates, or a caller
// re-testing the same large number) avoids repeating trial division.
type primeCacheEntry struct {
	text string
	isP  bool
}

var primeCache = struct {
	sync.Mutex
	m map[uint64]primeCacheEntry
}{m: make(map[uint64]primeCacheEntry)}

// cachedIsPrime wraps IsPrime with the memoization cache described above.
// It is exact, not probabilistic: a cache hit only occurs when the decimal
// text of the candidate matches the cached entry's text exactly, avoiding
// false hits on hash collisions.
func cachedIsPrime(n BigInt, certainty int) bool {
	h := n.Hash()
	text := n.Text(10)

	primeCache.Lock()
	entry, ok := primeCache.m[h]
	primeCache.Unlock()
	if ok && entry.text == text {
		return entry.isP
	}

	result := IsPrime(n, certainty)

	primeCache.Lock()
	primeCache.m[h] = primeCacheEntry{text: text, isP: result}
	primeCache.Unlock()
	return result
}
