// Package sample draws unbiased bounded integers from a stream of random
// bits, consuming as few bits as possible.
//
// Taking "x % max" of a fixed-width random x is biased whenever max is not a
// power of two: the raw range [0, rmax) does not divide evenly into max
// buckets, so the top rmax%max raw values favour the low results. The
// sampler rejects candidates that land in that defect zone, but instead of
// discarding the accumulated bits on rejection it widens the candidate by
// one more bit, salvaging the entropy already drawn.
package sample

// MaxRandBits caps the candidate bit-width. Past the cap the sampler stops
// widening and discards the least-significant bit instead, which bounds
// worst-case bit consumption at the cost of reduced effective range for
// values of max near the cap.
const MaxRandBits = 28

// BitSource is the stream of random bits the sampler consumes, one bit per
// call. *entropy.Pool and *entropy.Locked both satisfy it.
type BitSource interface {
	Bit() (uint32, error)
}

// Sampler produces uniformly distributed integers in [0, max) for arbitrary
// max, not just powers of two. Results are independent across calls as long
// as the underlying bits are.
type Sampler struct {
	bits BitSource
}

// New returns a Sampler drawing from bits.
func New(bits BitSource) *Sampler {
	return &Sampler{bits: bits}
}

// maxRange is the largest supported max: the candidate ceiling rmax must
// itself fit in 32 bits as a power of two, so max cannot exceed 2^31.
const maxRange = 1 << 31

// Uint32n returns a uniform value in [0, max), for max in [1, 2^31]. A max
// of 1 returns 0 without consuming any bits. It panics if max is 0 (a
// uniform distribution over an empty range is undefined) or above 2^31
// (doubling rmax past it would wrap to 0 and never cover the range). Both
// are programming errors, unlike entropy failures which are returned as
// errors.
func (s *Sampler) Uint32n(max uint32) (uint32, error) {
	if max == 0 {
		panic("sample: Uint32n called with max == 0")
	}
	if max > maxRange {
		panic("sample: Uint32n called with max > 1<<31")
	}

	var r, rmax uint32 = 0, 1

	// Widen until the candidate range covers [0, max), filling r from the
	// low end so each new bit lands at the current top position.
	for rmax < max {
		bit, err := s.bits.Bit()
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			r |= rmax
		}
		rmax <<= 1
	}

	// Candidates in [rmax-defect, rmax) map unevenly under the final
	// division and must not be returned.
	defect := rmax % max

	for rmax-defect <= r {
		bit, err := s.bits.Bit()
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			r |= rmax
		}
		if rmax < 1<<MaxRandBits {
			rmax <<= 1
			defect = rmax % max
		} else {
			// At the width cap: shift out the low bit rather than grow.
			r >>= 1
		}
	}

	// Truncating division is intentional.
	return r / (rmax / max), nil
}

// Intn returns a uniform value in [0, n). It panics if n <= 0 or n exceeds
// 2^31.
func (s *Sampler) Intn(n int) (int, error) {
	if n <= 0 {
		panic("sample: Intn called with n <= 0")
	}
	if uint64(n) > maxRange {
		panic("sample: Intn called with n > 1<<31")
	}
	v, err := s.Uint32n(uint32(n))
	return int(v), err
}
