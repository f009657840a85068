package problemgen

import (
	"bytes"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// DeadZone is the magnitude below which sampled operands are avoided:
// values in [-DeadZone, DeadZone] other than 0 make answers too small to
// be interesting.
const DeadZone = 3

// Sampler owns all random draws for one engine. It is not safe for
// concurrent use.
type Sampler struct {
	r *rand.Rand
}

// NewSampler wraps r. A nil r is replaced with a time-seeded PCG source.
func NewSampler(r *rand.Rand) *Sampler {
	if r == nil {
		now := uint64(time.Now().UnixNano())
		r = rand.New(rand.NewPCG(now, now>>17|1))
	}
	return &Sampler{r: r}
}

// NewSeededSampler returns a deterministic sampler.
func NewSeededSampler(seed uint64) *Sampler {
	return NewSampler(NewRand(seed))
}

// NewRand returns a PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IntN returns a uniform int in [lo, hi].
func (s *Sampler) IntN(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// NewID returns a version 4 UUID built from the sampler's stream, so a
// seeded engine reproduces its IDs.
func (s *Sampler) NewID() string {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], s.r.Uint64())
	binary.LittleEndian.PutUint64(b[8:], s.r.Uint64())
	return uuid.Must(uuid.NewRandomFromReader(bytes.NewReader(b[:]))).String()
}

// Bool returns true half the time.
func (s *Sampler) Bool() bool { return s.r.IntN(2) == 0 }

// Operand returns a uniform draw from [lo, hi] that avoids the dead zone.
// Drawing from the allowed set directly is equivalent to rejecting dead-zone
// values and retrying, without the unbounded loop.
func (s *Sampler) Operand(lo, hi int) int {
	allowed := OperandDomain(lo, hi)
	if len(allowed) == 0 {
		return 0
	}
	return allowed[s.r.IntN(len(allowed))]
}

// Operands draws n dead-zone-avoiding values.
func (s *Sampler) Operands(n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.Operand(lo, hi)
	}
	return out
}

// Ints draws n uniform values from [lo, hi].
func (s *Sampler) Ints(n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.IntN(lo, hi)
	}
	return out
}

// OperandDomain lists the values of [lo, hi] outside the dead zone.
func OperandDomain(lo, hi int) []int {
	var out []int
	for v := lo; v <= hi; v++ {
		if InDeadZone(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// InDeadZone reports whether v would be rejected as an operand.
func InDeadZone(v int) bool {
	return v != 0 && v >= -DeadZone && v <= DeadZone
}

// Pick returns a uniform element of xs. xs must not be empty.
func Pick[T any](s *Sampler, xs []T) T {
	return xs[s.r.IntN(len(xs))]
}

// PickN draws n elements of xs with replacement.
func PickN[T any](s *Sampler, xs []T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = Pick(s, xs)
	}
	return out
}

// Distinct draws n elements of xs without replacement. It returns
// ErrConstraintExhausted when xs has fewer than n elements.
func Distinct[T any](s *Sampler, xs []T, n int) ([]T, error) {
	if n > len(xs) {
		return nil, ErrConstraintExhausted
	}
	cp := append([]T(nil), xs...)
	// Partial Fisher-Yates: the first n slots end up a uniform sample.
	for i := 0; i < n; i++ {
		j := i + s.r.IntN(len(cp)-i)
		cp[i], cp[j] = cp[j], cp[i]
	}
	return cp[:n], nil
}

// Shuffle permutes xs in place.
func Shuffle[T any](s *Sampler, xs []T) {
	s.r.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
}
