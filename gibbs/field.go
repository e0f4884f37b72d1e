package gibbs

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Eval applies Gibbs elementwise over equal-length fields of salinity,
// temperature, and pressure. The three slices must have the same
// length; reconciling mismatched or broadcastable shapes is the
// caller's responsibility. An unsupported derivative order or a length
// mismatch returns an error.
func Eval(ns, nt, np int, sa, t, p []float64) ([]float64, error) {
	if !Supported(ns, nt, np) {
		return nil, fmt.Errorf("gibbs: unsupported derivative order (%d,%d,%d)", ns, nt, np)
	}
	if len(t) != len(sa) || len(p) != len(sa) {
		return nil, fmt.Errorf("gibbs: field lengths differ: SA=%d, t=%d, p=%d", len(sa), len(t), len(p))
	}
	out := make([]float64, len(sa))
	for i := range sa {
		out[i] = Gibbs(ns, nt, np, sa[i], t[i], p[i])
	}
	return out, nil
}

// EvalDense applies Gibbs elementwise over equal-shape matrices,
// returning a new matrix of the same shape. Like Eval it performs no
// broadcasting: a shape mismatch is an error.
func EvalDense(ns, nt, np int, sa, t, p *mat.Dense) (*mat.Dense, error) {
	if !Supported(ns, nt, np) {
		return nil, fmt.Errorf("gibbs: unsupported derivative order (%d,%d,%d)", ns, nt, np)
	}
	r, c := sa.Dims()
	if rt, ct := t.Dims(); rt != r || ct != c {
		return nil, fmt.Errorf("gibbs: t is %dx%d, want %dx%d", rt, ct, r, c)
	}
	if rp, cp := p.Dims(); rp != r || cp != c {
		return nil, fmt.Errorf("gibbs: p is %dx%d, want %dx%d", rp, cp, r, c)
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, Gibbs(ns, nt, np, sa.At(i, j), t.At(i, j), p.At(i, j)))
		}
	}
	return out, nil
}
