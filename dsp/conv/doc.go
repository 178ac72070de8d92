// Package conv provides the linear convolution kernels behind the wavelet
// filter bank.
//
// Three forms are offered:
//
//   - [Direct]: full O(N*M) linear convolution, length len(a)+len(b)-1.
//   - [DecimateTo]: every step-th sample of the full convolution starting at an
//     offset, without computing the discarded samples (analysis side).
//   - [UpsampleAddTo]: convolution of a zero-stuffed sequence with a kernel,
//     accumulated into a window of the full result (synthesis side).
//
// # Usage
//
//	full, err := conv.Direct(x, h)
//
//	// a[k] = full[offset + 2k]
//	err = conv.DecimateTo(a, x, h, offset, 2)
//
//	// y[o] += sum_k c[k] * g[o + offset - 2k]
//	err = conv.UpsampleAddTo(y, c, g, offset, 2)
//
// Inner products and scaled accumulation use gonum's floats package.
package conv
