// Package wavelet implements the multilevel discrete wavelet transform used by
// the export pipeline.
//
// A [Wavelet] carries the four filters of an orthogonal two-channel filter bank
// (analysis low/high, synthesis low/high). The Daubechies family db1..db5 is
// built in; "haar" is an alias of db1.
//
// # Single level
//
// [DWT] splits a sequence of length N into an approximation and a detail band,
// each of length floor((N+F-1)/2) for a filter of length F. The signal is
// extended past its edges according to a [Mode]; [ModeSymmetric] is the default.
// [IDWT] inverts one level.
//
// # Multilevel
//
// [Transform.Decompose] repeats the split on the approximation band and
// returns the bands coarsest first:
//
//	bands, err := wavelet.NewTransform().Decompose(x, "db4", 3)
//	// bands[0] approximation at level 3
//	// bands[1] detail at level 3
//	// bands[2] detail at level 2
//	// bands[3] detail at level 1
//
// [Reconstruct] reverses the decomposition. Callers that only need the
// decomposition should depend on the [Decomposer] interface so another
// implementation can be swapped in.
package wavelet
