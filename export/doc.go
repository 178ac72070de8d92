// Package export aligns wavelet coefficient bands with the signal they were
// computed from and serializes the result as a table.
//
// Every column of a [Table] has exactly as many entries as the signal. Bands
// shorter than the signal are right-padded with NaN, which the CSV writer
// renders as an empty cell and the parquet writer as null.
//
// Column layout for a decomposition of depth L:
//
//	timestamp, original_signal, approximation_L{L}, detail_L{L}, ..., detail_L1
package export
