package wavelet

import "testing"

func BenchmarkDecomposeDb4Level3(b *testing.B) {
	x := threeTone(1000)
	tr := NewTransform()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.Decompose(x, "db4", 3); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReconstructDb4Level3(b *testing.B) {
	bands, err := NewTransform().Decompose(threeTone(1000), "db4", 3)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Reconstruct(bands, "db4"); err != nil {
			b.Fatal(err)
		}
	}
}
