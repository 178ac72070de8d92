package wavelet_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

func ExampleTransform_Decompose() {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	bands, err := wavelet.NewTransform().Decompose(x, "haar", 2)
	if err != nil {
		panic(err)
	}
	for _, b := range bands {
		fmt.Printf("%.4f\n", b)
	}

	// Output:
	// [5.0000 13.0000]
	// [-2.0000 -2.0000]
	// [-0.7071 -0.7071 -0.7071 -0.7071]
}

func ExampleMaxLevel() {
	w, err := wavelet.Lookup("db4")
	if err != nil {
		panic(err)
	}
	fmt.Println(wavelet.MaxLevel(1000, w.Len()))

	// Output:
	// 7
}
