package curve_test

import (
	"fmt"

	"github.com/sipras/cmbspec/curve"
)

func ExampleSum() {
	freqs := []float64{1e9, 10e9, 100e9}

	a, _ := curve.New("a", freqs, []float64{1, 2, 3})
	b, _ := curve.New("b", freqs, []float64{0.5, 0.5, 0.5})

	total, err := curve.Sum("total", a, b)
	if err != nil {
		panic(err)
	}

	for _, p := range total.Points() {
		fmt.Printf("%.0f GHz: %.1f\n", p.Freq/1e9, p.Value)
	}

	// Output:
	// 1 GHz: 1.5
	// 10 GHz: 2.5
	// 100 GHz: 3.5
}
