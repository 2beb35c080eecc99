package emission

import "testing"

func BenchmarkBlackbody(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		_, _ = Blackbody(160.2e9, 2.725)
	}
}

func BenchmarkSynchrotron(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		_, _ = Synchrotron(10e9, 2.9, 1e-20, 1e9)
	}
}

func BenchmarkThermalDust(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		_, _ = ThermalDust(500e9, 1.7, 20, 1e-21, 100e9)
	}
}
