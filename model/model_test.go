package model

import (
	"errors"
	"math"
	"testing"

	"github.com/sipras/cmbspec/grid"
)

func testGrid(t *testing.T) []float64 {
	t.Helper()

	freqs, err := grid.Generate(1e9, 1e12, 500, grid.Logarithmic)
	if err != nil {
		t.Fatal(err)
	}

	return freqs
}

func TestDefaultParamsValid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("DefaultParams().Validate() = %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr error
	}{
		{"zero cmb temp", func(p *Params) { p.CMBTemp = 0 }, ErrNonPositiveCMBTemp},
		{"negative dust temp", func(p *Params) { p.DustTemp = -5 }, ErrNonPositiveDustTemp},
		{"zero sync ref", func(p *Params) { p.SyncRefFreq = 0 }, ErrNonPositiveRefFreq},
		{"zero dust ref", func(p *Params) { p.DustRefFreq = 0 }, ErrNonPositiveRefFreq},
		{"negative sync amplitude", func(p *Params) { p.SyncAmplitude = -1 }, ErrNegativeAmplitude},
		{"negative dust amplitude", func(p *Params) { p.DustAmplitude = -1 }, ErrNegativeAmplitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)

			if err := p.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	p := ApplyOptions(
		WithCMBTemp(3.0),
		WithSyncIndex(3.1),
		WithDustTemp(18),
		WithDustAmplitude(2e-22),
		nil,
	)

	if p.CMBTemp != 3.0 || p.SyncIndex != 3.1 || p.DustTemp != 18 || p.DustAmplitude != 2e-22 {
		t.Errorf("options not applied: %+v", p)
	}

	// Untouched fields keep their defaults.
	if p.DustIndex != DefaultDustIndex || p.SyncRefFreq != DefaultSyncRefFreq {
		t.Errorf("defaults not preserved: %+v", p)
	}
}

func TestCMBCurve(t *testing.T) {
	freqs := testGrid(t)

	c, err := New().CMB(freqs)
	if err != nil {
		t.Fatal(err)
	}

	if c.Len() != len(freqs) {
		t.Fatalf("len = %d, want %d", c.Len(), len(freqs))
	}

	for i, v := range c.Values {
		if v <= 0 {
			t.Fatalf("Values[%d] = %g, want > 0", i, v)
		}
	}
}

func TestCMBInvalidParams(t *testing.T) {
	freqs := testGrid(t)

	if _, err := New(WithCMBTemp(-1)).CMB(freqs); !errors.Is(err, ErrNonPositiveCMBTemp) {
		t.Errorf("CMB error = %v, want %v", err, ErrNonPositiveCMBTemp)
	}
}

func TestSynchrotronAmplitudeAtReference(t *testing.T) {
	freqs := testGrid(t)

	sync, err := New().Synchrotron(freqs)
	if err != nil {
		t.Fatal(err)
	}

	// The grid starts at the 1 GHz reference, so the first sample is
	// the amplitude itself.
	if math.Abs(sync.Values[0]-DefaultSyncAmplitude)/DefaultSyncAmplitude > 1e-12 {
		t.Errorf("sync at reference = %g, want %g", sync.Values[0], DefaultSyncAmplitude)
	}
}

func TestAmplitudeOverride(t *testing.T) {
	freqs := testGrid(t)
	const amp = 4.2e-19

	sync, err := New(WithSyncAmplitude(amp)).Synchrotron(freqs)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(sync.Values[0]-amp)/amp > 1e-12 {
		t.Errorf("sync at reference = %g, want %g", sync.Values[0], amp)
	}
}

func TestNewPeakRelative(t *testing.T) {
	freqs := testGrid(t)

	m, err := NewPeakRelative(freqs, 1e-5, 1e-6)
	if err != nil {
		t.Fatal(err)
	}

	cmb, err := m.CMB(freqs)
	if err != nil {
		t.Fatal(err)
	}

	peak, _ := cmb.Max()

	p := m.Params()
	if math.Abs(p.SyncAmplitude-peak*1e-5) > 1e-12*peak {
		t.Errorf("SyncAmplitude = %g, want %g", p.SyncAmplitude, peak*1e-5)
	}

	if math.Abs(p.DustAmplitude-peak*1e-6) > 1e-12*peak {
		t.Errorf("DustAmplitude = %g, want %g", p.DustAmplitude, peak*1e-6)
	}

	if _, err := NewPeakRelative(freqs, -1, 0); !errors.Is(err, ErrNegativeAmplitude) {
		t.Errorf("NewPeakRelative(-1) error = %v, want %v", err, ErrNegativeAmplitude)
	}
}

func TestComponentsTotal(t *testing.T) {
	freqs := testGrid(t)

	cs, err := New().Components(freqs)
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range cs.Curves() {
		if c.Len() != len(freqs) {
			t.Fatalf("%s len = %d, want %d", c.Label, c.Len(), len(freqs))
		}
	}

	for i := range freqs {
		want := cs.CMB.Values[i] + cs.Synchrotron.Values[i] + cs.Dust.Values[i]
		got := cs.Total.Values[i]

		if math.Abs(got-want) > 1e-12*want {
			t.Fatalf("total[%d] = %g, want %g", i, got, want)
		}
	}
}

func TestComponentsLabels(t *testing.T) {
	freqs := testGrid(t)

	cs, err := New().Components(freqs)
	if err != nil {
		t.Fatal(err)
	}

	if cs.CMB.Label != LabelCMB || cs.Synchrotron.Label != LabelSynchrotron ||
		cs.Dust.Label != LabelDust || cs.Total.Label != LabelTotal {
		t.Errorf("unexpected labels: %q %q %q %q",
			cs.CMB.Label, cs.Synchrotron.Label, cs.Dust.Label, cs.Total.Label)
	}
}
