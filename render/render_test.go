package render

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/sipras/cmbspec/grid"
	"github.com/sipras/cmbspec/model"
)

func testComponents(t *testing.T, points int) model.Components {
	t.Helper()

	freqs, err := grid.Generate(1e9, 1e12, points, grid.Logarithmic)
	if err != nil {
		t.Fatal(err)
	}

	cs, err := model.New().Components(freqs)
	if err != nil {
		t.Fatal(err)
	}

	return cs
}

func TestTable(t *testing.T) {
	cs := testComponents(t, 50)

	var buf bytes.Buffer
	if err := Table(&buf, cs, 0); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 51 {
		t.Fatalf("got %d lines, want header plus 50 rows", len(lines))
	}

	if !strings.Contains(lines[0], "Freq (GHz)") || !strings.Contains(lines[0], "Synchrotron") {
		t.Errorf("unexpected header: %q", lines[0])
	}
}

func TestTableMaxRows(t *testing.T) {
	cs := testComponents(t, 100)

	var buf bytes.Buffer
	if err := Table(&buf, cs, 10); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) > 12 {
		t.Errorf("got %d lines, want at most header plus 11 sampled rows", len(lines))
	}
}

func TestCSVRoundTrip(t *testing.T) {
	cs := testComponents(t, 20)

	var buf bytes.Buffer
	if err := CSV(&buf, cs); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 21 {
		t.Fatalf("got %d records, want header plus 20 rows", len(records))
	}

	want := []string{"frequency_hz", "cmb", "synchrotron", "dust", "total"}
	for i, w := range want {
		if records[0][i] != w {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], w)
		}
	}

	for i := 1; i < len(records); i++ {
		f, err := strconv.ParseFloat(records[i][0], 64)
		if err != nil {
			t.Fatalf("row %d frequency: %v", i, err)
		}

		if f != cs.Total.Freqs[i-1] {
			t.Errorf("row %d frequency = %g, want %g", i, f, cs.Total.Freqs[i-1])
		}
	}
}

func TestPlotWritesFile(t *testing.T) {
	cs := testComponents(t, 30)

	path := filepath.Join(t.TempDir(), "results", "cmb_spectrum.png")
	if err := Plot(path, cs); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}
