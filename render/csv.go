package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/sipras/cmbspec/model"
)

// CSV writes the component curves over their shared grid as CSV with a
// header row. Frequencies are in Hz, intensities in W m⁻² Hz⁻¹ sr⁻¹.
func CSV(w io.Writer, cs model.Components) error {
	cw := csv.NewWriter(w)

	header := []string{"frequency_hz", model.LabelCMB, model.LabelSynchrotron, model.LabelDust, model.LabelTotal}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range cs.Total.Freqs {
		record := []string{
			strconv.FormatFloat(cs.Total.Freqs[i], 'e', -1, 64),
			strconv.FormatFloat(cs.CMB.Values[i], 'e', -1, 64),
			strconv.FormatFloat(cs.Synchrotron.Values[i], 'e', -1, 64),
			strconv.FormatFloat(cs.Dust.Values[i], 'e', -1, 64),
			strconv.FormatFloat(cs.Total.Values[i], 'e', -1, 64),
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
