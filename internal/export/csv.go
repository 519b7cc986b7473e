package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/quarkviz/internal/quantum"
)

// WritePathCSV writes one step,x,y row per point after a header.
func WritePathCSV(w io.Writer, p quantum.Path) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "x", "y"}); err != nil {
		return err
	}
	for i := range p.X {
		row := []string{strconv.Itoa(i), strconv.Itoa(p.X[i]), strconv.Itoa(p.Y[i])}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
