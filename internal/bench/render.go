package bench

import (
	"fmt"
	"io"
)

// RenderAll writes a fixed-width text table of reports.
func RenderAll(w io.Writer, reports []Report) error {
	if _, err := fmt.Fprintf(w, "%-16s %-8s %10s %5s %12s %12s %9s %6s\n",
		"CASE", "KIND", "SIZE", "RUNS", "FUSED", "NAIVE", "SPEEDUP", "MATCH"); err != nil {
		return err
	}
	for _, r := range reports {
		if _, err := fmt.Fprintf(w, "%-16s %-8s %10d %5d %12v %12v %8.2fx %6v\n",
			r.Case.Name, r.Case.Kind, r.Case.Size, r.Case.Runs,
			r.Fused, r.Naive, r.Speedup(), r.Match); err != nil {
			return err
		}
	}
	return nil
}
