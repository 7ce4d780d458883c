package bench_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lazy-collections/internal/bench"
)

func TestRenderAllGolden(t *testing.T) {
	reports := []bench.Report{
		{
			Case:  bench.Case{Name: "ints-small", Kind: bench.KindInts, Size: 10000, Runs: 3},
			Fused: 1500 * time.Microsecond,
			Naive: 3 * time.Millisecond,
			Match: true,
		},
		{
			Case:  bench.Case{Name: "strings-small", Kind: bench.KindStrings, Size: 2000, Runs: 2},
			Fused: 2 * time.Millisecond,
			Naive: 5 * time.Millisecond,
			Match: true,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, bench.RenderAll(&buf, reports))

	g := goldie.New(t)
	g.Assert(t, "report_table", buf.Bytes())
}
