package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"github.com/vk/getarg/internal/argreg"
)

func TestCollector(t *testing.T) {
	reg := argreg.Parse([]string{"prog", "-connect=a", "-connect=b", "-debug"})

	expected := `
# HELP getarg_flag_occurrences Number of times each flag was passed
# TYPE getarg_flag_occurrences gauge
getarg_flag_occurrences{flag="-connect"} 2
getarg_flag_occurrences{flag="-debug"} 1
# HELP getarg_flags Number of distinct flag names recorded by the last parse
# TYPE getarg_flags gauge
getarg_flags 2
`
	err := testutil.CollectAndCompare(NewCollector(reg), strings.NewReader(expected))
	require.NoError(t, err)
}

func TestCollector_FollowsReparse(t *testing.T) {
	reg := argreg.Parse([]string{"prog", "-a", "-b"})
	promReg := NewRegistry(reg)

	count, err := testutil.GatherAndCount(promReg, "getarg_flag_occurrences")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	reg.Parse([]string{"prog"})

	count, err = testutil.GatherAndCount(promReg, "getarg_flag_occurrences")
	require.NoError(t, err)
	require.Equal(t, 0, count)

	expected := `
# HELP getarg_flags Number of distinct flag names recorded by the last parse
# TYPE getarg_flags gauge
getarg_flags 0
`
	require.NoError(t, testutil.GatherAndCompare(promReg, strings.NewReader(expected), "getarg_flags"))
}

func TestCollector_InvalidUTF8FlagNames(t *testing.T) {
	reg := argreg.Parse([]string{"prog", "-\xff", "-\xfe=1", "-\xfe=2", "-ok"})
	promReg := NewRegistry(reg)

	var families []*dto.MetricFamily
	require.NotPanics(t, func() {
		var err error
		families, err = promReg.Gather()
		require.NoError(t, err)
	})

	occurrences := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "getarg_flag_occurrences" {
			continue
		}
		for _, m := range mf.GetMetric() {
			require.Len(t, m.GetLabel(), 1)
			occurrences[m.GetLabel()[0].GetValue()] = m.GetGauge().GetValue()
		}
	}
	require.Equal(t, map[string]float64{"-\uFFFD": 3, "-ok": 1}, occurrences)
}
