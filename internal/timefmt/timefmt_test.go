package timefmt_test

import (
	"testing"

	"github.com/ganot/punchcard/internal/timefmt"
	"github.com/stretchr/testify/require"
)

func TestFormatSeconds(t *testing.T) {
	require.Equal(t, "00h 00m 00s", timefmt.FormatSeconds(0))
	require.Equal(t, "00h 02m 05s", timefmt.FormatSeconds(125))
	require.Equal(t, "01h 00m 00s", timefmt.FormatSeconds(3600))
	// Hours never wrap to 24.
	require.Equal(t, "26h 10m 09s", timefmt.FormatSeconds(26*3600+10*60+9))
}

func TestFormatClock(t *testing.T) {
	require.Equal(t, "00:00:00", timefmt.FormatClock(0))
	require.Equal(t, "00:02:05", timefmt.FormatClock(125))
	require.Equal(t, "00:03:05", timefmt.FormatClock(185))
	require.Equal(t, "100:00:01", timefmt.FormatClock(100*3600+1))
}

func TestParseClock(t *testing.T) {
	seconds, err := timefmt.ParseClock("00:02:05")
	require.NoError(t, err)
	require.Equal(t, int64(125), seconds)

	seconds, err = timefmt.ParseClock("1:2:3")
	require.NoError(t, err)
	require.Equal(t, int64(3723), seconds)

	seconds, err = timefmt.ParseClock("26:00:00")
	require.NoError(t, err)
	require.Equal(t, int64(26*3600), seconds)
}

func TestParseClockMalformed(t *testing.T) {
	for _, text := range []string{"", "N/A", "1:2", "1:2:3:4", "aa:bb:cc", "1:-2:3"} {
		_, err := timefmt.ParseClock(text)
		require.ErrorIs(t, err, timefmt.ErrMalformed, "input %q", text)
	}
}

func TestSumSkipsMalformed(t *testing.T) {
	total := timefmt.Sum(nil, []string{"00:02:05", "N/A", "00:01:00"})
	require.Equal(t, int64(185), total)
}

func TestSumEmpty(t *testing.T) {
	require.Equal(t, int64(0), timefmt.Sum(nil, nil))
}
