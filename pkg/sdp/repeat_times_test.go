package sdp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseRepeatTimes(t *testing.T) {
	r, err := ParseRepeatTimes([]byte("604800 3600 0 90000"))
	require.NoError(t, err)
	require.Equal(t, 604800*time.Second, r.Interval)
	require.Equal(t, 3600*time.Second, r.ActiveDuration)
	require.Equal(t, []time.Duration{0, 90000 * time.Second}, r.Offsets)
}

func TestParseRepeatTimesWithSuffixes(t *testing.T) {
	r, err := ParseRepeatTimes([]byte("7d 1h 0 25h"))
	require.NoError(t, err)
	require.Equal(t, 7*24*time.Hour, r.Interval)
	require.Equal(t, time.Hour, r.ActiveDuration)
	require.Equal(t, []time.Duration{0, 25 * time.Hour}, r.Offsets)
}

func TestParseRepeatTimesMissingOffsets(t *testing.T) {
	_, err := ParseRepeatTimes([]byte("604800 3600"))
	require.Error(t, err)
}
