package sdp

import (
	"time"

	"github.com/mediasignal/rtpsdp/pkg/byteslice"
	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

// RepeatTimes is a decoded "r=" line: "<interval> <active duration>
// <offset>+", each a typed duration.
type RepeatTimes struct {
	Interval       time.Duration
	ActiveDuration time.Duration
	Offsets        []time.Duration
}

// ParseRepeatTimes decodes a "r=" line value. Each field carries an
// optional unit suffix — d (days), h (hours), m (minutes), s or no
// suffix (seconds) — per original_source's duration-multiplier table.
func ParseRepeatTimes(line []byte) (RepeatTimes, error) {
	interval, rest, ok := byteslice.Separate(line, sp1)
	if !ok {
		return RepeatTimes{}, wireerr.InvalidBytes(line, "repeat-times line missing active duration")
	}
	intervalDur, err := parseDurationToken(interval)
	if err != nil {
		return RepeatTimes{}, err
	}

	activeTok, rest, ok := byteslice.Separate(rest, sp1)
	if !ok {
		return RepeatTimes{}, wireerr.InvalidBytes(rest, "repeat-times line missing offsets")
	}
	activeDur, err := parseDurationToken(activeTok)
	if err != nil {
		return RepeatTimes{}, err
	}

	var offsets []time.Duration
	remaining := rest
	for len(remaining) > 0 {
		var tok []byte
		tok, remaining = byteslice.WhileSeparateTrimmed(remaining, sp1, nil)
		if len(tok) == 0 {
			continue
		}
		d, err := parseDurationToken(tok)
		if err != nil {
			return RepeatTimes{}, err
		}
		offsets = append(offsets, d)
	}
	if len(offsets) == 0 {
		return RepeatTimes{}, wireerr.Invalid("repeat-times line has no offsets")
	}

	return RepeatTimes{Interval: intervalDur, ActiveDuration: activeDur, Offsets: offsets}, nil
}

// parseDurationToken decodes a decimal value with an optional trailing
// unit suffix: d=86400s, h=3600s, m=60s, s or no suffix=1s.
func parseDurationToken(tok []byte) (time.Duration, error) {
	if len(tok) == 0 {
		return 0, wireerr.Invalid("empty duration token")
	}

	multiplier := int64(1)
	digits := tok
	switch tok[len(tok)-1] {
	case 'd':
		multiplier = 86400
		digits = tok[:len(tok)-1]
	case 'h':
		multiplier = 3600
		digits = tok[:len(tok)-1]
	case 'm':
		multiplier = 60
		digits = tok[:len(tok)-1]
	case 's':
		multiplier = 1
		digits = tok[:len(tok)-1]
	}

	val, err := byteslice.Utf8ToNumber[int64](digits)
	if err != nil {
		return 0, err
	}

	return time.Duration(val*multiplier) * time.Second, nil
}
