package sdp

import (
	"time"

	"github.com/mediasignal/rtpsdp/pkg/byteslice"
	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

// ntpUnixEpochOffset is the number of seconds between the NTP epoch
// (1900-01-01) and the UNIX epoch (1970-01-01), per RFC 4566's "t=" line
// encoding of decimal NTP seconds.
const ntpUnixEpochOffset = 2208988800

// Timing is the decoded "t=" line, plus any "r=" repeat-time lines
// scoped to it — the wire grammar treats "r=" lines as trailing this
// "t=" line rather than as an independent top-level record.
type Timing struct {
	Start       time.Time
	Stop        *time.Time
	RepeatTimes []RepeatTimes
}

// ParseTiming decodes "<start-time> <stop-time>", both decimal NTP
// seconds. A stop-time of 0, or an absent second field entirely, means
// "unbounded" and is represented as nil. A start-time of 0 (RFC 4566's
// permanent session) leaves Start as the zero time.Time.
func ParseTiming(line []byte) (Timing, error) {
	startTok, stopTok, hasStop := byteslice.Separate(line, sp1)
	if !hasStop {
		startTok = line
	}

	startNtp, err := byteslice.Utf8ToNumber[int64](startTok)
	if err != nil {
		return Timing{}, err
	}
	var start time.Time
	if startNtp != 0 {
		start, err = ntpToTime(startNtp)
		if err != nil {
			return Timing{}, err
		}
	}

	var stop *time.Time
	if hasStop {
		stopNtp, err := byteslice.Utf8ToNumber[int64](byteslice.Trim(stopTok, sp1))
		if err != nil {
			return Timing{}, err
		}
		if stopNtp != 0 {
			t, err := ntpToTime(stopNtp)
			if err != nil {
				return Timing{}, err
			}
			if t.Before(start) {
				return Timing{}, wireerr.Invalid("timing stop_time precedes start_time")
			}
			stop = &t
		}
	}

	return Timing{Start: start, Stop: stop}, nil
}

// ntpToTime converts decimal NTP seconds to a UTC time.Time, rejecting
// values outside the representable UTC range (NTP seconds predating the
// UNIX epoch, or overflowing it).
func ntpToTime(ntp int64) (time.Time, error) {
	unix := ntp - ntpUnixEpochOffset
	if ntp < 0 || unix < 0 {
		return time.Time{}, wireerr.Invalid("timing value %d is outside the representable UTC range", ntp)
	}
	return time.Unix(unix, 0).UTC(), nil
}
