package sdp

import (
	"github.com/mediasignal/rtpsdp/pkg/byteslice"
	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

// Bandwidth is the decoded "b=" line: "<bwtype>:<bandwidth>".
type Bandwidth struct {
	Type  string
	Value uint32
}

var colonSep = []byte(":")

// ParseBandwidth decodes a "b=" line value.
func ParseBandwidth(line []byte) (Bandwidth, error) {
	typeTok, valTok, ok := byteslice.Separate(line, colonSep)
	if !ok {
		return Bandwidth{}, wireerr.InvalidBytes(line, "bandwidth line missing ':'")
	}

	val, err := byteslice.Utf8ToNumber[uint32](valTok)
	if err != nil {
		return Bandwidth{}, err
	}

	typeStr, err := byteslice.Utf8ToStr(typeTok)
	if err != nil {
		return Bandwidth{}, err
	}

	return Bandwidth{Type: typeStr, Value: val}, nil
}
