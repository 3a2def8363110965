package sdp

import (
	"github.com/mediasignal/rtpsdp/pkg/byteslice"
	"github.com/mediasignal/rtpsdp/pkg/netaddr"
	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

// MediaSession is a fully decoded SDP session description: the
// session-level fields followed by zero or more media descriptions.
type MediaSession struct {
	ProtocolVersion     int32
	Originator          Origin
	SessionName         string
	MediaTitle          *string
	Uri                 *string
	Email               *string
	Phone               *string
	EncryptionKey       *string
	ConnectionAddresses *netaddr.ConnectionAddresses
	Bandwidth           *Bandwidth
	Timing              *Timing
	DataTransferMode    *DataTransferMode
	MediaAttributes     []UnknownMediaAttribute
	MediaDescriptions   []MediaDescription
}

var mSep = []byte("\nm=")

// Parse decodes a complete SDP session description. Lines may be
// terminated by "\n" or "\r\n"; the session-level record set (v, o, s,
// i, u, e, p, c, b, t, r, k, a) is scanned line by line until the first
// "m=" line, at which point the remainder is re-split on the literal
// "\nm=" delimiter and each piece handed to ParseMediaDescription.
func Parse(body []byte) (MediaSession, error) {
	var session MediaSession
	var currentTiming *Timing
	var hasOrigin bool

	remaining := body
	var mediaBlock []byte

	for len(remaining) > 0 {
		current := remaining
		line, next := splitOneLine(current)
		if len(line) == 0 {
			remaining = next
			continue
		}

		key, value, ok := byteslice.Separate(line, eqSign)
		if !ok {
			return MediaSession{}, wireerr.InvalidBytes(line, "malformed SDP line")
		}

		if string(key) == "m" {
			mediaBlock = current
			break
		}

		switch string(key) {
		case "v":
			v, err := byteslice.Utf8ToNumber[int32](value)
			if err != nil {
				return MediaSession{}, err
			}
			session.ProtocolVersion = v

		case "o":
			o, err := ParseOrigin(value)
			if err != nil {
				return MediaSession{}, err
			}
			session.Originator = o
			hasOrigin = true

		case "s":
			s, err := byteslice.Utf8ToStr(byteslice.Trim(value, sp1))
			if err != nil {
				return MediaSession{}, err
			}
			session.SessionName = s

		case "i":
			s, err := byteslice.Utf8ToStr(value)
			if err != nil {
				return MediaSession{}, err
			}
			session.MediaTitle = &s

		case "u":
			s, err := byteslice.Utf8ToStr(value)
			if err != nil {
				return MediaSession{}, err
			}
			session.Uri = &s

		case "e":
			s, err := byteslice.Utf8ToStr(value)
			if err != nil {
				return MediaSession{}, err
			}
			session.Email = &s

		case "p":
			s, err := byteslice.Utf8ToStr(value)
			if err != nil {
				return MediaSession{}, err
			}
			session.Phone = &s

		case "k":
			s, err := byteslice.Utf8ToStr(value)
			if err != nil {
				return MediaSession{}, err
			}
			session.EncryptionKey = &s

		case "c":
			ca, err := netaddr.Parse(value)
			if err != nil {
				return MediaSession{}, err
			}
			session.ConnectionAddresses = &ca

		case "b":
			bw, err := ParseBandwidth(value)
			if err != nil {
				return MediaSession{}, err
			}
			session.Bandwidth = &bw

		case "t":
			t, err := ParseTiming(value)
			if err != nil {
				return MediaSession{}, err
			}
			session.Timing = &t
			currentTiming = session.Timing

		case "r":
			if currentTiming == nil {
				return MediaSession{}, wireerr.Invalid("repeat-times line with no preceding timing line")
			}
			r, err := ParseRepeatTimes(value)
			if err != nil {
				return MediaSession{}, err
			}
			currentTiming.RepeatTimes = append(currentTiming.RepeatTimes, r)

		case "a":
			if mode, ok := parseDataTransferMode(byteslice.Trim(value, sp1)); ok {
				session.DataTransferMode = &mode
			} else {
				session.MediaAttributes = append(session.MediaAttributes, parseAttributeLine(value))
			}

		default:
			// Extension keys tolerated and ignored, same as within a
			// media description.
		}

		remaining = next
	}

	if mediaBlock != nil {
		for _, chunk := range splitMediaChunks(mediaBlock) {
			md, err := ParseMediaDescription(chunk)
			if err != nil {
				return MediaSession{}, err
			}
			session.MediaDescriptions = append(session.MediaDescriptions, md)
		}
	}

	if !hasOrigin || session.SessionName == "" || len(session.MediaDescriptions) == 0 {
		return MediaSession{}, wireerr.Invalid(
			"invalid session: requires a non-default originator, a non-empty session_name, and at least one media description")
	}

	return session, nil
}

// splitMediaChunks splits a buffer starting with "m=" into one piece
// per media description, re-attaching the "m=" prefix consumed by each
// split.
func splitMediaChunks(block []byte) [][]byte {
	var chunks [][]byte
	rest := block
	for {
		left, right, ok := byteslice.Separate(rest, mSep)
		if !ok {
			chunks = append(chunks, rest)
			return chunks
		}
		chunks = append(chunks, left)
		rejoined := make([]byte, 0, len(mLinePrefix)+len(right))
		rejoined = append(rejoined, mLinePrefix...)
		rejoined = append(rejoined, right...)
		rest = rejoined
	}
}
