package sdp

import (
	"github.com/mediasignal/rtpsdp/pkg/byteslice"
	"github.com/mediasignal/rtpsdp/pkg/codec"
	"github.com/mediasignal/rtpsdp/pkg/netaddr"
	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

// SdpPort is an RTP/RTCP port pair: the wire grammar only ever spells
// out the RTP port, with the RTCP port implied as RtpPort+1 (RFC 3550
// §11's default mux convention).
type SdpPort struct {
	RtpPort  uint16
	RtcpPort uint16
}

// NewSdpPort builds the RTP/RTCP pair for a given RTP port.
func NewSdpPort(rtpPort uint16) SdpPort {
	return SdpPort{RtpPort: rtpPort, RtcpPort: rtpPort + 1}
}

// MediaDescription is one "m=" record together with the attribute and
// codec lines that follow it, up to (but not including) the next "m="
// line or end of session.
type MediaDescription struct {
	PayloadType       PayloadType
	Ports             []SdpPort
	PortCount         int
	TransportProtocol MediaTransportProtocol
	Codecs            []codec.Codec
	ConnectionAddress *netaddr.ConnectionAddresses
	Bandwidth         *Bandwidth
	DataTransferMode  *DataTransferMode
	MediaAttributes   []UnknownMediaAttribute
}

var (
	mLinePrefix  = []byte("m=")
	aLinePrefix  = []byte("a=")
	rtpmapMarker = []byte("rtpmap:")
	fmtpMarker   = []byte("fmtp:")
	eqSign       = []byte("=")
	slashTok     = []byte("/")
)

// ParseMediaDescription decodes a chunk beginning with "m=" and running
// through every line belonging to that media section.
func ParseMediaDescription(chunk []byte) (MediaDescription, error) {
	mLine, rest := splitOneLine(chunk)
	mBody, ok := stripLinePrefix(mLine, mLinePrefix)
	if !ok {
		return MediaDescription{}, wireerr.InvalidBytes(mLine, "media description must start with m=")
	}

	mediaTok, rest2, ok := byteslice.Separate(mBody, sp1)
	if !ok {
		return MediaDescription{}, wireerr.InvalidBytes(mBody, "m= line missing port")
	}
	payloadType, err := parsePayloadType(mediaTok)
	if err != nil {
		return MediaDescription{}, err
	}

	portTok, rest2, ok := byteslice.Separate(rest2, sp1)
	if !ok {
		return MediaDescription{}, wireerr.InvalidBytes(rest2, "m= line missing proto")
	}
	basePort, portCount, err := parsePortSpec(portTok)
	if err != nil {
		return MediaDescription{}, err
	}

	protoTok, fmtList, ok := byteslice.Separate(rest2, sp1)
	if !ok {
		return MediaDescription{}, wireerr.InvalidBytes(rest2, "m= line missing format list")
	}
	transport := parseMediaTransportProtocol(protoTok)

	declaredFormats, err := parseFormatList(fmtList)
	if err != nil {
		return MediaDescription{}, err
	}

	ports := make([]SdpPort, 0, portCount)
	for i := 0; i < portCount; i++ {
		ports = append(ports, NewSdpPort(basePort+uint16(2*i)))
	}

	md := MediaDescription{
		PayloadType:       payloadType,
		Ports:             ports,
		PortCount:         portCount,
		TransportProtocol: transport,
	}

	remaining := rest
	for len(remaining) > 0 {
		line, next := splitOneLine(remaining)
		if len(line) == 0 {
			remaining = next
			continue
		}

		key, value, ok := byteslice.Separate(line, eqSign)
		if !ok {
			return MediaDescription{}, wireerr.InvalidBytes(line, "malformed SDP line")
		}

		switch string(key) {
		case "c":
			ca, err := netaddr.Parse(value)
			if err != nil {
				return MediaDescription{}, err
			}
			md.ConnectionAddress = &ca
			remaining = next

		case "b":
			bw, err := ParseBandwidth(value)
			if err != nil {
				return MediaDescription{}, err
			}
			md.Bandwidth = &bw
			remaining = next

		case "a":
			if _, ok := stripLinePrefix(value, rtpmapMarker); ok {
				fmtpLine, afterFmtp, hasFmtp := peekFmtpLine(next)
				block := line
				if hasFmtp {
					block = append(append(append([]byte{}, line...), '\n'), fmtpLine...)
				}
				c, err := codec.Parse(block)
				if err != nil {
					return MediaDescription{}, err
				}
				md.Codecs = append(md.Codecs, c)
				if hasFmtp {
					remaining = afterFmtp
				} else {
					remaining = next
				}
				continue
			}

			if mode, ok := parseDataTransferMode(byteslice.Trim(value, sp1)); ok {
				md.DataTransferMode = &mode
			} else {
				md.MediaAttributes = append(md.MediaAttributes, parseAttributeLine(value))
			}
			remaining = next

		default:
			// Extension keys (e.g. "k=", "z=") are tolerated and ignored:
			// RFC 4566 reserves single-character keys for future use.
			remaining = next
		}
	}

	if len(md.Codecs) != len(declaredFormats) {
		return MediaDescription{}, wireerr.Invalid(
			"media description declared %d formats but decoded %d codecs",
			len(declaredFormats), len(md.Codecs))
	}

	return md, nil
}

// parsePortSpec decodes "<port>" or "<port>/<count>".
func parsePortSpec(tok []byte) (port uint16, count int, err error) {
	base, countTok, hasCount := byteslice.Separate(tok, slashTok)
	if !hasCount {
		p, err := byteslice.Utf8ToNumber[uint16](tok)
		if err != nil {
			return 0, 0, err
		}
		return p, 1, nil
	}
	p, err := byteslice.Utf8ToNumber[uint16](base)
	if err != nil {
		return 0, 0, err
	}
	c, err := byteslice.Utf8ToNumber[int](countTok)
	if err != nil {
		return 0, 0, err
	}
	if c < 1 {
		c = 1
	}
	return p, c, nil
}

func parseFormatList(tok []byte) ([]uint16, error) {
	var out []uint16
	remaining := tok
	for len(remaining) > 0 {
		var t []byte
		t, remaining = byteslice.WhileSeparateTrimmed(remaining, sp1, nil)
		if len(t) == 0 {
			continue
		}
		f, err := byteslice.Utf8ToNumber[uint16](t)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, wireerr.Invalid("m= line declares no formats")
	}
	return out, nil
}

// peekFmtpLine looks at the next line without consuming it unless it is
// an "a=fmtp:" line, in which case it reports the line and the
// remainder after it.
func peekFmtpLine(rest []byte) (line, after []byte, ok bool) {
	candidate, next := splitOneLine(rest)
	body, isAttr := stripLinePrefix(candidate, aLinePrefix)
	if !isAttr {
		return nil, nil, false
	}
	if _, ok := stripLinePrefix(body, fmtpMarker); !ok {
		return nil, nil, false
	}
	return candidate, next, true
}

func stripLinePrefix(line, prefix []byte) ([]byte, bool) {
	if len(line) < len(prefix) {
		return nil, false
	}
	if string(line[:len(prefix)]) != string(prefix) {
		return nil, false
	}
	return line[len(prefix):], true
}

// splitOneLine consumes exactly one line from s, tolerating a trailing
// "\r" before the "\n" (or none at all for a bare-LF stream).
func splitOneLine(s []byte) (line, rest []byte) {
	return byteslice.WhileSeparateTrimmed(s, []byte("\n"), []byte("\r"))
}
