// Package codec decodes the media-format descriptions SDP carries via
// rtpmap/fmtp attribute pairs: AAC (MPEG4-GENERIC), H.264 and H.265.
package codec

import (
	"github.com/mediasignal/rtpsdp/pkg/byteslice"
	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

// Kind discriminates the variant held by a Codec.
type Kind int

// Kind values.
const (
	KindAac Kind = iota
	KindH264
	KindH265
	KindUnsupported
)

// Codec is a tagged union over the supported (and unsupported) codec
// descriptors, standing in for the source's dynamic-dispatch CodecType —
// spec.md §9 replaces that with a closed, compile-time-known tag since
// every handled name is fixed ahead of time.
type Codec struct {
	Kind            Kind
	Aac             *AacCodec
	H264            *H264Codec
	H265            *H265Codec
	UnsupportedName string
}

var (
	lf           = []byte("\n")
	sp           = []byte(" ")
	cr           = []byte("\r")
	rtpmapPrefix = []byte("a=rtpmap:")
	fmtpPrefix   = []byte("a=fmtp:")
)

// Parse decodes one codec descriptor from a block of one or two lines: the
// mandatory "a=rtpmap:<fmt> <name>/<clock>[/<channels>]" line, optionally
// followed by "a=fmtp:<fmt> <params>". Lines may be separated by "\n" or
// "\r\n".
func Parse(block []byte) (Codec, error) {
	rtpmapLine, rest := nextLine(block)
	rtpmapLine = byteslice.Trim(rtpmapLine, cr)

	body, ok := stripPrefix(rtpmapLine, rtpmapPrefix)
	if !ok {
		return Codec{}, wireerr.InvalidBytes(rtpmapLine, "rtpmap line missing a=rtpmap: prefix")
	}

	fmtTok, nameClock, ok := byteslice.Separate(body, sp)
	if !ok {
		return Codec{}, wireerr.InvalidBytes(body, "rtpmap line missing format id")
	}

	format, err := byteslice.Utf8ToNumber[uint16](fmtTok)
	if err != nil {
		return Codec{}, err
	}

	name, clockRate, channelCount, err := parseNameClock(nameClock)
	if err != nil {
		return Codec{}, err
	}

	fmtpLine, _ := nextLine(rest)
	fmtpLine = byteslice.Trim(fmtpLine, cr)
	fmtpBody, hasFmtp := stripPrefix(fmtpLine, fmtpPrefix)
	var fmtpParams []byte
	if hasFmtp {
		_, params, ok := byteslice.Separate(fmtpBody, sp)
		if !ok {
			return Codec{}, wireerr.InvalidBytes(fmtpBody, "fmtp line missing format id")
		}
		fmtpParams = params
	}

	switch string(name) {
	case "MPEG4-GENERIC":
		aac, err := parseAacFmtp(format, clockRate, channelCount, fmtpParams)
		if err != nil {
			return Codec{}, err
		}
		return Codec{Kind: KindAac, Aac: aac}, nil

	case "H264":
		h, err := parseH264Fmtp(format, clockRate, channelCount, fmtpParams)
		if err != nil {
			return Codec{}, err
		}
		return Codec{Kind: KindH264, H264: h}, nil

	case "H265":
		h, err := parseH265Fmtp(format, clockRate, channelCount, fmtpParams)
		if err != nil {
			return Codec{}, err
		}
		return Codec{Kind: KindH265, H265: h}, nil

	default:
		return Codec{Kind: KindUnsupported, UnsupportedName: string(name)}, nil
	}
}

func nextLine(block []byte) (line, rest []byte) {
	return byteslice.WhileSeparateTrimmed(block, lf, nil)
}

func stripPrefix(line, prefix []byte) ([]byte, bool) {
	if len(line) < len(prefix) {
		return nil, false
	}
	if string(line[:len(prefix)]) != string(prefix) {
		return nil, false
	}
	return line[len(prefix):], true
}

// parseNameClock decodes "<name>/<clock>[/<channels>]".
func parseNameClock(s []byte) (name []byte, clockRate uint32, channelCount *uint32, err error) {
	slash := []byte("/")

	nameTok, rem, ok := byteslice.Separate(s, slash)
	if !ok {
		return nil, 0, nil, wireerr.InvalidBytes(s, "rtpmap missing clock rate")
	}

	clockTok, chanTok, hasChan := byteslice.Separate(rem, slash)
	if !hasChan {
		clockTok = rem
	}

	clockTok = byteslice.Trim(clockTok, sp)
	clock, err := byteslice.Utf8ToNumber[uint32](clockTok)
	if err != nil {
		return nil, 0, nil, err
	}

	if hasChan {
		chanTok = byteslice.Trim(chanTok, sp)
		ch, err := byteslice.Utf8ToNumber[uint32](chanTok)
		if err != nil {
			return nil, 0, nil, err
		}
		channelCount = &ch
	}

	return byteslice.Trim(nameTok, sp), clock, channelCount, nil
}

// parseFmtpParams splits a ";"-separated "key=value" fmtp parameter list
// into a map, trimming whitespace around each token — the one helper
// shared by all three fmtp decoders (spec.md §4.4.1's "common helper").
func parseFmtpParams(params []byte) map[string][]byte {
	out := make(map[string][]byte)
	rest := params
	for len(rest) > 0 {
		var tok []byte
		tok, rest = byteslice.WhileSeparateTrimmed(rest, []byte(";"), sp)
		if len(tok) == 0 {
			continue
		}
		key, val, ok := byteslice.Separate(tok, []byte("="))
		if !ok {
			continue
		}
		out[string(byteslice.Trim(key, sp))] = byteslice.Trim(val, sp)
	}
	return out
}
