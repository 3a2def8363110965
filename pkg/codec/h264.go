package codec

import (
	"bytes"
	"encoding/base64"

	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

// PacketizationMode is H.264's "packetization-mode" fmtp parameter.
type PacketizationMode int

// PacketizationMode values.
const (
	SingleNalUnit  PacketizationMode = 0
	NonInterleaved PacketizationMode = 1
	Interleaved    PacketizationMode = 2
)

// annexBStartCode is the 4-byte Annex-B start code prefixed to every NAL
// unit assembled into SpsPpsBytes — grounded on the teacher's
// EncodeAnnexB (internal/h264/annexb.go), adapted here to always emit the
// 4-byte form rather than the shortest 3- or 4-byte delimiter, per
// spec.md §3's "concatenation of Annex-B-framed NAL units with 4-byte
// start-code prefixes".
var annexBStartCode = []byte{0x00, 0x00, 0x00, 0x01}

// H264Codec is the decoded form of an H264 rtpmap/fmtp pair.
type H264Codec struct {
	Format            uint16
	ClockRate         uint32
	ChannelCount      *uint32
	ProfileLevelID    string
	PacketizationMode PacketizationMode
	SpsPpsBytes       []byte
}

func parseH264Fmtp(format uint16, clockRate uint32, channelCount *uint32, params []byte) (*H264Codec, error) {
	p := parseFmtpParams(params)

	profileLevelID, ok := p["profile-level-id"]
	if !ok {
		return nil, wireerr.Invalid("h264 fmtp missing required key %q", "profile-level-id")
	}

	pmRaw, ok := p["packetization-mode"]
	if !ok {
		return nil, wireerr.Invalid("h264 fmtp missing required key %q", "packetization-mode")
	}
	pm, err := parseDecimalInt32(pmRaw)
	if err != nil {
		return nil, err
	}
	if pm < 0 || pm > 2 {
		return nil, wireerr.InvalidBytes(pmRaw, "packetization-mode out of range")
	}

	spropRaw, ok := p["sprop-parameter-sets"]
	if !ok {
		return nil, wireerr.Invalid("h264 fmtp missing required key %q", "sprop-parameter-sets")
	}

	spsPps, err := assembleAnnexB(spropRaw)
	if err != nil {
		return nil, err
	}

	return &H264Codec{
		Format:            format,
		ClockRate:         clockRate,
		ChannelCount:      channelCount,
		ProfileLevelID:    string(profileLevelID),
		PacketizationMode: PacketizationMode(pm),
		SpsPpsBytes:       spsPps,
	}, nil
}

// assembleAnnexB base64-decodes each ","-separated NAL unit and
// concatenates them with a 4-byte Annex-B start code prefix each.
func assembleAnnexB(raw []byte) ([]byte, error) {
	var out []byte
	rest := raw
	for len(rest) > 0 {
		var tok []byte
		idx := bytes.IndexByte(rest, ',')
		if idx < 0 {
			tok, rest = rest, nil
		} else {
			tok, rest = rest[:idx], rest[idx+1:]
		}

		nalu, err := base64.StdEncoding.DecodeString(string(tok))
		if err != nil {
			return nil, wireerr.Wrap(err, "sprop-parameter-sets is not valid base64")
		}

		out = append(out, annexBStartCode...)
		out = append(out, nalu...)
	}
	return out, nil
}

