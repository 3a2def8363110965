package codec

import (
	"encoding/base64"

	"github.com/mediasignal/rtpsdp/pkg/byteslice"
	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

// H265Codec is the decoded form of an H265 rtpmap/fmtp pair.
type H265Codec struct {
	Format         uint16
	ClockRate      uint32
	ChannelCount   *uint32
	ProfileID      uint16
	SpsPpsVpsBytes []byte
}

func parseH265Fmtp(format uint16, clockRate uint32, channelCount *uint32, params []byte) (*H265Codec, error) {
	p := parseFmtpParams(params)

	profileRaw, ok := p["profile-id"]
	if !ok {
		return nil, wireerr.Invalid("h265 fmtp missing required key %q", "profile-id")
	}
	profileID, err := byteslice.Utf8ToNumber[uint16](profileRaw)
	if err != nil {
		return nil, err
	}

	sps, ok := p["sprop-sps"]
	if !ok {
		return nil, wireerr.Invalid("h265 fmtp missing required key %q", "sprop-sps")
	}
	pps, ok := p["sprop-pps"]
	if !ok {
		return nil, wireerr.Invalid("h265 fmtp missing required key %q", "sprop-pps")
	}
	vps, ok := p["sprop-vps"]
	if !ok {
		return nil, wireerr.Invalid("h265 fmtp missing required key %q", "sprop-vps")
	}

	var out []byte
	for _, raw := range [][]byte{sps, pps, vps} {
		decoded, err := base64.StdEncoding.DecodeString(string(raw))
		if err != nil {
			return nil, wireerr.Wrap(err, "h265 sprop parameter is not valid base64")
		}
		out = append(out, decoded...)
	}

	return &H265Codec{
		Format:         format,
		ClockRate:      clockRate,
		ChannelCount:   channelCount,
		ProfileID:      profileID,
		SpsPpsVpsBytes: out,
	}, nil
}
