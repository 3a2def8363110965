package codec

import (
	"encoding/hex"

	"github.com/mediasignal/rtpsdp/pkg/byteslice"
	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

// AacCodec is the decoded form of an MPEG4-GENERIC (AAC) rtpmap/fmtp pair.
type AacCodec struct {
	Format           uint16
	ClockRate        uint32
	ChannelCount     *uint32
	SizeLength       int32
	IndexLength      int32
	IndexDeltaLength int32
	ConfigBytes      []byte // nil when fmtp omits "config"
}

func parseAacFmtp(format uint16, clockRate uint32, channelCount *uint32, params []byte) (*AacCodec, error) {
	p := parseFmtpParams(params)

	sizeLength, err := requiredInt32(p, "sizeLength")
	if err != nil {
		return nil, err
	}
	indexLength, err := requiredInt32(p, "indexLength")
	if err != nil {
		return nil, err
	}
	indexDeltaLength, err := requiredInt32(p, "indexDeltaLength")
	if err != nil {
		return nil, err
	}

	var configBytes []byte
	if raw, ok := p["config"]; ok {
		if len(raw)%2 != 0 {
			return nil, wireerr.InvalidBytes(raw, "aac config has odd hex length")
		}
		decoded := make([]byte, hex.DecodedLen(len(raw)))
		if _, err := hex.Decode(decoded, raw); err != nil {
			return nil, wireerr.Wrap(err, "aac config is not valid hex")
		}
		configBytes = decoded
	}

	return &AacCodec{
		Format:           format,
		ClockRate:        clockRate,
		ChannelCount:     channelCount,
		SizeLength:       sizeLength,
		IndexLength:      indexLength,
		IndexDeltaLength: indexDeltaLength,
		ConfigBytes:      configBytes,
	}, nil
}

func requiredInt32(p map[string][]byte, key string) (int32, error) {
	raw, ok := p[key]
	if !ok {
		return 0, wireerr.Invalid("aac fmtp missing required key %q", key)
	}
	return parseDecimalInt32(raw)
}

func parseDecimalInt32(raw []byte) (int32, error) {
	v, err := byteslice.Utf8ToNumber[int32](raw)
	if err != nil {
		return 0, err
	}
	return v, nil
}
