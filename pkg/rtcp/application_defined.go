package rtcp

import "github.com/mediasignal/rtpsdp/pkg/wireerr"

// ApplicationDefined is an RTCP APP packet (RFC 3550 §6.7).
type ApplicationDefined struct {
	Header  Header
	Subtype uint8 // low 5 bits of header byte 0, i.e. Header.Count
	Ssrc    uint32
	Name    [4]byte
	Data    []byte // borrowed
}

// DecodeApplicationDefined decodes a complete APP packet from buf.
func DecodeApplicationDefined(buf []byte) (ApplicationDefined, error) {
	h, rest, err := decodeHeader(buf)
	if err != nil {
		return ApplicationDefined{}, err
	}
	if h.PacketType != ApplicationDefined {
		return ApplicationDefined{}, wireerr.Invalid("expected rtcp packet_type APP, got %d", h.PacketType)
	}
	if len(rest) < 8 {
		return ApplicationDefined{}, wireerr.Invalid("rtcp app: need 8 fixed bytes, have %d", len(rest))
	}

	app := ApplicationDefined{
		Header:  h,
		Subtype: h.Count,
		Ssrc:    uint32(rest[0])<<24 | uint32(rest[1])<<16 | uint32(rest[2])<<8 | uint32(rest[3]),
		Name:    [4]byte{rest[4], rest[5], rest[6], rest[7]},
		Data:    rest[8:],
	}

	return app, nil
}
