package rtcp

import "github.com/mediasignal/rtpsdp/pkg/wireerr"

// Goodbye is an RTCP BYE packet (RFC 3550 §6.6).
type Goodbye struct {
	Header Header
	Ssrcs  []uint32
	Reason []byte // borrowed; absent when no reason was sent
}

// DecodeGoodbye decodes a complete BYE packet from buf.
func DecodeGoodbye(buf []byte) (Goodbye, error) {
	h, rest, err := decodeHeader(buf)
	if err != nil {
		return Goodbye{}, err
	}
	if h.PacketType != Goodbye {
		return Goodbye{}, wireerr.Invalid("expected rtcp packet_type BYE, got %d", h.PacketType)
	}

	ssrcs := make([]uint32, 0, h.Count)
	for i := 0; i < int(h.Count); i++ {
		if len(rest) < 4 {
			return Goodbye{}, wireerr.Invalid("rtcp bye: need 4 bytes per ssrc, have %d", len(rest))
		}
		ssrcs = append(ssrcs, uint32(rest[0])<<24|uint32(rest[1])<<16|uint32(rest[2])<<8|uint32(rest[3]))
		rest = rest[4:]
	}

	bye := Goodbye{Header: h, Ssrcs: ssrcs}
	if len(rest) > 0 {
		length := int(rest[0])
		if len(rest) < 1+length {
			return Goodbye{}, wireerr.Invalid("rtcp bye: reason declares %d bytes, have %d", length, len(rest)-1)
		}
		bye.Reason = rest[1 : 1+length]
	}

	return bye, nil
}
