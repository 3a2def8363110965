package rtcp

import "github.com/mediasignal/rtpsdp/pkg/wireerr"

// SdesItem is one `<type><length><data>` item within an SDES chunk.
type SdesItem struct {
	Type uint8
	Data []byte
}

// SdesChunk is one SSRC/CNAME-bearing chunk within a SourceDescription
// packet: a 4-byte SSRC followed by a zero-terminated item list.
type SdesChunk struct {
	Ssrc  uint32
	Items []SdesItem
}

// SourceDescription is an RTCP SDES packet (RFC 3550 §6.5).
type SourceDescription struct {
	Header Header
	Chunks []SdesChunk
}

// DecodeSourceDescription decodes a complete SDES packet from buf. Each
// chunk's item list is terminated by a single 0 byte — this spec does
// not require the RFC's 4-byte chunk alignment padding.
func DecodeSourceDescription(buf []byte) (SourceDescription, error) {
	h, rest, err := decodeHeader(buf)
	if err != nil {
		return SourceDescription{}, err
	}
	if h.PacketType != SourceDescription {
		return SourceDescription{}, wireerr.Invalid("expected rtcp packet_type SDES, got %d", h.PacketType)
	}

	chunks := make([]SdesChunk, 0, h.Count)
	for i := 0; i < int(h.Count); i++ {
		chunk, next, err := decodeSdesChunk(rest)
		if err != nil {
			return SourceDescription{}, err
		}
		chunks = append(chunks, chunk)
		rest = next
	}

	return SourceDescription{Header: h, Chunks: chunks}, nil
}

func decodeSdesChunk(buf []byte) (SdesChunk, []byte, error) {
	if len(buf) < 4 {
		return SdesChunk{}, nil, wireerr.Invalid("rtcp sdes chunk: need 4 bytes for ssrc, have %d", len(buf))
	}
	chunk := SdesChunk{
		Ssrc: uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]),
	}
	rest := buf[4:]

	for {
		if len(rest) == 0 {
			return SdesChunk{}, nil, wireerr.Invalid("rtcp sdes chunk: missing terminating 0 byte")
		}
		if rest[0] == 0 {
			rest = rest[1:]
			break
		}
		if len(rest) < 2 {
			return SdesChunk{}, nil, wireerr.Invalid("rtcp sdes item: need type and length bytes")
		}
		itemType := rest[0]
		length := int(rest[1])
		if len(rest) < 2+length {
			return SdesChunk{}, nil, wireerr.Invalid("rtcp sdes item: declares %d data bytes, have %d", length, len(rest)-2)
		}
		chunk.Items = append(chunk.Items, SdesItem{Type: itemType, Data: rest[2 : 2+length]})
		rest = rest[2+length:]
	}

	return chunk, rest, nil
}
