// Package rtcp decodes the RTCP (RFC 3550) packet family: sender and
// receiver reports, source descriptions, goodbyes and application-defined
// packets, sharing a common 4-byte header.
package rtcp

import (
	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

const headerSize = 4

// PacketType is the RTCP packet type carried in byte 1 of every header.
// Unlike the source this is a closed decode: an unrecognized value is a
// fatal InvalidData error rather than an "Unknown" variant, since a
// panic on unrecognized input is a programmer-error response, not an
// input-validation one (see spec design notes on packet_type).
type PacketType uint8

// PacketType values, per RFC 3550 §12.1.
const (
	SenderReport       PacketType = 200
	ReceiverReport     PacketType = 201
	SourceDescription  PacketType = 202
	Goodbye            PacketType = 203
	ApplicationDefined PacketType = 204
)

func parsePacketType(b byte) (PacketType, error) {
	switch PacketType(b) {
	case SenderReport, ReceiverReport, SourceDescription, Goodbye, ApplicationDefined:
		return PacketType(b), nil
	default:
		return 0, wireerr.Invalid("rtcp: unknown packet_type %d", b)
	}
}

// Header is the 4-byte prefix shared by every RTCP packet.
type Header struct {
	Version    uint8
	Padding    bool
	Count      uint8 // reception report count, or source count for SDES
	PacketType PacketType
	Length     uint16 // packet length in 32-bit words, minus one
}

// totalSize is the full packet size (header + body) the Length field
// declares, per RFC 3550 §6.4.1: 4*(length+1).
func (h Header) totalSize() int {
	return 4 * (int(h.Length) + 1)
}

// decodeHeader decodes the fixed 4-byte header from buf, then verifies
// that buf is at least as large as the header's declared total packet
// length — the bounds check spec.md requires of every RTCP decoder.
func decodeHeader(buf []byte) (Header, []byte, error) {
	if len(buf) < headerSize {
		return Header{}, nil, wireerr.Invalid("rtcp header: need %d bytes, have %d", headerSize, len(buf))
	}

	pt, err := parsePacketType(buf[1])
	if err != nil {
		return Header{}, nil, err
	}

	h := Header{
		Version:    buf[0] >> 6,
		Padding:    buf[0]&0x20 != 0,
		Count:      buf[0] & 0x1f,
		PacketType: pt,
		Length:     uint16(buf[2])<<8 | uint16(buf[3]),
	}

	if len(buf) < h.totalSize() {
		return Header{}, nil, wireerr.Invalid(
			"rtcp header: declares total size %d, buffer has %d", h.totalSize(), len(buf))
	}

	// Bound the body to the packet's declared length: a decoder must not
	// read past 4*(length+1) octets even if buf holds further packets
	// (a compound RTCP packet) or padding.
	return h, buf[headerSize:h.totalSize()], nil
}
