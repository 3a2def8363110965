package rtcp

import "github.com/mediasignal/rtpsdp/pkg/wireerr"

const senderReportFixedSize = 28 - headerSize // fixed fields after the header

// SenderReport is an RTCP SR packet (RFC 3550 §6.4.1).
type SenderReport struct {
	Header       Header
	Ssrc         uint32
	NtpTimestamp uint64
	RtpTimestamp uint32
	PacketCount  uint32
	OctetCount   uint32
	ReportBlocks []ReportBlock
}

// DecodeSenderReport decodes a complete SR packet from buf.
func DecodeSenderReport(buf []byte) (SenderReport, error) {
	h, rest, err := decodeHeader(buf)
	if err != nil {
		return SenderReport{}, err
	}
	if h.PacketType != SenderReport {
		return SenderReport{}, wireerr.Invalid("expected rtcp packet_type SR, got %d", h.PacketType)
	}
	if len(rest) < senderReportFixedSize {
		return SenderReport{}, wireerr.Invalid("rtcp SR: need %d fixed bytes, have %d", senderReportFixedSize, len(rest))
	}

	sr := SenderReport{
		Header:       h,
		Ssrc:         uint32(rest[0])<<24 | uint32(rest[1])<<16 | uint32(rest[2])<<8 | uint32(rest[3]),
		NtpTimestamp: uint64(rest[4])<<56 | uint64(rest[5])<<48 | uint64(rest[6])<<40 | uint64(rest[7])<<32 |
			uint64(rest[8])<<24 | uint64(rest[9])<<16 | uint64(rest[10])<<8 | uint64(rest[11]),
		RtpTimestamp: uint32(rest[12])<<24 | uint32(rest[13])<<16 | uint32(rest[14])<<8 | uint32(rest[15]),
		PacketCount:  uint32(rest[16])<<24 | uint32(rest[17])<<16 | uint32(rest[18])<<8 | uint32(rest[19]),
		OctetCount:   uint32(rest[20])<<24 | uint32(rest[21])<<16 | uint32(rest[22])<<8 | uint32(rest[23]),
	}

	blocks, _, err := decodeReportBlocks(rest[senderReportFixedSize:], int(h.Count))
	if err != nil {
		return SenderReport{}, err
	}
	sr.ReportBlocks = blocks

	return sr, nil
}
