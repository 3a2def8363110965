package rtcp

import "github.com/mediasignal/rtpsdp/pkg/wireerr"

const receiverReportFixedSize = 8 - headerSize // SSRC only

// ReceiverReport is an RTCP RR packet (RFC 3550 §6.4.2).
type ReceiverReport struct {
	Header       Header
	Ssrc         uint32
	ReportBlocks []ReportBlock
}

// DecodeReceiverReport decodes a complete RR packet from buf.
func DecodeReceiverReport(buf []byte) (ReceiverReport, error) {
	h, rest, err := decodeHeader(buf)
	if err != nil {
		return ReceiverReport{}, err
	}
	if h.PacketType != ReceiverReport {
		return ReceiverReport{}, wireerr.Invalid("expected rtcp packet_type RR, got %d", h.PacketType)
	}
	if len(rest) < receiverReportFixedSize {
		return ReceiverReport{}, wireerr.Invalid("rtcp RR: need %d fixed bytes, have %d", receiverReportFixedSize, len(rest))
	}

	rr := ReceiverReport{
		Header: h,
		Ssrc:   uint32(rest[0])<<24 | uint32(rest[1])<<16 | uint32(rest[2])<<8 | uint32(rest[3]),
	}

	blocks, _, err := decodeReportBlocks(rest[receiverReportFixedSize:], int(h.Count))
	if err != nil {
		return ReceiverReport{}, err
	}
	rr.ReportBlocks = blocks

	return rr, nil
}
