package rtcp

import "github.com/mediasignal/rtpsdp/pkg/wireerr"

const reportBlockSize = 24

// ReportBlock is the fixed 24-byte reception report block shared by
// SenderReport and ReceiverReport.
type ReportBlock struct {
	Ssrc               uint32
	FractionLost       uint8
	CumulativeLost     uint32 // 24-bit field, bytes 5..7
	HighestSeqNumber   uint32
	InterarrivalJitter uint32
	LastSr             uint32
	Delay              uint32 // delay since last SR, in 1/65536 seconds
}

func decodeReportBlock(buf []byte) (ReportBlock, []byte, error) {
	if len(buf) < reportBlockSize {
		return ReportBlock{}, nil, wireerr.Invalid("rtcp report block: need %d bytes, have %d", reportBlockSize, len(buf))
	}

	rb := ReportBlock{
		Ssrc:               uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]),
		FractionLost:       buf[4],
		CumulativeLost:     uint32(buf[5])<<16 | uint32(buf[6])<<8 | uint32(buf[7]),
		HighestSeqNumber:   uint32(buf[8])<<24 | uint32(buf[9])<<16 | uint32(buf[10])<<8 | uint32(buf[11]),
		InterarrivalJitter: uint32(buf[12])<<24 | uint32(buf[13])<<16 | uint32(buf[14])<<8 | uint32(buf[15]),
		LastSr:             uint32(buf[16])<<24 | uint32(buf[17])<<16 | uint32(buf[18])<<8 | uint32(buf[19]),
		Delay:              uint32(buf[20])<<24 | uint32(buf[21])<<16 | uint32(buf[22])<<8 | uint32(buf[23]),
	}

	return rb, buf[reportBlockSize:], nil
}

func decodeReportBlocks(buf []byte, count int) ([]ReportBlock, []byte, error) {
	blocks := make([]ReportBlock, 0, count)
	rest := buf
	for i := 0; i < count; i++ {
		var rb ReportBlock
		var err error
		rb, rest, err = decodeReportBlock(rest)
		if err != nil {
			return nil, nil, err
		}
		blocks = append(blocks, rb)
	}
	return blocks, rest, nil
}
