package rtcp

import (
	"testing"

	pionrtcp "github.com/pion/rtcp"
	"github.com/stretchr/testify/require"
)

// buildSenderReportPacket builds the exact 52-byte buffer from the
// concrete test scenario: SR header, one report block, ssrc
// 0x12345678, ntp_timestamp 0x0000000100000002, cumulative_lost
// 0x000002.
func buildSenderReportPacket() []byte {
	buf := make([]byte, 0, 52)
	buf = append(buf, 0x81, 200, 0x00, 0x0c) // version 2, count=1, SR, length=12 (13*4=52)
	buf = append(buf, 0x12, 0x34, 0x56, 0x78) // ssrc
	buf = append(buf, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x02) // ntp
	buf = append(buf, 0x00, 0x00, 0x00, 0x03) // rtp timestamp
	buf = append(buf, 0x00, 0x00, 0x00, 0x04) // packet count
	buf = append(buf, 0x00, 0x00, 0x00, 0x05) // octet count

	// one report block
	buf = append(buf, 0xaa, 0xbb, 0xcc, 0xdd) // ssrc
	buf = append(buf, 0x00)                   // fraction lost
	buf = append(buf, 0x00, 0x00, 0x02)       // cumulative_lost (24 bit)
	buf = append(buf, 0x00, 0x00, 0x00, 0x06) // highest seq
	buf = append(buf, 0x00, 0x00, 0x00, 0x07) // jitter
	buf = append(buf, 0x00, 0x00, 0x00, 0x08) // last sr
	buf = append(buf, 0x00, 0x00, 0x00, 0x09) // dlsr

	return buf
}

func TestDecodeSenderReportScenario(t *testing.T) {
	buf := buildSenderReportPacket()
	require.Len(t, buf, 52)

	sr, err := DecodeSenderReport(buf)
	require.NoError(t, err)
	require.Equal(t, SenderReport, sr.Header.PacketType)
	require.Equal(t, uint32(0x12345678), sr.Ssrc)
	require.Equal(t, uint64(0x0000000100000002), sr.NtpTimestamp)
	require.Len(t, sr.ReportBlocks, 1)
	require.Equal(t, uint32(0x000002), sr.ReportBlocks[0].CumulativeLost)
}

func TestDecodeSenderReportShortBuffer(t *testing.T) {
	buf := buildSenderReportPacket()
	_, err := DecodeSenderReport(buf[:len(buf)-1])
	require.Error(t, err)
}

func TestDecodeGoodbyeIgnoresBytesPastDeclaredLength(t *testing.T) {
	buf := []byte{
		0x81, 203, 0x00, 0x01, // count=1, BYE, length=1 (2*4=8)
		0x00, 0x00, 0x00, 0x01, // ssrc
		0xff, 0xff, 0xff, 0xff, // a second, compound RTCP packet
	}
	bye, err := DecodeGoodbye(buf)
	require.NoError(t, err)
	require.Equal(t, []uint32{1}, bye.Ssrcs)
	require.Nil(t, bye.Reason)
}

func TestDecodeHeaderUnknownPacketType(t *testing.T) {
	buf := []byte{0x80, 199, 0x00, 0x00}
	_, _, err := decodeHeader(buf)
	require.Error(t, err)
}

func TestDecodeReceiverReport(t *testing.T) {
	buf := []byte{
		0x80, 201, 0x00, 0x01, // header, count=0, RR, length=1 (2*4=8)
		0x11, 0x22, 0x33, 0x44, // ssrc
	}
	rr, err := DecodeReceiverReport(buf)
	require.NoError(t, err)
	require.Equal(t, uint32(0x11223344), rr.Ssrc)
	require.Empty(t, rr.ReportBlocks)
}

func TestDecodeGoodbyeWithReason(t *testing.T) {
	buf := []byte{
		0x81, 203, 0x00, 0x02, // count=1, BYE, length=2 (3*4=12)
		0x00, 0x00, 0x00, 0x01, // ssrc
		0x03, 'b', 'y', 'e', // reason length 3, "bye"
	}
	bye, err := DecodeGoodbye(buf)
	require.NoError(t, err)
	require.Equal(t, []uint32{1}, bye.Ssrcs)
	require.Equal(t, []byte("bye"), bye.Reason)
}

func TestDecodeSourceDescription(t *testing.T) {
	buf := []byte{
		0x81, 202, 0x00, 0x03, // count=1, SDES, length=3 (4*4=16)
		0x00, 0x00, 0x00, 0x01, // ssrc
		0x01, 0x03, 'f', 'o', 'o', // item type=1 (CNAME), len=3, "foo"
		0x00,       // terminator
		0x00, 0x00, // padding to a 32-bit boundary
	}
	sdes, err := DecodeSourceDescription(buf)
	require.NoError(t, err)
	require.Len(t, sdes.Chunks, 1)
	require.Equal(t, uint32(1), sdes.Chunks[0].Ssrc)
	require.Len(t, sdes.Chunks[0].Items, 1)
	require.Equal(t, []byte("foo"), sdes.Chunks[0].Items[0].Data)
}

func TestDecodeApplicationDefined(t *testing.T) {
	buf := []byte{
		0x81, 204, 0x00, 0x03, // subtype=1, APP, length=3 (4*4=16)
		0x00, 0x00, 0x00, 0x01, // ssrc
		'T', 'E', 'S', 'T', // name
		0xde, 0xad, 0xbe, 0xef, // data
	}
	app, err := DecodeApplicationDefined(buf)
	require.NoError(t, err)
	require.Equal(t, uint8(1), app.Subtype)
	require.Equal(t, [4]byte{'T', 'E', 'S', 'T'}, app.Name)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, app.Data)
}

// TestSenderReportAgreesWithPion cross-validates against an independent
// RTCP implementation's marshaling.
func TestSenderReportAgreesWithPion(t *testing.T) {
	ref := pionrtcp.SenderReport{
		SSRC:        0x12345678,
		NTPTime:     0x0000000100000002,
		RTPTime:     3,
		PacketCount: 4,
		OctetCount:  5,
		Reports: []pionrtcp.ReceptionReport{
			{
				SSRC:               0xaabbccdd,
				FractionLost:       0,
				TotalLost:          2,
				LastSequenceNumber: 6,
				Jitter:             7,
				LastSenderReport:   8,
				Delay:              9,
			},
		},
	}
	refBuf, err := ref.Marshal()
	require.NoError(t, err)

	sr, err := DecodeSenderReport(refBuf)
	require.NoError(t, err)
	require.Equal(t, ref.SSRC, sr.Ssrc)
	require.Equal(t, ref.NTPTime, sr.NtpTimestamp)
	require.Equal(t, ref.RTPTime, sr.RtpTimestamp)
	require.Equal(t, ref.PacketCount, sr.PacketCount)
	require.Equal(t, ref.OctetCount, sr.OctetCount)
	require.Len(t, sr.ReportBlocks, 1)
	require.Equal(t, ref.Reports[0].SSRC, sr.ReportBlocks[0].Ssrc)
	require.Equal(t, ref.Reports[0].TotalLost, sr.ReportBlocks[0].CumulativeLost)
}
