package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUnsupported(t *testing.T) {
	c, err := Parse([]byte("a=rtpmap:0 PCMU/8000\r\n"))
	require.NoError(t, err)
	require.Equal(t, KindUnsupported, c.Kind)
	require.Equal(t, "PCMU", c.UnsupportedName)
}

func TestParseAac(t *testing.T) {
	block := "a=rtpmap:97 MPEG4-GENERIC/48000/2\r\n" +
		"a=fmtp:97 streamtype=5; profile-level-id=15; mode=AAC-hbr; config=1190; " +
		"sizeLength=13; indexLength=3; indexDeltaLength=3; profile=1;\r\n"

	c, err := Parse([]byte(block))
	require.NoError(t, err)
	require.Equal(t, KindAac, c.Kind)
	require.Equal(t, uint16(97), c.Aac.Format)
	require.Equal(t, uint32(48000), c.Aac.ClockRate)
	require.NotNil(t, c.Aac.ChannelCount)
	require.Equal(t, uint32(2), *c.Aac.ChannelCount)
	require.Equal(t, int32(13), c.Aac.SizeLength)
	require.Equal(t, int32(3), c.Aac.IndexLength)
	require.Equal(t, int32(3), c.Aac.IndexDeltaLength)
	require.Equal(t, []byte{0x11, 0x90}, c.Aac.ConfigBytes)
}

func TestParseAacMissingRequiredKey(t *testing.T) {
	block := "a=rtpmap:97 MPEG4-GENERIC/48000\r\n" +
		"a=fmtp:97 sizeLength=13; indexLength=3;\r\n"
	_, err := Parse([]byte(block))
	require.Error(t, err)
}

func TestParseAacOddHexConfig(t *testing.T) {
	block := "a=rtpmap:97 MPEG4-GENERIC/48000\r\n" +
		"a=fmtp:97 sizeLength=13; indexLength=3; indexDeltaLength=3; config=119;\r\n"
	_, err := Parse([]byte(block))
	require.Error(t, err)
}

func TestParseH264(t *testing.T) {
	block := "a=rtpmap:96 H264/90000\r\n" +
		"a=fmtp:96 profile-level-id=42e01f; packetization-mode=1; " +
		"sprop-parameter-sets=Z0IAH5WoFAFuQA==,aM4G4g==\r\n"

	c, err := Parse([]byte(block))
	require.NoError(t, err)
	require.Equal(t, KindH264, c.Kind)
	require.Equal(t, NonInterleaved, c.H264.PacketizationMode)
	require.Equal(t, "42e01f", c.H264.ProfileLevelID)

	expected := []byte{
		0, 0, 0, 1, 0x67, 0x42, 0x00, 0x1f, 0x95, 0xa8, 0x14, 0x01, 0x6e, 0x40,
		0, 0, 0, 1, 0x68, 0xce, 0x06, 0xe2,
	}
	require.Equal(t, expected, c.H264.SpsPpsBytes)
}

func TestParseH264MissingKey(t *testing.T) {
	block := "a=rtpmap:96 H264/90000\r\n" +
		"a=fmtp:96 packetization-mode=1\r\n"
	_, err := Parse([]byte(block))
	require.Error(t, err)
}

func TestParseH265(t *testing.T) {
	block := "a=rtpmap:98 H265/90000\r\n" +
		"a=fmtp:98 profile-id=1; sprop-sps=Z0I=; sprop-pps=aM4=; sprop-vps=QAE=\r\n"

	c, err := Parse([]byte(block))
	require.NoError(t, err)
	require.Equal(t, KindH265, c.Kind)
	require.Equal(t, uint16(1), c.H265.ProfileID)
	require.NotEmpty(t, c.H265.SpsPpsVpsBytes)
}
