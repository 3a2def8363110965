package sdp

import (
	"testing"

	"github.com/mediasignal/rtpsdp/pkg/codec"
	"github.com/stretchr/testify/require"
)

func TestParseMediaDescriptionSingleCodec(t *testing.T) {
	chunk := []byte("m=audio 49170 RTP/AVP 0\r\na=rtpmap:0 PCMU/8000\r\n")
	md, err := ParseMediaDescription(chunk)
	require.NoError(t, err)
	require.Equal(t, Audio, md.PayloadType)
	require.Equal(t, []SdpPort{{RtpPort: 49170, RtcpPort: 49171}}, md.Ports)
	require.True(t, md.TransportProtocol.RtpAvp)
	require.Len(t, md.Codecs, 1)
	require.Equal(t, codec.KindUnsupported, md.Codecs[0].Kind)
	require.Equal(t, "PCMU", md.Codecs[0].UnsupportedName)
}

func TestParseMediaDescriptionWithFmtpAndDirection(t *testing.T) {
	chunk := []byte("m=video 5004/2 RTP/AVP 96\r\n" +
		"c=IN IP4 224.2.1.1/127\r\n" +
		"a=rtpmap:96 H264/90000\r\n" +
		"a=fmtp:96 profile-level-id=42e01f; packetization-mode=1; sprop-parameter-sets=Z0IAH5WoFAFuQA==,aM4G4g==\r\n" +
		"a=sendonly\r\n")

	md, err := ParseMediaDescription(chunk)
	require.NoError(t, err)
	require.Equal(t, Video, md.PayloadType)
	require.Len(t, md.Ports, 2)
	require.Equal(t, uint16(5004), md.Ports[0].RtpPort)
	require.Equal(t, uint16(5006), md.Ports[1].RtpPort)
	require.NotNil(t, md.ConnectionAddress)
	require.Len(t, md.Codecs, 1)
	require.Equal(t, codec.KindH264, md.Codecs[0].Kind)
	require.NotNil(t, md.DataTransferMode)
	require.Equal(t, Send, *md.DataTransferMode)
}

func TestParseMediaDescriptionCodecCountMismatch(t *testing.T) {
	chunk := []byte("m=audio 49170 RTP/AVP 0 8\r\na=rtpmap:0 PCMU/8000\r\n")
	_, err := ParseMediaDescription(chunk)
	require.Error(t, err)
}

func TestParseMediaDescriptionUnknownAttribute(t *testing.T) {
	chunk := []byte("m=audio 49170 RTP/AVP 0\r\na=rtpmap:0 PCMU/8000\r\na=ptime:20\r\n")
	md, err := ParseMediaDescription(chunk)
	require.NoError(t, err)
	require.Len(t, md.MediaAttributes, 1)
	require.Equal(t, "ptime:20", md.MediaAttributes[0].Name)
}
