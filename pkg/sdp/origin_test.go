package sdp

import (
	"testing"

	"github.com/mediasignal/rtpsdp/pkg/netaddr"
	"github.com/stretchr/testify/require"
)

func TestParseOrigin(t *testing.T) {
	o, err := ParseOrigin([]byte("- 2890844526 2890842807 IN IP4 192.0.2.10"))
	require.NoError(t, err)
	require.Equal(t, "-", o.UserName)
	require.Equal(t, "2890844526", o.SessionID)
	require.Equal(t, "2890842807", o.SessionVersion)
	require.Equal(t, netaddr.Internet, o.NetworkType)
	require.Equal(t, netaddr.Ipv4, o.AddressType)
	require.Equal(t, "192.0.2.10", o.Address.String())
}

func TestParseOriginMissingField(t *testing.T) {
	_, err := ParseOrigin([]byte("- 1 2 IN IP4"))
	require.Error(t, err)
}

func TestParseOriginBadAddress(t *testing.T) {
	_, err := ParseOrigin([]byte("- 1 2 IN IP4 not-an-address"))
	require.Error(t, err)
}
