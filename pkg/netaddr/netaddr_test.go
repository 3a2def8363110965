package netaddr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAddressType(t *testing.T) {
	at, err := ParseAddressType([]byte("IP4"))
	require.NoError(t, err)
	require.Equal(t, Ipv4, at)

	at, err = ParseAddressType([]byte("IP6"))
	require.NoError(t, err)
	require.Equal(t, Ipv6, at)

	_, err = ParseAddressType([]byte("IP5"))
	require.Error(t, err)
}

func TestParseAddress(t *testing.T) {
	ip, err := ParseAddress(Ipv4, []byte("192.0.2.10"))
	require.NoError(t, err)
	require.Equal(t, "192.0.2.10", ip.String())

	_, err = ParseAddress(Ipv4, []byte("::1"))
	require.Error(t, err)

	ip6, err := ParseAddress(Ipv6, []byte("ff15::101"))
	require.NoError(t, err)
	require.Equal(t, "ff15::101", ip6.String())

	_, err = ParseAddress(Ipv6, []byte("192.0.2.1"))
	require.Error(t, err)
}

func TestIncrementAddressIPv4(t *testing.T) {
	ip, err := ParseAddress(Ipv4, []byte("192.168.1.1"))
	require.NoError(t, err)

	next, err := IncrementAddress(ip, Ipv4)
	require.NoError(t, err)
	require.Equal(t, "192.168.1.2", next.String())
}

func TestIncrementAddressIPv4Carry(t *testing.T) {
	ip, err := ParseAddress(Ipv4, []byte("192.168.1.255"))
	require.NoError(t, err)

	next, err := IncrementAddress(ip, Ipv4)
	require.NoError(t, err)
	require.Equal(t, "192.168.2.0", next.String())
}

func TestIncrementAddressIPv4Overflow(t *testing.T) {
	ip, err := ParseAddress(Ipv4, []byte("255.255.255.255"))
	require.NoError(t, err)

	_, err = IncrementAddress(ip, Ipv4)
	require.Error(t, err)
}

func TestParseConnectionAddressesSimple(t *testing.T) {
	ca, err := Parse([]byte("IN IP4 192.0.2.10"))
	require.NoError(t, err)
	require.Equal(t, Internet, ca.NetType)
	require.Equal(t, Ipv4, ca.AddrType)
	require.Len(t, ca.Addresses, 1)
	require.Equal(t, "192.0.2.10", ca.Addresses[0].String())
	require.Nil(t, ca.TTL)
}

func TestParseConnectionAddressesTTLOnly(t *testing.T) {
	ca, err := Parse([]byte("IN IP4 224.2.17.12/127"))
	require.NoError(t, err)
	require.Len(t, ca.Addresses, 1)
	require.Equal(t, "224.2.17.12", ca.Addresses[0].String())
	require.NotNil(t, ca.TTL)
	require.Equal(t, 127, *ca.TTL)
}

func TestParseConnectionAddressesExpansion(t *testing.T) {
	ca, err := Parse([]byte("IN IP4 192.168.1.1/1/2"))
	require.NoError(t, err)
	require.NotNil(t, ca.TTL)
	require.Equal(t, 1, *ca.TTL)
	require.Len(t, ca.Addresses, 2)
	require.Equal(t, "192.168.1.1", ca.Addresses[0].String())
	require.Equal(t, "192.168.1.2", ca.Addresses[1].String())
}

func TestParseConnectionAddressesIPv6Count(t *testing.T) {
	ca, err := Parse([]byte("IN IP6 FF15::101/3"))
	require.NoError(t, err)
	require.Nil(t, ca.TTL)
	require.Len(t, ca.Addresses, 3)
	require.Equal(t, "ff15::101", ca.Addresses[0].String())
	require.Equal(t, "ff15::103", ca.Addresses[2].String())
}

func TestParseConnectionAddressesInvalid(t *testing.T) {
	_, err := Parse([]byte("invalid"))
	require.Error(t, err)
}
