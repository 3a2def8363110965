package sdp

import (
	"net"

	"github.com/mediasignal/rtpsdp/pkg/byteslice"
	"github.com/mediasignal/rtpsdp/pkg/netaddr"
	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

// Origin is the decoded "o=" line.
type Origin struct {
	UserName       string
	SessionID      string
	SessionVersion string
	NetworkType    netaddr.NetworkType
	AddressType    netaddr.AddressType
	Address        net.IP
}

var sp1 = []byte(" ")

// ParseOrigin decodes "<username> <sess-id> <sess-version> <nettype>
// <addrtype> <unicast-address>". SessionID and SessionVersion are kept as
// strings rather than integers since RFC 4566 allows values wider than a
// 64-bit counter and leading zeros are significant for comparison.
func ParseOrigin(line []byte) (Origin, error) {
	userName, rest, ok := byteslice.Separate(line, sp1)
	if !ok {
		return Origin{}, wireerr.InvalidBytes(line, "origin line missing sess-id")
	}

	sessID, rest, ok := byteslice.Separate(rest, sp1)
	if !ok {
		return Origin{}, wireerr.InvalidBytes(rest, "origin line missing sess-version")
	}

	sessVer, rest, ok := byteslice.Separate(rest, sp1)
	if !ok {
		return Origin{}, wireerr.InvalidBytes(rest, "origin line missing nettype")
	}

	netTypeTok, rest, ok := byteslice.Separate(rest, sp1)
	if !ok {
		return Origin{}, wireerr.InvalidBytes(rest, "origin line missing addrtype")
	}

	addrTypeTok, addrTok, ok := byteslice.Separate(rest, sp1)
	if !ok {
		return Origin{}, wireerr.InvalidBytes(rest, "origin line missing address")
	}

	netType, err := netaddr.ParseNetworkType(netTypeTok)
	if err != nil {
		return Origin{}, err
	}
	addrType, err := netaddr.ParseAddressType(addrTypeTok)
	if err != nil {
		return Origin{}, err
	}
	addr, err := netaddr.ParseAddress(addrType, byteslice.Trim(addrTok, sp1))
	if err != nil {
		return Origin{}, err
	}

	return Origin{
		UserName:       string(userName),
		SessionID:      string(sessID),
		SessionVersion: string(sessVer),
		NetworkType:    netType,
		AddressType:    addrType,
		Address:        addr,
	}, nil
}
