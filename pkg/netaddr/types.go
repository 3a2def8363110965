// Package netaddr implements the address/network primitives SDP records are
// built from: NetworkType, AddressType, unicast address parsing, and the
// multicast address-range expansion used by ConnectionAddresses.
package netaddr

import (
	"net"

	"github.com/mediasignal/rtpsdp/pkg/byteslice"
	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

// NetworkType is the "nettype" token of an SDP origin/connection line.
// RFC 4566 defines exactly one value.
type NetworkType int

// NetworkType values.
const (
	Internet NetworkType = iota
)

// ParseNetworkType decodes the wire token "IN".
func ParseNetworkType(tok []byte) (NetworkType, error) {
	if string(tok) == "IN" {
		return Internet, nil
	}
	return 0, wireerr.InvalidBytes(tok, "unknown network type")
}

func (t NetworkType) String() string {
	return "IN"
}

// AddressType is the "addrtype" token of an SDP origin/connection line.
// The zero value is Ipv4, matching spec.md's stated default.
type AddressType int

// AddressType values.
const (
	Ipv4 AddressType = iota
	Ipv6
)

// ParseAddressType decodes the wire tokens "IP4"/"IP6".
func ParseAddressType(tok []byte) (AddressType, error) {
	switch string(tok) {
	case "IP4":
		return Ipv4, nil
	case "IP6":
		return Ipv6, nil
	default:
		return 0, wireerr.InvalidBytes(tok, "unknown address type")
	}
}

func (t AddressType) String() string {
	if t == Ipv6 {
		return "IP6"
	}
	return "IP4"
}

// ParseAddress parses addr per addrType, failing with InvalidData if it
// does not correspond to that family.
func ParseAddress(addrType AddressType, addr []byte) (net.IP, error) {
	str, err := byteslice.Utf8ToStr(addr)
	if err != nil {
		return nil, err
	}

	ip := net.ParseIP(str)
	if ip == nil {
		return nil, wireerr.InvalidBytes(addr, "not a valid IP address")
	}

	switch addrType {
	case Ipv4:
		v4 := ip.To4()
		if v4 == nil {
			return nil, wireerr.InvalidBytes(addr, "not a valid IPv4 address")
		}
		return v4, nil

	case Ipv6:
		v6 := ip.To16()
		if v6 == nil || ip.To4() != nil {
			return nil, wireerr.InvalidBytes(addr, "not a valid IPv6 address")
		}
		return v6, nil

	default:
		return nil, wireerr.Invalid("unknown address type %d", addrType)
	}
}

// IncrementAddress returns addr+1 in the lowest-order component for its
// family: the 4th octet for IPv4, the 8th 16-bit segment for IPv6 — with
// carry propagating into higher-order components on overflow, and an
// error only when the carry propagates past the top of the address.
func IncrementAddress(addr net.IP, addrType AddressType) (net.IP, error) {
	switch addrType {
	case Ipv4:
		v4 := addr.To4()
		if v4 == nil {
			return nil, wireerr.Invalid("address is not IPv4")
		}
		out := make(net.IP, 4)
		copy(out, v4)
		carry := uint16(1)
		for i := 3; i >= 0 && carry > 0; i-- {
			sum := uint16(out[i]) + carry
			out[i] = byte(sum & 0xff)
			carry = sum >> 8
		}
		if carry > 0 {
			return nil, wireerr.Invalid("IPv4 address increment overflowed")
		}
		return out, nil

	case Ipv6:
		v6 := addr.To16()
		if v6 == nil {
			return nil, wireerr.Invalid("address is not IPv6")
		}
		out := make(net.IP, 16)
		copy(out, v6)
		carry := uint32(1)
		for i := 15; i >= 0 && carry > 0; i-- {
			sum := uint32(out[i]) + carry
			out[i] = byte(sum & 0xff)
			carry = sum >> 8
		}
		if carry > 0 {
			return nil, wireerr.Invalid("IPv6 address increment overflowed")
		}
		return out, nil

	default:
		return nil, wireerr.Invalid("unknown address type %d", addrType)
	}
}
