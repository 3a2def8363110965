package netaddr

import (
	"net"

	"github.com/mediasignal/rtpsdp/pkg/byteslice"
	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

// ConnectionAddresses is the decoded form of an SDP "c=" line:
// "<nettype> SP <addrtype> SP <addr>[/ttl[/count]]". When the wire form
// carries a count, Addresses is the expansion {addr, addr+1, ...,
// addr+count-1} (spec.md §3 invariant 5: len(Addresses) == max(1, count)).
type ConnectionAddresses struct {
	NetType   NetworkType
	AddrType  AddressType
	Addresses []net.IP
	TTL       *int
}

var slashSep = []byte("/")
var spaceSep = []byte(" ")

// Parse decodes a "c=" line body (without the leading "c=").
func Parse(line []byte) (ConnectionAddresses, error) {
	netTok, rest, ok := byteslice.Separate(line, spaceSep)
	if !ok {
		return ConnectionAddresses{}, wireerr.InvalidBytes(line, "connection address: expected nettype SP addrtype SP addr")
	}
	addrTypeTok, addrTok, ok := byteslice.Separate(rest, spaceSep)
	if !ok {
		return ConnectionAddresses{}, wireerr.InvalidBytes(line, "connection address: expected addrtype SP addr")
	}

	netType, err := ParseNetworkType(byteslice.Trim(netTok, spaceSep))
	if err != nil {
		return ConnectionAddresses{}, err
	}
	addrType, err := ParseAddressType(byteslice.Trim(addrTypeTok, spaceSep))
	if err != nil {
		return ConnectionAddresses{}, err
	}
	addrTok = byteslice.Trim(addrTok, spaceSep)

	baseTok, ttl, count, err := splitAddrSuffix(addrTok, addrType)
	if err != nil {
		return ConnectionAddresses{}, err
	}

	base, err := ParseAddress(addrType, baseTok)
	if err != nil {
		return ConnectionAddresses{}, err
	}

	addrs := make([]net.IP, 0, count)
	cur := base
	for i := 0; i < count; i++ {
		if i > 0 {
			cur, err = IncrementAddress(cur, addrType)
			if err != nil {
				return ConnectionAddresses{}, err
			}
		}
		addrs = append(addrs, cur)
	}

	return ConnectionAddresses{
		NetType:   netType,
		AddrType:  addrType,
		Addresses: addrs,
		TTL:       ttl,
	}, nil
}

// splitAddrSuffix splits "<addr>[/ttl[/count]]" for IPv4, and
// "<addr>[/count]" for IPv6 (IPv6 multicast carries no TTL field), per
// RFC 4566 and the original_source reference implementation.
func splitAddrSuffix(tok []byte, addrType AddressType) (base []byte, ttl *int, count int, err error) {
	first, rem, hasSlash := byteslice.Separate(tok, slashSep)
	if !hasSlash {
		return tok, nil, 1, nil
	}

	if addrType == Ipv4 {
		// "<addr>/<ttl>", no count: rem decodes as a plain number.
		if ttlVal, err := byteslice.Utf8ToNumber[int](rem); err == nil {
			return first, &ttlVal, 1, nil
		}

		// "<addr>/<ttl>/<count>"
		ttlTok, countTok, ok := byteslice.Separate(rem, slashSep)
		if !ok {
			return nil, nil, 0, wireerr.InvalidBytes(tok, "malformed IPv4 multicast suffix")
		}
		ttlVal, err := byteslice.Utf8ToNumber[int](ttlTok)
		if err != nil {
			return nil, nil, 0, err
		}
		countVal, err := byteslice.Utf8ToNumber[int](countTok)
		if err != nil {
			return nil, nil, 0, err
		}
		if countVal < 1 {
			countVal = 1
		}
		return first, &ttlVal, countVal, nil
	}

	// IPv6: "<addr>/<count>", no TTL field.
	countVal, err := byteslice.Utf8ToNumber[int](rem)
	if err != nil {
		return nil, nil, 0, err
	}
	if countVal < 1 {
		countVal = 1
	}
	return first, nil, countVal, nil
}
