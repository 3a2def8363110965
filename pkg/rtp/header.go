// Package rtp decodes and encodes RTP (RFC 3550) packet headers. The
// CSRC list is decoded into an owned slice; a Packet's Payload remains
// a borrowed view into the input buffer, which must outlive it.
package rtp

import (
	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

const fixedHeaderSize = 12

// Header is the fixed RTP header plus its variable-length CSRC list.
type Header struct {
	Version        uint8
	Padding        bool
	Extension      bool
	CsrcCount      uint8
	Marker         bool
	PayloadType    uint8
	SequenceNumber uint16
	Timestamp      uint32
	Ssrc           uint32
	Csrc           []uint32 // owned copy decoded from the CSRC list, if any
}

// ByteSize is the encoded size of h: 12 + 4*csrc_count.
func (h Header) ByteSize() int {
	return fixedHeaderSize + 4*int(h.CsrcCount)
}

// DecodeHeader decodes the fixed 12-byte header and its trailing CSRC
// list from buf, returning the header and the remaining bytes.
func DecodeHeader(buf []byte) (Header, []byte, error) {
	if len(buf) < fixedHeaderSize {
		return Header{}, nil, wireerr.Invalid("rtp header: need %d bytes, have %d", fixedHeaderSize, len(buf))
	}

	b0 := buf[0]
	b1 := buf[1]

	h := Header{
		Version:        b0 >> 6,
		Padding:        b0&0x20 != 0,
		Extension:      b0&0x10 != 0,
		CsrcCount:      b0 & 0x0f,
		Marker:         b1&0x80 != 0,
		PayloadType:    b1 & 0x7f,
		SequenceNumber: uint16(buf[2])<<8 | uint16(buf[3]),
		Timestamp:      uint32(buf[4])<<24 | uint32(buf[5])<<16 | uint32(buf[6])<<8 | uint32(buf[7]),
		Ssrc:           uint32(buf[8])<<24 | uint32(buf[9])<<16 | uint32(buf[10])<<8 | uint32(buf[11]),
	}

	need := fixedHeaderSize + 4*int(h.CsrcCount)
	if len(buf) < need {
		return Header{}, nil, wireerr.Invalid("rtp header: csrc list needs %d bytes, have %d", need, len(buf))
	}

	if h.CsrcCount > 0 {
		h.Csrc = make([]uint32, h.CsrcCount)
		for i := 0; i < int(h.CsrcCount); i++ {
			off := fixedHeaderSize + 4*i
			h.Csrc[i] = uint32(buf[off])<<24 | uint32(buf[off+1])<<16 | uint32(buf[off+2])<<8 | uint32(buf[off+3])
		}
	}

	return h, buf[need:], nil
}

// Write is the exact inverse of DecodeHeader: it appends the encoded
// header to buf and returns the extended slice.
func (h Header) Write(buf []byte) []byte {
	var b0, b1 byte
	b0 = (h.Version&0x03)<<6 | h.CsrcCount&0x0f
	if h.Padding {
		b0 |= 0x20
	}
	if h.Extension {
		b0 |= 0x10
	}
	b1 = h.PayloadType & 0x7f
	if h.Marker {
		b1 |= 0x80
	}

	buf = append(buf, b0, b1,
		byte(h.SequenceNumber>>8), byte(h.SequenceNumber),
		byte(h.Timestamp>>24), byte(h.Timestamp>>16), byte(h.Timestamp>>8), byte(h.Timestamp),
		byte(h.Ssrc>>24), byte(h.Ssrc>>16), byte(h.Ssrc>>8), byte(h.Ssrc))

	for _, c := range h.Csrc {
		buf = append(buf, byte(c>>24), byte(c>>16), byte(c>>8), byte(c))
	}

	return buf
}
