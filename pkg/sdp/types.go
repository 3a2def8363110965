// Package sdp implements the Session Description Protocol (RFC 4566)
// record parsers and the line-oriented session driver they feed into.
package sdp

import (
	"github.com/mediasignal/rtpsdp/pkg/byteslice"
	"github.com/mediasignal/rtpsdp/pkg/wireerr"
)

// DataTransferMode is the SDP direction attribute.
type DataTransferMode int

// DataTransferMode values, as a bitmask: bit 0 is receive, bit 1 is
// send.
const (
	Inactive    DataTransferMode = 0b00
	Receive     DataTransferMode = 0b01
	Send        DataTransferMode = 0b10
	SendReceive DataTransferMode = 0b11
)

func parseDataTransferMode(tok []byte) (DataTransferMode, bool) {
	switch string(tok) {
	case "inactive":
		return Inactive, true
	case "recvonly":
		return Receive, true
	case "sendonly":
		return Send, true
	case "sendrecv":
		return SendReceive, true
	default:
		return 0, false
	}
}

// PayloadType is the "media" token of an "m=" line.
type PayloadType int

// PayloadType values.
const (
	Video PayloadType = iota
	Audio
	Application
	Data
	Control
)

func parsePayloadType(tok []byte) (PayloadType, error) {
	switch string(tok) {
	case "video":
		return Video, nil
	case "audio":
		return Audio, nil
	case "application":
		return Application, nil
	case "data":
		return Data, nil
	case "control":
		return Control, nil
	default:
		return 0, wireerr.InvalidBytes(tok, "unknown media type")
	}
}

// MediaTransportProtocol is the "proto" token of an "m=" line.
type MediaTransportProtocol struct {
	RtpAvp  bool
	RtpSavp bool
	Unknown string // set when neither RtpAvp nor RtpSavp
}

func parseMediaTransportProtocol(tok []byte) MediaTransportProtocol {
	switch string(tok) {
	case "RTP/AVP":
		return MediaTransportProtocol{RtpAvp: true}
	case "RTP/SAVP":
		return MediaTransportProtocol{RtpSavp: true}
	default:
		return MediaTransportProtocol{Unknown: string(tok)}
	}
}

// UnknownMediaAttribute is a closed-vocabulary "a=" line that is not one
// of the direction tokens: either "a=<key> <value>" or a bare
// "a=<token>" — spec.md §9 replaces the source's trait-object attribute
// storage with this tagged variant since the known attribute set is
// closed at compile time.
type UnknownMediaAttribute struct {
	Name  string
	Value *string
}

func parseAttributeLine(value []byte) UnknownMediaAttribute {
	key, val, ok := byteslice.Separate(value, []byte(" "))
	if !ok {
		return UnknownMediaAttribute{Name: string(byteslice.Trim(value, []byte(" ")))}
	}
	valStr := string(byteslice.Trim(val, []byte(" ")))
	return UnknownMediaAttribute{Name: string(byteslice.Trim(key, []byte(" "))), Value: &valStr}
}
