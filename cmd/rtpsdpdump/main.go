// Command rtpsdpdump decodes an SDP body or a single RTP/RTCP packet
// from a file and logs a summary of the decoded record.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mediasignal/rtpsdp/internal/logger"
	"github.com/mediasignal/rtpsdp/pkg/rtcp"
	"github.com/mediasignal/rtpsdp/pkg/rtp"
	"github.com/mediasignal/rtpsdp/pkg/sdp"
)

func main() {
	inPath := flag.String("in", "", "path to the input file (required)")
	kind := flag.String("kind", "sdp", "input kind: sdp, rtp, rtcp")
	structuredLog := flag.Bool("structured-log", false, "emit structured (JSON) log lines")
	flag.Parse()

	log := logger.New(logger.Info, *structuredLog)

	if err := run(log, *inPath, *kind); err != nil {
		log.Log(logger.Error, "%v", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger, inPath, kind string) error {
	if inPath == "" {
		return fmt.Errorf("-in is required")
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	switch kind {
	case "sdp":
		session, err := sdp.Parse(data)
		if err != nil {
			return fmt.Errorf("decoding sdp: %w", err)
		}
		log.Log(logger.Info, "session %q: %d media description(s)", session.SessionName, len(session.MediaDescriptions))
		for i, md := range session.MediaDescriptions {
			log.Log(logger.Info, "  media[%d]: %d port(s), %d codec(s)", i, len(md.Ports), len(md.Codecs))
		}

	case "rtp":
		packet, err := rtp.DecodePacket(data)
		if err != nil {
			return fmt.Errorf("decoding rtp: %w", err)
		}
		log.Log(logger.Info, "rtp packet: seq=%d ts=%d ssrc=%d payload_type=%d payload_len=%d",
			packet.Header.SequenceNumber, packet.Header.Timestamp, packet.Header.Ssrc,
			packet.Header.PayloadType, len(packet.Payload))

	case "rtcp":
		if len(data) < 2 {
			return fmt.Errorf("input too short to contain an rtcp packet_type")
		}
		switch rtcp.PacketType(data[1]) {
		case rtcp.SenderReport:
			sr, err := rtcp.DecodeSenderReport(data)
			if err != nil {
				return fmt.Errorf("decoding rtcp sr: %w", err)
			}
			log.Log(logger.Info, "rtcp SR: ssrc=%d report_blocks=%d", sr.Ssrc, len(sr.ReportBlocks))

		case rtcp.ReceiverReport:
			rr, err := rtcp.DecodeReceiverReport(data)
			if err != nil {
				return fmt.Errorf("decoding rtcp rr: %w", err)
			}
			log.Log(logger.Info, "rtcp RR: ssrc=%d report_blocks=%d", rr.Ssrc, len(rr.ReportBlocks))

		case rtcp.SourceDescription:
			sdes, err := rtcp.DecodeSourceDescription(data)
			if err != nil {
				return fmt.Errorf("decoding rtcp sdes: %w", err)
			}
			log.Log(logger.Info, "rtcp SDES: chunks=%d", len(sdes.Chunks))

		case rtcp.Goodbye:
			bye, err := rtcp.DecodeGoodbye(data)
			if err != nil {
				return fmt.Errorf("decoding rtcp bye: %w", err)
			}
			log.Log(logger.Info, "rtcp BYE: ssrcs=%d", len(bye.Ssrcs))

		case rtcp.ApplicationDefined:
			app, err := rtcp.DecodeApplicationDefined(data)
			if err != nil {
				return fmt.Errorf("decoding rtcp app: %w", err)
			}
			log.Log(logger.Info, "rtcp APP: name=%s data_len=%d", app.Name, len(app.Data))

		default:
			return fmt.Errorf("unrecognized rtcp packet_type %d", data[1])
		}

	default:
		return fmt.Errorf("unknown -kind %q (want sdp, rtp, or rtcp)", kind)
	}

	return nil
}
