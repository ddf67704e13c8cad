// Command aod-replay replays a captured sequence of raw IQ frames
// (one JSON object per line) through the AoD pipeline and arbiter,
// printing each resulting fix. It requires no live radio hardware,
// making it useful for regression-checking the pipeline against a
// fixed capture.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/wathne/datbac-2025/internal/aod"
	"github.com/wathne/datbac-2025/internal/beaconconfig"
)

// replayFrame is the JSON-line capture format: one raw IQ frame per
// line, MAC in conventional big-endian colon-hex.
type replayFrame struct {
	TimestampMS  int64   `json:"timestamp_ms"`
	ChannelIndex uint8   `json:"channel_index"`
	BeaconMAC    string  `json:"beacon_mac"`
	I            []int8  `json:"i"`
	Q            []int8  `json:"q"`
}

func main() {
	var (
		configFile  = pflag.StringP("config-file", "c", "beacons.yaml", "Beacon configuration file (YAML).")
		captureFile = pflag.StringP("capture-file", "i", "", "Captured JSON-lines frame file. Defaults to stdin.")
		fullMode    = pflag.BoolP("full-mode", "f", true, "Use the full 16-antenna interferometry pattern (false selects row mode).")
		showVersion = pflag.BoolP("version", "V", false, "Print version and exit.")
		help        = pflag.BoolP("help", "h", false, "Display help text.")
	)

	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "aod-replay: offline replay of captured IQ frames")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}
	if *showVersion {
		printVersion(false)
		return
	}

	registry := aod.NewRegistry()
	if _, err := beaconconfig.Load(*configFile, registry); err != nil {
		fmt.Fprintf(os.Stderr, "aod-replay: loading beacon config: %s\n", err)
		os.Exit(1)
	}

	locator := aod.NewLocator(registry)
	arbiter := aod.NewArbiter(registry, locator)

	mode := aod.RowMode
	if *fullMode {
		mode = aod.FullMode
	}
	pipeline := aod.NewPipeline(mode)

	var in io.Reader = os.Stdin
	if *captureFile != "" {
		f, err := os.Open(*captureFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "aod-replay: opening %s: %s\n", *captureFile, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := replay(in, os.Stdout, pipeline, registry, arbiter); err != nil {
		fmt.Fprintf(os.Stderr, "aod-replay: %s\n", err)
		os.Exit(1)
	}
}

func replay(r io.Reader, w io.Writer, pipeline *aod.Pipeline, registry *aod.Registry, arbiter aod.Arbiter) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rf replayFrame
		if err := json.Unmarshal(line, &rf); err != nil {
			return fmt.Errorf("line %d: decode: %w", lineNo, err)
		}

		mac, err := parseMAC(rf.BeaconMAC)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		raw := aod.NewRawFrame(rf.TimestampMS, rf.ChannelIndex, mac.LittleEndian(), rf.I, rf.Q)
		df := pipeline.Process(raw)

		beacon, err := registry.Get(mac)
		if err != nil {
			fmt.Fprintf(w, "line %d: unknown beacon %s, skipping\n", lineNo, mac)
			continue
		}

		global := beacon.GlobalDirectionCosines(df.LocalDirection)
		pos, ok, err := arbiter.Offer(aod.Observation{
			BeaconMAC:       mac,
			GlobalDirection: global,
			TimestampMS:     df.TimestampMS,
		})
		if err != nil {
			fmt.Fprintf(w, "line %d: pairing failed: %s\n", lineNo, err)
			continue
		}
		if !ok {
			continue
		}

		fmt.Fprintf(w, "fix t=%d x=%.3f y=%.3f z=%.3f error_radius=%.3f\n",
			pos.TimestampMS, pos.X, pos.Y, pos.Z, pos.ErrorRadius)
	}

	return scanner.Err()
}

func parseMAC(s string) (aod.MAC, error) {
	var octets [aod.MACSize]byte
	n, err := fmt.Sscanf(s, "%02X:%02X:%02X:%02X:%02X:%02X",
		&octets[0], &octets[1], &octets[2], &octets[3], &octets[4], &octets[5])
	if err != nil || n != aod.MACSize {
		return aod.MAC{}, fmt.Errorf("malformed MAC %q", s)
	}
	return aod.NewMACBigEndian(octets), nil
}
