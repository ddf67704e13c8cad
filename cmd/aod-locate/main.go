// Command aod-locate is the live driver: it reads raw CTE IQ reports
// off a serial-attached BLE controller, runs them through the AoD
// pipeline, pairs observations across beacons, and emits position
// fixes, optionally exporting them as NMEA over a pty and advertising
// itself on the local network via mDNS.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/wathne/datbac-2025/internal/antenna"
	"github.com/wathne/datbac-2025/internal/aod"
	"github.com/wathne/datbac-2025/internal/beaconconfig"
	"github.com/wathne/datbac-2025/internal/discovery"
	"github.com/wathne/datbac-2025/internal/geoexport"
	"github.com/wathne/datbac-2025/internal/hotplug"
	"github.com/wathne/datbac-2025/internal/posexport"
	"github.com/wathne/datbac-2025/internal/serialradio"
	"github.com/wathne/datbac-2025/internal/telemetry"
)

func main() {
	var (
		configFile   = pflag.StringP("config-file", "c", "beacons.yaml", "Beacon configuration file (YAML).")
		serialPort   = pflag.StringP("serial-port", "p", "/dev/ttyACM0", "Serial device the BLE controller is attached to.")
		baud         = pflag.IntP("baud", "b", 115200, "Serial baud rate.")
		fullMode     = pflag.BoolP("full-mode", "f", true, "Use the full 16-antenna interferometry pattern (false selects row mode).")
		antennaChip  = pflag.String("antenna-chip", "", "GPIO chip whose antenna-select lines are claimed at startup (held at antenna 0, not stepped). Empty leaves them unclaimed (replay/bench mode).")
		antennaLines = pflag.IntSlice("antenna-lines", []int{0, 1, 2, 3}, "Four GPIO line offsets for antenna switching, lowest bit first.")
		anchorLat    = pflag.Float64("anchor-lat", 0, "Geodetic anchor latitude for position export, decimal degrees.")
		anchorLon    = pflag.Float64("anchor-lon", 0, "Geodetic anchor longitude for position export, decimal degrees.")
		exportNMEA   = pflag.Bool("export-nmea", false, "Export fixes as $GPGGA sentences over a pty.")
		advertise    = pflag.Bool("advertise", false, "Advertise this instance via mDNS/DNS-SD.")
		watchUSB     = pflag.Bool("watch-usb", false, "Log USB attach/detach events for the radio link.")
		logLevel     = pflag.String("log-level", "info", "Log level: debug, info, warn, error.")
		showVersion  = pflag.BoolP("version", "V", false, "Print version and exit.")
		help         = pflag.BoolP("help", "h", false, "Display help text.")
	)

	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "aod-locate: live BLE angle-of-departure locator")
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

	logger := telemetry.New("aod-locate", telemetry.LevelFromString(*logLevel))

	registry := aod.NewRegistry()
	count, err := beaconconfig.Load(*configFile, registry)
	if err != nil {
		logger.Fatal("loading beacon config", "err", err)
	}
	logger.Info("beacons loaded", "count", count)

	locator := aod.NewLocator(registry)
	arbiter := aod.NewArbiter(registry, locator)

	mode := aod.RowMode
	if *fullMode {
		mode = aod.FullMode
	}
	pipeline := aod.NewPipeline(mode)

	var anchor *geoexport.Anchor
	if *anchorLat != 0 || *anchorLon != 0 {
		a, err := geoexport.NewAnchorFromGeodetic(*anchorLat, *anchorLon)
		if err != nil {
			logger.Fatal("building geodetic anchor", "err", err)
		}
		anchor = &a
	}

	var exporter *posexport.Exporter
	if *exportNMEA {
		exporter, err = posexport.Open()
		if err != nil {
			logger.Fatal("opening NMEA export pty", "err", err)
		}
		defer exporter.Close()
		logger.Info("NMEA export available", "pty", exporter.SlaveName())
	}

	if *antennaChip != "" {
		var offsets [4]int
		copy(offsets[:], *antennaLines)
		sw, err := antenna.Open(*antennaChip, offsets)
		if err != nil {
			logger.Fatal("opening antenna switch", "err", err)
		}
		defer sw.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *advertise {
		if _, err := discovery.Advertise(ctx, "", 0); err != nil {
			logger.Error("mDNS advertise failed", "err", err)
		}
	}

	if *watchUSB {
		events, err := hotplug.Watch(ctx)
		if err != nil {
			logger.Error("USB watch failed", "err", err)
		} else {
			go func() {
				for ev := range events {
					logger.Info("USB event", "action", ev.Action, "devpath", ev.DevPath)
				}
			}()
		}
	}

	process := func(raw aod.RawFrame) {
		df := pipeline.Process(raw)
		mac := aod.NewMACLittleEndian(df.BeaconMAC)

		beacon, err := registry.Get(mac)
		if err != nil {
			logger.Warn("observation from unknown beacon", "mac", mac)
			return
		}

		global := beacon.GlobalDirectionCosines(df.LocalDirection)
		pos, ok, err := arbiter.Offer(aod.Observation{
			BeaconMAC:       mac,
			GlobalDirection: global,
			TimestampMS:     df.TimestampMS,
		})
		if err != nil {
			logger.Warn("pairing failed", "err", err)
			return
		}
		if !ok {
			return
		}

		logger.Info("fix", "x", pos.X, "y", pos.Y, "z", pos.Z, "error_radius", pos.ErrorRadius)

		if anchor != nil && exporter != nil {
			lat, lon, alt, err := anchor.ToGeodetic(aod.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z})
			if err != nil {
				logger.Warn("geodetic export failed", "err", err)
				return
			}
			if err := exporter.WriteFix("", lat, lon, alt); err != nil {
				logger.Warn("NMEA export failed", "err", err)
			}
		}
	}

	queue := aod.NewWorkQueue(aod.WorkQueueCapacity, process)
	queue.Start()
	defer queue.Stop()

	port, err := serialradio.Open(*serialPort, *baud)
	if err != nil {
		logger.Fatal("opening serial radio", "err", err)
	}
	defer port.Close()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frame, err := port.ReadFrame()
		if err != nil {
			logger.Error("reading frame", "err", err)
			return
		}
		queue.Submit(frame)
	}
}
