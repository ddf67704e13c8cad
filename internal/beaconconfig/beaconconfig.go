// Package beaconconfig loads the set of known beacons (MAC, position,
// orientation) from a YAML file into the core registry, using
// gopkg.in/yaml.v3.
package beaconconfig

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wathne/datbac-2025/internal/aod"
)

// beaconEntry is the on-disk representation of one beacon. Angles are
// in degrees for human readability; Load converts them to radians.
type beaconEntry struct {
	MAC      string  `yaml:"mac"`
	X        float32 `yaml:"x"`
	Y        float32 `yaml:"y"`
	Z        float32 `yaml:"z"`
	YawDeg   float32 `yaml:"yaw_deg"`
	PitchDeg float32 `yaml:"pitch_deg"`
	RollDeg  float32 `yaml:"roll_deg"`
}

type document struct {
	Beacons []beaconEntry `yaml:"beacons"`
}

// Load parses a YAML beacon list from path and installs each entry into
// registry. It returns the count of beacons installed.
func Load(path string, registry *aod.Registry) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("beaconconfig: read %s: %w", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("beaconconfig: parse %s: %w", path, err)
	}

	for _, entry := range doc.Beacons {
		mac, err := parseMAC(entry.MAC)
		if err != nil {
			return 0, fmt.Errorf("beaconconfig: %s: %w", entry.MAC, err)
		}

		b, err := aod.NewBeacon(mac, entry.X, entry.Y, entry.Z,
			degToRad(entry.YawDeg), degToRad(entry.PitchDeg), degToRad(entry.RollDeg))
		if err != nil {
			return 0, fmt.Errorf("beaconconfig: beacon %s: %w", entry.MAC, err)
		}

		if err := registry.Put(b); err != nil {
			return 0, fmt.Errorf("beaconconfig: install %s: %w", entry.MAC, err)
		}
	}

	return len(doc.Beacons), nil
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

func degToRad(deg float32) float32 {
	return float32(float64(deg) * math.Pi / 180)
}
