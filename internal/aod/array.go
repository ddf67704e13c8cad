package aod

// AntennaCount is the number of antennas on the CHW1010-ANT2 4x4 array.
const AntennaCount = 16

// AntennaPosition is an antenna's (x, y) position in millimeters on the
// array, centered at the array origin, z implicitly 0 (the array is
// planar).
type AntennaPosition struct {
	X, Y float32
}

// antennaPositions holds the 16 CHW1010-ANT2 antenna positions in
// millimeters, center-to-center orthogonal spacing 37.5mm.
var antennaPositions = [AntennaCount]AntennaPosition{
	{-18.75, -18.75}, // antenna  0, bottom left quadrant
	{-56.25, -18.75}, // antenna  1, bottom left quadrant
	{-56.25, -56.25}, // antenna  2, bottom left quadrant
	{-18.75, -56.25}, // antenna  3, bottom left quadrant
	{18.75, -56.25},  // antenna  4, bottom right quadrant
	{18.75, -18.75},  // antenna  5, bottom right quadrant
	{56.25, -56.25},  // antenna  6, bottom right quadrant
	{56.25, -18.75},  // antenna  7, bottom right quadrant
	{56.25, 18.75},   // antenna  8, top right quadrant
	{56.25, 56.25},   // antenna  9, top right quadrant
	{18.75, 18.75},   // antenna 10, top right quadrant
	{18.75, 56.25},   // antenna 11, top right quadrant
	{-18.75, 56.25},  // antenna 12, top left quadrant
	{-56.25, 56.25},  // antenna 13, top left quadrant
	{-56.25, 18.75},  // antenna 14, top left quadrant
	{-18.75, 18.75},  // antenna 15, top left quadrant
}

// AntennaPositionAt returns the position of antenna index on the array.
// Out-of-range index returns the zero position.
func AntennaPositionAt(index int) AntennaPosition {
	if index >= 0 && index < AntennaCount {
		return antennaPositions[index]
	}
	return AntennaPosition{}
}
