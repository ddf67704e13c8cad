package aod

// channelCount is the number of BLE channel table entries. Channels 0-36
// are secondary advertising channels; 37-39 are primary advertising
// channels.
const channelCount = 40

// channelFrequenciesMHz is indexed by BLE channel index.
var channelFrequenciesMHz = [channelCount]uint16{
	2404, 2406, 2408, 2410, 2412,
	2414, 2416, 2418, 2420, 2422,
	2424, 2428, 2430, 2432, 2434,
	2436, 2438, 2440, 2442, 2444,
	2446, 2448, 2450, 2452, 2454,
	2456, 2458, 2460, 2462, 2464,
	2466, 2468, 2470, 2472, 2474,
	2476, 2478, 2402, 2426, 2480,
}

// channelWavelengthsMM is indexed by BLE channel index. lambda = c/f.
var channelWavelengthsMM = [channelCount]float32{
	124.705681, 124.602019, 124.498529, 124.395211, 124.292064,
	124.189088, 124.086282, 123.983647, 123.881181, 123.778884,
	123.676757, 123.473006, 123.371382, 123.269925, 123.168635,
	123.067511, 122.966554, 122.865761, 122.765134, 122.664672,
	122.564374, 122.464239, 122.364269, 122.264461, 122.164816,
	122.065333, 121.966012, 121.866853, 121.767855, 121.669017,
	121.570340, 121.471823, 121.373465, 121.275266, 121.177226,
	121.079345, 120.981621, 124.809516, 123.574797, 120.884056,
}

// channelWavenumbersRadPerMM is indexed by BLE channel index. k = 2*pi/lambda.
var channelWavenumbersRadPerMM = [channelCount]float32{
	0.050384, 0.050426, 0.050468, 0.050510, 0.050552,
	0.050594, 0.050636, 0.050678, 0.050719, 0.050761,
	0.050803, 0.050887, 0.050929, 0.050971, 0.051013,
	0.051055, 0.051097, 0.051139, 0.051181, 0.051222,
	0.051264, 0.051306, 0.051348, 0.051390, 0.051432,
	0.051474, 0.051516, 0.051558, 0.051600, 0.051642,
	0.051684, 0.051725, 0.051767, 0.051809, 0.051851,
	0.051893, 0.051935, 0.050342, 0.050845, 0.051977,
}

// ChannelFrequencyMHz returns the BLE channel frequency in MHz, or 0 if
// index is out of range.
func ChannelFrequencyMHz(index uint8) uint16 {
	if int(index) < channelCount {
		return channelFrequenciesMHz[index]
	}
	return 0
}

// ChannelWavelengthMM returns the BLE channel wavelength in millimeters,
// or 0 if index is out of range.
func ChannelWavelengthMM(index uint8) float32 {
	if int(index) < channelCount {
		return channelWavelengthsMM[index]
	}
	return 0
}

// ChannelWavenumberRadPerMM returns the BLE channel wavenumber in radians
// per millimeter, or 0 if index is out of range.
func ChannelWavenumberRadPerMM(index uint8) float32 {
	if int(index) < channelCount {
		return channelWavenumbersRadPerMM[index]
	}
	return 0
}
