package aod

import "math"

// PairDirection encodes the physical adjacency of a measurement-index
// pair on the antenna grid.
type PairDirection uint8

const (
	LeftToRight PairDirection = iota
	RightToLeft
	BottomToTop
	TopToBottom
)

type measurementPair struct {
	Index1, Index2 uint8
	Direction      PairDirection
}

// rowModePairs covers a single antenna row: 27 horizontal pairs, no
// vertical pairs. Grounded on iq_data_aod_row_interferometry().
var rowModePairs = [27]measurementPair{
	{0, 1, LeftToRight},
	{1, 2, LeftToRight},

	{3, 4, LeftToRight},
	{4, 5, LeftToRight},
	{5, 6, LeftToRight},

	{7, 8, LeftToRight},
	{8, 9, LeftToRight},
	{9, 10, LeftToRight},

	{11, 12, LeftToRight},
	{12, 13, LeftToRight},
	{13, 14, LeftToRight},

	{15, 16, LeftToRight},
	{16, 17, LeftToRight},
	{17, 18, LeftToRight},

	{19, 20, LeftToRight},
	{20, 21, LeftToRight},
	{21, 22, LeftToRight},

	{23, 24, LeftToRight},
	{24, 25, LeftToRight},
	{25, 26, LeftToRight},

	{27, 28, LeftToRight},
	{28, 29, LeftToRight},
	{29, 30, LeftToRight},

	{31, 32, LeftToRight},
	{32, 33, LeftToRight},
	{33, 34, LeftToRight},

	{35, 36, LeftToRight},
}

// fullModePairs covers the snake pattern over all 16 antennas: 14
// horizontal pairs, 18 vertical pairs. Grounded on
// iq_data_aod_interferometry().
var fullModePairs = [32]measurementPair{
	{0, 1, TopToBottom},
	{1, 2, LeftToRight},
	{2, 3, LeftToRight},
	{3, 4, BottomToTop},
	{5, 6, BottomToTop},
	{6, 7, BottomToTop},
	{7, 8, BottomToTop},
	{9, 10, BottomToTop},
	{10, 11, RightToLeft},
	{11, 12, RightToLeft},
	{12, 13, TopToBottom},
	{13, 14, LeftToRight},
	{14, 15, TopToBottom},
	{15, 16, RightToLeft},
	{16, 17, TopToBottom},
	{17, 18, LeftToRight},
	{18, 19, LeftToRight},
	{19, 20, BottomToTop},
	{21, 22, BottomToTop},
	{22, 23, BottomToTop},
	{23, 24, BottomToTop},
	{25, 26, BottomToTop},
	{26, 27, RightToLeft},
	{27, 28, RightToLeft},
	{28, 29, TopToBottom},
	{29, 30, LeftToRight},
	{30, 31, TopToBottom},
	{31, 32, RightToLeft},
	{32, 33, TopToBottom},
	{33, 34, LeftToRight},
	{34, 35, LeftToRight},
	{35, 36, BottomToTop},
}

// InterferometryMode selects which pair table the pipeline uses.
type InterferometryMode int

const (
	// RowMode uses a single beacon antenna row (27 horizontal pairs).
	RowMode InterferometryMode = iota
	// FullMode uses all 16 antennas in a snake pattern (32 pairs).
	FullMode
)

func (m InterferometryMode) pairs() []measurementPair {
	if m == FullMode {
		return fullModePairs[:]
	}
	return rowModePairs[:]
}

// DataFrame is the fully processed derivation of a RawFrame: split
// reference/measurement buffers, reference phase unwrap, estimated
// drift rate, drift-compensated measurement samples, and the resulting
// local direction cosines, azimuth, and elevation.
type DataFrame struct {
	TimestampMS  int64
	ChannelIndex uint8
	BeaconMAC    [MACSize]byte

	ReferenceSampleCount   int
	MeasurementSampleCount int

	ReferenceI [MaxReferenceSamples]int8
	ReferenceQ [MaxReferenceSamples]int8

	MeasurementI [MaxMeasurementSamples]int8
	MeasurementQ [MaxMeasurementSamples]int8

	ReferencePhases           [MaxReferenceSamples]float32
	ReferencePhasesUnwrapped  [MaxReferenceSamples]float32
	LinearPhaseDriftRate      float32
	MeasurementICompensated   [MaxMeasurementSamples]float32
	MeasurementQCompensated   [MaxMeasurementSamples]float32
	MeasurementPhasesCompensated [MaxMeasurementSamples]float32

	LocalDirection Vec3

	AzimuthRad   float32
	ElevationRad float32
}

// Pipeline holds the (small) set of options governing IQ processing:
// which antenna pairing table to use, and whether to apply the
// reference-period sign fix.
type Pipeline struct {
	Mode InterferometryMode

	// ApplyReferenceSignFix, when true (the default), negates every
	// odd-indexed reference I/Q sample to compensate an observed
	// systematic 180 degree inter-sample phase shift. The underlying
	// physical cause is unsettled.
	ApplyReferenceSignFix bool
}

// NewPipeline returns a Pipeline with the sign fix enabled by default.
func NewPipeline(mode InterferometryMode) *Pipeline {
	return &Pipeline{Mode: mode, ApplyReferenceSignFix: true}
}

// Process runs all pipeline stages over raw and returns the resulting
// DataFrame.
func (p *Pipeline) Process(raw RawFrame) DataFrame {
	df := split(raw)

	if p.ApplyReferenceSignFix {
		applyReferenceSignFix(&df)
	}

	estimateLinearPhaseDriftRate(&df)
	compensateMeasurementSamples(&df)
	calculateCompensatedMeasurementPhases(&df)
	interferometry(&df, p.Mode)

	return df
}

// split copies timestamp, channel, and MAC, and partitions the raw
// sample arrays into reference (first min(n, MaxReferenceSamples)) and
// measurement (remainder) blocks.
func split(raw RawFrame) DataFrame {
	var df DataFrame
	df.TimestampMS = raw.TimestampMS
	df.ChannelIndex = raw.ChannelIndex
	df.BeaconMAC = raw.BeaconMAC

	n := raw.SampleCount
	if n > MaxRawSamples {
		n = MaxRawSamples
	}

	refCount := n
	if refCount > MaxReferenceSamples {
		refCount = MaxReferenceSamples
	}
	df.ReferenceSampleCount = refCount
	df.MeasurementSampleCount = n - refCount

	for i := 0; i < refCount; i++ {
		df.ReferenceI[i] = raw.I[i]
		df.ReferenceQ[i] = raw.Q[i]
	}
	for i := 0; i < df.MeasurementSampleCount; i++ {
		df.MeasurementI[i] = raw.I[i+refCount]
		df.MeasurementQ[i] = raw.Q[i+refCount]
	}

	return df
}

// applyReferenceSignFix negates I/Q at odd reference indices, with -128
// saturating to +127 since int8 negation of -128 overflows.
func applyReferenceSignFix(df *DataFrame) {
	for i := 1; i < df.ReferenceSampleCount; i += 2 {
		df.ReferenceI[i] = negateSaturating(df.ReferenceI[i])
		df.ReferenceQ[i] = negateSaturating(df.ReferenceQ[i])
	}
}

func negateSaturating(v int8) int8 {
	if v == -128 {
		return 127
	}
	return -v
}

func atan2f(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

func calculateReferencePhases(df *DataFrame) {
	for i := 0; i < df.ReferenceSampleCount; i++ {
		df.ReferencePhases[i] = atan2f(float32(df.ReferenceQ[i]), float32(df.ReferenceI[i]))
	}
}

func unwrapReferencePhases(df *DataFrame) {
	if df.ReferenceSampleCount == 0 {
		return
	}
	df.ReferencePhasesUnwrapped[0] = df.ReferencePhases[0]
	for i := 1; i < df.ReferenceSampleCount; i++ {
		diff := df.ReferencePhases[i] - df.ReferencePhasesUnwrapped[i-1]
		switch {
		case diff > math.Pi:
			df.ReferencePhasesUnwrapped[i] = df.ReferencePhases[i] - 2*math.Pi
		case diff < -math.Pi:
			df.ReferencePhasesUnwrapped[i] = df.ReferencePhases[i] + 2*math.Pi
		default:
			df.ReferencePhasesUnwrapped[i] = df.ReferencePhases[i]
		}
	}
}

// estimateLinearPhaseDriftRate computes reference phases, unwraps them,
// and fits a least-squares slope (radians per reference sample),
// converting to radians per microsecond via ReferenceSpacingUS.
func estimateLinearPhaseDriftRate(df *DataFrame) {
	if df.ReferenceSampleCount == 0 {
		df.LinearPhaseDriftRate = 0
		return
	}

	calculateReferencePhases(df)
	unwrapReferencePhases(df)

	if df.ReferenceSampleCount == 1 {
		df.LinearPhaseDriftRate = 0
		return
	}

	n := float32(df.ReferenceSampleCount)
	var sumX, sumY, sumXY, sumXX float32
	for x := 0; x < df.ReferenceSampleCount; x++ {
		y := df.ReferencePhasesUnwrapped[x]
		fx := float32(x)
		sumX += fx
		sumY += y
		sumXY += fx * y
		sumXX += fx * fx
	}
	m := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	df.LinearPhaseDriftRate = m / ReferenceSpacingUS
}

// compensateMeasurementSamples rotates each measurement (I,Q) sample by
// -rate*MeasurementSpacingUS*i to remove the estimated linear drift.
func compensateMeasurementSamples(df *DataFrame) {
	rate := -df.LinearPhaseDriftRate * MeasurementSpacingUS
	for i := 0; i < df.MeasurementSampleCount; i++ {
		theta := rate * float32(i)
		sinT, cosT := sincos32(theta)

		iv := float32(df.MeasurementI[i])
		qv := float32(df.MeasurementQ[i])

		df.MeasurementICompensated[i] = iv*cosT - qv*sinT
		df.MeasurementQCompensated[i] = iv*sinT + qv*cosT
	}
}

func calculateCompensatedMeasurementPhases(df *DataFrame) {
	for i := 0; i < df.MeasurementSampleCount; i++ {
		df.MeasurementPhasesCompensated[i] = atan2f(
			df.MeasurementQCompensated[i],
			df.MeasurementICompensated[i])
	}
}

// interferometry computes local direction cosines, azimuth, and
// elevation from drift-compensated measurement samples using the
// selected pair table. Short captures (fewer than 3 measurement
// samples) short-circuit to (0,0,1) with zero azimuth/elevation.
func interferometry(df *DataFrame, mode InterferometryMode) {
	if df.MeasurementSampleCount < 3 {
		df.LocalDirection = Vec3{0, 0, 1}
		df.AzimuthRad = 0
		df.ElevationRad = 0
		return
	}

	wavenumber := ChannelWavenumberRadPerMM(df.ChannelIndex)
	dOrthRad := wavenumber * ArraySpacingOrthogonalMM

	pairs := mode.pairs()
	horizontal := make([]float32, 0, len(pairs))
	vertical := make([]float32, 0, len(pairs))

	for _, pair := range pairs {
		if int(pair.Index1) >= df.MeasurementSampleCount || int(pair.Index2) >= df.MeasurementSampleCount {
			continue
		}

		i1 := df.MeasurementICompensated[pair.Index1]
		q1 := df.MeasurementQCompensated[pair.Index1]
		i2 := df.MeasurementICompensated[pair.Index2]
		q2 := df.MeasurementQCompensated[pair.Index2]

		real := i1*i2 + q1*q2
		imag := q1*i2 - i1*q2
		delta := atan2f(imag, real)

		if delta > dOrthRad {
			delta = dOrthRad
		} else if delta < -dOrthRad {
			delta = -dOrthRad
		}

		switch pair.Direction {
		case LeftToRight:
			horizontal = append(horizontal, delta)
		case RightToLeft:
			horizontal = append(horizontal, -delta)
		case BottomToTop:
			vertical = append(vertical, delta)
		case TopToBottom:
			vertical = append(vertical, -delta)
		}
	}

	var horizontalMean, verticalMean float32
	if len(horizontal) > 0 {
		horizontalMean = circularMean(horizontal, circularMeanDefaultIterations, circularMeanDefaultTolerance)
	}
	if len(vertical) > 0 {
		verticalMean = circularMean(vertical, circularMeanDefaultIterations, circularMeanDefaultTolerance)
	}

	var cx, cy float32
	if len(horizontal) > 0 && dOrthRad != 0 {
		cx = clamp32(-horizontalMean/dOrthRad, -1, 1)
	}
	if len(vertical) > 0 && dOrthRad != 0 {
		cy = clamp32(-verticalMean/dOrthRad, -1, 1)
	}

	czSquared := 1 - (cx*cx + cy*cy)
	if czSquared < 0 {
		czSquared = 0
	}
	cz := float32(math.Sqrt(float64(czSquared)))

	df.LocalDirection = Vec3{X: cx, Y: cy, Z: cz}
	df.AzimuthRad = atan2f(cx, cz)
	df.ElevationRad = float32(math.Asin(float64(cy)))
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
