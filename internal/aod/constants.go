package aod

// Maximum reference and measurement sample counts per CTE report, and
// their per-sample spacing in microseconds. By default a report carries
// 45 raw IQ samples: 8 reference samples at 1us spacing, 37 measurement
// samples at 4us spacing.
const (
	MaxReferenceSamples   = 8
	MaxMeasurementSamples = 37
	MaxRawSamples         = MaxReferenceSamples + MaxMeasurementSamples

	ReferenceSpacingUS   float32 = 1
	MeasurementSpacingUS float32 = 4
)

// BeaconRegistryCapacity bounds the number of beacons the registry holds.
const BeaconRegistryCapacity = 16

// WorkQueueCapacity bounds the number of inline raw frames the work queue
// holds before it starts evicting the oldest.
const WorkQueueCapacity = 8

// PositionHistoryCapacity bounds the locator's in-memory position ring.
const PositionHistoryCapacity = 256

// ParallelEpsilon is the denominator threshold below which two beacon
// rays are considered too near-collinear for a stable skew-line solve.
const ParallelEpsilon float32 = 0.001

// ArraySpacingOrthogonalMM and ArraySpacingDiagonalMM are the CHW1010-ANT2
// center-to-center antenna spacings, in millimeters.
const (
	ArraySpacingOrthogonalMM float32 = 37.5
	ArraySpacingDiagonalMM   float32 = 53.033009
)

// circularMeanDefaultIterations and circularMeanDefaultTolerance are the
// (K, tau) parameters used by the interferometry stage of the pipeline.
const (
	circularMeanDefaultIterations = 5
	circularMeanDefaultTolerance  = 0.01
)
