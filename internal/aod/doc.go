// Package aod implements the BLE Angle-of-Departure signal-processing and
// geometry core: beacon identity and orientation, the IQ-sample pipeline,
// a bounded work queue for decoupling radio receive from processing, a
// circular-mean primitive, and the skew-line locator solver.
//
// The package owns no radio, no GPIO, and no logging; those are
// collaborator concerns living above it.
package aod
