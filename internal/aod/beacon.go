package aod

import "math"

// Beacon holds a stationary AoD transmitter's identity, global position,
// and orientation. Created by the external configuration loader,
// installed into a Registry, and read-only thereafter.
//
// The orientation basis (I, J, K) maps local array-frame unit vectors to
// the global frame:
//
//	[ dx_global ]   [ Ix  Jx  Kx ] [ dx_local ]
//	[ dy_global ] = [ Iy  Jy  Ky ] [ dy_local ]
//	[ dz_global ]   [ Iz  Jz  Kz ] [ dz_local ]
type Beacon struct {
	MAC MAC

	X, Y, Z float32

	I, J, K Vec3
}

// Vec3 is a 3-component vector or direction-cosine triple.
type Vec3 struct {
	X, Y, Z float32
}

// Dot returns the dot product of two Vec3.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

const (
	yawMin, yawMax     = -math.Pi, math.Pi
	pitchMin, pitchMax = -math.Pi / 2, math.Pi / 2
	rollMin, rollMax   = -math.Pi, math.Pi
)

// NewBeacon constructs a Beacon from a big-endian MAC, a global position
// in meters, and Tait-Bryan yaw/pitch/roll in radians (yaw and roll in
// [-pi, pi], pitch in [-pi/2, pi/2]).
//
// The orientation basis is built from the extrinsic x-y-z rotation
// sequence R = Rz(yaw) * Ry(pitch) * Rx(roll).
func NewBeacon(mac MAC, x, y, z, yaw, pitch, roll float32) (Beacon, error) {
	if yaw < yawMin || yaw > yawMax || pitch < pitchMin || pitch > pitchMax ||
		roll < rollMin || roll > rollMax {
		return Beacon{}, ErrInvalidArgument
	}

	b := Beacon{MAC: mac, X: x, Y: y, Z: z}
	b.setOrientation(yaw, pitch, roll)
	return b, nil
}

func (b *Beacon) setOrientation(yaw, pitch, roll float32) {
	sa, ca := sincos32(yaw)
	sb, cb := sincos32(pitch)
	sg, cg := sincos32(roll)

	b.I = Vec3{
		X: ca * cb,
		Y: sa * cb,
		Z: -sb,
	}
	b.J = Vec3{
		X: ca*sb*sg - sa*cg,
		Y: sa*sb*sg + ca*cg,
		Z: cb * sg,
	}
	b.K = Vec3{
		X: ca*sb*cg + sa*sg,
		Y: sa*sb*cg - ca*sg,
		Z: cb * cg,
	}
}

func sincos32(v float32) (sin, cos float32) {
	s, c := math.Sincos(float64(v))
	return float32(s), float32(c)
}

// GlobalDirectionCosines transforms a local unit direction-cosine triple
// into the global frame using b's orientation basis. The caller must
// supply a normalized direction; validation is intentionally omitted on
// this hot path.
func (b Beacon) GlobalDirectionCosines(local Vec3) Vec3 {
	return Vec3{
		X: local.X*b.I.X + local.Y*b.J.X + local.Z*b.K.X,
		Y: local.X*b.I.Y + local.Y*b.J.Y + local.Z*b.K.Y,
		Z: local.X*b.I.Z + local.Y*b.J.Z + local.Z*b.K.Z,
	}
}

// Position returns b's global position as a Vec3.
func (b Beacon) Position() Vec3 {
	return Vec3{b.X, b.Y, b.Z}
}
