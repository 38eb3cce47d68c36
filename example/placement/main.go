package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/trs"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	// A vehicle parked at (12, 0, -3), turned a quarter to the left, with a
	// seat mounted slightly up and forward inside it.
	vehicle := trs.FromPositionRotation(
		mgl64.Vec3{12, 0, -3},
		mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}),
	)
	seat := trs.FromPositionXYZ(0.6, 0.4, 1.2)

	seatWorld := vehicle.TransformTransform(seat)
	fmt.Println("🚙 Seat in world space:")
	fmt.Printf("   %v\n", seatWorld)

	// A point held in front of the seated passenger, carried all the way to
	// world space and back again.
	hand := mgl64.Vec3{0, 0.2, 0.5}
	handWorld := seatWorld.TransformPoint(hand)
	fmt.Println("✋ Passenger hand:")
	fmt.Printf("   local %v -> world %v\n", hand, handWorld)
	fmt.Printf("   back to local %v\n", seatWorld.InverseTransformPoint(handWorld))

	// The renderer consumes the same placement as a 4x4 matrix.
	fmt.Println("🧮 Seat model matrix:")
	fmt.Printf("   %v\n", seatWorld.ToMatrix())

	// Recover the seat's local placement from its world placement.
	seatLocal := vehicle.InverseTransformTransform(seatWorld)
	fmt.Println("↩️  Seat recovered in vehicle space:")
	fmt.Printf("   %v\n", seatLocal)

	// A scaled-up duplicate of the vehicle and its inverse cancel out.
	grown := vehicle.ApplyScale(2).RotateY(math.Pi / 8)
	fmt.Println("🔁 Transform composed with its inverse:")
	fmt.Printf("   %v\n", grown.TransformTransform(grown.Inverse()))
}
