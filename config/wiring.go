package config

import (
	"github.com/automoto/polytone/growth"
	"github.com/automoto/polytone/physics"
	"github.com/automoto/polytone/staff"
	"github.com/automoto/polytone/tone"
)

// GrowthMachine returns the growth machine constants.
func (s Settings) GrowthMachine() growth.Config {
	return growth.Config{
		Keys:              s.Input.Sides(),
		AllowUnmappedKeys: s.Growth.AllowUnmappedKeys,
		MinSides:          s.Growth.MinSides,
		MaxSides:          s.Growth.MaxSides,
		InitialSize:       s.Growth.InitialSize,
		GrowthRate:        s.Growth.GrowthRate,
		SpawnVolume:       s.Growth.SpawnVolume,
		ToneThreshold:     s.Growth.ToneThreshold,
		VolumeDivisor:     s.Growth.VolumeDivisor,
		MaxVolume:         s.Growth.MaxVolume,
		Material: growth.Material{
			Friction:    s.Physics.Friction,
			Restitution: s.Physics.Restitution,
			AirFriction: s.Physics.AirFriction,
		},
		AngularVelocityRange: s.Growth.AngularVelocityRange,
		StaffTone:            s.Growth.StaffTone,
	}
}

// Tones returns the pitch table and envelope shapes.
func (s Settings) Tones() tone.Config {
	return tone.Config{
		Scale: tone.Scale{Base: s.Audio.BaseFrequency, Offsets: s.Audio.Offsets},
		Short: tone.Shape(s.Audio.Short),
		Long:  tone.Shape(s.Audio.Long),
	}
}

// StaffSink returns the staff cursor layout.
func (s Settings) StaffSink() staff.Config {
	return staff.Config{
		StartX:  s.Staff.StartX,
		Spacing: s.Staff.Spacing,
		MaxX:    s.Staff.MaxX,
		LineY:   s.Staff.LineY,
		Keys:    s.Input.StaffLines(),
	}
}

// PhysicsWorld returns the engine values.
func (s Settings) PhysicsWorld() physics.Config {
	return physics.Config{
		Gravity:        s.Physics.Gravity,
		Iterations:     s.Physics.Iterations,
		Density:        s.Physics.Density,
		WallFriction:   s.Physics.WallFriction,
		WallElasticity: s.Physics.WallElasticity,
		TPS:            s.Display.TPS,
	}
}

// Probe returns the occupancy retry policy shared by both placements.
func (s Settings) Probe(occ growth.Occupancy) growth.Probe {
	return growth.Probe{
		Occupancy:   occ,
		MaxAttempts: s.Arena.MaxAttempts,
		Clearance:   s.Arena.Clearance,
	}
}
