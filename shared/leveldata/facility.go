package leveldata

// SolarFacility returns the built-in speed trial layout.
func SolarFacility() *Level {
	return &Level{
		Name:   "solar_facility",
		Width:  2600,
		Height: 720,
		Spawn:  Point{X: 40, Y: 480},
		Exit:   Rect{X: 2400, Y: 200, W: 140, H: 200},
		Platforms: []Rect{
			{X: -200, Y: 560, W: 2500, H: 200}, // floor
			{X: 180, Y: 440, W: 200, H: 24},
			{X: 480, Y: 360, W: 220, H: 24},
			{X: 780, Y: 300, W: 180, H: 24},
			{X: 1080, Y: 340, W: 240, H: 24},
			{X: 1140, Y: 460, W: 180, H: 24},
			{X: 1420, Y: 380, W: 240, H: 24},
			{X: 1640, Y: 500, W: 300, H: 24},
			{X: 1920, Y: 420, W: 160, H: 24},
			{X: 2100, Y: 320, W: 180, H: 24},
			{X: 2360, Y: 260, W: 200, H: 24},
		},
		Walls: []Rect{
			{X: -320, Y: -400, W: 120, H: 1400},
			{X: 2720, Y: -400, W: 120, H: 1400},
		},
		Hazards: []Rect{
			{X: 920, Y: 540, W: 180, H: 22},
			{X: 1580, Y: 540, W: 240, H: 22},
		},
		Boosts: []Circle{
			{X: 620, Y: 330, Radius: 12},
			{X: 940, Y: 270, Radius: 12},
			{X: 1320, Y: 360, Radius: 12},
			{X: 1760, Y: 480, Radius: 12},
			{X: 2100, Y: 300, Radius: 12},
		},
	}
}
