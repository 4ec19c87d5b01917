package sim

// Input is the raw control state for one frame.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	Dash  bool
}

// Any reports whether any control is held.
func (in Input) Any() bool {
	return in.Left || in.Right || in.Jump || in.Dash
}

// Direction is -1 or +1 when exactly one of left/right is held, else 0.
func (in Input) Direction() float64 {
	switch {
	case in.Right && !in.Left:
		return 1
	case in.Left && !in.Right:
		return -1
	}
	return 0
}

// Edges are rising transitions between the previous and current frame.
type Edges struct {
	JumpPressed bool
	DashPressed bool
}

func edgesFrom(prev, cur Input) Edges {
	return Edges{
		JumpPressed: cur.Jump && !prev.Jump,
		DashPressed: cur.Dash && !prev.Dash,
	}
}
