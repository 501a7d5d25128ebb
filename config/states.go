package config

// StateID is the animation state an entity is displayed in.
type StateID int

const (
	Idle StateID = iota
	Walk
	Jump
	Fall
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	case Jump:
		return "jump"
	case Fall:
		return "fall"
	}
	return "unknown"
}
