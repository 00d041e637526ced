package component

// Stance is the player's body posture.
type Stance uint8

const (
	StanceStanding Stance = iota
	StanceCrouching
)

// TagPlayer marks the entity the keyboard drives. A scene has exactly one.
type TagPlayer struct{}

// TagBlocking marks an entity nothing else may share a tile with.
type TagBlocking struct{}
