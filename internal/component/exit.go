package component

// Exit is a doorway that loads another scene when the player steps on it.
// The player appears at Spawn in the target scene.
type Exit struct {
	Target string // scene name, see level.SceneID
	Spawn  Position
}
