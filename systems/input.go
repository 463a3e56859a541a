package systems

import (
	"github.com/automoto/cavern/components"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	moveUpKeys    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	moveDownKeys  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	moveLeftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	moveRightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
)

// readMoveInput polls the keyboard and returns the held movement direction,
// each axis in {-1, 0, 1}.
func readMoveInput() components.Vector {
	var dir components.Vector
	if anyKeyPressed(moveLeftKeys) {
		dir.X--
	}
	if anyKeyPressed(moveRightKeys) {
		dir.X++
	}
	if anyKeyPressed(moveUpKeys) {
		dir.Y--
	}
	if anyKeyPressed(moveDownKeys) {
		dir.Y++
	}
	return dir
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
