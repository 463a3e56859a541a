package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData holds viewer toggles changed at runtime.
type SettingsData struct {
	ShowColliders bool
	ShowSight     bool
	ShowHUD       bool
}

var Settings = donburi.NewComponentType[SettingsData]()
