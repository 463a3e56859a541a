package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/cavern/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const viewerStateKey = "viewer"

// SavedViewerState is the viewer state stored on disk between runs.
type SavedViewerState struct {
	LastSeed int64   `json:"lastSeed"`
	Zoom     float64 `json:"zoom"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for viewer state storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "cavern",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadViewerState loads the last viewer state. nil when nothing was saved.
func LoadViewerState() (*SavedViewerState, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(viewerStateKey)
	if err != nil {
		log.Printf("Warning: Could not load viewer state: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var state SavedViewerState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Warning: Could not parse saved viewer state: %v", err)
		return nil, err
	}
	return &state, nil
}

// SaveViewerState saves the viewer state to disk
func SaveViewerState(s *SavedViewerState) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize viewer state: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(viewerStateKey, data); err != nil {
		log.Printf("Warning: Could not save viewer state: %v", err)
		return err
	}
	return nil
}

// SaveCurrentViewerState stores the world's level seed and camera zoom.
func SaveCurrentViewerState(e *ecs.ECS) {
	level := CurrentLevel(e)
	if level == nil {
		return
	}
	state := &SavedViewerState{LastSeed: level.Seed}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		state.Zoom = components.Camera.Get(cameraEntry).ZoomTarget
	}
	_ = SaveViewerState(state)
}
