package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/flowerhop/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// recordKey is the gdata item holding the saved record
const recordKey = "record"

// SavedRecord represents the data kept between sessions
type SavedRecord struct {
	BestDistance int  `json:"bestDistance"`
	Muted        bool `json:"muted"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for record storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "flowerhop",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadRecord loads the saved record from disk. Returns nil when nothing is saved.
func LoadRecord() (*SavedRecord, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(recordKey)
	if err != nil {
		log.Printf("Warning: Could not load record: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	return DecodeRecord(data)
}

// DecodeRecord parses a stored record.
func DecodeRecord(data []byte) (*SavedRecord, error) {
	var record SavedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse saved record: %v", err)
		return nil, err
	}
	if record.BestDistance < 0 {
		record.BestDistance = 0
	}
	return &record, nil
}

// SaveRecordData writes r to disk
func SaveRecordData(r *SavedRecord) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: Could not serialize record: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(recordKey, data); err != nil {
		log.Printf("Warning: Could not save record: %v", err)
		return err
	}
	return nil
}

// CurrentRecord collects the persisted fields from the world.
func CurrentRecord(e *ecs.ECS) *SavedRecord {
	record := &SavedRecord{}
	if progress, ok := getProgress(e); ok {
		record.BestDistance = progress.Best
	}
	if entry, ok := components.Audio.First(e.World); ok {
		record.Muted = components.Audio.Get(entry).Muted
	}
	return record
}

// SaveRecord saves the world's current record
func SaveRecord(e *ecs.ECS) {
	_ = SaveRecordData(CurrentRecord(e))
}

// ApplySavedRecord restores the best distance into the world. Mute is
// applied by the caller when it attaches audio.
func ApplySavedRecord(e *ecs.ECS, saved *SavedRecord) {
	if saved == nil {
		return
	}
	if progress, ok := getProgress(e); ok && saved.BestDistance > progress.Best {
		progress.Best = saved.BestDistance
	}
}
