package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/ratchase/components"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const highScoreKey = "highscore"

// SavedScore represents the record stored on disk
type SavedScore struct {
	HighScore int `json:"highScore"`
}

// OpenScoreStore opens the gdata save slot for the app.
func OpenScoreStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return m, nil
}

// LoadHighScore reads the saved record. Missing or unreadable data counts as zero.
func LoadHighScore(store components.ScoreStore) int {
	if store == nil {
		return 0
	}

	data, err := store.LoadItem(highScoreKey)
	if err != nil {
		log.Warn("Could not load high score", "err", err)
		return 0
	}
	if len(data) == 0 {
		// No record yet
		return 0
	}

	var saved SavedScore
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn("Could not parse saved high score", "err", err)
		return 0
	}
	return max(saved.HighScore, 0)
}

// StoreHighScore writes the record to the store.
func StoreHighScore(store components.ScoreStore, score int) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(SavedScore{HighScore: score})
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}
	if err := store.SaveItem(highScoreKey, data); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// SaveHighScore persists the record through the world's store. Failures are
// logged and the game carries on.
func SaveHighScore(ecs *ecs.ECS, score int) {
	store := getScoreStore(ecs)
	if err := StoreHighScore(store, score); err != nil {
		log.Warn("Could not save high score", "score", score, "err", err)
	}
}

// AttachScoreStore makes store the world's persistence target.
func AttachScoreStore(ecs *ecs.ECS, store components.ScoreStore) {
	entry, ok := components.Persistence.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Persistence))
	}
	components.Persistence.SetValue(entry, components.PersistenceData{Store: store})
}

func getScoreStore(ecs *ecs.ECS) components.ScoreStore {
	entry, ok := components.Persistence.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Persistence.Get(entry).Store
}
