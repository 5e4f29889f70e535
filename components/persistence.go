package components

import "github.com/yohamta/donburi"

// ScoreStore is a key/value save slot. *gdata.Manager satisfies it.
type ScoreStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

type PersistenceData struct {
	Store ScoreStore // nil disables saving
}

var Persistence = donburi.NewComponentType[PersistenceData]()
