package entity

import "time"

// ModelArtifact is one persisted piece of the trained model.
type ModelArtifact struct {
	Name      string    `db:"name"`
	Data      []byte    `db:"data"`
	UpdatedAt time.Time `db:"updated_at"`
}
