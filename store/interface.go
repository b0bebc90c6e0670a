package store

import "github.com/josephgoksu/solventdeck/models"

// StateStore defines the contract for persisting the whole state document.
// The document is saved and loaded wholesale; there is no partial update.
type StateStore interface {
	// Initialize configures the store. Expected keys: "dataFile" (path to
	// the state file) and "dataFileFormat" (json, yaml, or toml). Must be
	// called before any other operation.
	Initialize(config map[string]string) error

	// Load reads the state document. An absent file yields the default
	// document. A corrupt or unreadable blob also yields the default
	// document together with an error wrapping ErrCorruptState, so callers
	// can warn without aborting.
	Load() (*models.State, error)

	// Save persists the document atomically.
	Save(st *models.State) error

	// Backup copies the raw state file to the destination path.
	Backup(destinationPath string) error

	// Close releases resources such as file locks.
	Close() error
}
