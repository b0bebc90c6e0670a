package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
	yaml "gopkg.in/yaml.v3"

	"github.com/josephgoksu/solventdeck/models"
)

const (
	defaultDataFile   = "solvent.json"
	dataFileKey       = "dataFile"
	dataFileFormatKey = "dataFileFormat"
	defaultDataFormat = "json"
	formatJSON        = "json"
	formatYAML        = "yaml"
	formatTOML        = "toml"
	checksumSuffix    = ".checksum"
)

// ErrCorruptState marks a blob that exists but could not be decoded or
// failed its checksum. Load recovers with the default document; callers
// surface this as a warning, not a failure.
var ErrCorruptState = errors.New("state file is corrupt")

// FileStateStore implements StateStore on a single local file. It supports
// JSON, YAML, and TOML and uses file-level locking plus a sidecar checksum
// so concurrent invocations and partial writes cannot corrupt the blob
// silently.
type FileStateStore struct {
	filePath string
	format   string
	flk      *flock.Flock
}

// NewFileStateStore creates an unconfigured store; Initialize must be
// called before use.
func NewFileStateStore() *FileStateStore {
	return &FileStateStore{}
}

// Initialize configures the file path and data format and prepares the
// file lock. The parent directory is created if missing.
func (s *FileStateStore) Initialize(config map[string]string) error {
	if val, ok := config[dataFileKey]; ok && val != "" {
		s.filePath = val
	} else {
		s.filePath = defaultDataFile
	}

	if val, ok := config[dataFileFormatKey]; ok && val != "" {
		formatLower := strings.ToLower(val)
		switch formatLower {
		case formatJSON, formatYAML, formatTOML:
			s.format = formatLower
		default:
			return fmt.Errorf("unsupported dataFileFormat: %s (supported: json, yaml, toml)", val)
		}
	} else {
		s.format = defaultDataFormat
	}

	if s.filePath == defaultDataFile && s.format != formatJSON {
		ext := filepath.Ext(s.filePath)
		s.filePath = strings.TrimSuffix(s.filePath, ext) + "." + s.format
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	s.flk = flock.New(s.filePath)
	return nil
}

// Path returns the configured state file path.
func (s *FileStateStore) Path() string { return s.filePath }

// Format returns the configured data format.
func (s *FileStateStore) Format() string { return s.format }

func calculateChecksum(data []byte) string {
	hasher := sha256.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// Load reads, verifies, and decodes the state document under the file
// lock. Fallback rules follow the documented contract: absent file or
// corrupt content produce the default document (the latter with a wrapped
// ErrCorruptState).
func (s *FileStateStore) Load() (*models.State, error) {
	if err := s.flk.Lock(); err != nil {
		return nil, fmt.Errorf("could not lock state file for load: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	return s.loadInternal()
}

func (s *FileStateStore) loadInternal() (*models.State, error) {
	checksumFilePath := s.filePath + checksumSuffix

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.DefaultState(), nil
		}
		return models.DefaultState(), fmt.Errorf("%w: read %s: %v", ErrCorruptState, s.filePath, err)
	}

	if len(data) == 0 {
		return models.DefaultState(), nil
	}

	// Verify checksum when the sidecar exists. Blobs from before
	// checksumming load fine; the next save creates the sidecar.
	if expected, err := os.ReadFile(checksumFilePath); err == nil {
		if calculateChecksum(data) != strings.TrimSpace(string(expected)) {
			return models.DefaultState(), fmt.Errorf("%w: checksum mismatch for %s", ErrCorruptState, s.filePath)
		}
	}

	// Start from the default document so fields absent in older blobs
	// keep their defaults; unknown fields are ignored by the decoders.
	st := models.DefaultState()
	switch s.format {
	case formatJSON:
		err = json.Unmarshal(data, st)
	case formatYAML:
		err = yaml.Unmarshal(data, st)
	case formatTOML:
		err = toml.Unmarshal(data, st)
	default:
		return nil, fmt.Errorf("unsupported data format for loading: %s", s.format)
	}
	if err != nil {
		return models.DefaultState(), fmt.Errorf("%w: decode %s: %v", ErrCorruptState, s.filePath, err)
	}

	st.Normalize()
	return st, nil
}

// Save marshals and writes the document atomically under the file lock:
// temp file, then checksum, then rename both into place.
func (s *FileStateStore) Save(st *models.State) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("could not lock state file for save: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	return s.saveInternal(st)
}

func (s *FileStateStore) saveInternal(st *models.State) error {
	st.Normalize()
	st.SchemaVersion = models.CurrentSchemaVersion

	var marshaled []byte
	var err error
	switch s.format {
	case formatJSON:
		marshaled, err = json.MarshalIndent(st, "", "  ")
	case formatYAML:
		marshaled, err = yaml.Marshal(st)
	case formatTOML:
		buf := new(bytes.Buffer)
		if encodeErr := toml.NewEncoder(buf).Encode(st); encodeErr == nil {
			marshaled = buf.Bytes()
		} else {
			err = encodeErr
		}
	default:
		return fmt.Errorf("unsupported data format for saving: %s", s.format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal state to %s: %w", s.format, err)
	}

	tempFilePath := s.filePath + ".tmp"
	checksumFilePath := s.filePath + checksumSuffix
	tempChecksumFilePath := checksumFilePath + ".tmp"

	defer func() { _ = os.Remove(tempFilePath) }()
	defer func() { _ = os.Remove(tempChecksumFilePath) }()

	if err := os.WriteFile(tempFilePath, marshaled, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary state file %s: %w", tempFilePath, err)
	}
	if err := os.WriteFile(tempChecksumFilePath, []byte(calculateChecksum(marshaled)), 0o644); err != nil {
		return fmt.Errorf("failed to write temporary checksum file %s: %w", tempChecksumFilePath, err)
	}

	if err := os.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to rename temporary state file into place: %w", err)
	}
	if err := os.Rename(tempChecksumFilePath, checksumFilePath); err != nil {
		return fmt.Errorf("state file %s updated but checksum update failed: %w", s.filePath, err)
	}

	return nil
}

// Backup copies the raw state file to the destination path.
func (s *FileStateStore) Backup(destinationPath string) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("could not lock state file for backup: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	input, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read state file for backup: %w", err)
	}
	if err := os.WriteFile(destinationPath, input, 0o644); err != nil {
		return fmt.Errorf("failed to write backup to %s: %w", destinationPath, err)
	}
	return nil
}

// Close releases the file lock. Unlock is idempotent.
func (s *FileStateStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
