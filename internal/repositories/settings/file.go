package settings

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/models"
	"github.com/pkg/errors"
)

// FileConfig holds configuration for the JSON file settings repository
type FileConfig struct {
	// Path of the settings document, created on first save
	Path string
}

// fileServer is one entry of the settings document. Autofill is stored as
// 0 or 1 and snowflake guild ids as JSON numbers so existing documents keep
// loading.
type fileServer struct {
	GuildID  guildID `json:"guild_id"`
	Autofill int     `json:"autofill"`
}

// guildID reads a guild id written either as a JSON number or a string
type guildID string

func (g guildID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseUint(string(g), 10, 64); err == nil && strconv.FormatUint(n, 10) == string(g) {
		return []byte(g), nil
	}
	return json.Marshal(string(g))
}

func (g *guildID) UnmarshalJSON(raw []byte) error {
	var number json.Number
	if err := json.Unmarshal(raw, &number); err == nil {
		*g = guildID(number.String())
		return nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return errors.Wrap(err, "guild_id must be a number or a string")
	}
	*g = guildID(text)
	return nil
}

type fileDocument struct {
	Servers []fileServer `json:"servers"`
}

// fileRepository implements the Repository interface on a single JSON document
type fileRepository struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a new file-backed settings repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("settings file path cannot be empty")
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// GetSettings retrieves guild settings from the document
func (r *fileRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*models.GuildSettings, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, server := range doc.Servers {
		if string(server.GuildID) == input.GuildID {
			return &models.GuildSettings{
				GuildID:  input.GuildID,
				Autofill: server.Autofill != 0,
			}, nil
		}
	}

	return nil, ErrSettingsNotFound
}

// SaveSettings updates or appends the guild entry and rewrites the document
func (r *fileRepository) SaveSettings(ctx context.Context, input *SaveSettingsInput) error {
	if err := validateSave(input); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	entry := fileServer{GuildID: guildID(input.Settings.GuildID)}
	if input.Settings.Autofill {
		entry.Autofill = 1
	}

	found := false
	for i := range doc.Servers {
		if doc.Servers[i].GuildID == entry.GuildID {
			doc.Servers[i] = entry
			found = true
			break
		}
	}
	if !found {
		doc.Servers = append(doc.Servers, entry)
	}

	return r.store(doc)
}

func (r *fileRepository) load() (*fileDocument, error) {
	doc := &fileDocument{Servers: []fileServer{}}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return nil, errors.Wrapf(err, "failed to read settings file %s", r.path)
	}

	if len(raw) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse settings file %s", r.path)
	}

	return doc, nil
}

// store replaces the document atomically via a temp file in the same directory
func (r *fileRepository) store(doc *fileDocument) error {
	raw, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal settings document")
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".settings-*.json")
	if err != nil {
		return errors.Wrap(err, "failed to create temp settings file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to write settings")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp settings file")
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return errors.Wrapf(err, "failed to replace settings file %s", r.path)
	}

	return nil
}
