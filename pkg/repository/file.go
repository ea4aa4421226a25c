package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/interfaces"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// File implements SubscriptionStore on a single configuration document. Files ending in
// .yaml or .yml are YAML; anything else is JSON, where comments and trailing commas are
// accepted on read. Every mutation rewrites the whole file.
type File struct {
	*Memory
	path string
	mu   sync.Mutex
}

// NewFile opens the configuration file at path. A missing file starts an empty store that
// is created on the first write.
func NewFile(ctx context.Context, path string) (interfaces.SubscriptionStore, error) {
	store := &File{
		Memory: newMemory(),
		path:   path,
	}

	cfg, err := LoadConfigFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		ctxlog.From(ctx).Info("Config file not found, starting with empty store", "path", path)
	case err != nil:
		return nil, err
	default:
		store.Memory.load(cfg)
		ctxlog.From(ctx).Info("Config file loaded",
			"path", path,
			"subscriptions", len(cfg.Subscriptions))
	}

	return store, nil
}

// LoadConfigFile reads and validates a configuration document
func LoadConfigFile(path string) (*model.Config, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	cfg := model.DefaultConfig()
	if isYAML(path) {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML config", goerr.V("path", path))
		}
	} else {
		if err := json.Unmarshal(jsonc.ToJSON(raw), cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse JSON config", goerr.V("path", path))
		}
	}

	if cfg.Subscriptions == nil {
		cfg.Subscriptions = []model.Subscription{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid config file", goerr.V("path", path))
	}
	return cfg, nil
}

// WriteConfigFile writes cfg to path, replacing any existing file
func WriteConfigFile(path string, cfg *model.Config) error {
	var (
		raw []byte
		err error
	)
	if isYAML(path) {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(cfg); err == nil {
			err = enc.Close()
		}
		raw = buf.Bytes()
	} else {
		raw, err = json.MarshalIndent(cfg, "", "  ")
		raw = append(raw, '\n')
	}
	if err != nil {
		return goerr.Wrap(err, "failed to encode config", goerr.V("path", path))
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".o365ops-*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary file", goerr.V("dir", dir))
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return goerr.Wrap(err, "failed to write config", goerr.V("path", path))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temporary file", goerr.V("path", path))
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return goerr.Wrap(err, "failed to set config file mode", goerr.V("path", path))
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return goerr.Wrap(err, "failed to replace config file", goerr.V("path", path))
	}
	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// PutSubscription creates or replaces a subscription and persists the file
func (f *File) PutSubscription(ctx context.Context, sub *model.Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.Memory.PutSubscription(ctx, sub); err != nil {
		return err
	}
	return f.persist()
}

// DeleteSubscription removes a subscription and persists the file
func (f *File) DeleteSubscription(ctx context.Context, id types.SubscriptionID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.Memory.DeleteSubscription(ctx, id); err != nil {
		return err
	}
	return f.persist()
}

// PutNotificationSettings replaces the webhook settings and persists the file
func (f *File) PutNotificationSettings(ctx context.Context, settings *model.NotificationSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.Memory.PutNotificationSettings(ctx, settings); err != nil {
		return err
	}
	return f.persist()
}

func (f *File) persist() error {
	return WriteConfigFile(f.path, f.Memory.snapshot())
}
