package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Loader reads the YAML config file and watches it for changes, so report
// defaults can be tuned without a restart.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *Config
	onChange []func(*Config)
	watcher  *fsnotify.Watcher
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: path}
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = cfg
	return l, nil
}

// Config returns the current (latest) configuration.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked whenever the config reloads.
func (l *Loader) OnChange(fn func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Watch starts a background goroutine that hot-reloads the config on file
// changes. Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watcher add %s: %w", l.path, err)
	}
	l.watcher = w

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					cfg, err := l.load()
					if err != nil {
						// Keep serving the old config.
						continue
					}
					l.mu.Lock()
					l.current = cfg
					callbacks := make([]func(*Config), len(l.onChange))
					copy(callbacks, l.onChange)
					l.mu.Unlock()
					for _, fn := range callbacks {
						fn(cfg)
					}
				}
			case <-w.Errors:
				// Ignore watcher errors.
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}

func (l *Loader) load() (*Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", l.path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", l.path, err)
	}

	// Apply defaults.
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Source.Kind == "" {
		cfg.Source.Kind = SourceFile
	}
	if cfg.Reports.GroupBy == "" {
		cfg.Reports.GroupBy = "country_name"
	}
	if cfg.Reports.RateMode == "" {
		cfg.Reports.RateMode = "strict"
	}
	if cfg.Reports.MinSampleSize == 0 {
		cfg.Reports.MinSampleSize = 1
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", l.path, err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Source.Kind != SourceFile && cfg.Source.Kind != SourcePostgres {
		return fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
	if cfg.Source.Kind == SourceFile && len(cfg.Source.Datasets) == 0 {
		return fmt.Errorf("source kind %q needs at least one dataset path", SourceFile)
	}
	if gb := cfg.Reports.GroupBy; gb != "country_name" && gb != "payment_name" {
		return fmt.Errorf("unknown group_by %q", gb)
	}
	if rm := cfg.Reports.RateMode; rm != "strict" && rm != "combined" {
		return fmt.Errorf("unknown rate_mode %q", rm)
	}
	if cfg.Reports.MinSampleSize < 1 {
		return fmt.Errorf("min_sample_size must be >= 1")
	}
	if cfg.Reports.TopN < 0 {
		return fmt.Errorf("top_n must be >= 0")
	}
	return nil
}
