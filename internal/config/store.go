package config

import "sync/atomic"

// Config is the library-wide configuration.
type Config struct {
	// BaseURL is prepended to relative image references. Empty means unset.
	BaseURL string `json:"baseUrl,omitempty" yaml:"base_url,omitempty"`
}

// Store holds one Config value. The zero value is ready to use and starts
// out empty.
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Default is the process-wide store used by the package-level functions.
var Default = NewStore()

// Configure replaces the stored configuration with cfg. Fields absent from
// cfg are cleared, not kept.
func (s *Store) Configure(cfg Config) {
	s.current.Store(&cfg)
}

// Get returns a snapshot of the stored configuration. Changing the returned
// value has no effect on the store.
func (s *Store) Get() Config {
	if cfg := s.current.Load(); cfg != nil {
		return *cfg
	}
	return Config{}
}

// Reset restores the empty configuration.
func (s *Store) Reset() {
	s.current.Store(nil)
}

// Configure replaces the configuration of the Default store.
func Configure(cfg Config) {
	Default.Configure(cfg)
}

// Get returns a snapshot of the Default store.
func Get() Config {
	return Default.Get()
}

// Reset empties the Default store.
func Reset() {
	Default.Reset()
}
