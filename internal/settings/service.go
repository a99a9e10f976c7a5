package settings

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultPollInterval is how often the service checks the user settings
// file for changes.
const DefaultPollInterval = 2 * time.Second

// Service owns the live settings for an application: it loads the user
// settings file, validates, and exposes the result through an atomic
// pointer. Reload never mutates a published Settings; it builds a fresh
// instance and swaps it in, so readers are never serialized against a
// reload.
type Service struct {
	path       string
	generators []ProfileGenerator
	interval   time.Duration
	onReload   func(*Settings, error)

	current atomic.Pointer[Settings]

	mu      sync.Mutex
	modTime time.Time
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceGenerators sets the profile generators each load runs.
func WithServiceGenerators(gens ...ProfileGenerator) ServiceOption {
	return func(sv *Service) {
		sv.generators = append(sv.generators, gens...)
	}
}

// WithPollInterval sets the file polling interval for Watch.
func WithPollInterval(d time.Duration) ServiceOption {
	return func(sv *Service) {
		if d > 0 {
			sv.interval = d
		}
	}
}

// WithReloadHandler registers a callback invoked after every reload
// with the new settings (nil when the reload failed fatally) and the
// load error, if any.
func WithReloadHandler(fn func(*Settings, error)) ServiceOption {
	return func(sv *Service) {
		sv.onReload = fn
	}
}

// NewService creates a service for the user settings file at path.
func NewService(path string, opts ...ServiceOption) *Service {
	sv := &Service{
		path:     path,
		interval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(sv)
	}
	return sv
}

// Current returns the most recently published settings, or nil before
// the first successful Load.
func (sv *Service) Current() *Settings {
	return sv.current.Load()
}

// Load builds and validates settings from the user file plus the
// built-in defaults and publishes the result. A missing user file is
// treated as empty user settings, not an error.
//
// A fatal validation error (NoProfiles, AllProfilesHidden) publishes a
// defaults-only fallback instead, so the application always has usable
// settings, and the error is returned for the caller to surface.
func (sv *Service) Load() (*Settings, error) {
	userJSON, err := os.ReadFile(sv.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		userJSON = []byte("{}")
	}

	sv.mu.Lock()
	if info, statErr := os.Stat(sv.path); statErr == nil {
		sv.modTime = info.ModTime()
	}
	sv.mu.Unlock()

	s, loadErr := sv.build(userJSON)
	var fatal *LoadError
	if loadErr != nil && errors.As(loadErr, &fatal) {
		// Fall back to the hardcoded defaults alone.
		if fallback, fbErr := sv.build([]byte("{}")); fbErr == nil {
			sv.current.Store(fallback)
			return fallback, loadErr
		}
		return nil, loadErr
	}
	if loadErr != nil {
		return nil, loadErr
	}

	sv.current.Store(s)
	return s, nil
}

// build constructs and validates one Settings from a user document.
func (sv *Service) build(userJSON []byte) (*Settings, error) {
	s := New(WithGenerators(sv.generators...))
	if err := s.LoadFromJSON(userJSON, DefaultSettings()); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Watch starts polling the settings file and reloading on change. Stop
// with Close. Reload failures keep the previously published settings.
func (sv *Service) Watch() {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	sv.cancel = cancel

	sv.wg.Add(1)
	go func() {
		defer sv.wg.Done()
		ticker := time.NewTicker(sv.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sv.pollOnce()
			}
		}
	}()
}

// pollOnce reloads when the file's modification time moved.
func (sv *Service) pollOnce() {
	info, err := os.Stat(sv.path)
	if err != nil {
		return
	}

	sv.mu.Lock()
	changed := info.ModTime().After(sv.modTime)
	sv.mu.Unlock()
	if !changed {
		return
	}

	s, err := sv.Load()
	if sv.onReload != nil {
		sv.onReload(s, err)
	}
}

// Close stops watching. The current settings remain available.
func (sv *Service) Close() {
	sv.mu.Lock()
	cancel := sv.cancel
	sv.cancel = nil
	sv.mu.Unlock()

	if cancel != nil {
		cancel()
		sv.wg.Wait()
	}
}
