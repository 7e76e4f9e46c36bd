// Package app provides the shared application state, configuration, and events.
package app

import (
	"fmt"
	"sync"

	"crosshair-overlay/internal/crosshair"
)

// State owns the crosshair settings shared by the overlay and the settings
// window. All writes go through Update or ApplyPreset so listeners see every
// change exactly once.
type State struct {
	mu sync.RWMutex

	settings *crosshair.Settings

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	// EventSettingsChanged carries the crosshair.Key that changed.
	EventSettingsChanged EventType = iota
	// EventPresetApplied carries the preset name.
	EventPresetApplied
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a state around settings. The pointer is retained, not copied.
func NewState(settings *crosshair.Settings) *State {
	if settings == nil {
		d := crosshair.DefaultSettings()
		settings = &d
	}
	return &State{
		settings:  settings,
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
// Listeners run in registration order.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Settings returns the shared settings record.
func (s *State) Settings() *crosshair.Settings {
	return s.settings
}

// Snapshot returns a copy of the current settings for rendering.
func (s *State) Snapshot() crosshair.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.settings
}

// Update writes one field and notifies EventSettingsChanged listeners.
func (s *State) Update(key crosshair.Key, value float64) error {
	s.mu.Lock()
	err := s.settings.Set(key, value)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("update %s: %w", key, err)
	}

	s.Emit(EventSettingsChanged, key)
	return nil
}

// ApplyPreset rewrites the shape fields from the named preset.
func (s *State) ApplyPreset(name string) error {
	preset, ok := crosshair.LookupPreset(name)
	if !ok {
		return fmt.Errorf("unknown preset %q", name)
	}

	s.mu.Lock()
	preset.Apply(s.settings)
	s.mu.Unlock()

	s.Emit(EventPresetApplied, name)
	return nil
}
