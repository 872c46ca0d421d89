package tui

import (
	"encoding/json"
	"fmt"

	"github.com/zarlcorp/core/pkg/zstore"
)

const prefsKey = "locate"

// configEnvelope wraps a JSON-encoded value so different settings types can
// share one zstore collection.
type configEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// locatePrefs remembers locate form values between sessions.
type locatePrefs struct {
	Domains []string `json:"domains,omitempty"`
}

// loadConfig reads a typed value from the envelope collection. Missing or
// unreadable values give the zero value.
func loadConfig[T any](col *zstore.Collection[configEnvelope], key string) T {
	var zero T
	if col == nil {
		return zero
	}

	env, err := col.Get(key)
	if err != nil {
		return zero
	}

	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return zero
	}
	return v
}

// saveConfig persists a typed value into the envelope collection.
func saveConfig[T any](col *zstore.Collection[configEnvelope], key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return col.Put(key, configEnvelope{Data: data})
}
