// Package prefs stores small per-installation preferences as JSON files
// in the user's config directory.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const deviceFile = "device.json"

type deviceInfo struct {
	ID string `json:"id"`
}

func devicePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "esportsranker")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, deviceFile), nil
}

// DeviceID returns this installation's stable identifier, generating and
// persisting one on first run. A corrupt file is replaced with a fresh id.
func DeviceID() (string, error) {
	path, err := devicePath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err == nil {
		var info deviceInfo
		if json.Unmarshal(data, &info) == nil && info.ID != "" {
			return info.ID, nil
		}
	} else if !os.IsNotExist(err) {
		return "", err
	}

	info := deviceInfo{ID: uuid.NewString()}
	out, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o600); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", err
	}
	return info.ID, nil
}
