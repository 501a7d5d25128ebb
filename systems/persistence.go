package systems

import (
	"encoding/json"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
}

const (
	settingsKey  = "settings"
	bestScoreKey = "best_score"
)

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. A nil result means defaults.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// ApplySavedSettings applies loaded settings to the audio system
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetMusicVolume(saved.MusicVolume)
	SetSFXVolume(saved.SFXVolume)
	if saved.Muted {
		SetMusicVolume(0)
		SetSFXVolume(0)
	}
}

// CurrentSettings snapshots the live audio settings.
func CurrentSettings(muted bool) *SavedSettings {
	return &SavedSettings{
		MusicVolume: GetMusicVolume(),
		SFXVolume:   GetSFXVolume(),
		Muted:       muted,
	}
}

// LoadBestScore returns the stored best score, zero when none is saved.
func LoadBestScore() int {
	if gdataManager == nil {
		return 0
	}
	data, err := gdataManager.LoadItem(bestScoreKey)
	if err != nil || data == nil {
		return 0
	}
	best, err := strconv.Atoi(string(data))
	if err != nil {
		log.Warn("could not parse best score", "err", err)
		return 0
	}
	return best
}

// RecordScore stores score if it beats the saved best and returns the best.
func RecordScore(score int) int {
	best := LoadBestScore()
	if score <= best {
		return best
	}
	if gdataManager != nil {
		if err := gdataManager.SaveItem(bestScoreKey, []byte(strconv.Itoa(score))); err != nil {
			log.Warn("could not save best score", "err", err)
		}
	}
	return score
}
