package storage

import (
	"encoding/json"

	"github.com/moondogdev/overwhelmed/internal/common"
	"github.com/moondogdev/overwhelmed/internal/model"
)

// Snapshot is the desktop app's persisted-state layout. The format is
// version-free; missing fields are substituted with defaults on restore.
type Snapshot struct {
	Words          []model.Task         `json:"words"`
	CompletedWords []model.Task         `json:"completedWords"`
	Settings       model.Settings       `json:"settings"`
	InboxMessages  []model.InboxMessage `json:"inboxMessages"`
}

// DefaultSnapshot returns an empty snapshot with all fields initialized.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Words:          []model.Task{},
		CompletedWords: []model.Task{},
		Settings:       model.DefaultSettings(),
		InboxMessages:  []model.InboxMessage{},
	}
}

// ParseSnapshot decodes snapshot JSON, merging defaults over any missing
// fields. Invalid JSON is a non-fatal user error, never a crash.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, common.NewUserError("Could not read backup file.", err)
	}
	return snapshot.withDefaults(), nil
}

// Marshal encodes the snapshot in the persisted layout.
func (s Snapshot) Marshal() ([]byte, error) {
	return json.MarshalIndent(s.withDefaults(), "", "  ")
}

func (s Snapshot) withDefaults() Snapshot {
	if s.Words == nil {
		s.Words = []model.Task{}
	}
	if s.CompletedWords == nil {
		s.CompletedWords = []model.Task{}
	}
	if s.InboxMessages == nil {
		s.InboxMessages = []model.InboxMessage{}
	}
	s.Settings = settingsWithDefaults(s.Settings)
	return s
}

func settingsWithDefaults(s model.Settings) model.Settings {
	if s.Categories == nil {
		s.Categories = []model.Category{}
	}
	if s.TaxCategories == nil {
		s.TaxCategories = []model.TaxCategory{}
	}
	if s.Accounts == nil {
		s.Accounts = []model.Account{}
	}
	if s.DepreciableAssets == nil {
		s.DepreciableAssets = []model.DepreciableAsset{}
	}
	if s.W2ByYear == nil {
		s.W2ByYear = map[string]model.W2Data{}
	}
	return s
}
