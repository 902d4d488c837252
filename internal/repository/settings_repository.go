package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// SettingsRepo stores the hotel settings as a single JSON document row.
// The API replaces the document wholesale (PUT, never PATCH), so a JSON
// column keeps the schema stable while the settings shape evolves.
type SettingsRepo struct {
	db *sql.DB
}

// NewSettingsRepo returns a SettingsRepo bound to the given database.
func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{db: db} }

// settingsRowID pins the singleton to one row.
const settingsRowID = 1

// Get returns the settings document, or ErrSettingsNotFound when it has
// never been written.
func (r *SettingsRepo) Get(ctx context.Context) (model.Settings, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx,
		"SELECT doc FROM settings WHERE id = ?", settingsRowID).Scan(&doc)
	if err == sql.ErrNoRows {
		return model.Settings{}, ErrSettingsNotFound
	}
	if err != nil {
		return model.Settings{}, err
	}
	var s model.Settings
	if err := json.Unmarshal(doc, &s); err != nil {
		return model.Settings{}, err
	}
	if s.RoomTypes == nil {
		s.RoomTypes = []model.RoomTypeSetting{}
	}
	return s, nil
}

// Replace overwrites the settings document, creating it on first write.
func (r *SettingsRepo) Replace(ctx context.Context, s model.Settings) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO settings (id, doc) VALUES (?, ?) ON DUPLICATE KEY UPDATE doc = VALUES(doc)",
		settingsRowID, doc)
	return err
}
