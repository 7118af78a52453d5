package database

import "database/sql"

// GetSlot reads the value stored under key. The second return value reports
// whether the key was present.
func (db *DB) GetSlot(key string) (string, bool, error) {
	var value string
	err := db.QueryRow("SELECT slot_value FROM slots WHERE slot_key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetSlot writes value under key, replacing any previous value
func (db *DB) SetSlot(key, value string) error {
	_, err := db.Exec(db.Dialect.UpsertSlotQuery(), key, value)
	return err
}

// DeleteSlot removes the value stored under key, if any
func (db *DB) DeleteSlot(key string) error {
	_, err := db.Exec("DELETE FROM slots WHERE slot_key = ?", key)
	return err
}
