// Package store keeps the upload registry in SQLite: which files were
// uploaded, how many rows survived, and the per-row warnings. Record data
// itself stays in memory with the session.
package store

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"suicide-analytics-service/internal/engine"
)

var db *sql.DB

// InitDB opens the registry database and creates the schema if needed.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	uploadsTable := `
	CREATE TABLE IF NOT EXISTS uploads (
		id TEXT PRIMARY KEY,
		name TEXT,
		rows INTEGER,
		skipped INTEGER,
		rollups INTEGER,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	warningsTable := `
	CREATE TABLE IF NOT EXISTS upload_warnings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		upload_id TEXT,
		line INTEGER,
		reason TEXT,
		FOREIGN KEY(upload_id) REFERENCES uploads(id) ON DELETE CASCADE
	);
	`

	if _, err := db.Exec(uploadsTable); err != nil {
		return err
	}
	if _, err := db.Exec(warningsTable); err != nil {
		return err
	}
	return nil
}

// Close releases the database handle.
func Close() error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// SaveUpload records a successful upload and its row warnings.
func SaveUpload(id, name string, rows, skipped, rollups int, warnings []engine.RowWarning) error {
	now := time.Now().UTC()
	_, err := db.Exec(
		`INSERT INTO uploads (id, name, rows, skipped, rollups, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, name, rows, skipped, rollups, "active", now, now)
	if err != nil {
		return err
	}
	return insertWarnings(id, warnings)
}

// ReplaceUpload rewrites an upload's metadata after a re-upload: counts and
// warnings reflect the new file.
func ReplaceUpload(id, name string, rows, skipped, rollups int, warnings []engine.RowWarning) error {
	now := time.Now().UTC()
	_, err := db.Exec(
		`UPDATE uploads SET name = ?, rows = ?, skipped = ?, rollups = ?, updated_at = ? WHERE id = ?`,
		name, rows, skipped, rollups, now, id)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM upload_warnings WHERE upload_id = ?`, id); err != nil {
		return err
	}
	return insertWarnings(id, warnings)
}

func insertWarnings(uploadID string, warnings []engine.RowWarning) error {
	for _, w := range warnings {
		if _, err := db.Exec(
			`INSERT INTO upload_warnings (upload_id, line, reason) VALUES (?, ?, ?)`,
			uploadID, w.Line, w.Reason); err != nil {
			return err
		}
	}
	return nil
}

// UploadInfo is one registry row.
type UploadInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rows      int       `json:"rows"`
	Skipped   int       `json:"skipped"`
	Rollups   int       `json:"rollups"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListUploads returns all registry rows, newest first.
func ListUploads() ([]UploadInfo, error) {
	rows, err := db.Query(
		`SELECT id, name, rows, skipped, rollups, status, created_at, updated_at
		 FROM uploads ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploads []UploadInfo
	for rows.Next() {
		var u UploadInfo
		if err := rows.Scan(&u.ID, &u.Name, &u.Rows, &u.Skipped, &u.Rollups, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}
	return uploads, rows.Err()
}

// GetUpload fetches one registry row.
func GetUpload(id string) (UploadInfo, error) {
	var u UploadInfo
	err := db.QueryRow(
		`SELECT id, name, rows, skipped, rollups, status, created_at, updated_at
		 FROM uploads WHERE id = ?`, id).
		Scan(&u.ID, &u.Name, &u.Rows, &u.Skipped, &u.Rollups, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetUploadWarnings returns the skipped-row report for an upload.
func GetUploadWarnings(id string) ([]engine.RowWarning, error) {
	rows, err := db.Query(
		`SELECT line, reason FROM upload_warnings WHERE upload_id = ? ORDER BY line`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warnings []engine.RowWarning
	for rows.Next() {
		var w engine.RowWarning
		if err := rows.Scan(&w.Line, &w.Reason); err != nil {
			return nil, err
		}
		warnings = append(warnings, w)
	}
	return warnings, rows.Err()
}

// UpdateUploadStatus flips an upload's lifecycle status (active / deleted).
// Rows are never hard-deleted; the registry doubles as upload history.
func UpdateUploadStatus(id, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE uploads SET status = ?, updated_at = ? WHERE id = ?`, status, now, id)
	return err
}
