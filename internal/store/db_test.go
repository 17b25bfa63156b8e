package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"suicide-analytics-service/internal/engine"
)

func setupDB(t *testing.T) {
	t.Helper()
	if err := InitDB(filepath.Join(t.TempDir(), "registry.db")); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { Close() })
}

func TestSaveAndGetUpload(t *testing.T) {
	setupDB(t)

	warnings := []engine.RowWarning{
		{Line: 3, Reason: "missing state"},
		{Line: 7, Reason: `count "oops" is not an integer`},
	}
	if err := SaveUpload("u1", "ncrb.csv", 120, 2, 3, warnings); err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}

	u, err := GetUpload("u1")
	if err != nil {
		t.Fatalf("GetUpload: %v", err)
	}
	if u.Name != "ncrb.csv" || u.Rows != 120 || u.Skipped != 2 || u.Rollups != 3 {
		t.Errorf("unexpected upload row: %+v", u)
	}
	if u.Status != "active" {
		t.Errorf("Status = %q, want active", u.Status)
	}

	got, err := GetUploadWarnings("u1")
	if err != nil {
		t.Fatalf("GetUploadWarnings: %v", err)
	}
	if !reflect.DeepEqual(got, warnings) {
		t.Errorf("warnings = %+v, want %+v", got, warnings)
	}
}

func TestGetUploadUnknownID(t *testing.T) {
	setupDB(t)
	if _, err := GetUpload("missing"); err == nil {
		t.Fatal("expected an error for an unknown upload")
	}
}

func TestReplaceUploadRewritesWarnings(t *testing.T) {
	setupDB(t)

	if err := SaveUpload("u1", "first.csv", 10, 1, 0, []engine.RowWarning{{Line: 2, Reason: "missing year"}}); err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if err := ReplaceUpload("u1", "second.csv", 25, 0, 1, nil); err != nil {
		t.Fatalf("ReplaceUpload: %v", err)
	}

	u, err := GetUpload("u1")
	if err != nil {
		t.Fatalf("GetUpload: %v", err)
	}
	if u.Name != "second.csv" || u.Rows != 25 || u.Skipped != 0 || u.Rollups != 1 {
		t.Errorf("unexpected upload row after replace: %+v", u)
	}

	warnings, err := GetUploadWarnings("u1")
	if err != nil {
		t.Fatalf("GetUploadWarnings: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected old warnings gone, got %+v", warnings)
	}
}

func TestListUploads(t *testing.T) {
	setupDB(t)

	if err := SaveUpload("u1", "a.csv", 1, 0, 0, nil); err != nil {
		t.Fatalf("SaveUpload u1: %v", err)
	}
	if err := SaveUpload("u2", "b.csv", 2, 0, 0, nil); err != nil {
		t.Fatalf("SaveUpload u2: %v", err)
	}

	uploads, err := ListUploads()
	if err != nil {
		t.Fatalf("ListUploads: %v", err)
	}
	if len(uploads) != 2 {
		t.Fatalf("got %d uploads, want 2", len(uploads))
	}
}

func TestUpdateUploadStatus(t *testing.T) {
	setupDB(t)

	if err := SaveUpload("u1", "a.csv", 1, 0, 0, nil); err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if err := UpdateUploadStatus("u1", "deleted"); err != nil {
		t.Fatalf("UpdateUploadStatus: %v", err)
	}
	u, err := GetUpload("u1")
	if err != nil {
		t.Fatalf("GetUpload: %v", err)
	}
	if u.Status != "deleted" {
		t.Errorf("Status = %q, want deleted", u.Status)
	}
}
