package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"TRECGEN/internal/contract"
	"TRECGEN/internal/models"
	"TRECGEN/internal/pdffill"
	"TRECGEN/internal/storage"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a file-backed SQLite database in a per-test temp dir and
// migrates the full schema. Immediate transactions plus a busy timeout keep
// concurrent writer tests from tripping over lock upgrades.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=10000&_txlock=immediate",
		filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.TeamContractDefaults{},
		&models.Owner{},
		&models.Property{},
		&models.Contract{},
		&models.ActivityLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	return db
}

// newBrokenDB returns a gorm handle whose underlying connection is already
// closed, so every operation on it fails.
func newBrokenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "broken.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql handle: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("failed to close sql handle: %v", err)
	}
	return db
}

func createTeam(t *testing.T, db *gorm.DB, id string, credits int) {
	t.Helper()
	team := &models.Team{ID: id, Name: "Test Team " + id, Credits: credits}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("failed to create team: %v", err)
	}
}

// fakeFiller stands in for the PDF filler. It records the last contract it
// was asked to fill so tests can assert on the pipeline's transformations.
type fakeFiller struct {
	mu      sync.Mutex
	failErr error
	skipped []string
	last    *contract.ContractData
	calls   int
}

func (f *fakeFiller) Fill(d *contract.ContractData) (*pdffill.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = d
	if f.failErr != nil {
		return nil, f.failErr
	}
	return &pdffill.Result{PDF: []byte("%PDF-1.7 test output"), SkippedFields: f.skipped}, nil
}

// fakeStore is an in-memory ObjectStore.
type fakeStore struct {
	mu         sync.Mutex
	objects    map[string][]byte
	failUpload bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (s *fakeStore) UploadFile(ctx context.Context, reader io.Reader, objectName, contentType string) (*storage.UploadResult, error) {
	if s.failUpload {
		return nil, errors.New("upload refused")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.objects[objectName] = data
	s.mu.Unlock()
	return &storage.UploadResult{ObjectName: objectName, Size: int64(len(data))}, nil
}

func (s *fakeStore) ReadFile(ctx context.Context, objectName string) (io.ReadCloser, error) {
	s.mu.Lock()
	data, ok := s.objects[objectName]
	s.mu.Unlock()
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStore) DeleteFile(ctx context.Context, objectName string) error {
	s.mu.Lock()
	delete(s.objects, objectName)
	s.mu.Unlock()
	return nil
}

func (s *fakeStore) GetSignedURL(objectName string, expiry time.Duration) (string, error) {
	return "https://signed.example/" + objectName, nil
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

func strPtr(s string) *string { return &s }
