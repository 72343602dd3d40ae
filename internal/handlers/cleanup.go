package handlers

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// FileCleanupService sweeps the local scratch directories where CSV uploads
// and PDF outputs are staged before they land in object storage.
type FileCleanupService struct {
	uploadDir string
	outputDir string
	maxAge    time.Duration
	ticker    *time.Ticker
	done      chan bool
}

func NewFileCleanupService(uploadDir, outputDir string, maxAge time.Duration) *FileCleanupService {
	return &FileCleanupService{
		uploadDir: uploadDir,
		outputDir: outputDir,
		maxAge:    maxAge,
		done:      make(chan bool),
	}
}

func (fcs *FileCleanupService) Start() {
	fcs.ticker = time.NewTicker(1 * time.Hour) // Run cleanup every hour
	go func() {
		for {
			select {
			case <-fcs.done:
				return
			case <-fcs.ticker.C:
				fcs.cleanupOldFiles()
			}
		}
	}()
	slog.Info("file cleanup service started")
}

func (fcs *FileCleanupService) Stop() {
	if fcs.ticker != nil {
		fcs.ticker.Stop()
	}
	fcs.done <- true
	slog.Info("file cleanup service stopped")
}

func (fcs *FileCleanupService) cleanupOldFiles() {
	fcs.cleanupDirectory(fcs.uploadDir)
	fcs.cleanupDirectory(fcs.outputDir)
}

func (fcs *FileCleanupService) cleanupDirectory(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return
	}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && time.Since(info.ModTime()) > fcs.maxAge {
			slog.Info("cleaning up old file", "path", path)
			return os.Remove(path)
		}

		return nil
	})

	if err != nil {
		slog.Warn("error during cleanup", "dir", dir, "error", err)
	}
}
