package services

import (
	"fmt"
	"log/slog"
	"time"

	"TRECGEN/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogService records one row per handled request as an audit trail.
// Writes go through a bounded queue with a single writer goroutine, so a slow
// insert never blocks a request and Close drains what is queued instead of
// dropping tail entries on shutdown.
type ActivityLogService struct {
	db      *gorm.DB
	entries chan *models.ActivityLog
	done    chan struct{}
}

func NewActivityLogService(db *gorm.DB) *ActivityLogService {
	s := &ActivityLogService{
		db:      db,
		entries: make(chan *models.ActivityLog, 256),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *ActivityLogService) run() {
	for entry := range s.entries {
		if err := s.db.Create(entry).Error; err != nil {
			slog.Warn("failed to save activity log", "error", err)
		}
	}
	close(s.done)
}

// Close stops accepting entries, writes everything still queued and returns.
func (s *ActivityLogService) Close() {
	close(s.entries)
	<-s.done
}

func (s *ActivityLogService) LogRequest(c *gin.Context, statusCode int, responseTime time.Duration) {
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = c.Request.RemoteAddr
	}

	entry := &models.ActivityLog{
		ID:           uuid.New().String(),
		Method:       c.Request.Method,
		Path:         c.Request.URL.Path,
		TeamID:       c.GetString("team_id"),
		UserID:       c.GetString("user_id"),
		IPAddress:    clientIP,
		StatusCode:   statusCode,
		ResponseTime: responseTime.Milliseconds(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	// The audit trail never blocks a request: when the queue is full the
	// entry is dropped and counted against the log, not the caller.
	select {
	case s.entries <- entry:
	default:
		slog.Warn("activity log queue full, dropping entry", "method", entry.Method, "path", entry.Path)
	}
}

// ListByTeam returns a team's recent requests, newest first.
func (s *ActivityLogService) ListByTeam(teamID string, limit, offset int) ([]models.ActivityLog, int64, error) {
	var logs []models.ActivityLog
	var total int64

	query := s.db.Where("team_id = ?", teamID)

	if err := query.Model(&models.ActivityLog{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count logs: %w", err)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch logs: %w", err)
	}

	return logs, total, nil
}

// LoggingMiddleware records every request after it completes.
func (s *ActivityLogService) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		s.LogRequest(c, c.Writer.Status(), duration)
	}
}
