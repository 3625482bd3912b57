package services

import (
	"time"

	"festhub/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Rejected membership rows are kept long enough for support queries and
// re-application bookkeeping, then pruned.
const rejectedRetention = 30 * 24 * time.Hour

// CleanupService prunes stale rejected membership rows in the background.
type CleanupService struct {
	db   *gorm.DB
	stop chan struct{}
	done chan struct{}
}

func NewCleanupService(db *gorm.DB) *CleanupService {
	return &CleanupService{
		db:   db,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Start launches the cleanup worker. It runs once immediately and then on a
// fixed interval until Stop is called.
func (s *CleanupService) Start(interval time.Duration) {
	go func() {
		defer close(s.done)

		if err := s.PruneRejectedMemberships(); err != nil {
			log.WithError(err).Warn("membership cleanup failed")
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.PruneRejectedMemberships(); err != nil {
					log.WithError(err).Warn("membership cleanup failed")
				}
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop signals the worker and waits for it to exit.
func (s *CleanupService) Stop() {
	close(s.stop)
	<-s.done
}

// PruneRejectedMemberships deletes rejected membership rows older than the
// retention window. Pending and accepted rows are never touched.
func (s *CleanupService) PruneRejectedMemberships() error {
	cutoff := time.Now().UTC().Add(-rejectedRetention)

	result := s.db.
		Where("status = ? AND joined_at < ?", models.MembershipRejected, cutoff).
		Delete(&models.TeamMember{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		log.WithField("rows", result.RowsAffected).Info("pruned stale rejected memberships")
	}
	return nil
}
