package service

import (
	"fmt"
	"log"
)

// SweepStore is the persistence surface the expiry sweep needs.
type SweepStore interface {
	GetExpiredLotNos() ([]string, error)
	ReleaseLots(lotNos []string) error
}

type JobService struct {
	Repo SweepStore
}

func NewJobService(repo SweepStore) *JobService {
	return &JobService{Repo: repo}
}

// ReleaseExpiredBookings frees slots whose booking's parked_till has passed.
func (s *JobService) ReleaseExpiredBookings() error {
	log.Println("Cron Job: Checking for expired bookings to release...")

	lotNos, err := s.Repo.GetExpiredLotNos()
	if err != nil {
		return fmt.Errorf("cron job: failed to get expired bookings: %w", err)
	}

	if len(lotNos) == 0 {
		log.Println("Cron Job: No bookings found past their parked_till time.")
		return nil
	}

	log.Printf("Cron Job: Found %d expired bookings to release. Lots: %v", len(lotNos), lotNos)

	if err := s.Repo.ReleaseLots(lotNos); err != nil {
		return fmt.Errorf("cron job: failed to release expired slots: %w", err)
	}

	log.Printf("Cron Job: Successfully released %d slots.", len(lotNos))
	return nil
}
