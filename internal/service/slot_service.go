package service

import (
	"campusparking/internal/db"
)

// SlotStore is the registry surface the service needs.
type SlotStore interface {
	ListSlots() ([]db.Slot, error)
	SeedSlots(lotNos []string) error
}

type SlotService struct {
	Repo SlotStore
}

func NewSlotService(repo SlotStore) *SlotService {
	return &SlotService{Repo: repo}
}

func (s *SlotService) ListSlots() ([]db.Slot, error) {
	return s.Repo.ListSlots()
}

func (s *SlotService) SeedSlots(lotNos []string) error {
	return s.Repo.SeedSlots(lotNos)
}
