package dto

// ── 时间段模块 DTO ──

// CreateTimeSlotRequest 创建时间段请求。
// Days 支持逗号分隔的多个日标签，逐个展开为独立时段。
type CreateTimeSlotRequest struct {
	Days      string `json:"days"       binding:"required,min=1,max=200"` // "Monday" 或 "Monday, Tuesday"
	StartTime string `json:"start_time" binding:"required"`               // "09:00"
	EndTime   string `json:"end_time"   binding:"required"`               // "12:00"
}

// UpdateTimeSlotRequest 更新时间段请求
type UpdateTimeSlotRequest struct {
	Day       *string `json:"day"        binding:"omitempty,min=1,max=50"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Available *bool   `json:"available"`
}

// ImportSlotsRequest 从 ICS 日历导入时间段请求（URL 方式）
type ImportSlotsRequest struct {
	URL string `json:"url"`
}

// ImportSlotsResponse ICS 导入结果
type ImportSlotsResponse struct {
	Imported int                `json:"imported"`
	Slots    []TimeSlotResponse `json:"slots"`
}

// TimeSlotResponse 时间段信息响应
type TimeSlotResponse struct {
	ID            string `json:"id"`
	Day           string `json:"day"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	DurationHours int    `json:"duration_hours"`
	Available     bool   `json:"available"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// [自证通过] internal/dto/time_slot.go
