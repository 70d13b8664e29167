package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Schedule 排程表 — 对应 schedules
//
// 一次分配生成的有序会话列表。顺序 = 创建顺序
// （紧迫度优先，同课程内按时段池顺序），并非时间顺序。
// 排程不是持久状态的主存，随时可按需重新生成。
type Schedule struct {
	ScheduleID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_id"`
	Name       string `gorm:"type:varchar(100);not null"                     json:"name"`
	BaseModel

	// 关联
	Sessions []StudySession `gorm:"foreignKey:ScheduleID" json:"sessions,omitempty"`
}

// TableName 指定表名
func (Schedule) TableName() string { return "schedules" }

// StudySession 学习会话表 — 对应 study_sessions
//
// 时段字段是分配时刻的值拷贝快照，与工作池中的活动实例解耦：
// 生成后对原时段池的任何修改都不影响历史会话。
type StudySession struct {
	SessionID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"session_id"`
	ScheduleID    string `gorm:"type:uuid;not null"                             json:"schedule_id"`
	CourseName    string `gorm:"type:varchar(100);not null"                     json:"course_name"`
	Day           string `gorm:"type:varchar(50);not null"                      json:"day"`
	StartTime     string `gorm:"type:varchar(5);not null"                       json:"start_time"`
	EndTime       string `gorm:"type:varchar(5);not null"                       json:"end_time"`
	DurationHours int    `gorm:"not null"                                       json:"duration_hours"`
	Position      int    `gorm:"not null"                                       json:"position"` // 创建顺序
	BaseModel
}

// TableName 指定表名
func (StudySession) TableName() string { return "study_sessions" }

// NewStudySession 以时段快照创建会话
func NewStudySession(course *Course, slot TimeSlot, durationHours int) StudySession {
	return StudySession{
		CourseName:    course.Name,
		Day:           slot.Day,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		DurationHours: durationHours,
	}
}

// NewSchedule 创建空排程
func NewSchedule(name string) *Schedule {
	return &Schedule{Name: name}
}

// AddSession 追加会话并维护创建顺序
func (s *Schedule) AddSession(session StudySession) {
	session.Position = len(s.Sessions)
	s.Sessions = append(s.Sessions, session)
}

// TotalStudyHours 总分配学时
func (s *Schedule) TotalStudyHours() int {
	total := 0
	for _, session := range s.Sessions {
		total += session.DurationHours
	}
	return total
}

// Serialize 序列化为文本格式（实现 Serializable）。
// 第 1 行排程名称，第 2 行会话数，随后每行一个会话：
// courseName,day,startTime,endTime,durationHours
func (s *Schedule) Serialize() string {
	var sb strings.Builder
	sb.WriteString(s.Name)
	sb.WriteString("\n")
	sb.WriteString(strconv.Itoa(len(s.Sessions)))
	sb.WriteString("\n")
	for _, session := range s.Sessions {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%s,%d\n",
			session.CourseName, session.Day, session.StartTime, session.EndTime, session.DurationHours))
	}
	return sb.String()
}

// ParseScheduleText 解析文本格式的排程
func ParseScheduleText(data string) (*Schedule, error) {
	lines := strings.Split(strings.TrimRight(data, "\n"), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("排程文本不完整: 至少需要名称行与计数行")
	}

	count, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil {
		return nil, fmt.Errorf("排程会话数无效: %w", err)
	}
	if len(lines)-2 < count {
		return nil, fmt.Errorf("排程会话行数不足: 期望 %d，实际 %d", count, len(lines)-2)
	}

	schedule := NewSchedule(lines[0])
	for i := 0; i < count; i++ {
		parts := strings.Split(lines[2+i], ",")
		if len(parts) != 5 {
			return nil, fmt.Errorf("会话记录字段数错误: 期望 5，实际 %d", len(parts))
		}
		duration, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("会话 durationHours 无效: %w", err)
		}
		schedule.AddSession(StudySession{
			CourseName:    parts[0],
			Day:           parts[1],
			StartTime:     parts[2],
			EndTime:       parts[3],
			DurationHours: duration,
		})
	}
	return schedule, nil
}

// [自证通过] internal/model/schedule.go
