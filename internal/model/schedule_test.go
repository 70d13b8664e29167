package model

import (
	"strings"
	"testing"
)

// ── Schedule 测试 ──

func TestSchedule_TotalStudyHours(t *testing.T) {
	s := NewSchedule("周计划")
	if s.TotalStudyHours() != 0 {
		t.Errorf("空排程总学时应为 0，实际 %d", s.TotalStudyHours())
	}

	course := NewCourse("数据结构", 4, examDateIn(20), 10)
	s.AddSession(NewStudySession(course, *NewTimeSlot("Monday", "09:00", "12:00"), 3))
	s.AddSession(NewStudySession(course, *NewTimeSlot("Tuesday", "14:00", "17:00"), 2))

	if got := s.TotalStudyHours(); got != 5 {
		t.Errorf("期望总学时 5，实际 %d", got)
	}
}

func TestSchedule_AddSession_PreservesCreationOrder(t *testing.T) {
	s := NewSchedule("顺序测试")
	course := NewCourse("算法", 3, examDateIn(20), 10)
	s.AddSession(NewStudySession(course, *NewTimeSlot("Monday", "09:00", "11:00"), 2))
	s.AddSession(NewStudySession(course, *NewTimeSlot("Friday", "09:00", "11:00"), 2))

	if s.Sessions[0].Position != 0 || s.Sessions[1].Position != 1 {
		t.Errorf("Position 应按创建顺序递增: %d, %d",
			s.Sessions[0].Position, s.Sessions[1].Position)
	}
	if s.Sessions[0].Day != "Monday" || s.Sessions[1].Day != "Friday" {
		t.Error("会话应保持追加顺序")
	}
}

func TestStudySession_SlotSnapshotIsCopy(t *testing.T) {
	course := NewCourse("数据库", 3, examDateIn(20), 10)
	slot := NewTimeSlot("Monday", "09:00", "12:00")
	session := NewStudySession(course, *slot, 3)

	// 生成后修改原时段不得影响既有会话
	slot.Day = "Sunday"
	slot.StartTime = "20:00"
	slot.Available = false

	if session.Day != "Monday" || session.StartTime != "09:00" {
		t.Errorf("会话应持有时段快照，实际 %s %s", session.Day, session.StartTime)
	}
}

// ── 文本序列化 ──

func TestSchedule_Serialize(t *testing.T) {
	s := NewSchedule("Optimized Study Schedule")
	course := NewCourse("Data Structures", 4, "2026-01-15", 10)
	s.AddSession(NewStudySession(course, *NewTimeSlot("Monday", "09:00", "12:00"), 3))
	s.AddSession(NewStudySession(course, *NewTimeSlot("Tuesday", "14:00", "17:00"), 3))

	text := s.Serialize()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	if lines[0] != "Optimized Study Schedule" {
		t.Errorf("首行应为排程名称，实际 %q", lines[0])
	}
	if lines[1] != "2" {
		t.Errorf("第二行应为会话数 2，实际 %q", lines[1])
	}
	if lines[2] != "Data Structures,Monday,09:00,12:00,3" {
		t.Errorf("会话行格式不符: %q", lines[2])
	}
}

func TestParseScheduleText_RoundTrip(t *testing.T) {
	s := NewSchedule("往返测试")
	course := NewCourse("算法分析", 5, "2026-02-01", 12)
	s.AddSession(NewStudySession(course, *NewTimeSlot("Wednesday", "10:00", "13:00"), 3))

	parsed, err := ParseScheduleText(s.Serialize())
	if err != nil {
		t.Fatalf("解析应成功: %v", err)
	}
	if parsed.Name != "往返测试" {
		t.Errorf("排程名称不符: %q", parsed.Name)
	}
	if len(parsed.Sessions) != 1 {
		t.Fatalf("期望 1 个会话，实际 %d", len(parsed.Sessions))
	}
	if parsed.Sessions[0].CourseName != "算法分析" || parsed.Sessions[0].DurationHours != 3 {
		t.Errorf("会话字段不符: %+v", parsed.Sessions[0])
	}
}

func TestParseScheduleText_Invalid(t *testing.T) {
	cases := []string{
		"",
		"只有名称",
		"名称\nabc\n",
		"名称\n2\ncourse,Monday,09:00,12:00,3\n", // 计数与行数不符
		"名称\n1\ncourse,Monday,09:00,3\n",       // 字段数不足
	}
	for _, c := range cases {
		if _, err := ParseScheduleText(c); err == nil {
			t.Errorf("文本 %q 应解析失败", c)
		}
	}
}

// [自证通过] internal/model/schedule_test.go
