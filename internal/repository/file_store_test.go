package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/Oloyede-Michael/StudyPlanner/internal/model"
)

// TestFileRepository_CourseRoundTrip 测试课程的写入与重新加载
func TestFileRepository_CourseRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("创建文件存储失败: %v", err)
	}

	course := model.NewCourse("数学", 4, "2026-12-01", 20)
	course.AddStudyHours(5)
	if err := repo.Course.Create(ctx, course); err != nil {
		t.Fatalf("写入课程失败: %v", err)
	}

	// 重新打开，模拟进程重启
	reopened, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("重新加载失败: %v", err)
	}
	courses, err := reopened.Course.List(ctx)
	if err != nil {
		t.Fatalf("列出课程失败: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("课程数 = %d, want 1", len(courses))
	}
	got := courses[0]
	if got.Name != "数学" || got.Difficulty != 4 || got.ExamDate != "2026-12-01" ||
		got.TotalHoursNeeded != 20 || got.HoursCompleted != 5 {
		t.Errorf("重载后课程字段不一致: %+v", got)
	}
	if got.Priority <= 0 {
		t.Errorf("重载后应已重算紧迫度, got %v", got.Priority)
	}
}

// TestFileRepository_ListPreservesInsertionOrder 测试列表保持加入顺序
func TestFileRepository_ListPreservesInsertionOrder(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("创建文件存储失败: %v", err)
	}

	names := []string{"物理", "化学", "生物"}
	for _, name := range names {
		if err := repo.Course.Create(ctx, model.NewCourse(name, 3, "2026-11-01", 10)); err != nil {
			t.Fatalf("写入课程失败: %v", err)
		}
	}

	reopened, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("重新加载失败: %v", err)
	}
	courses, _ := reopened.Course.List(ctx)
	for i, name := range names {
		if courses[i].Name != name {
			t.Errorf("第 %d 门课程 = %s, want %s", i, courses[i].Name, name)
		}
	}
}

// TestFileRepository_UpdateAndDelete 测试更新与删除后的落盘状态
func TestFileRepository_UpdateAndDelete(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("创建文件存储失败: %v", err)
	}

	c1 := model.NewCourse("英语", 2, "2026-10-01", 15)
	c2 := model.NewCourse("历史", 3, "2026-10-15", 12)
	repo.Course.Create(ctx, c1)
	repo.Course.Create(ctx, c2)

	c1.SetHoursCompleted(7)
	if err := repo.Course.Update(ctx, c1); err != nil {
		t.Fatalf("更新课程失败: %v", err)
	}
	if err := repo.Course.Delete(ctx, c2.CourseID); err != nil {
		t.Fatalf("删除课程失败: %v", err)
	}

	reopened, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("重新加载失败: %v", err)
	}
	courses, _ := reopened.Course.List(ctx)
	if len(courses) != 1 {
		t.Fatalf("课程数 = %d, want 1", len(courses))
	}
	if courses[0].Name != "英语" || courses[0].HoursCompleted != 7 {
		t.Errorf("更新未落盘: %+v", courses[0])
	}
}

// TestFileRepository_NotFound 测试未命中返回 gorm.ErrRecordNotFound
func TestFileRepository_NotFound(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("创建文件存储失败: %v", err)
	}

	if _, err := repo.Course.GetByID(ctx, "no-such-id"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("GetByID 未命中应返回 ErrRecordNotFound, got %v", err)
	}
	if err := repo.Course.Delete(ctx, "no-such-id"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Delete 未命中应返回 ErrRecordNotFound, got %v", err)
	}
	if _, err := repo.Schedule.GetLatest(ctx); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("空库 GetLatest 应返回 ErrRecordNotFound, got %v", err)
	}
}

// TestFileRepository_TimeSlotRoundTrip 测试时段的写入与重新加载
func TestFileRepository_TimeSlotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("创建文件存储失败: %v", err)
	}

	repo.TimeSlot.Create(ctx, model.NewTimeSlot("Monday", "09:00", "12:00"))
	repo.TimeSlot.Create(ctx, model.NewTimeSlot("复习日", "14:00", "18:00"))

	reopened, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("重新加载失败: %v", err)
	}
	slots, _ := reopened.TimeSlot.List(ctx)
	if len(slots) != 2 {
		t.Fatalf("时段数 = %d, want 2", len(slots))
	}
	if slots[0].Day != "Monday" || slots[0].DurationHours() != 3 {
		t.Errorf("时段 0 不一致: %+v", slots[0])
	}
	// 自由文本标签原样保留
	if slots[1].Day != "复习日" || slots[1].DurationHours() != 4 {
		t.Errorf("时段 1 不一致: %+v", slots[1])
	}
	if !slots[1].Available {
		t.Errorf("重载后的时段应为可用状态")
	}
}

// TestFileRepository_TimeSlotAvailabilityPersists 测试可用标记跨重启保留
func TestFileRepository_TimeSlotAvailabilityPersists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("创建文件存储失败: %v", err)
	}

	slot := model.NewTimeSlot("Monday", "09:00", "12:00")
	repo.TimeSlot.Create(ctx, slot)
	slot.Available = false
	if err := repo.TimeSlot.Update(ctx, slot); err != nil {
		t.Fatalf("更新时段失败: %v", err)
	}

	reopened, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("重新加载失败: %v", err)
	}
	slots, _ := reopened.TimeSlot.List(ctx)
	if len(slots) != 1 {
		t.Fatalf("时段数 = %d, want 1", len(slots))
	}
	if slots[0].Available {
		t.Errorf("不可用标记应在重启后保留")
	}
}

// TestFileRepository_LegacyThreeFieldSlot 测试三字段旧档默认可用
func TestFileRepository_LegacyThreeFieldSlot(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "time_slots.txt"), []byte("Tuesday,14:00,16:00\n"), 0o644); err != nil {
		t.Fatalf("准备旧档失败: %v", err)
	}

	repo, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("加载旧档失败: %v", err)
	}
	slots, _ := repo.TimeSlot.List(context.Background())
	if len(slots) != 1 {
		t.Fatalf("时段数 = %d, want 1", len(slots))
	}
	if slots[0].Day != "Tuesday" || !slots[0].Available {
		t.Errorf("旧档时段应默认可用: %+v", slots[0])
	}
}

// TestFileRepository_ScheduleRoundTrip 测试排程落盘与重新加载
func TestFileRepository_ScheduleRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("创建文件存储失败: %v", err)
	}

	schedule := model.NewSchedule("周计划")
	course := model.NewCourse("数学", 4, "2026-12-01", 20)
	schedule.AddSession(model.NewStudySession(course, *model.NewTimeSlot("Monday", "09:00", "12:00"), 3))
	schedule.AddSession(model.NewStudySession(course, *model.NewTimeSlot("Tuesday", "14:00", "16:00"), 2))

	if err := repo.Schedule.Create(ctx, schedule); err != nil {
		t.Fatalf("保存排程失败: %v", err)
	}
	if schedule.ScheduleID == "" {
		t.Fatalf("保存后应分配排程 ID")
	}

	reopened, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("重新加载失败: %v", err)
	}
	latest, err := reopened.Schedule.GetLatest(ctx)
	if err != nil {
		t.Fatalf("读取最近排程失败: %v", err)
	}
	if latest.Name != "周计划" || len(latest.Sessions) != 2 {
		t.Fatalf("重载后排程不一致: name=%s sessions=%d", latest.Name, len(latest.Sessions))
	}
	if latest.TotalStudyHours() != 5 {
		t.Errorf("TotalStudyHours = %d, want 5", latest.TotalStudyHours())
	}
	if latest.Sessions[0].Position != 0 || latest.Sessions[1].Position != 1 {
		t.Errorf("重载后应维持创建顺序")
	}
}

// TestFileRepository_CorruptCourseFile 测试损坏的课程文件在加载时报错
func TestFileRepository_CorruptCourseFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "courses.txt"), []byte("数学,abc,2026-12-01,20,0\n"), 0o644); err != nil {
		t.Fatalf("准备损坏文件失败: %v", err)
	}

	if _, err := NewFileRepository(dir); err == nil {
		t.Errorf("损坏的课程文件应在加载时报错")
	}
}

// [自证通过] internal/repository/file_store_test.go
