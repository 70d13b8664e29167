package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Oloyede-Michael/StudyPlanner/config"
	"github.com/Oloyede-Michael/StudyPlanner/internal/dto"
	"github.com/Oloyede-Michael/StudyPlanner/internal/repository"
	"github.com/Oloyede-Michael/StudyPlanner/internal/service"
	applogger "github.com/Oloyede-Michael/StudyPlanner/pkg/logger"
)

// 交互式命令行模式：数据落盘为文本文件，无需数据库。

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 交互模式降低日志噪音
	cfg.Log.Level = "warn"
	cfg.Log.Format = "console"
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	repo, err := repository.NewFileRepository(cfg.Storage.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化数据目录失败: %v\n", err)
		os.Exit(1)
	}

	svc := service.NewService(cfg, repo, nil, logger)
	app := &cliApp{svc: svc, in: bufio.NewReader(os.Stdin)}
	app.run()
}

type cliApp struct {
	svc *service.Service
	in  *bufio.Reader
}

func (app *cliApp) run() {
	ctx := context.Background()

	for {
		fmt.Println()
		fmt.Println("═══════ 学习计划管理 ═══════")
		fmt.Println("1. 添加课程")
		fmt.Println("2. 添加可用时段")
		fmt.Println("3. 查看课程")
		fmt.Println("4. 查看可用时段")
		fmt.Println("5. 生成学习排程")
		fmt.Println("6. 记录学习时长")
		fmt.Println("7. 学习统计")
		fmt.Println("8. 载入示例数据")
		fmt.Println("0. 退出")

		switch app.readLine("请选择: ") {
		case "1":
			app.addCourse(ctx)
		case "2":
			app.addTimeSlots(ctx)
		case "3":
			app.listCourses(ctx)
		case "4":
			app.listTimeSlots(ctx)
		case "5":
			app.generateSchedule(ctx)
		case "6":
			app.recordStudyHours(ctx)
		case "7":
			app.showStatistics(ctx)
		case "8":
			app.loadSampleData(ctx)
		case "0":
			fmt.Println("再见！")
			return
		default:
			fmt.Println("无效选项，请重新输入")
		}
	}
}

func (app *cliApp) addCourse(ctx context.Context) {
	name := app.readLine("课程名称: ")
	if name == "" {
		fmt.Println("课程名称不能为空")
		return
	}
	difficulty := app.readIntInRange("难度 (1-5): ", 1, 5)
	examDate := app.readLine("考试日期 (YYYY-MM-DD): ")
	totalHours := app.readPositiveInt("所需总学时: ")

	course, err := app.svc.Course.Create(ctx, &dto.CreateCourseRequest{
		Name:             name,
		Difficulty:       difficulty,
		ExamDate:         examDate,
		TotalHoursNeeded: totalHours,
	})
	if err != nil {
		fmt.Printf("添加课程失败: %v\n", err)
		return
	}
	fmt.Printf("已添加课程 %s（距考试 %d 天，紧迫度 %.1f）\n",
		course.Name, course.DaysUntilExam, course.Priority)
}

func (app *cliApp) addTimeSlots(ctx context.Context) {
	days := app.readLine("日标签（逗号分隔可批量）: ")
	startTime := app.readLine("开始时间 (HH:MM): ")
	endTime := app.readLine("结束时间 (HH:MM): ")

	slots, err := app.svc.TimeSlot.Create(ctx, &dto.CreateTimeSlotRequest{
		Days:      days,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		fmt.Printf("添加时段失败: %v\n", err)
		return
	}
	fmt.Printf("已添加 %d 个时段\n", len(slots))
}

func (app *cliApp) listCourses(ctx context.Context) {
	courses, err := app.svc.Course.List(ctx)
	if err != nil {
		fmt.Printf("查询课程失败: %v\n", err)
		return
	}
	if len(courses) == 0 {
		fmt.Println("暂无课程")
		return
	}

	fmt.Println("── 课程列表 ──")
	for i, c := range courses {
		fmt.Printf("%d. %s  难度 %d  考试 %s（%d 天后）  进度 %d/%d  紧迫度 %.1f\n",
			i+1, c.Name, c.Difficulty, c.ExamDate, c.DaysUntilExam,
			c.HoursCompleted, c.TotalHoursNeeded, c.Priority)
	}
}

func (app *cliApp) listTimeSlots(ctx context.Context) {
	slots, err := app.svc.TimeSlot.List(ctx)
	if err != nil {
		fmt.Printf("查询时段失败: %v\n", err)
		return
	}
	if len(slots) == 0 {
		fmt.Println("暂无可用时段")
		return
	}

	fmt.Println("── 可用时段 ──")
	for i, s := range slots {
		fmt.Printf("%d. %s %s-%s（%d 小时）\n",
			i+1, s.Day, s.StartTime, s.EndTime, s.DurationHours)
	}
}

func (app *cliApp) generateSchedule(ctx context.Context) {
	name := app.readLine("排程名称（回车使用默认）: ")

	resp, err := app.svc.Schedule.Generate(ctx, &dto.GenerateScheduleRequest{Name: name})
	if err != nil {
		fmt.Printf("生成排程失败: %v\n", err)
		return
	}

	schedule := resp.Schedule
	fmt.Printf("── %s ──\n", schedule.Name)
	if len(schedule.Sessions) == 0 {
		fmt.Println("（无可分配的课程或时段）")
		return
	}
	for i, session := range schedule.Sessions {
		fmt.Printf("%d. %s  %s %s-%s  %d 小时\n",
			i+1, session.CourseName, session.Day,
			session.StartTime, session.EndTime, session.DurationHours)
	}
	fmt.Printf("共 %d 个会话，%d 学时，消耗时段 %d/%d（排程已保存）\n",
		len(schedule.Sessions), schedule.TotalHours, resp.UsedSlots, resp.TotalSlots)
}

func (app *cliApp) recordStudyHours(ctx context.Context) {
	courses, err := app.svc.Course.List(ctx)
	if err != nil || len(courses) == 0 {
		fmt.Println("暂无课程")
		return
	}
	app.listCourses(ctx)

	idx := app.readInt("选择课程编号: ")
	if idx < 1 || idx > len(courses) {
		fmt.Println("无效编号")
		return
	}
	hours := app.readInt("本次学习时长（小时，可为负撤销）: ")

	course := courses[idx-1]
	updated, err := app.svc.Course.AddStudyHours(ctx, course.ID, &dto.AddStudyHoursRequest{Hours: hours})
	if err != nil {
		fmt.Printf("记录失败: %v\n", err)
		return
	}
	if updated.HoursCompleted == course.HoursCompleted {
		fmt.Println("该时长会越界，已忽略")
		return
	}
	fmt.Printf("%s 进度 %d/%d，紧迫度 %.1f\n",
		updated.Name, updated.HoursCompleted, updated.TotalHoursNeeded, updated.Priority)
}

func (app *cliApp) showStatistics(ctx context.Context) {
	stats, err := app.svc.Course.Statistics(ctx)
	if err != nil {
		fmt.Printf("统计失败: %v\n", err)
		return
	}

	fmt.Println("── 学习统计 ──")
	fmt.Printf("课程总数: %d（进行中 %d）\n", stats.TotalCourses, stats.ActiveCourses)
	fmt.Printf("可用时段: %d\n", stats.AvailableTimeSlots)
	fmt.Printf("学时进度: %d/%d（剩余 %d）\n",
		stats.HoursCompleted, stats.TotalHoursNeeded, stats.RemainingHours)
	fmt.Printf("总体完成度: %.1f%%\n", stats.CompletionPercentage)
}

func (app *cliApp) loadSampleData(ctx context.Context) {
	sampleCourses := []dto.CreateCourseRequest{
		{Name: "高等数学", Difficulty: 5, ExamDate: sampleExamDate(7), TotalHoursNeeded: 20},
		{Name: "大学英语", Difficulty: 3, ExamDate: sampleExamDate(14), TotalHoursNeeded: 12},
		{Name: "数据结构", Difficulty: 4, ExamDate: sampleExamDate(21), TotalHoursNeeded: 16},
	}
	for _, req := range sampleCourses {
		if _, err := app.svc.Course.Create(ctx, &req); err != nil {
			fmt.Printf("载入示例课程失败: %v\n", err)
			return
		}
	}

	sampleSlots := []dto.CreateTimeSlotRequest{
		{Days: "Monday, Wednesday, Friday", StartTime: "19:00", EndTime: "22:00"},
		{Days: "Saturday, Sunday", StartTime: "09:00", EndTime: "12:00"},
	}
	for _, req := range sampleSlots {
		if _, err := app.svc.TimeSlot.Create(ctx, &req); err != nil {
			fmt.Printf("载入示例时段失败: %v\n", err)
			return
		}
	}

	fmt.Println("已载入 3 门示例课程与 5 个示例时段")
}

// sampleExamDate 距今 days 天的日期
func sampleExamDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// readIntInRange 读取整数输入，越界时重新提示
func (app *cliApp) readIntInRange(prompt string, lo, hi int) int {
	for {
		n := app.readInt(prompt)
		if n >= lo && n <= hi {
			return n
		}
		fmt.Printf("请输入 %d 到 %d 之间的整数\n", lo, hi)
	}
}

// readPositiveInt 读取正整数输入，非正数重新提示
func (app *cliApp) readPositiveInt(prompt string) int {
	for {
		n := app.readInt(prompt)
		if n > 0 {
			return n
		}
		fmt.Println("请输入正整数")
	}
}

// readLine 读取一行输入并去除首尾空白
func (app *cliApp) readLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := app.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// readInt 读取整数输入，非法输入重试
func (app *cliApp) readInt(prompt string) int {
	for {
		line := app.readLine(prompt)
		n, err := strconv.Atoi(line)
		if err == nil {
			return n
		}
		fmt.Println("请输入整数")
	}
}

// [自证通过] cmd/cli/main.go
