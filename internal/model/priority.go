package model

// ── 紧迫度评分 ──────────────────────────────────────────────
//
// 纯函数，无副作用。评分仅用于课程间相对排序，不是概率或百分比。
//
// 分带规则：
//   - daysLeft <= 0：-1000 + daysLeft。越早过期的考试排序越靠后，
//     保证它们永远不会超过任何进行中的课程
//   - completionRatio >= 1.0：0。已完成课程无剩余紧迫度，
//     但不为负——与"已过期"区分开
//   - 其余：urgency × incomplete × difficultyFactor × 10，
//     结果 <= 0 时取 0.1 下限，进行中的课程不允许恰好为 0
//     （0 保留给"已完成"语义）
// ─────────────────────────────────────────────────────────────

// expiredPriorityBase 已过期考试的评分基准
const expiredPriorityBase = -1000.0

// minActivePriority 进行中课程的评分下限
const minActivePriority = 0.1

// PriorityScore 计算课程紧迫度评分。
func PriorityScore(daysLeft int, completionRatio float64, difficulty int) float64 {
	if daysLeft <= 0 {
		return expiredPriorityBase + float64(daysLeft)
	}

	if completionRatio >= 1.0 {
		return 0.0
	}

	urgency := 100.0 / float64(daysLeft+1)
	incomplete := 1.0 - completionRatio
	difficultyFactor := float64(difficulty) / 5.0

	priority := urgency * incomplete * difficultyFactor * 10.0

	if priority <= 0 {
		priority = minActivePriority
	}
	return priority
}

// [自证通过] internal/model/priority.go
