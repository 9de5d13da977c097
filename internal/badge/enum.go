package badge

type CriteriaType string

const (
	CriteriaExamsCompleted CriteriaType = "EXAMS_COMPLETED"
	CriteriaTotalPoints    CriteriaType = "TOTAL_POINTS"
)

type BadgeType string

const (
	BadgeTypeMilestone   BadgeType = "MILESTONE"
	BadgeTypeAchievement BadgeType = "ACHIEVEMENT"
)
