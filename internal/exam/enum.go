package exam

type ExamType string

const (
	ExamTypeMainExam   ExamType = "MAIN_EXAM"
	ExamTypeMockTest   ExamType = "MOCK_TEST"
	ExamTypeQuiz       ExamType = "QUIZ"
	ExamTypeTestModule ExamType = "TEST_MODULE"
)

var AllExamTypes = []ExamType{
	ExamTypeMainExam,
	ExamTypeMockTest,
	ExamTypeQuiz,
	ExamTypeTestModule,
}

func (t ExamType) IsValid() bool {
	for _, v := range AllExamTypes {
		if t == v {
			return true
		}
	}
	return false
}

type ExamStatus string

const (
	ExamStatusActive    ExamStatus = "ACTIVE"
	ExamStatusCompleted ExamStatus = "COMPLETED"
)

type SessionStatus string

const SessionStatusCompleted SessionStatus = "COMPLETED"
