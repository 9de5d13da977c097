package exam

import (
	"github.com/saulo-duarte/quizee-lambda/internal/questionsource"
	"gorm.io/gorm"
)

type ExamContainer struct {
	Handler *Handler
	Service ExamService
}

func NewExamContainer(db *gorm.DB, resolver *questionsource.Resolver, rankings RankingInvalidator) *ExamContainer {
	repo := NewRepository(db)
	service := NewService(repo, resolver, rankings)
	handler := NewHandler(service)

	return &ExamContainer{
		Handler: handler,
		Service: service,
	}
}
