package badge

import "gorm.io/gorm"

type BadgeContainer struct {
	Handler *Handler
	Service Service
}

func NewBadgeContainer(db *gorm.DB) *BadgeContainer {
	service := NewService(NewRepository(db))

	return &BadgeContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
