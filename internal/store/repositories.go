package store

import (
	"github.com/MKhiriev/coach-courier/internal/logger"
)

// Repositories aggregates all data-access components of the service.
type Repositories struct {
	UserRepository             UserRepository
	MessageRepository          MessageRepository
	NotificationRepository     NotificationRepository
	ScheduledMessageRepository ScheduledMessageRepository
	DeliveryRepository         DeliveryRepository
	LoginEventRepository       LoginEventRepository
}

// NewRepositories constructs all repositories over a single database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:             NewUserRepository(db, logger),
		MessageRepository:          NewMessageRepository(db, logger),
		NotificationRepository:     NewNotificationRepository(db, logger),
		ScheduledMessageRepository: NewScheduledMessageRepository(db, logger),
		DeliveryRepository:         NewDeliveryRepository(db, logger),
		LoginEventRepository:       NewLoginEventRepository(db, logger),
	}
}
