package service

import (
	"context"
	"time"

	coreEntity "meetease/core/entity"
	"meetease/core/logger"
	"meetease/core/params"
	"meetease/core/queue"
	"meetease/modules/notification/dto"
	"meetease/modules/notification/entity"
	"meetease/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationService struct {
	repo  *repository.NotificationRepository
	queue *queue.Client
}

func NewNotificationService(repo *repository.NotificationRepository, q *queue.Client) *NotificationService {
	return &NotificationService{repo: repo, queue: q}
}

func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) error {
	notif := &entity.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		Data:    entity.JSONB(req.Data),
		IsRead:  false,
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	return s.repo.Create(ctx, notif)
}

// EnqueueEmail queues an email for background delivery. Failure to enqueue
// is logged but never fails the caller's flow.
func (s *NotificationService) EnqueueEmail(ctx context.Context, to []string, subject, body string) {
	if s.queue == nil {
		return
	}
	task, err := NewEmailDeliveryTask(EmailDeliveryPayload{
		To:      to,
		Subject: subject,
		Body:    body,
		IsHTML:  true,
	})
	if err != nil {
		logger.Error("NotificationService:EnqueueEmail:BuildTask", err)
		return
	}
	if err := s.queue.Enqueue(ctx, task); err != nil {
		logger.Error("NotificationService:EnqueueEmail:Enqueue", "to", to, "error", err)
	}
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	return s.repo.GetByUserID(ctx, userID, queryParams)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) error {
	return s.repo.MarkAsRead(ctx, userID, ids)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}
