package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/BerniceZTT/followup_end/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository 跟进沟通日志存储接口，只追加不修改
type MessageRepository interface {
	Append(ctx context.Context, followUpID, body string) error
	ListByFollowUp(ctx context.Context, followUpID string) ([]models.FollowUpMessage, error)
}

type mongoMessageRepository struct{}

// NewMessageRepository 创建沟通日志的MongoDB存储实现
func NewMessageRepository() MessageRepository {
	return &mongoMessageRepository{}
}

func (r *mongoMessageRepository) Append(ctx context.Context, followUpID, body string) error {
	message := models.FollowUpMessage{
		FollowUpID:  followUpID,
		Body:        body,
		MessageType: models.MessageTypeNotification,
		CreatedAt:   time.Now(),
	}

	_, err := Collection(FollowUpMessagesCollection).InsertOne(ctx, message)
	if err != nil {
		return fmt.Errorf("追加沟通日志失败: %w", err)
	}

	return nil
}

func (r *mongoMessageRepository) ListByFollowUp(ctx context.Context, followUpID string) ([]models.FollowUpMessage, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": 1})

	cursor, err := Collection(FollowUpMessagesCollection).Find(ctx, bson.M{"followUpId": followUpID}, opts)
	if err != nil {
		return nil, fmt.Errorf("查询沟通日志失败: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.FollowUpMessage
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("解析沟通日志失败: %w", err)
	}

	return messages, nil
}
