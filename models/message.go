package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageTypeNotification 系统通知类消息
const MessageTypeNotification = "notification"

// FollowUpMessage 跟进记录的沟通日志，只追加不修改
type FollowUpMessage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FollowUpID  string             `bson:"followUpId" json:"followUpId"`
	Body        string             `bson:"body" json:"body"`
	MessageType string             `bson:"messageType" json:"messageType"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
