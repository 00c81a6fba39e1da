package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FollowUpState 跟进记录状态枚举
type FollowUpState string

const (
	FollowUpStateDraft   FollowUpState = "draft"
	FollowUpStateSent    FollowUpState = "sent"
	FollowUpStateReplied FollowUpState = "replied"
	FollowUpStateClosed  FollowUpState = "closed"
)

// IsValidFollowUpState 验证跟进状态是否有效
func IsValidFollowUpState(state string) bool {
	validStates := []FollowUpState{
		FollowUpStateDraft,
		FollowUpStateSent,
		FollowUpStateReplied,
		FollowUpStateClosed,
	}

	for _, s := range validStates {
		if string(s) == state {
			return true
		}
	}
	return false
}

// 评分取值范围
const (
	RatingMin = 1
	RatingMax = 10
)

// IsValidRating 验证评分是否在有效范围内
func IsValidRating(rating int) bool {
	return rating >= RatingMin && rating <= RatingMax
}

// FollowUp 售后跟进记录
type FollowUp struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Subject        string             `bson:"subject" json:"subject"`
	CustomerID     string             `bson:"customerId" json:"customerId"`
	AppointmentAt  *time.Time         `bson:"appointmentAt,omitempty" json:"appointmentAt,omitempty"`
	AssignedTo     string             `bson:"assignedTo" json:"assignedTo"`
	AssignedToName string             `bson:"assignedToName,omitempty" json:"assignedToName,omitempty"`
	State          FollowUpState      `bson:"state" json:"state"`
	SentAt         *time.Time         `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
	RepliedAt      *time.Time         `bson:"repliedAt,omitempty" json:"repliedAt,omitempty"`
	Rating         int                `bson:"rating,omitempty" json:"rating,omitempty"`
	Feedback       string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	SummaryNote    string             `bson:"summaryNote,omitempty" json:"summaryNote,omitempty"`
	CreatorID      string             `bson:"creatorId" json:"creatorId"`
	CreatorName    string             `bson:"creatorName" json:"creatorName"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateFollowUpInput 创建跟进记录的输入数据
type CreateFollowUpInput struct {
	Subject        string     `json:"subject" binding:"required"`
	CustomerID     string     `json:"customerId" binding:"required"`
	AppointmentAt  *time.Time `json:"appointmentAt"`
	AssignedTo     string     `json:"assignedTo"`
	AssignedToName string     `json:"assignedToName"`
	Rating         *int       `json:"rating"`
	Feedback       string     `json:"feedback"`
	SummaryNote    string     `json:"summaryNote"`
}

// UpdateFollowUpInput 更新跟进记录的输入数据
type UpdateFollowUpInput struct {
	Subject        *string    `json:"subject"`
	AppointmentAt  *time.Time `json:"appointmentAt"`
	AssignedTo     *string    `json:"assignedTo"`
	AssignedToName *string    `json:"assignedToName"`
	Rating         *int       `json:"rating"`
	Feedback       *string    `json:"feedback"`
	SummaryNote    *string    `json:"summaryNote"`
}

// BatchIDsInput 批量操作的输入数据
type BatchIDsInput struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// FollowUpUpdate 跟进记录字段更新，nil表示该字段不更新
type FollowUpUpdate struct {
	Subject        *string
	AppointmentAt  *time.Time
	AssignedTo     *string
	AssignedToName *string
	State          *FollowUpState
	SentAt         *time.Time
	RepliedAt      *time.Time
	Rating         *int
	Feedback       *string
	SummaryNote    *string
}
