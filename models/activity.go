package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 活动关联的实体类型
const ActivityResModelFollowUp = "followUp"

// ActivityTypeToDo 提醒任务使用的活动类型名称
const ActivityTypeToDo = "To Do"

// ActivityType 活动类型
type ActivityType struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Activity 待办活动（提醒任务）
type Activity struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ResModel       string             `bson:"resModel" json:"resModel"`
	ResID          string             `bson:"resId" json:"resId"`
	ActivityTypeID string             `bson:"activityTypeId" json:"activityTypeId"`
	Summary        string             `bson:"summary" json:"summary"`
	Note           string             `bson:"note" json:"note"`
	UserID         string             `bson:"userId" json:"userId"`
	UserName       string             `bson:"userName,omitempty" json:"userName,omitempty"`
	DateDeadline   time.Time          `bson:"dateDeadline" json:"dateDeadline"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// ReminderRunStats 单次提醒扫描的统计结果
type ReminderRunStats struct {
	RunID      string `json:"runId"`
	Scanned    int    `json:"scanned"`
	Created    int    `json:"created"`
	Skipped    int    `json:"skipped"`
	Errors     int    `json:"errors"`
	DurationMs int64  `json:"durationMs"`
}
