package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/BerniceZTT/followup_end/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityRepository 待办活动存储接口
type ActivityRepository interface {
	// FindTypeByName 按名称查找活动类型，不存在时返回 (nil, nil)
	FindTypeByName(ctx context.Context, name string) (*models.ActivityType, error)
	// HasOpenReminder 检查截止日期在指定日期之后（含当天）的提醒活动是否已存在
	HasOpenReminder(ctx context.Context, resModel, resID, typeID, userID string, deadlineOnOrAfter time.Time) (bool, error)
	Create(ctx context.Context, activity *models.Activity) (*models.Activity, error)
	ListForRecord(ctx context.Context, resModel, resID string) ([]models.Activity, error)
}

type mongoActivityRepository struct{}

// NewActivityRepository 创建待办活动的MongoDB存储实现
func NewActivityRepository() ActivityRepository {
	return &mongoActivityRepository{}
}

func (r *mongoActivityRepository) FindTypeByName(ctx context.Context, name string) (*models.ActivityType, error) {
	var activityType models.ActivityType
	err := Collection(ActivityTypesCollection).FindOne(ctx, bson.M{"name": name}).Decode(&activityType)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("查询活动类型失败: %w", err)
	}

	return &activityType, nil
}

func (r *mongoActivityRepository) HasOpenReminder(ctx context.Context, resModel, resID, typeID, userID string, deadlineOnOrAfter time.Time) (bool, error) {
	filter := bson.M{
		"resModel":       resModel,
		"resId":          resID,
		"activityTypeId": typeID,
		"userId":         userID,
		"dateDeadline":   bson.M{"$gte": deadlineOnOrAfter},
	}

	findOptions := options.Find().SetLimit(1)

	cursor, err := Collection(ActivitiesCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return false, fmt.Errorf("查询提醒活动失败: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err = cursor.All(ctx, &activities); err != nil {
		return false, fmt.Errorf("解析提醒活动失败: %w", err)
	}

	return len(activities) > 0, nil
}

func (r *mongoActivityRepository) Create(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	result, err := Collection(ActivitiesCollection).InsertOne(ctx, activity)
	if err != nil {
		return nil, fmt.Errorf("创建提醒活动失败: %w", err)
	}

	activity.ID = result.InsertedID.(primitive.ObjectID)
	return activity, nil
}

func (r *mongoActivityRepository) ListForRecord(ctx context.Context, resModel, resID string) ([]models.Activity, error) {
	filter := bson.M{
		"resModel": resModel,
		"resId":    resID,
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := Collection(ActivitiesCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("查询活动列表失败: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err = cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("解析活动列表失败: %w", err)
	}

	return activities, nil
}
