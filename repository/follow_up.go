package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/BerniceZTT/followup_end/models"
	"github.com/BerniceZTT/followup_end/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FollowUpRepository 跟进记录存储接口
type FollowUpRepository interface {
	Create(ctx context.Context, record *models.FollowUp) (*models.FollowUp, error)
	GetByID(ctx context.Context, id string) (*models.FollowUp, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.FollowUp, error)
	UpdateFields(ctx context.Context, id string, update *models.FollowUpUpdate) error
	FindOverdueSent(ctx context.Context, cutoff time.Time, limit int64) ([]models.FollowUp, error)
}

type mongoFollowUpRepository struct{}

// NewFollowUpRepository 创建跟进记录的MongoDB存储实现
func NewFollowUpRepository() FollowUpRepository {
	return &mongoFollowUpRepository{}
}

func (r *mongoFollowUpRepository) Create(ctx context.Context, record *models.FollowUp) (*models.FollowUp, error) {
	result, err := Collection(FollowUpsCollection).InsertOne(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("创建跟进记录失败: %w", err)
	}

	record.ID = result.InsertedID.(primitive.ObjectID)
	return record, nil
}

func (r *mongoFollowUpRepository) GetByID(ctx context.Context, id string) (*models.FollowUp, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.CreateBadRequestError("无效的ID格式")
	}

	var record models.FollowUp
	err = Collection(FollowUpsCollection).FindOne(ctx, bson.M{"_id": objID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.CreateNotFoundError("跟进记录")
		}
		return nil, err
	}

	return &record, nil
}

func (r *mongoFollowUpRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.FollowUp, error) {
	// 按预约时间倒序，其次按ID倒序
	opts := options.Find().SetSort(bson.D{
		{Key: "appointmentAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := Collection(FollowUpsCollection).Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("查询跟进记录失败: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.FollowUp
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("解析跟进记录失败: %w", err)
	}

	return records, nil
}

func (r *mongoFollowUpRepository) UpdateFields(ctx context.Context, id string, update *models.FollowUpUpdate) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.CreateBadRequestError("无效的ID格式")
	}

	set := bson.M{"updatedAt": time.Now()}
	if update.Subject != nil {
		set["subject"] = *update.Subject
	}
	if update.AppointmentAt != nil {
		set["appointmentAt"] = *update.AppointmentAt
	}
	if update.AssignedTo != nil {
		set["assignedTo"] = *update.AssignedTo
	}
	if update.AssignedToName != nil {
		set["assignedToName"] = *update.AssignedToName
	}
	if update.State != nil {
		set["state"] = *update.State
	}
	if update.SentAt != nil {
		set["sentAt"] = *update.SentAt
	}
	if update.RepliedAt != nil {
		set["repliedAt"] = *update.RepliedAt
	}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}
	if update.Feedback != nil {
		set["feedback"] = *update.Feedback
	}
	if update.SummaryNote != nil {
		set["summaryNote"] = *update.SummaryNote
	}

	result, err := Collection(FollowUpsCollection).UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("更新跟进记录失败: %w", err)
	}

	if result.MatchedCount == 0 {
		return utils.CreateNotFoundError("跟进记录")
	}

	return nil
}

func (r *mongoFollowUpRepository) FindOverdueSent(ctx context.Context, cutoff time.Time, limit int64) ([]models.FollowUp, error) {
	filter := bson.M{
		"state":     models.FollowUpStateSent,
		"sentAt":    bson.M{"$ne": nil, "$lte": cutoff},
		"repliedAt": nil,
	}

	// 最早发送的记录优先处理
	opts := options.Find().
		SetSort(bson.M{"sentAt": 1}).
		SetLimit(limit)

	utils.LogDbOperation("find", FollowUpsCollection, filter, nil)

	cursor, err := Collection(FollowUpsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("查询超期跟进记录失败: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.FollowUp
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("解析超期跟进记录失败: %w", err)
	}

	return records, nil
}
