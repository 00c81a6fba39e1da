package service

import (
	"context"
	"sort"
	"time"

	"github.com/BerniceZTT/followup_end/models"
	"github.com/BerniceZTT/followup_end/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeFollowUpRepo 内存版跟进记录存储，用于服务层测试
type fakeFollowUpRepo struct {
	records map[string]*models.FollowUp
}

func newFakeFollowUpRepo() *fakeFollowUpRepo {
	return &fakeFollowUpRepo{records: make(map[string]*models.FollowUp)}
}

func (r *fakeFollowUpRepo) Create(ctx context.Context, record *models.FollowUp) (*models.FollowUp, error) {
	record.ID = primitive.NewObjectID()
	stored := *record
	r.records[record.ID.Hex()] = &stored
	return record, nil
}

func (r *fakeFollowUpRepo) GetByID(ctx context.Context, id string) (*models.FollowUp, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, utils.CreateNotFoundError("跟进记录")
	}
	copied := *record
	return &copied, nil
}

func (r *fakeFollowUpRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.FollowUp, error) {
	var result []models.FollowUp
	for _, record := range r.records {
		if record.CustomerID == customerID {
			result = append(result, *record)
		}
	}
	return result, nil
}

func (r *fakeFollowUpRepo) UpdateFields(ctx context.Context, id string, update *models.FollowUpUpdate) error {
	record, ok := r.records[id]
	if !ok {
		return utils.CreateNotFoundError("跟进记录")
	}

	if update.Subject != nil {
		record.Subject = *update.Subject
	}
	if update.AppointmentAt != nil {
		record.AppointmentAt = update.AppointmentAt
	}
	if update.AssignedTo != nil {
		record.AssignedTo = *update.AssignedTo
	}
	if update.AssignedToName != nil {
		record.AssignedToName = *update.AssignedToName
	}
	if update.State != nil {
		record.State = *update.State
	}
	if update.SentAt != nil {
		record.SentAt = update.SentAt
	}
	if update.RepliedAt != nil {
		record.RepliedAt = update.RepliedAt
	}
	if update.Rating != nil {
		record.Rating = *update.Rating
	}
	if update.Feedback != nil {
		record.Feedback = *update.Feedback
	}
	if update.SummaryNote != nil {
		record.SummaryNote = *update.SummaryNote
	}
	record.UpdatedAt = time.Now()

	return nil
}

func (r *fakeFollowUpRepo) FindOverdueSent(ctx context.Context, cutoff time.Time, limit int64) ([]models.FollowUp, error) {
	var result []models.FollowUp
	for _, record := range r.records {
		if record.State != models.FollowUpStateSent {
			continue
		}
		if record.SentAt == nil || record.SentAt.After(cutoff) {
			continue
		}
		if record.RepliedAt != nil {
			continue
		}
		result = append(result, *record)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].SentAt.Before(*result[j].SentAt)
	})

	if int64(len(result)) > limit {
		result = result[:limit]
	}

	return result, nil
}

// fakeMessageRepo 内存版沟通日志存储
type fakeMessageRepo struct {
	entries map[string][]models.FollowUpMessage
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{entries: make(map[string][]models.FollowUpMessage)}
}

func (r *fakeMessageRepo) Append(ctx context.Context, followUpID, body string) error {
	r.entries[followUpID] = append(r.entries[followUpID], models.FollowUpMessage{
		ID:          primitive.NewObjectID(),
		FollowUpID:  followUpID,
		Body:        body,
		MessageType: models.MessageTypeNotification,
		CreatedAt:   time.Now(),
	})
	return nil
}

func (r *fakeMessageRepo) ListByFollowUp(ctx context.Context, followUpID string) ([]models.FollowUpMessage, error) {
	return r.entries[followUpID], nil
}

// fakeActivityRepo 内存版待办活动存储
type fakeActivityRepo struct {
	types      []models.ActivityType
	activities []models.Activity
	createErr  error
}

func newFakeActivityRepo(typeNames ...string) *fakeActivityRepo {
	repo := &fakeActivityRepo{}
	for _, name := range typeNames {
		repo.types = append(repo.types, models.ActivityType{
			ID:        primitive.NewObjectID(),
			Name:      name,
			CreatedAt: time.Now(),
		})
	}
	return repo
}

func (r *fakeActivityRepo) FindTypeByName(ctx context.Context, name string) (*models.ActivityType, error) {
	for _, t := range r.types {
		if t.Name == name {
			copied := t
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeActivityRepo) HasOpenReminder(ctx context.Context, resModel, resID, typeID, userID string, deadlineOnOrAfter time.Time) (bool, error) {
	for _, a := range r.activities {
		if a.ResModel == resModel &&
			a.ResID == resID &&
			a.ActivityTypeID == typeID &&
			a.UserID == userID &&
			!a.DateDeadline.Before(deadlineOnOrAfter) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeActivityRepo) Create(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	activity.ID = primitive.NewObjectID()
	r.activities = append(r.activities, *activity)
	return activity, nil
}

func (r *fakeActivityRepo) ListForRecord(ctx context.Context, resModel, resID string) ([]models.Activity, error) {
	var result []models.Activity
	for _, a := range r.activities {
		if a.ResModel == resModel && a.ResID == resID {
			result = append(result, a)
		}
	}
	return result, nil
}
