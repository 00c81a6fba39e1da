package service

import (
	"context"
	"time"

	"github.com/BerniceZTT/followup_end/models"
	"github.com/BerniceZTT/followup_end/repository"
	"github.com/BerniceZTT/followup_end/utils"
)

// 状态流转时写入沟通日志的固定通知内容
const (
	MsgFollowUpMarkedSent  = "Follow-up marked as sent."
	MsgCustomerReplyLogged = "Customer reply logged."
	MsgFollowUpClosed      = "Follow-up closed."
)

// 评分校验失败时的提示信息
const ratingRangeMessage = "Rating must be between 1 and 10."

// FollowUpService 跟进记录业务逻辑
type FollowUpService struct {
	followUps repository.FollowUpRepository
	messages  repository.MessageRepository
}

// NewFollowUpService 创建跟进记录服务
func NewFollowUpService(followUps repository.FollowUpRepository, messages repository.MessageRepository) *FollowUpService {
	return &FollowUpService{
		followUps: followUps,
		messages:  messages,
	}
}

// validateRating 校验评分范围，nil表示本次写入未涉及评分
func validateRating(rating *int) error {
	if rating == nil {
		return nil
	}
	if !models.IsValidRating(*rating) {
		return utils.CreateValidationError(ratingRangeMessage)
	}
	return nil
}

// Create 创建跟进记录，初始状态为draft，负责人默认为当前操作人
func (s *FollowUpService) Create(ctx context.Context, input *models.CreateFollowUpInput, actor *utils.LoginUser) (*models.FollowUp, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	assignedTo := input.AssignedTo
	assignedToName := input.AssignedToName
	if assignedTo == "" {
		assignedTo = actor.ID
		assignedToName = actor.Username
	}

	now := time.Now()
	record := &models.FollowUp{
		Subject:        input.Subject,
		CustomerID:     input.CustomerID,
		AppointmentAt:  input.AppointmentAt,
		AssignedTo:     assignedTo,
		AssignedToName: assignedToName,
		State:          models.FollowUpStateDraft,
		Feedback:       input.Feedback,
		SummaryNote:    input.SummaryNote,
		CreatorID:      actor.ID,
		CreatorName:    actor.Username,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if input.Rating != nil {
		record.Rating = *input.Rating
	}

	created, err := s.followUps.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	utils.LogInfo(map[string]interface{}{
		"recordId":   created.ID.Hex(),
		"customerId": created.CustomerID,
	}, "创建跟进记录成功")

	return created, nil
}

// Get 获取单条跟进记录
func (s *FollowUpService) Get(ctx context.Context, id string) (*models.FollowUp, error) {
	return s.followUps.GetByID(ctx, id)
}

// ListByCustomer 获取某个客户的跟进记录列表
func (s *FollowUpService) ListByCustomer(ctx context.Context, customerID string) ([]models.FollowUp, error) {
	return s.followUps.ListByCustomer(ctx, customerID)
}

// Update 更新跟进记录字段，涉及评分的写入必须通过范围校验
func (s *FollowUpService) Update(ctx context.Context, id string, input *models.UpdateFollowUpInput) (*models.FollowUp, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	update := &models.FollowUpUpdate{
		Subject:        input.Subject,
		AppointmentAt:  input.AppointmentAt,
		AssignedTo:     input.AssignedTo,
		AssignedToName: input.AssignedToName,
		Rating:         input.Rating,
		Feedback:       input.Feedback,
		SummaryNote:    input.SummaryNote,
	}

	if err := s.followUps.UpdateFields(ctx, id, update); err != nil {
		return nil, err
	}

	return s.followUps.GetByID(ctx, id)
}

// MarkSent 标记为已发送。不校验当前状态，重复调用会刷新发送时间
func (s *FollowUpService) MarkSent(ctx context.Context, ids []string) error {
	return s.transition(ctx, ids, MsgFollowUpMarkedSent, func(now time.Time) *models.FollowUpUpdate {
		state := models.FollowUpStateSent
		return &models.FollowUpUpdate{State: &state, SentAt: &now}
	})
}

// LogReply 记录客户已回复
func (s *FollowUpService) LogReply(ctx context.Context, ids []string) error {
	return s.transition(ctx, ids, MsgCustomerReplyLogged, func(now time.Time) *models.FollowUpUpdate {
		state := models.FollowUpStateReplied
		return &models.FollowUpUpdate{State: &state, RepliedAt: &now}
	})
}

// Close 关闭跟进记录。任意状态均可关闭
func (s *FollowUpService) Close(ctx context.Context, ids []string) error {
	return s.transition(ctx, ids, MsgFollowUpClosed, func(now time.Time) *models.FollowUpUpdate {
		state := models.FollowUpStateClosed
		return &models.FollowUpUpdate{State: &state}
	})
}

// ListMessages 获取跟进记录的沟通日志
func (s *FollowUpService) ListMessages(ctx context.Context, followUpID string) ([]models.FollowUpMessage, error) {
	return s.messages.ListByFollowUp(ctx, followUpID)
}

// transition 按顺序处理每条记录，任一记录失败立即中止并返回错误
func (s *FollowUpService) transition(ctx context.Context, ids []string, message string, build func(now time.Time) *models.FollowUpUpdate) error {
	for _, id := range ids {
		now := time.Now()
		if err := s.followUps.UpdateFields(ctx, id, build(now)); err != nil {
			return err
		}
		if err := s.messages.Append(ctx, id, message); err != nil {
			return err
		}
	}

	utils.LogInfo(map[string]interface{}{
		"count":   len(ids),
		"message": message,
	}, "跟进记录状态更新完成")

	return nil
}
