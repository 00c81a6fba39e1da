package service

import (
	"context"
	"testing"
	"time"

	"github.com/BerniceZTT/followup_end/models"
	"github.com/BerniceZTT/followup_end/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testActor = &utils.LoginUser{
	ID:       "68405ea56e4eb64aa7ed3cb3",
	Role:     "SUPER_ADMIN",
	Username: "admin",
}

func newTestFollowUpService() (*FollowUpService, *fakeFollowUpRepo, *fakeMessageRepo) {
	followUps := newFakeFollowUpRepo()
	messages := newFakeMessageRepo()
	return NewFollowUpService(followUps, messages), followUps, messages
}

func createTestFollowUp(t *testing.T, svc *FollowUpService) *models.FollowUp {
	t.Helper()

	record, err := svc.Create(context.Background(), &models.CreateFollowUpInput{
		Subject:    "安装后回访",
		CustomerID: "cust-001",
	}, testActor)
	require.NoError(t, err)
	return record
}

func TestCreateFollowUpStartsInDraft(t *testing.T) {
	svc, _, _ := newTestFollowUpService()

	record := createTestFollowUp(t, svc)

	assert.Equal(t, models.FollowUpStateDraft, record.State)
	assert.Nil(t, record.SentAt)
	assert.Nil(t, record.RepliedAt)
	assert.Equal(t, testActor.ID, record.AssignedTo)
	assert.Equal(t, testActor.ID, record.CreatorID)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestCreateFollowUpKeepsExplicitAssignee(t *testing.T) {
	svc, _, _ := newTestFollowUpService()

	record, err := svc.Create(context.Background(), &models.CreateFollowUpInput{
		Subject:    "安装后回访",
		CustomerID: "cust-001",
		AssignedTo: "user-other",
	}, testActor)
	require.NoError(t, err)

	assert.Equal(t, "user-other", record.AssignedTo)
}

func TestMarkSentSetsStateAndTimestamp(t *testing.T) {
	svc, followUps, messages := newTestFollowUpService()
	record := createTestFollowUp(t, svc)

	err := svc.MarkSent(context.Background(), []string{record.ID.Hex()})
	require.NoError(t, err)

	updated, err := followUps.GetByID(context.Background(), record.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.FollowUpStateSent, updated.State)
	require.NotNil(t, updated.SentAt)
	assert.False(t, updated.SentAt.Before(record.CreatedAt))
	assert.Nil(t, updated.RepliedAt)

	logs, err := messages.ListByFollowUp(context.Background(), record.ID.Hex())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, MsgFollowUpMarkedSent, logs[0].Body)
	assert.Equal(t, models.MessageTypeNotification, logs[0].MessageType)
}

func TestMarkSentRepeatedRefreshesTimestamp(t *testing.T) {
	svc, followUps, _ := newTestFollowUpService()
	record := createTestFollowUp(t, svc)
	ids := []string{record.ID.Hex()}

	require.NoError(t, svc.MarkSent(context.Background(), ids))
	first, err := followUps.GetByID(context.Background(), record.ID.Hex())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, svc.MarkSent(context.Background(), ids))
	second, err := followUps.GetByID(context.Background(), record.ID.Hex())
	require.NoError(t, err)

	// 重复调用不报错，发送时间取最后一次
	assert.Equal(t, models.FollowUpStateSent, second.State)
	assert.True(t, second.SentAt.After(*first.SentAt))
}

func TestLogReplySetsRepliedAt(t *testing.T) {
	svc, followUps, messages := newTestFollowUpService()
	record := createTestFollowUp(t, svc)
	ids := []string{record.ID.Hex()}

	require.NoError(t, svc.MarkSent(context.Background(), ids))
	require.NoError(t, svc.LogReply(context.Background(), ids))

	updated, err := followUps.GetByID(context.Background(), record.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.FollowUpStateReplied, updated.State)
	require.NotNil(t, updated.RepliedAt)
	require.NotNil(t, updated.SentAt)

	logs, err := messages.ListByFollowUp(context.Background(), record.ID.Hex())
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, MsgCustomerReplyLogged, logs[1].Body)
}

func TestCloseFromAnyState(t *testing.T) {
	svc, followUps, messages := newTestFollowUpService()

	// 关闭操作不校验当前状态，draft可以直接关闭
	record := createTestFollowUp(t, svc)
	require.NoError(t, svc.Close(context.Background(), []string{record.ID.Hex()}))

	updated, err := followUps.GetByID(context.Background(), record.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.FollowUpStateClosed, updated.State)
	assert.Nil(t, updated.SentAt)

	logs, err := messages.ListByFollowUp(context.Background(), record.ID.Hex())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, MsgFollowUpClosed, logs[0].Body)
}

func TestUpdateRatingAcceptsValidRange(t *testing.T) {
	svc, _, _ := newTestFollowUpService()
	record := createTestFollowUp(t, svc)

	for rating := 1; rating <= 10; rating++ {
		updated, err := svc.Update(context.Background(), record.ID.Hex(), &models.UpdateFollowUpInput{
			Rating: &rating,
		})
		require.NoError(t, err, "rating %d 应该通过校验", rating)
		assert.Equal(t, rating, updated.Rating)
	}
}

func TestUpdateRatingRejectsOutOfRange(t *testing.T) {
	svc, followUps, _ := newTestFollowUpService()
	record := createTestFollowUp(t, svc)

	for _, rating := range []int{0, 11, -1, 100} {
		_, err := svc.Update(context.Background(), record.ID.Hex(), &models.UpdateFollowUpInput{
			Rating: &rating,
		})
		require.Error(t, err, "rating %d 应该被拒绝", rating)
		assert.EqualError(t, err, "Rating must be between 1 and 10.")

		apiErr, ok := err.(*utils.ApiError)
		require.True(t, ok)
		assert.Equal(t, 400, apiErr.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", apiErr.ErrorCode)
	}

	// 校验失败的写入不落库
	unchanged, err := followUps.GetByID(context.Background(), record.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 0, unchanged.Rating)
}

func TestCreateRejectsInvalidRating(t *testing.T) {
	svc, _, _ := newTestFollowUpService()

	rating := 11
	_, err := svc.Create(context.Background(), &models.CreateFollowUpInput{
		Subject:    "安装后回访",
		CustomerID: "cust-001",
		Rating:     &rating,
	}, testActor)
	require.Error(t, err)
	assert.EqualError(t, err, "Rating must be between 1 and 10.")
}

func TestUpdateOtherFieldsUnconstrained(t *testing.T) {
	svc, _, _ := newTestFollowUpService()
	record := createTestFollowUp(t, svc)

	feedback := "客户表示满意"
	summary := "整体正面反馈"
	updated, err := svc.Update(context.Background(), record.ID.Hex(), &models.UpdateFollowUpInput{
		Feedback:    &feedback,
		SummaryNote: &summary,
	})
	require.NoError(t, err)
	assert.Equal(t, feedback, updated.Feedback)
	assert.Equal(t, summary, updated.SummaryNote)
	assert.Equal(t, models.FollowUpStateDraft, updated.State)
}

func TestBatchTransitionAbortsOnError(t *testing.T) {
	svc, followUps, _ := newTestFollowUpService()
	first := createTestFollowUp(t, svc)
	second := createTestFollowUp(t, svc)

	missingID := "64e000000000000000000000"
	err := svc.MarkSent(context.Background(), []string{first.ID.Hex(), missingID, second.ID.Hex()})
	require.Error(t, err)

	// 错误之前的记录已处理，之后的未处理
	processed, err := followUps.GetByID(context.Background(), first.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.FollowUpStateSent, processed.State)

	untouched, err := followUps.GetByID(context.Background(), second.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.FollowUpStateDraft, untouched.State)
}
