package service

import (
	"context"
	"fmt"
	"time"

	"github.com/BerniceZTT/followup_end/models"
	"github.com/BerniceZTT/followup_end/repository"
	"github.com/BerniceZTT/followup_end/utils"

	"github.com/google/uuid"
)

const (
	// ReminderCutoffDays 已发送超过该天数未回复的记录视为超期
	ReminderCutoffDays = 2
	// ReminderBatchLimit 单次扫描处理的记录数上限
	ReminderBatchLimit = 50
)

// ReminderService 超期跟进提醒扫描
type ReminderService struct {
	followUps  repository.FollowUpRepository
	activities repository.ActivityRepository
}

// NewReminderService 创建提醒扫描服务
func NewReminderService(followUps repository.FollowUpRepository, activities repository.ActivityRepository) *ReminderService {
	return &ReminderService{
		followUps:  followUps,
		activities: activities,
	}
}

// RunScan 执行一次超期跟进扫描：
// 查找已发送超过2天且未回复的记录，为每条记录创建当天的提醒活动。
// 同一记录当天已有提醒时跳过，避免每天重复创建。
func (s *ReminderService) RunScan(ctx context.Context) (*models.ReminderRunStats, error) {
	start := time.Now()
	stats := &models.ReminderRunStats{RunID: uuid.NewString()}

	cutoff := start.AddDate(0, 0, -ReminderCutoffDays)

	utils.LogInfo(map[string]interface{}{
		"runId":  stats.RunID,
		"cutoff": cutoff.Format(time.RFC3339),
	}, "开始执行跟进提醒扫描")

	records, err := s.followUps.FindOverdueSent(ctx, cutoff, ReminderBatchLimit)
	if err != nil {
		return nil, fmt.Errorf("查询超期跟进记录失败: %w", err)
	}
	stats.Scanned = len(records)

	activityType, err := s.activities.FindTypeByName(ctx, models.ActivityTypeToDo)
	if err != nil {
		return nil, fmt.Errorf("查询活动类型失败: %w", err)
	}
	if activityType == nil {
		// 活动类型缺失不是错误，本次扫描直接跳过
		utils.LogInfo(map[string]interface{}{
			"runId": stats.RunID,
			"name":  models.ActivityTypeToDo,
		}, "未找到待办活动类型，本次扫描跳过")
		stats.DurationMs = time.Since(start).Milliseconds()
		return stats, nil
	}

	today := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	for _, record := range records {
		created, err := utils.ExecuteDedupOperation(
			func() (bool, error) {
				return s.activities.HasOpenReminder(
					ctx,
					models.ActivityResModelFollowUp,
					record.ID.Hex(),
					activityType.ID.Hex(),
					record.AssignedTo,
					today,
				)
			},
			func() error {
				return s.createReminder(ctx, &record, activityType, today)
			},
		)
		if err != nil {
			stats.Errors++
			utils.LogError(err, map[string]interface{}{
				"runId":    stats.RunID,
				"recordId": record.ID.Hex(),
			}, "创建提醒活动失败")
			continue
		}

		if created {
			stats.Created++
		} else {
			stats.Skipped++
		}
	}

	stats.DurationMs = time.Since(start).Milliseconds()

	utils.LogInfo(map[string]interface{}{
		"runId":      stats.RunID,
		"scanned":    stats.Scanned,
		"created":    stats.Created,
		"skipped":    stats.Skipped,
		"errors":     stats.Errors,
		"durationMs": stats.DurationMs,
	}, "跟进提醒扫描完成")

	return stats, nil
}

// createReminder 为单条超期记录创建提醒活动
func (s *ReminderService) createReminder(ctx context.Context, record *models.FollowUp, activityType *models.ActivityType, today time.Time) error {
	activity := &models.Activity{
		ResModel:       models.ActivityResModelFollowUp,
		ResID:          record.ID.Hex(),
		ActivityTypeID: activityType.ID.Hex(),
		Summary:        fmt.Sprintf("Follow-up Reminder: %s", record.Subject),
		Note: fmt.Sprintf(
			"This follow-up was sent on %s and has not received a reply yet. Please check with the customer.",
			record.SentAt.Format("2006-01-02 15:04"),
		),
		UserID:       record.AssignedTo,
		UserName:     record.AssignedToName,
		DateDeadline: today,
		CreatedAt:    time.Now(),
	}

	_, err := s.activities.Create(ctx, activity)
	return err
}

// ListActivities 获取跟进记录关联的提醒活动
func (s *ReminderService) ListActivities(ctx context.Context, followUpID string) ([]models.Activity, error) {
	return s.activities.ListForRecord(ctx, models.ActivityResModelFollowUp, followUpID)
}
