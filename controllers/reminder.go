package controllers

import (
	"net/http"

	"github.com/BerniceZTT/followup_end/service"
	"github.com/BerniceZTT/followup_end/utils"

	"github.com/gin-gonic/gin"
)

// ReminderController 提醒扫描接口
type ReminderController struct {
	svc *service.ReminderService
}

// NewReminderController 创建提醒扫描控制器
func NewReminderController(svc *service.ReminderService) *ReminderController {
	return &ReminderController{svc: svc}
}

// TriggerScan 手动触发一次提醒扫描，供外部调度器或运维调用
func (ctl *ReminderController) TriggerScan(c *gin.Context) {
	stats, err := ctl.svc.RunScan(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, stats, "提醒扫描完成")
}

// ListFollowUpActivities 获取跟进记录关联的提醒活动
func (ctl *ReminderController) ListFollowUpActivities(c *gin.Context) {
	id := c.Param("id")

	activities, err := ctl.svc.ListActivities(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
