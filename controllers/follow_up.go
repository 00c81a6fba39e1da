package controllers

import (
	"context"
	"net/http"

	"github.com/BerniceZTT/followup_end/models"
	"github.com/BerniceZTT/followup_end/service"
	"github.com/BerniceZTT/followup_end/utils"

	"github.com/gin-gonic/gin"
)

// FollowUpController 跟进记录接口
type FollowUpController struct {
	svc *service.FollowUpService
}

// NewFollowUpController 创建跟进记录控制器
func NewFollowUpController(svc *service.FollowUpService) *FollowUpController {
	return &FollowUpController{svc: svc}
}

// Create 创建跟进记录
func (ctl *FollowUpController) Create(c *gin.Context) {
	var input models.CreateFollowUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	// 获取当前用户信息
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	record, err := ctl.svc.Create(c.Request.Context(), &input, user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "创建跟进记录成功",
		"record":  record,
	})
}

// Get 获取单条跟进记录
func (ctl *FollowUpController) Get(c *gin.Context) {
	id := c.Param("id")

	record, err := ctl.svc.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": record})
}

// ListByCustomer 获取某个客户的跟进记录列表
func (ctl *FollowUpController) ListByCustomer(c *gin.Context) {
	customerID := c.Param("customerId")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "客户ID不能为空"})
		return
	}

	records, err := ctl.svc.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"customerId":  customerID,
		"recordCount": len(records),
	}, "获取客户跟进记录成功")

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// Update 更新跟进记录字段
func (ctl *FollowUpController) Update(c *gin.Context) {
	id := c.Param("id")

	var input models.UpdateFollowUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	record, err := ctl.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, record, "更新跟进记录成功")
}

// MarkSent 批量标记为已发送
func (ctl *FollowUpController) MarkSent(c *gin.Context) {
	ctl.batchTransition(c, ctl.svc.MarkSent, "跟进记录已标记为已发送")
}

// LogReply 批量记录客户回复
func (ctl *FollowUpController) LogReply(c *gin.Context) {
	ctl.batchTransition(c, ctl.svc.LogReply, "已记录客户回复")
}

// Close 批量关闭跟进记录
func (ctl *FollowUpController) Close(c *gin.Context) {
	ctl.batchTransition(c, ctl.svc.Close, "跟进记录已关闭")
}

// ListMessages 获取跟进记录的沟通日志
func (ctl *FollowUpController) ListMessages(c *gin.Context) {
	id := c.Param("id")

	messages, err := ctl.svc.ListMessages(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// batchTransition 批量状态流转的公共处理
func (ctl *FollowUpController) batchTransition(c *gin.Context, op func(ctx context.Context, ids []string) error, message string) {
	var input models.BatchIDsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	if err := op(c.Request.Context(), input.IDs); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"count": len(input.IDs)}, message)
}
