package routes

import (
	"github.com/BerniceZTT/followup_end/controllers"
	"github.com/BerniceZTT/followup_end/repository"
	"github.com/BerniceZTT/followup_end/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine, followUps *controllers.FollowUpController, reminders *controllers.ReminderController) {
	// 注册跟进记录路由
	RegisterFollowUpRoutes(router, followUps, reminders)

	// 注册提醒扫描路由
	RegisterReminderRoutes(router, reminders)

	// 健康检查路由
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 数据库状态检查路由
	router.GET("/api/db-status", func(c *gin.Context) {
		status, err := repository.GetDatabaseStatus()
		if err != nil {
			utils.ErrorResponse(c, "获取数据库状态失败: "+err.Error(), 500)
			return
		}
		c.JSON(200, status)
	})
}
