package routes

import (
	"github.com/BerniceZTT/followup_end/controllers"
	"github.com/BerniceZTT/followup_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterReminderRoutes 注册提醒扫描相关路由
func RegisterReminderRoutes(router *gin.Engine, reminders *controllers.ReminderController) {
	reminderGroup := router.Group("/api/reminders")
	reminderGroup.Use(middleware.AuthMiddleware())

	// 手动触发一次扫描
	reminderGroup.POST("/scan", reminders.TriggerScan)
}
