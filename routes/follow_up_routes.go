package routes

import (
	"github.com/BerniceZTT/followup_end/controllers"
	"github.com/BerniceZTT/followup_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterFollowUpRoutes 注册跟进记录相关路由
func RegisterFollowUpRoutes(router *gin.Engine, followUps *controllers.FollowUpController, reminders *controllers.ReminderController) {
	followUpGroup := router.Group("/api/followUps")
	followUpGroup.Use(middleware.AuthMiddleware())

	// 创建跟进记录
	followUpGroup.POST("", followUps.Create)

	// 批量状态流转
	followUpGroup.POST("/markSent", followUps.MarkSent)
	followUpGroup.POST("/logReply", followUps.LogReply)
	followUpGroup.POST("/close", followUps.Close)

	// 获取某个客户的跟进记录列表
	followUpGroup.GET("/customer/:customerId", followUps.ListByCustomer)

	// 单条记录读取与更新
	followUpGroup.GET("/:id", followUps.Get)
	followUpGroup.PUT("/:id", followUps.Update)

	// 沟通日志与提醒活动
	followUpGroup.GET("/:id/messages", followUps.ListMessages)
	followUpGroup.GET("/:id/activities", reminders.ListFollowUpActivities)
}
