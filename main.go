package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerniceZTT/followup_end/config"
	"github.com/BerniceZTT/followup_end/controllers"
	"github.com/BerniceZTT/followup_end/middleware"
	"github.com/BerniceZTT/followup_end/repository"
	"github.com/BerniceZTT/followup_end/routes"
	"github.com/BerniceZTT/followup_end/service"
	"github.com/BerniceZTT/followup_end/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 初始化日志
	utils.InitLogger()

	// 加载配置
	cfg := config.LoadConfig()

	// 设置Gin模式
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化数据库
	if err := repository.InitMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		utils.Logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	defer repository.CloseMongoDB()

	// 组装存储、服务和控制器
	followUpRepo := repository.NewFollowUpRepository()
	activityRepo := repository.NewActivityRepository()
	messageRepo := repository.NewMessageRepository()

	followUpService := service.NewFollowUpService(followUpRepo, messageRepo)
	reminderService := service.NewReminderService(followUpRepo, activityRepo)

	followUpController := controllers.NewFollowUpController(followUpService)
	reminderController := controllers.NewReminderController(reminderService)

	// 创建Gin实例
	router := gin.New()

	// 应用中间件
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.OperationLoggerMiddleware())

	// 注册路由
	routes.RegisterRoutes(router, followUpController, reminderController)

	// 初始化系统数据
	utils.Logger.Info().Msg("开始系统初始化...")
	if err := repository.InitializeCollections(); err != nil {
		utils.Logger.Error().Err(err).Msg("初始化数据库集合失败")
	}
	if err := repository.InitializeActivityTypes(); err != nil {
		utils.Logger.Error().Err(err).Msg("初始化活动类型失败")
	}
	utils.Logger.Info().Msg("系统初始化完成")

	// 注册每日提醒扫描任务
	service.ScheduleDailyTaskAt(cfg.ReminderScanHour, cfg.ReminderScanMinute, 0, func() {
		if _, err := reminderService.RunScan(context.Background()); err != nil {
			utils.Logger.Error().Err(err).Msg("每日提醒扫描执行失败")
		}
	})
	utils.Logger.Info().Msgf("已注册每日提醒扫描任务: %02d:%02d", cfg.ReminderScanHour, cfg.ReminderScanMinute)

	// 设置HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 启动服务器
	go func() {
		utils.Logger.Info().Msgf("服务器启动，监听端口: %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal().Err(err).Msg("启动服务器失败")
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info().Msg("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal().Err(err).Msg("服务器关闭异常")
	}

	utils.Logger.Info().Msg("服务器已优雅关闭")
}
