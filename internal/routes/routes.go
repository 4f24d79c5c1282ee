package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	e.Use(middleware.InjectLogger(logger))

	// --- 1. РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn)
	teamRepo := repositories.NewTeamRepository(dbConn)
	categoryRepo := repositories.NewCategoryRepository(dbConn)
	notificationRepo := repositories.NewNotificationRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)

	// --- 2. СЕРВИСЫ ---
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, requestRepo, logger)
	requestService := services.NewRequestService(requestRepo, equipmentRepo, logger)
	boardService := services.NewBoardService(requestRepo, logger)
	teamService := services.NewTeamService(teamRepo, userRepo, logger)
	categoryService := services.NewCategoryService(categoryRepo)
	notificationService := services.NewNotificationService(notificationRepo, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, requestRepo, teamRepo, logger)
	reportService := services.NewReportService(equipmentRepo, logger)

	// --- 3. КОНТРОЛЛЕРЫ ---
	authCtrl := controllers.NewAuthController(authService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, requestService, logger)
	requestCtrl := controllers.NewRequestController(requestService, logger)
	boardCtrl := controllers.NewBoardController(boardService, logger)
	teamCtrl := controllers.NewTeamController(teamService, logger)
	categoryCtrl := controllers.NewCategoryController(categoryService, logger)
	notificationCtrl := controllers.NewNotificationController(notificationService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	// --- 4. РОУТЕРЫ ---
	authMW := middleware.NewAuthMiddleware(authService, logger)
	api := e.Group("/api", authMW.Auth)

	runAuthRouter(e, authCtrl, authMW)
	runEquipmentRouter(api, equipmentCtrl)
	runRequestRouter(api, requestCtrl)
	runBoardRouter(api, boardCtrl)
	runTeamRouter(api, teamCtrl)
	runCategoryRouter(api, categoryCtrl)
	runNotificationRouter(api, notificationCtrl)
	runDashboardRouter(api, dashboardCtrl)
	runReportRouter(api, reportCtrl)

	logger.Info("InitRouter: Маршруты успешно созданы")
}
