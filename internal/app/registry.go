package app

import (
	"github.com/IonixCH/hris-api/internal/attendance"
	"github.com/IonixCH/hris-api/internal/auth"
	"github.com/IonixCH/hris-api/internal/company"
	"github.com/IonixCH/hris-api/internal/department"
	"github.com/IonixCH/hris-api/internal/elearning"
	"github.com/IonixCH/hris-api/internal/employee"
	"github.com/IonixCH/hris-api/internal/health"
	"github.com/IonixCH/hris-api/internal/leave"
	"github.com/IonixCH/hris-api/internal/messaging/kafka"
	"github.com/IonixCH/hris-api/internal/overtime"
	"github.com/IonixCH/hris-api/internal/resignation"
	"github.com/IonixCH/hris-api/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	sessions session.Store,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	elearningRepo := elearning.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	overtimeRepo := overtime.NewRepository(gormDB)
	resignationRepo := resignation.NewRepository(gormDB)

	// --- Services ---
	companyService := company.NewService(companyRepo)
	employeeService := employee.NewService(gormDB, employeeRepo, outboxRepo)
	authService := auth.NewService(gormDB, authRepo, employeeService, sessions)
	attendanceService := attendance.NewService(
		gormDB,
		attendanceRepo,
		employeeService,
		companyService,
		outboxRepo,
		attendance.WithRadius(attendanceRadiusMeters()),
	)
	leaveService := leave.NewService(gormDB, leaveRepo, employeeService)
	overtimeService := overtime.NewService(overtimeRepo, employeeService)
	resignationService := resignation.NewService(gormDB, resignationRepo, employeeService)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	companyHandler := company.NewHandler(companyService)
	departmentHandler := department.NewHandler(departmentRepo)
	elearningHandler := elearning.NewHandler(elearningRepo)
	healthHandler := health.NewHandler(gormDB, sessions)
	leaveHandler := leave.NewHandler(leaveService)
	overtimeHandler := overtime.NewHandler(overtimeService)
	resignationHandler := resignation.NewHandler(resignationService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		health.RegisterRoutes(api, healthHandler)
		auth.RegisterRoutes(api, authHandler, sessions)
		attendance.RegisterRoutes(api, attendanceHandler, sessions, rdb)
		company.RegisterRoutes(api, companyHandler, sessions)
		department.RegisterRoutes(api, departmentHandler)
		elearning.RegisterRoutes(api, elearningHandler)
		leave.RegisterRoutes(api, leaveHandler, sessions, rdb)
		overtime.RegisterRoutes(api, overtimeHandler, sessions)
		resignation.RegisterRoutes(api, resignationHandler, sessions)
	}

	return nil
}
