package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cmlabs-hris/absensi-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/absensi-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/ratelimit"
	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/absensi-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/absensi-backend-go/internal/service/attendance"
	authService "github.com/cmlabs-hris/absensi-backend-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/absensi-backend-go/internal/service/employee"
	"github.com/cmlabs-hris/absensi-backend-go/internal/service/file"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)

	attendanceSvc, err := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		fileService,
		cfg.Attendance,
	)
	if err != nil {
		log.Fatal("Failed to initialize attendance service:", err)
	}

	authSvc := authService.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)

	var limiter *ratelimit.Limiter
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = ratelimit.NewLimiter(redisClient, "absensi:ratelimit", cfg.Redis.RateLimitPerMin, time.Minute)
	}

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		Config:            cfg,
		JWTService:        JWTService,
		AuthHandler:       appHTTP.NewAuthHandler(authSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		EmployeeHandler:   appHTTP.NewEmployeeHandler(employeeSvc),
		Limiter:           limiter,
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
