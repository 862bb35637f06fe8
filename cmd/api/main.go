package main

import (
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/teampulse/teampulse-backend-go/internal/config"
	"github.com/teampulse/teampulse-backend-go/internal/domain/hierarchy"
	appHTTP "github.com/teampulse/teampulse-backend-go/internal/handler/http"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/database"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/jwt"
	"github.com/teampulse/teampulse-backend-go/internal/repository/postgresql"
	"github.com/teampulse/teampulse-backend-go/internal/repository/rediscache"
	accessService "github.com/teampulse/teampulse-backend-go/internal/service/access"
	achievementService "github.com/teampulse/teampulse-backend-go/internal/service/achievement"
	assessmentService "github.com/teampulse/teampulse-backend-go/internal/service/assessment"
	attendanceService "github.com/teampulse/teampulse-backend-go/internal/service/attendance"
	authService "github.com/teampulse/teampulse-backend-go/internal/service/auth"
	feedbackService "github.com/teampulse/teampulse-backend-go/internal/service/feedback"
	hierarchyService "github.com/teampulse/teampulse-backend-go/internal/service/hierarchy"
	performanceService "github.com/teampulse/teampulse-backend-go/internal/service/performance"
	teamService "github.com/teampulse/teampulse-backend-go/internal/service/team"
	ticketStatsService "github.com/teampulse/teampulse-backend-go/internal/service/ticketstats"
	userService "github.com/teampulse/teampulse-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	feedbackRepo := postgresql.NewFeedbackRepository(db)
	assessmentRepo := postgresql.NewAssessmentRepository(db)
	achievementRepo := postgresql.NewAchievementRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	statsRepo := postgresql.NewStatisticsRepository(db)

	var hierarchyStore hierarchy.Store = postgresql.NewHierarchyStore(db)
	var invalidator hierarchy.CacheInvalidator = hierarchy.NopInvalidator{}
	if cfg.Redis.CacheTTL > 0 {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cache := rediscache.NewHierarchyCache(hierarchyStore, redisClient, cfg.Redis.CacheTTL)
		hierarchyStore = cache
		invalidator = cache
	}

	resolver := hierarchyService.NewResolver(hierarchyStore)
	engine := accessService.NewEngine(resolver, hierarchyStore)
	guard := accessService.NewGuard(engine)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	teamSvc := teamService.NewTeamService(resolver, guard)
	userSvc := userService.NewUserService(userRepo, resolver, guard, invalidator)
	feedbackSvc := feedbackService.NewFeedbackService(feedbackRepo, hierarchyStore, guard)
	assessmentSvc := assessmentService.NewAssessmentService(assessmentRepo, guard)
	achievementSvc := achievementService.NewAchievementService(achievementRepo, guard)
	reviewSvc := performanceService.NewReviewService(reviewRepo, guard)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, guard)
	statsSvc := ticketStatsService.NewStatisticsService(statsRepo, guard)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	teamHandler := appHTTP.NewTeamHandler(teamSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	feedbackHandler := appHTTP.NewFeedbackHandler(feedbackSvc)
	assessmentHandler := appHTTP.NewAssessmentHandler(assessmentSvc)
	achievementHandler := appHTTP.NewAchievementHandler(achievementSvc)
	performanceHandler := appHTTP.NewPerformanceHandler(reviewSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	ticketStatsHandler := appHTTP.NewTicketStatsHandler(statsSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		jwtService,
		authHandler,
		teamHandler,
		userHandler,
		feedbackHandler,
		assessmentHandler,
		achievementHandler,
		performanceHandler,
		attendanceHandler,
		ticketStatsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
