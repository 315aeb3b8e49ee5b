package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"recruitdash/config"
	"recruitdash/controllers"
	"recruitdash/database"
	"recruitdash/middleware"
	"recruitdash/models"
	"recruitdash/services"
	"recruitdash/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := utils.NewLogger("main")
	cfg := config.GetAppConfig()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	gateway := services.NewGatewayService(cfg.BackendAPIURL)
	jwtService := services.NewJWTService(cfg.JWTSecret)

	jdUpload, err := services.NewJDUploadService()
	if err != nil {
		logger.Warn("JD upload disabled", map[string]interface{}{"reason": err.Error()})
		jdUpload = nil
	}

	jobController := controllers.NewJobController(gateway, jdUpload, cfg.SiteOrigin)
	reportController := controllers.NewReportController(models.NewReportRecordModel(db))

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.SiteOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.MaxRequestSize(12 << 20))
	r.Use(middleware.ValidateJSON())
	r.Use(middleware.SanitizeInput())

	limiters := middleware.CreateRateLimiters()
	filtersCache := middleware.NewResponseCache(5 * time.Minute)

	api := r.Group("/api")
	api.Use(middleware.RequireRecruiter(jwtService))
	api.Use(limiters["general"].Limit())
	{
		jobs := api.Group("/jobs")
		{
			jobs.GET("/filters", filtersCache.Cache(), jobController.GetCreationFilters)
			jobs.GET("/draft", jobController.NewDraft)
			jobs.POST("/draft/skills", jobController.UpdateSkills)
			jobs.POST("/skills", jobController.AddSkill)
			jobs.POST("/sections", jobController.AddSection)
			jobs.POST("/sections/remove", jobController.RemoveSection)
			jobs.POST("/topics", jobController.GetTopics)
			jobs.POST("", limiters["submit"].Limit(), jobController.SubmitJob)
			jobs.POST("/jd", limiters["upload"].Limit(), jobController.UploadJD)
			jobs.POST("/jd/document", jobController.DownloadJDDocument)
			jobs.GET("/:preInterviewId", jobController.HydrateDraft)
			jobs.POST("/:preInterviewId/publish", jobController.Publish)
			jobs.DELETE("/:preInterviewId", jobController.DeleteJob)
			jobs.GET("/:preInterviewId/corporate", jobController.GetAssociatedCorporate)
			jobs.POST("/:preInterviewId/corporate", jobController.AssociateCorporate)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/records", reportController.GetRecords)
			reports.GET("", reportController.GetReport)
			reports.GET("/csv", reportController.DownloadCSV)
		}
	}

	logger.Info("Server starting", map[string]interface{}{"port": cfg.Port})
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
