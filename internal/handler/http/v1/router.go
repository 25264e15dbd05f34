package v1

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	emergencies := protected.Group("/emergencies")
	{
		emergencies.POST("", h.createEmergency)
		emergencies.GET("/pending", h.listPendingEmergencies)
		emergencies.GET("/stats", h.getStats)
		emergencies.GET("/:requestId", h.getEmergency)
		emergencies.GET("/:requestId/rejections", h.listEmergencyRejections)
		emergencies.DELETE("/:requestId", h.cancelEmergency)
		emergencies.PATCH("/:requestId/complete", h.completeEmergency)
		emergencies.POST("/:requestId/redispatch", h.redispatchEmergency)
	}

	protected.GET("/patients/:patientId/emergencies", h.listPatientEmergencies)

	doctors := protected.Group("/doctors")
	{
		doctors.GET("/available", h.listAvailableDoctors)
		doctors.GET("/:doctorId/availability", h.getAvailability)
		doctors.PUT("/:doctorId/availability", h.updateAvailability)
		doctors.GET("/:doctorId/emergencies", h.listDoctorEmergencies)
		doctors.GET("/:doctorId/emergencies/pending", h.listDoctorInbox)
		doctors.PATCH("/:doctorId/emergencies/:requestId/accept", h.acceptEmergency)
		doctors.PATCH("/:doctorId/emergencies/:requestId/reject", h.rejectEmergency)
	}
}

// NewRouter собирает gin-движок: recovery, CORS, swagger, /metrics и группа /api/v1.
// metricsHandler может быть nil.
func NewRouter(h *Handler, metricsHandler http.Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(h))

	if len(h.cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     h.cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	h.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func requestLogger(h *Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.FullPath(),
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		}).Debug("HTTP request")
	}
}
