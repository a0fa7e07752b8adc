package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.Auth(h.JWTSecret()), h.Me)

		authed := api.Group("")
		authed.Use(middleware.Auth(h.JWTSecret()))

		// Assignments and the caller's report
		assignments := authed.Group("/assignments")
		assignments.GET("", h.GetAssignments)
		assignments.GET("/:id", h.GetAssignmentByID)
		assignments.GET("/:id/report", h.GetReport)
		assignments.POST("/:id/report", h.SaveReport)
		assignments.POST("/:id/report/submit", h.SubmitReport)

		// Review side
		reports := authed.Group("/reports")
		reports.GET("", middleware.RequireRoles("admin", "reviewer"), h.GetReportsByState)
		reports.PUT("/:id/approve", middleware.RequireRoles("admin", "reviewer"), h.ApproveReport)
		reports.PUT("/:id/reject", middleware.RequireRoles("admin", "reviewer"), h.RejectReport)

		// Price lists
		authed.GET("/price-lists", h.GetPriceList)
	}

	h.SetRouter(r)
	return r
}
