package handlers

import (
	"net/http"
	"sync"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "portal backend running"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database unreachable: " + err.Error()})
		return
	}

	tables := gin.H{}
	for _, t := range []string{"users", "assignments", "zp_reports", "price_list_items"} {
		tables[t] = intdb.HasTable(intconfig.DB, t)
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "database connection OK",
		"tables":  tables,
		// the calculation column arrived with the compensation engine
		"calculation_column": intdb.HasColumn(intconfig.DB, "zp_reports", "calculation"),
	})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
