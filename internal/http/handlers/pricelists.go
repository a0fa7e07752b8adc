package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/price-lists?date=YYYY-MM-DD
func GetPriceList(c *gin.Context) {
	svc := services.PriceListService{
		Repo:      repositories.PriceListRepository{},
		RequestID: middleware.GetRequestID(c),
	}

	list, err := svc.GetForDate(c.Query("date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
