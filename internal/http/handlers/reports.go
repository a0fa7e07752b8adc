package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func reportService(c *gin.Context) services.ReportService {
	reqID := middleware.GetRequestID(c)
	return services.ReportService{
		Reports:     repositories.ReportRepository{},
		Assignments: repositories.AssignmentRepository{},
		PriceSvc:    services.PriceListService{Repo: repositories.PriceListRepository{}, RequestID: reqID},
		RequestID:   reqID,
	}
}

// GET /api/assignments/:id/report
func GetReport(c *gin.Context) {
	ctx, ok := AuthedUser(c)
	if !ok {
		return
	}
	id, ok := PathID(c)
	if !ok {
		return
	}

	rep, err := reportService(c).Get(id, int64(ctx.UserID))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": rep})
}

// POST /api/assignments/:id/report
func SaveReport(c *gin.Context) {
	ctx, ok := AuthedUser(c)
	if !ok {
		return
	}
	id, ok := PathID(c)
	if !ok {
		return
	}

	var input services.ReportInput
	if !BindJSONOrError(c, &input) {
		return
	}

	rep, err := reportService(c).SaveDraft(id, int64(ctx.UserID), input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": rep})
}

// POST /api/assignments/:id/report/submit
func SubmitReport(c *gin.Context) {
	ctx, ok := AuthedUser(c)
	if !ok {
		return
	}
	id, ok := PathID(c)
	if !ok {
		return
	}

	res, rep, err := reportService(c).Submit(id, int64(ctx.UserID))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !res.OK {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"ok":         false,
			"reason":     res.Reason,
			"request_id": middleware.GetRequestID(c),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "report": rep})
}

// PUT /api/reports/:id/approve
func ApproveReport(c *gin.Context) {
	reviewReport(c, true)
}

// PUT /api/reports/:id/reject
func RejectReport(c *gin.Context) {
	reviewReport(c, false)
}

func reviewReport(c *gin.Context, approve bool) {
	if _, ok := AuthedUser(c); !ok {
		return
	}
	id, ok := PathID(c)
	if !ok {
		return
	}

	rep, err := reportService(c).Review(id, approve)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": rep})
}

// GET /api/reports?state=submitted (review side)
func GetReportsByState(c *gin.Context) {
	if _, ok := AuthedUser(c); !ok {
		return
	}
	state := c.DefaultQuery("state", "submitted")

	repo := repositories.ReportRepository{}
	list, err := repo.ListByState(state)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": list})
}
