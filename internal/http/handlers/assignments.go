package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func assignmentService(c *gin.Context) services.AssignmentService {
	return services.AssignmentService{
		Repo:      repositories.AssignmentRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/assignments
func GetAssignments(c *gin.Context) {
	ctx, ok := AuthedUser(c)
	if !ok {
		return
	}

	list, err := assignmentService(c).ListForUser(int64(ctx.UserID))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignments": list})
}

// GET /api/assignments/:id
func GetAssignmentByID(c *gin.Context) {
	ctx, ok := AuthedUser(c)
	if !ok {
		return
	}
	id, ok := PathID(c)
	if !ok {
		return
	}

	asg, err := assignmentService(c).GetForUser(id, int64(ctx.UserID))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignment": asg})
}
