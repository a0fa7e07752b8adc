package handlers

import (
	"net/http"
	"time"

	"backend/internal/domain"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret = []byte("super-secret-key-change-me")

// SetJWTSecret overrides the signing key; called once from router setup.
func SetJWTSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// JWTSecret exposes the active signing key to the auth middleware.
func JWTSecret() []byte {
	return jwtSecret
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	user, err := repo.GetByLogin(req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "wrong email/username or password", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "wrong email/username or password", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user,
	})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	ctx, ok := AuthedUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": ctx})
}
