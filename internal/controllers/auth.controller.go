package controllers

import (
	"crypto/subtle"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Admin login
// @Description Exchange admin credentials for a session token used on mutating article routes
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Admin credentials"
// @Success 200 {object} map[string]interface{} "Session token"
// @Failure 400 {object} map[string]interface{} "Missing credentials"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Username and password are required",
			"error":   err.Error(),
		})
		return
	}

	adminUser := os.Getenv("ADMIN_USERNAME")
	if adminUser == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Admin login is not configured",
			"error":   "ADMIN_USERNAME is not set",
		})
		return
	}

	if !credentialsMatch(adminUser, req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Username or password is incorrect",
		})
		return
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET_KEY"))
	if len(jwtSecret) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Admin login is not configured",
			"error":   "JWT_SECRET_KEY is not set",
		})
		return
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": req.Username,
		"role":     "admin",
		"exp":      time.Now().Add(time.Hour * 72).Unix(),
	})

	tokenString, err := jwtToken.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"data":    tokenString,
	})
}

// credentialsMatch compares against ADMIN_PASSWORD_HASH (bcrypt) when set,
// falling back to a constant-time plain comparison with ADMIN_PASSWORD.
func credentialsMatch(adminUser, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(adminUser), []byte(username)) == 1

	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return userOK && bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	plain := os.Getenv("ADMIN_PASSWORD")
	if plain == "" {
		return false
	}
	return userOK && subtle.ConstantTimeCompare([]byte(plain), []byte(password)) == 1
}
