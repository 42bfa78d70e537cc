package controllers

import (
	"strings"
	"time"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RegistrationData holds the pending registration kept in the session until
// the OTP is verified. Registered with gob in main for session serialization.
type RegistrationData struct {
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	OTP          string
	OTPExpiresAt time.Time
}

// RegisterUser validates the signup form, emails an OTP and parks the
// registration in the session. The user row is created on OTP verification.
func RegisterUser(c *gin.Context) {
	utils.LogInfo("RegisterUser called")

	var req struct {
		Username  string `json:"username" binding:"required"`
		Email     string `json:"email" binding:"required"`
		Password  string `json:"password" binding:"required"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid registration request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.IsValidEmail(req.Email) {
		utils.BadRequest(c, "Invalid email format", nil)
		return
	}
	if !utils.IsValidPassword(req.Password) {
		utils.BadRequest(c, "Password must be at least 8 characters with upper, lower and digit", nil)
		return
	}
	if req.Phone != "" && !utils.IsValidPhone(req.Phone) {
		utils.BadRequest(c, "Invalid phone number format", nil)
		return
	}

	// Reject duplicates before sending an OTP
	var existing models.User
	if err := config.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error; err == nil {
		utils.LogError("Registration attempted with existing email/username: %s", req.Email)
		utils.Conflict(c, "Email or username already registered", nil)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to process registration", nil)
		return
	}

	otp := utils.GenerateOTP()
	regData := RegistrationData{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		OTP:          otp,
		OTPExpiresAt: time.Now().Add(15 * time.Minute),
	}

	session := sessions.Default(c)
	session.Set("registration", regData)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save registration session: %v", err)
		utils.InternalServerError(c, "Failed to process registration", nil)
		return
	}

	if err := utils.SendOTP(req.Email, otp); err != nil {
		utils.LogError("Failed to send OTP to %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to send OTP email", nil)
		return
	}

	utils.LogInfo("Registration OTP sent to %s", req.Email)
	utils.Success(c, "OTP sent to your email. Verify to complete registration.", gin.H{
		"email": req.Email,
	})
}

// VerifyOTP completes registration once the emailed OTP matches.
func VerifyOTP(c *gin.Context) {
	utils.LogInfo("VerifyOTP called")

	var req struct {
		OTP string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	session := sessions.Default(c)
	regVal := session.Get("registration")
	if regVal == nil {
		utils.BadRequest(c, "No pending registration found. Please register again.", nil)
		return
	}
	regData, ok := regVal.(RegistrationData)
	if !ok {
		utils.BadRequest(c, "Invalid registration session. Please register again.", nil)
		return
	}

	if time.Now().After(regData.OTPExpiresAt) {
		utils.BadRequest(c, "OTP has expired. Please register again.", nil)
		return
	}
	if regData.OTP != req.OTP {
		utils.LogError("OTP mismatch for %s", regData.Email)
		utils.BadRequest(c, "Invalid OTP", nil)
		return
	}

	user := models.User{
		Username:   regData.Username,
		Email:      regData.Email,
		Password:   regData.PasswordHash,
		FirstName:  regData.FirstName,
		LastName:   regData.LastName,
		Phone:      regData.Phone,
		IsVerified: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user %s: %v", regData.Email, err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	session.Delete("registration")
	session.Save()

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Account created but login failed. Please login.", nil)
		return
	}

	utils.LogInfo("User %d registered and verified", user.ID)
	utils.Created(c, "Registration successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// LoginUser authenticates with email and password.
func LoginUser(c *gin.Context) {
	utils.LogInfo("LoginUser called")

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
		utils.LogError("Login attempt for unknown email: %s", req.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Invalid password for user %d", user.ID)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}
	if user.IsBlocked {
		utils.Forbidden(c, utils.ErrUserBlocked)
		return
	}
	if !user.IsVerified {
		utils.Forbidden(c, "Please verify your email before logging in")
		return
	}

	config.DB.Model(&user).Update("last_login_at", time.Now())

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User %d logged in", user.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"is_admin":   user.IsAdmin,
		},
	})
}

// LogoutUser blacklists the presented token until its natural expiry.
func LogoutUser(c *gin.Context) {
	utils.LogInfo("LogoutUser called")

	authHeader := c.GetHeader("Authorization")
	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
	if tokenString == "" {
		utils.BadRequest(c, "No token provided", nil)
		return
	}

	blacklisted := models.BlacklistedToken{
		Token:     tokenString,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := config.DB.Create(&blacklisted).Error; err != nil {
		utils.LogError("Failed to blacklist token: %v", err)
		utils.InternalServerError(c, "Failed to logout", nil)
		return
	}

	utils.Success(c, "Logout successful", nil)
}
