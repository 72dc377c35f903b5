package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"loon-backend/config"
	"loon-backend/models"
	"loon-backend/utils"
)

type UserSignUpInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	City      string `json:"city" binding:"required"`
	District  string `json:"district" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required,min=8"`
}

type SalonSignUpInput struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Price        float64 `json:"price" binding:"required,min=0"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8"`
	ProfileImage string  `json:"profileImage"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignUpUser registers a booking customer.
func SignUpUser(c *gin.Context) {
	var input UserSignUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	if emailTaken(email) {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	}

	newUser := models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		City:      input.City,
		District:  input.District,
		Email:     email,
		Phone:     input.Phone,
		Password:  input.Password, // Will be hashed in BeforeCreate hook
	}

	if err := config.DB.Create(&newUser).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := utils.GenerateToken(newUser.ID.String(), utils.AccountTypeUser)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Registration successful",
		"token":       token,
		"accountType": utils.AccountTypeUser,
		"user": gin.H{
			"id":        newUser.ID,
			"firstName": newUser.FirstName,
			"lastName":  newUser.LastName,
			"email":     newUser.Email,
		},
	})
}

// SignUpSalon registers a salon owner. The service row is keyed by the new
// account id, so the account id and the service id are the same value.
func SignUpSalon(c *gin.Context) {
	var input SalonSignUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	if emailTaken(email) {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	}

	salon := models.Service{
		Name:         input.Name,
		Category:     input.Category,
		Price:        input.Price,
		Email:        email,
		Password:     input.Password, // Will be hashed in BeforeCreate hook
		ProfileImage: input.ProfileImage,
	}

	if err := config.DB.Create(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create salon")
		return
	}

	token, err := utils.GenerateToken(salon.ID.String(), utils.AccountTypeSalon)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Registration successful",
		"token":       token,
		"accountType": utils.AccountTypeSalon,
		"salon": gin.H{
			"id":       salon.ID,
			"name":     salon.Name,
			"category": salon.Category,
			"email":    salon.Email,
		},
	})
}

// Login authenticates either account kind. The account type in the response
// tells the client which home screen to route to.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		if !utils.CheckPasswordHash(input.Password, user.Password) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		issueToken(c, user.ID, utils.AccountTypeUser, gin.H{
			"id":        user.ID,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"email":     user.Email,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var salon models.Service
	err = config.DB.Where("email = ?", email).First(&salon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	if !utils.CheckPasswordHash(input.Password, salon.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	issueToken(c, salon.ID, utils.AccountTypeSalon, gin.H{
		"id":       salon.ID,
		"name":     salon.Name,
		"category": salon.Category,
		"email":    salon.Email,
	})
}

func Me(c *gin.Context) {
	accountID, exists := c.Get("accountId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "Account ID not found in context")
		return
	}
	accountType, _ := c.Get("accountType")

	if accountType == utils.AccountTypeSalon {
		var salon models.Service
		if err := config.DB.First(&salon, "id = ?", accountID).Error; err != nil {
			utils.RespondWithError(c, http.StatusUnauthorized, "Account not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"accountType": utils.AccountTypeSalon,
			"salon": gin.H{
				"id":       salon.ID,
				"name":     salon.Name,
				"category": salon.Category,
				"email":    salon.Email,
			},
		})
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", accountID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"accountType": utils.AccountTypeUser,
		"user": gin.H{
			"id":        user.ID,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"city":      user.City,
			"district":  user.District,
			"email":     user.Email,
		},
	})
}

func issueToken(c *gin.Context, accountID uuid.UUID, accountType string, account gin.H) {
	token, err := utils.GenerateToken(accountID.String(), accountType)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	body := gin.H{"token": token, "accountType": accountType}
	if accountType == utils.AccountTypeSalon {
		body["salon"] = account
	} else {
		body["user"] = account
	}
	c.JSON(http.StatusOK, body)
}

// emailTaken checks both account tables: a single email identifies exactly one
// account, customer or salon.
func emailTaken(email string) bool {
	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return true
	}
	config.DB.Model(&models.Service{}).Where("email = ?", email).Count(&count)
	return count > 0
}
