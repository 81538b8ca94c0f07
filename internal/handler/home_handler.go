package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"homefinder/internal/middleware"
	"homefinder/internal/model"
	"homefinder/internal/service"

	"github.com/gin-gonic/gin"
)

// HomeHandler handles listing and inquiry requests
type HomeHandler struct {
	homes     service.HomeService
	inquiries service.InquiryService
	guard     *service.AccessGuard
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(homes service.HomeService, inquiries service.InquiryService, guard *service.AccessGuard) *HomeHandler {
	return &HomeHandler{homes: homes, inquiries: inquiries, guard: guard}
}

// Helper to get authenticated user ID from context
func getAuthUserID(c *gin.Context) (int, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}

// Maps guard/service failures shared by the ownership-protected routes.
func respondGuardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHomeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Printf("Error checking home ownership: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify home ownership"})
	}
}

func (h *HomeHandler) SearchHomes(c *gin.Context) {
	var filters model.HomeFilters
	if city := c.Query("city"); city != "" {
		filters.City = &city
	}
	if minPriceParam := c.Query("minPrice"); minPriceParam != "" {
		minPrice, err := strconv.ParseFloat(minPriceParam, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
			return
		}
		filters.MinPrice = &minPrice
	}
	if maxPriceParam := c.Query("maxPrice"); maxPriceParam != "" {
		maxPrice, err := strconv.ParseFloat(maxPriceParam, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
			return
		}
		filters.MaxPrice = &maxPrice
	}
	if propertyType := c.Query("propertyType"); propertyType != "" {
		if propertyType != model.PropertyTypeResidential && propertyType != model.PropertyTypeCondo {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid propertyType"})
			return
		}
		filters.PropertyType = &propertyType
	}

	homes, err := h.homes.Search(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, service.ErrHomeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error searching homes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search homes"})
		return
	}
	c.JSON(http.StatusOK, homes)
}

func (h *HomeHandler) GetHomeByID(c *gin.Context) {
	homeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid home ID"})
		return
	}

	home, err := h.homes.GetByID(c.Request.Context(), homeID)
	if err != nil {
		if errors.Is(err, service.ErrHomeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error getting home by ID: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve home"})
		return
	}
	c.JSON(http.StatusOK, home)
}

func (h *HomeHandler) CreateHome(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateHomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	home, err := h.homes.Create(c.Request.Context(), req, userID)
	if err != nil {
		log.Printf("Error creating home: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create home"})
		return
	}
	c.JSON(http.StatusCreated, home)
}

func (h *HomeHandler) UpdateHome(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	homeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid home ID"})
		return
	}

	if err := h.guard.CheckOwnership(c.Request.Context(), homeID, userID); err != nil {
		respondGuardError(c, err)
		return
	}

	var req model.UpdateHomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	home, err := h.homes.Update(c.Request.Context(), homeID, req)
	if err != nil {
		if errors.Is(err, service.ErrHomeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error updating home: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update home"})
		return
	}
	c.JSON(http.StatusOK, home)
}

func (h *HomeHandler) DeleteHome(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	homeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid home ID"})
		return
	}

	if err := h.guard.CheckOwnership(c.Request.Context(), homeID, userID); err != nil {
		respondGuardError(c, err)
		return
	}

	if err := h.homes.Delete(c.Request.Context(), homeID); err != nil {
		if errors.Is(err, service.ErrHomeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error deleting home: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete home"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Home deleted successfully"})
}

func (h *HomeHandler) Inquire(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	homeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid home ID"})
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	message, err := h.inquiries.Inquire(c.Request.Context(), userID, homeID, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrHomeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating inquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send inquiry"})
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *HomeHandler) GetHomeMessages(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	homeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid home ID"})
		return
	}

	if err := h.guard.CheckOwnership(c.Request.Context(), homeID, userID); err != nil {
		respondGuardError(c, err)
		return
	}

	messages, err := h.inquiries.ListByHome(c.Request.Context(), homeID)
	if err != nil {
		log.Printf("Error listing home messages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// RegisterHomeRoutes registers home routes
func (h *HomeHandler) RegisterHomeRoutes(rg *gin.RouterGroup, jwtAuthMW, realtorMW, buyerMW gin.HandlerFunc) {
	homeGroup := rg.Group("/home")
	{
		homeGroup.GET("", h.SearchHomes)
		homeGroup.GET("/:id", h.GetHomeByID)
		homeGroup.POST("", jwtAuthMW, realtorMW, h.CreateHome)
		homeGroup.PUT("/:id", jwtAuthMW, realtorMW, h.UpdateHome)
		homeGroup.DELETE("/:id", jwtAuthMW, realtorMW, h.DeleteHome)
		homeGroup.POST("/:id/inquire", jwtAuthMW, buyerMW, h.Inquire)
		homeGroup.GET("/:id/messages", jwtAuthMW, realtorMW, h.GetHomeMessages)
	}
}
