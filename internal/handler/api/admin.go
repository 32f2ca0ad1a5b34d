package api

import (
	"errors"
	"net/http"

	reqdto "residesk/internal/handler/dto/request"
	resdto "residesk/internal/handler/dto/response"
	"residesk/internal/usecase/commands"
	"residesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminCommands commands.AdminCommands
	userQueries   queries.UserQueries
}

func NewAdminHandler(adminCommands commands.AdminCommands, userQueries queries.UserQueries) *AdminHandler {
	return &AdminHandler{
		adminCommands: adminCommands,
		userQueries:   userQueries,
	}
}

// @Summary Pending residents
// @Description Residents awaiting approval
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Router /admin/pending-residents [get]
func (h *AdminHandler) ListPendingResidents(c *gin.Context) {
	views, err := h.userQueries.ListPendingResidents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

// @Summary Approve resident
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/approve-resident/{id} [put]
func (h *AdminHandler) ApproveResident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	if err := h.adminCommands.ApproveResident(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrResidentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resident not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resident approved"})
}

// @Summary List users
// @Description Users filtered by role
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter" default(resident)
// @Success 200 {array} resdto.UserResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	role := c.DefaultQuery("role", "resident")

	views, err := h.userQueries.ListUsers(c.Request.Context(), role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

// @Summary Delete user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	if err := h.adminCommands.DeleteUser(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrResidentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// @Summary Create amenity
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAmenityRequest true "Amenity"
// @Success 201 {object} resdto.AmenityResponse
// @Failure 400 {object} map[string]string
// @Router /admin/amenities [post]
func (h *AdminHandler) CreateAmenity(c *gin.Context) {
	var req reqdto.CreateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.adminCommands.CreateAmenity(c.Request.Context(), commands.CreateAmenityParams{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidAmenity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid amenity data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAmenityView(view))
}
