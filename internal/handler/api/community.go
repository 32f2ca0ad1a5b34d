package api

import (
	"errors"
	"net/http"

	"residesk/internal/domain/household"
	reqdto "residesk/internal/handler/dto/request"
	resdto "residesk/internal/handler/dto/response"
	"residesk/internal/handler/middleware"
	"residesk/internal/usecase/commands"
	"residesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommunityHandler struct {
	communityCommands commands.CommunityCommands
	communityQueries  queries.CommunityQueries
}

func NewCommunityHandler(communityCommands commands.CommunityCommands, communityQueries queries.CommunityQueries) *CommunityHandler {
	return &CommunityHandler{
		communityCommands: communityCommands,
		communityQueries:  communityQueries,
	}
}

// @Summary Raise complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateComplaintRequest true "Complaint"
// @Success 201 {object} resdto.ComplaintResponse
// @Failure 400 {object} map[string]string
// @Router /chat/complaints [post]
func (h *CommunityHandler) CreateComplaint(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.communityCommands.RaiseComplaint(c.Request.Context(), userID, req.Subject, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidForm):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Subject and message are required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromComplaintView(view))
}

// @Summary My complaints
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ComplaintResponse
// @Router /chat/complaints [get]
func (h *CommunityHandler) ListMyComplaints(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.communityQueries.ListMyComplaints(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromComplaintViews(views))
}

// @Summary All complaints
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ComplaintResponse
// @Router /admin/complaints [get]
func (h *CommunityHandler) ListAllComplaints(c *gin.Context) {
	views, err := h.communityQueries.ListAllComplaints(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromComplaintViews(views))
}

// @Summary Update complaint status
// @Description Move a complaint forward; resolved complaints are terminal
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body reqdto.UpdateComplaintStatusRequest true "Status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /chat/admin/complaints/{id}/status [put]
func (h *CommunityHandler) UpdateComplaintStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid complaint ID format",
		})
		return
	}

	var req reqdto.UpdateComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.communityCommands.UpdateComplaintStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidStatusValue):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status",
			})
		case errors.Is(err, commands.ErrComplaintNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Complaint not found",
			})
		case errors.Is(err, commands.ErrComplaintTerminal):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Complaint already resolved",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// @Summary List announcements
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AnnouncementResponse
// @Router /announcements [get]
func (h *CommunityHandler) ListAnnouncements(c *gin.Context) {
	views, err := h.communityQueries.ListAnnouncements(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAnnouncementViews(views))
}

// @Summary Create announcement
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} resdto.AnnouncementResponse
// @Failure 400 {object} map[string]string
// @Router /announcements [post]
func (h *CommunityHandler) CreateAnnouncement(c *gin.Context) {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.communityCommands.CreateAnnouncement(c.Request.Context(), authorID, req.Title, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidForm):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Title and body are required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAnnouncementView(view))
}

// @Summary List marketplace items
// @Tags marketplace
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ListingResponse
// @Router /marketplace [get]
func (h *CommunityHandler) ListListings(c *gin.Context) {
	views, err := h.communityQueries.ListListings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Add marketplace item
// @Tags marketplace
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Listing"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Router /marketplace/add [post]
func (h *CommunityHandler) CreateListing(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.communityCommands.CreateListing(c.Request.Context(), sellerID, commands.CreateListingParams{
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Contact:     req.Contact,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidForm):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid listing data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromListingView(view))
}

// @Summary Get profile
// @Description The user profile plus household entries
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Router /profile/me [get]
func (h *CommunityHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.communityQueries.GetProfile(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
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

	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}

// AddFamilyMember handles POST /profile/family.
func (h *CommunityHandler) AddFamilyMember(c *gin.Context) {
	var req reqdto.FamilyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	h.addHouseholdEntry(c, household.FamilyMemberForm{
		Name:     req.Name,
		Relation: req.Relation,
		Phone:    req.Phone,
		Email:    req.Email,
	})
}

// AddVehicle handles POST /profile/vehicles.
func (h *CommunityHandler) AddVehicle(c *gin.Context) {
	var req reqdto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	h.addHouseholdEntry(c, household.VehicleForm{
		Model:       req.Model,
		PlateNumber: req.PlateNumber,
		ParkingSlot: req.ParkingSlot,
	})
}

// AddPet handles POST /profile/pets.
func (h *CommunityHandler) AddPet(c *gin.Context) {
	var req reqdto.PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	h.addHouseholdEntry(c, household.PetForm{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
	})
}

// AddDailyHelp handles POST /profile/daily-help.
func (h *CommunityHandler) AddDailyHelp(c *gin.Context) {
	var req reqdto.DailyHelpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	h.addHouseholdEntry(c, household.DailyHelpForm{
		Name:    req.Name,
		Service: req.Service,
		Phone:   req.Phone,
		Timing:  req.Timing,
	})
}

// AddAddress handles POST /profile/address.
func (h *CommunityHandler) AddAddress(c *gin.Context) {
	var req reqdto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	h.addHouseholdEntry(c, household.AddressForm{
		Line1:   req.Line1,
		Line2:   req.Line2,
		City:    req.City,
		Pincode: req.Pincode,
	})
}

func (h *CommunityHandler) addHouseholdEntry(c *gin.Context, form household.Form) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.communityCommands.AddHouseholdEntry(c.Request.Context(), userID, form)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidForm):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Required fields missing",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHouseholdEntryView(view))
}
