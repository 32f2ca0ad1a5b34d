package api

import (
	"errors"
	"net/http"

	reqdto "residesk/internal/handler/dto/request"
	resdto "residesk/internal/handler/dto/response"
	"residesk/internal/handler/middleware"
	"residesk/internal/usecase/commands"
	"residesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VisitorHandler struct {
	visitorCommands commands.VisitorCommands
	visitorQueries  queries.VisitorQueries
}

func NewVisitorHandler(visitorCommands commands.VisitorCommands, visitorQueries queries.VisitorQueries) *VisitorHandler {
	return &VisitorHandler{
		visitorCommands: visitorCommands,
		visitorQueries:  visitorQueries,
	}
}

// @Summary Create visitor pass
// @Description Register an expected visitor with a QR and numeric code
// @Tags visitors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVisitorRequest true "Visitor"
// @Success 201 {object} resdto.VisitorResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /visitors [post]
func (h *VisitorHandler) Create(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.visitorCommands.CreatePass(c.Request.Context(), commands.CreatePassParams{
		VisitorName: req.Name,
		Contact:     req.Contact,
		Purpose:     req.Purpose,
		FlatNumber:  req.FlatNumber,
		ValidFrom:   req.StartTime,
		ValidTo:     req.EndTime,
		QRCode:      req.QRCode,
		NumericCode: req.NumericCode,
	}, hostID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPassValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid visitor pass data",
			})
		case errors.Is(err, commands.ErrDuplicatePass):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Pass code already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromVisitorPassView(view))
}

// @Summary Validate visitor pass
// @Description Consume a pass by QR or numeric code; a pass validates at most once
// @Tags visitors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateVisitorRequest true "Code"
// @Success 200 {object} resdto.ValidateVisitorResponse
// @Failure 400 {object} map[string]string
// @Router /visitors/validate [post]
func (h *VisitorHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.visitorCommands.ValidatePass(c.Request.Context(), req.QRCode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if !result.Accepted {
		c.JSON(http.StatusOK, resdto.ValidateVisitorResponse{
			Expired: true,
			Reason:  result.Reason,
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ValidateVisitorResponse{
		Expired: false,
		Visitor: resdto.FromVisitorPassView(result.Visitor),
	})
}

// @Summary List my visitor passes
// @Description Passes created by the authenticated resident
// @Tags visitors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VisitorResponse
// @Router /visitors [get]
func (h *VisitorHandler) ListMine(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.visitorQueries.ListMyPasses(c.Request.Context(), hostID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVisitorPassViews(views))
}

// @Summary List scanned passes
// @Description Passes already consumed at the gate
// @Tags visitors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VisitorResponse
// @Router /visitors/scanned [get]
func (h *VisitorHandler) ListScanned(c *gin.Context) {
	views, err := h.visitorQueries.ListScanned(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVisitorPassViews(views))
}

// @Summary Visitor logs
// @Description Full pass history across all residents
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VisitorResponse
// @Router /admin/visitor-logs [get]
func (h *VisitorHandler) ListLogs(c *gin.Context) {
	views, err := h.visitorQueries.ListLogs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVisitorPassViews(views))
}
