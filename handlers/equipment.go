package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	equipmentRepo "shramic/database/repository/equipment"
	"shramic/models"
	"shramic/services/dashboard"
	"shramic/services/listing"
	"shramic/utils"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler serves listing submission, public browse and the owner's
// status toggle.
type EquipmentHandler struct {
	ListingService   listing.Service
	DashboardService dashboard.Service
	Repo             equipmentRepo.EquipmentRepository
}

// NewEquipmentHandler creates a new EquipmentHandler instance.
func NewEquipmentHandler(listingSvc listing.Service, dashboardSvc dashboard.Service, repo equipmentRepo.EquipmentRepository) *EquipmentHandler {
	return &EquipmentHandler{ListingService: listingSvc, DashboardService: dashboardSvc, Repo: repo}
}

// SubmitHandler accepts the multipart submission: the draft fields plus the
// "images", "documents" and "video" file parts.
func (h *EquipmentHandler) SubmitHandler(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "Verify your phone number first.")
		return
	}

	var draft listing.Draft
	if err := c.ShouldBind(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid submission", err.Error())
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid submission", "Expected a multipart form with attachments.")
		return
	}

	media := listing.MediaBundle{
		Images:    mediaFiles(form.File["images"]),
		Documents: mediaFiles(form.File["documents"]),
	}
	if videos := mediaFiles(form.File["video"]); len(videos) > 0 {
		media.Video = &videos[0]
	}

	id, err := h.ListingService.Submit(c.Request.Context(), draft, media, identity)
	if err != nil {
		var verr *listing.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid submission", verr.Error())
			return
		}
		var serr *listing.SubmissionError
		if errors.As(err, &serr) {
			utils.JSONTransientError(c, http.StatusBadGateway, "Submission failed", serr.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Submission failed", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListHandler is the public browse endpoint, newest listings first.
func (h *EquipmentHandler) ListHandler(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid limit", "limit must be a positive integer")
		return
	}

	equipment, err := h.Repo.List(c.Request.Context(), int64(limit))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch equipment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"equipments": equipment})
}

// GetHandler returns a single listing by id.
func (h *EquipmentHandler) GetHandler(c *gin.Context) {
	equipment, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch equipment", err.Error())
		return
	}
	if equipment == nil {
		utils.JSONError(c, http.StatusNotFound, "Equipment not found", "")
		return
	}
	c.JSON(http.StatusOK, equipment)
}

// UpdateStatusHandler toggles a listing's operational status for its owner.
func (h *EquipmentHandler) UpdateStatusHandler(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "Verify your phone number first.")
		return
	}

	var req struct {
		CurrentStatus string `json:"currentStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	err := h.DashboardService.SetEquipmentStatus(c.Request.Context(), identity.PhoneNumber, c.Param("id"), req.CurrentStatus)
	switch {
	case errors.Is(err, dashboard.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "Invalid status", "Status must be Available, Rented or Maintenance.")
	case errors.Is(err, dashboard.ErrNotOwner):
		utils.JSONError(c, http.StatusForbidden, "Not your equipment", "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update status", err.Error())
	default:
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "currentStatus": req.CurrentStatus})
	}
}

func mediaFiles(headers []*multipart.FileHeader) []listing.MediaFile {
	files := make([]listing.MediaFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, listing.MediaFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return files
}

func identityFromContext(c *gin.Context) (models.VerifiedIdentity, bool) {
	uid := c.GetString("ownerUID")
	phone := c.GetString("ownerPhone")
	if uid == "" || phone == "" {
		return models.VerifiedIdentity{}, false
	}
	return models.VerifiedIdentity{SubjectID: uid, PhoneNumber: phone}, true
}
