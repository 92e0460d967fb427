package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Aditya122221/ElevateAI-sub001/internal/models"
	"github.com/Aditya122221/ElevateAI-sub001/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CertificateHandler serves the public certification catalog and the
// admin CRUD behind it.
type CertificateHandler struct {
	log *zap.Logger
}

func NewCertificateHandler(log *zap.Logger) *CertificateHandler {
	return &CertificateHandler{log: log}
}

// List serves the public catalog: active certificates only, reviews omitted.
func (h *CertificateHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := repository.CertificateFilter{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
		SortBy:     c.DefaultQuery("sortBy", "createdAt"),
		SortOrder:  c.DefaultQuery("sortOrder", "desc"),
	}

	certificates, pagination, err := repository.ListCertificates(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("Failed to list certificates", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while fetching certificates")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"certificates": certificates,
		"pagination":   pagination,
	})
}

// Get returns a single active certificate with its reviews.
func (h *CertificateHandler) Get(c *gin.Context) {
	certificate, ok := h.fetchActiveCertificate(c)
	if !ok {
		return
	}

	reviews, err := repository.ListCertificateReviews(c.Request.Context(), certificate.ID)
	if err != nil {
		h.log.Error("Failed to fetch certificate reviews", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while fetching certificate")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"certificate": certificate,
		"reviews":     reviews,
	})
}

type certificatePayload struct {
	Name                string                      `json:"name"`
	Provider            string                      `json:"provider"`
	Description         string                      `json:"description"`
	Category            string                      `json:"category"`
	Difficulty          string                      `json:"difficulty"`
	Duration            string                      `json:"duration"`
	Validity            string                      `json:"validity"`
	Language            string                      `json:"language"`
	Skills              models.CertificateSkillList `json:"skills"`
	Topics              []string                    `json:"topics"`
	Prerequisites       []string                    `json:"prerequisites"`
	Format              []string                    `json:"format"`
	Benefits            []string                    `json:"benefits"`
	TargetAudience      []string                    `json:"targetAudience"`
	JobRoles            []string                    `json:"jobRoles"`
	Exam                *models.ExamDetails         `json:"examDetails"`
	Cost                *models.CostInfo            `json:"cost"`
	AverageSalary       *models.SalaryRange         `json:"averageSalary"`
	IndustryRecognition string                      `json:"industryRecognition"`
	EnrollmentURL       string                      `json:"enrollmentUrl"`
	OfficialWebsite     string                      `json:"officialWebsite"`
	ImageURL            string                      `json:"imageUrl"`
	IsActive            *bool                       `json:"isActive"`
}

func (p *certificatePayload) validate() []string {
	var errs []string
	if p.Name == "" {
		errs = append(errs, "name is required")
	}
	if p.Provider == "" {
		errs = append(errs, "provider is required")
	}
	if p.Description == "" {
		errs = append(errs, "description is required")
	}
	if !models.ValidCertificateCategory(p.Category) {
		errs = append(errs, "category is invalid")
	}
	if !models.ValidDifficulty(p.Difficulty) {
		errs = append(errs, "difficulty is invalid")
	}
	if p.Duration == "" {
		errs = append(errs, "duration is required")
	}
	if p.Validity == "" {
		errs = append(errs, "validity is required")
	}
	return errs
}

// Create inserts a new certificate. Admin only.
func (h *CertificateHandler) Create(c *gin.Context) {
	var payload certificatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := payload.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": errs})
		return
	}

	certificate := models.Certificate{
		Name:                payload.Name,
		Provider:            payload.Provider,
		Description:         payload.Description,
		Category:            payload.Category,
		Difficulty:          payload.Difficulty,
		Duration:            payload.Duration,
		Validity:            payload.Validity,
		Language:            payload.Language,
		Skills:              payload.Skills,
		Topics:              payload.Topics,
		Prerequisites:       payload.Prerequisites,
		Format:              payload.Format,
		Benefits:            payload.Benefits,
		TargetAudience:      payload.TargetAudience,
		JobRoles:            payload.JobRoles,
		IndustryRecognition: payload.IndustryRecognition,
		EnrollmentURL:       payload.EnrollmentURL,
		OfficialWebsite:     payload.OfficialWebsite,
		ImageURL:            payload.ImageURL,
		IsActive:            true,
	}
	if certificate.Language == "" {
		certificate.Language = "English"
	}
	if len(certificate.Format) == 0 {
		certificate.Format = []string{"online"}
	}
	if payload.Exam != nil {
		certificate.Exam = *payload.Exam
	}
	if payload.Cost != nil {
		certificate.Cost = *payload.Cost
	}
	if certificate.Cost.Currency == "" {
		certificate.Cost.Currency = "USD"
	}
	if payload.AverageSalary != nil {
		certificate.AverageSalary = *payload.AverageSalary
	}
	if payload.IsActive != nil {
		certificate.IsActive = *payload.IsActive
	}

	if err := repository.CreateCertificate(c.Request.Context(), &certificate); err != nil {
		h.log.Error("Failed to create certificate", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while creating certificate")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Certificate created successfully",
		"certificate": certificate,
	})
}

// Update edits an existing certificate. Admin only; partial payloads
// leave untouched fields alone.
func (h *CertificateHandler) Update(c *gin.Context) {
	id, ok := parseCertificateID(c)
	if !ok {
		return
	}

	certificate, err := repository.GetCertificate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Certificate not found")
			return
		}
		h.log.Error("Failed to fetch certificate", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while updating certificate")
		return
	}

	var payload certificatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if payload.Name != "" {
		certificate.Name = payload.Name
	}
	if payload.Provider != "" {
		certificate.Provider = payload.Provider
	}
	if payload.Description != "" {
		certificate.Description = payload.Description
	}
	if payload.Category != "" {
		if !models.ValidCertificateCategory(payload.Category) {
			respondMessage(c, http.StatusBadRequest, "category is invalid")
			return
		}
		certificate.Category = payload.Category
	}
	if payload.Difficulty != "" {
		if !models.ValidDifficulty(payload.Difficulty) {
			respondMessage(c, http.StatusBadRequest, "difficulty is invalid")
			return
		}
		certificate.Difficulty = payload.Difficulty
	}
	if payload.Duration != "" {
		certificate.Duration = payload.Duration
	}
	if payload.Validity != "" {
		certificate.Validity = payload.Validity
	}
	if payload.Language != "" {
		certificate.Language = payload.Language
	}
	if payload.Skills != nil {
		certificate.Skills = payload.Skills
	}
	if payload.Topics != nil {
		certificate.Topics = payload.Topics
	}
	if payload.Prerequisites != nil {
		certificate.Prerequisites = payload.Prerequisites
	}
	if payload.Format != nil {
		certificate.Format = payload.Format
	}
	if payload.Benefits != nil {
		certificate.Benefits = payload.Benefits
	}
	if payload.TargetAudience != nil {
		certificate.TargetAudience = payload.TargetAudience
	}
	if payload.JobRoles != nil {
		certificate.JobRoles = payload.JobRoles
	}
	if payload.Exam != nil {
		certificate.Exam = *payload.Exam
	}
	if payload.Cost != nil {
		certificate.Cost = *payload.Cost
	}
	if payload.AverageSalary != nil {
		certificate.AverageSalary = *payload.AverageSalary
	}
	if payload.IndustryRecognition != "" {
		certificate.IndustryRecognition = payload.IndustryRecognition
	}
	if payload.EnrollmentURL != "" {
		certificate.EnrollmentURL = payload.EnrollmentURL
	}
	if payload.OfficialWebsite != "" {
		certificate.OfficialWebsite = payload.OfficialWebsite
	}
	if payload.ImageURL != "" {
		certificate.ImageURL = payload.ImageURL
	}
	if payload.IsActive != nil {
		certificate.IsActive = *payload.IsActive
	}

	if err := repository.SaveCertificate(c.Request.Context(), certificate); err != nil {
		h.log.Error("Failed to update certificate", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while updating certificate")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Certificate updated successfully",
		"certificate": certificate,
	})
}

// Delete soft-deletes: the document stays, is_active flips off.
func (h *CertificateHandler) Delete(c *gin.Context) {
	id, ok := parseCertificateID(c)
	if !ok {
		return
	}

	if err := repository.SoftDeleteCertificate(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Certificate not found")
			return
		}
		h.log.Error("Failed to delete certificate", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while deleting certificate")
		return
	}

	respondMessage(c, http.StatusOK, "Certificate deleted successfully")
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// AddReview records one review per user per certificate and updates the
// aggregate rating.
func (h *CertificateHandler) AddReview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		respondMessage(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	certificate, ok := h.fetchActiveCertificate(c)
	if !ok {
		return
	}

	review := models.CertificateReview{
		CertificateID: certificate.ID,
		UserID:        user.ID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	rating, err := repository.AddCertificateReview(c.Request.Context(), &review)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			respondMessage(c, http.StatusBadRequest, "You have already reviewed this certificate")
			return
		}
		h.log.Error("Failed to add review", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while adding review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review added successfully",
		"review":  review,
		"rating":  rating,
	})
}

// Categories returns the distinct categories of the active catalog.
func (h *CertificateHandler) Categories(c *gin.Context) {
	categories, err := repository.ListCertificateCategories(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to fetch certificate categories", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while fetching categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CertificateHandler) fetchActiveCertificate(c *gin.Context) (*models.Certificate, bool) {
	id, ok := parseCertificateID(c)
	if !ok {
		return nil, false
	}

	certificate, err := repository.GetCertificate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Certificate not found")
			return nil, false
		}
		h.log.Error("Failed to fetch certificate", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while fetching certificate")
		return nil, false
	}
	if !certificate.IsActive {
		respondMessage(c, http.StatusNotFound, "Certificate not found")
		return nil, false
	}
	return certificate, true
}

func parseCertificateID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid certificate id")
		return 0, false
	}
	return uint(id), true
}
