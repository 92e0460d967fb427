package handlers

import (
	"errors"
	"net/http"

	"github.com/Aditya122221/ElevateAI-sub001/internal/models"
	"github.com/Aditya122221/ElevateAI-sub001/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler serves the six per-user profile section documents.
// Every save is an upsert keyed on the authenticated user.
type ProfileHandler struct {
	log *zap.Logger
}

func NewProfileHandler(log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{log: log}
}

func (h *ProfileHandler) SaveBasicDetails(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var details models.BasicDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var errs []string
	if details.FirstName == "" {
		errs = append(errs, "firstName is required")
	}
	if details.LastName == "" {
		errs = append(errs, "lastName is required")
	}
	if details.Email == "" {
		errs = append(errs, "email is required")
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": errs})
		return
	}

	details.ID = 0
	details.UserID = user.ID
	if err := repository.UpsertBasicDetails(c.Request.Context(), &details); err != nil {
		h.log.Error("Failed to save basic details", zap.Error(err), zap.Uint("userID", user.ID))
		respondMessage(c, http.StatusInternalServerError, "Server error while saving basic details")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Basic details saved successfully", "data": details})
}

func (h *ProfileHandler) GetBasicDetails(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	details, err := repository.GetBasicDetails(c.Request.Context(), user.ID)
	h.respondSection(c, details, err, "basic details")
}

func (h *ProfileHandler) SaveSkills(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var skills models.Skills
	if err := c.ShouldBindJSON(&skills); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	skills.ID = 0
	skills.UserID = user.ID
	if err := repository.UpsertSkills(c.Request.Context(), &skills); err != nil {
		h.log.Error("Failed to save skills", zap.Error(err), zap.Uint("userID", user.ID))
		respondMessage(c, http.StatusInternalServerError, "Server error while saving skills")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skills saved successfully", "data": skills})
}

func (h *ProfileHandler) GetSkills(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	skills, err := repository.GetSkills(c.Request.Context(), user.ID)
	h.respondSection(c, skills, err, "skills")
}

func (h *ProfileHandler) SaveProjects(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var projects models.Projects
	if err := c.ShouldBindJSON(&projects); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	projects.ID = 0
	projects.UserID = user.ID
	if err := repository.UpsertProjects(c.Request.Context(), &projects); err != nil {
		h.log.Error("Failed to save projects", zap.Error(err), zap.Uint("userID", user.ID))
		respondMessage(c, http.StatusInternalServerError, "Server error while saving projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Projects saved successfully", "data": projects})
}

func (h *ProfileHandler) GetProjects(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	projects, err := repository.GetProjects(c.Request.Context(), user.ID)
	h.respondSection(c, projects, err, "projects")
}

func (h *ProfileHandler) SaveCertifications(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var certs models.Certifications
	if err := c.ShouldBindJSON(&certs); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	certs.ID = 0
	certs.UserID = user.ID
	if err := repository.UpsertCertifications(c.Request.Context(), &certs); err != nil {
		h.log.Error("Failed to save certifications", zap.Error(err), zap.Uint("userID", user.ID))
		respondMessage(c, http.StatusInternalServerError, "Server error while saving certifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Certifications saved successfully", "data": certs})
}

func (h *ProfileHandler) GetCertifications(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	certs, err := repository.GetCertifications(c.Request.Context(), user.ID)
	h.respondSection(c, certs, err, "certifications")
}

func (h *ProfileHandler) SaveExperience(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var experience models.Experience
	if err := c.ShouldBindJSON(&experience); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	experience.ID = 0
	experience.UserID = user.ID
	if err := repository.UpsertExperience(c.Request.Context(), &experience); err != nil {
		h.log.Error("Failed to save experience", zap.Error(err), zap.Uint("userID", user.ID))
		respondMessage(c, http.StatusInternalServerError, "Server error while saving experience")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience saved successfully", "data": experience})
}

func (h *ProfileHandler) GetExperience(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	experience, err := repository.GetExperience(c.Request.Context(), user.ID)
	h.respondSection(c, experience, err, "experience")
}

func (h *ProfileHandler) SaveJobRoles(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var roles models.JobRoles
	if err := c.ShouldBindJSON(&roles); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	roles.ID = 0
	roles.UserID = user.ID
	if err := repository.UpsertJobRoles(c.Request.Context(), &roles); err != nil {
		h.log.Error("Failed to save job roles", zap.Error(err), zap.Uint("userID", user.ID))
		respondMessage(c, http.StatusInternalServerError, "Server error while saving job roles")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job roles saved successfully", "data": roles})
}

func (h *ProfileHandler) GetJobRoles(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	roles, err := repository.GetJobRoles(c.Request.Context(), user.ID)
	h.respondSection(c, roles, err, "job roles")
}

// Complete verifies the required sections exist and flips the user's
// completion flag. Optional sections only affect the reported summary.
func (h *ProfileHandler) Complete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	ctx := c.Request.Context()

	_, basicErr := repository.GetBasicDetails(ctx, user.ID)
	if errors.Is(basicErr, repository.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":        "Basic details are required to complete profile",
			"missingSection": "basicDetails",
		})
		return
	}

	_, skillsErr := repository.GetSkills(ctx, user.ID)
	if errors.Is(skillsErr, repository.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":        "Skills are required to complete profile",
			"missingSection": "skills",
		})
		return
	}

	roles, rolesErr := repository.GetJobRoles(ctx, user.ID)
	if errors.Is(rolesErr, repository.ErrNotFound) || (rolesErr == nil && len(roles.DesiredJobRoles) == 0) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":        "At least one job role is required to complete profile",
			"missingSection": "jobRoles",
		})
		return
	}

	if basicErr != nil || skillsErr != nil || rolesErr != nil {
		respondMessage(c, http.StatusInternalServerError, "Server error while completing profile")
		return
	}

	_, projectsErr := repository.GetProjects(ctx, user.ID)
	_, certsErr := repository.GetCertifications(ctx, user.ID)
	_, expErr := repository.GetExperience(ctx, user.ID)

	if err := repository.SetProfileComplete(ctx, user.ID); err != nil {
		h.log.Error("Failed to mark profile complete", zap.Error(err), zap.Uint("userID", user.ID))
		respondMessage(c, http.StatusInternalServerError, "Server error while completing profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile completed successfully",
		"sections": gin.H{
			"basicDetails":   true,
			"skills":         true,
			"jobRoles":       true,
			"projects":       projectsErr == nil,
			"certifications": certsErr == nil,
			"experience":     expErr == nil,
		},
	})
}

// respondSection returns {data: section} or {data: null} when the
// section was never saved; only unexpected errors become 500s.
func (h *ProfileHandler) respondSection(c *gin.Context, data interface{}, err error, name string) {
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"data": nil})
			return
		}
		h.log.Error("Failed to fetch profile section", zap.Error(err), zap.String("section", name))
		respondMessage(c, http.StatusInternalServerError, "Server error while fetching "+name)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}
