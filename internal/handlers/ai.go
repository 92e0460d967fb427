package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Aditya122221/ElevateAI-sub001/internal/config"
	"github.com/Aditya122221/ElevateAI-sub001/internal/models"
	"github.com/Aditya122221/ElevateAI-sub001/internal/repository"
	"github.com/Aditya122221/ElevateAI-sub001/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 5 * time.Second

// AIHandler exposes the recommendation adapter. The AI service is an
// injected collaborator so tests can swap the generator for a fake.
type AIHandler struct {
	log    *zap.Logger
	svc    *services.AIService
	models services.ModelLister
}

func NewAIHandler(log *zap.Logger, svc *services.AIService, models services.ModelLister) *AIHandler {
	return &AIHandler{log: log, svc: svc, models: models}
}

// AnalyzeProfile builds the analysis prompt from the caller's profile
// and returns recommendations. AI failures degrade to the fixed
// fallback with a 200, never an error status.
func (h *AIHandler) AnalyzeProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	data, ok := h.loadProfile(c, user, "Error analyzing profile")
	if !ok {
		return
	}

	recommendations, available := h.svc.AnalyzeProfile(c.Request.Context(), data)

	c.JSON(http.StatusOK, gin.H{
		"message":            "Profile analysis completed successfully",
		"recommendations":    recommendations,
		"aiServiceAvailable": available,
	})
}

type generateQuestionsRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// GenerateTestQuestions asks the model for practice questions. An
// unreachable service degrades to a fallback list; a response the
// parser cannot handle is a 500.
func (h *AIHandler) GenerateTestQuestions(c *gin.Context) {
	var req generateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Topic == "" {
		respondMessage(c, http.StatusBadRequest, "Topic is required")
		return
	}

	questions, available, err := h.svc.GenerateQuestions(c.Request.Context(), req.Topic, req.Difficulty, req.Count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to generate test questions",
			"error":   "AI response parsing failed",
		})
		return
	}

	message := "Test questions generated successfully"
	if !available {
		message = "Test questions generated (fallback mode)"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":            message,
		"questions":          questions,
		"aiServiceAvailable": available,
	})
}

type careerAdviceRequest struct {
	Question string `json:"question"`
}

// CareerAdvice answers a free-form question in the context of the
// caller's profile. Unavailable AI degrades to fixed advice, never an
// error status.
func (h *AIHandler) CareerAdvice(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req careerAdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Question == "" {
		respondMessage(c, http.StatusBadRequest, "Question is required")
		return
	}

	data, ok := h.loadProfile(c, user, "Error generating career advice")
	if !ok {
		return
	}

	advice, available := h.svc.CareerAdvice(c.Request.Context(), data, req.Question)

	message := "Career advice generated successfully"
	if !available {
		message = "Career advice generated (fallback mode)"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":            message,
		"advice":             advice,
		"aiServiceAvailable": available,
	})
}

// RecommendCertificates picks the most relevant certificates from the
// active catalog for the caller's profile.
func (h *AIHandler) RecommendCertificates(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	data, ok := h.loadProfile(c, user, "Error generating certificate recommendations")
	if !ok {
		return
	}

	certificates, err := repository.ListActiveCertificates(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list certificates for recommendations", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Error generating certificate recommendations")
		return
	}
	if len(certificates) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message":      "No certificates available",
			"certificates": []models.Certificate{},
		})
		return
	}

	catalog := make([]string, len(certificates))
	fallback := make([]string, 0, 6)
	for i, cert := range certificates {
		catalog[i] = fmt.Sprintf("%s (%s, %s): %s", cert.Name, cert.Category, cert.Difficulty, cert.Description)
		if i < 6 {
			fallback = append(fallback, cert.Name)
		}
	}

	prompt := services.BuildCertificateRecommendationPrompt(data, catalog)
	names, available := h.svc.RecommendNames(c.Request.Context(), prompt, fallback)

	recommended := make([]models.Certificate, 0, len(names))
	for _, cert := range certificates {
		if containsName(names, cert.Name) {
			recommended = append(recommended, cert)
		}
	}

	// Too few picks: pad with certificates whose category overlaps the
	// user's skills.
	if len(recommended) < 4 {
		skills := profileSkillNames(data)
		for _, cert := range certificates {
			if len(recommended) >= 4 {
				break
			}
			if containsCertificate(recommended, cert.ID) {
				continue
			}
			if matchesSkills(cert.Category, skills) {
				recommended = append(recommended, cert)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "Certificate recommendations generated successfully",
		"certificates":       recommended,
		"totalAvailable":     len(certificates),
		"recommendedCount":   len(recommended),
		"aiServiceAvailable": available,
	})
}

// RecommendTests picks the most relevant assessments from the active
// catalog for the caller's profile.
func (h *AIHandler) RecommendTests(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	data, ok := h.loadProfile(c, user, "Error generating test recommendations")
	if !ok {
		return
	}

	tests, err := repository.ListActiveTests(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list tests for recommendations", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Error generating test recommendations")
		return
	}
	if len(tests) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "No tests available",
			"tests":   []models.Test{},
		})
		return
	}

	catalog := make([]string, len(tests))
	fallback := make([]string, 0, 4)
	for i, test := range tests {
		catalog[i] = fmt.Sprintf("%s (%s, %s): %s", test.Title, test.Category, test.Difficulty, test.Description)
		if i < 4 {
			fallback = append(fallback, test.Title)
		}
	}

	prompt := services.BuildTestRecommendationPrompt(data, catalog)
	titles, available := h.svc.RecommendNames(c.Request.Context(), prompt, fallback)

	recommended := make([]models.Test, 0, len(titles))
	for _, test := range tests {
		if containsName(titles, test.Title) {
			recommended = append(recommended, test)
		}
	}

	if len(recommended) < 3 {
		skills := profileSkillNames(data)
		for _, test := range tests {
			if len(recommended) >= 3 {
				break
			}
			if containsTest(recommended, test.ID) {
				continue
			}
			if matchesSkills(test.Category, skills) {
				recommended = append(recommended, test)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "Test recommendations generated successfully",
		"tests":              recommended,
		"totalAvailable":     len(tests),
		"recommendedCount":   len(recommended),
		"aiServiceAvailable": available,
	})
}

// Health checks the generation endpoint's model inventory. Public: the
// frontend uses it to decide whether to surface AI features.
func (h *AIHandler) Health(c *gin.Context) {
	aiConf := config.Conf.AI

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	names, err := h.models.ListModels(ctx)
	if err != nil {
		h.log.Warn("AI health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"ollama": gin.H{
				"connected": false,
				"baseUrl":   aiConf.BaseURL,
				"model":     aiConf.Model,
				"error":     err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"ollama": gin.H{
			"connected": true,
			"baseUrl":   aiConf.BaseURL,
			"model":     aiConf.Model,
			"models":    names,
		},
	})
}

// loadProfile gathers the required sections for a prompt, writing the
// response itself on failure. Projects and experience are best-effort
// enrichment.
func (h *AIHandler) loadProfile(c *gin.Context, user *models.User, errMessage string) (services.ProfileData, bool) {
	ctx := c.Request.Context()

	basic, basicErr := repository.GetBasicDetails(ctx, user.ID)
	skills, skillsErr := repository.GetSkills(ctx, user.ID)
	roles, rolesErr := repository.GetJobRoles(ctx, user.ID)

	if errors.Is(basicErr, repository.ErrNotFound) ||
		errors.Is(skillsErr, repository.ErrNotFound) ||
		errors.Is(rolesErr, repository.ErrNotFound) {
		respondMessage(c, http.StatusNotFound, "Profile not found. Please complete your profile first.")
		return services.ProfileData{}, false
	}
	if basicErr != nil || skillsErr != nil || rolesErr != nil {
		respondMessage(c, http.StatusInternalServerError, errMessage)
		return services.ProfileData{}, false
	}

	data := services.ProfileData{
		Basic:    basic,
		Skills:   skills,
		JobRoles: roles,
	}
	if projects, err := repository.GetProjects(ctx, user.ID); err == nil {
		data.Projects = projects
	}
	if experience, err := repository.GetExperience(ctx, user.ID); err == nil {
		data.Experience = experience
	}
	return data, true
}

func profileSkillNames(data services.ProfileData) []string {
	var skills []string
	skills = append(skills, data.Skills.Languages...)
	skills = append(skills, data.Skills.Technologies...)
	skills = append(skills, data.Skills.Frameworks...)
	return skills
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func containsCertificate(certs []models.Certificate, id uint) bool {
	for _, c := range certs {
		if c.ID == id {
			return true
		}
	}
	return false
}

func containsTest(tests []models.Test, id uint) bool {
	for _, t := range tests {
		if t.ID == id {
			return true
		}
	}
	return false
}

func matchesSkills(category string, skills []string) bool {
	cat := strings.ToLower(category)
	for _, skill := range skills {
		s := strings.ToLower(skill)
		if s == "" {
			continue
		}
		if strings.Contains(cat, s) || strings.Contains(s, cat) {
			return true
		}
	}
	return false
}
