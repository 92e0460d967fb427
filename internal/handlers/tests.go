package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Aditya122221/ElevateAI-sub001/internal/models"
	"github.com/Aditya122221/ElevateAI-sub001/internal/repository"
	"github.com/Aditya122221/ElevateAI-sub001/internal/scoring"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TestHandler struct {
	log *zap.Logger
}

func NewTestHandler(log *zap.Logger) *TestHandler {
	return &TestHandler{log: log}
}

// List serves the public catalog: active tests only, question bodies omitted.
func (h *TestHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := repository.TestFilter{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
		SortBy:     c.DefaultQuery("sortBy", "createdAt"),
		SortOrder:  c.DefaultQuery("sortOrder", "desc"),
	}

	tests, pagination, err := repository.ListTests(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("Failed to list tests", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while fetching tests")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tests":      tests,
		"pagination": pagination,
	})
}

// Get returns a single active test, answer key included.
func (h *TestHandler) Get(c *gin.Context) {
	test, ok := h.fetchActiveTest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"test": test})
}

type testPayload struct {
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Category      string              `json:"category"`
	Difficulty    string              `json:"difficulty"`
	Duration      int                 `json:"duration"`
	Questions     models.QuestionList `json:"questions"`
	PassingScore  float64             `json:"passingScore"`
	MaxAttempts   int                 `json:"maxAttempts"`
	IsActive      *bool               `json:"isActive"`
	Tags          []string            `json:"tags"`
	Skills        []string            `json:"skills"`
	Prerequisites []string            `json:"prerequisites"`
}

func (p *testPayload) validate() []string {
	var errs []string
	if p.Title == "" {
		errs = append(errs, "title is required")
	}
	if !models.ValidCategory(p.Category) {
		errs = append(errs, "category is invalid")
	}
	if !models.ValidDifficulty(p.Difficulty) {
		errs = append(errs, "difficulty is invalid")
	}
	if p.Duration <= 0 {
		errs = append(errs, "duration must be positive")
	}
	if len(p.Questions) == 0 {
		errs = append(errs, "at least one question is required")
	}
	for _, q := range p.Questions {
		if q.Text == "" {
			errs = append(errs, "every question needs text")
			break
		}
	}
	if p.PassingScore < 0 || p.PassingScore > 100 {
		errs = append(errs, "passingScore must be between 0 and 100")
	}
	return errs
}

// normalizeQuestions assigns server-side ids and default points.
func normalizeQuestions(questions models.QuestionList) models.QuestionList {
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
		if questions[i].Points <= 0 {
			questions[i].Points = 1
		}
	}
	return questions
}

// Create inserts a new test. Admin only; totalPoints is recomputed
// from the question set, never trusted from the payload.
func (h *TestHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var payload testPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := payload.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": errs})
		return
	}

	test := models.Test{
		Title:         payload.Title,
		Description:   payload.Description,
		Category:      payload.Category,
		Difficulty:    payload.Difficulty,
		Duration:      payload.Duration,
		Questions:     normalizeQuestions(payload.Questions),
		PassingScore:  payload.PassingScore,
		MaxAttempts:   payload.MaxAttempts,
		IsActive:      true,
		CreatedBy:     user.ID,
		Tags:          payload.Tags,
		Skills:        payload.Skills,
		Prerequisites: payload.Prerequisites,
	}
	if test.MaxAttempts <= 0 {
		test.MaxAttempts = 3
	}
	if payload.IsActive != nil {
		test.IsActive = *payload.IsActive
	}
	test.TotalPoints = test.ComputeTotalPoints()

	if err := repository.CreateTest(c.Request.Context(), &test); err != nil {
		h.log.Error("Failed to create test", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while creating test")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Test created successfully",
		"test":    test,
	})
}

// Update edits an existing test. A replaced question set always
// triggers a totalPoints recompute.
func (h *TestHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	test, err := repository.GetTest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Test not found")
			return
		}
		h.log.Error("Failed to fetch test", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while updating test")
		return
	}

	var payload testPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if payload.Title != "" {
		test.Title = payload.Title
	}
	if payload.Description != "" {
		test.Description = payload.Description
	}
	if payload.Category != "" {
		if !models.ValidCategory(payload.Category) {
			respondMessage(c, http.StatusBadRequest, "category is invalid")
			return
		}
		test.Category = payload.Category
	}
	if payload.Difficulty != "" {
		if !models.ValidDifficulty(payload.Difficulty) {
			respondMessage(c, http.StatusBadRequest, "difficulty is invalid")
			return
		}
		test.Difficulty = payload.Difficulty
	}
	if payload.Duration > 0 {
		test.Duration = payload.Duration
	}
	if payload.PassingScore > 0 {
		test.PassingScore = payload.PassingScore
	}
	if payload.MaxAttempts > 0 {
		test.MaxAttempts = payload.MaxAttempts
	}
	if payload.IsActive != nil {
		test.IsActive = *payload.IsActive
	}
	if payload.Tags != nil {
		test.Tags = payload.Tags
	}
	if payload.Skills != nil {
		test.Skills = payload.Skills
	}
	if payload.Prerequisites != nil {
		test.Prerequisites = payload.Prerequisites
	}
	if payload.Questions != nil {
		test.Questions = normalizeQuestions(payload.Questions)
		test.TotalPoints = test.ComputeTotalPoints()
	}

	if err := repository.SaveTest(c.Request.Context(), test); err != nil {
		h.log.Error("Failed to update test", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while updating test")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Test updated successfully",
		"test":    test,
	})
}

// Delete soft-deletes: the document stays, is_active flips off.
func (h *TestHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := repository.SoftDeleteTest(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Test not found")
			return
		}
		h.log.Error("Failed to delete test", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while deleting test")
		return
	}

	respondMessage(c, http.StatusOK, "Test deleted successfully")
}

// Start checks the attempt limit and returns the test with correct
// answers stripped. Nothing is persisted; the attempt only exists once
// the user submits.
func (h *TestHandler) Start(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	test, ok := h.fetchActiveTest(c)
	if !ok {
		return
	}

	count, err := repository.CountResults(c.Request.Context(), user.ID, test.ID)
	if err != nil {
		h.log.Error("Failed to count attempts", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while starting test")
		return
	}
	if count >= int64(test.MaxAttempts) {
		respondMessage(c, http.StatusBadRequest, "Maximum attempts reached for this test")
		return
	}

	sanitized := *test
	sanitized.Questions = test.SanitizedQuestions()

	c.JSON(http.StatusOK, gin.H{
		"message":       "Test started successfully",
		"test":          sanitized,
		"attemptNumber": count + 1,
		"maxAttempts":   test.MaxAttempts,
	})
}

type submitRequest struct {
	Answers   []scoring.SubmittedAnswer `json:"answers"`
	TimeSpent int                       `json:"timeSpent"`
}

// Submit grades the answers and persists one immutable result. The
// attempt limit is re-checked here, and the unique attempt index
// catches whatever slips between the check and the write.
func (h *TestHandler) Submit(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	test, ok := h.fetchActiveTest(c)
	if !ok {
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	count, err := repository.CountResults(c.Request.Context(), user.ID, test.ID)
	if err != nil {
		h.log.Error("Failed to count attempts", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while submitting test")
		return
	}
	if count >= int64(test.MaxAttempts) {
		respondMessage(c, http.StatusBadRequest, "Maximum attempts reached for this test")
		return
	}

	summary := scoring.Grade(test, req.Answers)
	now := time.Now().UTC()

	result := models.TestResult{
		UserID:        user.ID,
		TestID:        test.ID,
		Answers:       summary.Answers,
		Score:         summary.Score,
		Percentage:    summary.Percentage,
		Passed:        summary.Passed,
		TimeSpent:     req.TimeSpent,
		AttemptNumber: int(count) + 1,
		StartedAt:     now.Add(-time.Duration(req.TimeSpent) * time.Second),
		CompletedAt:   now,
	}

	if err := repository.InsertResult(c.Request.Context(), &result); err != nil {
		if errors.Is(err, repository.ErrDuplicateAttempt) {
			respondMessage(c, http.StatusBadRequest, "Maximum attempts reached for this test")
			return
		}
		h.log.Error("Failed to save test result", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while submitting test")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Test submitted successfully",
		"result": gin.H{
			"score":         summary.Score,
			"totalPoints":   summary.TotalPoints,
			"percentage":    summary.Percentage,
			"passed":        summary.Passed,
			"timeSpent":     req.TimeSpent,
			"attemptNumber": result.AttemptNumber,
		},
	})
}

// UserResults lists all of the caller's results, newest first.
func (h *TestHandler) UserResults(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	results, err := repository.ListUserResults(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to fetch user results", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while fetching results")
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// TestResults lists the caller's results for one test.
func (h *TestHandler) TestResults(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	results, err := repository.ListTestResults(c.Request.Context(), user.ID, id)
	if err != nil {
		h.log.Error("Failed to fetch test results", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while fetching results")
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// fetchActiveTest loads the test from the :id param and 404s on
// missing or inactive tests. A false return means the response was
// already written.
func (h *TestHandler) fetchActiveTest(c *gin.Context) (*models.Test, bool) {
	id, ok := parseID(c)
	if !ok {
		return nil, false
	}

	test, err := repository.GetTest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Test not found")
			return nil, false
		}
		h.log.Error("Failed to fetch test", zap.Error(err))
		respondMessage(c, http.StatusInternalServerError, "Server error while fetching test")
		return nil, false
	}
	if !test.IsActive {
		respondMessage(c, http.StatusNotFound, "Test not found")
		return nil, false
	}
	return test, true
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid test id")
		return 0, false
	}
	return uint(id), true
}
