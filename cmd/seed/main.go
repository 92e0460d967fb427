// Command seed loads assessment definitions from YAML files and
// inserts them into the catalog. Existing tests with the same title
// are skipped so the tool is safe to re-run.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Aditya122221/ElevateAI-sub001/internal/config"
	"github.com/Aditya122221/ElevateAI-sub001/internal/database"
	"github.com/Aditya122221/ElevateAI-sub001/internal/models"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type seedQuestion struct {
	Question      string      `yaml:"question"`
	Type          string      `yaml:"type"`
	Options       []string    `yaml:"options"`
	CorrectAnswer interface{} `yaml:"correctAnswer"`
	Explanation   string      `yaml:"explanation"`
	Points        int         `yaml:"points"`
	TimeLimit     int         `yaml:"timeLimit"`
}

type seedTest struct {
	Title         string         `yaml:"title"`
	Description   string         `yaml:"description"`
	Category      string         `yaml:"category"`
	Difficulty    string         `yaml:"difficulty"`
	Duration      int            `yaml:"duration"`
	PassingScore  float64        `yaml:"passingScore"`
	MaxAttempts   int            `yaml:"maxAttempts"`
	Tags          []string       `yaml:"tags"`
	Skills        []string       `yaml:"skills"`
	Prerequisites []string       `yaml:"prerequisites"`
	Questions     []seedQuestion `yaml:"questions"`
}

type seedFile struct {
	Tests []seedTest `yaml:"tests"`
}

func main() {
	dir := flag.String("dir", "config/seed", "directory of seed YAML files")
	flag.Parse()

	_ = godotenv.Load()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	database.Init(log)

	files, err := filepath.Glob(filepath.Join(*dir, "*.yaml"))
	if err != nil || len(files) == 0 {
		color.Red("No seed files found in %s", *dir)
		os.Exit(1)
	}

	inserted, skipped := 0, 0
	for _, file := range files {
		color.Cyan("Loading %s", file)

		data, err := os.ReadFile(file)
		if err != nil {
			color.Red("  cannot read %s: %v", file, err)
			continue
		}

		var parsed seedFile
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			color.Red("  cannot parse %s: %v", file, err)
			continue
		}

		for _, def := range parsed.Tests {
			test, err := buildTest(def)
			if err != nil {
				color.Red("  %s: %v", def.Title, err)
				continue
			}

			var count int64
			database.DB.WithContext(context.Background()).
				Model(&models.Test{}).
				Where("title = ?", test.Title).
				Count(&count)
			if count > 0 {
				color.Yellow("  skip %q (already present)", test.Title)
				skipped++
				continue
			}

			if err := database.DB.Create(test).Error; err != nil {
				color.Red("  failed to insert %q: %v", test.Title, err)
				continue
			}
			color.Green("  inserted %q (%d questions, %d points)", test.Title, len(test.Questions), test.TotalPoints)
			inserted++
		}
	}

	color.Green("Done: %d inserted, %d skipped", inserted, skipped)
}

func buildTest(def seedTest) (*models.Test, error) {
	// Seed files bypass the admin handlers, so the same enum checks
	// apply here.
	if !models.ValidCategory(def.Category) {
		return nil, fmt.Errorf("invalid category %q", def.Category)
	}
	if !models.ValidDifficulty(def.Difficulty) {
		return nil, fmt.Errorf("invalid difficulty %q", def.Difficulty)
	}

	questions := make(models.QuestionList, 0, len(def.Questions))
	for _, q := range def.Questions {
		answer, err := json.Marshal(q.CorrectAnswer)
		if err != nil {
			return nil, err
		}
		points := q.Points
		if points <= 0 {
			points = 1
		}
		questions = append(questions, models.Question{
			ID:            uuid.NewString(),
			Text:          q.Question,
			Type:          q.Type,
			Options:       q.Options,
			CorrectAnswer: answer,
			Explanation:   q.Explanation,
			Points:        points,
			TimeLimit:     q.TimeLimit,
		})
	}

	maxAttempts := def.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	test := &models.Test{
		Title:         def.Title,
		Description:   def.Description,
		Category:      def.Category,
		Difficulty:    def.Difficulty,
		Duration:      def.Duration,
		Questions:     questions,
		PassingScore:  def.PassingScore,
		MaxAttempts:   maxAttempts,
		IsActive:      true,
		Tags:          def.Tags,
		Skills:        def.Skills,
		Prerequisites: def.Prerequisites,
	}
	test.TotalPoints = test.ComputeTotalPoints()
	return test, nil
}
