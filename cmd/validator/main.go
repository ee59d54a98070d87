package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/shalconnects/balanze-go/internal/assistant"
	"github.com/shalconnects/balanze-go/internal/logging"
	"github.com/shalconnects/balanze-go/internal/store/sqlite"
)

const defaultUserID = "validator"

// ValidatorConfig holds configuration for the validator
type ValidatorConfig struct {
	ScenarioFiles []string
	OutputDir     string
	Verbose       bool
}

// ScenarioFile is the on-disk format of a scenario set
type ScenarioFile struct {
	Scenarios []Scenario `json:"scenarios"`
}

// Scenario seeds one user's records and asks questions against them at a
// fixed instant
type Scenario struct {
	Name     string         `json:"name"`
	Now      time.Time      `json:"now"`
	Location string         `json:"location,omitempty"`
	UserID   string         `json:"userId,omitempty"`
	Records  sqlite.Records `json:"records"`
	Cases    []Case         `json:"cases"`
}

// Case is one question and what its answer must look like
type Case struct {
	Message     string   `json:"message"`
	Intent      string   `json:"intent,omitempty"`
	Contains    []string `json:"contains,omitempty"`
	NotContains []string `json:"notContains,omitempty"`
}

// ValidationResult represents the result of a validation test
type ValidationResult struct {
	Scenario string        `json:"scenario"`
	Message  string        `json:"message"`
	Passed   bool          `json:"passed"`
	Intent   string        `json:"intent,omitempty"`
	Response string        `json:"response,omitempty"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// ValidationReport represents the full validation report
type ValidationReport struct {
	Timestamp   time.Time          `json:"timestamp"`
	TotalTests  int                `json:"total_tests"`
	Passed      int                `json:"passed"`
	Failed      int                `json:"failed"`
	SuccessRate float64            `json:"success_rate"`
	Results     []ValidationResult `json:"results"`
}

func main() {
	config := parseFlags()

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	scenarios, err := loadScenarios(config.ScenarioFiles)
	if err != nil {
		log.Fatalf("Failed to load scenarios: %v", err)
	}

	validator := NewValidator(config)
	report, err := validator.Run(context.Background(), scenarios)
	if err != nil {
		log.Fatalf("Validation failed: %v", err)
	}

	reportPath := filepath.Join(config.OutputDir, fmt.Sprintf("validation_report_%d.json", time.Now().Unix()))
	if err := saveReport(report, reportPath); err != nil {
		log.Fatalf("Failed to save report: %v", err)
	}

	printSummary(report, reportPath)

	// Exit with non-zero if any tests failed
	if report.Failed > 0 {
		os.Exit(1)
	}
}

func parseFlags() *ValidatorConfig {
	config := &ValidatorConfig{}

	scenarioList := flag.String("scenarios", "cmd/validator/testdata/scenarios.json", "Comma-separated list of scenario files")
	flag.StringVar(&config.OutputDir, "output", "./validation_results", "Output directory for results")
	flag.BoolVar(&config.Verbose, "verbose", false, "Verbose output")

	flag.Parse()

	for _, path := range strings.Split(*scenarioList, ",") {
		if path = strings.TrimSpace(path); path != "" {
			config.ScenarioFiles = append(config.ScenarioFiles, path)
		}
	}

	return config
}

func loadScenarios(paths []string) ([]Scenario, error) {
	var all []Scenario
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
		var file ScenarioFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", path)
		}
		all = append(all, file.Scenarios...)
	}
	return all, nil
}

// Validator replays scenarios against an in-memory store
type Validator struct {
	config *ValidatorConfig
	logger *logging.Logger
}

// NewValidator creates a new validator
func NewValidator(config *ValidatorConfig) *Validator {
	logger := logging.NewSilent()
	if config.Verbose {
		logger = logging.New("debug", "console")
	}
	return &Validator{config: config, logger: logger}
}

// Run executes every case of every scenario
func (v *Validator) Run(ctx context.Context, scenarios []Scenario) (*ValidationReport, error) {
	report := &ValidationReport{
		Timestamp: time.Now(),
		Results:   make([]ValidationResult, 0),
	}

	for _, sc := range scenarios {
		if v.config.Verbose {
			fmt.Printf("Scenario %s...\n", sc.Name)
		}

		results, err := v.runScenario(ctx, sc)
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %q", sc.Name)
		}

		for _, result := range results {
			report.Results = append(report.Results, result)
			if result.Passed {
				report.Passed++
			} else {
				report.Failed++
			}
		}
	}

	report.TotalTests = len(report.Results)
	if report.TotalTests > 0 {
		report.SuccessRate = float64(report.Passed) / float64(report.TotalTests) * 100
	}

	return report, nil
}

func (v *Validator) runScenario(ctx context.Context, sc Scenario) ([]ValidationResult, error) {
	loc := time.UTC
	if sc.Location != "" {
		var err error
		if loc, err = time.LoadLocation(sc.Location); err != nil {
			return nil, errors.Wrap(err, "invalid location")
		}
	}
	userID := sc.UserID
	if userID == "" {
		userID = defaultUserID
	}

	store, err := sqlite.Open(sqlite.MemoryPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if err := store.Seed(ctx, userID, sc.Records); err != nil {
		return nil, err
	}

	a := assistant.New(store, &assistant.Options{
		Logger:   v.logger,
		Clock:    func() time.Time { return sc.Now },
		Location: loc,
	})

	results := make([]ValidationResult, 0, len(sc.Cases))
	for _, c := range sc.Cases {
		result := testCase(ctx, a, userID, c)
		result.Scenario = sc.Name
		results = append(results, result)

		if !result.Passed && v.config.Verbose {
			fmt.Printf("  Mismatch for %q: %s\n", c.Message, result.Error)
			fmt.Printf("    Response: %s\n", result.Response)
		}
	}
	return results, nil
}

// testCase asks one question and checks the answer
func testCase(ctx context.Context, a *assistant.Assistant, userID string, c Case) ValidationResult {
	start := time.Now()
	reply := a.Ask(ctx, userID, c.Message)

	result := ValidationResult{
		Message:  c.Message,
		Intent:   string(reply.Intent),
		Response: reply.Response,
		Duration: time.Since(start),
	}

	var problems []string
	if c.Intent != "" && c.Intent != result.Intent {
		problems = append(problems, fmt.Sprintf("intent %s, want %s", result.Intent, c.Intent))
	}
	for _, want := range c.Contains {
		if !strings.Contains(reply.Response, want) {
			problems = append(problems, fmt.Sprintf("missing %q", want))
		}
	}
	for _, unwanted := range c.NotContains {
		if strings.Contains(reply.Response, unwanted) {
			problems = append(problems, fmt.Sprintf("unexpected %q", unwanted))
		}
	}

	result.Passed = len(problems) == 0
	result.Error = strings.Join(problems, "; ")
	return result
}

func saveReport(report *ValidationReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func printSummary(report *ValidationReport, path string) {
	fmt.Println("\n=== Validation Report ===")
	fmt.Printf("Total Tests: %d\n", report.TotalTests)
	fmt.Printf("Passed: %d\n", report.Passed)
	fmt.Printf("Failed: %d\n", report.Failed)
	fmt.Printf("Success Rate: %.1f%%\n", report.SuccessRate)

	if report.Failed > 0 {
		fmt.Println("\nFailed Tests:")
		for _, result := range report.Results {
			if !result.Passed {
				fmt.Printf("  - %s / %q: %s\n", result.Scenario, result.Message, result.Error)
			}
		}
	}

	fmt.Printf("\nReport saved to: %s\n", path)
}
