package integration

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-points/internal/config"
	"github.com/iwvelando/mortgage-points/internal/optimizer"
	"github.com/iwvelando/mortgage-points/internal/report"
	"github.com/iwvelando/mortgage-points/pkg/output"
	"github.com/iwvelando/mortgage-points/pkg/testutil"
	"go.uber.org/zap"
)

// TestMainIntegrationBaseline tests that the application produces the same results
// as our baseline captured from the current working version
func TestMainIntegrationBaseline(t *testing.T) {
	// Create a no-op logger to avoid debug output during testing
	logger := zap.NewNop()

	// Load and process the example configuration exactly as main() does
	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 0 {
		t.Errorf("Expected no configuration warnings, got %v", warnings)
	}

	result, err := report.Generate(logger, conf)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Validate we have the expected number of points options
	if len(result.Results) != 4 {
		t.Errorf("Expected 4 points options, got %d", len(result.Results))
	}

	expectedPoints := []float64{0, 0.5, 1, 2}

	for i, expected := range expectedPoints {
		if i >= len(result.Results) {
			t.Errorf("Missing points option: %g", expected)
			continue
		}
		if result.Results[i].Points != expected {
			t.Errorf("Expected points option %g, got %g", expected, result.Results[i].Points)
		}
	}

	if result.Name != "primary residence" {
		t.Errorf("Expected loan name 'primary residence', got %q", result.Name)
	}
	if math.Abs(result.DownPayment-100000) > 0.01 {
		t.Errorf("Expected down payment 100000, got %.2f", result.DownPayment)
	}

	// Validate baseline values from our CSV output
	validateBaselineValues(t, result.Results)
}

// validateBaselineValues checks specific key values against our baseline
func validateBaselineValues(t *testing.T, results []report.Result) {
	// These are specific values from our baseline CSV output
	baselineChecks := []struct {
		points          float64
		expectedTotal   float64
		expectedMonths  int
		expectedPayment float64
		tolerance       float64
	}{
		{0, 712470.83, 120, 5062.26, 1.0},
		{0.5, 713190.20, 120, 5047.42, 1.0},
		{1, 713912.76, 120, 5032.61, 1.0},
		{2, 715367.46, 120, 5003.06, 1.0},
	}

	for _, check := range baselineChecks {
		result := testutil.FindResult(results, check.points)
		if result == nil {
			t.Errorf("Points option %g not found in results", check.points)
			continue
		}

		if math.Abs(result.TotalCost-check.expectedTotal) > check.tolerance {
			t.Errorf("Points %g: expected total cost %.2f, got %.2f",
				check.points, check.expectedTotal, result.TotalCost)
		}
		if result.Months != check.expectedMonths {
			t.Errorf("Points %g: expected %d months, got %d",
				check.points, check.expectedMonths, result.Months)
		}
		if math.Abs(result.MonthlyPayment-check.expectedPayment) > 0.01 {
			t.Errorf("Points %g: expected monthly payment %.2f, got %.2f",
				check.points, check.expectedPayment, result.MonthlyPayment)
		}
	}
}

// TestOptimizerIntegration runs the grid search configured in the example
// configuration and applies the winner to the report
func TestOptimizerIntegration(t *testing.T) {
	logger := zap.NewNop()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	result, err := report.Generate(logger, conf)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	runner, err := optimizer.NewRunner(logger, conf)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	if !runner.Enabled() {
		t.Fatalf("Expected optimizer to be enabled for the example configuration")
	}

	optimal, err := runner.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Grid is 0 through 2 in steps of 0.5
	if len(optimal.Evaluations) != 5 {
		t.Errorf("Expected 5 grid evaluations, got %d", len(optimal.Evaluations))
	}

	// With a 0.125 percent/year reduction per point the rate savings never
	// recoup the per-point cost over ten years, so zero points wins
	if optimal.Best.Points != 0 {
		t.Errorf("Expected 0 points to win, got %g", optimal.Best.Points)
	}
	if math.Abs(optimal.Best.TotalCost-712470.83) > 1.0 {
		t.Errorf("Expected winning total cost 712470.83, got %.2f", optimal.Best.TotalCost)
	}
	if optimal.Best.Months != 120 {
		t.Errorf("Expected winning term of 120 months, got %d", optimal.Best.Months)
	}

	optimal.Apply(result)
	if result.Optimal == nil {
		t.Fatalf("Apply() did not attach the optimum to the report")
	}
	if result.Optimal.Points != optimal.Best.Points {
		t.Errorf("Applied optimum points %g does not match winner %g",
			result.Optimal.Points, optimal.Best.Points)
	}
}

// TestCSVOutputFormat tests that CSV output matches our baseline format
func TestCSVOutputFormat(t *testing.T) {
	logger := zap.NewNop()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	result, err := report.Generate(logger, conf)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	csv := output.CsvString(result)
	lines := strings.Split(strings.TrimSpace(csv), "\n")

	// Header plus one row per points option
	if len(lines) != 5 {
		t.Fatalf("Expected 5 CSV lines, got %d: %q", len(lines), csv)
	}

	expectedHeader := `"loan","points","effective rate (percent/year)","closing costs","monthly payment","months","total cost"`
	if lines[0] != expectedHeader {
		t.Errorf("CSV header = %q, expected %q", lines[0], expectedHeader)
	}

	expectedZeroPointsRow := `"primary residence","0","4.0000","5000.00","5062.26","120","712470.83"`
	if lines[1] != expectedZeroPointsRow {
		t.Errorf("CSV row = %q, expected %q", lines[1], expectedZeroPointsRow)
	}

	expectedPointsColumn := []string{`"0"`, `"0.5"`, `"1"`, `"2"`}
	for i, line := range lines[1:] {
		parts := strings.Split(line, ",")

		// Should have 7 parts: loan, points, rate, closing, payment, months, total
		if len(parts) != 7 {
			t.Errorf("CSV line should have 7 parts, got %d: %s", len(parts), line)
			continue
		}

		if parts[0] != `"primary residence"` {
			t.Errorf("CSV loan column should be quoted loan name: %s", parts[0])
		}
		if parts[1] != expectedPointsColumn[i] {
			t.Errorf("CSV points column = %s, expected %s", parts[1], expectedPointsColumn[i])
		}
	}
}

// TestPrettyOutputFormat tests the pretty print output
func TestPrettyOutputFormat(t *testing.T) {
	logger := zap.NewNop()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	result, err := report.Generate(logger, conf)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Test that PrettyFormat doesn't crash
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrettyFormat() panicked: %v", r)
		}
	}()

	// Redirect stdout to /dev/null to suppress output
	originalStdout := os.Stdout
	devNull, err := os.OpenFile("/dev/null", os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("Failed to open /dev/null: %v", err)
	}
	os.Stdout = devNull

	// Call PrettyFormat with redirected stdout
	output.PrettyFormat(result)

	// Restore stdout and close /dev/null
	os.Stdout = originalStdout
	_ = devNull.Close()

	// We can't verify the content, but the test passes if there's no panic
	t.Log("PrettyFormat completed without panic")
}

// TestCsvFormatOutput tests the CSV format function
func TestCsvFormatOutput(t *testing.T) {
	logger := zap.NewNop()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	result, err := report.Generate(logger, conf)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Test that CsvFormat doesn't crash
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("CsvFormat() panicked: %v", r)
		}
	}()

	// Redirect stdout to /dev/null to suppress output
	originalStdout := os.Stdout
	devNull, err := os.OpenFile("/dev/null", os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("Failed to open /dev/null: %v", err)
	}
	os.Stdout = devNull

	// Call CsvFormat with redirected stdout
	output.CsvFormat(result)

	// Restore stdout and close /dev/null
	os.Stdout = originalStdout
	_ = devNull.Close()

	// We can't verify the content, but the test passes if there's no panic
	t.Log("CsvFormat completed without panic")
}

// TestConfigurationValidation tests validation of different configuration scenarios
func TestConfigurationValidation(t *testing.T) {
	tests := []struct {
		name            string
		setupConfig     func() *config.Configuration
		expectWarning   string
		expectNoWarning bool
	}{
		{
			name: "Valid default configuration",
			setupConfig: func() *config.Configuration {
				conf := &config.Configuration{}
				conf.ApplyDefaults()
				return conf
			},
			expectNoWarning: true,
		},
		{
			name: "Home value below loan amount",
			setupConfig: func() *config.Configuration {
				conf := &config.Configuration{
					Loan: config.LoanConfig{
						HomeValue: "400000 dollars",
					},
				}
				conf.ApplyDefaults()
				return conf
			},
			expectWarning: "down payment",
		},
		{
			name: "Unparseable loan quantity",
			setupConfig: func() *config.Configuration {
				conf := &config.Configuration{
					Loan: config.LoanConfig{
						Duration: "a while",
					},
				}
				conf.ApplyDefaults()
				return conf
			},
			expectWarning: "Cannot validate configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := tt.setupConfig()
			warnings := conf.ValidateConfiguration()

			if tt.expectNoWarning {
				if len(warnings) != 0 {
					t.Errorf("Expected no warnings, got %v", warnings)
				}
				return
			}

			found := false
			for _, warning := range warnings {
				if strings.Contains(warning, tt.expectWarning) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Expected a warning containing %q, got %v", tt.expectWarning, warnings)
			}
		})
	}
}

// TestEndToEndWithOverpayments compares a plain schedule against one with
// extra principal payments end-to-end
func TestEndToEndWithOverpayments(t *testing.T) {
	logger := zap.NewNop()

	// Create the two configurations programmatically
	baseline := &config.Configuration{
		StartDate: "2026-01",
		Points:    []float64{0},
	}
	baseline.ApplyDefaults()

	overpaying := &config.Configuration{
		StartDate: "2026-01",
		Points:    []float64{0},
		Overpayments: []config.OverpaymentConfig{
			{
				Amount:     "250 dollars/month",
				MinBalance: "100000 dollars",
			},
		},
	}
	overpaying.ApplyDefaults()

	baselineReport, err := report.Generate(logger, baseline)
	if err != nil {
		t.Fatalf("Generate() baseline error = %v", err)
	}
	overpayingReport, err := report.Generate(logger, overpaying)
	if err != nil {
		t.Fatalf("Generate() overpaying error = %v", err)
	}

	baseResult := testutil.FindResult(baselineReport.Results, 0)
	overResult := testutil.FindResult(overpayingReport.Results, 0)
	if baseResult == nil || overResult == nil {
		t.Fatalf("Could not find the zero points result in both reports")
	}

	// Extra principal should shorten the term and cut total interest
	if overResult.Months >= baseResult.Months {
		t.Errorf("Expected overpaying term (%d months) to be shorter than baseline (%d months)",
			overResult.Months, baseResult.Months)
	}
	if overResult.TotalCost >= baseResult.TotalCost {
		t.Errorf("Expected overpaying total (%.2f) to be cheaper than baseline (%.2f)",
			overResult.TotalCost, baseResult.TotalCost)
	}

	if baseResult.Months != 120 {
		t.Errorf("Expected baseline term of 120 months, got %d", baseResult.Months)
	}
	if overResult.Months != 115 {
		t.Errorf("Expected overpaying term of 115 months, got %d", overResult.Months)
	}
	if !testutil.CloseTo(baseResult.TotalCost, 712470.83, 1.0) {
		t.Errorf("Expected baseline total cost 712470.83, got %.2f", baseResult.TotalCost)
	}
	if !testutil.CloseTo(overResult.TotalCost, 706181.02, 1.0) {
		t.Errorf("Expected overpaying total cost 706181.02, got %.2f", overResult.TotalCost)
	}
}
