// Package main provides a performance benchmarking tool for the foodsec CLI.
// It generates synthetic surveys of several sizes, runs each command a number
// of times, treats the first successful run as cold and averages the rest as warm,
// and writes a CSV summary for performance tracking.
//
// Prerequisites:
// - foodsec binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory to write the synthetic surveys to
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/foodsec/schema"
)

// BenchmarkResult holds the cold run and the average of warm runs for one case.
type BenchmarkResult struct {
	Survey   string
	Command  string
	Rows     int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Workers  int
	Runs     int
	Sizes    []int
	Commands []string
	Seed     uint64
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:  os.Args[1],
		Timeout:  2 * time.Minute,
		Workers:  4,
		Runs:     4,
		Sizes:    []int{1_000, 10_000, 100_000},
		Commands: []string{"validate", "calculate"},
		Seed:     42,
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	surveys, err := generateSurveys(config)
	if err != nil {
		fmt.Printf("Failed to generate surveys: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config, surveys)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the foodsec binary and the work dir exist.
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("foodsec"); err != nil {
		return fmt.Errorf("foodsec binary not found in PATH")
	}
	return os.MkdirAll(config.WorkDir, 0o755)
}

// generateSurveys writes one CSV survey per size holding every FCS and rCSI column.
func generateSurveys(config BenchmarkConfig) (map[int]string, error) {
	rng := rand.New(rand.NewPCG(config.Seed, config.Seed))
	header := append(schema.FCSColumns().Names(), schema.RCSIColumns().Names()...)

	surveys := make(map[int]string, len(config.Sizes))
	for _, size := range config.Sizes {
		path := filepath.Join(config.WorkDir, fmt.Sprintf("survey_%d.csv", size))
		if err := writeSurvey(path, header, size, rng); err != nil {
			return nil, err
		}
		fmt.Printf("Generated %s (%d rows)\n", path, size)
		surveys[size] = path
	}
	return surveys, nil
}

func writeSurvey(path string, header []string, rows int, rng *rand.Rand) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	record := make([]string, len(header))
	for range rows {
		for i := range record {
			record[i] = strconv.Itoa(rng.IntN(8)) // days in the last week
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// runBenchmarks executes every command against every survey size.
func runBenchmarks(config BenchmarkConfig, surveys map[int]string) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d sizes, %v timeout, %d workers, %d runs\n",
		len(config.Sizes), config.Timeout, config.Workers, config.Runs)

	for _, size := range config.Sizes {
		for _, command := range config.Commands {
			results = append(results, runBenchmarkSuite(config, surveys[size], command, size))
		}
	}
	return results
}

// runBenchmarkSuite runs one command repeatedly and summarizes the timings.
func runBenchmarkSuite(config BenchmarkConfig, survey, command string, rows int) BenchmarkResult {
	fmt.Printf("Running %s on %d rows\n", command, rows)

	cold, warm := runBenchmark(config, survey, command)

	coldStr := "TIMEOUT"
	if cold > 0 {
		coldStr = fmt.Sprintf("%.3fs", cold)
	}
	warmStr := "TIMEOUT"
	if len(warm) > 0 {
		var sum float64
		for _, t := range warm {
			sum += t
		}
		warmStr = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldStr, warmStr)

	return BenchmarkResult{
		Survey:   filepath.Base(survey),
		Command:  command,
		Rows:     rows,
		ColdTime: coldStr,
		WarmTime: warmStr,
	}
}

// runBenchmark executes a foodsec command several times and returns cold and warm times.
func runBenchmark(config BenchmarkConfig, survey, command string) (coldTime float64, warmTimes []float64) {
	args := []string{command, survey, "--output", "csv", "--output-file", os.DevNull,
		"--workers", strconv.Itoa(config.Workers), "--color", "no"}

	var times []float64
	for range config.Runs {
		start := time.Now()

		cmd := exec.Command("foodsec", args...)
		cmd.Dir = config.WorkDir

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks that the output file was reported as written.
func isSuccess(output []byte) bool {
	return strings.Contains(string(output), "Wrote CSV to")
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("foodsec_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"survey", "cmd", "rows", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Survey, result.Command, strconv.Itoa(result.Rows), result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, command := range config.Commands {
		fmt.Printf("%s:\n", command)
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %-8d rows: Cold: %s, Warm: %s\n", result.Rows, result.ColdTime, result.WarmTime)
			}
		}
	}
}
