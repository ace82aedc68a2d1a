package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type healthResponse struct {
	Status    string `json:"status"`
	Generator struct {
		Name      string `json:"name"`
		Available bool   `json:"available"`
		Reason    string `json:"reason"`
	} `json:"generator"`
}

type textRequest struct {
	Texto string `json:"texto"`
}

type textResponse struct {
	Original   string `json:"texto_original"`
	Simplified string `json:"texto_simplificado"`
	Tokens     int    `json:"tokens_usados"`
}

type result struct {
	Sample   string `json:"sample"`
	Chars    int    `json:"chars"`
	Run      int    `json:"run"`
	WallMs   int64  `json:"wall_ms"`
	OutChars int    `json:"out_chars"`
	Tokens   int    `json:"tokens"`
	Error    string `json:"error,omitempty"`
}

func main() {
	url := flag.String("url", "http://localhost:5000", "API base URL")
	apiKey := flag.String("api-key", "", "API key (optional)")
	runs := flag.Int("runs", 3, "Number of runs per sample")
	quality := flag.Bool("quality", false, "Quality mode: show input/output for each sample (1 run, no timing table)")
	jsonOut := flag.String("json", "", "Write results to JSON file (e.g. results.json)")
	warmup := flag.Bool("warmup", false, "Run one warmup request per sample before measuring")
	flag.Parse()

	baseURL := strings.TrimRight(*url, "/")
	client := &http.Client{Timeout: 180 * time.Second}

	generator := discoverGenerator(client, baseURL)

	if *quality {
		runQualityMode(client, baseURL, *apiKey, generator)
		return
	}

	fmt.Printf("Benchmarking against %s using %s (%d runs per sample", baseURL, generator, *runs)
	if *warmup {
		fmt.Print(", warmup enabled")
	}
	fmt.Println(")")

	var results []result
	var failures int
	for _, sample := range Samples {
		if *warmup {
			fmt.Printf("  Warming up %s...", sample.Name)
			w := benchmark(client, baseURL, *apiKey, sample, 0)
			if w.Error != "" {
				fmt.Printf(" FAILED (%s)\n", w.Error)
			} else {
				fmt.Printf(" %dms (discarded)\n", w.WallMs)
			}
		}
		for run := 1; run <= *runs; run++ {
			fmt.Printf("  Running %s (run %d/%d)...", sample.Name, run, *runs)
			r := benchmark(client, baseURL, *apiKey, sample, run)
			results = append(results, r)
			if r.Error != "" {
				fmt.Printf(" FAILED (%s)\n", r.Error)
				failures++
			} else {
				fmt.Printf(" %dms, %d tokens\n", r.WallMs, r.Tokens)
			}
		}
	}

	fmt.Println()
	printTable(results)
	printSummary(results)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, results, baseURL, generator); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		} else {
			fmt.Printf("\nResults written to %s\n", *jsonOut)
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

// discoverGenerator asks /health which generator is behind the API and
// exits if it reports itself unavailable.
func discoverGenerator(client *http.Client, baseURL string) string {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching health: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Health endpoint returned %d: %s\n", resp.StatusCode, body)
		os.Exit(1)
	}

	var h healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding health: %v\n", err)
		os.Exit(1)
	}
	if !h.Generator.Available {
		fmt.Fprintf(os.Stderr, "Generator %s not available: %s\n", h.Generator.Name, h.Generator.Reason)
		os.Exit(1)
	}
	return h.Generator.Name
}

func simplify(client *http.Client, baseURL, apiKey, text string) (textResponse, error) {
	payload, _ := json.Marshal(textRequest{Texto: text})

	req, err := http.NewRequest(http.MethodPost, baseURL+"/simplificar-texto", strings.NewReader(string(payload)))
	if err != nil {
		return textResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return textResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return textResponse{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tr textResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return textResponse{}, err
	}
	return tr, nil
}

func benchmark(client *http.Client, baseURL, apiKey string, sample Sample, run int) result {
	chars := len([]rune(sample.Text))

	start := time.Now()
	tr, err := simplify(client, baseURL, apiKey, sample.Text)
	wallMs := time.Since(start).Milliseconds()
	if err != nil {
		return result{Sample: sample.Name, Chars: chars, Run: run, Error: err.Error()}
	}

	return result{
		Sample:   sample.Name,
		Chars:    chars,
		Run:      run,
		WallMs:   wallMs,
		OutChars: len([]rune(tr.Simplified)),
		Tokens:   tr.Tokens,
	}
}

func printTable(results []result) {
	fmt.Println("| Sample | Chars | Run | Wall (ms) | Tokens | Out Chars | Ratio |")
	fmt.Println("|--------|-------|-----|-----------|--------|-----------|-------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("| %-6s | %5d | %d | %9s | %6s | %9s | %5s |\n",
				r.Sample, r.Chars, r.Run, "FAIL", "-", "-", "-")
			continue
		}
		ratio := float64(r.OutChars) / float64(r.Chars)
		fmt.Printf("| %-6s | %5d | %d | %9d | %6d | %9d | %5.2f |\n",
			r.Sample, r.Chars, r.Run, r.WallMs, r.Tokens, r.OutChars, ratio)
	}
}

func runQualityMode(client *http.Client, baseURL, apiKey, generator string) {
	fmt.Printf("Quality test against %s using %s\n", baseURL, generator)
	fmt.Println(strings.Repeat("=", 72))

	var failures int
	for i, sample := range QualitySamples {
		fmt.Printf("\n--- %d/%d: %s (%d chars) ---\n", i+1, len(QualitySamples), sample.Name, len([]rune(sample.Text)))
		fmt.Printf("IN:  %s\n", sample.Text)

		start := time.Now()
		tr, err := simplify(client, baseURL, apiKey, sample.Text)
		if err != nil {
			fmt.Printf("ERR: %s\n", err)
			failures++
			continue
		}

		fmt.Printf("OUT: %s\n", tr.Simplified)
		fmt.Printf("     [%dms, %d tokens, %d->%d chars]\n",
			time.Since(start).Milliseconds(), tr.Tokens, len([]rune(sample.Text)), len([]rune(tr.Simplified)))
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 72))
	fmt.Printf("Done: %d/%d passed\n", len(QualitySamples)-failures, len(QualitySamples))
	if failures > 0 {
		os.Exit(1)
	}
}

func printSummary(results []result) {
	var ok []result
	for _, r := range results {
		if r.Error == "" {
			ok = append(ok, r)
		}
	}

	failed := len(results) - len(ok)

	if len(ok) == 0 {
		fmt.Printf("\nSummary: all %d runs failed\n", len(results))
		return
	}

	var totalWall int64
	var totalChars, totalTokens int
	minWall, maxWall := ok[0].WallMs, ok[0].WallMs
	minSample, maxSample := ok[0].Sample, ok[0].Sample

	for _, r := range ok {
		totalWall += r.WallMs
		totalChars += r.Chars
		totalTokens += r.Tokens
		if r.WallMs < minWall {
			minWall = r.WallMs
			minSample = r.Sample
		}
		if r.WallMs > maxWall {
			maxWall = r.WallMs
			maxSample = r.Sample
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("- Avg ms/char: %.2f\n", float64(totalWall)/float64(totalChars))
	fmt.Printf("- Avg tokens/run: %.1f\n", float64(totalTokens)/float64(len(ok)))
	fmt.Printf("- Min wall: %dms (%s)\n", minWall, minSample)
	fmt.Printf("- Max wall: %dms (%s)\n", maxWall, maxSample)
	fmt.Printf("- Total runs: %d (%d ok, %d failed)\n", len(results), len(ok), failed)
}

type jsonReport struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Generator string   `json:"generator"`
	Results   []result `json:"results"`
}

func writeJSON(path string, results []result, baseURL, generator string) error {
	report := jsonReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       baseURL,
		Generator: generator,
		Results:   results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
