package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/japaniel/tokanalyze/pkg/analysis"
)

func main() {
	configFlag := flag.String("config", "", "Path to analyzer configuration JSON")
	textFlag := flag.String("text", "", "Text to analyze")
	fileFlag := flag.String("file", "", "Path to a text file to analyze (overrides -text)")
	batchFlag := flag.String("batch-file", "", "Path to a file of newline-separated texts to analyze concurrently")
	workersFlag := flag.Int("workers", 4, "Worker count for -batch-file")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *configFlag == "" {
		log.Fatal("Please provide a -config")
	}

	data, err := os.ReadFile(*configFlag)
	if err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}

	cfg, err := analysis.ParseConfig(data)
	if err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	analyzer, err := analysis.NewAnalyzer(cfg)
	if err != nil {
		log.Fatalf("Failed to construct analyzer: %v", err)
	}

	if *batchFlag != "" {
		runBatch(ctx, analyzer, *batchFlag, *workersFlag)
		return
	}

	text := *textFlag
	if *fileFlag != "" {
		contents, err := os.ReadFile(*fileFlag)
		if err != nil {
			log.Fatalf("Failed to read input file: %v", err)
		}
		text = string(contents)
	}
	if text == "" {
		log.Fatal("Please provide -text, -file, or -batch-file")
	}

	tokens, err := analyzer.Analyze(text)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	printTokens(tokens)
}

// runBatch reads one text per line from path and analyzes all of them
// concurrently, stopping early if ctx is canceled before the batch
// starts (a SIGINT/SIGTERM during the read of a very large input file).
func runBatch(ctx context.Context, analyzer *analysis.Analyzer, path string, workers int) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open batch file: %v", err)
	}
	defer f.Close()

	var texts []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed to read batch file: %v", err)
	}

	if err := ctx.Err(); err != nil {
		log.Fatalf("Canceled before batch could start: %v", err)
	}

	results, err := analysis.AnalyzeBatch(analyzer, texts, workers)
	if err != nil {
		log.Fatalf("Batch analysis failed: %v", err)
	}
	for _, tokens := range results {
		printTokens(tokens)
	}
}

func printTokens(tokens any) {
	out, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode tokens: %v", err)
	}
	fmt.Println(string(out))
}
