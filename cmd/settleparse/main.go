package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agencydesk/settlements/constants"
	"github.com/agencydesk/settlements/internal/common"
	"github.com/agencydesk/settlements/internal/export"
	"github.com/agencydesk/settlements/internal/parser"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "settleparse <ocr-text-file>")
		os.Exit(2)
	}
	inPath := os.Args[1]

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(2)
	}
	docType, _ := constants.ParseDocType(cfg.DocType)
	provider := constants.ParseProvider(cfg.Provider)

	raw, err := os.ReadFile(inPath)
	if err != nil {
		logger.Error("read input", "path", inPath, "error", err)
		os.Exit(1)
	}

	runID := uuid.New()
	start := time.Now()
	res := parser.Parse(docType, string(raw), provider)
	dur := time.Since(start)

	logger.Info("parse done",
		"run_id", runID,
		"doc_type", docType,
		"provider_hint", provider,
		"lines", len(res.Lines),
		"errors", len(res.Errors),
		"duration_ms", dur.Milliseconds(),
	)
	for _, e := range res.Errors {
		logger.Warn("parse issue", "run_id", runID, "error", e)
	}

	switch cfg.Output {
	case "xlsx":
		svc := export.NewService(logger)
		b, err := svc.ExportLinesXLSX([]parser.ParseResult{res})
		if err != nil {
			logger.Error("export failed", "run_id", runID, "error", err)
			os.Exit(1)
		}
		outPath := cfg.OutputPath
		if outPath == "" {
			outPath = strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".xlsx"
		}
		if err := os.WriteFile(outPath, b, 0o644); err != nil {
			logger.Error("write output", "path", outPath, "error", err)
			os.Exit(1)
		}
		logger.Info("workbook written", "run_id", runID, "path", outPath)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			logger.Error("encode result", "run_id", runID, "error", err)
			os.Exit(1)
		}
	}
}
