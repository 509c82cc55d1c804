package main

import (
	"encoding/json"
	"fmt"
	"io"

	"slate/internal/batch"
	"slate/internal/mediasearch"
	"slate/internal/resolve"
)

type jsonReference struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	MediaType   string `json:"media_type"`
	ReleaseDate string `json:"release_date,omitempty"`
	Year        string `json:"year,omitempty"`
}

type jsonResult struct {
	Query        string          `json:"query"`
	Status       string          `json:"status"`
	Matched      *jsonReference  `json:"matched,omitempty"`
	Alternatives []jsonReference `json:"alternatives,omitempty"`
	Error        string          `json:"error,omitempty"`
}

type jsonSummary struct {
	Total       int `json:"total"`
	Exact       int `json:"exact"`
	Fuzzy       int `json:"fuzzy"`
	NotFound    int `json:"not_found"`
	Errors      int `json:"errors"`
	SuccessRate int `json:"success_rate"`
}

type jsonReport struct {
	BatchID string       `json:"batch_id"`
	Results []jsonResult `json:"results"`
	Summary jsonSummary  `json:"summary"`
}

func writeJSONReport(out io.Writer, batchID string, results []resolve.Result, summary batch.Summary) error {
	report := jsonReport{
		BatchID: batchID,
		Results: make([]jsonResult, 0, len(results)),
		Summary: jsonSummary{
			Total:       summary.Total,
			Exact:       summary.Exact,
			Fuzzy:       summary.Fuzzy,
			NotFound:    summary.NotFound,
			Errors:      summary.Errors,
			SuccessRate: summary.SuccessRate,
		},
	}
	for _, result := range results {
		entry := jsonResult{
			Query:  result.Query,
			Status: string(result.Status),
			Error:  result.ErrorMessage,
		}
		if result.Matched != nil {
			ref := toJSONReference(*result.Matched)
			entry.Matched = &ref
		}
		for _, alt := range result.Alternatives {
			entry.Alternatives = append(entry.Alternatives, toJSONReference(alt))
		}
		report.Results = append(report.Results, entry)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func toJSONReference(ref mediasearch.Reference) jsonReference {
	return jsonReference{
		ID:          ref.ID,
		Title:       ref.Title,
		MediaType:   ref.MediaType,
		ReleaseDate: ref.ReleaseDate,
		Year:        ref.Year(),
	}
}
