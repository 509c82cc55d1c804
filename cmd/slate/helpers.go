package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// collectTitles gathers titles from arguments, an optional file, and stdin
// (when neither arguments nor a file provide any and stdin is piped).
func collectTitles(args []string, filePath string, stdin io.Reader) ([]string, error) {
	var titles []string
	for _, arg := range args {
		if trimmed := strings.TrimSpace(arg); trimmed != "" {
			titles = append(titles, trimmed)
		}
	}

	if filePath != "" {
		file, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("open titles file: %w", err)
		}
		defer file.Close()
		fromFile, err := readTitles(file)
		if err != nil {
			return nil, fmt.Errorf("read titles file: %w", err)
		}
		titles = append(titles, fromFile...)
	}

	if len(titles) == 0 && stdinPiped(stdin) {
		fromStdin, err := readTitles(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		titles = append(titles, fromStdin...)
	}

	return titles, nil
}

// readTitles parses one title per line, skipping blanks and # comments.
func readTitles(r io.Reader) ([]string, error) {
	var titles []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		titles = append(titles, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return titles, nil
}

func stdinPiped(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		// Non-file readers (tests, cobra buffers) are treated as piped input.
		return true
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var mediaKindCaser = cases.Title(language.English)

// mediaKindLabel renders a TMDB media type for display ("movie" -> "Movie",
// "tv" -> "TV").
func mediaKindLabel(mediaType string) string {
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "tv":
		return "TV"
	case "":
		return "-"
	default:
		return mediaKindCaser.String(mediaType)
	}
}
