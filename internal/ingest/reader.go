package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/arete-labs/reddit-harvester/internal/domain"
)

// Regex for valid subreddit names
var subNameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,21}$`)

// LoadSources reads a label,subreddit CSV. The header row is skipped, rows
// with an invalid subreddit name are dropped (fail-soft), and an empty label
// falls back to the subreddit name.
func LoadSources(path string) ([]domain.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sources file: %w", err)
	}
	defer f.Close()

	// Wrap in BOM stripper
	r := csv.NewReader(stripBOM(f))
	r.FieldsPerRecord = -1

	var sources []domain.Source
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		line++
		if line == 1 {
			continue // Skip header
		}
		if len(record) == 0 {
			continue
		}

		label := strings.TrimSpace(record[0])
		sub := label
		if len(record) > 1 && strings.TrimSpace(record[1]) != "" {
			sub = strings.TrimSpace(record[1])
		}
		if !subNameRegex.MatchString(sub) {
			continue
		}
		if label == "" {
			label = sub
		}

		sources = append(sources, domain.Source{Label: label, Subreddit: sub})
	}
	return sources, nil
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	rn, _, err := br.ReadRune()
	if err != nil {
		return br
	}
	if rn != '\uFEFF' {
		br.UnreadRune()
	}
	return br
}
