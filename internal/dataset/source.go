// Package dataset loads the salary dataset from its source.
//
// Three sources are supported, chosen by the shape of the location string:
//
//   - http:// or https:// URLs are fetched and parsed as CSV
//   - postgres:// or postgresql:// URLs are queried with pgx
//   - anything else is treated as a local CSV file path
//
// Loading is the only step of the dashboard that can fail; callers treat a
// load error as fatal.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/JonMunkholm/salarydash/internal/core"
)

// Sentinel errors for errors.Is checks. Their messages double as the
// patterns core.MapError recognises.
var (
	ErrFetch         = errors.New("fetch dataset")
	ErrMissingColumn = errors.New("missing required column")
	ErrInvalidRow    = errors.New("invalid row")
	ErrEmptySource   = errors.New("empty dataset")
)

// DefaultURL is the public dataset the dashboard was built around.
const DefaultURL = "https://raw.githubusercontent.com/vqrca/dashboard_salarios_dados/refs/heads/main/dados-imersao-final.csv"

// Source produces the full dataset.
type Source interface {
	Load(ctx context.Context) (core.Dataset, error)
	String() string
}

// ProgressFunc wraps a response body so callers can report download
// progress. size is -1 when the server does not send Content-Length.
type ProgressFunc func(body io.Reader, size int64) io.Reader

// Options configures source construction.
type Options struct {
	// HTTPClient is used for URL sources. Defaults to a client with Timeout.
	HTTPClient *http.Client
	// Timeout bounds a single HTTP fetch. Default 60s.
	Timeout time.Duration
	// Table is the relation read by database sources.
	Table string
	// Progress optionally wraps HTTP response bodies.
	Progress ProgressFunc
}

// NewSource picks a Source implementation for location.
func NewSource(location string, opts Options) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: no source configured", ErrFetch)
	}

	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		client := opts.HTTPClient
		if client == nil {
			timeout := opts.Timeout
			if timeout <= 0 {
				timeout = 60 * time.Second
			}
			client = &http.Client{Timeout: timeout}
		}
		return &HTTPSource{URL: location, Client: client, Progress: opts.Progress}, nil

	case strings.HasPrefix(location, "postgres://"), strings.HasPrefix(location, "postgresql://"):
		if opts.Table == "" {
			return nil, fmt.Errorf("%w: database source needs a table name", ErrFetch)
		}
		return &PostgresSource{DSN: location, Table: opts.Table}, nil

	default:
		return &FileSource{Path: location}, nil
	}
}

// HTTPSource fetches a CSV over HTTP(S).
type HTTPSource struct {
	URL      string
	Client   *http.Client
	Progress ProgressFunc
}

// Load implements Source.
func (s *HTTPSource) Load(ctx context.Context) (core.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetch, s.URL, resp.Status)
	}

	var body io.Reader = resp.Body
	if s.Progress != nil {
		body = s.Progress(body, resp.ContentLength)
	}
	return ParseCSV(body)
}

func (s *HTTPSource) String() string {
	return s.URL
}

// FileSource reads a CSV from the local filesystem.
type FileSource struct {
	Path string
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) (core.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer f.Close()

	return ParseCSV(f)
}

func (s *FileSource) String() string {
	return s.Path
}
