package dataset

import (
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JonMunkholm/salarydash/internal/core"
)

func TestNewSource(t *testing.T) {
	tests := []struct {
		name     string
		location string
		opts     Options
		wantType string
		wantErr  bool
	}{
		{"https url", DefaultURL, Options{}, "*dataset.HTTPSource", false},
		{"http url", "http://example.com/x.csv", Options{}, "*dataset.HTTPSource", false},
		{"file path", "./data/salaries.csv", Options{}, "*dataset.FileSource", false},
		{"postgres", "postgres://u:p@localhost/db", Options{Table: "salaries"}, "*dataset.PostgresSource", false},
		{"postgres without table", "postgresql://localhost/db", Options{}, "", true},
		{"empty", "  ", Options{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewSource(tt.location, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSource() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := typeName(src); got != tt.wantType {
				t.Errorf("NewSource() type = %s, want %s", got, tt.wantType)
			}
		})
	}
}

func typeName(src Source) string {
	switch src.(type) {
	case *HTTPSource:
		return "*dataset.HTTPSource"
	case *FileSource:
		return "*dataset.FileSource"
	case *PostgresSource:
		return "*dataset.PostgresSource"
	}
	return "unknown"
}

func TestHTTPSource_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = io.WriteString(w, sampleCSV)
	}))
	defer srv.Close()

	var progressed atomic.Bool
	src, err := NewSource(srv.URL, Options{
		Progress: func(body io.Reader, size int64) io.Reader {
			progressed.Store(true)
			return body
		},
	})
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	ds, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(ds) != 3 {
		t.Errorf("rows = %d, want 3", len(ds))
	}
	if !progressed.Load() {
		t.Error("progress hook was not called")
	}
}

func TestHTTPSource_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	src, _ := NewSource(srv.URL, Options{})
	_, err := src.Load(context.Background())
	if !errors.Is(err, ErrFetch) {
		t.Errorf("Load() error = %v, want ErrFetch", err)
	}
}

func TestHTTPSource_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	src, _ := NewSource(srv.URL, Options{Timeout: 50 * time.Millisecond})
	_, err := src.Load(context.Background())
	if !errors.Is(err, ErrFetch) {
		t.Errorf("Load() error = %v, want ErrFetch", err)
	}
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salaries.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatal(err)
	}

	ds, err := (&FileSource{Path: path}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(ds) != 3 {
		t.Errorf("rows = %d, want 3", len(ds))
	}

	_, err = (&FileSource{Path: filepath.Join(t.TempDir(), "missing.csv")}).Load(context.Background())
	if !errors.Is(err, ErrFetch) {
		t.Errorf("missing file error = %v, want ErrFetch", err)
	}
}

func TestPostgresSource_String(t *testing.T) {
	src := &PostgresSource{DSN: "postgres://admin:secret@db:5432/salaries", Table: "public.rows"}
	got := src.String()
	if strings.Contains(got, "secret") {
		t.Errorf("String() leaks password: %s", got)
	}
	if !strings.Contains(got, "public.rows") {
		t.Errorf("String() = %s, want table name", got)
	}
}

func TestPostgresSource_Query(t *testing.T) {
	src := &PostgresSource{Table: `public.salary "rows"`}
	q := src.selectQuery()
	if !strings.Contains(q, `FROM "public"."salary ""rows"""`) {
		t.Errorf("query does not quote identifier: %s", q)
	}
}

func TestCheckSalaries(t *testing.T) {
	tests := []struct {
		name    string
		usd     float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 125000.5, false},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"positive infinity", math.Inf(1), true},
		{"negative infinity", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []core.Record{{Year: 2023, USD: 1000}, {Year: 2023, USD: tt.usd}}
			err := checkSalaries(records)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkSalaries() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidRow) {
				t.Errorf("error = %v, want ErrInvalidRow", err)
			}
			if err != nil && !strings.Contains(err.Error(), "row 2") {
				t.Errorf("error = %v, want row number", err)
			}
		})
	}
}

// Runs only against a real database, e.g.
// SALARYDASH_TEST_DSN=postgres://localhost/test SALARYDASH_TEST_TABLE=salaries
func TestPostgresSource_Load(t *testing.T) {
	dsn := os.Getenv("SALARYDASH_TEST_DSN")
	table := os.Getenv("SALARYDASH_TEST_TABLE")
	if dsn == "" || table == "" {
		t.Skip("SALARYDASH_TEST_DSN and SALARYDASH_TEST_TABLE not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ds, err := (&PostgresSource{DSN: dsn, Table: table}).Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	t.Logf("loaded %d rows", len(ds))
}

// ----------------------------------------------------------------------------
// Cache Tests
// ----------------------------------------------------------------------------

type countingSource struct {
	calls atomic.Int32
	fail  atomic.Bool
	delay time.Duration
}

func (s *countingSource) Load(ctx context.Context) (core.Dataset, error) {
	s.calls.Add(1)
	time.Sleep(s.delay)
	if s.fail.Load() {
		return nil, ErrFetch
	}
	return ParseCSV(strings.NewReader(sampleCSV))
}

func (s *countingSource) String() string { return "counting" }

func TestCache_LoadsOnce(t *testing.T) {
	src := &countingSource{delay: 20 * time.Millisecond}
	cache := NewCache(src, time.Second)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ds, err := cache.Get(context.Background())
			if err != nil || len(ds) != 3 {
				t.Errorf("Get() = %d rows, %v", len(ds), err)
			}
		}()
	}
	wg.Wait()

	if _, err := cache.Get(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := src.calls.Load(); n != 1 {
		t.Errorf("Load called %d times, want 1", n)
	}
	if !cache.Loaded() {
		t.Error("Loaded() = false after successful Get")
	}
}

func TestCache_RetriesAfterFailure(t *testing.T) {
	src := &countingSource{}
	src.fail.Store(true)
	cache := NewCache(src, time.Second)

	if _, err := cache.Get(context.Background()); !errors.Is(err, ErrFetch) {
		t.Fatalf("Get() error = %v, want ErrFetch", err)
	}
	if cache.Loaded() {
		t.Error("failed load must not be cached")
	}

	src.fail.Store(false)
	if _, err := cache.Get(context.Background()); err != nil {
		t.Fatalf("Get() retry error = %v", err)
	}
	if n := src.calls.Load(); n != 2 {
		t.Errorf("Load called %d times, want 2", n)
	}
}

func TestCache_CallerCancelDoesNotAbortLoad(t *testing.T) {
	src := &countingSource{delay: 50 * time.Millisecond}
	cache := NewCache(src, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	if _, err := cache.Get(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Get() error = %v, want DeadlineExceeded", err)
	}

	ds, err := cache.Get(context.Background())
	if err != nil || len(ds) != 3 {
		t.Fatalf("Get() = %d rows, %v", len(ds), err)
	}
	if n := src.calls.Load(); n != 1 {
		t.Errorf("Load called %d times, want 1", n)
	}
	if cache.Source() != Source(src) {
		t.Error("Source() does not return the wrapped source")
	}
}
