package fetcher

import (
	"archive/zip"
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"fecflow/internal/config"
)

func zipWithMember(t *testing.T, name, content string) []byte {
	t.Helper()

	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)

	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("failed to create zip member: %v", err)
	}

	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write zip member: %v", err)
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}

	return buf.Bytes()
}

func fastRetryPolicy() *config.RetryPolicy {
	return &config.RetryPolicy{
		MaxAttempts:       3,
		InitialDelayMs:    0,
		MaxDelayMs:        0,
		BackoffMultiplier: 1.0,
		TimeoutSec:        5,
	}
}

func TestFetch_LocalPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "itcont.txt")

	if err := os.WriteFile(path, []byte("C1|x\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	f := NewFetcherWithConfig(fastRetryPolicy(), dir)

	got, cleanup, err := f.Fetch(config.SourceConfig{Kind: "contributions", File: path})
	if err != nil {
		t.Fatalf("Fetch returned unexpected error: %v", err)
	}
	defer cleanup()

	if got != path {
		t.Errorf("Fetch path = %q, want %q", got, path)
	}

	// Cleanup of a pass-through local file must not remove it.
	cleanup()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("cleanup removed the caller's local file: %v", err)
	}
}

func TestFetch_LocalZip(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "indiv06.zip")

	if err := os.WriteFile(archive, zipWithMember(t, "itcont.txt", "C1|row\n"), 0644); err != nil {
		t.Fatalf("failed to write archive: %v", err)
	}

	f := NewFetcherWithConfig(fastRetryPolicy(), dir)

	path, cleanup, err := f.Fetch(config.SourceConfig{Kind: "contributions", File: archive, Member: "itcont.txt"})
	if err != nil {
		t.Fatalf("Fetch returned unexpected error: %v", err)
	}
	defer cleanup()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read extracted file: %v", err)
	}

	if string(content) != "C1|row\n" {
		t.Errorf("extracted content = %q, want C1|row", content)
	}
}

func TestFetch_DownloadExtractsAndDeletesArchive(t *testing.T) {
	body := zipWithMember(t, "cm.txt", "C1|committee\n")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := NewFetcherWithConfig(fastRetryPolicy(), dir)

	path, cleanup, err := f.Fetch(config.SourceConfig{Kind: "committees", URL: srv.URL, Member: "cm.txt"})
	if err != nil {
		t.Fatalf("Fetch returned unexpected error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read extracted file: %v", err)
	}

	if string(content) != "C1|committee\n" {
		t.Errorf("extracted content = %q", content)
	}

	// Archive must be gone once extraction succeeded.
	if _, err := os.Stat(filepath.Join(dir, "committees.zip")); !os.IsNotExist(err) {
		t.Error("downloaded archive was not deleted after extraction")
	}

	cleanup()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("cleanup did not remove the extracted file")
	}
}

func TestFetch_RetriesOnRetryableStatus(t *testing.T) {
	attempts := 0
	body := zipWithMember(t, "weball06.txt", "A1|cand\n")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		w.Write(body)
	}))
	defer srv.Close()

	f := NewFetcherWithConfig(fastRetryPolicy(), t.TempDir())

	_, cleanup, err := f.Fetch(config.SourceConfig{Kind: "candidates", URL: srv.URL, Member: "weball06.txt"})
	if err != nil {
		t.Fatalf("Fetch returned unexpected error after retries: %v", err)
	}
	defer cleanup()

	if attempts != 3 {
		t.Errorf("server saw %d attempts, want 3", attempts)
	}
}

func TestFetch_NonRetryableStatusFailsFast(t *testing.T) {
	attempts := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcherWithConfig(fastRetryPolicy(), t.TempDir())

	_, _, err := f.Fetch(config.SourceConfig{Kind: "candidates", URL: srv.URL})
	if !errors.Is(err, ErrUnexpectedStatusCode) {
		t.Fatalf("Fetch = %v, want ErrUnexpectedStatusCode", err)
	}

	if attempts != 1 {
		t.Errorf("server saw %d attempts for 404, want 1", attempts)
	}
}

func TestFetch_BackupURLUsed(t *testing.T) {
	body := zipWithMember(t, "cm.txt", "ok\n")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	f := NewFetcherWithConfig(fastRetryPolicy(), t.TempDir())

	src := config.SourceConfig{
		Kind:       "committees",
		URL:        "http://127.0.0.1:1/nope.zip",
		BackupURLs: []string{srv.URL},
		Member:     "cm.txt",
	}

	_, cleanup, err := f.Fetch(src)
	if err != nil {
		t.Fatalf("Fetch did not fall back to backup URL: %v", err)
	}
	defer cleanup()
}

func TestExtract_MissingMember(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "a.zip")

	if err := os.WriteFile(archive, zipWithMember(t, "other.dat", "x"), 0644); err != nil {
		t.Fatalf("failed to write archive: %v", err)
	}

	f := NewFetcherWithConfig(fastRetryPolicy(), dir)

	if _, _, err := f.Fetch(config.SourceConfig{Kind: "committees", File: archive, Member: "cm.txt"}); !errors.Is(err, ErrNoArchiveMember) {
		t.Errorf("Fetch = %v, want ErrNoArchiveMember", err)
	}
}

func TestExtract_DefaultsToTxtMember(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "a.zip")

	if err := os.WriteFile(archive, zipWithMember(t, "itcont.txt", "row\n"), 0644); err != nil {
		t.Fatalf("failed to write archive: %v", err)
	}

	f := NewFetcherWithConfig(fastRetryPolicy(), dir)

	path, cleanup, err := f.Fetch(config.SourceConfig{Kind: "contributions", File: archive})
	if err != nil {
		t.Fatalf("Fetch returned unexpected error: %v", err)
	}
	defer cleanup()

	if filepath.Base(path) != "itcont.txt" {
		t.Errorf("extracted path = %q, want itcont.txt", path)
	}
}
