// Package fetcher retrieves the compressed bulk-extract archives and
// makes their flat files available to the parser. Source failure is
// fatal to the run; there is no recovery beyond the retry policy.
package fetcher

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fecflow/internal/config"
)

// Fetcher errors.
var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrAllSourcesExhausted  = errors.New("all sources exhausted")
	ErrNoArchiveMember      = errors.New("no matching member in archive")
)

// maxArchiveBytes caps how much of a response body is read.
const maxArchiveBytes = 2 << 30

// Fetcher downloads archives with config-driven retry logic.
type Fetcher struct {
	client      *http.Client
	retryPolicy *config.RetryPolicy
	workDir     string
}

// NewFetcher creates a fetcher with a default retry policy.
func NewFetcher(workDir string) *Fetcher {
	return NewFetcherWithConfig(&config.RetryPolicy{
		MaxAttempts:       3,
		InitialDelayMs:    500,
		MaxDelayMs:        30000,
		BackoffMultiplier: 2.0,
		TimeoutSec:        120,
	}, workDir)
}

// NewFetcherWithConfig creates a fetcher with a custom retry policy.
// workDir is where archives and extracted files land; empty means
// the OS temp directory.
func NewFetcherWithConfig(retryPolicy *config.RetryPolicy, workDir string) *Fetcher {
	if workDir == "" {
		workDir = os.TempDir()
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: retryPolicy.GetTimeout(),
		},
		retryPolicy: retryPolicy,
		workDir:     workDir,
	}
}

// Fetch retrieves the source's archive, extracts its flat file, and
// returns the extracted path with a cleanup func that removes the
// local material. The archive itself is deleted as soon as
// extraction succeeds; local-file sources bypass the network and the
// cleanup is a no-op for them.
func (f *Fetcher) Fetch(src config.SourceConfig) (string, func(), error) {
	if src.IsLocalFile() {
		if strings.HasSuffix(src.File, ".zip") {
			path, err := f.extract(src.File, src.Member)
			if err != nil {
				return "", nil, err
			}

			return path, func() { os.Remove(path) }, nil
		}

		return src.File, func() {}, nil
	}

	archivePath, err := f.download(src)
	if err != nil {
		return "", nil, err
	}

	path, err := f.extract(archivePath, src.Member)

	// The archive is throwaway either way.
	os.Remove(archivePath)

	if err != nil {
		return "", nil, err
	}

	return path, func() { os.Remove(path) }, nil
}

// download tries the primary URL and then each backup, applying the
// retry policy per URL, and writes the archive to the work dir.
func (f *Fetcher) download(src config.SourceConfig) (string, error) {
	var lastErr error

	for _, url := range src.GetAllURLs() {
		if url == "" {
			continue
		}

		body, err := f.fetchURL(url)
		if err != nil {
			lastErr = err

			continue
		}

		out := filepath.Join(f.workDir, src.Kind+".zip")
		if err := os.WriteFile(out, body, 0644); err != nil {
			return "", fmt.Errorf("failed to write archive: %w", err)
		}

		return out, nil
	}

	if lastErr == nil {
		lastErr = ErrAllSourcesExhausted
	}

	return "", fmt.Errorf("failed to download %s extract: %w", src.Kind, lastErr)
}

// fetchURL performs a retrying GET against one URL.
func (f *Fetcher) fetchURL(url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= f.retryPolicy.MaxAttempts; attempt++ {
		if attempt > 1 {
			if delay := f.retryPolicy.GetRetryDelay(attempt); delay > 0 {
				time.Sleep(delay)
			}
		}

		req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed (attempt %d/%d): %w", attempt, f.retryPolicy.MaxAttempts, err)

			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)

			if !isRetryableStatus(resp.StatusCode) {
				return nil, lastErr
			}

			continue
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxArchiveBytes))
		resp.Body.Close()

		if err != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", err)

			continue
		}

		return body, nil
	}

	return nil, lastErr
}

// extract writes the named zip member (or the single .txt member if
// no name is configured) next to the archive and returns its path.
func (f *Fetcher) extract(archivePath, member string) (string, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to open archive %s: %w", archivePath, err)
	}
	defer zr.Close()

	var file *zip.File

	for _, zf := range zr.File {
		if member != "" {
			if zf.Name == member {
				file = zf

				break
			}

			continue
		}

		if strings.HasSuffix(zf.Name, ".txt") {
			file = zf

			break
		}
	}

	if file == nil {
		return "", fmt.Errorf("%w: %s in %s", ErrNoArchiveMember, member, archivePath)
	}

	rc, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open archive member: %w", err)
	}
	defer rc.Close()

	outPath := filepath.Join(f.workDir, filepath.Base(file.Name))

	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		os.Remove(outPath)

		return "", fmt.Errorf("failed to extract %s: %w", file.Name, err)
	}

	return outPath, nil
}

// isRetryableStatus determines if we should retry based on HTTP status code.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
		http.StatusTooManyRequests,
		http.StatusRequestTimeout:
		return true
	}

	return false
}
