// Package dataset loads SimBench result records from JSON or CSV files,
// fetches them over HTTP, and generates the synthetic fallback dataset used
// when no real results are available.
package dataset

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	"github.com/pitehu/simbench/internal/models"
)

// LoadFile reads a JSON array of raw records from disk. Files ending in .zst
// or .gz are decompressed transparently.
func LoadFile(path string) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("dataset: zstd reader for %s: %w", path, err)
		}
		defer dec.Close()
		reader = dec
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("dataset: gzip reader for %s: %w", path, err)
		}
		defer gz.Close() //nolint:errcheck
		reader = gz
	}

	return decodeRecords(reader, path)
}

// LoadDir reads every result file in a directory concurrently and returns
// the concatenation, ordered by file name so aggregation order is
// deterministic. Recognized extensions: .json, .json.gz, .json.zst.
func LoadDir(ctx context.Context, dir string) ([]models.RawRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset: read dir %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".json.gz") ||
			strings.HasSuffix(name, ".json.zst") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("dataset: no result files in %s", dir)
	}
	sort.Strings(paths)

	// Each goroutine fills its own slot, so no locking is needed.
	byPath := make([][]models.RawRecord, len(paths))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range paths {
		g.Go(func() error {
			records, err := LoadFile(path)
			if err != nil {
				return err
			}
			byPath[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []models.RawRecord
	for _, records := range byPath {
		all = append(all, records...)
	}
	return all, nil
}

// Fetch performs the single read-only GET of a static JSON resource. A non-2xx
// status or malformed body is an error; the caller decides the fallback.
func Fetch(ctx context.Context, url string) ([]models.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dataset: build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset: fetch %s: %w", url, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("dataset: fetch %s: unexpected status %s", url, resp.Status)
	}

	return decodeRecords(resp.Body, url)
}

func decodeRecords(r io.Reader, source string) ([]models.RawRecord, error) {
	var records []models.RawRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", source, err)
	}
	return records, nil
}

// WriteFile writes records as an indented JSON array using the external
// field-name contract.
func WriteFile(path string, records []models.RawRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("dataset: marshal records: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}
	return nil
}
