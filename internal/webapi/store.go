package webapi

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/pitehu/simbench/internal/aggregate"
	"github.com/pitehu/simbench/internal/dataset"
	"github.com/pitehu/simbench/internal/models"
)

// Store provides access to the aggregated results data.
type Store interface {
	// Result returns the aggregation over the loaded records.
	Result() (*aggregate.Result, error)
	// Summary returns aggregate metrics across all records.
	Summary() (*SummaryResponse, error)
	// Synthetic reports whether the loaded data is the generated fallback.
	Synthetic() bool
}

// fetchTimeout bounds the single startup fetch of a remote results URL.
const fetchTimeout = 30 * time.Second

// DataStore loads raw records from a file, a directory of result shards, or
// an HTTP(S) URL, falling back to the synthetic sample dataset when the
// source cannot be loaded. Records are aggregated once per load.
type DataStore struct {
	source     string
	sampleSize int
	sampleSeed int64
	logger     *slog.Logger

	mu        sync.RWMutex
	result    *aggregate.Result
	synthetic bool
	loaded    bool
}

// NewDataStore creates a DataStore over the given source. The sample
// parameters configure the fallback dataset used when the source fails.
func NewDataStore(source string, sampleSize int, sampleSeed int64, logger *slog.Logger) *DataStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &DataStore{
		source:     source,
		sampleSize: sampleSize,
		sampleSeed: sampleSeed,
		logger:     logger,
	}
}

// load reads and aggregates records from the configured source. Load
// failures are recovered locally by substituting synthetic data; they are
// logged and never propagated.
func (ds *DataStore) load() {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	records, synthetic := ds.readRecords()
	ds.result = aggregate.Aggregate(records)
	ds.synthetic = synthetic
	ds.loaded = true
}

func (ds *DataStore) readRecords() ([]models.RawRecord, bool) {
	records, err := ds.loadSource()
	if err == nil {
		ds.logger.Info("results loaded", "source", ds.source, "records", len(records))
		return records, false
	}

	ds.logger.Warn("results unavailable, using generated sample data",
		"source", ds.source, "error", err)
	return dataset.Sample(ds.sampleSize, ds.sampleSeed), true
}

func (ds *DataStore) loadSource() ([]models.RawRecord, error) {
	if strings.HasPrefix(ds.source, "http://") || strings.HasPrefix(ds.source, "https://") {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return dataset.Fetch(ctx, ds.source)
	}

	info, err := os.Stat(ds.source)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return dataset.LoadDir(context.Background(), ds.source)
	}
	return dataset.LoadFile(ds.source)
}

// ensureLoaded loads data if not already loaded.
func (ds *DataStore) ensureLoaded() {
	ds.mu.RLock()
	if ds.loaded {
		ds.mu.RUnlock()
		return
	}
	ds.mu.RUnlock()
	ds.load()
}

// Reload forces a fresh load from the source.
func (ds *DataStore) Reload() {
	ds.load()
}

// Result returns the aggregation over the loaded records.
func (ds *DataStore) Result() (*aggregate.Result, error) {
	ds.ensureLoaded()
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.result, nil
}

// Synthetic reports whether the current data is the generated fallback.
func (ds *DataStore) Synthetic() bool {
	ds.ensureLoaded()
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.synthetic
}

// Summary returns aggregate metrics across all records.
func (ds *DataStore) Summary() (*SummaryResponse, error) {
	res, err := ds.Result()
	if err != nil {
		return nil, err
	}
	return Summarize(res), nil
}

// Summarize computes per-model KPI metrics over an aggregation result.
func Summarize(res *aggregate.Result) *SummaryResponse {
	resp := &SummaryResponse{
		TotalQuestions: len(res.Questions),
	}

	type modelData struct {
		scores      []float64
		divergences []float64
	}
	byModel := make(map[string]*modelData)
	datasets := make(map[string]struct{})

	for _, q := range res.Questions {
		if q.DatasetName != "" {
			datasets[q.DatasetName] = struct{}{}
		}
		for _, r := range q.Responses {
			resp.TotalResponses++
			md := byModel[r.Model]
			if md == nil {
				md = &modelData{}
				byModel[r.Model] = md
			}
			md.scores = append(md.scores, r.Score)
			md.divergences = append(md.divergences, r.Divergence)
		}
	}
	resp.Datasets = len(datasets)

	names := make([]string, 0, len(byModel))
	for name := range byModel {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		md := byModel[name]
		resp.Models = append(resp.Models, ModelSummary{
			Model:          name,
			Responses:      len(md.scores),
			MeanScore:      statOrZero(stats.Mean, md.scores),
			MedianScore:    statOrZero(stats.Median, md.scores),
			ScoreStdDev:    statOrZero(stats.StdDevP, md.scores),
			MeanDivergence: statOrZero(stats.Mean, md.divergences),
		})
	}
	return resp
}

// statOrZero applies a stats function, mapping the empty-input error to 0.
func statOrZero(fn func(stats.Float64Data) (float64, error), values []float64) float64 {
	v, err := fn(values)
	if err != nil {
		return 0
	}
	return v
}

// Ensure DataStore satisfies Store.
var _ Store = (*DataStore)(nil)
