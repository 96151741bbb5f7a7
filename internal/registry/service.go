package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/nexent-labs/modelctl/internal/logger"
)

// API is the registry surface the batch service depends on.
type API interface {
	CreateModel(ctx context.Context, m ModelConfig) error
	ListModels(ctx context.Context) ([]RemoteModel, error)
	DeleteModel(ctx context.Context, displayName string) error
	HealthCheck(ctx context.Context, displayName string) (bool, error)
}

// Recorder receives the outcome of every registry operation, e.g. for a
// local run-history store. Implementations must tolerate concurrent calls.
type Recorder interface {
	Record(operation, model string, ok bool, detail string)
}

// Result is the outcome of one registry operation for one model.
type Result struct {
	Model string
	OK    bool
	Err   error
}

// Summary aggregates per-record results of a batch operation.
type Summary struct {
	Results []Result
}

// Succeeded returns the number of successful records.
func (s Summary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.OK {
			n++
		}
	}
	return n
}

// Failed returns the number of failed records.
func (s Summary) Failed() int {
	return len(s.Results) - s.Succeeded()
}

// OK reports whether every record succeeded.
func (s Summary) OK() bool {
	return s.Failed() == 0
}

// Service orchestrates batch operations against the registry. Individual
// record failures never abort the remaining batch; the summary carries the
// per-record outcomes.
type Service struct {
	api         API
	logger      logger.Logger
	recorder    Recorder
	parallelism int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger.
func WithServiceLogger(log logger.Logger) ServiceOption {
	return func(s *Service) { s.logger = log }
}

// WithRecorder sets the outcome recorder.
func WithRecorder(r Recorder) ServiceOption {
	return func(s *Service) { s.recorder = r }
}

// WithParallelism bounds how many records of a batch are processed
// concurrently. Values below 2 keep the batch fully sequential.
func WithParallelism(n int) ServiceOption {
	return func(s *Service) {
		if n > 1 {
			s.parallelism = n
		}
	}
}

// NewService creates a batch service on top of the given registry API.
func NewService(api API, opts ...ServiceOption) *Service {
	s := &Service{
		api:         api,
		logger:      logger.Discard,
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ImportAll registers every model, one create call per record. Results keep
// the input order regardless of parallelism.
func (s *Service) ImportAll(ctx context.Context, models []ModelConfig) Summary {
	s.logger.Info("starting bulk import", map[string]interface{}{"count": len(models)})

	results := s.forEach(ctx, len(models), func(ctx context.Context, i int) Result {
		m := models[i]
		if err := s.api.CreateModel(ctx, m); err != nil {
			return Result{Model: m.Label(), Err: err}
		}
		return Result{Model: m.Label(), OK: true}
	})

	summary := Summary{Results: results}
	s.record("import", summary)
	s.logger.Info("bulk import finished", map[string]interface{}{
		"succeeded": summary.Succeeded(),
		"failed":    summary.Failed(),
	})
	return summary
}

// List returns the models currently registered.
func (s *Service) List(ctx context.Context) ([]RemoteModel, error) {
	return s.api.ListModels(ctx)
}

// DeleteAll lists the registered models and deletes each one. An empty
// registry is a success. The returned error covers the list call only;
// per-record delete failures live in the summary.
func (s *Service) DeleteAll(ctx context.Context) (Summary, error) {
	models, err := s.api.ListModels(ctx)
	if err != nil {
		return Summary{}, err
	}

	if len(models) == 0 {
		s.logger.Info("no models registered, nothing to delete", nil)
		return Summary{}, nil
	}

	s.logger.Info("deleting all models", map[string]interface{}{"count": len(models)})

	results := s.forEach(ctx, len(models), func(ctx context.Context, i int) Result {
		name := models[i].Label()
		if err := s.api.DeleteModel(ctx, name); err != nil {
			return Result{Model: name, Err: err}
		}
		return Result{Model: name, OK: true}
	})

	summary := Summary{Results: results}
	s.record("delete", summary)
	return summary, nil
}

// Delete removes one model by name.
func (s *Service) Delete(ctx context.Context, name string) Result {
	r := Result{Model: name, OK: true}
	if err := s.api.DeleteModel(ctx, name); err != nil {
		r = Result{Model: name, Err: err}
	}
	s.record("delete", Summary{Results: []Result{r}})
	return r
}

// Verify health-checks one model. A model the registry does not know, or a
// failed connectivity probe, is a failure.
func (s *Service) Verify(ctx context.Context, name string) Result {
	r := s.verifyOne(ctx, name)
	s.record("verify", Summary{Results: []Result{r}})
	return r
}

// VerifyAll health-checks every registered model. The returned error covers
// the list call only.
func (s *Service) VerifyAll(ctx context.Context) (Summary, error) {
	models, err := s.api.ListModels(ctx)
	if err != nil {
		return Summary{}, err
	}

	if len(models) == 0 {
		s.logger.Info("no models registered, nothing to verify", nil)
		return Summary{}, nil
	}

	s.logger.Info("verifying all models", map[string]interface{}{"count": len(models)})

	results := s.forEach(ctx, len(models), func(ctx context.Context, i int) Result {
		return s.verifyOne(ctx, models[i].Label())
	})

	summary := Summary{Results: results}
	s.record("verify", summary)
	return summary, nil
}

func (s *Service) verifyOne(ctx context.Context, name string) Result {
	connected, err := s.api.HealthCheck(ctx, name)
	if err != nil {
		return Result{Model: name, Err: err}
	}
	if !connected {
		return Result{Model: name, Err: fmt.Errorf("model %q is not reachable", name)}
	}
	return Result{Model: name, OK: true}
}

// forEach runs fn for every index, sequentially or with a bounded worker
// pool, collecting results in input order. A failing record never stops the
// others.
func (s *Service) forEach(ctx context.Context, n int, fn func(ctx context.Context, i int) Result) []Result {
	results := make([]Result, n)

	if s.parallelism < 2 || n < 2 {
		for i := 0; i < n; i++ {
			results[i] = fn(ctx, i)
		}
		return results
	}

	type indexed struct {
		i int
		r Result
	}

	indices := make(chan int)
	outcomes := make(chan indexed)

	workers := s.parallelism
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				outcomes <- indexed{i: i, r: fn(ctx, i)}
			}
		}()
	}

	go func() {
		for i := 0; i < n; i++ {
			indices <- i
		}
		close(indices)
		wg.Wait()
		close(outcomes)
	}()

	for o := range outcomes {
		results[o.i] = o.r
	}

	return results
}

func (s *Service) record(operation string, summary Summary) {
	if s.recorder == nil {
		return
	}
	for _, r := range summary.Results {
		detail := ""
		if r.Err != nil {
			detail = r.Err.Error()
		}
		s.recorder.Record(operation, r.Model, r.OK, detail)
	}
}
