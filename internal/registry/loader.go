package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nexent-labs/modelctl/internal/config"
	"github.com/nexent-labs/modelctl/internal/logger"
)

// Loader reads a model config document, substitutes ${VAR} placeholders
// and validates the records.
type Loader struct {
	resolver   Resolver
	unresolved config.UnresolvedPolicy
	duplicates config.DuplicatePolicy
	logger     logger.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithResolver sets the placeholder resolver.
func WithResolver(r Resolver) LoaderOption {
	return func(l *Loader) { l.resolver = r }
}

// WithUnresolvedPolicy sets the behavior for placeholders without a value.
func WithUnresolvedPolicy(p config.UnresolvedPolicy) LoaderOption {
	return func(l *Loader) { l.unresolved = p }
}

// WithDuplicatePolicy sets the behavior for duplicate model names.
func WithDuplicatePolicy(p config.DuplicatePolicy) LoaderOption {
	return func(l *Loader) { l.duplicates = p }
}

// WithLoaderLogger sets the logger used for load-time warnings.
func WithLoaderLogger(log logger.Logger) LoaderOption {
	return func(l *Loader) { l.logger = log }
}

// NewLoader creates a Loader. Without options it resolves placeholders from
// the process environment, keeps unresolved placeholders as literal text
// and rejects duplicate model names.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		resolver:   EnvResolver(),
		unresolved: config.UnresolvedKeep,
		duplicates: config.DuplicateReject,
		logger:     logger.Discard,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// document is the top-level shape of a model config file.
type document struct {
	Models []ModelConfig `json:"models"`
}

// RecordError describes everything wrong with a single record.
type RecordError struct {
	Index    int
	Name     string
	Problems []string
}

func (e *RecordError) Error() string {
	name := e.Name
	if name == "" {
		name = fmt.Sprintf("record #%d", e.Index+1)
	}
	return fmt.Sprintf("%s: %s", name, strings.Join(e.Problems, "; "))
}

// LoadError aggregates every invalid record found during a load.
type LoadError struct {
	Records []*RecordError
}

func (e *LoadError) Error() string {
	msgs := make([]string, 0, len(e.Records))
	for _, r := range e.Records {
		msgs = append(msgs, r.Error())
	}
	return fmt.Sprintf("invalid model config: %s", strings.Join(msgs, " | "))
}

// LoadFile reads and validates a model config file.
func (l *Loader) LoadFile(path string) ([]ModelConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model config file %s: %w", path, err)
	}
	defer f.Close()

	models, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading model config file %s: %w", path, err)
	}
	return models, nil
}

// Load parses and validates a model config document from r.
func (l *Loader) Load(r io.Reader) ([]ModelConfig, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing model config: %w", err)
	}

	if len(doc.Models) == 0 {
		return nil, fmt.Errorf("model config contains no models")
	}

	var recordErrs []*RecordError
	resolved := make([]ModelConfig, 0, len(doc.Models))

	for i, m := range doc.Models {
		problems := l.resolveRecord(&m)
		problems = append(problems, validateRecord(m)...)

		if len(problems) > 0 {
			recordErrs = append(recordErrs, &RecordError{Index: i, Name: m.ModelName, Problems: problems})
			continue
		}

		applyDefaults(&m)
		resolved = append(resolved, m)
	}

	if len(recordErrs) > 0 {
		return nil, &LoadError{Records: recordErrs}
	}

	return l.applyDuplicatePolicy(resolved)
}

// resolveRecord substitutes placeholders in the fields that may carry them.
func (l *Loader) resolveRecord(m *ModelConfig) []string {
	var problems []string

	for _, field := range []struct {
		name  string
		value *string
	}{
		{"api_key", &m.APIKey},
		{"base_url", &m.BaseURL},
	} {
		out, unresolved := substitute(*field.value, l.resolver)
		*field.value = out

		for _, name := range unresolved {
			if l.unresolved == config.UnresolvedFail {
				problems = append(problems, fmt.Sprintf("%s references unset variable ${%s}", field.name, name))
				continue
			}
			l.logger.Warn("placeholder left unresolved", map[string]interface{}{
				"model": m.ModelName,
				"field": field.name,
				"var":   name,
			})
		}
	}

	return problems
}

func validateRecord(m ModelConfig) []string {
	var problems []string

	if m.ModelName == "" {
		problems = append(problems, "model_name is required")
	}
	if m.ModelType == "" {
		problems = append(problems, "model_type is required")
	} else if !m.ModelType.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown model_type %q", m.ModelType))
	}
	if m.BaseURL == "" {
		problems = append(problems, "base_url is required")
	}
	if m.MaxTokens < 0 {
		problems = append(problems, "max_tokens must not be negative")
	}

	return problems
}

func applyDefaults(m *ModelConfig) {
	if m.DisplayName == "" {
		m.DisplayName = m.ModelName
	}
	if m.ModelFactory == "" {
		m.ModelFactory = DefaultModelFactory
	}
}

func (l *Loader) applyDuplicatePolicy(models []ModelConfig) ([]ModelConfig, error) {
	seen := make(map[string]int, len(models))
	out := make([]ModelConfig, 0, len(models))

	for _, m := range models {
		prev, dup := seen[m.ModelName]
		if !dup {
			seen[m.ModelName] = len(out)
			out = append(out, m)
			continue
		}

		switch l.duplicates {
		case config.DuplicateSkip:
			l.logger.Warn("skipping duplicate model entry", map[string]interface{}{"model": m.ModelName})
		case config.DuplicateLastWins:
			l.logger.Warn("overriding earlier duplicate model entry", map[string]interface{}{"model": m.ModelName})
			out[prev] = m
		default:
			return nil, fmt.Errorf("duplicate model_name %q in model config", m.ModelName)
		}
	}

	return out, nil
}
