package registry

import (
	"strings"
	"testing"

	"github.com/nexent-labs/modelctl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_SubstitutesPlaceholders(t *testing.T) {
	doc := `{"models":[{"model_name":"m1","model_type":"embedding","base_url":"https://x","api_key":"${K}","display_name":"M1"}]}`

	loader := NewLoader(WithResolver(MapResolver{"K": "secret"}))

	models, err := loader.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, models, 1)

	assert.Equal(t, "secret", models[0].APIKey)
	assert.Equal(t, "https://x", models[0].BaseURL)
	assert.Equal(t, "M1", models[0].DisplayName)
}

func TestLoader_SubstitutesMultiplePlaceholdersInOneField(t *testing.T) {
	doc := `{"models":[{"model_name":"m1","model_type":"llm","base_url":"${SCHEME}://${HOST}/v1"}]}`

	loader := NewLoader(WithResolver(MapResolver{"SCHEME": "https", "HOST": "models.example.com"}))

	models, err := loader.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "https://models.example.com/v1", models[0].BaseURL)
}

func TestLoader_UnresolvedPlaceholder(t *testing.T) {
	doc := `{"models":[{"model_name":"m1","model_type":"llm","base_url":"https://x","api_key":"${MISSING}"}]}`

	tests := []struct {
		name    string
		policy  config.UnresolvedPolicy
		wantErr bool
	}{
		{name: "keep policy leaves literal text", policy: config.UnresolvedKeep, wantErr: false},
		{name: "fail policy rejects the record", policy: config.UnresolvedFail, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(
				WithResolver(MapResolver{}),
				WithUnresolvedPolicy(tt.policy),
			)

			models, err := loader.Load(strings.NewReader(doc))

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "MISSING")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "${MISSING}", models[0].APIKey)
		})
	}
}

func TestLoader_AppliesDefaults(t *testing.T) {
	doc := `{"models":[{"model_name":"m1","model_type":"llm","base_url":"https://x"}]}`

	models, err := NewLoader(WithResolver(MapResolver{})).Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "m1", models[0].DisplayName)
	assert.Equal(t, DefaultModelFactory, models[0].ModelFactory)
}

func TestLoader_ValidationErrorsAccumulate(t *testing.T) {
	doc := `{"models":[
		{"model_type":"llm","base_url":"https://x"},
		{"model_name":"m2","model_type":"hologram","base_url":"https://x"},
		{"model_name":"m3","model_type":"llm"}
	]}`

	_, err := NewLoader(WithResolver(MapResolver{})).Load(strings.NewReader(doc))
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "expected a *LoadError, got %T", err)
	require.Len(t, loadErr.Records, 3)

	assert.Contains(t, loadErr.Records[0].Problems[0], "model_name is required")
	assert.Contains(t, loadErr.Records[1].Problems[0], `unknown model_type "hologram"`)
	assert.Contains(t, loadErr.Records[2].Problems[0], "base_url is required")
}

func TestLoader_DuplicatePolicies(t *testing.T) {
	doc := `{"models":[
		{"model_name":"m1","model_type":"llm","base_url":"https://first"},
		{"model_name":"m1","model_type":"llm","base_url":"https://second"}
	]}`

	tests := []struct {
		name        string
		policy      config.DuplicatePolicy
		wantErr     bool
		wantBaseURL string
	}{
		{name: "reject fails the load", policy: config.DuplicateReject, wantErr: true},
		{name: "skip keeps the first record", policy: config.DuplicateSkip, wantBaseURL: "https://first"},
		{name: "last-wins keeps the last record", policy: config.DuplicateLastWins, wantBaseURL: "https://second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(
				WithResolver(MapResolver{}),
				WithDuplicatePolicy(tt.policy),
			)

			models, err := loader.Load(strings.NewReader(doc))

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), `duplicate model_name "m1"`)
				return
			}

			require.NoError(t, err)
			require.Len(t, models, 1)
			assert.Equal(t, tt.wantBaseURL, models[0].BaseURL)
		})
	}
}

func TestLoader_EmptyAndMalformedDocuments(t *testing.T) {
	loader := NewLoader(WithResolver(MapResolver{}))

	_, err := loader.Load(strings.NewReader(`{"models":[]}`))
	assert.ErrorContains(t, err, "no models")

	_, err = loader.Load(strings.NewReader(`{not json`))
	assert.ErrorContains(t, err, "parsing model config")
}

func TestLoader_LoadFileMissing(t *testing.T) {
	_, err := NewLoader().LoadFile("/nonexistent/models.json")
	assert.Error(t, err)
}
