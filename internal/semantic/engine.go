// Package semantic embeds transcripts with a local MiniLM ONNX model and
// compares them against the cached rubric criterion embeddings. The
// engine is a process-wide singleton: the model is loaded and the four
// criterion descriptions embedded exactly once, then everything is
// read-only for the process lifetime.
package semantic

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/spacesedan/introscore/internal/models"
	"github.com/spacesedan/introscore/internal/rubric"
)

const DefaultModel = "sentence-transformers/all-MiniLM-L6-v2"

// Engine holds the embedding pipeline and the precomputed criterion
// vectors. Safe for concurrent use once constructed.
type Engine struct {
	session  *hugot.Session
	pipeline *pipelines.FeatureExtractionPipeline
	criteria map[string][]float32
}

// NewEngine loads (downloading if needed) the embedding model from
// modelDir and precomputes the criterion-description embeddings.
func NewEngine(modelDir, modelID string) (*Engine, error) {
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create model directory: %w", err)
	}

	modelPath := filepath.Join(modelDir, strings.ReplaceAll(modelID, "/", "_"))
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[SemanticEngine] Model not found, downloading...",
			slog.String("model", modelID))
		downloaded, err := hugot.DownloadModel(modelID, modelDir, hugot.NewDownloadOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to download embedding model: %w", err)
		}
		modelPath = downloaded
		slog.Info("[SemanticEngine] Model downloaded successfully",
			slog.String("path", modelPath))
	} else {
		slog.Info("[SemanticEngine] Using existing model",
			slog.String("path", modelPath))
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hugot session: %w", err)
	}

	config := hugot.FeatureExtractionConfig{
		ModelPath: modelPath,
		Name:      "criterionEmbeddingPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize embedding pipeline: %w", err)
	}

	e := &Engine{
		session:  session,
		pipeline: pipeline,
		criteria: make(map[string][]float32, len(rubric.Criteria)),
	}

	for _, c := range rubric.Criteria {
		vec, err := e.Embed(c.Description)
		if err != nil {
			session.Destroy()
			return nil, fmt.Errorf("failed to embed criterion %q: %w", c.Name, err)
		}
		e.criteria[c.Name] = vec
	}

	slog.Info("[SemanticEngine] Criterion embeddings cached",
		slog.Int("criteria", len(e.criteria)))

	return e, nil
}

// Close releases the underlying inference session.
func (e *Engine) Close() {
	if e.session != nil {
		e.session.Destroy()
	}
}

// Embed returns the sentence embedding for a single text.
func (e *Engine) Embed(text string) ([]float32, error) {
	output, err := e.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("embedding inference failed: %w", err)
	}
	if len(output.Embeddings) == 0 {
		return nil, fmt.Errorf("embedding inference returned no vectors")
	}
	return output.Embeddings[0], nil
}

// Profile embeds the transcript once and reports its clamped cosine
// similarity to each cached criterion description.
func (e *Engine) Profile(text string) (models.SemanticProfile, error) {
	var profile models.SemanticProfile

	vec, err := e.Embed(text)
	if err != nil {
		return profile, err
	}

	for _, c := range rubric.Criteria {
		sim := Similarity(vec, e.criteria[c.Name])
		switch c.Name {
		case "content":
			profile.Content = sim
		case "language":
			profile.Language = sim
		case "clarity":
			profile.Clarity = sim
		case "engagement":
			profile.Engagement = sim
		}
	}
	return profile, nil
}

// Similarity is the cosine similarity of two vectors clamped into [0,1].
// Clamping also covers cosines that drift past 1 through float error.
func Similarity(a, b []float32) float64 {
	return clamp01(cosine(a, b))
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
