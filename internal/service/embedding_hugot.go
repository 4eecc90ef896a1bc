package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

type hugotModel struct {
	mu       sync.Mutex
	session  *hugot.Session
	pipeline *pipelines.FeatureExtractionPipeline
}

// HugotLoader returns a ModelLoader for a local sentence-transformers model.
// Weights are downloaded into modelDir the first time.
func HugotLoader(modelName, modelDir string) ModelLoader {
	return func(ctx context.Context) (EmbeddingModel, error) {
		modelPath, err := prepareModel(modelName, modelDir)
		if err != nil {
			return nil, err
		}

		session, err := hugot.NewGoSession()
		if err != nil {
			return nil, fmt.Errorf("failed to create hugot session: %w", err)
		}

		config := hugot.FeatureExtractionConfig{
			ModelPath: modelPath,
			Name:      "mecanico-embedder",
		}
		pipeline, err := hugot.NewPipeline(session, config)
		if err != nil {
			if destroyErr := session.Destroy(); destroyErr != nil {
				return nil, fmt.Errorf("failed to create embedding pipeline: %w (cleanup error: %v)", err, destroyErr)
			}
			return nil, fmt.Errorf("failed to create embedding pipeline: %w", err)
		}

		return &hugotModel{session: session, pipeline: pipeline}, nil
	}
}

func (m *hugotModel) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result, err := m.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, err
	}
	if len(result.Embeddings) == 0 {
		return nil, errors.New("no embedding generated")
	}
	return result.Embeddings[0], nil
}

func (m *hugotModel) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Destroy()
}

// prepareModel downloads the model if its directory does not exist yet and
// returns the local path.
func prepareModel(modelName, modelDir string) (string, error) {
	modelPath := filepath.Join(modelDir, strings.ReplaceAll(modelName, "/", "_"))
	if _, err := os.Stat(modelPath); err == nil {
		return modelPath, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to stat model directory: %w", err)
	}

	if err := os.MkdirAll(modelDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create model directory: %w", err)
	}
	options := hugot.NewDownloadOptions()
	options.OnnxFilePath = "onnx/model.onnx"
	downloaded, err := hugot.DownloadModel(modelName, modelDir, options)
	if err != nil {
		return "", fmt.Errorf("failed to download model: %w", err)
	}
	return downloaded, nil
}
