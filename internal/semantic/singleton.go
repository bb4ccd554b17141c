package semantic

import (
	"os"
	"sync"
)

var (
	engineInstance *Engine
	engineErr      error
	engineOnce     sync.Once
)

// GetEngine lazily constructs the process-wide engine on first use. The
// model directory and model id come from SCORER_MODEL_DIR and
// SCORER_MODEL, with local defaults. A construction failure is sticky:
// every caller sees the same error.
func GetEngine() (*Engine, error) {
	engineOnce.Do(func() {
		modelDir := os.Getenv("SCORER_MODEL_DIR")
		if modelDir == "" {
			modelDir = "./models"
		}
		modelID := os.Getenv("SCORER_MODEL")
		if modelID == "" {
			modelID = DefaultModel
		}
		engineInstance, engineErr = NewEngine(modelDir, modelID)
	})
	return engineInstance, engineErr
}
