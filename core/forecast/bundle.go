package forecast

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/campusflow/trafficq/core/features"
	"github.com/campusflow/trafficq/core/regress"
)

// blobVersion guards the persisted format. Bundles written with a different
// version are rejected on load, which triggers a retrain upstream.
const blobVersion = 1

// ModelBundle holds everything a trained ensemble needs at inference time.
// A bundle is immutable once published; retraining replaces it wholesale.
type ModelBundle struct {
	ID            string                   `json:"id"`
	Forest        *regress.Forest          `json:"forest"`
	Boost         *regress.Boosting        `json:"boost"`
	Scaler        *features.StandardScaler `json:"scaler"`
	ForestMetrics regress.EvalMetrics      `json:"forest_metrics"`
	BoostMetrics  regress.EvalMetrics      `json:"boost_metrics"`
	Trained       bool                     `json:"trained"`
	TrainedAt     time.Time                `json:"trained_at"`
}

// Metrics returns the held-out metrics for the given model kind.
func (b *ModelBundle) Metrics(kind regress.ModelKind) regress.EvalMetrics {
	if kind == regress.KindForest {
		return b.ForestMetrics
	}
	return b.BoostMetrics
}

type blob struct {
	Version int          `json:"version"`
	Bundle  *ModelBundle `json:"bundle"`
}

// EncodeBundle serializes a bundle into the opaque versioned blob format.
func EncodeBundle(b *ModelBundle) ([]byte, error) {
	return json.Marshal(blob{Version: blobVersion, Bundle: b})
}

// DecodeBundle parses a blob produced by EncodeBundle.
func DecodeBundle(data []byte) (*ModelBundle, error) {
	var bl blob
	if err := json.Unmarshal(data, &bl); err != nil {
		return nil, fmt.Errorf("decode model blob: %w", err)
	}
	if bl.Version != blobVersion {
		return nil, fmt.Errorf("model blob version %d, want %d", bl.Version, blobVersion)
	}
	if bl.Bundle == nil || bl.Bundle.Forest == nil || bl.Bundle.Boost == nil || bl.Bundle.Scaler == nil {
		return nil, fmt.Errorf("model blob incomplete")
	}
	return bl.Bundle, nil
}

// ModelStore persists trained bundles as one opaque blob at a fixed
// location. Implementations log failures internally and report them as
// boolean results so I/O errors never cross the forecaster boundary.
type ModelStore interface {
	Save(b *ModelBundle) bool
	// Load returns nil when no bundle exists or the blob is unreadable.
	Load() *ModelBundle
}
