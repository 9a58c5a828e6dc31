package regress

import "math/rand"

// Forest is a bagged ensemble of regression trees. Each tree is grown on a
// bootstrap resample of the training set and predictions are averaged.
type Forest struct {
	NumTrees int         `json:"num_trees"`
	MaxDepth int         `json:"max_depth"`
	MinLeaf  int         `json:"min_leaf"`
	Seed     int64       `json:"seed"`
	Trees    []*treeNode `json:"trees"`
}

// NewForest returns an unfitted forest. Zero values fall back to defaults
// (100 trees, depth 10, leaf size 2).
func NewForest(numTrees, maxDepth int, seed int64) *Forest {
	if numTrees <= 0 {
		numTrees = 100
	}
	if maxDepth <= 0 {
		maxDepth = 10
	}
	return &Forest{NumTrees: numTrees, MaxDepth: maxDepth, MinLeaf: 2, Seed: seed}
}

// Fit grows NumTrees trees on seeded bootstrap samples of (X, y).
func (f *Forest) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 || len(X) != len(y) {
		return ErrNoSamples
	}
	rng := rand.New(rand.NewSource(f.Seed))
	cfg := treeConfig{maxDepth: f.MaxDepth, minLeaf: f.MinLeaf}
	f.Trees = make([]*treeNode, f.NumTrees)
	idx := make([]int, len(X))
	for t := 0; t < f.NumTrees; t++ {
		for i := range idx {
			idx[i] = rng.Intn(len(X))
		}
		f.Trees[t] = buildTree(X, y, idx, 0, cfg)
	}
	return nil
}

// Predict averages the predictions of all trees.
func (f *Forest) Predict(x []float64) float64 {
	if len(f.Trees) == 0 {
		return 0
	}
	var sum float64
	for _, t := range f.Trees {
		sum += t.predict(x)
	}
	return sum / float64(len(f.Trees))
}
