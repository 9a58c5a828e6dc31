package regress

// Boosting is a least-squares gradient boosted ensemble of shallow trees.
// Each stage fits a tree to the residuals of the running prediction and is
// shrunk by the learning rate.
type Boosting struct {
	NumTrees     int         `json:"num_trees"`
	MaxDepth     int         `json:"max_depth"`
	LearningRate float64     `json:"learning_rate"`
	Init         float64     `json:"init"`
	Trees        []*treeNode `json:"trees"`
}

// NewBoosting returns an unfitted boosted ensemble. Zero values fall back
// to defaults (100 stages, depth 6, rate 0.1).
func NewBoosting(numTrees, maxDepth int, learningRate float64) *Boosting {
	if numTrees <= 0 {
		numTrees = 100
	}
	if maxDepth <= 0 {
		maxDepth = 6
	}
	if learningRate <= 0 {
		learningRate = 0.1
	}
	return &Boosting{NumTrees: numTrees, MaxDepth: maxDepth, LearningRate: learningRate}
}

// Fit runs NumTrees boosting stages over (X, y), starting from the target
// mean.
func (b *Boosting) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 || len(X) != len(y) {
		return ErrNoSamples
	}
	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	b.Init = mean(y, idx)

	pred := make([]float64, len(y))
	for i := range pred {
		pred[i] = b.Init
	}
	resid := make([]float64, len(y))
	cfg := treeConfig{maxDepth: b.MaxDepth, minLeaf: 2}

	b.Trees = make([]*treeNode, 0, b.NumTrees)
	for t := 0; t < b.NumTrees; t++ {
		for i := range resid {
			resid[i] = y[i] - pred[i]
		}
		tree := buildTree(X, resid, idx, 0, cfg)
		b.Trees = append(b.Trees, tree)
		for i := range pred {
			pred[i] += b.LearningRate * tree.predict(X[i])
		}
	}
	return nil
}

// Predict sums the shrunk stage predictions on top of the initial estimate.
func (b *Boosting) Predict(x []float64) float64 {
	out := b.Init
	for _, t := range b.Trees {
		out += b.LearningRate * t.predict(x)
	}
	return out
}
