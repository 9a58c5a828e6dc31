package regress

import "sort"

// treeNode is one node of a fitted regression tree. Internal nodes route on
// Feature <= Threshold; leaves carry the mean target of the samples that
// reached them.
type treeNode struct {
	Feature   int       `json:"f"`
	Threshold float64   `json:"t"`
	Value     float64   `json:"v"`
	Left      *treeNode `json:"l,omitempty"`
	Right     *treeNode `json:"r,omitempty"`
}

func (n *treeNode) predict(x []float64) float64 {
	for n.Left != nil {
		if x[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Value
}

type treeConfig struct {
	maxDepth int
	minLeaf  int
}

// buildTree grows a CART regression tree over the samples selected by idx,
// splitting greedily on the largest sum-of-squares reduction.
func buildTree(X [][]float64, y []float64, idx []int, depth int, cfg treeConfig) *treeNode {
	node := &treeNode{Value: mean(y, idx)}
	if depth >= cfg.maxDepth || len(idx) < 2*cfg.minLeaf {
		return node
	}
	feat, thr, ok := bestSplit(X, y, idx, cfg.minLeaf)
	if !ok {
		return node
	}
	var left, right []int
	for _, i := range idx {
		if X[i][feat] <= thr {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < cfg.minLeaf || len(right) < cfg.minLeaf {
		return node
	}
	node.Feature = feat
	node.Threshold = thr
	node.Left = buildTree(X, y, left, depth+1, cfg)
	node.Right = buildTree(X, y, right, depth+1, cfg)
	return node
}

// bestSplit scans every feature for the threshold minimizing the summed
// squared error of the two children. Returns ok=false when no split
// improves on the parent (for example a pure node).
func bestSplit(X [][]float64, y []float64, idx []int, minLeaf int) (int, float64, bool) {
	n := len(idx)
	var total, totalSq float64
	for _, i := range idx {
		total += y[i]
		totalSq += y[i] * y[i]
	}
	parentSSE := totalSq - total*total/float64(n)

	bestFeat, bestThr := -1, 0.0
	bestSSE := parentSSE - 1e-12

	order := make([]int, n)
	for f := 0; f < len(X[idx[0]]); f++ {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool { return X[order[a]][f] < X[order[b]][f] })

		var leftSum, leftSq float64
		for pos := 0; pos < n-1; pos++ {
			i := order[pos]
			leftSum += y[i]
			leftSq += y[i] * y[i]
			cur, next := X[i][f], X[order[pos+1]][f]
			if cur == next {
				continue
			}
			nl := pos + 1
			nr := n - nl
			if nl < minLeaf || nr < minLeaf {
				continue
			}
			rightSum := total - leftSum
			rightSq := totalSq - leftSq
			sse := (leftSq - leftSum*leftSum/float64(nl)) + (rightSq - rightSum*rightSum/float64(nr))
			if sse < bestSSE {
				bestSSE = sse
				bestFeat = f
				bestThr = (cur + next) / 2
			}
		}
	}
	if bestFeat < 0 {
		return 0, 0, false
	}
	return bestFeat, bestThr, true
}

func mean(y []float64, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	var sum float64
	for _, i := range idx {
		sum += y[i]
	}
	return sum / float64(len(idx))
}
