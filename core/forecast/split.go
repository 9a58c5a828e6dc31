package forecast

import "math/rand"

// splitShuffle shuffles the samples with a seeded permutation and carves
// off the trailing testFrac share as the held-out set. Datasets of one
// sample train on everything and skip evaluation.
func splitShuffle(X [][]float64, y []float64, testFrac float64, seed int64) (trainX [][]float64, trainY []float64, testX [][]float64, testY []float64) {
	n := len(X)
	perm := rand.New(rand.NewSource(seed)).Perm(n)

	nTest := int(float64(n) * testFrac)
	if nTest < 1 && n > 1 {
		nTest = 1
	}
	nTrain := n - nTest

	trainX = make([][]float64, 0, nTrain)
	trainY = make([]float64, 0, nTrain)
	testX = make([][]float64, 0, nTest)
	testY = make([]float64, 0, nTest)
	for i, p := range perm {
		if i < nTrain {
			trainX = append(trainX, X[p])
			trainY = append(trainY, y[p])
		} else {
			testX = append(testX, X[p])
			testY = append(testY, y[p])
		}
	}
	return trainX, trainY, testX, testY
}
