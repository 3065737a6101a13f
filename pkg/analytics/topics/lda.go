package topics

import "math/rand"

// Model fits k topics over documents given as term-id sequences and
// returns a k x vocabSize matrix of topic-term weights.
type Model interface {
	Fit(docs [][]int, vocabSize, k int) [][]float64
}

// GibbsLDA is latent Dirichlet allocation fitted by collapsed Gibbs
// sampling with symmetric priors alpha = beta = 1/k. The same seed and
// input always produce the same weights.
type GibbsLDA struct {
	Iterations int
	Seed       int64
}

// Fit runs the sampler and returns topic-term counts smoothed by beta.
func (m GibbsLDA) Fit(docs [][]int, vocabSize, k int) [][]float64 {
	if k <= 0 || vocabSize <= 0 {
		return nil
	}
	alpha := 1.0 / float64(k)
	beta := 1.0 / float64(k)
	vBeta := float64(vocabSize) * beta

	rng := rand.New(rand.NewSource(m.Seed))

	ndk := make([][]int, len(docs))
	nkw := make([][]int, k)
	for t := range nkw {
		nkw[t] = make([]int, vocabSize)
	}
	nk := make([]int, k)
	z := make([][]int, len(docs))

	for d, doc := range docs {
		ndk[d] = make([]int, k)
		z[d] = make([]int, len(doc))
		for i, w := range doc {
			t := rng.Intn(k)
			z[d][i] = t
			ndk[d][t]++
			nkw[t][w]++
			nk[t]++
		}
	}

	p := make([]float64, k)
	for iter := 0; iter < m.Iterations; iter++ {
		for d, doc := range docs {
			for i, w := range doc {
				t := z[d][i]
				ndk[d][t]--
				nkw[t][w]--
				nk[t]--

				var total float64
				for j := 0; j < k; j++ {
					total += (float64(ndk[d][j]) + alpha) * (float64(nkw[j][w]) + beta) / (float64(nk[j]) + vBeta)
					p[j] = total
				}
				u := rng.Float64() * total
				t = k - 1
				for j := 0; j < k; j++ {
					if u < p[j] {
						t = j
						break
					}
				}

				z[d][i] = t
				ndk[d][t]++
				nkw[t][w]++
				nk[t]++
			}
		}
	}

	weights := make([][]float64, k)
	for t := range weights {
		weights[t] = make([]float64, vocabSize)
		for w := range weights[t] {
			weights[t][w] = float64(nkw[t][w]) + beta
		}
	}
	return weights
}
