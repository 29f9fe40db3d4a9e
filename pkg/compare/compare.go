// Package compare scores how similar two proposal JSONs are, key by key.
// Each shared key gets two opinions: cosine similarity of the embedded
// values and a 0-100 judgment from the generative model; the final score
// is their mean.
package compare

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"propai/pkg/ai"
)

type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

type Detail struct {
	Key            string  `json:"key"`
	Text1          string  `json:"text1"`
	Text2          string  `json:"text2"`
	EmbeddingScore float64 `json:"embedding_score"`
	ModelScore     float64 `json:"model_score"`
	CombinedScore  float64 `json:"combined_score"`
}

type Report struct {
	OverallScore float64  `json:"overall_score"`
	Details      []Detail `json:"details"`
}

type Comparer struct {
	emb Embedder
	llm ai.Client
}

func New(emb Embedder, llm ai.Client) *Comparer { return &Comparer{emb: emb, llm: llm} }

// Compare walks the keys present in both documents in sorted order so the
// report is deterministic. Keys present in only one side are ignored.
func (c *Comparer) Compare(ctx context.Context, a, b map[string]any) (Report, error) {
	var keys []string
	for k := range a {
		if _, ok := b[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var rep Report
	var total float64
	for _, k := range keys {
		t1, t2 := fmt.Sprint(a[k]), fmt.Sprint(b[k])

		embScore, err := c.embeddingScore(ctx, t1, t2)
		if err != nil {
			return Report{}, err
		}
		modelScore, err := c.modelScore(ctx, t1, t2)
		if err != nil {
			return Report{}, err
		}
		combined := (embScore + modelScore) / 2

		total += combined
		rep.Details = append(rep.Details, Detail{
			Key: k, Text1: t1, Text2: t2,
			EmbeddingScore: embScore, ModelScore: modelScore, CombinedScore: combined,
		})
	}
	if len(keys) > 0 {
		rep.OverallScore = total / float64(len(keys))
	}
	return rep, nil
}

func (c *Comparer) embeddingScore(ctx context.Context, t1, t2 string) (float64, error) {
	vecs, err := c.emb.Embed(ctx, []string{t1, t2})
	if err != nil {
		return 0, err
	}
	return clamp(cosine(vecs[0], vecs[1]) * 100), nil
}

const scorePrompt = `Read the following two sentences and determine if they express the same idea.
Return a number between 0 and 100 indicating similarity.
Sentence A: %s
Sentence B: %s
Answer with just a number.`

var numberRX = regexp.MustCompile(`\d+(\.\d+)?`)

func (c *Comparer) modelScore(ctx context.Context, t1, t2 string) (float64, error) {
	resp, err := c.llm.Generate(ctx, fmt.Sprintf(scorePrompt, t1, t2))
	if err != nil {
		return 0, err
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(resp), 64); err == nil {
		return clamp(v), nil
	}
	// the model narrated instead of answering with a bare number
	if m := numberRX.FindString(resp); m != "" {
		v, _ := strconv.ParseFloat(m, 64)
		return clamp(v), nil
	}
	return 0, nil
}

func clamp(v float64) float64 { return math.Max(0, math.Min(v, 100)) }

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
