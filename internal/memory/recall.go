package memory

// #region imports
import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/philippgille/chromem-go"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/responder"
)

// #endregion

// #region types

// Hit is one recall result.
type Hit struct {
	ID    string
	Text  string
	Score float64
}

// entry backs the keyword fallback when the vector index is off.
type entry struct {
	id     string
	text   string
	tokens []string
}

// #endregion types

// #region recall
// Recall indexes turn summaries for similarity lookup. With a persist path
// and an embedder it keeps a chromem collection; otherwise it degrades to
// stopword-filtered keyword overlap over an in-memory list.
type Recall struct {
	collection *chromem.Collection

	mu      sync.Mutex
	entries []entry
}

// NewRecall opens (or creates) the vector index at persistPath. An empty
// path or nil embedder yields a keyword-only index.
func NewRecall(persistPath string, embedder responder.Embedder) (*Recall, error) {
	r := &Recall{}
	if persistPath == "" || embedder == nil {
		return r, nil
	}

	db, err := chromem.NewPersistentDB(persistPath, false)
	if err != nil {
		return nil, fmt.Errorf("open recall db: %w", err)
	}
	ef := chromem.EmbeddingFunc(func(ctx context.Context, text string) ([]float32, error) {
		return embedder.Embed(ctx, text)
	})
	collection, err := db.GetOrCreateCollection("turn_summaries", nil, ef)
	if err != nil {
		return nil, fmt.Errorf("open recall collection: %w", err)
	}
	r.collection = collection
	return r, nil
}

// Vectorized reports whether the chromem collection is live.
func (r *Recall) Vectorized() bool {
	return r.collection != nil
}

// IndexTurn stores one turn summary under a deterministic id.
func (r *Recall) IndexTurn(ctx context.Context, turn int, summary string) error {
	id := fmt.Sprintf("turn_%d", turn)

	r.mu.Lock()
	r.entries = append(r.entries, entry{
		id:     id,
		text:   summary,
		tokens: tokenize(summary),
	})
	r.mu.Unlock()

	if r.collection == nil {
		return nil
	}
	err := r.collection.AddDocument(ctx, chromem.Document{
		ID:      id,
		Content: summary,
		Metadata: map[string]string{
			"turn": fmt.Sprintf("%d", turn),
		},
	})
	if err != nil {
		return fmt.Errorf("index turn %d: %w", turn, err)
	}
	return nil
}

// Similar returns up to n summaries most similar to query, best first.
func (r *Recall) Similar(ctx context.Context, query string, n int) ([]Hit, error) {
	if n <= 0 {
		n = 3
	}
	if r.collection != nil {
		return r.similarVector(ctx, query, n)
	}
	return r.similarKeyword(query, n), nil
}

// #endregion recall

// #region vector-path

func (r *Recall) similarVector(ctx context.Context, query string, n int) ([]Hit, error) {
	if count := r.collection.Count(); count < n {
		n = count
	}
	if n == 0 {
		return nil, nil
	}
	results, err := r.collection.Query(ctx, query, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("recall query: %w", err)
	}
	hits := make([]Hit, 0, len(results))
	for _, res := range results {
		hits = append(hits, Hit{
			ID:    res.ID,
			Text:  res.Content,
			Score: float64(res.Similarity),
		})
	}
	return hits, nil
}

// #endregion vector-path

// #region keyword-path

func (r *Recall) similarKeyword(query string, n int) []Hit {
	queryTokens := tokenize(query)

	r.mu.Lock()
	defer r.mu.Unlock()

	var hits []Hit
	for _, e := range r.entries {
		shared := sharedKeywords(queryTokens, e.tokens)
		if shared == 0 {
			continue
		}
		hits = append(hits, Hit{
			ID:    e.id,
			Text:  e.text,
			Score: float64(shared),
		})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > n {
		hits = hits[:n]
	}
	return hits
}

// #endregion keyword-path
