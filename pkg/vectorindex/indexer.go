// Package vectorindex implements the vector indexer: on pipeline
// completion a projection of the document is embedded and upserted into a
// qdrant collection keyed by doc_id, and the same collection backs the
// similarity check that gates document-link candidates.
package vectorindex

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/qdrant/go-client/qdrant"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/models"
)

// maxContentChars bounds the projected content shipped to the vector
// store.
const maxContentChars = 10000

// Embedder is the subset of pkg/llmclient.Client the indexer embeds
// through.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Projection is what the indexer ships for one document: the searchable
// text plus the payload stored alongside the vector.
type Projection struct {
	DocID             int
	Title             string
	Content           string
	Tags              []string
	CorrespondentName string
	DocumentTypeName  string
}

// Indexer owns the qdrant collection and the embedding calls that feed it.
type Indexer struct {
	client     *qdrant.Client
	embedder   Embedder
	collection string
	vectorSize int
	topK       int
	minScore   float64
	logger     *slog.Logger
}

// New constructs an Indexer over an already-connected qdrant client.
func New(client *qdrant.Client, embedder Embedder, storeCfg *config.VectorStoreConfig, searchCfg *config.VectorSearchConfig) *Indexer {
	return &Indexer{
		client:     client,
		embedder:   embedder,
		collection: storeCfg.Collection,
		vectorSize: storeCfg.VectorSize,
		topK:       searchCfg.TopK,
		minScore:   searchCfg.MinScore,
		logger:     slog.Default().With("component", "vectorindex"),
	}
}

// EnsureCollection creates the collection if it doesn't exist yet. Called
// once at startup.
func (ix *Indexer) EnsureCollection(ctx context.Context) error {
	exists, err := ix.client.CollectionExists(ctx, ix.collection)
	if err != nil {
		return fmt.Errorf("vectorindex: check collection: %w", err)
	}
	if exists {
		return nil
	}
	err = ix.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: ix.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(ix.vectorSize),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("vectorindex: create collection: %w", err)
	}
	ix.logger.Info("created vector collection", "collection", ix.collection, "size", ix.vectorSize)
	return nil
}

// Project builds the indexable projection of a document. Workflow tags are
// excluded from the projected tag list; content is truncated.
func Project(doc *models.Document, correspondentName, documentTypeName string, workflowTags map[string]bool) Projection {
	content := doc.Content
	if len(content) > maxContentChars {
		content = content[:maxContentChars]
	}
	tags := make([]string, 0, len(doc.TagNames))
	for _, name := range doc.TagNames {
		if !workflowTags[name] {
			tags = append(tags, name)
		}
	}
	return Projection{
		DocID:             doc.ID,
		Title:             doc.Title,
		Content:           content,
		Tags:              tags,
		CorrespondentName: correspondentName,
		DocumentTypeName:  documentTypeName,
	}
}

// text flattens a projection into the string that gets embedded.
func (p Projection) text() string {
	parts := []string{p.Title}
	if p.CorrespondentName != "" {
		parts = append(parts, "From: "+p.CorrespondentName)
	}
	if p.DocumentTypeName != "" {
		parts = append(parts, "Type: "+p.DocumentTypeName)
	}
	if len(p.Tags) > 0 {
		parts = append(parts, "Tags: "+strings.Join(p.Tags, ", "))
	}
	parts = append(parts, p.Content)
	return strings.Join(parts, "\n")
}

// Index embeds the projection and upserts it keyed by doc_id. Errors are
// returned for logging, but callers treat them as non-fatal: the pipeline
// still transitions the document to processed.
func (ix *Indexer) Index(ctx context.Context, p Projection) error {
	vectors, err := ix.embedder.Embed(ctx, []string{p.text()})
	if err != nil {
		return fmt.Errorf("vectorindex: embed doc %d: %w", p.DocID, err)
	}

	payload, err := qdrant.TryValueMap(map[string]any{
		"title":          p.Title,
		"tags":           p.Tags,
		"correspondent":  p.CorrespondentName,
		"document_type":  p.DocumentTypeName,
	})
	if err != nil {
		return fmt.Errorf("vectorindex: build payload for doc %d: %w", p.DocID, err)
	}

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(p.DocID)),
		Vectors: qdrant.NewVectors(vectors[0]...),
		Payload: payload,
	}
	_, err = ix.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: ix.collection,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("vectorindex: upsert doc %d: %w", p.DocID, err)
	}
	ix.logger.Debug("indexed document", "doc_id", p.DocID, "tags", len(p.Tags))
	return nil
}

// FilterCandidates keeps only those candidate document IDs that appear in
// the top_k nearest neighbors of doc's projection with score ≥ min_score.
// Implements the stage engines' Similarity seam.
func (ix *Indexer) FilterCandidates(ctx context.Context, doc *models.Document, candidateIDs []int) ([]int, error) {
	if len(candidateIDs) == 0 {
		return nil, nil
	}

	p := Project(doc, "", "", nil)
	vectors, err := ix.embedder.Embed(ctx, []string{p.text()})
	if err != nil {
		return nil, fmt.Errorf("vectorindex: embed query doc %d: %w", doc.ID, err)
	}

	minScore := float32(ix.minScore)
	limit := uint64(ix.topK)
	scored, err := ix.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: ix.collection,
		Query:          qdrant.NewQuery(vectors[0]...),
		Limit:          &limit,
		ScoreThreshold: &minScore,
	})
	if err != nil {
		return nil, fmt.Errorf("vectorindex: query neighbors of doc %d: %w", doc.ID, err)
	}

	neighbors := make(map[int]bool, len(scored))
	for _, point := range scored {
		if num, ok := point.Id.PointIdOptions.(*qdrant.PointId_Num); ok {
			neighbors[int(num.Num)] = true
		}
	}

	out := make([]int, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		if neighbors[id] {
			out = append(out, id)
		}
	}
	return out, nil
}
