package reviewqueue

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/corvid/ent"
	"github.com/codeready-toolchain/corvid/ent/pendingreview"
	"github.com/codeready-toolchain/corvid/pkg/models"
)

// Store is the durable review queue: ent-backed CRUD over PendingReview
// rows plus the blocklist and similarity-grouping operations. A single
// Store instance is shared by the pipeline orchestrator, the stage
// engines, and the admin API; single-writer-at-a-time discipline comes
// from ent's transactional writes.
type Store struct {
	client *ent.Client
	logger *slog.Logger
}

// New constructs a Store over an already-migrated ent client.
func New(client *ent.Client) *Store {
	return &Store{
		client: client,
		logger: slog.Default().With("component", "reviewqueue"),
	}
}

// Add creates a PendingReview, or returns the existing one if a row with
// the same (doc_id, kind, normalized_suggestion) already exists.
func (s *Store) Add(ctx context.Context, req models.AddReviewRequest) (*models.ReviewResponse, error) {
	normalized := req.NormalizedSuggestion
	if normalized == "" {
		normalized = Normalize(req.Suggestion)
	}

	existing, err := s.client.PendingReview.Query().
		Where(
			pendingreview.DocID(req.DocID),
			pendingreview.KindEQ(pendingreview.Kind(req.Kind)),
			pendingreview.NormalizedSuggestion(normalized),
		).
		Only(ctx)
	if err == nil {
		return toResponse(existing), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("reviewqueue: query existing review: %w", err)
	}

	create := s.client.PendingReview.Create().
		SetID(uuid.NewString()).
		SetDocID(req.DocID).
		SetDocTitle(req.DocTitle).
		SetKind(pendingreview.Kind(req.Kind)).
		SetSuggestion(req.Suggestion).
		SetNormalizedSuggestion(normalized).
		SetReasoning(req.Reasoning).
		SetAttempts(req.Attempts)

	if len(req.Alternatives) > 0 {
		create = create.SetAlternatives(req.Alternatives)
	}
	if req.LastFeedback != nil {
		create = create.SetLastFeedback(*req.LastFeedback)
	}
	if req.NextTag != nil {
		create = create.SetNextTag(*req.NextTag)
	}
	if req.Metadata != nil {
		create = create.SetMetadata(req.Metadata)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, reErr := s.client.PendingReview.Query().
				Where(
					pendingreview.DocID(req.DocID),
					pendingreview.KindEQ(pendingreview.Kind(req.Kind)),
					pendingreview.NormalizedSuggestion(normalized),
				).
				Only(ctx)
			if reErr == nil {
				return toResponse(existing), nil
			}
		}
		return nil, fmt.Errorf("reviewqueue: create review: %w", err)
	}

	s.logger.Info("review enqueued", "id", row.ID, "doc_id", row.DocID, "kind", row.Kind)
	return toResponse(row), nil
}

// GetByID fetches a single PendingReview.
func (s *Store) GetByID(ctx context.Context, id string) (*models.ReviewResponse, error) {
	row, err := s.client.PendingReview.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("reviewqueue: get review: %w", err)
	}
	return toResponse(row), nil
}

// ListFilter narrows List to a kind and/or a document ID; zero values
// match anything.
type ListFilter struct {
	Kind  models.ReviewKind
	DocID int
}

// List returns every PendingReview matching filter, newest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]models.ReviewResponse, error) {
	query := s.client.PendingReview.Query()
	if filter.Kind != "" {
		query = query.Where(pendingreview.KindEQ(pendingreview.Kind(filter.Kind)))
	}
	if filter.DocID != 0 {
		query = query.Where(pendingreview.DocID(filter.DocID))
	}
	rows, err := query.Order(ent.Desc(pendingreview.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("reviewqueue: list reviews: %w", err)
	}
	out := make([]models.ReviewResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toResponse(row))
	}
	return out, nil
}

// ListOpenDocIDs returns the set of document IDs with at least one open
// PendingReview. The scheduler excludes these from admission.
func (s *Store) ListOpenDocIDs(ctx context.Context) (map[int]bool, error) {
	ids, err := s.client.PendingReview.Query().
		Select(pendingreview.FieldDocID).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("reviewqueue: list reviewed doc ids: %w", err)
	}
	out := make(map[int]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

// CountsByKind tallies open reviews per kind, for the admin dashboard.
func (s *Store) CountsByKind(ctx context.Context) (map[models.ReviewKind]int, error) {
	rows, err := s.client.PendingReview.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("reviewqueue: counts by kind: %w", err)
	}
	counts := make(map[models.ReviewKind]int)
	for _, row := range rows {
		counts[models.ReviewKind(row.Kind)]++
	}
	return counts, nil
}

// Update amends a PendingReview's feedback/attempts in place. Add never
// does this: when a matching review exists it returns that row unchanged.
func (s *Store) Update(ctx context.Context, id string, attempts int, lastFeedback *string) (*models.ReviewResponse, error) {
	update := s.client.PendingReview.UpdateOneID(id).SetAttempts(attempts)
	if lastFeedback != nil {
		update = update.SetLastFeedback(*lastFeedback)
	}
	row, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("reviewqueue: update review: %w", err)
	}
	return toResponse(row), nil
}

// Remove deletes a PendingReview by ID. A no-op (no error) if it doesn't
// exist, since approve/reject/bulk all call Remove after already having
// consumed the row.
func (s *Store) Remove(ctx context.Context, id string) error {
	err := s.client.PendingReview.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("reviewqueue: remove review: %w", err)
	}
	return nil
}

// SimilarGroups clusters open reviews sharing a kind and normalized
// suggestion, for bulk disposition in the UI.
func (s *Store) SimilarGroups(ctx context.Context) ([]models.SimilarGroup, error) {
	rows, err := s.client.PendingReview.Query().
		Order(ent.Asc(pendingreview.FieldKind), ent.Asc(pendingreview.FieldNormalizedSuggestion), ent.Desc(pendingreview.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("reviewqueue: similar groups: %w", err)
	}

	type key struct {
		kind       models.ReviewKind
		normalized string
	}
	grouped := make(map[key][]models.ReviewResponse)
	var order []key
	for _, row := range rows {
		k := key{kind: models.ReviewKind(row.Kind), normalized: row.NormalizedSuggestion}
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], *toResponse(row))
	}

	groups := make([]models.SimilarGroup, 0, len(order))
	for _, k := range order {
		if len(grouped[k]) < 2 {
			continue
		}
		groups = append(groups, models.SimilarGroup{
			Kind:                 k.kind,
			NormalizedSuggestion: k.normalized,
			Reviews:              grouped[k],
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Kind != groups[j].Kind {
			return groups[i].Kind < groups[j].Kind
		}
		return groups[i].NormalizedSuggestion < groups[j].NormalizedSuggestion
	})
	return groups, nil
}

func toResponse(row *ent.PendingReview) *models.ReviewResponse {
	resp := &models.ReviewResponse{
		ID:                   row.ID,
		DocID:                row.DocID,
		DocTitle:             row.DocTitle,
		Kind:                 models.ReviewKind(row.Kind),
		Suggestion:           row.Suggestion,
		NormalizedSuggestion: row.NormalizedSuggestion,
		Reasoning:            row.Reasoning,
		Alternatives:         row.Alternatives,
		Attempts:             row.Attempts,
		Metadata:             row.Metadata,
		CreatedAt:            row.CreatedAt,
	}
	if row.LastFeedback != nil && *row.LastFeedback != "" {
		feedback := *row.LastFeedback
		resp.LastFeedback = &feedback
	}
	if row.NextTag != nil && *row.NextTag != "" {
		tag := *row.NextTag
		resp.NextTag = &tag
	}
	return resp
}
