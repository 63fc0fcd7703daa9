package reviewqueue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

type fakeDMS struct {
	entities     map[string]models.Entity
	nextEntityID int
	writes       []models.WriteDocumentRequest
	addedTags    []string
	removedTags  []string
}

func newFakeDMS() *fakeDMS {
	return &fakeDMS{entities: map[string]models.Entity{}, nextEntityID: 1}
}

func (f *fakeDMS) CreateOrLookupEntity(ctx context.Context, kind models.EntityKind, name string) (models.Entity, error) {
	key := string(kind) + ":" + name
	if e, ok := f.entities[key]; ok {
		return e, nil
	}
	e := models.Entity{ID: f.nextEntityID, Name: name}
	f.nextEntityID++
	f.entities[key] = e
	return e, nil
}

func (f *fakeDMS) WriteDocument(ctx context.Context, docID int, req models.WriteDocumentRequest) error {
	f.writes = append(f.writes, req)
	return nil
}

func (f *fakeDMS) AddTagByName(ctx context.Context, docID int, name string) error {
	f.addedTags = append(f.addedTags, name)
	return nil
}

func (f *fakeDMS) RemoveTagByName(ctx context.Context, docID int, name string) error {
	f.removedTags = append(f.removedTags, name)
	return nil
}

func (f *fakeDMS) TagIDForName(ctx context.Context, name string) (int, error) {
	return 1, nil
}

func TestApplyApprovalTitle(t *testing.T) {
	dms := newFakeDMS()
	r := &Resolver{dms: dms}
	review := &models.ReviewResponse{DocID: 1, Kind: models.ReviewKindTitle}

	err := r.applyApproval(context.Background(), review, "New Title")
	require.NoError(t, err)
	require.Len(t, dms.writes, 1)
	assert.Equal(t, "New Title", *dms.writes[0].Title)
}

func TestApplyApprovalCorrespondentCreatesEntity(t *testing.T) {
	dms := newFakeDMS()
	r := &Resolver{dms: dms}
	review := &models.ReviewResponse{DocID: 1, Kind: models.ReviewKindCorrespondent}

	err := r.applyApproval(context.Background(), review, "Acme Corp")
	require.NoError(t, err)
	require.Len(t, dms.writes, 1)
	assert.Equal(t, 1, *dms.writes[0].CorrespondentID)
}

func TestApplyApprovalTagSplitsCSV(t *testing.T) {
	dms := newFakeDMS()
	r := &Resolver{dms: dms}
	review := &models.ReviewResponse{DocID: 1, Kind: models.ReviewKindTag}

	err := r.applyApproval(context.Background(), review, "invoice, finance")
	require.NoError(t, err)
	assert.Equal(t, []string{"invoice", "finance"}, dms.addedTags)
}

func TestApplyApprovalCustomFieldRequiresFieldID(t *testing.T) {
	dms := newFakeDMS()
	r := &Resolver{dms: dms}
	review := &models.ReviewResponse{DocID: 1, Kind: models.ReviewKindCustomField, Metadata: map[string]any{}}

	err := r.applyApproval(context.Background(), review, "value")
	require.Error(t, err)
}

func TestApplyApprovalCustomFieldWritesValue(t *testing.T) {
	dms := newFakeDMS()
	r := &Resolver{dms: dms}
	review := &models.ReviewResponse{
		DocID:    1,
		Kind:     models.ReviewKindCustomField,
		Metadata: map[string]any{"field_id": float64(7)},
	}

	err := r.applyApproval(context.Background(), review, "42")
	require.NoError(t, err)
	assert.Equal(t, "42", dms.writes[0].CustomFields[7])
}

func TestNormalizeCollapsesWhitespaceAndCase(t *testing.T) {
	assert.Equal(t, "acme corp", Normalize("  Acme   Corp\n"))
}

func TestSplitCSVTrimsAndDropsEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitCSV(" a ,, b "))
}
