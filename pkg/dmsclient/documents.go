package dmsclient

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"sort"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

type documentDTO struct {
	ID              int            `json:"id"`
	Title           string         `json:"title"`
	Content         string         `json:"content"`
	CorrespondentID *int           `json:"correspondent_id"`
	DocumentTypeID  *int           `json:"document_type_id"`
	TagIDs          []int          `json:"tags"`
	CustomFields    map[int]any    `json:"custom_fields"`
	Created         string         `json:"created"`
}

// GetDocument reads a single document, including its tag-name set resolved
// from the adapter's tag cache.
func (c *Client) GetDocument(ctx context.Context, id int) (*models.Document, error) {
	var dto documentDTO
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/api/documents/%d/", id), nil, &dto); err != nil {
		return nil, err
	}
	return c.toDocument(dto), nil
}

func (c *Client) toDocument(dto documentDTO) *models.Document {
	names := make([]string, 0, len(dto.TagIDs))
	for _, id := range dto.TagIDs {
		if name, ok := c.tags.nameForID(id); ok {
			names = append(names, name)
		}
	}
	return &models.Document{
		ID:              dto.ID,
		Title:           dto.Title,
		Content:         dto.Content,
		CorrespondentID: dto.CorrespondentID,
		DocumentTypeID:  dto.DocumentTypeID,
		TagIDs:          dto.TagIDs,
		TagNames:        names,
		CustomFields:    dto.CustomFields,
		CreatedAt:       dto.Created,
	}
}

// DownloadDocument fetches the document's original binary for OCR,
// returning the bytes and the DMS-reported filename.
func (c *Client) DownloadDocument(ctx context.Context, docID int) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/api/documents/%d/download/", c.baseURL, docID), nil)
	if err != nil {
		return nil, "", fmt.Errorf("dmsclient: build download request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrTransient, err)
	}
	defer resp.Body.Close()

	if classified := c.classify(resp, fmt.Sprintf("/api/documents/%d/download/", docID)); classified != nil {
		return nil, "", classified
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("dmsclient: read download body: %w", err)
	}

	filename := fmt.Sprintf("document-%d", docID)
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			filename = params["filename"]
		}
	}
	return body, filename, nil
}

type documentListDTO struct {
	Results []documentDTO `json:"results"`
}

// ListCandidates returns every document that does not carry the processed
// tag, minus excludeDocIDs, ordered oldest-first by DMS creation timestamp
// with ties broken by document ID ascending. It does not look at workflow
// tags; callers filter further.
//
// excludeDocIDs lists documents that currently have an open PendingReview
// and must not be re-admitted.
func (c *Client) ListCandidates(ctx context.Context, processedTagID int, excludeDocIDs map[int]bool) ([]*models.Document, error) {
	var dto documentListDTO
	path := fmt.Sprintf("/api/documents/?tags__id__none=%d&ordering=created", processedTagID)
	if err := c.doJSON(ctx, "GET", path, nil, &dto); err != nil {
		return nil, err
	}

	docs := make([]*models.Document, 0, len(dto.Results))
	for _, d := range dto.Results {
		if excludeDocIDs[d.ID] {
			continue
		}
		docs = append(docs, c.toDocument(d))
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].CreatedAt != docs[j].CreatedAt {
			return docs[i].CreatedAt < docs[j].CreatedAt
		}
		return docs[i].ID < docs[j].ID
	})
	return docs, nil
}

// ListDocumentsByTag returns the IDs of every document carrying the named
// tag. A tag name the DMS doesn't know yields an empty list.
func (c *Client) ListDocumentsByTag(ctx context.Context, tagName string) ([]int, error) {
	id, ok := c.tags.idForName(tagName)
	if !ok {
		return nil, nil
	}
	var dto documentListDTO
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/api/documents/?tags__id__all=%d", id), nil, &dto); err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(dto.Results))
	for _, d := range dto.Results {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

type patchDocumentDTO struct {
	Title           *string        `json:"title,omitempty"`
	Content         *string        `json:"content,omitempty"`
	CorrespondentID *int           `json:"correspondent,omitempty"`
	DocumentTypeID  *int           `json:"document_type,omitempty"`
	Tags            []int          `json:"tags,omitempty"`
	CustomFields    map[int]any    `json:"custom_fields,omitempty"`
}

// WriteDocument patches title/correspondent/document-type/custom-field
// values. Tag membership is mutated exclusively through TransitionTag,
// AddTags, and RemoveTags so that tag writes are never silently combined
// with a field patch and lost on retry.
func (c *Client) WriteDocument(ctx context.Context, docID int, req models.WriteDocumentRequest) error {
	patch := patchDocumentDTO{
		Title:           req.Title,
		Content:         req.Content,
		CorrespondentID: req.CorrespondentID,
		DocumentTypeID:  req.DocumentTypeID,
		CustomFields:    req.CustomFields,
	}
	return c.doJSON(ctx, "PATCH", fmt.Sprintf("/api/documents/%d/", docID), patch, nil)
}

// AddTags adds tag IDs to a document's tag set, idempotently (re-adding an
// already-present tag is a no-op at the DMS).
func (c *Client) AddTags(ctx context.Context, docID int, tagIDs []int) error {
	if len(tagIDs) == 0 {
		return nil
	}
	return c.doJSON(ctx, "POST", fmt.Sprintf("/api/documents/%d/tags/add/", docID), map[string]any{"tags": tagIDs}, nil)
}

// RemoveTags removes tag IDs from a document's tag set, idempotently
// (removing an already-absent tag is a no-op at the DMS).
func (c *Client) RemoveTags(ctx context.Context, docID int, tagIDs []int) error {
	if len(tagIDs) == 0 {
		return nil
	}
	return c.doJSON(ctx, "POST", fmt.Sprintf("/api/documents/%d/tags/remove/", docID), map[string]any{"tags": tagIDs}, nil)
}

// TransitionTag performs the atomic stage-done tag transition required by
// invariant I1: add toTagName then remove fromTagName, such that an
// intermediate observer never sees both tags absent. It always performs
// the transition as add-then-remove through AddTags and RemoveTags; no
// native transition endpoint is used. This is safe to re-run after a
// crash mid-transition because both AddTags and RemoveTags are idempotent
// and the method always re-derives what still needs doing from the
// document's current tag set rather than assuming a starting state.
func (c *Client) TransitionTag(ctx context.Context, docID int, fromTagName, toTagName string) error {
	toID, ok := c.tags.idForName(toTagName)
	if !ok {
		var err error
		toID, err = c.ensureTag(ctx, toTagName)
		if err != nil {
			return fmt.Errorf("dmsclient: resolve transition target tag %q: %w", toTagName, err)
		}
	}

	doc, err := c.GetDocument(ctx, docID)
	if err != nil {
		return err
	}

	hasTo := containsInt(doc.TagIDs, toID)
	if !hasTo {
		if err := c.AddTags(ctx, docID, []int{toID}); err != nil {
			return err
		}
	}

	if fromTagName == "" {
		return nil
	}
	fromID, ok := c.tags.idForName(fromTagName)
	if !ok {
		return nil
	}
	if containsInt(doc.TagIDs, fromID) {
		return c.RemoveTags(ctx, docID, []int{fromID})
	}
	return nil
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
