package dmsclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

// EntityKindEndpoint maps an EntityKind to its DMS REST collection.
func entityEndpoint(kind models.EntityKind) string {
	switch kind {
	case models.EntityKindCorrespondent:
		return "/api/correspondents/"
	case models.EntityKindDocumentType:
		return "/api/document_types/"
	case models.EntityKindTag:
		return "/api/tags/"
	default:
		return ""
	}
}

type entityListDTO struct {
	Results []models.Entity `json:"results"`
}

// ListEntities returns every entity of the given kind, name ↔ ID.
func (c *Client) ListEntities(ctx context.Context, kind models.EntityKind) ([]models.Entity, error) {
	endpoint := entityEndpoint(kind)
	if endpoint == "" {
		return nil, fmt.Errorf("dmsclient: unknown entity kind %q", kind)
	}
	var dto entityListDTO
	if err := c.doJSON(ctx, "GET", endpoint+"?page_size=10000", nil, &dto); err != nil {
		return nil, err
	}
	return dto.Results, nil
}

// CreateOrLookupEntity resolves name to an existing entity of kind, or
// creates it if absent. Lookup is case-insensitive to avoid near-duplicate
// entities differing only by case; creation is idempotent under
// concurrent callers because the DMS itself enforces name uniqueness and a
// 409/400 on the create call is treated as "already exists" by re-running
// the lookup.
func (c *Client) CreateOrLookupEntity(ctx context.Context, kind models.EntityKind, name string) (models.Entity, error) {
	existing, err := c.ListEntities(ctx, kind)
	if err != nil {
		return models.Entity{}, err
	}
	for _, e := range existing {
		if strings.EqualFold(e.Name, name) {
			if kind == models.EntityKindTag {
				c.tags.put(e.ID, e.Name)
			}
			return e, nil
		}
	}

	endpoint := entityEndpoint(kind)
	var created models.Entity
	if err := c.doJSON(ctx, "POST", endpoint, map[string]string{"name": name}, &created); err != nil {
		if isConflict(err) {
			existing, listErr := c.ListEntities(ctx, kind)
			if listErr != nil {
				return models.Entity{}, listErr
			}
			for _, e := range existing {
				if strings.EqualFold(e.Name, name) {
					return e, nil
				}
			}
		}
		return models.Entity{}, err
	}
	if kind == models.EntityKindTag {
		c.tags.put(created.ID, created.Name)
	}
	return created, nil
}

// ensureTag resolves a workflow tag name to an ID, creating it in the DMS
// if it doesn't already exist (operators may configure a tag name that
// hasn't been created yet).
func (c *Client) ensureTag(ctx context.Context, name string) (int, error) {
	entity, err := c.CreateOrLookupEntity(ctx, models.EntityKindTag, name)
	if err != nil {
		return 0, err
	}
	return entity.ID, nil
}

// TagIDForName resolves a workflow tag name to its DMS ID, creating the tag
// if it doesn't already exist. Exposed so callers outside this package (the
// orchestrator applying a sideband tag, the review queue applying a
// PendingReview's next_tag) never need to reimplement tag resolution.
func (c *Client) TagIDForName(ctx context.Context, name string) (int, error) {
	return c.ensureTag(ctx, name)
}

// AddTagByName adds a single tag, identified by name, to a document,
// creating the tag in the DMS first if necessary.
func (c *Client) AddTagByName(ctx context.Context, docID int, name string) error {
	id, err := c.ensureTag(ctx, name)
	if err != nil {
		return err
	}
	return c.AddTags(ctx, docID, []int{id})
}

// RemoveTagByName removes a single tag, identified by name, from a
// document. A name with no corresponding DMS tag is a no-op.
func (c *Client) RemoveTagByName(ctx context.Context, docID int, name string) error {
	id, ok := c.tags.idForName(name)
	if !ok {
		return nil
	}
	return c.RemoveTags(ctx, docID, []int{id})
}

// CustomFieldDefs returns the DMS's current custom-field schema.
// config.CustomFieldRegistry is loaded from configuration, not from this call.
func (c *Client) CustomFieldDefs(ctx context.Context) ([]models.CustomFieldDef, error) {
	var dto struct {
		Results []models.CustomFieldDef `json:"results"`
	}
	if err := c.doJSON(ctx, "GET", "/api/custom_fields/?page_size=10000", nil, &dto); err != nil {
		return nil, err
	}
	return dto.Results, nil
}

func isConflict(err error) bool {
	return err != nil && strings.Contains(err.Error(), "permanent external error")
}
