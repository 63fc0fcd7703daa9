package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/corvid/ent"
	"github.com/codeready-toolchain/corvid/ent/entitymetadata"
	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/llmclient"
	"github.com/codeready-toolchain/corvid/pkg/models"
)

// EntityMetadataService owns the locally-stored descriptions of DMS
// entities and the metadata-enhancement maintenance job that fills in the
// gaps.
type EntityMetadataService struct {
	client   *ent.Client
	dms      EntityLister
	llm      Describer
	language string
}

// EntityLister is the DMS surface the enhancement job enumerates.
type EntityLister interface {
	ListEntities(ctx context.Context, kind models.EntityKind) ([]models.Entity, error)
}

// Describer generates a one-line description for an entity name.
type Describer interface {
	Generate(ctx context.Context, role config.ModelRole, prompt string, opts llmclient.Options) (string, error)
}

// NewEntityMetadataService creates a new EntityMetadataService.
func NewEntityMetadataService(client *ent.Client, dms EntityLister, llm Describer, language string) *EntityMetadataService {
	return &EntityMetadataService{client: client, dms: dms, llm: llm, language: language}
}

// Describe returns the stored description for an entity, or "" if none.
func (s *EntityMetadataService) Describe(ctx context.Context, kind models.EntityKind, entityID int) (string, error) {
	row, err := s.client.EntityMetadata.Query().
		Where(
			entitymetadata.EntityKindEQ(entitymetadata.EntityKind(kind)),
			entitymetadata.EntityID(entityID),
			entitymetadata.Language(s.language),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to query entity metadata: %w", err)
	}
	return row.Description, nil
}

// Enhance is the metadata-enhancement maintenance job: for every entity
// lacking a stored description, one small-model call produces a one-line
// description. Idempotent — already-described entities are skipped, so a
// re-run after a partial failure only covers the remainder.
func (s *EntityMetadataService) Enhance(ctx context.Context) error {
	for _, kind := range []models.EntityKind{
		models.EntityKindCorrespondent,
		models.EntityKindDocumentType,
		models.EntityKindTag,
	} {
		entities, err := s.dms.ListEntities(ctx, kind)
		if err != nil {
			return fmt.Errorf("metadata enhancement: list %s: %w", kind, err)
		}
		for _, entity := range entities {
			existing, err := s.Describe(ctx, kind, entity.ID)
			if err != nil {
				return err
			}
			if existing != "" {
				continue
			}
			if err := s.describeAndStore(ctx, kind, entity); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *EntityMetadataService) describeAndStore(ctx context.Context, kind models.EntityKind, entity models.Entity) error {
	prompt := fmt.Sprintf(
		"Write a one-sentence description of the document %s named %q, as it would appear in a document archive. Reply with the sentence only.",
		strings.ReplaceAll(string(kind), "_", " "), entity.Name)
	desc, err := s.llm.Generate(ctx, config.ModelRoleSmall, prompt, llmclient.Options{})
	if err != nil {
		return fmt.Errorf("metadata enhancement: describe %s %q: %w", kind, entity.Name, err)
	}
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return nil
	}

	err = s.client.EntityMetadata.Create().
		SetID(uuid.New().String()).
		SetEntityKind(entitymetadata.EntityKind(kind)).
		SetEntityID(entity.ID).
		SetDescription(desc).
		SetLanguage(s.language).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("metadata enhancement: store description for %s %d: %w", kind, entity.ID, err)
	}
	return nil
}
