package reviewqueue

import (
	"context"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

// DMS is the subset of pkg/dmsclient.Client that approve/reject semantics
// need. Defined here (rather than imported as a concrete type) so this
// package stays testable without a live HTTP server.
type DMS interface {
	CreateOrLookupEntity(ctx context.Context, kind models.EntityKind, name string) (models.Entity, error)
	WriteDocument(ctx context.Context, docID int, req models.WriteDocumentRequest) error
	AddTagByName(ctx context.Context, docID int, name string) error
	RemoveTagByName(ctx context.Context, docID int, name string) error
	TagIDForName(ctx context.Context, name string) (int, error)
}
