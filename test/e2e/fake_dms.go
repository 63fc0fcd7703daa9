package e2e

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

// FakeDMS is an in-memory stand-in for the external document-management
// service, implementing every DMS seam the pipeline, stage engines,
// review queue, and scheduler consume. It mimics the real adapter's
// semantics: idempotent tag writes, case-insensitive entity lookup, and
// name-resolved tag membership.
type FakeDMS struct {
	mu sync.Mutex

	docs     map[int]*fakeDoc
	entities map[models.EntityKind][]models.Entity
	fields   []models.CustomFieldDef
	nextID   int

	// binaries holds per-document OCR source bytes served by Download.
	binaries map[int][]byte
}

type fakeDoc struct {
	doc  models.Document
	tags map[string]bool
}

// NewFakeDMS returns an empty DMS.
func NewFakeDMS() *FakeDMS {
	return &FakeDMS{
		docs:     map[int]*fakeDoc{},
		entities: map[models.EntityKind][]models.Entity{},
		binaries: map[int][]byte{},
		nextID:   1000,
	}
}

// AddDocument seeds a document with the given tag names and content.
func (f *FakeDMS) AddDocument(id int, title, content, createdAt string, tagNames ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tags := map[string]bool{}
	for _, name := range tagNames {
		tags[name] = true
		f.ensureTagLocked(name)
	}
	f.docs[id] = &fakeDoc{
		doc: models.Document{
			ID:           id,
			Title:        title,
			Content:      content,
			CreatedAt:    createdAt,
			CustomFields: map[int]any{},
		},
		tags: tags,
	}
	f.binaries[id] = []byte(content)
}

// AddEntity seeds a named entity and returns its ID.
func (f *FakeDMS) AddEntity(kind models.EntityKind, name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addEntityLocked(kind, name)
}

// AddCustomFieldDef seeds a custom-field definition.
func (f *FakeDMS) AddCustomFieldDef(def models.CustomFieldDef) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = append(f.fields, def)
}

func (f *FakeDMS) addEntityLocked(kind models.EntityKind, name string) int {
	for _, e := range f.entities[kind] {
		if strings.EqualFold(e.Name, name) {
			return e.ID
		}
	}
	f.nextID++
	f.entities[kind] = append(f.entities[kind], models.Entity{ID: f.nextID, Name: name})
	return f.nextID
}

func (f *FakeDMS) ensureTagLocked(name string) int {
	return f.addEntityLocked(models.EntityKindTag, name)
}

// TagNames returns the document's current tag-name set, for assertions.
func (f *FakeDMS) TagNames(docID int) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc := f.docs[docID]
	if doc == nil {
		return nil
	}
	names := make([]string, 0, len(doc.tags))
	for name := range doc.tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Title returns the document's current title, for assertions.
func (f *FakeDMS) Title(docID int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if doc := f.docs[docID]; doc != nil {
		return doc.doc.Title
	}
	return ""
}

// GetDocument implements the read side of the DMS contract.
func (f *FakeDMS) GetDocument(_ context.Context, id int) (*models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("fakedms: document %d not found", id)
	}
	return f.projectLocked(doc), nil
}

func (f *FakeDMS) projectLocked(doc *fakeDoc) *models.Document {
	out := doc.doc
	out.TagNames = nil
	out.TagIDs = nil
	for name := range doc.tags {
		out.TagNames = append(out.TagNames, name)
		for _, e := range f.entities[models.EntityKindTag] {
			if e.Name == name {
				out.TagIDs = append(out.TagIDs, e.ID)
			}
		}
	}
	sort.Strings(out.TagNames)
	sort.Ints(out.TagIDs)
	fields := make(map[int]any, len(doc.doc.CustomFields))
	for k, v := range doc.doc.CustomFields {
		fields[k] = v
	}
	out.CustomFields = fields
	return &out
}

func (f *FakeDMS) WriteDocument(_ context.Context, docID int, req models.WriteDocumentRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[docID]
	if !ok {
		return fmt.Errorf("fakedms: document %d not found", docID)
	}
	if req.Title != nil {
		doc.doc.Title = *req.Title
	}
	if req.Content != nil {
		doc.doc.Content = *req.Content
	}
	if req.CorrespondentID != nil {
		doc.doc.CorrespondentID = req.CorrespondentID
	}
	if req.DocumentTypeID != nil {
		doc.doc.DocumentTypeID = req.DocumentTypeID
	}
	for id, value := range req.CustomFields {
		doc.doc.CustomFields[id] = value
	}
	return nil
}

func (f *FakeDMS) TransitionTag(_ context.Context, docID int, fromTagName, toTagName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[docID]
	if !ok {
		return fmt.Errorf("fakedms: document %d not found", docID)
	}
	f.ensureTagLocked(toTagName)
	doc.tags[toTagName] = true
	if fromTagName != "" {
		delete(doc.tags, fromTagName)
	}
	return nil
}

func (f *FakeDMS) AddTagByName(_ context.Context, docID int, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[docID]
	if !ok {
		return fmt.Errorf("fakedms: document %d not found", docID)
	}
	f.ensureTagLocked(name)
	doc.tags[name] = true
	return nil
}

func (f *FakeDMS) RemoveTagByName(_ context.Context, docID int, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if doc, ok := f.docs[docID]; ok {
		delete(doc.tags, name)
	}
	return nil
}

func (f *FakeDMS) ListEntities(_ context.Context, kind models.EntityKind) ([]models.Entity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Entity, len(f.entities[kind]))
	copy(out, f.entities[kind])
	return out, nil
}

func (f *FakeDMS) CreateOrLookupEntity(_ context.Context, kind models.EntityKind, name string) (models.Entity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.addEntityLocked(kind, name)
	return models.Entity{ID: id, Name: name}, nil
}

func (f *FakeDMS) CustomFieldDefs(_ context.Context) ([]models.CustomFieldDef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.CustomFieldDef, len(f.fields))
	copy(out, f.fields)
	return out, nil
}

func (f *FakeDMS) DownloadDocument(_ context.Context, docID int) ([]byte, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	binary, ok := f.binaries[docID]
	if !ok {
		return nil, "", fmt.Errorf("fakedms: document %d not found", docID)
	}
	return binary, fmt.Sprintf("document-%d.pdf", docID), nil
}

func (f *FakeDMS) TagIDForName(_ context.Context, name string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ensureTagLocked(name), nil
}

// ListCandidates mirrors the real adapter's query: every document not
// carrying the processed tag, excluding excludeDocIDs, oldest first.
func (f *FakeDMS) ListCandidates(_ context.Context, processedTagID int, excludeDocIDs map[int]bool) ([]*models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	processedName := ""
	for _, e := range f.entities[models.EntityKindTag] {
		if e.ID == processedTagID {
			processedName = e.Name
		}
	}

	var out []*models.Document
	for id, doc := range f.docs {
		if excludeDocIDs[id] || doc.tags[processedName] {
			continue
		}
		out = append(out, f.projectLocked(doc))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *FakeDMS) ListDocumentsByTag(_ context.Context, tagName string) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []int
	for id, doc := range f.docs {
		if doc.tags[tagName] {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out, nil
}
