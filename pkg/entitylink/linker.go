// Package entitylink resolves (name, type, language) triples to stable
// entity IDs, creating entities on first encounter.
package entitylink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chronicle-dev/chronicle/ent"
	"github.com/chronicle-dev/chronicle/ent/entity"
)

// Request is one entity to resolve.
type Request struct {
	Name     string
	Type     string
	Language string
}

// Response is the resolution outcome for one request, in input order.
type Response struct {
	EntityID            string   `json:"entity_id,omitempty"`
	StatusCode          int      `json:"status_code"`
	Message             string   `json:"message,omitempty"`
	IsVerifiedExistent  *bool    `json:"is_verified_existent,omitempty"`
	DisambiguationHints []string `json:"disambiguation_options,omitempty"`
}

// Verifier consults an external authority about an entity's existence.
// Optional; a nil Verifier skips verification.
type Verifier interface {
	VerifyEntity(ctx context.Context, name, entityType, lang string) (existent bool, hints []string, err error)
}

// Linker batch-resolves entities against the database.
type Linker struct {
	client   *ent.Client
	verifier Verifier
}

// NewLinker creates an entity linker. verifier may be nil.
func NewLinker(client *ent.Client, verifier Verifier) *Linker {
	return &Linker{client: client, verifier: verifier}
}

// entityKey identifies an entity for deduplication. Language is not part of
// the identity: the same (name, type) in different source languages resolves
// to one entity.
type entityKey struct {
	name string
	typ  string
}

// BatchGetOrCreate resolves all requests, preserving input order. Unique
// (name, type) pairs are deduplicated before touching the database and the
// results re-broadcast to every occurrence.
func (l *Linker) BatchGetOrCreate(ctx context.Context, requests []Request, sourceType string) ([]Response, error) {
	responses := make([]Response, len(requests))
	if len(requests) == 0 {
		return responses, nil
	}

	unique := make(map[entityKey]Request)
	for _, r := range requests {
		k := entityKey{name: r.Name, typ: r.Type}
		if _, ok := unique[k]; !ok {
			unique[k] = r
		}
	}

	resolved := make(map[entityKey]Response, len(unique))
	for k, r := range unique {
		resolved[k] = l.getOrCreate(ctx, r, sourceType)
	}

	for i, r := range requests {
		responses[i] = resolved[entityKey{name: r.Name, typ: r.Type}]
	}
	return responses, nil
}

func (l *Linker) getOrCreate(ctx context.Context, req Request, sourceType string) Response {
	if req.Name == "" {
		return Response{StatusCode: 400, Message: "entity name is empty"}
	}

	existing, err := l.client.Entity.Query().
		Where(entity.EntityNameEQ(req.Name), entity.EntityTypeEQ(req.Type)).
		Only(ctx)
	switch {
	case err == nil:
		return Response{EntityID: existing.ID, StatusCode: 200, IsVerifiedExistent: existing.IsVerifiedExistent}
	case !ent.IsNotFound(err):
		return Response{StatusCode: 500, Message: fmt.Sprintf("querying entity: %v", err)}
	}

	var verified *bool
	var hints []string
	if l.verifier != nil {
		existent, verifierHints, verr := l.verifier.VerifyEntity(ctx, req.Name, req.Type, req.Language)
		if verr != nil {
			slog.Warn("Entity verification failed, creating unverified",
				"name", req.Name, "type", req.Type, "error", verr)
		} else {
			verified = &existent
			hints = verifierHints
		}
	}

	create := l.client.Entity.Create().
		SetID(uuid.New().String()).
		SetEntityName(req.Name).
		SetEntityType(req.Type).
		SetLanguage(languageOrDefault(req.Language))
	if verified != nil {
		create = create.SetIsVerifiedExistent(*verified)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race with a concurrent creator; read the winner.
			winner, qerr := l.client.Entity.Query().
				Where(entity.EntityNameEQ(req.Name), entity.EntityTypeEQ(req.Type)).
				Only(ctx)
			if qerr == nil {
				return Response{EntityID: winner.ID, StatusCode: 200, IsVerifiedExistent: winner.IsVerifiedExistent}
			}
		}
		return Response{StatusCode: 500, Message: fmt.Sprintf("creating entity: %v", err)}
	}

	return Response{
		EntityID:            created.ID,
		StatusCode:          201,
		IsVerifiedExistent:  created.IsVerifiedExistent,
		DisambiguationHints: hints,
	}
}

func languageOrDefault(lang string) string {
	if lang == "" {
		return "en"
	}
	return lang
}
