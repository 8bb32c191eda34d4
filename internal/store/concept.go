package store

import (
	"context"
	"fmt"

	"github.com/diversifica/decies-platform-sub000/ent"
	"github.com/diversifica/decies-platform-sub000/ent/microconcept"
	"github.com/diversifica/decies-platform-sub000/ent/predicate"
	"github.com/diversifica/decies-platform-sub000/ent/prerequisiteedge"
)

type conceptRepo struct {
	client *ent.Client
}

func (r *conceptRepo) CreateConcept(ctx context.Context, rec ConceptRecord) error {
	_, err := r.client.MicroConcept.Create().
		SetCode(rec.Code).
		SetName(rec.Name).
		SetSubject(rec.Subject).
		SetTerm(rec.Term).
		SetActive(rec.Active).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save concept: %w", err)
	}
	return nil
}

func (r *conceptRepo) CreateEdge(ctx context.Context, rec EdgeRecord) error {
	_, err := r.client.PrerequisiteEdge.Create().
		SetConceptCode(rec.ConceptCode).
		SetPrerequisiteCode(rec.PrerequisiteCode).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save prerequisite edge: %w", err)
	}
	return nil
}

func (r *conceptRepo) ActiveConcepts(ctx context.Context, subject, term string) ([]ConceptRecord, error) {
	preds := []predicate.MicroConcept{microconcept.Active(true)}
	if subject != "" {
		preds = append(preds, microconcept.Subject(subject))
	}
	if term != "" {
		preds = append(preds, microconcept.Term(term))
	}
	concepts, err := r.client.MicroConcept.Query().
		Where(preds...).
		Order(ent.Asc(microconcept.FieldCode)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}
	return conceptRecords(concepts), nil
}

func (r *conceptRepo) ConceptByCode(ctx context.Context, code string) (*ConceptRecord, error) {
	c, err := r.client.MicroConcept.Query().
		Where(microconcept.Code(code)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query concept %q: %w", code, err)
	}
	rec := conceptRecord(c)
	return &rec, nil
}

func (r *conceptRepo) EdgesForConcepts(ctx context.Context, codes []string) ([]EdgeRecord, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	edges, err := r.client.PrerequisiteEdge.Query().
		Where(prerequisiteedge.ConceptCodeIn(codes...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query prerequisite edges: %w", err)
	}

	records := make([]EdgeRecord, len(edges))
	for i, e := range edges {
		records[i] = EdgeRecord{
			ConceptCode:      e.ConceptCode,
			PrerequisiteCode: e.PrerequisiteCode,
		}
	}
	return records, nil
}

func conceptRecord(c *ent.MicroConcept) ConceptRecord {
	return ConceptRecord{
		Code:    c.Code,
		Name:    c.Name,
		Subject: c.Subject,
		Term:    c.Term,
		Active:  c.Active,
	}
}

func conceptRecords(concepts []*ent.MicroConcept) []ConceptRecord {
	records := make([]ConceptRecord, len(concepts))
	for i, c := range concepts {
		records[i] = conceptRecord(c)
	}
	return records
}
