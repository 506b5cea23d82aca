package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"yokeair/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	applicationsTable = "applications"
)

func (p *PgSQL) StoreApplication(ctx context.Context, application domain.Application) (*domain.Application, error) {
	var row PgApplication
	if err := row.FromDomain(application); err != nil {
		return nil, err
	}

	var stored PgApplication
	if _, err := p.Builder.Insert(applicationsTable).
		Rows(row).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapErr(err, "could not store application into pg")
	}

	return stored.ToDomain()
}

func (p *PgSQL) ApplicationByID(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	var row PgApplication
	found, err := p.Builder.From(applicationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch application by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) ApplicationsByApplicant(ctx context.Context, applicantID domain.UserID) ([]domain.Application, error) {
	return p.findApplications(ctx, goqu.I("applicant_id").Eq(uuid.UUID(applicantID)))
}

func (p *PgSQL) ApplicationsByProperties(ctx context.Context,
	propertyIDs ...domain.PropertyID) ([]domain.Application, error) {
	if len(propertyIDs) == 0 {
		return nil, nil
	}

	return p.findApplications(ctx, goqu.I("property_id").In(uuids(propertyIDs)))
}

func (p *PgSQL) PendingApplicationExists(ctx context.Context,
	applicantID domain.UserID,
	propertyID domain.PropertyID) (bool, error) {
	count, err := p.Builder.From(applicationsTable).
		Where(
			goqu.I("applicant_id").Eq(uuid.UUID(applicantID)),
			goqu.I("property_id").Eq(uuid.UUID(propertyID)),
			goqu.I("status").Eq(string(domain.ApplicationStatusPending)),
		).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not count pending applications: %w", err)
	}

	return count > 0, nil
}

// UpdateApplicationStatus always writes the status and updated_at, even when
// the status does not change. Moving back to pending may hit the pending
// uniqueness index and yields storage.ErrDuplicate.
func (p *PgSQL) UpdateApplicationStatus(ctx context.Context,
	id domain.ApplicationID,
	status domain.ApplicationStatus) (*domain.Application, error) {
	return p.updateApplication(ctx, id, goqu.Record{
		"status":     string(status),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	})
}

func (p *PgSQL) AppendApplicationDocument(ctx context.Context,
	id domain.ApplicationID,
	doc domain.Document) (*domain.Application, error) {
	b, err := json.Marshal([]domain.Document{doc})
	if err != nil {
		return nil, fmt.Errorf("could not marshal document: %w", err)
	}

	return p.updateApplication(ctx, id, goqu.Record{
		"documents":  goqu.L("documents || ?::jsonb", string(b)),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	})
}

func (p *PgSQL) updateApplication(ctx context.Context,
	id domain.ApplicationID,
	rec goqu.Record) (*domain.Application, error) {
	var row PgApplication
	found, err := p.Builder.Update(applicationsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr(err, "could not update application in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) findApplications(ctx context.Context, where ...exp.Expression) ([]domain.Application, error) {
	var rows []PgApplication
	if err := p.Builder.From(applicationsTable).
		Where(where...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch applications from pg: %w", err)
	}

	return pgApplicationsToDomain(rows)
}
