package postgres

import (
	"context"
	"fmt"
	"strings"

	"yokeair/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	tagsTable = "tags"
)

// UpsertTags gets or creates tags by (type, name) in one statement. The no-op
// update on conflict makes RETURNING yield existing rows as well.
func (p *PgSQL) UpsertTags(ctx context.Context, tagType domain.TagType, names ...string) ([]domain.Tag, error) {
	seen := make(map[string]struct{}, len(names))
	rows := make([]interface{}, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		rows = append(rows, PgTag{Name: name, Type: string(tagType)})
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var result []PgTag
	if err := p.Builder.Insert(tagsTable).
		Rows(rows...).
		OnConflict(goqu.DoUpdate("type, name", goqu.Record{"name": goqu.L("EXCLUDED.name")})).
		Returning(&PgTag{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not upsert tags into pg: %w", err)
	}

	return pgTagsToDomain(result), nil
}

func (p *PgSQL) TagsByID(ctx context.Context, ids ...domain.TagID) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []PgTag
	if err := p.Builder.From(tagsTable).
		Where(goqu.I("id").In(uuids(ids))).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tags by id: %w", err)
	}

	return pgTagsToDomain(rows), nil
}

func (p *PgSQL) Tags(ctx context.Context, tagType domain.TagType) ([]domain.Tag, error) {
	var rows []PgTag
	if err := p.Builder.From(tagsTable).
		Where(goqu.I("type").Eq(string(tagType))).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tags: %w", err)
	}

	return pgTagsToDomain(rows), nil
}

func pgTagsToDomain(rows []PgTag) []domain.Tag {
	out := make([]domain.Tag, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
