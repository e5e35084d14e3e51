package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	apperrors "strategy-api/internal/common/errors"
	"strategy-api/internal/models"
)

// BlueprintStore reads content blueprints.
type BlueprintStore struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

func NewBlueprintStore(db *sql.DB) *BlueprintStore {
	return &BlueprintStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ListEligible returns blueprints usable for suggestion generation, meaning
// active or draft. A non-empty ids slice narrows the result to those ids;
// nil or empty means all eligible blueprints.
func (s *BlueprintStore) ListEligible(ctx context.Context, ids []int64) ([]models.ContentBlueprint, error) {
	query := s.builder.
		Select("id", "name", "version", "status", "workflow_definition").
		From("cms_blueprints").
		Where(sq.Eq{"status": []string{models.BlueprintStatusActive, models.BlueprintStatusDraft}}).
		OrderBy("id")

	if len(ids) > 0 {
		query = query.Where(sq.Eq{"id": ids})
	}

	sqlText, args, err := query.ToSql()
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("build_blueprint_query", err)
	}

	rows, err := s.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("list_blueprints", err)
	}
	defer rows.Close()

	var blueprints []models.ContentBlueprint
	for rows.Next() {
		var (
			bp         models.ContentBlueprint
			definition []byte
		)
		if err := rows.Scan(&bp.ID, &bp.Name, &bp.Version, &bp.Status, &definition); err != nil {
			return nil, apperrors.NewQueryExecutionFailedError("scan_blueprint", err)
		}
		if len(definition) > 0 {
			bp.WorkflowDefinition = append([]byte(nil), definition...)
		}
		blueprints = append(blueprints, bp)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("iterate_blueprints", err)
	}

	return blueprints, nil
}
