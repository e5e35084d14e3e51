package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "strategy-api/internal/common/errors"
	"strategy-api/internal/models"
)

func blueprintRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "version", "status", "workflow_definition"})
}

func TestListEligibleReturnsActiveAndDraft(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, version, status, workflow_definition FROM cms_blueprints WHERE status IN \(\$1,\$2\) ORDER BY id`).
		WithArgs(models.BlueprintStatusActive, models.BlueprintStatusDraft).
		WillReturnRows(blueprintRows().
			AddRow(1, "Authority Pillar", 3, "active", `{"steps":["outline","draft"]}`).
			AddRow(2, "Comparison Page", 1, "draft", nil))

	store := NewBlueprintStore(db)

	blueprints, err := store.ListEligible(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, blueprints, 2)
	assert.Equal(t, int64(1), blueprints[0].ID)
	assert.Equal(t, "Authority Pillar", blueprints[0].Name)
	assert.Equal(t, 3, blueprints[0].Version)
	assert.JSONEq(t, `{"steps":["outline","draft"]}`, string(blueprints[0].WorkflowDefinition))
	assert.Nil(t, blueprints[1].WorkflowDefinition)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEligibleFiltersByIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, version, status, workflow_definition FROM cms_blueprints WHERE status IN \(\$1,\$2\) AND id IN \(\$3,\$4\) ORDER BY id`).
		WithArgs(models.BlueprintStatusActive, models.BlueprintStatusDraft, int64(1), int64(7)).
		WillReturnRows(blueprintRows().
			AddRow(7, "Trend Response", 2, "active", `{}`))

	store := NewBlueprintStore(db)

	blueprints, err := store.ListEligible(context.Background(), []int64{1, 7})

	require.NoError(t, err)
	require.Len(t, blueprints, 1)
	assert.Equal(t, int64(7), blueprints[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEligibleEmptyResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, version, status, workflow_definition FROM cms_blueprints`).
		WillReturnRows(blueprintRows())

	store := NewBlueprintStore(db)

	blueprints, err := store.ListEligible(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, blueprints)
}

func TestListEligibleQueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, version, status, workflow_definition FROM cms_blueprints`).
		WillReturnError(assert.AnError)

	store := NewBlueprintStore(db)

	blueprints, err := store.ListEligible(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, blueprints)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeQueryExecutionFailed))
}
