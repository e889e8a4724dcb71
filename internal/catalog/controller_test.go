// internal/catalog/controller_test.go
package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/errors"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/logger"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

type fakeResource struct {
	name string

	items     []models.CatalogItem
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	lastFields map[string]interface{}
	deletedID  string
}

func (f *fakeResource) Name() string { return f.name }

func (f *fakeResource) List(_ context.Context, _ string) ([]models.CatalogItem, error) {
	f.listCalls++
	return f.items, f.listErr
}

func (f *fakeResource) Create(_ context.Context, fields map[string]interface{}) (*models.CatalogItem, error) {
	f.createCalls++
	f.lastFields = fields
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.CatalogItem{ID: "new"}, nil
}

func (f *fakeResource) Update(_ context.Context, id string, fields map[string]interface{}) (*models.CatalogItem, error) {
	f.updateCalls++
	f.lastFields = fields
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.CatalogItem{ID: id}, nil
}

func (f *fakeResource) Delete(_ context.Context, id string) error {
	f.deleteCalls++
	f.deletedID = id
	return f.deleteErr
}

func TestControllerSearchFiltersLocally(t *testing.T) {
	res := &fakeResource{
		name: "industries",
		items: []models.CatalogItem{
			{ID: "1", Name: "Agriculture", Description: "Farming and produce"},
			{ID: "2", Name: "Logistics", Description: "Haulage"},
		},
	}
	c := NewController(res, logger.NewTestLogger(t))
	require.NoError(t, c.Load(context.Background(), ""))

	c.SetQuery("agri")
	visible := c.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Agriculture", visible[0].Name)

	// Description matches too.
	c.SetQuery("haulage")
	visible = c.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Logistics", visible[0].Name)

	c.SetQuery("")
	assert.Len(t, c.Visible(), 2)
}

func TestControllerCreateRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]interface{}
	}{
		{"empty name", map[string]interface{}{"name": "", "description": "d"}},
		{"whitespace name", map[string]interface{}{"name": "   ", "description": "d"}},
		{"absent name", map[string]interface{}{"description": "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &fakeResource{name: "industries"}
			c := NewController(res, logger.NewTestLogger(t))

			err := c.Create(context.Background(), tt.fields)
			require.Error(t, err)
			assert.Contains(t, err.(*errors.StandardError).Message, "fill in all fields")
			// Invalid input never reaches the backend.
			assert.Equal(t, 0, res.createCalls)
		})
	}
}

func TestControllerCommissionRateRange(t *testing.T) {
	tests := []struct {
		name    string
		rate    string
		wantErr bool
	}{
		{"below range", "-1", true},
		{"above range", "150", true},
		{"not a number", "abc", true},
		{"at lower bound", "0", false},
		{"at upper bound", "100", false},
		{"inside range", "12.5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &fakeResource{name: "commissions"}
			c := NewController(res, logger.NewTestLogger(t))

			err := c.Create(context.Background(), map[string]interface{}{
				"name": "Standard",
				"rate": tt.rate,
			})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Rate must be between 0 and 100", err.(*errors.StandardError).Message)
				assert.Equal(t, 0, res.createCalls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, res.createCalls)
			// Rate reaches the backend as a parsed number.
			_, isNumber := res.lastFields["rate"].(float64)
			assert.True(t, isNumber)
		})
	}
}

func TestControllerCreateRefetchesCollection(t *testing.T) {
	res := &fakeResource{name: "industries"}
	c := NewController(res, logger.NewTestLogger(t))
	require.NoError(t, c.Load(context.Background(), ""))
	require.Equal(t, 1, res.listCalls)

	res.items = []models.CatalogItem{{ID: "1", Name: "Agriculture"}}
	require.NoError(t, c.Create(context.Background(), map[string]interface{}{"name": "Agriculture"}))

	assert.Equal(t, 2, res.listCalls)
	assert.Len(t, c.Visible(), 1)
}

func TestControllerCreatePassesThroughServerRejection(t *testing.T) {
	res := &fakeResource{
		name:      "industries",
		createErr: errors.NewAPIRejectedError("Industry already exists"),
	}
	c := NewController(res, logger.NewTestLogger(t))

	err := c.Create(context.Background(), map[string]interface{}{"name": "Agriculture"})
	require.Error(t, err)
	assert.Equal(t, "Industry already exists", errors.ToAlert(err).Message)
}

func TestControllerTwoPhaseDelete(t *testing.T) {
	res := &fakeResource{name: "industries"}
	c := NewController(res, logger.NewTestLogger(t))

	c.RequestDelete("item-1")
	assert.Equal(t, "item-1", c.PendingDelete())
	assert.Equal(t, 0, res.deleteCalls)

	c.CancelDelete()
	require.NoError(t, c.ConfirmDelete(context.Background()))
	assert.Equal(t, 0, res.deleteCalls)

	c.RequestDelete("item-2")
	require.NoError(t, c.ConfirmDelete(context.Background()))
	assert.Equal(t, 1, res.deleteCalls)
	assert.Equal(t, "item-2", res.deletedID)
	// Deletion triggers a server refetch, not a local splice.
	assert.Equal(t, 1, res.listCalls)
}

func TestControllerUpdateValidatesLikeCreate(t *testing.T) {
	res := &fakeResource{name: "commissions"}
	c := NewController(res, logger.NewTestLogger(t))

	err := c.Update(context.Background(), "c-1", map[string]interface{}{"name": "Standard", "rate": "101"})
	require.Error(t, err)
	assert.Equal(t, 0, res.updateCalls)

	require.NoError(t, c.Update(context.Background(), "c-1", map[string]interface{}{"name": "Standard", "rate": "45"}))
	assert.Equal(t, 1, res.updateCalls)
}
