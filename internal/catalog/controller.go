// internal/catalog/controller.go
package catalog

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/errors"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/logger"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/validation"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

// Resource is the backend contract every catalog collection satisfies.
// *api.CatalogResource implements it.
type Resource interface {
	Name() string
	List(ctx context.Context, parentID string) ([]models.CatalogItem, error)
	Create(ctx context.Context, fields map[string]interface{}) (*models.CatalogItem, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.CatalogItem, error)
	Delete(ctx context.Context, id string) error
}

// Controller manages one catalog collection's list/search/create/update/
// delete lifecycle. After every successful mutation the collection is
// refetched from the server; the local copy is never patched in place, so
// the screen always shows server truth.
type Controller struct {
	mu   sync.Mutex
	res  Resource
	spec FormSpec
	log  logger.Logger

	items         []models.CatalogItem
	query         string
	parentID      string
	submitting    bool
	pendingDelete string
}

func NewController(res Resource, log logger.Logger) *Controller {
	return &Controller{
		res:  res,
		spec: FormSpecFor(res.Name()),
		log:  log,
	}
}

// ==========================
// LISTING AND SEARCH
// ==========================

// Load fetches the collection, optionally scoped to a parent record.
func (c *Controller) Load(ctx context.Context, parentID string) error {
	items, err := c.res.List(ctx, parentID)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.items = items
	c.parentID = parentID
	c.mu.Unlock()
	return nil
}

// SetQuery updates the live search filter. Filtering is purely local.
func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	c.query = query
	c.mu.Unlock()
}

// Visible returns the items matching the current search query,
// case-insensitively against name and description.
func (c *Controller) Visible() []models.CatalogItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	if strings.TrimSpace(c.query) == "" {
		return append([]models.CatalogItem(nil), c.items...)
	}
	var out []models.CatalogItem
	for _, item := range c.items {
		if item.MatchesQuery(c.query) {
			out = append(out, item)
		}
	}
	return out
}

// ==========================
// VALIDATION
// ==========================

// validateFields parses numeric inputs and runs the form schema. Invalid
// input never reaches the network.
func (c *Controller) validateFields(fields map[string]interface{}) (map[string]interface{}, error) {
	parsed := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		parsed[k] = v
	}
	for _, name := range c.spec.NumericFields {
		raw, ok := parsed[name].(string)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		num, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, c.rangeError(name)
		}
		parsed[name] = num
	}

	result := validation.ValidateInput(parsed, c.spec.Schema)
	if result.Valid {
		return parsed, nil
	}

	var missing []string
	for _, ve := range result.Errors {
		switch ve.Code {
		case "REQUIRED_FIELD_MISSING":
			missing = append(missing, ve.Field)
		case "MINIMUM_VIOLATION", "MAXIMUM_VIOLATION":
			return nil, c.rangeError(ve.Field)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewRequiredFieldError(missing...)
	}
	return nil, errors.NewRequiredFieldError()
}

func (c *Controller) rangeError(field string) error {
	label := c.spec.Labels[field]
	if label == "" {
		label = field
	}
	prop := c.spec.Schema.Properties[field]
	min, max := 0.0, 0.0
	if prop.Minimum != nil {
		min = *prop.Minimum
	}
	if prop.Maximum != nil {
		max = *prop.Maximum
	}
	return errors.NewValueOutOfRangeError(label, min, max)
}

// ==========================
// MUTATIONS
// ==========================

// beginSubmit flips the in-flight flag, rejecting a second tap while a
// mutation is still running.
func (c *Controller) beginSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return false
	}
	c.submitting = true
	return true
}

func (c *Controller) endSubmit() {
	c.mu.Lock()
	c.submitting = false
	c.mu.Unlock()
}

// Submitting reports whether a mutation is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Create validates the form and submits a new record, then refetches.
func (c *Controller) Create(ctx context.Context, fields map[string]interface{}) error {
	parsed, err := c.validateFields(fields)
	if err != nil {
		return err
	}
	if !c.beginSubmit() {
		return nil
	}
	defer c.endSubmit()

	if _, err := c.res.Create(ctx, parsed); err != nil {
		c.log.WithError(err).Warn("catalog create failed", map[string]interface{}{
			"resource": c.res.Name(),
		})
		return err
	}
	return c.refetch(ctx)
}

// Update validates the form and replaces an existing record, then refetches.
func (c *Controller) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	parsed, err := c.validateFields(fields)
	if err != nil {
		return err
	}
	if !c.beginSubmit() {
		return nil
	}
	defer c.endSubmit()

	if _, err := c.res.Update(ctx, id, parsed); err != nil {
		c.log.WithError(err).Warn("catalog update failed", map[string]interface{}{
			"resource": c.res.Name(),
			"id":       id,
		})
		return err
	}
	return c.refetch(ctx)
}

// ==========================
// TWO-PHASE DELETE
// ==========================

// RequestDelete stages a deletion pending user confirmation. Nothing is
// removed until ConfirmDelete.
func (c *Controller) RequestDelete(id string) {
	c.mu.Lock()
	c.pendingDelete = id
	c.mu.Unlock()
}

// PendingDelete returns the id awaiting confirmation, if any.
func (c *Controller) PendingDelete() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingDelete
}

// CancelDelete drops the staged deletion.
func (c *Controller) CancelDelete() {
	c.mu.Lock()
	c.pendingDelete = ""
	c.mu.Unlock()
}

// ConfirmDelete performs the staged deletion and refetches on success.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	id := c.pendingDelete
	c.pendingDelete = ""
	c.mu.Unlock()
	if id == "" {
		return nil
	}
	if !c.beginSubmit() {
		return nil
	}
	defer c.endSubmit()

	if err := c.res.Delete(ctx, id); err != nil {
		c.log.WithError(err).Warn("catalog delete failed", map[string]interface{}{
			"resource": c.res.Name(),
			"id":       id,
		})
		return err
	}
	return c.refetch(ctx)
}

func (c *Controller) refetch(ctx context.Context) error {
	c.mu.Lock()
	parentID := c.parentID
	c.mu.Unlock()

	items, err := c.res.List(ctx, parentID)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}
