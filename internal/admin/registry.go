// Package admin implements generic row-level access to every persistent table
// for the admin console and the admin CLI.
package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"tastebuds/internal/cache"
	"tastebuds/internal/database"
	"tastebuds/internal/models"
	"tastebuds/internal/observability"
	"tastebuds/internal/service"
	"tastebuds/internal/validation"

	"gorm.io/gorm"
)

type tabler interface {
	TableName() string
}

// Table describes one administrable table. Keys are the primary-key columns in
// URL order; Editable are the columns an update may write.
type Table struct {
	Name     string   `json:"name"`
	Keys     []string `json:"keys"`
	Editable []string `json:"editable"`

	newRow  func() any
	newRows func() any
	// prepare fills columns that JSON decoding cannot, such as the user
	// password hash.
	prepare func(row any, fields map[string]json.RawMessage, creating bool) error
}

// TableSummary is one entry of the table index.
type TableSummary struct {
	Name string `json:"name"`
	Rows int64  `json:"rows"`
}

func define[T tabler](keys []string, editable ...string) *Table {
	var zero T
	return &Table{
		Name:     zero.TableName(),
		Keys:     keys,
		Editable: editable,
		newRow:   func() any { return new(T) },
		newRows: func() any {
			rows := make([]T, 0)
			return &rows
		},
	}
}

var idKey = []string{"id"}

func tables() []*Table {
	users := define[models.User](idKey, "name", "username", "email", "password", "profile_info", "avatar_url")
	users.prepare = prepareUser
	favorites := define[models.Favorite](idKey, "user_id", "cocktail_id", "dish_id")
	favorites.prepare = prepareFavorite

	return []*Table{
		users,
		define[models.Ingredient](idKey, "name", "type"),
		define[models.Cocktail](idKey, "name", "preparation_steps", "flavor_profile", "user_id"),
		define[models.Dish](idKey, "name", "preparation_steps", "flavor_profile", "user_id"),
		favorites,
		define[models.Pairing](idKey, "user_id", "cocktail_id", "dish_id"),
		define[models.Post](idKey, "user_id", "content"),
		define[models.Comment](idKey, "post_id", "user_id", "content"),
		define[models.Chat](idKey, "name", "is_group"),
		define[models.ChatParticipant]([]string{"chat_id", "user_id"}),
		define[models.Message](idKey, "chat_id", "user_id", "content"),
		define[models.Notification](idKey, "user_id", "type", "content", "read"),
		define[models.Follow]([]string{"follower_id", "followed_id"}),
	}
}

func prepareUser(row any, fields map[string]json.RawMessage, creating bool) error {
	user := row.(*models.User)
	checks := []struct {
		column string
		check  func() error
	}{
		{"name", func() error { return validation.ValidateName("name", user.Name) }},
		{"username", func() error { return validation.ValidateUsername(user.Username) }},
		{"email", func() error { return validation.ValidateEmail(user.Email) }},
	}
	for _, c := range checks {
		if _, ok := fields[c.column]; !ok && !creating {
			continue
		}
		if err := c.check(); err != nil {
			return models.NewValidationError(err.Error())
		}
	}

	raw, ok := fields["password"]
	if !ok {
		if creating {
			return models.NewValidationError("password is required")
		}
		return nil
	}
	var password string
	if err := json.Unmarshal(raw, &password); err != nil {
		return models.NewValidationError("password must be a string")
	}
	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hash
	return nil
}

func prepareFavorite(row any, _ map[string]json.RawMessage, _ bool) error {
	if !row.(*models.Favorite).HasSingleTarget() {
		return models.NewValidationError("Exactly one of cocktail_id or dish_id is required")
	}
	return nil
}

// Registry serves the admin operations over a fixed set of tables.
type Registry struct {
	db     *gorm.DB
	cache  *cache.Store
	tables map[string]*Table
	order  []string
}

// NewRegistry returns a registry over every persistent table. c may be nil.
func NewRegistry(db *gorm.DB, c *cache.Store) *Registry {
	r := &Registry{db: db, cache: c, tables: make(map[string]*Table)}
	for _, t := range tables() {
		r.tables[t.Name] = t
		r.order = append(r.order, t.Name)
	}
	return r
}

// Names lists the registered tables in schema order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Table looks up a table by name.
func (r *Registry) Table(name string) (*Table, error) {
	t, ok := r.tables[name]
	if !ok {
		return nil, models.NewNotFoundError("Table", name)
	}
	return t, nil
}

// Summaries returns every table with its row count.
func (r *Registry) Summaries(ctx context.Context) ([]TableSummary, error) {
	out := make([]TableSummary, 0, len(r.order))
	for _, name := range r.order {
		t := r.tables[name]
		var count int64
		if err := r.db.WithContext(ctx).Model(t.newRow()).Count(&count).Error; err != nil {
			return nil, models.NewInternalError(fmt.Errorf("count %s: %w", name, err))
		}
		out = append(out, TableSummary{Name: name, Rows: count})
	}
	return out, nil
}

// List returns all rows of a table ordered by primary key.
func (r *Registry) List(ctx context.Context, name string) (any, error) {
	t, err := r.Table(name)
	if err != nil {
		return nil, err
	}
	rows := t.newRows()
	if err := r.db.WithContext(ctx).Order(strings.Join(t.Keys, ", ")).Find(rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return rows, nil
}

// Get returns one row. key is the id, or "a,b" for composite keys.
func (r *Registry) Get(ctx context.Context, name, key string) (any, error) {
	t, err := r.Table(name)
	if err != nil {
		return nil, err
	}
	values, err := parseKey(t, key)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, t, key, values)
}

func (r *Registry) find(ctx context.Context, t *Table, key string, values []uint64) (any, error) {
	row := t.newRow()
	if err := whereKey(r.db.WithContext(ctx), t, values).Take(row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(t.Name, key)
		}
		return nil, models.NewInternalError(err)
	}
	return row, nil
}

// Create inserts a row from a JSON object. Composite-key tables take their key
// columns from the body; id tables always get a generated id.
func (r *Registry) Create(ctx context.Context, name string, body []byte) (any, error) {
	t, err := r.Table(name)
	if err != nil {
		return nil, err
	}
	allowed := t.Editable
	if len(t.Keys) > 1 {
		allowed = append(slices.Clone(t.Keys), t.Editable...)
	}
	row := t.newRow()
	fields, err := decodeInto(t, body, allowed, row)
	if err != nil {
		return nil, err
	}
	if t.prepare != nil {
		if err := t.prepare(row, fields, true); err != nil {
			return nil, err
		}
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, database.ClassifyError(t.Name, err)
	}
	observability.Logger.InfoContext(ctx, "admin row created", slog.String("table", t.Name))
	return row, nil
}

// Update writes the supplied editable columns of one row.
func (r *Registry) Update(ctx context.Context, name, key string, body []byte) (any, error) {
	t, err := r.Table(name)
	if err != nil {
		return nil, err
	}
	if len(t.Editable) == 0 {
		return nil, models.NewValidationError(fmt.Sprintf("Table %s has no editable columns", t.Name))
	}
	values, err := parseKey(t, key)
	if err != nil {
		return nil, err
	}
	row, err := r.find(ctx, t, key, values)
	if err != nil {
		return nil, err
	}

	fields, err := decodeInto(t, body, t.Editable, row)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, models.NewValidationError("No columns to update")
	}
	if t.prepare != nil {
		if err := t.prepare(row, fields, false); err != nil {
			return nil, err
		}
	}

	columns := make([]string, 0, len(fields))
	for col := range fields {
		columns = append(columns, col)
	}
	slices.Sort(columns)

	res := whereKey(r.db.WithContext(ctx), t, values).Model(row).Select(columns).Updates(row)
	if res.Error != nil {
		return nil, database.ClassifyError(t.Name, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError(t.Name, key)
	}
	r.evict(ctx, t.Name, values)
	observability.Logger.InfoContext(ctx, "admin row updated",
		slog.String("table", t.Name), slog.String("key", key), slog.Any("columns", columns))
	return r.find(ctx, t, key, values)
}

// Delete removes one row; dependent rows follow through ON DELETE CASCADE.
func (r *Registry) Delete(ctx context.Context, name, key string) error {
	t, err := r.Table(name)
	if err != nil {
		return err
	}
	values, err := parseKey(t, key)
	if err != nil {
		return err
	}

	var cocktailIDs, dishIDs []uint
	if t.Name == "users" {
		db := r.db.WithContext(ctx)
		if err := db.Model(&models.Cocktail{}).Where("user_id = ?", values[0]).Pluck("id", &cocktailIDs).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := db.Model(&models.Dish{}).Where("user_id = ?", values[0]).Pluck("id", &dishIDs).Error; err != nil {
			return models.NewInternalError(err)
		}
	}

	res := whereKey(r.db.WithContext(ctx), t, values).Delete(t.newRow())
	if res.Error != nil {
		return database.ClassifyError(t.Name, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError(t.Name, key)
	}

	r.evict(ctx, t.Name, values)
	r.evictRecipes(ctx, cocktailIDs, dishIDs)
	observability.Logger.InfoContext(ctx, "admin row deleted", slog.String("table", t.Name), slog.String("key", key))
	return nil
}

func (r *Registry) evict(ctx context.Context, table string, key []uint64) {
	switch table {
	case "cocktails":
		r.evictRecipes(ctx, []uint{uint(key[0])}, nil)
	case "dishes":
		r.evictRecipes(ctx, nil, []uint{uint(key[0])})
	}
}

func (r *Registry) evictRecipes(ctx context.Context, cocktailIDs, dishIDs []uint) {
	keys := make([]string, 0, len(cocktailIDs)+len(dishIDs))
	for _, id := range cocktailIDs {
		keys = append(keys, cache.CocktailKey(id))
	}
	for _, id := range dishIDs {
		keys = append(keys, cache.DishKey(id))
	}
	r.cache.Invalidate(ctx, keys...)
}

func parseKey(t *Table, key string) ([]uint64, error) {
	parts := strings.Split(key, ",")
	if len(parts) != len(t.Keys) {
		return nil, models.NewValidationError(fmt.Sprintf("Table %s is keyed by %s", t.Name, strings.Join(t.Keys, ",")))
	}
	values := make([]uint64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil || v == 0 {
			return nil, models.NewValidationError(fmt.Sprintf("Invalid %s %q", t.Keys[i], p))
		}
		values[i] = v
	}
	return values, nil
}

func whereKey(db *gorm.DB, t *Table, values []uint64) *gorm.DB {
	for i, col := range t.Keys {
		db = db.Where(fmt.Sprintf("%s = ?", col), values[i])
	}
	return db
}

// decodeInto checks that body is a JSON object naming only allowed columns and
// decodes it onto row. It returns the supplied fields by column name.
func decodeInto(t *Table, body []byte, allowed []string, row any) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, models.NewValidationError("Body must be a JSON object")
	}
	for col := range fields {
		if !slices.Contains(allowed, col) {
			return nil, models.NewValidationError(fmt.Sprintf("Column %s is not writable on %s", col, t.Name))
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(row); err != nil {
		return nil, models.NewValidationError(fmt.Sprintf("Invalid %s row: %v", t.Name, err))
	}
	return fields, nil
}
