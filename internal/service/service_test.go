package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/inkwell-api/internal/database"
	"github.com/01moynul/inkwell-api/internal/models"
	"github.com/01moynul/inkwell-api/internal/store/sqlstore"
)

// stepClock returns a strictly increasing time on every call.
type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type fixture struct {
	store      *sqlstore.Store
	articles   *ArticleService
	categories *CategoryService
	users      *UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := database.Open(context.Background(), "sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	st, err := sqlstore.New(db)
	require.NoError(t, err)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { _ = st.Close() })

	clock := &stepClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	opts := Options{Now: clock.Now}
	return &fixture{
		store:      st,
		articles:   NewArticleService(st, opts),
		categories: NewCategoryService(st, opts),
		users:      NewUserService(st, staticTokens{}, opts),
	}
}

type staticTokens struct{}

func (staticTokens) GenerateToken(id uuid.UUID) (string, error) {
	return "token-" + id.String(), nil
}

func (f *fixture) category(t *testing.T, name string) models.Category {
	t.Helper()
	c, err := f.categories.Create(context.Background(), name)
	require.NoError(t, err)
	return c
}

func (f *fixture) article(t *testing.T, category models.Category, owner uuid.UUID, title string, featured bool) models.Article {
	t.Helper()
	a, err := f.articles.Create(context.Background(), models.CreateArticleInput{
		Title:    title,
		Content:  "Body of " + title,
		Category: category.ID.String(),
		Author:   "Bob",
		Featured: featured,
	}, owner)
	require.NoError(t, err)
	return a
}

func requireKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	require.Error(t, err)
	var svcErr *Error
	require.True(t, errors.As(err, &svcErr), "expected *service.Error, got %T: %v", err, err)
	require.Equal(t, kind, svcErr.Kind, svcErr.Error())
	return svcErr
}

func ptr[T any](v T) *T {
	return &v
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("wrapped: %w", notFound("x"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, "conflict", KindConflict.String())
}
