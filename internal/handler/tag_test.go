package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okerlund/rosterbook/internal/domain"
	"github.com/okerlund/rosterbook/internal/handler"
)

// ---- mock TagServicer ------------------------------------------------------

type mockTagServicer struct {
	rename      func(from, to string) error
	delete      func(tag string) error
	buffers     func() map[string][]string
	setBuffer   func(name string, tags []string) error
	clearBuffer func(name string) error
}

func (m *mockTagServicer) Rename(from, to string) error { return m.rename(from, to) }
func (m *mockTagServicer) Delete(tag string) error      { return m.delete(tag) }
func (m *mockTagServicer) Buffers() map[string][]string { return m.buffers() }
func (m *mockTagServicer) SetBuffer(name string, tags []string) error {
	return m.setBuffer(name, tags)
}
func (m *mockTagServicer) ClearBuffer(name string) error { return m.clearBuffer(name) }

// compile-time check: mockTagServicer must satisfy handler.TagServicer.
var _ handler.TagServicer = (*mockTagServicer)(nil)

// ---- mock CatalogServicer --------------------------------------------------

type mockCatalogServicer struct {
	get         func() domain.Catalog
	addCategory func(name string) error
	addTag      func(category, tag string) error
}

func (m *mockCatalogServicer) Get() domain.Catalog            { return m.get() }
func (m *mockCatalogServicer) AddCategory(name string) error  { return m.addCategory(name) }
func (m *mockCatalogServicer) AddTag(category, t string) error { return m.addTag(category, t) }

var _ handler.CatalogServicer = (*mockCatalogServicer)(nil)

// ---- POST /tags/rename -----------------------------------------------------

func TestRenameTag_204(t *testing.T) {
	svc := &mockTagServicer{
		rename: func(from, to string) error {
			assert.Equal(t, "north", from)
			assert.Equal(t, "nordic", to)
			return nil
		},
	}
	h := handler.NewServer(nil, svc, nil, nil).Routes()

	rec := doJSON(t, h, http.MethodPost, "/tags/rename", `{"from":"north","to":"nordic"}`)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRenameTag_422OnBlank(t *testing.T) {
	svc := &mockTagServicer{
		rename: func(string, string) error {
			return fmt.Errorf("%w: both tag names are required", domain.ErrValidation)
		},
	}
	h := handler.NewServer(nil, svc, nil, nil).Routes()

	rec := doJSON(t, h, http.MethodPost, "/tags/rename", `{"from":"","to":"x"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "both tag names are required")
}

// ---- DELETE /tags/{tag} ----------------------------------------------------

func TestDeleteTag_204(t *testing.T) {
	svc := &mockTagServicer{
		delete: func(tag string) error {
			assert.Equal(t, "north", tag)
			return nil
		},
	}
	h := handler.NewServer(nil, svc, nil, nil).Routes()

	rec := doJSON(t, h, http.MethodDelete, "/tags/north", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
}

// ---- /catalog --------------------------------------------------------------

func TestGetCatalog_200SortedCategories(t *testing.T) {
	svc := &mockCatalogServicer{
		get: func() domain.Catalog {
			return domain.Catalog{
				"Region":   {"north"},
				"Interest": {"music"},
			}
		},
	}
	h := handler.NewServer(svc, nil, nil, nil).Routes()

	rec := doJSON(t, h, http.MethodGet, "/catalog", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"categories":[
		{"name":"Interest","tags":["music"]},
		{"name":"Region","tags":["north"]}
	]}`, rec.Body.String())
}

func TestAddTag_404OnUnknownCategory(t *testing.T) {
	svc := &mockCatalogServicer{
		addTag: func(string, string) error { return domain.ErrNotFound },
	}
	h := handler.NewServer(svc, nil, nil, nil).Routes()

	rec := doJSON(t, h, http.MethodPost, "/catalog/categories/Region/tags", `{"name":"north"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- /buffers --------------------------------------------------------------

func TestSetBuffer_204(t *testing.T) {
	svc := &mockTagServicer{
		setBuffer: func(name string, tags []string) error {
			assert.Equal(t, "filter", name)
			assert.Equal(t, []string{"a", "b"}, tags)
			return nil
		},
	}
	h := handler.NewServer(nil, svc, nil, nil).Routes()

	rec := doJSON(t, h, http.MethodPut, "/buffers/filter", `{"tags":["a","b"]}`)

	require.Equal(t, http.StatusNoContent, rec.Code)
}
