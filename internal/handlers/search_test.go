package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"bookreviews/internal/models"
	"bookreviews/internal/service"
)

func TestSearchPage_RendersFormWithoutQuerying(t *testing.T) {
	catalog := &mockCatalog{}
	s := &service.Service{Sessions: validSessions(), Catalog: catalog}
	r := newTestRouter(s)

	w := doGet(r, "/search", true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !containsStr(w.Body.String(), `name="isbn"`) {
		t.Fatalf("expected search form, got: %s", w.Body.String())
	}
	if catalog.searchCalls != 0 {
		t.Fatalf("GET must not run a search, got %d calls", catalog.searchCalls)
	}
}

func TestSearch_EmptyFieldsRejected(t *testing.T) {
	catalog := &mockCatalog{searchErr: service.ErrNoSearchData}
	s := &service.Service{Sessions: validSessions(), Catalog: catalog}
	r := newTestRouter(s)

	form := url.Values{"title": {""}, "author": {""}, "isbn": {""}}
	w := doPostForm(r, "/search", form, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !containsStr(w.Body.String(), errNoSearchData) {
		t.Fatalf("expected missing-data message, got: %s", w.Body.String())
	}
}

func TestSearch_ResultsRendered(t *testing.T) {
	catalog := &mockCatalog{books: []models.Book{
		{ID: 2, ISBN: "1416949658", Title: "Fahrenheit 451", Author: "Ray Bradbury", Year: 2006},
		{ID: 1, ISBN: "0441172717", Title: "Dune", Author: "Frank Herbert", Year: 1990},
	}}
	s := &service.Service{Sessions: validSessions(), Catalog: catalog}
	r := newTestRouter(s)

	form := url.Values{"title": {"e"}}
	w := doPostForm(r, "/search", form, true)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !containsStr(body, "Fahrenheit 451") || !containsStr(body, "Dune") {
		t.Fatalf("expected both titles in results, got: %s", body)
	}
	if !containsStr(body, `/book/1416949658`) {
		t.Fatalf("expected book detail link, got: %s", body)
	}
	if catalog.lastQuery.Title != "e" || catalog.lastQuery.Author != "" || catalog.lastQuery.ISBN != "" {
		t.Fatalf("unexpected query forwarded: %+v", catalog.lastQuery)
	}
}

func TestSearch_NoMatchesRendersNotFoundPage(t *testing.T) {
	catalog := &mockCatalog{books: nil}
	s := &service.Service{Sessions: validSessions(), Catalog: catalog}
	r := newTestRouter(s)

	form := url.Values{"title": {"zzz"}}
	w := doPostForm(r, "/search", form, true)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !containsStr(w.Body.String(), "No books found") {
		t.Fatalf("expected not-found page, got: %s", w.Body.String())
	}
	// not-found is its own page, not the generic error view
	if containsStr(w.Body.String(), "Something went wrong") {
		t.Fatalf("not-found must not use the error page")
	}
}
