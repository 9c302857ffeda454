package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"bookreviews/internal/models"
	"bookreviews/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  int
	registerErr error
	authID      int
	authErr     error

	registerCalls int
	authCalls     int

	lastRegisterUsername string
	lastRegisterPassword string
	lastAuthUsername     string
	lastAuthPassword     string
}

func (m *mockAuth) Register(username, password string) (int, error) {
	m.registerCalls++
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerID, m.registerErr
}

func (m *mockAuth) Authenticate(username, password string) (int, error) {
	m.authCalls++
	m.lastAuthUsername = username
	m.lastAuthPassword = password
	return m.authID, m.authErr
}

type mockSessions struct {
	token    string
	issueErr error
	parseID  int
	parseErr error

	issueCalls int
	lastParsed string
}

func (m *mockSessions) IssueToken(userID int) (string, error) {
	m.issueCalls++
	return m.token, m.issueErr
}

func (m *mockSessions) ParseToken(token string) (int, error) {
	m.lastParsed = token
	return m.parseID, m.parseErr
}

type mockCatalog struct {
	books     []models.Book
	searchErr error
	info      *models.BookInfo
	infoErr   error

	searchCalls int
	infoCalls   int
	lastQuery   service.SearchQuery
	lastISBN    string
}

func (m *mockCatalog) Search(ctx context.Context, q service.SearchQuery) ([]models.Book, error) {
	m.searchCalls++
	m.lastQuery = q
	return m.books, m.searchErr
}

func (m *mockCatalog) BookInfo(ctx context.Context, isbn string) (*models.BookInfo, error) {
	m.infoCalls++
	m.lastISBN = isbn
	return m.info, m.infoErr
}

type mockReviews struct {
	status    service.ReviewStatus
	statusErr error
	submitErr error
	list      []models.BookReview
	listErr   error

	statusCalls int
	submitCalls int
	listCalls   int
	lastRating  int
	lastReview  string
}

func (m *mockReviews) Status(ctx context.Context, bookID, userID int) (service.ReviewStatus, error) {
	m.statusCalls++
	return m.status, m.statusErr
}

func (m *mockReviews) Submit(ctx context.Context, bookID, userID, rating int, review string) error {
	m.submitCalls++
	m.lastRating = rating
	m.lastReview = review
	return m.submitErr
}

func (m *mockReviews) ListForBook(ctx context.Context, bookID int) ([]models.BookReview, error) {
	m.listCalls++
	return m.list, m.listErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// validSessions is a Sessions mock that accepts any cookie as user 7.
func validSessions() *mockSessions {
	return &mockSessions{token: "tok123", parseID: 7}
}

func doGet(r *gin.Engine, target string, withSession bool) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if withSession {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "cookie-token"})
	}
	r.ServeHTTP(w, req)
	return w
}

func doPostForm(r *gin.Engine, target string, form url.Values, withSession bool) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if withSession {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "cookie-token"})
	}
	r.ServeHTTP(w, req)
	return w
}

var testBookInfo = &models.BookInfo{
	Title:                "Fahrenheit 451",
	Author:               "Ray Bradbury",
	Year:                 2006,
	ISBN:                 "1416949658",
	ISBN13:               "9781416949657",
	RatingsCount:         30516,
	ReviewsCount:         61559,
	TextReviewsCount:     2512,
	WorkRatingsCount:     1520405,
	WorkReviewsCount:     2679277,
	WorkTextReviewsCount: 33569,
	AverageRating:        "3.98",
	BookID:               3,
}
