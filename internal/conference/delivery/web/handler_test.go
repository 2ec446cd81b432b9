package web_test

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conference-tracker/internal/conference"
	"conference-tracker/internal/conference/delivery/web"
	"conference-tracker/internal/conference/usecase"
	"conference-tracker/internal/model"
	"conference-tracker/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo serves fixed records, standing in for the data file.
type mockRepo struct {
	confs []model.Conference
	err   error
}

func (m *mockRepo) Load(ctx context.Context) ([]model.Conference, error) {
	return m.confs, m.err
}

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func dateIn(days int) string {
	return now.AddDate(0, 0, days).Format(model.DateFormat)
}

const indexTemplate = `{{range .Conferences}}<div class="conf {{.Tier}}">{{.Name}}|{{.NextDeadline.Kind}}|{{.NextDeadline.Date}}|{{.NextDeadline.Days}}</div>
{{end}}<a href="{{.GithubRepoURL}}">PR</a>`

const errorTemplate = `<p class="error">{{.Message}}</p>`

func mustTemplates(t *testing.T) *template.Template {
	t.Helper()
	tmpl, err := template.New("index.html").Parse(indexTemplate)
	if err != nil {
		t.Fatalf("parse index template: %v", err)
	}
	if _, err := tmpl.New("error.html").Parse(errorTemplate); err != nil {
		t.Fatalf("parse error template: %v", err)
	}
	return tmpl
}

func indexOf(t *testing.T, body, needle string) int {
	t.Helper()
	idx := strings.Index(body, needle)
	if idx < 0 {
		t.Fatalf("expected body to contain %q, body:\n%s", needle, body)
	}
	return idx
}

func newServer(t *testing.T, repo conference.Repository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(mustTemplates(t))

	uc := usecase.New(&mockLogger{}, repo)
	h := web.New(&mockLogger{}, uc, "https://github.com/example/conference-tracker", func() time.Time { return now })
	web.RegisterRoutes(r, h)
	return r
}

func TestIndex(t *testing.T) {
	repo := &mockRepo{confs: []model.Conference{
		{
			Name:      "B",
			FullName:  "B Conf",
			Website:   "https://b.example.org",
			Deadlines: map[string]string{"paper": dateIn(40)},
		},
		{
			Name:      "A",
			FullName:  "A Conf",
			Website:   "https://a.example.org",
			Deadlines: map[string]string{"paper": dateIn(3)},
		},
	}}
	r := newServer(t, repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	// A (3 days, urgent) renders before B (40 days, normal).
	aIdx := indexOf(t, body, `<div class="conf urgent">A|paper|`)
	bIdx := indexOf(t, body, `<div class="conf normal">B|paper|`)
	assert.Less(t, aIdx, bIdx)
	assert.Contains(t, body, "https://github.com/example/conference-tracker")
}

func TestIndexIdempotent(t *testing.T) {
	repo := &mockRepo{confs: []model.Conference{
		{
			Name:    "X",
			Website: "https://x.example.org",
			Deadlines: map[string]string{
				"abstract": dateIn(5),
				"paper":    dateIn(5),
				"final":    dateIn(5),
			},
		},
	}}
	r := newServer(t, repo)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	for i := 0; i < 10; i++ {
		again := httptest.NewRecorder()
		r.ServeHTTP(again, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, first.Body.String(), again.Body.String(),
			"same file and same now must render byte-identical output")
	}
}

func TestIndexConfigError(t *testing.T) {
	r := newServer(t, &mockRepo{err: conference.ErrConfigInvalid})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "could not be loaded")
	assert.NotContains(t, w.Body.String(), "conf urgent", "no partial render on config errors")
}

func TestListConferences(t *testing.T) {
	repo := &mockRepo{confs: []model.Conference{
		{
			Name:      "A",
			FullName:  "A Conf",
			Website:   "https://a.example.org",
			Deadlines: map[string]string{"paper": dateIn(3)},
		},
	}}
	r := newServer(t, repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/conferences", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var views []web.ConferenceView
	require.NoError(t, json.Unmarshal(raw, &views))
	require.Len(t, views, 1)
	assert.Equal(t, "A", views[0].Name)
	assert.Equal(t, "urgent", views[0].Tier)
	require.NotNil(t, views[0].NextDeadline)
	assert.Equal(t, "paper", views[0].NextDeadline.Kind)
	assert.Equal(t, 3, views[0].NextDeadline.Days)
}

func TestCalendar(t *testing.T) {
	repo := &mockRepo{confs: []model.Conference{
		{
			Name:      "NeurIPS",
			Website:   "https://neurips.cc",
			Deadlines: map[string]string{"paper": dateIn(10), "abstract": dateIn(3)},
		},
	}}
	r := newServer(t, repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/calendar.ics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/calendar")

	body := w.Body.String()
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Contains(t, body, "SUMMARY:NeurIPS paper deadline")
	assert.Contains(t, body, "SUMMARY:NeurIPS abstract deadline")
	assert.Contains(t, body, "UID:neurips-paper@neurips.cc")
}
