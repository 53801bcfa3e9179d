package render

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/model"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/session"
)

func TestNewParsesAllTemplates(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	for _, page := range pages {
		assert.Contains(t, r.templates, page)
	}
}

func TestHTMLRendersRootPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.HTML(w, http.StatusOK, "root", Page{
		CurrentUser: "alice",
		Flashes:     []session.Flash{{Level: session.LevelSuccess, Message: "Feedback Added!"}},
		Data: struct{ Feedbacks []model.FeedbackItem }{
			Feedbacks: []model.FeedbackItem{
				{ID: 1, Title: "Hi", Content: "Hello", OwnerUsername: "alice"},
			},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "Hi")
	assert.Contains(t, body, "alert-success")
	assert.Contains(t, body, "Feedback Added!")
	// Owner sees edit/delete controls.
	assert.Contains(t, body, "/feedback/1/update")
	assert.Contains(t, body, "/feedback/1/delete")
}

func TestHTMLEscapesUserContent(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.HTML(w, http.StatusOK, "root", Page{
		Data: struct{ Feedbacks []model.FeedbackItem }{
			Feedbacks: []model.FeedbackItem{
				{ID: 1, Title: `<script>alert("x")</script>`, Content: `<img src=x onerror=alert(1)>`, OwnerUsername: "mallory"},
			},
		},
	})

	body := w.Body.String()
	assert.NotContains(t, body, `<script>alert`)
	assert.NotContains(t, body, "onerror=alert")
}

func TestHTMLUnknownTemplate(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.HTML(w, http.StatusOK, "nope", Page{})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMarkdown(t *testing.T) {
	html := string(Markdown("# Heading\n\nSome *emphasis*."))
	assert.Contains(t, html, "<h1>Heading</h1>")
	assert.Contains(t, html, "<em>emphasis</em>")

	// Raw HTML is omitted by goldmark's default renderer.
	unsafe := string(Markdown(`<script>alert("x")</script>`))
	assert.NotContains(t, unsafe, "<script>")
}
