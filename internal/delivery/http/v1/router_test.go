package v1

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pings-Lab/pings-lab.github.io/config"
	"github.com/Pings-Lab/pings-lab.github.io/internal/delivery/http/middleware"
	"github.com/Pings-Lab/pings-lab.github.io/internal/delivery/http/response"
	"github.com/Pings-Lab/pings-lab.github.io/internal/usecase"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/formpost"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/validation"
)

// formSink stands in for the third-party form endpoint and records bodies.
type formSink struct {
	mu     sync.Mutex
	bodies []string
	srv    *httptest.Server
}

func newFormSink(t *testing.T) *formSink {
	s := &formSink{}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.bodies = append(s.bodies, string(body))
		s.mu.Unlock()
		// The endpoint's answer is never inspected.
		w.WriteHeader(http.StatusFound)
	}))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *formSink) Bodies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.bodies...)
}

// deadEndpoint returns a URL nothing listens on.
func deadEndpoint() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	u := srv.URL
	srv.Close()
	return u
}

func testConfig() *config.Config {
	return &config.Config{
		GinMode:                  gin.TestMode,
		SiteURL:                  "http://localhost:8080",
		RateLimitWindowSeconds:   60,
		RateLimitSubmitThreshold: 1000,
		RateLimitGlobalThreshold: 1000,
	}
}

func newTestRouter(t *testing.T, endpoint string, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := usecase.NewSessionStore(formpost.NewClient(2*time.Second), endpoint, validation.New(), time.Minute)
	return NewRouter(RouterDeps{
		Sessions: store,
		HealthUC: usecase.NewHealthUsecase(endpoint, store),
		Config:   cfg,
	})
}

// visitor is a cookie-carrying browser.
type visitor struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newVisitor(t *testing.T, h http.Handler) *visitor {
	return &visitor{t: t, handler: h, cookies: map[string]*http.Cookie{}}
}

func (v *visitor) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range v.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	v.handler.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		v.cookies[c.Name] = c
	}
	return w
}

func (v *visitor) get(path string) *httptest.ResponseRecorder {
	return v.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (v *visitor) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	if tok, ok := v.cookies[middleware.CSRFTokenCookieName]; ok {
		form.Set(middleware.CSRFTokenFormField, tok.Value)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return v.do(req)
}

func contactValues(name, email, typ, msg string) url.Values {
	return url.Values{"Name": {name}, "Email": {email}, "Type": {typ}, "Message": {msg}}
}

func TestPagesRender(t *testing.T) {
	r := newTestRouter(t, "", testConfig())
	v := newVisitor(t, r)

	for path, want := range map[string]string{
		"/":         "Digital Products",
		"/about":    "Our Story",
		"/services": "Our",
		"/products": "Portfolio Fox",
		"/careers":  "Apply Now",
		"/contact":  "Send Message",
	} {
		w := v.get(path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), want, path)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	}

	assert.Contains(t, v.cookies, middleware.SessionCookieName)
	assert.Contains(t, v.cookies, middleware.CSRFTokenCookieName)
}

func TestNotFoundPage(t *testing.T) {
	r := newTestRouter(t, "", testConfig())

	w := newVisitor(t, r).get("/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Oops! Page not found")

	w = newVisitor(t, r).get("/v1/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestContactSubmitSuccess(t *testing.T) {
	sink := newFormSink(t)
	v := newVisitor(t, newTestRouter(t, sink.srv.URL, testConfig()))
	v.get("/contact")

	w := v.post("/contact", contactValues("Jane Doe", "jane@x.com", "Consultation", "Hi"))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/contact", w.Header().Get("Location"))

	require.Len(t, sink.Bodies(), 1)
	assert.Equal(t, "Name=Jane%20Doe&Email=jane%40x.com&Type=Consultation&Message=Hi", sink.Bodies()[0])

	page := v.get("/contact").Body.String()
	assert.Contains(t, page, "Send Another Message")
	assert.Contains(t, page, "Message Sent! 🎉")

	// Toasts are shown once.
	assert.NotContains(t, v.get("/contact").Body.String(), "Message Sent! 🎉")

	v.post("/contact/reset", nil)
	assert.Contains(t, v.get("/contact").Body.String(), "Send Message")
}

func TestContactEmptyFieldNeverReachesEndpoint(t *testing.T) {
	sink := newFormSink(t)
	v := newVisitor(t, newTestRouter(t, sink.srv.URL, testConfig()))
	v.get("/contact")

	w := v.post("/contact", contactValues("Jane Doe", "jane@x.com", "Consultation", ""))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Empty(t, sink.Bodies())

	page := v.get("/contact").Body.String()
	assert.Contains(t, page, "Message is required")
	assert.Contains(t, page, `value="Jane Doe"`)
}

func TestContactTransportFailureKeepsFields(t *testing.T) {
	v := newVisitor(t, newTestRouter(t, deadEndpoint(), testConfig()))
	v.get("/contact")

	v.post("/contact", contactValues("Jane Doe", "jane@x.com", "Consultation", "Hi"))

	page := v.get("/contact").Body.String()
	assert.Equal(t, 1, strings.Count(page, "Message Failed!"))
	assert.Contains(t, page, `value="jane@x.com"`)
	assert.Contains(t, page, "Send Message")
}

func TestFormPostRequiresCSRFToken(t *testing.T) {
	sink := newFormSink(t)
	r := newTestRouter(t, sink.srv.URL, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(contactValues("a", "a@b.com", "Other", "x").Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, sink.Bodies())
}

func TestNotifyFlow(t *testing.T) {
	sink := newFormSink(t)
	v := newVisitor(t, newTestRouter(t, sink.srv.URL, testConfig()))
	assert.NotContains(t, v.get("/products").Body.String(), "Get Notified")

	w := v.post("/products/notify/open", url.Values{"Product": {"Web Helm"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, v.get("/products").Body.String(), "when Web Helm launches")

	v.post("/products/notify", url.Values{"Email": {"a@b.com"}})
	require.Len(t, sink.Bodies(), 1)
	assert.Equal(t, "Product=Web%20Helm&Email=a%40b.com", sink.Bodies()[0])

	page := v.get("/products").Body.String()
	assert.NotContains(t, page, "Get Notified")
	assert.Contains(t, page, "You&#39;re on the list! 🎉")
}

func TestNotifyCloseAndUnknownProduct(t *testing.T) {
	v := newVisitor(t, newTestRouter(t, "", testConfig()))
	v.get("/products")

	v.post("/products/notify/open", url.Values{"Product": {"Portfolio Fox"}})
	v.post("/products/notify/close", nil)
	assert.NotContains(t, v.get("/products").Body.String(), "Get Notified")

	w := v.post("/products/notify/open", url.Values{"Product": {"Nope"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/products", w.Header().Get("Location"))

	page := v.get("/products").Body.String()
	assert.Contains(t, page, "Product not found")
	assert.NotContains(t, page, "Get Notified")
}

func TestContactMalformedBodyRedirectsWithToast(t *testing.T) {
	sink := newFormSink(t)
	v := newVisitor(t, newTestRouter(t, sink.srv.URL, testConfig()))
	v.get("/contact")

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("Name=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(middleware.CSRFTokenHeaderName, v.cookies[middleware.CSRFTokenCookieName].Value)
	w := v.do(req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/contact", w.Header().Get("Location"))
	assert.Empty(t, sink.Bodies())
	assert.Contains(t, v.get("/contact").Body.String(), "Your message could not be read.")
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIContact(t *testing.T) {
	sink := newFormSink(t)
	r := newTestRouter(t, sink.srv.URL, testConfig())

	w := postJSON(r, "/v1/contact", `{"name":"Jane Doe","email":"jane@x.com","type":"Consultation","message":"Hi"}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Message Sent! 🎉", resp.Message)
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, []string{"Name=Jane%20Doe&Email=jane%40x.com&Type=Consultation&Message=Hi"}, sink.Bodies())

	w = postJSON(r, "/v1/contact", `{"name":"Jane Doe","email":"","type":"Consultation","message":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp = decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, []string{"Email is required", "Message is required"}, resp.Errors)
	assert.Len(t, sink.Bodies(), 1)
}

func TestAPIContactTransportFailure(t *testing.T) {
	r := newTestRouter(t, deadEndpoint(), testConfig())

	w := postJSON(r, "/v1/contact", `{"name":"Jane Doe","email":"jane@x.com","type":"Consultation","message":"Hi"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.False(t, decode(t, w).Success)
}

func TestAPINotify(t *testing.T) {
	sink := newFormSink(t)
	r := newTestRouter(t, sink.srv.URL, testConfig())

	w := postJSON(r, "/v1/notify", `{"product":"Web Helm","email":"a@b.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Product=Web%20Helm&Email=a%40b.com"}, sink.Bodies())

	w = postJSON(r, "/v1/notify", `{"product":"Nope","email":"a@b.com"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = postJSON(r, "/v1/notify", `{"product":"Web Helm","email":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Len(t, sink.Bodies(), 1)
}

func TestAPIHealth(t *testing.T) {
	r := newTestRouter(t, "", testConfig())

	w := newVisitor(t, r).get("/v1/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Data["status"])
	assert.Equal(t, "missing", resp.Data["form_endpoint"])
	assert.Equal(t, "unavailable", resp.Data["redis"])
}

func TestArtwork(t *testing.T) {
	r := newTestRouter(t, "", testConfig())
	v := newVisitor(t, r)

	w := v.get("/images/products/web-helm?w=200")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "\x89PNG"))

	w = v.get("/images/products/web-helm?w=200&format=jpeg")
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))

	assert.Equal(t, http.StatusNotFound, v.get("/images/products/unknown").Code)
}

func TestThemeToggle(t *testing.T) {
	v := newVisitor(t, newTestRouter(t, "", testConfig()))
	assert.Contains(t, v.get("/about").Body.String(), `data-theme="dark"`)

	w := v.post("/theme", url.Values{"redirect": {"/about"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/about", w.Header().Get("Location"))
	assert.Contains(t, v.get("/about").Body.String(), `data-theme="light"`)

	// Only the path of a foreign URL survives.
	w = v.post("/theme", url.Values{"redirect": {"https://evil.example.com/x"}})
	assert.Equal(t, "/x", w.Header().Get("Location"))
}

func TestSubmitRateLimit(t *testing.T) {
	sink := newFormSink(t)
	cfg := testConfig()
	cfg.RateLimitSubmitThreshold = 1
	r := newTestRouter(t, sink.srv.URL, cfg)

	body := `{"product":"Web Helm","email":"a@b.com"}`
	assert.Equal(t, http.StatusOK, postJSON(r, "/v1/notify", body).Code)
	w := postJSON(r, "/v1/notify", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Len(t, sink.Bodies(), 1)

	// HTML posts get a toast instead of JSON.
	v := newVisitor(t, r)
	v.get("/contact")
	v.post("/contact", contactValues("Jane Doe", "jane@x.com", "Consultation", "Hi"))
	w = v.post("/contact", contactValues("Jane Doe", "jane@x.com", "Consultation", "Hi"))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, v.get("/contact").Body.String(), "Slow down!")
}

func TestLocalPath(t *testing.T) {
	assert.Equal(t, "/about", localPath("/about", "/"))
	assert.Equal(t, "/contact", localPath("http://localhost:8080/contact?x=1", "/"))
	assert.Equal(t, "/", localPath("//evil.example.com", "/"))
	assert.Equal(t, "/", localPath("", "/"))
	assert.Equal(t, "/", localPath("javascript:alert(1)", "/"))
}
