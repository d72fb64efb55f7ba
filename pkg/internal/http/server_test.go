package http_test

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"git.solsynth.dev/hypernet/blogly/pkg/internal/database"
	"git.solsynth.dev/hypernet/blogly/pkg/internal/http"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	t   *testing.T
	db  *gorm.DB
	app *fiber.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.NewGorm(database.DialectSqlite, dsn, false)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.RunMigration(db))

	return &testServer{t: t, db: db, app: http.NewServer(db).Handler()}
}

type response struct {
	Status   int
	Location string
	Body     string
	Cookies  []string
}

func (s *testServer) do(method, target string, form url.Values, cookies ...string) response {
	s.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	return s.send(req, cookies...)
}

func (s *testServer) send(req *nethttp.Request, cookies ...string) response {
	s.t.Helper()

	if len(cookies) > 0 {
		req.Header.Set(fiber.HeaderCookie, strings.Join(cookies, "; "))
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)

	var received []string
	for _, item := range resp.Cookies() {
		received = append(received, item.Name+"="+item.Value)
	}

	return response{
		Status:   resp.StatusCode,
		Location: resp.Header.Get(fiber.HeaderLocation),
		Body:     string(raw),
		Cookies:  received,
	}
}

func (s *testServer) get(target string, cookies ...string) response {
	return s.do(fiber.MethodGet, target, nil, cookies...)
}

func (s *testServer) post(target string, form url.Values) response {
	if form == nil {
		form = url.Values{}
	}
	return s.do(fiber.MethodPost, target, form)
}

// postMultipart submits form as multipart/form-data, the way browsers send
// forms with enctype="multipart/form-data".
func (s *testServer) postMultipart(target string, form url.Values) response {
	s.t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, values := range form {
		for _, value := range values {
			require.NoError(s.t, writer.WriteField(key, value))
		}
	}
	require.NoError(s.t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, target, &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	return s.send(req)
}
