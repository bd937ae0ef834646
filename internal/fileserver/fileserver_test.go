package fileserver_test

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/zestagio/dev-server/internal/fileserver"
	fileservermocks "github.com/zestagio/dev-server/internal/fileserver/mocks"
	"github.com/zestagio/dev-server/internal/testingh"
)

type FileServerSuite struct {
	testingh.DocRootSuite
	e *echo.Echo
}

func TestFileServerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, &FileServerSuite{DocRootSuite: testingh.NewDocRootSuite("TestFileServerSuite")})
}

func (s *FileServerSuite) SetupSuite() {
	s.DocRootSuite.SetupSuite()

	fsrv, err := fileserver.New(fileserver.NewOptions(http.Dir(s.Root)))
	s.Require().NoError(err)

	s.e = echo.New()
	fsrv.Register(s.e)
}

func (s *FileServerSuite) TestFile() {
	cases := []struct {
		target         string
		expBody        string
		expContentType string
	}{
		{target: "/index.html", expBody: testingh.IndexHTML, expContentType: "text/html"},
		{target: "/app.js", expBody: testingh.AppJS, expContentType: "javascript"},
		{target: "/data.json", expBody: testingh.DataJSON, expContentType: "application/json"},
		{target: "/sub/notes.txt", expBody: testingh.NotesTXT, expContentType: "text/plain"},
		{target: "/a%25b.txt", expBody: testingh.PercentTXT, expContentType: "text/plain"},
		{target: "/50%25/", expBody: testingh.NestedHTML, expContentType: "text/html"},
	}

	for _, tt := range cases {
		s.Run(tt.target, func() {
			resp := s.do(http.MethodGet, tt.target)

			s.Equal(http.StatusOK, resp.Code)
			s.Equal(tt.expBody, resp.Body.String())
			s.Contains(resp.Header().Get(echo.HeaderContentType), tt.expContentType)
		})
	}
}

func (s *FileServerSuite) TestHead() {
	resp := s.do(http.MethodHead, "/index.html")

	s.Equal(http.StatusOK, resp.Code)
	s.Empty(resp.Body.String())
	s.Contains(resp.Header().Get(echo.HeaderContentType), "text/html")
}

func (s *FileServerSuite) TestDirectoryIndex() {
	resp := s.do(http.MethodGet, "/")
	s.Equal(http.StatusOK, resp.Code)
	s.Equal(testingh.IndexHTML, resp.Body.String())

	resp = s.do(http.MethodGet, "/nested/")
	s.Equal(http.StatusOK, resp.Code)
	s.Equal(testingh.NestedHTML, resp.Body.String())
}

func (s *FileServerSuite) TestDirectoryListing() {
	resp := s.do(http.MethodGet, "/sub/")

	s.Equal(http.StatusOK, resp.Code)
	s.Contains(resp.Header().Get(echo.HeaderContentType), "text/html")
	s.Contains(resp.Body.String(), "notes.txt")
}

func (s *FileServerSuite) TestDirectoryRedirect() {
	resp := s.do(http.MethodGet, "/sub?sort=name")

	s.Equal(http.StatusMovedPermanently, resp.Code)
	s.Equal("/sub/?sort=name", resp.Header().Get(echo.HeaderLocation))
}

func (s *FileServerSuite) TestPercentDirectoryRedirect() {
	resp := s.do(http.MethodGet, "/50%25")

	s.Equal(http.StatusMovedPermanently, resp.Code)
	s.Equal("/50%25/", resp.Header().Get(echo.HeaderLocation))
}

func (s *FileServerSuite) TestDecodesPathOnce() {
	for _, target := range []string{"/a%2525b.txt", "/sub%252Fnotes.txt"} {
		s.Run(target, func() {
			s.Equal(http.StatusNotFound, s.do(http.MethodGet, target).Code)
		})
	}
}

func (s *FileServerSuite) TestDotfilesHidden() {
	for _, target := range []string{"/.env", "/%2eenv", "/sub/../.env"} {
		s.Run(target, func() {
			resp := s.do(http.MethodGet, target)

			s.Equal(http.StatusNotFound, resp.Code)
			s.NotContains(resp.Body.String(), testingh.DotEnv)
		})
	}

	resp := s.do(http.MethodGet, "/")
	s.Equal(testingh.IndexHTML, resp.Body.String())
}

func (s *FileServerSuite) TestDotfilesNotListed() {
	dir := s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, ".hidden"), []byte("hidden"), 0o644))
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "shown.txt"), []byte("shown"), 0o644))

	fsrv, err := fileserver.New(fileserver.NewOptions(http.Dir(dir)))
	s.Require().NoError(err)

	e := echo.New()
	fsrv.Register(e)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusOK, resp.Code)
	s.Contains(resp.Body.String(), "shown.txt")
	s.NotContains(resp.Body.String(), ".hidden")
}

func (s *FileServerSuite) TestDotfilesEnabled() {
	fsrv, err := fileserver.New(fileserver.NewOptions(http.Dir(s.Root), fileserver.WithDotfiles(true)))
	s.Require().NoError(err)

	e := echo.New()
	fsrv.Register(e)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/.env", nil))

	s.Equal(http.StatusOK, resp.Code)
	s.Equal(testingh.DotEnv, resp.Body.String())
}

func (s *FileServerSuite) TestNotFound() {
	for _, target := range []string{
		"/does-not-exist.xyz",
		"/sub/missing/",
		"/index.html/extra",
		"/index.html/",
		"/sub/notes.txt/",
	} {
		s.Run(target, func() {
			s.Equal(http.StatusNotFound, s.do(http.MethodGet, target).Code)
		})
	}
}

func (s *FileServerSuite) TestStaysInsideRoot() {
	for _, target := range []string{"/../secret.txt", "/sub/../../secret.txt", "/%2e%2e/secret.txt"} {
		s.Run(target, func() {
			resp := s.do(http.MethodGet, target)
			s.NotContains(resp.Body.String(), testingh.SecretTXT)
		})
	}
}

func (s *FileServerSuite) do(method, target string) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	s.e.ServeHTTP(resp, httptest.NewRequest(method, target, nil))
	return resp
}

func TestFileServer_OpenErrors(t *testing.T) {
	cases := []struct {
		name      string
		openErr   error
		expStatus int
	}{
		{name: "not exist", openErr: fs.ErrNotExist, expStatus: http.StatusNotFound},
		{name: "permission", openErr: &fs.PathError{Op: "open", Path: "secret.txt", Err: fs.ErrPermission}, expStatus: http.StatusInternalServerError},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fsMock := fileservermocks.NewMockFileSystem(ctrl)
			fsMock.EXPECT().Open(gomock.Any()).Return(nil, tt.openErr).MinTimes(1)

			fsrv, err := fileserver.New(fileserver.NewOptions(fsMock, fileserver.WithBrowse(false)))
			require.NoError(t, err)

			e := echo.New()
			var handled error
			e.HTTPErrorHandler = func(err error, c echo.Context) {
				handled = err
				e.DefaultHTTPErrorHandler(err, c)
			}
			fsrv.Register(e)

			resp := httptest.NewRecorder()
			e.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/secret.txt", nil))

			assert.Equal(t, tt.expStatus, resp.Code)
			if tt.expStatus == http.StatusInternalServerError {
				assert.ErrorIs(t, handled, fs.ErrPermission)
			}
		})
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := fileserver.New(fileserver.NewOptions(nil))
	assert.Error(t, err)
}
