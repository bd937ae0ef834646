package testingh

import (
	"os"
	"path/filepath"
)

const (
	IndexHTML  = "<!DOCTYPE html>\n<html><head><title>dev</title></head><body>hello</body></html>\n"
	NestedHTML = "<html><body>nested</body></html>\n"
	AppJS      = "console.log('dev');\n"
	DataJSON   = `{"name":"dev-server"}`
	NotesTXT   = "plain notes\n"
	SecretTXT  = "top secret, outside of the document root\n"
	PercentTXT = "a file with a percent sign in its name\n"
	DotEnv     = "DEVSERVER_SENTRY_DSN=https://key@sentry.example/1\n"
)

// DocRootSuite serves a document root laid out as:
//
//	<base>/secret.txt
//	<base>/www/index.html
//	<base>/www/app.js
//	<base>/www/data.json
//	<base>/www/sub/notes.txt
//	<base>/www/nested/index.html
//	<base>/www/a%b.txt
//	<base>/www/50%/index.html
//	<base>/www/.env
type DocRootSuite struct {
	ContextSuite

	prefix string
	base   string

	// Root is the absolute path of the document root.
	Root string
}

func NewDocRootSuite(prefix string) DocRootSuite {
	return DocRootSuite{prefix: prefix}
}

func (ds *DocRootSuite) SetupSuite() {
	ds.ContextSuite.SetupSuite()

	base, err := os.MkdirTemp("", ds.prefix)
	ds.Require().NoError(err)
	ds.base = base
	ds.Root = filepath.Join(base, "www")

	for name, content := range map[string]string{
		filepath.Join(base, "secret.txt"):              SecretTXT,
		filepath.Join(ds.Root, "index.html"):           IndexHTML,
		filepath.Join(ds.Root, "app.js"):               AppJS,
		filepath.Join(ds.Root, "data.json"):            DataJSON,
		filepath.Join(ds.Root, "sub", "notes.txt"):     NotesTXT,
		filepath.Join(ds.Root, "nested", "index.html"): NestedHTML,
		filepath.Join(ds.Root, "a%b.txt"):              PercentTXT,
		filepath.Join(ds.Root, "50%", "index.html"):    NestedHTML,
		filepath.Join(ds.Root, ".env"):                 DotEnv,
	} {
		ds.Require().NoError(os.MkdirAll(filepath.Dir(name), 0o755))
		ds.Require().NoError(os.WriteFile(name, []byte(content), 0o644))
	}
}

func (ds *DocRootSuite) TearDownSuite() {
	if ds.base != "" {
		ds.NoError(os.RemoveAll(ds.base))
	}
	ds.ContextSuite.TearDownSuite()
}
