//go:build ruleguard

package gorules

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

func bareHTTPServer(m dsl.Matcher) {
	m.Match(
		`http.ListenAndServe($*_)`,
		`http.ListenAndServeTLS($*_)`,
		`http.Serve($*_)`,
	).
		Where(!m.File().Name.Matches(`_test\.go$`)).
		Report("serve through internal/server: a bare net/http server misses the CORS headers")
}

func stdLogInInternal(m dsl.Matcher) {
	m.Match(`log.$f($*_)`).
		Where(
			m.File().PkgPath.Matches(`internal/`) &&
				m["f"].Text.Matches(`^(Print|Fatal|Panic)`),
		).
		Report("use zap.L().Named(...) instead of the standard logger")
}

func corsHeaderOutsideMiddleware(m dsl.Matcher) {
	m.Match(`$h.Set($k, $_)`, `$h.Add($k, $_)`).
		Where(
			m["k"].Text.Matches(`Access-Control-Allow-|HeaderAccessControlAllow`) &&
				!m.File().PkgPath.Matches(`internal/middlewares`),
		).
		Report("CORS headers are owned by internal/middlewares")
}
