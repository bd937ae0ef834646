//go:build e2e

package e2e_test

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = ginkgo.Describe("Static Server Smoke", ginkgo.Ordered, func() {
	var (
		port    int
		session *gexec.Session
		client  *resty.Client
	)

	ginkgo.BeforeAll(func() {
		port = freePort()
		session = startServer(port)
		client = newHTTPClient(port)
	})

	ginkgo.AfterAll(func() {
		if session.ExitCode() == -1 {
			session.Kill()
			gomega.Eventually(session).Should(gexec.Exit())
		}
	})

	ginkgo.It("serves files from the executable directory", func() {
		resp, err := client.R().Get("/index.html")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusOK))
		gomega.Expect(resp.String()).To(gomega.Equal(indexHTML))
		gomega.Expect(resp.Header().Get("Content-Type")).To(gomega.HavePrefix("text/html"))
		expectCORSHeaders(resp)
	})

	ginkgo.It("serves index.html for the root", func() {
		resp, err := client.R().Get("/")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusOK))
		gomega.Expect(resp.String()).To(gomega.Equal(indexHTML))
	})

	ginkgo.It("301 moved permanently, directory without slash", func() {
		resp, err := client.R().Get("/sub")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusMovedPermanently))
		gomega.Expect(resp.Header().Get("Location")).To(gomega.Equal("/sub/"))
		expectCORSHeaders(resp)
	})

	ginkgo.It("404 not found", func() {
		resp, err := client.R().Get("/does-not-exist.xyz")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusNotFound))
		expectCORSHeaders(resp)
	})

	ginkgo.It("403 forbidden, path traversal", func() {
		resp, err := client.R().Get("/%2e%2e/%2e%2e/etc/passwd")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusForbidden))
		expectCORSHeaders(resp)
	})

	ginkgo.It("404 not found, dotfile next to the binary", func() {
		resp, err := client.R().Get("/.env")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusNotFound))
		gomega.Expect(resp.String()).NotTo(gomega.ContainSubstring("sentry.example"))
		expectCORSHeaders(resp)
	})

	ginkgo.It("204 no content, preflight", func() {
		resp, err := client.R().
			SetHeader("Origin", "http://example.com").
			SetHeader("Access-Control-Request-Method", http.MethodPost).
			Options("/app.js")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusNoContent))
		gomega.Expect(resp.Body()).To(gomega.BeEmpty())
		expectCORSHeaders(resp)
	})

	ginkgo.It("501 not implemented, POST", func() {
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody("{}").
			Post("/app.js")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusNotImplemented))
		expectCORSHeaders(resp)
	})

	ginkgo.It("second instance fails to bind the same port", func() {
		second := startProcess(port)

		gomega.Eventually(second, 10*time.Second).Should(gexec.Exit())
		gomega.Expect(second.ExitCode()).NotTo(gomega.Equal(0))
		gomega.Expect(second.Err).To(gbytes.Say("bind"))

		// The first instance keeps serving.
		resp, err := client.R().Get("/app.js")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.String()).To(gomega.Equal(appJS))
	})

	ginkgo.It("stops on interrupt with exit code 0", func() {
		session.Interrupt()

		gomega.Eventually(session, 10*time.Second).Should(gexec.Exit(0))
		gomega.Expect(session.Out).To(gbytes.Say("Server stopped"))
	})
})
