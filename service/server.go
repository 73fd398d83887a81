/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package service

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sabouaram/httptester/registry"
	"github.com/sabouaram/httptester/report"
	"github.com/sabouaram/httptester/runner"
)

var (
	testsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "httptester_tests_total",
		Help: "Total test cases executed through the service surface.",
	})
	testsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "httptester_tests_failed_total",
		Help: "Total test cases executed through the service surface that failed.",
	})
)

// RunRequest names what a POST /run call should execute: exactly one of
// TestID, or Suite (optionally narrowed by Batch).
type RunRequest struct {
	Host   string `json:"host" binding:"required"`
	Port   string `json:"port" binding:"required"`
	TestID string `json:"test_id"`
	Suite  string `json:"suite"`
	Batch  *int   `json:"batch"`
}

// Server wraps a gin.Engine exposing POST /run and GET /metrics. Its
// own auth and orchestration are out of scope: a caller reaches it
// directly or sits it behind whatever reverse proxy they already run.
type Server struct {
	engine *gin.Engine
}

// NewServer builds a Server. fixturesFor resolves a suite name to its
// fixture directory and default User-Agent, the same function a
// runner.Runner is built with on the CLI side.
func NewServer(fixturesFor func(suite string) (string, string)) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{engine: engine}
	engine.POST("/run", s.handleRun(fixturesFor))
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s
}

// Engine exposes the underlying gin.Engine, e.g. for http.ListenAndServe.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) handleRun(fixturesFor func(suite string) (string, string)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RunRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cases, err := resolve(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		r := runner.New(req.Host, req.Port, fixturesFor)

		c.Header("Content-Type", "application/x-ndjson")
		c.Status(http.StatusOK)
		c.Writer.Flush()

		results := make(chan *report.Result)
		go func() {
			defer close(results)
			for _, tc := range cases {
				res, rerr := r.RunSingle(tc.ID)
				if rerr != nil {
					continue
				}
				testsTotal.Inc()
				if !res.Passed() {
					testsFailedTotal.Inc()
				}
				results <- res
			}
		}()

		_ = Stream(c.Writer, results)
	}
}

func resolve(req RunRequest) ([]registry.TestCase, error) {
	switch {
	case req.TestID != "":
		tc, ok := registry.Find(req.TestID)
		if !ok {
			return nil, errUnknownTestID(req.TestID)
		}
		return []registry.TestCase{tc}, nil
	case req.Suite != "" && req.Batch != nil:
		return registry.Batch(req.Suite, *req.Batch), nil
	case req.Suite != "":
		return registry.Suite(req.Suite), nil
	default:
		return nil, errMissingSelector{}
	}
}

type errMissingSelector struct{}

func (errMissingSelector) Error() string {
	return "request must name a test_id or a suite"
}

type errUnknownTestID string

func (e errUnknownTestID) Error() string {
	return "unknown test id: " + string(e)
}
