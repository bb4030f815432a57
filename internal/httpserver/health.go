package httpserver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"pharma-search-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthMessage = "Pharma news search API"
	HealthVersion = "1.0.0"
	ServiceName   = "pharma-search-srv"

	probeTimeout = 2 * time.Second
)

// probe checks one dependency. Optional probes are reported but never fail readiness.
type probe struct {
	name     string
	optional bool
	check    func(ctx context.Context) error
}

type probeReport struct {
	Ready      bool              `json:"ready"`
	Components map[string]string `json:"components"`
}

// readinessProbes lists the stores a search needs. Kafka only carries analytics events.
func (srv *HTTPServer) readinessProbes() []probe {
	probes := []probe{
		{name: "postgres", check: srv.postgresDB.PingContext},
		{name: "redis", check: srv.redisClient.Ping},
		{name: "qdrant", check: srv.qdrantClient.Ping},
	}
	if srv.kafkaProducer != nil {
		probes = append(probes, probe{
			name:     "kafka",
			optional: true,
			check:    func(context.Context) error { return srv.kafkaProducer.HealthCheck() },
		})
	}
	return probes
}

// runProbes checks every dependency concurrently.
func runProbes(ctx context.Context, probes []probe) probeReport {
	report := probeReport{Ready: true, Components: make(map[string]string, len(probes))}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, p := range probes {
		wg.Add(1)
		go func(p probe) {
			defer wg.Done()
			pctx, cancel := context.WithTimeout(ctx, probeTimeout)
			defer cancel()

			status := "up"
			if err := p.check(pctx); err != nil {
				status = "down: " + err.Error()
			}

			mu.Lock()
			defer mu.Unlock()
			report.Components[p.name] = status
			if status != "up" && !p.optional {
				report.Ready = false
			}
		}(p)
	}
	wg.Wait()
	return report
}

// healthCheck - GET /health
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck - GET /ready. 503 when Postgres, Redis or Qdrant is unreachable.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	report := runProbes(c.Request.Context(), srv.readinessProbes())
	if !report.Ready {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "not ready",
			Data:      report,
		})
		return
	}
	response.OK(c, gin.H{
		"status":     "ready",
		"service":    ServiceName,
		"version":    HealthVersion,
		"components": report.Components,
	})
}

// liveCheck - GET /live
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive", "service": ServiceName})
}
