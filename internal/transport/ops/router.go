// Package ops служебный HTTP-интерфейс генератора: метрики, здоровье, счетчики.
// Данные он не отдает и к ядру отношения не имеет.
package ops

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sgerasimov/bankgen/internal/metrics"
)

func NewRouter(pool *pgxpool.Pool, collector *metrics.Collector) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/metrics", gin.WrapH(collector.Handler()))

	r.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, collector.Snapshot())
	})

	return r
}
