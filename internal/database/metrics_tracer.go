package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/metrics"
)

// MetricsTracer implements pgx.QueryTracer to collect store metrics per query.
type MetricsTracer struct{}

var _ pgx.QueryTracer = (*MetricsTracer)(nil)

type queryContextKey struct{}

type queryContext struct {
	startTime time.Time
	queryName string
}

func (t *MetricsTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	qctx := queryContext{
		startTime: time.Now(),
		queryName: extractQueryName(data.SQL),
	}
	return context.WithValue(ctx, queryContextKey{}, qctx)
}

func (t *MetricsTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	qctx, ok := ctx.Value(queryContextKey{}).(queryContext)
	if !ok {
		return
	}

	duration := time.Since(qctx.startTime).Seconds()
	metrics.StoreOpDuration.WithLabelValues(qctx.queryName).Observe(duration)

	status := "ok"
	if data.Err != nil {
		status = "error"
	}
	metrics.StoreOpsTotal.WithLabelValues(qctx.queryName, status).Inc()
}

// extractQueryName reduces SQL to its first keyword (SELECT, INSERT, ...) so
// the operation label stays low-cardinality.
func extractQueryName(sql string) string {
	if len(sql) == 0 {
		return "unknown"
	}

	for i, c := range sql {
		if c == ' ' || c == '\n' || c == '\t' {
			if i > 0 {
				return sql[:i]
			}
			break
		}
	}

	if len(sql) > 20 {
		return sql[:20]
	}
	return sql
}
