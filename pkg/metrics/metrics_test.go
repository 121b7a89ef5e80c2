package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/distrinaranjos/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	t.Helper()
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestOrderCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeSubmitted := testutil.ToFloat64(metrics.OrdersSubmitted.WithLabelValues("http"))
	beforeFailed := testutil.ToFloat64(metrics.OrdersFailed.WithLabelValues("http"))

	metrics.OrdersSubmitted.WithLabelValues("http").Inc()
	metrics.OrdersFailed.WithLabelValues("http").Inc()

	if got := testutil.ToFloat64(metrics.OrdersSubmitted.WithLabelValues("http")); got != beforeSubmitted+1 {
		t.Fatalf("OrdersSubmitted: got=%v want=%v", got, beforeSubmitted+1)
	}
	if got := testutil.ToFloat64(metrics.OrdersFailed.WithLabelValues("http")); got != beforeFailed+1 {
		t.Fatalf("OrdersFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestSinkFailures_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	ledgerBefore := testutil.ToFloat64(metrics.SinkFailures.WithLabelValues("ledger"))
	notifierBefore := testutil.ToFloat64(metrics.SinkFailures.WithLabelValues("notifier"))

	metrics.SinkFailures.WithLabelValues("ledger").Inc()
	metrics.SinkFailures.WithLabelValues("ledger").Inc()

	if got := testutil.ToFloat64(metrics.SinkFailures.WithLabelValues("ledger")); got != ledgerBefore+2 {
		t.Fatalf("SinkFailures(ledger): got=%v want=%v", got, ledgerBefore+2)
	}
	if got := testutil.ToFloat64(metrics.SinkFailures.WithLabelValues("notifier")); got != notifierBefore {
		t.Fatalf("SinkFailures(notifier): got=%v want=%v", got, notifierBefore)
	}
}

func TestCacheSize_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.CacheSize)

	metrics.CacheSize.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur+5 {
		t.Fatalf("CacheSize after +5: got=%v want=%v", got, cur+5)
	}

	metrics.CacheSize.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur {
		t.Fatalf("CacheSize restore: got=%v want=%v", got, cur)
	}
}
