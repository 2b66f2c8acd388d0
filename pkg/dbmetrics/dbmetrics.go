// Package dbmetrics периодически экспортирует статистику connection pool
// базы данных в Prometheus.
package dbmetrics

import (
	"database/sql"
	"time"

	"github.com/medpoint/MP-SchedulingService/pkg/metrics"
)

const defaultInterval = 10 * time.Second

// CollectPoolStats запускает горутину, которая раз в interval снимает
// db.Stats() и обновляет соответствующие gauge-метрики. Остановка через
// закрытие stopCh
func CollectPoolStats(db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}) {
	CollectPoolStatsWithInterval(db, m, defaultInterval, stopCh)
}

// CollectPoolStatsWithInterval аналог CollectPoolStats с настраиваемым интервалом
func CollectPoolStatsWithInterval(db *sql.DB, m *metrics.Metrics, interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.DBOpenConnections.Set(float64(stats.OpenConnections))
				m.DBInUseConnections.Set(float64(stats.InUse))
				m.DBIdleConnections.Set(float64(stats.Idle))
				m.DBWaitDurationSeconds.Set(stats.WaitDuration.Seconds())
			case <-stopCh:
				return
			}
		}
	}()
}
