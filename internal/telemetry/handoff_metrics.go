package telemetry

import (
	"sync/atomic"
)

// HandoffMetrics fasst Messwerte zu Queue-Übergaben zusammen.
type HandoffMetrics struct {
	pushes        atomic.Uint64
	rejected      atomic.Uint64
	pops          atomic.Uint64
	misses        atomic.Uint64
	growthNotices atomic.Uint64
}

// HandoffSnapshot ist eine konsistenzfreie Momentaufnahme der Zähler.
type HandoffSnapshot struct {
	Pushes        uint64
	Rejected      uint64
	Pops          uint64
	Misses        uint64
	GrowthNotices uint64
}

var defaultHandoffMetrics HandoffMetrics

// DefaultHandoffMetrics liefert die globalen Metriken.
func DefaultHandoffMetrics() *HandoffMetrics {
	return &defaultHandoffMetrics
}

// CountPush zählt eine angenommene Übergabe.
func (m *HandoffMetrics) CountPush() {
	m.pushes.Add(1)
}

// CountRejected zählt eine wegen Shutdown abgelehnte Übergabe.
func (m *HandoffMetrics) CountRejected() {
	m.rejected.Add(1)
}

// CountPop zählt eine erfolgreiche Entnahme.
func (m *HandoffMetrics) CountPop() {
	m.pops.Add(1)
}

// CountPops zählt n Entnahmen auf einmal, etwa für einen Bulk-Drain.
func (m *HandoffMetrics) CountPops(n uint64) {
	m.pops.Add(n)
}

// CountMiss zählt eine Entnahme ohne Ergebnis.
func (m *HandoffMetrics) CountMiss() {
	m.misses.Add(1)
}

// CountGrowthNotice zählt eine "queue growing"-Meldung.
func (m *HandoffMetrics) CountGrowthNotice() {
	m.growthNotices.Add(1)
}

// Snapshot gibt die gesammelten Werte zurück.
func (m *HandoffMetrics) Snapshot() HandoffSnapshot {
	return HandoffSnapshot{
		Pushes:        m.pushes.Load(),
		Rejected:      m.rejected.Load(),
		Pops:          m.pops.Load(),
		Misses:        m.misses.Load(),
		GrowthNotices: m.growthNotices.Load(),
	}
}

// Reset setzt alle Zähler zurück.
func (m *HandoffMetrics) Reset() {
	m.pushes.Store(0)
	m.rejected.Store(0)
	m.pops.Store(0)
	m.misses.Store(0)
	m.growthNotices.Store(0)
}
