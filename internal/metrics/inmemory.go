package metrics

import (
	"sync/atomic"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/model"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered    uint64 `json:"users_registered"`
	LoginSuccesses     uint64 `json:"login_successes"`
	LoginFailures      uint64 `json:"login_failures"`
	SessionsRevoked    uint64 `json:"sessions_revoked"`
	SessionCacheHits   uint64 `json:"session_cache_hits"`
	SessionCacheMisses uint64 `json:"session_cache_misses"`
	IncomeRecorded     uint64 `json:"income_recorded"`
	ExpensesRecorded   uint64 `json:"expenses_recorded"`
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersRegistered    uint64
	loginSuccesses     uint64
	loginFailures      uint64
	sessionsRevoked    uint64
	sessionCacheHits   uint64
	sessionCacheMisses uint64
	incomeRecorded     uint64
	expensesRecorded   uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:    atomic.LoadUint64(&m.usersRegistered),
		LoginSuccesses:     atomic.LoadUint64(&m.loginSuccesses),
		LoginFailures:      atomic.LoadUint64(&m.loginFailures),
		SessionsRevoked:    atomic.LoadUint64(&m.sessionsRevoked),
		SessionCacheHits:   atomic.LoadUint64(&m.sessionCacheHits),
		SessionCacheMisses: atomic.LoadUint64(&m.sessionCacheMisses),
		IncomeRecorded:     atomic.LoadUint64(&m.incomeRecorded),
		ExpensesRecorded:   atomic.LoadUint64(&m.expensesRecorded),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncLoginSuccess increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSuccess() {
	atomic.AddUint64(&m.loginSuccesses, 1)
}

// IncLoginFailure increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailure() {
	atomic.AddUint64(&m.loginFailures, 1)
}

// IncSessionRevoked increments the logout counter.
func (m *InMemoryRecorder) IncSessionRevoked() {
	atomic.AddUint64(&m.sessionsRevoked, 1)
}

// IncSessionCacheHit increments the session cache hit counter.
func (m *InMemoryRecorder) IncSessionCacheHit() {
	atomic.AddUint64(&m.sessionCacheHits, 1)
}

// IncSessionCacheMiss increments the session cache miss counter.
func (m *InMemoryRecorder) IncSessionCacheMiss() {
	atomic.AddUint64(&m.sessionCacheMisses, 1)
}

// IncTransactionRecorded increments the counter for the given type.
func (m *InMemoryRecorder) IncTransactionRecorded(transactionType string) {
	if transactionType == model.TypeIncome {
		atomic.AddUint64(&m.incomeRecorded, 1)
		return
	}
	atomic.AddUint64(&m.expensesRecorded, 1)
}
