package inmemory

import "sync"

type Snapshot struct {
	TransactionTotal    uint64            `json:"transaction_total"`
	TransactionSuccess  uint64            `json:"transaction_success"`
	TransactionConflict uint64            `json:"transaction_conflict"`
	TransactionFailure  uint64            `json:"transaction_failure"`
	ByOperation         map[string]uint64 `json:"by_operation"`
}

type Recorder struct {
	mu          sync.Mutex
	success     uint64
	conflict    uint64
	failure     uint64
	byOperation map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOperation: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(operation string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byOperation[operation]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		TransactionSuccess:  r.success,
		TransactionConflict: r.conflict,
		TransactionFailure:  r.failure,
		TransactionTotal:    r.success + r.conflict + r.failure,
		ByOperation:         make(map[string]uint64, len(r.byOperation)),
	}
	for k, v := range r.byOperation {
		out.ByOperation[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
