package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

// RequestRecord captures one LLM round trip for the session usage log.
type RequestRecord struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	Success      bool
	InputTokens  int
	OutputTokens int
	RequestBody  string
	ResponseBody string
	ErrorMessage string
	At           time.Time
}

// UsageLog receives a record for every LLM request.
type UsageLog interface {
	Record(ctx context.Context, rec RequestRecord)
}

// MemoryUsageLog keeps records in memory for the lifetime of the
// session. Safe for concurrent use.
type MemoryUsageLog struct {
	mu   sync.Mutex
	recs []RequestRecord
}

// NewMemoryUsageLog returns an empty in-memory usage log.
func NewMemoryUsageLog() *MemoryUsageLog {
	return &MemoryUsageLog{}
}

func (m *MemoryUsageLog) Record(_ context.Context, rec RequestRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append(m.recs, rec)
}

// Records returns a copy of everything logged so far.
func (m *MemoryUsageLog) Records() []RequestRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RequestRecord, len(m.recs))
	copy(out, m.recs)
	return out
}

// LoggingProvider is a decorator that records every LLM request in a
// usage log.
type LoggingProvider struct {
	inner Provider
	log   UsageLog
}

// WithLogging wraps a Provider with usage logging.
func WithLogging(p Provider, log UsageLog) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	rec := RequestRecord{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
		At:          start,
	}

	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
		rec.ResponseBody = string(resp.Content)
	}

	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	l.log.Record(ctx, rec)

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
