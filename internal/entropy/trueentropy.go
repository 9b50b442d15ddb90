package entropy

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// True is a Source drawing from random.org with a local pool, falling back
// to crypto/rand when the API is unavailable. It satisfies Source so a run
// can be switched to true randomness without touching the pipeline.
type True struct {
	apiKey string
	client *http.Client

	mu   sync.Mutex
	pool []float64
}

// NewTrue creates a random.org-backed source. Returns nil if apiKey is
// empty; a nil *True still works and degrades to crypto/rand.
func NewTrue(apiKey string) *True {
	if apiKey == "" {
		return nil
	}
	return &True{
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Float64 returns a random float64 in [0, 1). Uses the pool, refilling from
// random.org when low.
func (t *True) Float64() float64 {
	if t == nil {
		return cryptoRandFloat()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.pool) < 10 {
		t.refill()
	}

	if len(t.pool) == 0 {
		return cryptoRandFloat()
	}

	val := t.pool[0]
	t.pool = t.pool[1:]
	return val
}

// Intn returns a uniform int in [0, n).
func (t *True) Intn(n int) int {
	if n <= 0 {
		panic("entropy: Intn with non-positive n")
	}
	return int(t.Float64() * float64(n))
}

// Coin returns a fair boolean.
func (t *True) Coin() bool {
	return t.Float64() < 0.5
}

func (t *True) refill() {
	req := map[string]any{
		"jsonrpc": "2.0",
		"method":  "generateDecimalFractions",
		"params": map[string]any{
			"apiKey":        t.apiKey,
			"n":             100,
			"decimalPlaces": 6,
		},
		"id": 1,
	}

	body, err := json.Marshal(req)
	if err != nil {
		slog.Debug("random.org marshal failed", "error", err)
		return
	}

	resp, err := t.client.Post("https://api.random.org/json-rpc/4/invoke", "application/json", bytes.NewReader(body))
	if err != nil {
		slog.Debug("random.org fetch failed", "error", err)
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Debug("random.org read failed", "error", err)
		return
	}

	var result struct {
		Result struct {
			Random struct {
				Data []float64 `json:"data"`
			} `json:"random"`
		} `json:"result"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		slog.Debug("random.org parse failed", "error", err)
		return
	}

	if result.Error != nil {
		slog.Debug("random.org API error", "error", result.Error.Message)
		return
	}

	t.pool = append(t.pool, result.Result.Random.Data...)
	slog.Debug("random.org pool refilled", "count", len(result.Result.Random.Data))
}

// cryptoRandFloat generates a random float64 using crypto/rand as fallback.
func cryptoRandFloat() float64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		// This should never happen but return 0.5 as a safe default.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}
