package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/wanderbot/trip-cli/internal/trip"
)

type entry struct {
	Key       string             `json:"key"`
	Response  *trip.PlanResponse `json:"response"`
	CreatedAt time.Time          `json:"createdAt"`
}

// PlanCache stores generated plan responses on disk so repeated requests
// for the same trip render instantly. Files instead of a database to keep
// local installs dependency-free.
type PlanCache struct {
	dir string
	mu  sync.RWMutex
}

func New() (*PlanCache, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".cache", "wanderbot", "trip")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &PlanCache{dir: dir}, nil
}

func (c *PlanCache) Get(key string, ttl time.Duration) (*trip.PlanResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, false
	}
	if e.Response == nil || time.Since(e.CreatedAt) > ttl {
		return nil, false
	}
	return e.Response, true
}

func (c *PlanCache) Put(key string, resp *trip.PlanResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := json.Marshal(entry{
		Key:       key,
		Response:  resp,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return os.WriteFile(c.path(key), raw, 0o644)
}

func (c *PlanCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		_ = os.Remove(filepath.Join(c.dir, e.Name()))
	}
	return nil
}

func (c *PlanCache) path(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:])+".json")
}

// RequestKey derives a stable cache key from the fields that shape a plan.
func RequestKey(req trip.PlanRequest) string {
	h := sha256.New()
	for _, p := range []string{
		req.Origin,
		req.Destination,
		req.TravelType,
		req.HotelPreference,
		strconv.Itoa(req.NumDays),
		strconv.Itoa(req.NumPeople),
		strconv.Itoa(req.Budget),
	} {
		h.Write([]byte(p))
		h.Write([]byte("|"))
	}
	return hex.EncodeToString(h.Sum(nil))
}
