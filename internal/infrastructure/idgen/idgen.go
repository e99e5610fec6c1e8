package idgen

import (
	"strconv"
	"sync"
	"time"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/contract"
)

// Generator produces identifiers derived from creation time: the epoch
// millisecond as a decimal string, bumped under a lock when two calls land in
// the same millisecond so ids stay unique and strictly increasing. The ids are
// digit-only, which the legacy token format depends on (its separator may not
// appear inside an id).
type Generator struct {
	mu   sync.Mutex
	last int64
}

// NewGenerator creates a new creation-time id generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// check if Generator implements the contract.IIDGenerator interface
var _ contract.IIDGenerator = (*Generator)(nil)

// NewID returns the next identifier.
func (g *Generator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now
	return strconv.FormatInt(now, 10)
}
