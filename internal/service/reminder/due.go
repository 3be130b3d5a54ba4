package reminder

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

const msPerDay = 86_400_000

// DaysUntilExpiry returns the whole days from now until end, rounded up.
// An end date 1ms away counts as one day; an end date in the past yields
// zero or a negative number.
func DaysUntilExpiry(end, now time.Time) int {
	ms := end.Sub(now).Milliseconds()
	return int(math.Ceil(float64(ms) / msPerDay))
}

// Subject builds the email subject line for a reminder.
func Subject(clientName, itemName string, daysBeforeExpiry int) string {
	tag := "Reminder"
	if daysBeforeExpiry <= 7 {
		tag = "URGENT"
	}
	return fmt.Sprintf("[%s] Renewal for %s - %s", tag, clientName, itemName)
}

// itemTypeCache loads each item type at most once per sweep.
type itemTypeCache struct {
	repo    itemTypeRepo
	mu      sync.Mutex
	entries map[int64]*itemTypeEntry
}

type itemTypeEntry struct {
	once sync.Once
	it   *domain.ItemType
	err  error
}

func newItemTypeCache(repo itemTypeRepo) *itemTypeCache {
	return &itemTypeCache{repo: repo, entries: make(map[int64]*itemTypeEntry)}
}

func (c *itemTypeCache) get(ctx context.Context, id int64) (*domain.ItemType, error) {
	c.mu.Lock()
	e, ok := c.entries[id]
	if !ok {
		e = &itemTypeEntry{}
		c.entries[id] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.it, e.err = c.repo.GetByID(ctx, id)
	})
	return e.it, e.err
}

// resolveIntervals returns the renewable's own intervals, falling back to
// the item type defaults. A missing item type resolves to no intervals.
func resolveIntervals(ctx context.Context, r domain.Renewable, types *itemTypeCache) (domain.ReminderIntervals, error) {
	if !r.ReminderIntervals.IsEmpty() {
		return r.ReminderIntervals, nil
	}

	it, err := types.get(ctx, r.TypeID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load item type %d: %w", r.TypeID, err)
	}
	return it.DefaultReminderIntervals, nil
}
