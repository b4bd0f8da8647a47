// Package store holds the fetched collections and the view cursor, and
// notifies subscribers after every replace. Collections are replaced
// wholesale on each successful fetch; there is no partial merge.
package store

import (
	"sync"
	"time"

	"github.com/ekaraca/shiftdash/pkg/core/model"
)

// Collection names a replaceable slot in the store
type Collection string

const (
	Members   Collection = "members"
	Shifts    Collection = "shifts"
	Holidays  Collection = "holidays"
	LeaveDays Collection = "leave-days"
	Stats     Collection = "stats"

	// Cursor and Busy are not fetched collections but share the same
	// subscription mechanism.
	CursorKey Collection = "cursor"
	BusyKey   Collection = "busy"
)

// Cursor is the currently displayed month and year
type Cursor struct {
	Month time.Month
	Year  int
}

type subscriber struct {
	id int
	fn func()
}

// Store is safe for concurrent use. Subscribers registered for a collection
// are invoked synchronously after each replace to that collection, in
// registration order, with no lock held; they observe either the old or the
// new value through the getters, never a partial write.
type Store struct {
	mu        sync.Mutex
	members   []model.Member
	shifts    []model.Shift
	holidays  model.Holidays
	leaveDays []model.LeaveDay
	stats     []model.Stat
	cursor    Cursor
	busy      bool
	subs      map[Collection][]subscriber
	nextSubID int
}

// New creates a store with empty collections and the cursor set to the
// current local month.
func New() *Store {
	now := time.Now()
	return &Store{
		holidays: model.Holidays{},
		cursor:   Cursor{Month: now.Month(), Year: now.Year()},
		subs:     map[Collection][]subscriber{},
	}
}

// Subscribe registers fn to run after every replace of the named collection,
// including no-op replaces with an unchanged value. The returned function
// removes the subscription.
func (s *Store) Subscribe(c Collection, fn func()) (unsubscribe func()) {
	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[c] = append(s.subs[c], subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		list := s.subs[c]
		for i, sub := range list {
			if sub.id == id {
				s.subs[c] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(c Collection) {
	s.mu.Lock()
	list := make([]subscriber, len(s.subs[c]))
	copy(list, s.subs[c])
	s.mu.Unlock()

	for _, sub := range list {
		sub.fn()
	}
}

// ReplaceMembers swaps the member collection and notifies its subscribers
func (s *Store) ReplaceMembers(members []model.Member) {
	s.mu.Lock()
	s.members = members
	s.mu.Unlock()
	s.notify(Members)
}

// ReplaceShifts swaps the shift collection and notifies its subscribers
func (s *Store) ReplaceShifts(shifts []model.Shift) {
	s.mu.Lock()
	s.shifts = shifts
	s.mu.Unlock()
	s.notify(Shifts)
}

// ReplaceHolidays swaps the holiday map and notifies its subscribers. A nil
// map is stored as an empty one so lookups never touch a nil map.
func (s *Store) ReplaceHolidays(holidays model.Holidays) {
	if holidays == nil {
		holidays = model.Holidays{}
	}
	s.mu.Lock()
	s.holidays = holidays
	s.mu.Unlock()
	s.notify(Holidays)
}

// ReplaceLeaveDays swaps the leave-day collection and notifies its subscribers
func (s *Store) ReplaceLeaveDays(leaveDays []model.LeaveDay) {
	s.mu.Lock()
	s.leaveDays = leaveDays
	s.mu.Unlock()
	s.notify(LeaveDays)
}

// ReplaceStats swaps the stats collection and notifies its subscribers
func (s *Store) ReplaceStats(stats []model.Stat) {
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
	s.notify(Stats)
}

// SetCursor moves the view cursor and notifies cursor subscribers.
// Out-of-range months roll into the adjacent year: month 0 becomes December
// of the previous year, month 13 becomes January of the next.
func (s *Store) SetCursor(month, year int) {
	normalized := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	s.mu.Lock()
	s.cursor = Cursor{Month: normalized.Month(), Year: normalized.Year()}
	s.mu.Unlock()
	s.notify(CursorKey)
}

// SetBusy flips the busy flag and notifies busy subscribers
func (s *Store) SetBusy(busy bool) {
	s.mu.Lock()
	s.busy = busy
	s.mu.Unlock()
	s.notify(BusyKey)
}

// TrySetBusy atomically sets the busy flag if it is not already set. It
// returns false when another invalidation group is in flight, which callers
// running on a timer use to skip the overlapping refresh.
func (s *Store) TrySetBusy() bool {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return false
	}
	s.busy = true
	s.mu.Unlock()
	s.notify(BusyKey)
	return true
}

func (s *Store) MembersList() []model.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members
}

func (s *Store) ShiftsList() []model.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shifts
}

func (s *Store) HolidayMap() model.Holidays {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.holidays
}

func (s *Store) LeaveDaysList() []model.LeaveDay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leaveDays
}

func (s *Store) StatsList() []model.Stat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Store) Cursor() Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

func (s *Store) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}
