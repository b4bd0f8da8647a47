package model

// Member represents a team member
type Member struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Shift represents an assigned shift covering a closed date interval.
// Single-day shifts have StartDate == EndDate. Dates arrive from the
// backend either as plain dates or as ISO timestamps with a time part.
type Shift struct {
	ID          int    `json:"id"`
	MemberID    int    `json:"member_id"`
	MemberName  string `json:"member_name,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsLongShift bool   `json:"is_long_shift"`
}

// LeaveDay represents a single day of leave for one member
type LeaveDay struct {
	ID         int    `json:"id"`
	MemberID   int    `json:"member_id"`
	MemberName string `json:"member_name,omitempty"`
	LeaveDate  string `json:"leave_date"`
}

// Stat is a server-side aggregate over one member's shifts
type Stat struct {
	MemberID       int    `json:"member_id"`
	MemberName     string `json:"member_name"`
	TotalDays      int    `json:"total_days"`
	LongShiftCount int    `json:"long_shift_count"`
}

// Holidays maps a YYYY-MM-DD date key to the holiday name
type Holidays map[string]string

// User is the authenticated account returned by login/register
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// MemberSet indexes members by id for reference checks
func MemberSet(members []Member) map[int]Member {
	set := make(map[int]Member, len(members))
	for _, m := range members {
		set[m.ID] = m
	}
	return set
}
