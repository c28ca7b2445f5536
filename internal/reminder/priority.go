package reminder

// Priority is the urgency of a reminder
type Priority int

const (
	Low Priority = iota
	Medium
	High
)

// Priorities lists the choices in picker order
var Priorities = []Priority{Low, Medium, High}

// ParsePriority maps a picker label to its value. Labels match exactly;
// anything else is Medium.
func ParsePriority(s string) Priority {
	switch s {
	case "Low":
		return Low
	case "Medium":
		return Medium
	case "High":
		return High
	default:
		return Medium
	}
}

// Ordinal is the value stored with the reminder
func (p Priority) Ordinal() int {
	return int(p)
}

func (p Priority) String() string {
	switch p {
	case Low:
		return "Low"
	case High:
		return "High"
	default:
		return "Medium"
	}
}

// PriorityFromOrdinal is the inverse of Ordinal
func PriorityFromOrdinal(n int) Priority {
	switch Priority(n) {
	case Low, Medium, High:
		return Priority(n)
	default:
		return Medium
	}
}
