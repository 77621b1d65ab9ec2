package stockparser

// Criteria narrows which rows take part in a scan. An empty field places no
// constraint on that dimension.
type Criteria struct {
	Year  string
	Month string
}

// IsEmpty reports whether c matches every row.
func (c Criteria) IsEmpty() bool {
	return c.Year == "" && c.Month == ""
}

// Matches reports whether a row labelled year/month passes the filter.
// Labels are compared by exact string equality.
func (c Criteria) Matches(year, month string) bool {
	if c.Year != "" && year != c.Year {
		return false
	} else if c.Month != "" && month != c.Month {
		return false
	}
	return true
}
