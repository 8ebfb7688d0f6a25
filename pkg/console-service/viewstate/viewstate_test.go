package viewstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Title       string
	Description string
	EmployeeId  string
	Status      string
	Name        string
	CreatedOn   time.Time
}

var itemFields = Fields[item]{
	Status:      func(i item) string { return i.Status },
	Title:       func(i item) string { return i.Title },
	Description: func(i item) string { return i.Description },
	EmployeeID:  func(i item) string { return i.EmployeeId },
	Name:        func(i item) string { return i.Name },
	CreatedAt:   func(i item) time.Time { return i.CreatedOn },
}

func day(offset int) time.Time {
	return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func sampleItems() []item {
	return []item{
		{Title: "Website revamp", Description: "landing page", EmployeeId: "EMP01", Status: "In Progress", Name: "Asha", CreatedOn: day(-1)},
		{Title: "Billing fix", Description: "invoice totals", EmployeeId: "EMP02", Status: "Completed", Name: "Ravi", CreatedOn: day(-3)},
		{Title: "Onboarding", Description: "new joiner docs", EmployeeId: "EMP01", Status: "To Do", Name: "Asha", CreatedOn: day(-10)},
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	now := day(0)
	crit := Criteria{Status: "In Progress", Search: "web", Sort: SortLatest}
	items := sampleItems()

	first := Apply(items, crit, itemFields, now)
	second := Apply(first, crit, itemFields, now)
	assert.Equal(t, first, second)
}

func TestApplyNeverMutatesInput(t *testing.T) {
	items := sampleItems()
	original := sampleItems()

	Apply(items, Criteria{Sort: SortOldest}, itemFields, day(0))
	assert.Equal(t, original, items)
}

func TestStatusSentinelKeepsEverything(t *testing.T) {
	items := sampleItems()
	out := Apply(items, Criteria{Status: StatusAll}, itemFields, day(0))
	assert.Len(t, out, len(items))
}

func TestStatusFilterIsExact(t *testing.T) {
	out := Apply(sampleItems(), Criteria{Status: "Completed"}, itemFields, day(0))
	require.Len(t, out, 1)
	assert.Equal(t, "Billing fix", out[0].Title)
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	out := Apply(sampleItems(), Criteria{Search: "INVOICE"}, itemFields, day(0))
	require.Len(t, out, 1)
	assert.Equal(t, "Billing fix", out[0].Title)

	// employee id participates in search
	out = Apply(sampleItems(), Criteria{Search: "emp01"}, itemFields, day(0))
	assert.Len(t, out, 2)
}

func TestDateLastWeekFilter(t *testing.T) {
	out := Apply(sampleItems(), Criteria{Date: DateLastWeek}, itemFields, day(0))
	assert.Len(t, out, 2)
}

func TestExactDateFilter(t *testing.T) {
	out := Apply(sampleItems(), Criteria{Date: day(-3).Format("2006-01-02")}, itemFields, day(0))
	require.Len(t, out, 1)
	assert.Equal(t, "Billing fix", out[0].Title)
}

func TestZeroTimestampNeverMatchesDateFilter(t *testing.T) {
	items := append(sampleItems(), item{Title: "No date", Status: "To Do"})
	out := Apply(items, Criteria{Date: DateLastWeek}, itemFields, day(0))
	for _, it := range out {
		assert.NotEqual(t, "No date", it.Title)
	}
}

func TestSortLatestAndOldest(t *testing.T) {
	latest := Apply(sampleItems(), Criteria{Sort: SortLatest}, itemFields, day(0))
	assert.Equal(t, "Website revamp", latest[0].Title)
	assert.Equal(t, "Onboarding", latest[2].Title)

	oldest := Apply(sampleItems(), Criteria{Sort: SortOldest}, itemFields, day(0))
	assert.Equal(t, "Onboarding", oldest[0].Title)
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	same := day(-2)
	items := []item{
		{Title: "first", Status: "To Do", CreatedOn: same},
		{Title: "second", Status: "To Do", CreatedOn: same},
		{Title: "third", Status: "To Do", CreatedOn: same},
	}
	out := Apply(items, Criteria{Sort: SortStatus}, itemFields, day(0))
	require.Len(t, out, 3)
	assert.Equal(t, "first", out[0].Title)
	assert.Equal(t, "second", out[1].Title)
	assert.Equal(t, "third", out[2].Title)
}

func TestGroupByNameAllBucketsEveryone(t *testing.T) {
	groups := GroupByName(sampleItems(), NameAll, itemFields.Name)
	require.Len(t, groups, 2)
	assert.Len(t, groups["Asha"], 2)
	assert.Len(t, groups["Ravi"], 1)
}

func TestGroupByNameSingleGroup(t *testing.T) {
	groups := GroupByName(sampleItems(), "Ravi", itemFields.Name)
	require.Len(t, groups, 1)
	assert.Len(t, groups["Ravi"], 1)
}
