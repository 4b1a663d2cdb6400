package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tutorly/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	assert.NoError(t, err)
	return d
}

func TestCollectPeriods(t *testing.T) {
	p1 := models.Period{ID: "p1", Name: "Ramadan hours", Type: "reduced-hours", StartDate: "2025-03-01", EndDate: "2025-03-30"}
	p1Variant := models.Period{ID: "p1", Name: "Ramadan (copy)", Type: "other", StartDate: "2025-03-02", EndDate: "2025-03-29"}
	p2 := models.Period{ID: "p2", Name: "Spring break", Type: "vacation", StartDate: "2025-04-10", EndDate: "2025-04-20"}

	branches := []models.Branch{
		{Name: "Center", ExceptionalPeriods: []models.Period{p1}},
		{Name: "North", ExceptionalPeriods: []models.Period{p1Variant, p2}},
	}

	catalog := CollectPeriods(branches)
	assert.Len(t, catalog, 2)
	// First occurrence wins even when a later duplicate differs in fields.
	assert.Equal(t, "Ramadan hours", catalog[0].Name)
	assert.Equal(t, "p2", catalog[1].ID)
}

func TestDateInPeriod(t *testing.T) {
	p := models.Period{ID: "p1", StartDate: "2025-03-01", EndDate: "2025-03-30"}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "start date inclusive", date: mustDate(t, "2025-03-01"), want: true},
		{name: "end date inclusive", date: mustDate(t, "2025-03-30"), want: true},
		{name: "day before start", date: mustDate(t, "2025-02-28"), want: false},
		{name: "day after end", date: mustDate(t, "2025-03-31"), want: false},
		{name: "middle", date: mustDate(t, "2025-03-15"), want: true},
		{name: "time of day ignored", date: time.Date(2025, 3, 30, 23, 45, 0, 0, time.UTC), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateInPeriod(tt.date, p))
		})
	}

	t.Run("unparseable bound never matches", func(t *testing.T) {
		bad := models.Period{ID: "bad", StartDate: "March 1st", EndDate: "2025-03-30"}
		assert.False(t, DateInPeriod(mustDate(t, "2025-03-15"), bad))
	})
}

func TestDateInPeriodZoneIndependent(t *testing.T) {
	p := models.Period{ID: "p1", StartDate: "2025-03-01", EndDate: "2025-03-30"}

	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC+2", 2*60*60),
		time.FixedZone("UTC-5", -5*60*60),
	}
	for _, zone := range zones {
		t.Run(zone.String(), func(t *testing.T) {
			atMidnight := func(day string) time.Time {
				d, err := time.ParseInLocation(DateLayout, day, zone)
				assert.NoError(t, err)
				return d
			}
			// Boundaries stay inclusive whatever zone the reference carries.
			assert.True(t, DateInPeriod(atMidnight("2025-03-01"), p))
			assert.True(t, DateInPeriod(atMidnight("2025-03-30"), p))
			assert.False(t, DateInPeriod(atMidnight("2025-02-28"), p))
			assert.False(t, DateInPeriod(atMidnight("2025-03-31"), p))

			evening := time.Date(2025, 3, 30, 23, 45, 0, 0, zone)
			assert.True(t, DateInPeriod(evening, p))
		})
	}
}

func TestResolveActivePeriod(t *testing.T) {
	first := models.Period{ID: "first", StartDate: "2025-03-01", EndDate: "2025-03-20"}
	second := models.Period{ID: "second", StartDate: "2025-03-10", EndDate: "2025-03-30"}
	branch := models.Branch{Name: "Center", ExceptionalPeriods: []models.Period{first, second}}

	t.Run("no period active", func(t *testing.T) {
		assert.Nil(t, ResolveActivePeriod(branch, mustDate(t, "2025-05-01")))
	})
	t.Run("single match", func(t *testing.T) {
		got := ResolveActivePeriod(branch, mustDate(t, "2025-03-25"))
		assert.NotNil(t, got)
		assert.Equal(t, "second", got.ID)
	})
	t.Run("overlap resolves to earliest declared", func(t *testing.T) {
		got := ResolveActivePeriod(branch, mustDate(t, "2025-03-15"))
		assert.NotNil(t, got)
		assert.Equal(t, "first", got.ID)
	})
}

func TestDetectPeriodConflicts(t *testing.T) {
	base := models.Period{ID: "base", StartDate: "2025-03-10", EndDate: "2025-03-20"}

	tests := []struct {
		name      string
		candidate models.Period
		conflicts bool
	}{
		{name: "starts inside", candidate: models.Period{ID: "a", StartDate: "2025-03-15", EndDate: "2025-04-01"}, conflicts: true},
		{name: "ends inside", candidate: models.Period{ID: "b", StartDate: "2025-03-01", EndDate: "2025-03-12"}, conflicts: true},
		{name: "fully contains", candidate: models.Period{ID: "c", StartDate: "2025-03-01", EndDate: "2025-04-01"}, conflicts: true},
		{name: "fully contained", candidate: models.Period{ID: "d", StartDate: "2025-03-12", EndDate: "2025-03-18"}, conflicts: true},
		{name: "touching start boundary", candidate: models.Period{ID: "e", StartDate: "2025-03-01", EndDate: "2025-03-10"}, conflicts: true},
		{name: "before", candidate: models.Period{ID: "f", StartDate: "2025-02-01", EndDate: "2025-02-28"}, conflicts: false},
		{name: "after", candidate: models.Period{ID: "g", StartDate: "2025-04-01", EndDate: "2025-04-30"}, conflicts: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectPeriodConflicts(tt.candidate, []models.Period{base})
			reverse := DetectPeriodConflicts(base, []models.Period{tt.candidate})
			if tt.conflicts {
				assert.Len(t, got, 1)
				assert.Len(t, reverse, 1, "conflict detection must be symmetric")
			} else {
				assert.Empty(t, got)
				assert.Empty(t, reverse, "conflict detection must be symmetric")
			}
		})
	}
}

func TestValidatePeriodDraft(t *testing.T) {
	t.Run("valid draft", func(t *testing.T) {
		v := ValidatePeriodDraft(models.PeriodDraft{
			Name: "Exams", Type: "exams", StartDate: "2025-06-01", EndDate: "2025-06-15",
		})
		assert.True(t, v.Valid)
		assert.Empty(t, v.Errors)
	})

	t.Run("every violation is reported", func(t *testing.T) {
		v := ValidatePeriodDraft(models.PeriodDraft{})
		assert.False(t, v.Valid)
		assert.Len(t, v.Errors, 4)
	})

	t.Run("end before start", func(t *testing.T) {
		v := ValidatePeriodDraft(models.PeriodDraft{
			Name: "Backwards", Type: "other", StartDate: "2025-06-15", EndDate: "2025-06-01",
		})
		assert.False(t, v.Valid)
		assert.Contains(t, v.Errors, "end date must not be before start date")
	})

	t.Run("malformed date", func(t *testing.T) {
		v := ValidatePeriodDraft(models.PeriodDraft{
			Name: "Bad date", Type: "other", StartDate: "June 1st", EndDate: "2025-06-15",
		})
		assert.False(t, v.Valid)
		assert.Contains(t, v.Errors, "start date must be a YYYY-MM-DD calendar date")
	})
}

func TestClassifyPeriod(t *testing.T) {
	p := models.Period{ID: "p", StartDate: "2025-03-10", EndDate: "2025-03-20"}

	t.Run("past", func(t *testing.T) {
		st := ClassifyPeriod(p, mustDate(t, "2025-03-21"))
		assert.Equal(t, models.PeriodStatePast, st.State)
	})
	t.Run("future with day count", func(t *testing.T) {
		st := ClassifyPeriod(p, mustDate(t, "2025-03-05"))
		assert.Equal(t, models.PeriodStateFuture, st.State)
		assert.Equal(t, 5, st.DaysUntilStart)
	})
	t.Run("active with days remaining", func(t *testing.T) {
		st := ClassifyPeriod(p, mustDate(t, "2025-03-15"))
		assert.Equal(t, models.PeriodStateActive, st.State)
		assert.Equal(t, 5, st.DaysRemaining)
	})
	t.Run("time of day does not shrink the count", func(t *testing.T) {
		st := ClassifyPeriod(p, time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC))
		assert.Equal(t, models.PeriodStateActive, st.State)
		assert.Equal(t, 5, st.DaysRemaining)
	})
	t.Run("active on end date with zero days remaining", func(t *testing.T) {
		st := ClassifyPeriod(p, mustDate(t, "2025-03-20"))
		assert.Equal(t, models.PeriodStateActive, st.State)
		assert.Equal(t, 0, st.DaysRemaining)
	})
	t.Run("local zone does not change the state", func(t *testing.T) {
		tokyoEvening := time.Date(2025, 3, 20, 22, 0, 0, 0, time.FixedZone("UTC+9", 9*60*60))
		st := ClassifyPeriod(p, tokyoEvening)
		assert.Equal(t, models.PeriodStateActive, st.State)
		assert.Equal(t, 0, st.DaysRemaining)

		st = ClassifyPeriod(p, time.Date(2025, 3, 10, 1, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60)))
		assert.Equal(t, models.PeriodStateActive, st.State)
	})
}
