package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HSP-ScheduleService/pkg/ptr"
)

func TestScopeMatches_NilRequestSeesEverything(t *testing.T) {
	assert.True(t, ScopeMatches(nil, nil))
	assert.True(t, ScopeMatches(nil, ptr.Ptr(int64(7))))
}

func TestScopeMatches_SpecificRequest(t *testing.T) {
	requested := ptr.Ptr(int64(3))

	// Своя категория и глобальные кандидаты видимы
	assert.True(t, ScopeMatches(requested, ptr.Ptr(int64(3))))
	assert.True(t, ScopeMatches(requested, nil))

	// Чужая категория — нет
	assert.False(t, ScopeMatches(requested, ptr.Ptr(int64(4))))
}

func TestFilterDatesByScope(t *testing.T) {
	date := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	dates := []*CalendarDate{
		{ID: 1, Date: date, CategoryID: nil},
		{ID: 2, Date: date, CategoryID: ptr.Ptr(int64(3))},
		{ID: 3, Date: date, CategoryID: ptr.Ptr(int64(4))},
	}

	// Запрос без категории возвращает всё
	all := FilterDatesByScope(nil, dates)
	assert.Len(t, all, 3)

	// Запрос с категорией видит свою + глобальную
	scoped := FilterDatesByScope(ptr.Ptr(int64(3)), dates)
	assert.Len(t, scoped, 2)
	assert.Equal(t, int64(1), scoped[0].ID)
	assert.Equal(t, int64(2), scoped[1].ID)
}

func TestFilterSlotsByScope(t *testing.T) {
	date := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	slots := []*TimeSlot{
		{ID: 1, Date: date, CategoryID: ptr.Ptr(int64(5)), StartTime: "09:00", EndTime: "10:00"},
		{ID: 2, Date: date, CategoryID: nil, StartTime: "10:00", EndTime: "11:00"},
	}

	scoped := FilterSlotsByScope(ptr.Ptr(int64(6)), slots)

	assert.Len(t, scoped, 1)
	assert.Equal(t, int64(2), scoped[0].ID)
}

func TestCalendarDate_IsPast(t *testing.T) {
	now := time.Date(2025, 9, 15, 13, 45, 0, 0, time.UTC)

	yesterday := &CalendarDate{Date: time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC)}
	today := &CalendarDate{Date: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)}
	tomorrow := &CalendarDate{Date: time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC)}

	assert.True(t, yesterday.IsPast(now))
	// Сегодняшний день не прошедший, даже если время уже за полдень
	assert.False(t, today.IsPast(now))
	assert.False(t, tomorrow.IsPast(now))
}

func TestValidateTimeRange(t *testing.T) {
	assert.NoError(t, ValidateTimeRange("09:00", "10:00"))

	// Конец не позже начала — ошибка в обоих случаях
	assert.Error(t, ValidateTimeRange("10:00", "10:00"))
	assert.Error(t, ValidateTimeRange("11:00", "10:00"))

	// Невалидный формат тоже отклоняется
	assert.Error(t, ValidateTimeRange("9am", "10:00"))
}
