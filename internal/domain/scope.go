package domain

// ScopeMatches правило видимости по категории услуг.
//
// Правило асимметричное:
//   - запрос без категории (requested == nil) видит ВСЁ, независимо от
//     собственной области кандидата;
//   - запрос с конкретной категорией видит кандидатов своей категории
//     И глобальных кандидатов (own == nil).
//
// От этого правила зависит вся система — менять его нельзя.
func ScopeMatches(requested, own *int64) bool {
	if requested == nil {
		return true
	}
	if own == nil {
		return true
	}
	return *own == *requested
}

// FilterDatesByScope возвращает календарные даты, видимые для запрошенной категории
func FilterDatesByScope(requested *int64, dates []*CalendarDate) []*CalendarDate {
	result := make([]*CalendarDate, 0, len(dates))
	for _, d := range dates {
		if d.AppliesTo(requested) {
			result = append(result, d)
		}
	}
	return result
}

// FilterSlotsByScope возвращает слоты, видимые для запрошенной категории
func FilterSlotsByScope(requested *int64, slots []*TimeSlot) []*TimeSlot {
	result := make([]*TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.AppliesTo(requested) {
			result = append(result, s)
		}
	}
	return result
}
