package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

func rankingProvider(id int64, rating float64, windows ...domain.AvailabilityWindow) *domain.Provider {
	return &domain.Provider{
		ID:           id,
		Specialties:  []string{"cardiology"},
		Rating:       rating,
		Availability: windows,
	}
}

func TestSelectProviderByCriteria_NextAvailabilityTieBreak(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	early := rankingProvider(1, 4.5, domain.AvailabilityWindow{
		Start: day.Add(8 * time.Hour),
		End:   day.Add(12 * time.Hour),
	})
	late := rankingProvider(2, 4.5, domain.AvailabilityWindow{
		Start: day.Add(9 * time.Hour),
		End:   day.Add(12 * time.Hour),
	})

	chosen := selectProviderByCriteria([]*domain.Provider{late, early}, day)
	assert.Equal(t, int64(1), chosen.ID)
}

func TestSelectProviderByCriteria_NoOpeningSortsLast(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	open := rankingProvider(1, 4.5, domain.AvailabilityWindow{
		Start: day.Add(9 * time.Hour),
		End:   day.Add(17 * time.Hour),
	})
	// Без окон доступности ближайшего слота нет - такой врач проигрывает
	// любому с открытым расписанием
	closed := rankingProvider(2, 4.5)

	chosen := selectProviderByCriteria([]*domain.Provider{closed, open}, day)
	assert.Equal(t, int64(1), chosen.ID)
}
