package scheduling_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
	"github.com/medpoint/MP-SchedulingService/internal/scheduling"
)

func TestChecksumInsurancePolicy(t *testing.T) {
	policy := scheduling.ChecksumInsurancePolicy{}

	// (1 + 1 + 3) mod 5 == 0 - страховка недействительна
	assert.False(t, policy.IsValid(1, 1, "abc"))

	// (2 + 1 + 3) mod 5 == 1 - действительна
	assert.True(t, policy.IsValid(2, 1, "abc"))
}

func TestEstimateCost(t *testing.T) {
	tests := map[string]struct {
		apptType domain.AppointmentType
		duration time.Duration
		rating   float64
		expected float64
	}{
		"procedure_hour_rating_four": {
			// 400 * (60/30) * (4/5) = 640.00
			apptType: domain.TypeProcedure,
			duration: time.Hour,
			rating:   4.0,
			expected: 640.00,
		},
		"rating_factor_clamped_at_half": {
			// 150 * 1 * max(0.5, 1/5) = 75.00
			apptType: domain.TypeConsultation,
			duration: 30 * time.Minute,
			rating:   1.0,
			expected: 75.00,
		},
		"follow_up_fifteen_minutes": {
			// 80 * 0.5 * 1.0 = 40.00
			apptType: domain.TypeFollowUp,
			duration: 15 * time.Minute,
			rating:   5.0,
			expected: 40.00,
		},
		"unknown_type_uses_default_rate": {
			// 120 * 1 * 0.7 = 84.00
			apptType: domain.AppointmentType("telehealth"),
			duration: 30 * time.Minute,
			rating:   3.5,
			expected: 84.00,
		},
		"rounded_to_cents": {
			// 150 * (45/30) * (4.33/5) = 194.85
			apptType: domain.TypeConsultation,
			duration: 45 * time.Minute,
			rating:   4.33,
			expected: 194.85,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, scheduling.EstimateCost(tc.apptType, tc.duration, tc.rating), 1e-9)
		})
	}
}

func TestDepositAmount(t *testing.T) {
	tests := map[string]struct {
		apptType domain.AppointmentType
		duration time.Duration
		expected float64
	}{
		"procedure_ninety_minutes": {
			// 150 + ceil(1.5) * 25 = 200
			apptType: domain.TypeProcedure,
			duration: 90 * time.Minute,
			expected: 200.00,
		},
		"consultation_half_hour": {
			// 50 + ceil(0.5) * 25 = 75
			apptType: domain.TypeConsultation,
			duration: 30 * time.Minute,
			expected: 75.00,
		},
		"follow_up_exact_hour": {
			// 50 + 1 * 25 = 75
			apptType: domain.TypeFollowUp,
			duration: time.Hour,
			expected: 75.00,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, scheduling.DepositAmount(tc.apptType, tc.duration), 1e-9)
		})
	}
}

func TestPseudoHistoryLookup(t *testing.T) {
	history := scheduling.PseudoHistoryLookup(7)
	assert.Equal(t, int64(7), history.PatientID)
	assert.Equal(t, 3, history.MissedAppointments) // 7 mod 4
	assert.NotNil(t, history.LastVisit)

	// mod 4 == 0 - без пропусков
	history = scheduling.PseudoHistoryLookup(8)
	assert.Equal(t, 0, history.MissedAppointments)
}
