package amortize

import (
	"math"
	"testing"

	"github.com/prepaytools/loan-prepay/pkg/constants"
	"github.com/prepaytools/loan-prepay/pkg/mathutil"
)

func TestCalculateMonthlyPayment(t *testing.T) {
	tests := []struct {
		name          string
		principal     float64
		annualRate    float64
		termMonths    int
		expectedRange []float64 // [min, max] expected range
	}{
		{
			name:          "Standard 20-year mortgage",
			principal:     500000,
			annualRate:    3.85,
			termMonths:    240,
			expectedRange: []float64{2985, 2995}, // Around $2990
		},
		{
			name:          "5-year car loan",
			principal:     20000,
			annualRate:    4.0,
			termMonths:    60,
			expectedRange: []float64{365, 372}, // Around $368
		},
		{
			name:          "Zero interest loan",
			principal:     12000,
			annualRate:    0.0,
			termMonths:    60,
			expectedRange: []float64{200, 200}, // Exactly $200
		},
		{
			name:          "High interest loan",
			principal:     10000,
			annualRate:    18.0,
			termMonths:    36,
			expectedRange: []float64{360, 365}, // Around $362
		},
		{
			name:          "Single period",
			principal:     1200,
			annualRate:    12.0,
			termMonths:    1,
			expectedRange: []float64{1211.99, 1212.01}, // Principal plus one month of interest
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateMonthlyPayment(tt.principal, tt.annualRate, tt.termMonths)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("CalculateMonthlyPayment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestCalculateInterestPayment(t *testing.T) {
	tests := []struct {
		name               string
		remainingPrincipal float64
		annualRate         float64
		expected           float64
	}{
		{
			name:               "Standard mortgage interest",
			remainingPrincipal: 200000,
			annualRate:         6.0,
			expected:           1000.0, // 200000 * 0.06 / 12
		},
		{
			name:               "Zero interest",
			remainingPrincipal: 10000,
			annualRate:         0.0,
			expected:           0.0,
		},
		{
			name:               "High interest",
			remainingPrincipal: 5000,
			annualRate:         24.0,
			expected:           100.0, // 5000 * 0.24 / 12
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateInterestPayment(tt.remainingPrincipal, tt.annualRate)

			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("CalculateInterestPayment() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestMonthlyRate(t *testing.T) {
	if got := MonthlyRate(3.85); math.Abs(got-3.85/1200.0) > 1e-12 {
		t.Errorf("MonthlyRate(3.85) = %v, expected %v", got, 3.85/1200.0)
	}
	if got := MonthlyRate(0); got != 0 {
		t.Errorf("MonthlyRate(0) = %v, expected 0", got)
	}
}

func TestGenerateScheduleEqualInstallment(t *testing.T) {
	principal := 500000.0
	schedule := GenerateSchedule(EqualInstallment, principal, 3.85, 240)

	if len(schedule) != 240 {
		t.Fatalf("GenerateSchedule() produced %d entries, expected 240", len(schedule))
	}

	payment := schedule[0].Payment
	principalSum := 0.0
	for i, entry := range schedule {
		if entry.Period != i+1 {
			t.Errorf("entry %d has period %d, expected %d", i, entry.Period, i+1)
		}
		if entry.Payment != payment {
			t.Errorf("period %d payment = %.6f, expected constant %.6f", entry.Period, entry.Payment, payment)
		}
		if i > 0 {
			if entry.Interest > schedule[i-1].Interest {
				t.Errorf("period %d interest %.6f increased from %.6f", entry.Period, entry.Interest, schedule[i-1].Interest)
			}
			if entry.Principal < schedule[i-1].Principal {
				t.Errorf("period %d principal %.6f decreased from %.6f", entry.Period, entry.Principal, schedule[i-1].Principal)
			}
			if entry.RemainingPrincipal >= schedule[i-1].RemainingPrincipal {
				t.Errorf("period %d balance %.6f did not decrease from %.6f",
					entry.Period, entry.RemainingPrincipal, schedule[i-1].RemainingPrincipal)
			}
		}
		principalSum += entry.Principal
	}

	if !mathutil.WithinRelativeTolerance(principalSum, principal, constants.PrincipalSumTolerance) {
		t.Errorf("sum of principal components = %.6f, expected %.6f", principalSum, principal)
	}

	final := schedule[len(schedule)-1].RemainingPrincipal
	if final < 0 {
		t.Errorf("final balance %.6f is negative; expected clamp to zero", final)
	}
	if !mathutil.IsZero(final) {
		t.Errorf("final balance %.6f is not effectively zero", final)
	}
}

func TestGenerateScheduleEqualInstallmentZeroRate(t *testing.T) {
	schedule := GenerateSchedule(EqualInstallment, 12000, 0, 60)

	principalSum := 0.0
	for _, entry := range schedule {
		if entry.Payment != 200 {
			t.Errorf("period %d payment = %v, expected exactly 200", entry.Period, entry.Payment)
		}
		if entry.Interest != 0 {
			t.Errorf("period %d interest = %v, expected 0", entry.Period, entry.Interest)
		}
		principalSum += entry.Principal
	}

	// 12000 divides evenly over 60 periods; no rounding drift is tolerated.
	if principalSum != 12000 {
		t.Errorf("sum of principal components = %v, expected exactly 12000", principalSum)
	}
	if schedule[len(schedule)-1].RemainingPrincipal != 0 {
		t.Errorf("final balance = %v, expected exactly 0", schedule[len(schedule)-1].RemainingPrincipal)
	}
}

func TestGenerateScheduleEqualPrincipal(t *testing.T) {
	principal := 360000.0
	periods := 180
	schedule := GenerateSchedule(EqualPrincipal, principal, 4.2, periods)

	if len(schedule) != periods {
		t.Fatalf("GenerateSchedule() produced %d entries, expected %d", len(schedule), periods)
	}

	portion := principal / float64(periods)
	principalSum := 0.0
	for i, entry := range schedule {
		if entry.Principal != portion {
			t.Errorf("period %d principal = %.6f, expected constant %.6f", entry.Period, entry.Principal, portion)
		}
		if i > 0 && entry.Payment > schedule[i-1].Payment {
			t.Errorf("period %d payment %.6f increased from %.6f", entry.Period, entry.Payment, schedule[i-1].Payment)
		}
		if math.Abs(entry.Payment-(entry.Principal+entry.Interest)) > 1e-9 {
			t.Errorf("period %d payment %.6f != principal + interest %.6f",
				entry.Period, entry.Payment, entry.Principal+entry.Interest)
		}
		principalSum += entry.Principal
	}

	if !mathutil.WithinRelativeTolerance(principalSum, principal, constants.PrincipalSumTolerance) {
		t.Errorf("sum of principal components = %.6f, expected %.6f", principalSum, principal)
	}
	if !mathutil.IsZero(schedule[len(schedule)-1].RemainingPrincipal) {
		t.Errorf("final balance = %.6f, expected effectively zero", schedule[len(schedule)-1].RemainingPrincipal)
	}
}

func TestTotalInterest(t *testing.T) {
	schedule := []ScheduleEntry{
		{Period: 1, Interest: 100.5},
		{Period: 2, Interest: 99.5},
		{Period: 3, Interest: 98.0},
	}

	if got := TotalInterest(schedule); math.Abs(got-298.0) > 1e-9 {
		t.Errorf("TotalInterest() = %.6f, expected 298.00", got)
	}

	if got := TotalInterest(nil); got != 0 {
		t.Errorf("TotalInterest(nil) = %.6f, expected 0", got)
	}
}
