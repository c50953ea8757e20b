package campaign

import (
	"testing"

	"a11ysentinel.io/sentinel/internal/domain"
)

func TestUrgency(t *testing.T) {
	tests := []struct {
		name             string
		percentRemaining float64
		status           domain.CampaignStatus
		want             domain.UrgencyLevel
	}{
		{"full budget", 100, domain.CampaignStatusActive, domain.UrgencyNormal},
		{"exactly half", 50, domain.CampaignStatusActive, domain.UrgencyNormal},
		{"limited band", 30, domain.CampaignStatusActive, domain.UrgencyLimited},
		{"limited lower edge", 20, domain.CampaignStatusActive, domain.UrgencyLimited},
		{"almost gone", 10, domain.CampaignStatusActive, domain.UrgencyAlmostGone},
		{"almost gone lower edge", 5, domain.CampaignStatusActive, domain.UrgencyAlmostGone},
		{"final stretch", 2, domain.CampaignStatusActive, domain.UrgencyFinal},
		{"nothing left", 0, domain.CampaignStatusActive, domain.UrgencyDepleted},
		{"negative remainder", -3, domain.CampaignStatusActive, domain.UrgencyDepleted},
		{"depleted status wins", 80, domain.CampaignStatusDepleted, domain.UrgencyDepleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Urgency(tt.percentRemaining, tt.status); got != tt.want {
				t.Errorf("Urgency(%v, %s) = %s, want %s", tt.percentRemaining, tt.status, got, tt.want)
			}
		})
	}
}

// Monotonicity: a smaller remainder never maps to a calmer level.
func TestUrgency_Monotonic(t *testing.T) {
	rank := map[domain.UrgencyLevel]int{
		domain.UrgencyNormal:     0,
		domain.UrgencyLimited:    1,
		domain.UrgencyAlmostGone: 2,
		domain.UrgencyFinal:      3,
		domain.UrgencyDepleted:   4,
	}

	prev := domain.UrgencyNormal
	for pct := 100.0; pct >= -1; pct -= 0.5 {
		got := Urgency(pct, domain.CampaignStatusActive)
		if rank[got] < rank[prev] {
			t.Fatalf("urgency regressed from %s to %s at %.1f%% remaining", prev, got, pct)
		}
		prev = got
	}
}
