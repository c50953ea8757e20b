package campaign

import "a11ysentinel.io/sentinel/internal/domain"

// Urgency buckets the remaining budget percentage for UI messaging.
// Pure and monotonic in percentRemaining; a DEPLETED campaign is
// depleted regardless of the arithmetic.
func Urgency(percentRemaining float64, status domain.CampaignStatus) domain.UrgencyLevel {
	if status == domain.CampaignStatusDepleted {
		return domain.UrgencyDepleted
	}
	switch {
	case percentRemaining >= 50:
		return domain.UrgencyNormal
	case percentRemaining >= 20:
		return domain.UrgencyLimited
	case percentRemaining >= 5:
		return domain.UrgencyAlmostGone
	case percentRemaining > 0:
		return domain.UrgencyFinal
	default:
		return domain.UrgencyDepleted
	}
}
