package view

import (
	"strings"

	"github.com/fraudlens/console/pkg/constants"
)

// Badge and color classification for risk levels, entity statuses, trust
// scores and map hotspots. Unknown inputs always resolve to a safe default
// class instead of leaking raw values into class attributes.

// RiskBadgeClass returns the CSS class for a risk level badge. Levels are
// matched case-insensitively; anything unrecognized gets the low-risk class.
func RiskBadgeClass(level string) string {
	l := constants.RiskLevel(strings.ToLower(strings.TrimSpace(level)))
	for _, known := range constants.KnownRiskLevels {
		if l == known {
			return "badge-" + string(known)
		}
	}
	return "badge-" + string(constants.RiskLow)
}

// StatusBadgeClass returns the CSS class for an entity status badge. Unknown
// statuses get the pending class.
func StatusBadgeClass(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	for _, known := range constants.KnownStatuses {
		if s == known {
			return "status-" + known
		}
	}
	return "status-pending"
}

// RiskLevelColor maps a risk level to its accent color. Unknown levels read
// as low.
func RiskLevelColor(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "critical":
		return "#ef4444"
	case "high":
		return "#f97316"
	case "medium":
		return "#f59e0b"
	default:
		return "#3b82f6"
	}
}

// TrustColor maps a trust score to the ring color bands.
func TrustColor(score float64) string {
	switch {
	case score >= 80:
		return "#10b981"
	case score >= 60:
		return "#3b82f6"
	case score >= 40:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}

// RiskBucket places an average risk score into a distribution bucket.
func RiskBucket(avgRisk float64) constants.RiskLevel {
	switch {
	case avgRisk < 40:
		return constants.RiskLow
	case avgRisk < 65:
		return constants.RiskMedium
	case avgRisk < 85:
		return constants.RiskHigh
	default:
		return constants.RiskCritical
	}
}

// HotspotColor maps a hotspot's average risk to its marker color.
func HotspotColor(avgRisk float64) string {
	switch {
	case avgRisk >= 70:
		return "#ef4444"
	case avgRisk >= 50:
		return "#f59e0b"
	case avgRisk >= 30:
		return "#3b82f6"
	default:
		return "#10b981"
	}
}

// HotspotRadius sizes a hotspot circle in meters from its transaction count,
// with a floor so sparse hotspots stay visible at country zoom.
func HotspotRadius(txnCount int) float64 {
	r := float64(txnCount) * 1000
	if r < 50000 {
		return 50000
	}
	return r
}
