// Package report turns assessment results into text for people and offers
// the example profile gallery. Nothing here affects scoring.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Skufu/vitalrisk/internal/risk"
)

// DateLayout is the timestamp format used in the report footer.
const DateLayout = "2006-01-02 15:04"

// TierHeading returns the tier banner, e.g. "🔴 HIGH RISK".
func TierHeading(t risk.Tier) string {
	switch t {
	case risk.TierHigh:
		return "🔴 HIGH RISK"
	case risk.TierModerate:
		return "🟡 MODERATE RISK"
	default:
		return "🟢 LOW RISK"
	}
}

// StatusBadge prefixes a status label with an icon for its severity.
func StatusBadge(s risk.Status) string {
	switch s.Severity {
	case risk.SeverityAlert:
		return "🚨 " + s.Label
	case risk.SeverityCaution:
		return "⚠️ " + s.Label
	default:
		return "✅ " + s.Label
	}
}

// Markdown renders a full assessment report. now is printed as the
// assessment date.
func Markdown(p risk.HealthProfile, r risk.RiskResult, now time.Time) string {
	var b strings.Builder

	b.WriteString("# 🏥 HEALTH RISK ASSESSMENT\n\n")
	fmt.Fprintf(&b, "## 📊 RISK LEVEL: %s\n", TierHeading(r.Tier))
	fmt.Fprintf(&b, "**Overall Risk Score:** %d/100\n", r.Score)
	fmt.Fprintf(&b, "**Probability of Health Issues:** %s\n\n", r.ProbabilityRange)

	b.WriteString("## 🎯 RECOMMENDED ACTION\n")
	b.WriteString(r.RecommendedAction + "\n\n")

	b.WriteString("## 📋 VITAL STATISTICS ANALYSIS\n")
	for _, v := range risk.Vitals() {
		a, ok := r.Vitals[v]
		if !ok {
			continue
		}
		value := formatValue(a.Value)
		if unit := v.Unit(); unit != "" {
			value += " " + unit
		}
		fmt.Fprintf(&b, "- **%s:** %s - %s\n", v.DisplayName(), value, StatusBadge(a.Status))
	}
	b.WriteString("\n")

	b.WriteString("## 👤 PATIENT PROFILE\n")
	fmt.Fprintf(&b, "- **Age:** %d years\n", p.Age)
	fmt.Fprintf(&b, "- **Exercise:** %s\n", p.Exercise)
	fmt.Fprintf(&b, "- **Smoking Status:** %s\n", p.Smoking.DisplayName())
	fmt.Fprintf(&b, "- **Family History:** %s\n\n", risk.YesNo(p.FamilyHistory))

	b.WriteString("## 💊 POTENTIAL CONDITIONS\n")
	b.WriteString(r.PotentialConditions + "\n\n")

	b.WriteString("## 🥗 HEALTH RECOMMENDATIONS\n")
	writeBullets(&b, r.Recommendations)
	b.WriteString("\n")

	b.WriteString("## 🔍 KEY INSIGHTS\n")
	if len(r.Insights) == 0 {
		b.WriteString("No specific concerns flagged.\n")
	} else {
		writeBullets(&b, r.Insights)
	}

	b.WriteString("\n---\n")
	b.WriteString("*Rule-based health assessment for educational purposes*\n")
	b.WriteString("*⚠️ Not a substitute for professional medical advice*\n")
	fmt.Fprintf(&b, "*📅 Assessment Date: %s*\n", now.Format(DateLayout))

	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("• " + item + "\n")
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
