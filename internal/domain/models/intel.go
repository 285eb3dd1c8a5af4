package models

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// IntelReport is the envelope of POST /api/agent/intel: the on-demand
// per-user bundle of profile, trend, AI narrative summaries and recent
// activity.
type IntelReport struct {
	Success            bool          `json:"success"`
	Message            string        `json:"message"`
	Profile            *RiskProfile  `json:"profile"`
	Trend30D           []TrendDay    `json:"trend_30d"`
	Summary            *IntelSummary `json:"summary"`
	RecentTransactions []Transaction `json:"recent_transactions"`
	Alerts             []Alert       `json:"alerts"`
}

// IntelSummary holds the three AI narrative sections. The agent subsystem
// emits each section either as a JSON object or as a string containing
// JSON, depending on which model produced it, so the raw bytes are kept and
// decoded lazily.
type IntelSummary struct {
	Behaviour     json.RawMessage `json:"behaviour"`
	Speculation   json.RawMessage `json:"speculation"`
	Investigation json.RawMessage `json:"investigation"`
}

// BehaviourSummary is the decoded behaviour-analysis section.
type BehaviourSummary struct {
	Verdict     string
	Summary     string
	KeyPatterns []string
}

// SpeculationSummary is the decoded speculation-score section.
type SpeculationSummary struct {
	Score       float64
	HasScore    bool
	Explanation string
	Indicators  []string
}

// InvestigationSummary is the decoded investigation case file.
type InvestigationSummary struct {
	ExecutiveSummary  string
	RiskRating        string
	RecommendedAction string
}

// sectionJSON normalizes a summary section to a gjson result, unwrapping one
// level of string encoding when present.
func sectionJSON(raw json.RawMessage) (gjson.Result, bool) {
	if len(raw) == 0 {
		return gjson.Result{}, false
	}
	doc := gjson.ParseBytes(raw)
	if doc.Type == gjson.String {
		doc = gjson.Parse(doc.String())
	}
	if !doc.IsObject() {
		return gjson.Result{}, false
	}
	return doc, true
}

func stringList(r gjson.Result) []string {
	items := r.Array()
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}

// DecodeBehaviour decodes the behaviour section, reporting false when the
// section is absent or unparseable.
func (s *IntelSummary) DecodeBehaviour() (BehaviourSummary, bool) {
	if s == nil {
		return BehaviourSummary{}, false
	}
	doc, ok := sectionJSON(s.Behaviour)
	if !ok {
		return BehaviourSummary{}, false
	}
	return BehaviourSummary{
		Verdict:     doc.Get("verdict").String(),
		Summary:     doc.Get("summary").String(),
		KeyPatterns: stringList(doc.Get("key_patterns")),
	}, true
}

// DecodeSpeculation decodes the speculation section.
func (s *IntelSummary) DecodeSpeculation() (SpeculationSummary, bool) {
	if s == nil {
		return SpeculationSummary{}, false
	}
	doc, ok := sectionJSON(s.Speculation)
	if !ok {
		return SpeculationSummary{}, false
	}
	score := doc.Get("speculation_score")
	return SpeculationSummary{
		Score:       score.Float(),
		HasScore:    score.Exists(),
		Explanation: doc.Get("explanation").String(),
		Indicators:  stringList(doc.Get("indicators")),
	}, true
}

// DecodeInvestigation decodes the investigation section.
func (s *IntelSummary) DecodeInvestigation() (InvestigationSummary, bool) {
	if s == nil {
		return InvestigationSummary{}, false
	}
	doc, ok := sectionJSON(s.Investigation)
	if !ok {
		return InvestigationSummary{}, false
	}
	return InvestigationSummary{
		ExecutiveSummary:  doc.Get("executive_summary").String(),
		RiskRating:        doc.Get("risk_rating").String(),
		RecommendedAction: doc.Get("recommended_action").String(),
	}, true
}

// IntelRequest is the POST /api/agent/intel body.
type IntelRequest struct {
	UserID string `json:"user_id"`
}
