package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/baitoguard/backend/internal/model"
)

func recordWithScore(score int, timestamp string) model.Record {
	return model.Record{
		ID:             fmt.Sprintf("rec-%d", score),
		Timestamp:      timestamp,
		JobDescription: "テスト求人",
		AnalysisResult: model.Verdict{SafetyScore: score},
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	stats := Aggregate(nil)

	if stats.TotalCount != 0 {
		t.Fatalf("totalCount = %d, want 0", stats.TotalCount)
	}
	if len(stats.ScoreDistribution) != 5 {
		t.Fatalf("expected 5 score buckets, got %d", len(stats.ScoreDistribution))
	}
	for _, bucket := range stats.ScoreDistribution {
		if bucket.Count != 0 {
			t.Fatalf("bucket %s should be zero, got %d", bucket.Range, bucket.Count)
		}
	}
	if len(stats.RedFlagsFrequency) != 5 {
		t.Fatalf("expected 5 red flag entries, got %d", len(stats.RedFlagsFrequency))
	}
	if len(stats.MonthlyAnalysis) != 0 {
		t.Fatalf("monthlyAnalysis should be empty")
	}
	if stats.RiskDistribution != (model.RiskDistribution{}) {
		t.Fatalf("riskDistribution should be zero, got %+v", stats.RiskDistribution)
	}
}

// [0,100]の全スコアで、5区間の合計が件数と一致し二重計上が無い。
func TestAggregateScoreBucketExhaustiveness(t *testing.T) {
	records := make([]model.Record, 0, 101)
	for score := 0; score <= 100; score++ {
		records = append(records, recordWithScore(score, "2025-01-10T00:00:00Z"))
	}

	stats := Aggregate(records)

	total := 0
	for _, bucket := range stats.ScoreDistribution {
		total += bucket.Count
	}
	if total != len(records) {
		t.Fatalf("bucket counts sum to %d, want %d", total, len(records))
	}

	// 境界値 20/40/60/80 は整数除算どおり1つ上の区間に入る
	boundaries := map[int]string{20: "21-40", 40: "41-60", 60: "61-80", 80: "81-100"}
	for score, wantRange := range boundaries {
		stats := Aggregate([]model.Record{recordWithScore(score, "2025-01-10T00:00:00Z")})
		for _, bucket := range stats.ScoreDistribution {
			if bucket.Count == 1 && bucket.Range != wantRange {
				t.Fatalf("score %d landed in %s, want %s", score, bucket.Range, wantRange)
			}
		}
	}

	// スコア100はindexをクランプして最終区間に入る
	top := Aggregate([]model.Record{recordWithScore(100, "2025-01-10T00:00:00Z")})
	if top.ScoreDistribution[4].Count != 1 {
		t.Fatalf("score 100 must land in the last bucket")
	}
}

// スコア95/50/10はsafe/warning/dangerousに1件ずつ入る。
func TestAggregateRiskDistribution(t *testing.T) {
	records := []model.Record{
		recordWithScore(95, "2025-01-10T00:00:00Z"),
		recordWithScore(50, "2025-01-10T00:00:00Z"),
		recordWithScore(10, "2025-01-10T00:00:00Z"),
	}

	stats := Aggregate(records)
	want := model.RiskDistribution{Safe: 1, Warning: 1, Dangerous: 1}
	if stats.RiskDistribution != want {
		t.Fatalf("riskDistribution = %+v, want %+v", stats.RiskDistribution, want)
	}
}

func TestAggregateRiskThresholdBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  model.RiskDistribution
	}{
		{score: 80, want: model.RiskDistribution{Safe: 1}},
		{score: 79, want: model.RiskDistribution{Warning: 1}},
		{score: 40, want: model.RiskDistribution{Warning: 1}},
		{score: 39, want: model.RiskDistribution{Dangerous: 1}},
		{score: 0, want: model.RiskDistribution{Dangerous: 1}},
		{score: 100, want: model.RiskDistribution{Safe: 1}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("score-%d", tt.score), func(t *testing.T) {
			stats := Aggregate([]model.Record{recordWithScore(tt.score, "2025-01-10T00:00:00Z")})
			if stats.RiskDistribution != tt.want {
				t.Fatalf("score %d: riskDistribution = %+v, want %+v", tt.score, stats.RiskDistribution, tt.want)
			}
		})
	}
}

func TestAggregateRedFlagsFrequency(t *testing.T) {
	records := []model.Record{
		{AnalysisResult: model.Verdict{RedFlags: model.RedFlags{UnrealisticPay: true, IllegalActivity: true}}},
		{AnalysisResult: model.Verdict{RedFlags: model.RedFlags{UnrealisticPay: true}}},
		{AnalysisResult: model.Verdict{}},
	}

	stats := Aggregate(records)

	wantCounts := map[string]int{
		"unrealisticPay":         2,
		"lackOfCompanyInfo":      0,
		"requestForPersonalInfo": 0,
		"unclearJobDescription":  0,
		"illegalActivity":        1,
	}
	if len(stats.RedFlagsFrequency) != len(wantCounts) {
		t.Fatalf("expected %d entries, got %d", len(wantCounts), len(stats.RedFlagsFrequency))
	}
	for _, entry := range stats.RedFlagsFrequency {
		if entry.Count != wantCounts[entry.Flag] {
			t.Fatalf("flag %s count = %d, want %d", entry.Flag, entry.Count, wantCounts[entry.Flag])
		}
	}
}

// 2025-03-05と2025-03-20は単一の "2025-03" バケットに件数2で入る。
func TestAggregateMonthlyBucketing(t *testing.T) {
	records := []model.Record{
		recordWithScore(50, "2025-03-05T09:00:00Z"),
		recordWithScore(60, "2025-03-20T21:30:00Z"),
	}

	stats := Aggregate(records)
	if len(stats.MonthlyAnalysis) != 1 {
		t.Fatalf("expected 1 monthly bucket, got %d", len(stats.MonthlyAnalysis))
	}
	got := stats.MonthlyAnalysis[0]
	if got.Month != "2025-03" || got.Count != 2 {
		t.Fatalf("monthly bucket = %+v, want {2025-03 2}", got)
	}
}

func TestAggregateMonthlyChronologicalOrder(t *testing.T) {
	records := []model.Record{
		recordWithScore(50, "2025-03-05T00:00:00Z"),
		recordWithScore(50, "2024-11-01T00:00:00Z"),
		recordWithScore(50, "2025-01-15T00:00:00Z"),
		recordWithScore(50, "2025-01-20T00:00:00Z"),
		recordWithScore(50, "壊れたタイムスタンプ"),
	}

	stats := Aggregate(records)

	months := make([]string, 0, len(stats.MonthlyAnalysis))
	for _, m := range stats.MonthlyAnalysis {
		months = append(months, m.Month)
	}
	if strings.Join(months, ",") != "2024-11,2025-01,2025-03" {
		t.Fatalf("months = %v, want chronological order", months)
	}
	if stats.MonthlyAnalysis[1].Count != 2 {
		t.Fatalf("2025-01 count = %d, want 2", stats.MonthlyAnalysis[1].Count)
	}
}

// 月バケットのキーはUTC基準で導出される。
func TestAggregateMonthlyBucketingUsesUTC(t *testing.T) {
	// JSTの3月1日 08:00 はUTCでは2月28日 23:00
	stats := Aggregate([]model.Record{recordWithScore(50, "2025-03-01T08:00:00+09:00")})
	if len(stats.MonthlyAnalysis) != 1 || stats.MonthlyAnalysis[0].Month != "2025-02" {
		t.Fatalf("monthly = %+v, want single 2025-02 bucket", stats.MonthlyAnalysis)
	}
}

func TestAssembleEphemeralRecord(t *testing.T) {
	verdict := FallbackVerdict()
	rec := Assemble("怪しい求人", verdict, false, "ignored", "ignored")

	if !strings.HasPrefix(rec.ID, "temp-") {
		t.Fatalf("ephemeral record id = %q, want temp- prefix", rec.ID)
	}
	if rec.SavedToHistory {
		t.Fatalf("ephemeral record must not be marked saved")
	}
	if rec.Timestamp == "" || rec.Timestamp == "ignored" {
		t.Fatalf("ephemeral record must synthesize its own timestamp, got %q", rec.Timestamp)
	}
	if rec.JobDescription != "怪しい求人" {
		t.Fatalf("jobDescription = %q", rec.JobDescription)
	}
}

func TestAssemblePersistedRecord(t *testing.T) {
	rec := Assemble("安全な求人", model.Verdict{}, true, "rec-42", "2025-03-05T10:00:00Z")

	if rec.ID != "rec-42" || rec.Timestamp != "2025-03-05T10:00:00Z" {
		t.Fatalf("persisted record must keep storage id/timestamp: %+v", rec)
	}
	if !rec.SavedToHistory {
		t.Fatalf("persisted record must be marked saved")
	}
}
