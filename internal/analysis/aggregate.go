package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/baitoguard/backend/internal/model"
)

// scoreBucketRanges - 5区間のラベル。区間は (idx*20, idx*20+20] 相当
var scoreBucketRanges = [5]string{"0-20", "21-40", "41-60", "61-80", "81-100"}

// 危険度3段階の閾値。5区間ヒストグラムとは別の設計上の閾値
const (
	riskSafeMin    = 80
	riskWarningMin = 40
)

// Aggregate - Record集合から統計情報を導出する
//
// 純粋関数で、空の入力にはゼロ埋めの統計を返す。月別件数のキーは
// タイムスタンプをUTCに直した "YYYY-MM"（タイムゾーンはUTCに固定、
// パース不能なタイムスタンプのRecordは月別集計から除外される）。
func Aggregate(records []model.Record) model.Statistics {
	stats := model.Statistics{
		TotalCount:        len(records),
		ScoreDistribution: make([]model.ScoreBucket, len(scoreBucketRanges)),
		MonthlyAnalysis:   []model.MonthlyCount{},
	}
	for i, label := range scoreBucketRanges {
		stats.ScoreDistribution[i] = model.ScoreBucket{Range: label}
	}

	flagCounts := map[string]int{}
	monthly := map[string]int{}

	for _, rec := range records {
		verdict := rec.AnalysisResult

		stats.ScoreDistribution[scoreBucketIndex(verdict.SafetyScore)].Count++

		switch {
		case verdict.SafetyScore >= riskSafeMin:
			stats.RiskDistribution.Safe++
		case verdict.SafetyScore >= riskWarningMin:
			stats.RiskDistribution.Warning++
		default:
			stats.RiskDistribution.Dangerous++
		}

		flags := verdict.RedFlags
		if flags.UnrealisticPay {
			flagCounts["unrealisticPay"]++
		}
		if flags.LackOfCompanyInfo {
			flagCounts["lackOfCompanyInfo"]++
		}
		if flags.RequestForPersonalInfo {
			flagCounts["requestForPersonalInfo"]++
		}
		if flags.UnclearJobDescription {
			flagCounts["unclearJobDescription"]++
		}
		if flags.IllegalActivity {
			flagCounts["illegalActivity"]++
		}

		if month, ok := monthKey(rec.Timestamp); ok {
			monthly[month]++
		}
	}

	stats.RedFlagsFrequency = make([]model.FlagFrequency, 0, len(redFlagKeys))
	for _, key := range redFlagKeys {
		stats.RedFlagsFrequency = append(stats.RedFlagsFrequency, model.FlagFrequency{
			Flag:  key,
			Count: flagCounts[key],
		})
	}

	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		stats.MonthlyAnalysis = append(stats.MonthlyAnalysis, model.MonthlyCount{
			Month: month,
			Count: monthly[month],
		})
	}

	return stats
}

// scoreBucketIndex - スコアを20で割って区間indexを求め、[0,4]にクランプ。
// 100はindex 5になるため上側のクランプが必要
func scoreBucketIndex(score int) int {
	idx := score / 20
	if idx < 0 {
		return 0
	}
	if idx > 4 {
		return 4
	}
	return idx
}

// monthKey - タイムスタンプからUTC基準の "YYYY-MM" キーを導出する
func monthKey(timestamp string) (string, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, timestamp); err == nil {
			return t.UTC().Format("2006-01"), true
		}
	}
	return "", false
}

// Assemble - 求人テキストと判定からRecordを組み立てる
//
// savedがfalseの場合は "temp-<epochMillis>" の一時IDと現在時刻を
// 合成する。trueの場合はストレージが払い出したIDと作成時刻を使う。
// オブジェクト構築以外の副作用は無い（保存自体はストレージ層の責務）。
func Assemble(jobDescription string, verdict model.Verdict, saved bool, id, timestamp string) model.Record {
	if !saved {
		id = fmt.Sprintf("temp-%d", time.Now().UnixMilli())
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	return model.Record{
		ID:             id,
		Timestamp:      timestamp,
		JobDescription: jobDescription,
		AnalysisResult: verdict,
		SavedToHistory: saved,
	}
}
