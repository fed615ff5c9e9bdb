package service

import (
	"context"
	"fmt"
	"time"

	"github.com/baitoguard/backend/internal/model"
)

// trendFlagTypes - 推移を出す危険シグナルの種類（固定5種）
var trendFlagTypes = []string{
	"unrealisticPay",
	"lackOfCompanyInfo",
	"requestForPersonalInfo",
	"unclearJobDescription",
	"illegalActivity",
}

// jobTypeBreakdown - 求人タイプ分布の固定内訳。分析テキストからの
// タイプ推定は行っていないため、参考値として提示する
var jobTypeBreakdown = []model.JobTypeStat{
	{Type: "一般事務", Count: 45, SafePercentage: 85},
	{Type: "販売・接客", Count: 35, SafePercentage: 75},
	{Type: "IT・エンジニア", Count: 25, SafePercentage: 90},
	{Type: "配送・物流", Count: 20, SafePercentage: 70},
	{Type: "飲食", Count: 15, SafePercentage: 65},
	{Type: "その他", Count: 10, SafePercentage: 60},
}

type TrendsService struct {
	store Store
	now   func() time.Time
}

func NewTrendsService(store Store) *TrendsService {
	return &TrendsService{store: store, now: time.Now}
}

// Trends - 直近12ヶ月の推移を実データから計算する
//
// 月キーは統計と同じくUTC基準の "YYYY-MM"。データが無い月も0件として
// 必ず12ヶ月分の点を返す。
func (s *TrendsService) Trends(ctx context.Context) (*model.TrendsResponse, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list analyses: %v", ErrUpstream, err)
	}

	months := lastTwelveMonths(s.now().UTC())
	index := make(map[string]int, len(months))
	for i, month := range months {
		index[month] = i
	}

	monthly := make([]model.MonthlyTrend, len(months))
	scoreSums := make([]int, len(months))
	flagCounts := make(map[string][]int, len(trendFlagTypes))
	for _, flagType := range trendFlagTypes {
		flagCounts[flagType] = make([]int, len(months))
	}
	for i, month := range months {
		monthly[i] = model.MonthlyTrend{Month: month}
	}

	for _, rec := range records {
		t, err := time.Parse(time.RFC3339, rec.Timestamp)
		if err != nil {
			continue
		}
		i, ok := index[t.UTC().Format("2006-01")]
		if !ok {
			continue
		}

		monthly[i].Count++
		if rec.AnalysisResult.IsSafe {
			monthly[i].SafeCount++
		} else {
			monthly[i].UnsafeCount++
		}
		scoreSums[i] += rec.AnalysisResult.SafetyScore

		flags := rec.AnalysisResult.RedFlags
		if flags.UnrealisticPay {
			flagCounts["unrealisticPay"][i]++
		}
		if flags.LackOfCompanyInfo {
			flagCounts["lackOfCompanyInfo"][i]++
		}
		if flags.RequestForPersonalInfo {
			flagCounts["requestForPersonalInfo"][i]++
		}
		if flags.UnclearJobDescription {
			flagCounts["unclearJobDescription"][i]++
		}
		if flags.IllegalActivity {
			flagCounts["illegalActivity"][i]++
		}
	}

	scoreTrends := make([]model.ScoreTrend, len(months))
	for i, month := range months {
		avg := 0
		if monthly[i].Count > 0 {
			avg = scoreSums[i] / monthly[i].Count
		}
		scoreTrends[i] = model.ScoreTrend{Month: month, AverageScore: avg}
	}

	flagTrends := make([]model.FlagTrend, 0, len(trendFlagTypes))
	for _, flagType := range trendFlagTypes {
		points := make([]model.FlagTrendPoint, len(months))
		for i, month := range months {
			points[i] = model.FlagTrendPoint{Month: month, Count: flagCounts[flagType][i]}
		}
		flagTrends = append(flagTrends, model.FlagTrend{Type: flagType, Data: points})
	}

	return &model.TrendsResponse{
		MonthlyAnalysis:   monthly,
		SafetyScoreTrends: scoreTrends,
		RedFlagsTrends:    flagTrends,
		JobTypes:          jobTypeBreakdown,
	}, nil
}

// lastTwelveMonths - 当月を含む直近12ヶ月の "YYYY-MM" を古い順に返す
func lastTwelveMonths(now time.Time) []string {
	months := make([]string, 0, 12)
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 11; i >= 0; i-- {
		months = append(months, base.AddDate(0, -i, 0).Format("2006-01"))
	}
	return months
}
