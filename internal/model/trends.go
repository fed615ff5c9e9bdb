package model

// MonthlyTrend - 月別の分析件数と安全/危険の内訳
type MonthlyTrend struct {
	Month       string `json:"month"`
	Count       int    `json:"count"`
	SafeCount   int    `json:"safeCount"`
	UnsafeCount int    `json:"unsafeCount"`
}

// ScoreTrend - 月別の平均安全性スコア推移
type ScoreTrend struct {
	Month        string `json:"month"`
	AverageScore int    `json:"averageScore"`
}

// FlagTrendPoint - 危険シグナル推移の1点
type FlagTrendPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// FlagTrend - 危険シグナル1種の月別推移
type FlagTrend struct {
	Type string           `json:"type"`
	Data []FlagTrendPoint `json:"data"`
}

// JobTypeStat - 求人タイプ別の件数と安全割合
type JobTypeStat struct {
	Type           string `json:"type"`
	Count          int    `json:"count"`
	SafePercentage int    `json:"safePercentage"`
}

// TrendsResponse - GET /api/v1/trends 応答
type TrendsResponse struct {
	MonthlyAnalysis   []MonthlyTrend `json:"monthlyAnalysis"`
	SafetyScoreTrends []ScoreTrend   `json:"safetyScoreTrends"`
	RedFlagsTrends    []FlagTrend    `json:"redFlagsTrends"`
	JobTypes          []JobTypeStat  `json:"jobTypes"`
}
