package model

// ScoreBucket - 安全性スコア分布の1区間（0-20 / 21-40 / ... / 81-100）
type ScoreBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// FlagFrequency - 危険シグナル1種の出現回数
type FlagFrequency struct {
	Flag  string `json:"flag"`
	Count int    `json:"count"`
}

// MonthlyCount - 月別分析件数（キーは "YYYY-MM"、UTC基準）
type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// RiskDistribution - 危険度3段階の分布
//
// safe: スコア80以上 / warning: 40〜79 / dangerous: 40未満。
// 5区間のスコア分布とは独立した閾値であり、統合してはいけない。
type RiskDistribution struct {
	Safe      int `json:"safe"`
	Warning   int `json:"warning"`
	Dangerous int `json:"dangerous"`
}

// Statistics - 全分析結果から導出される統計情報（保存はしない）
type Statistics struct {
	TotalCount        int              `json:"totalCount"`
	ScoreDistribution []ScoreBucket    `json:"scoreDistribution"`
	RedFlagsFrequency []FlagFrequency  `json:"redFlagsFrequency"`
	MonthlyAnalysis   []MonthlyCount   `json:"monthlyAnalysis"`
	RiskDistribution  RiskDistribution `json:"riskDistribution"`
}
