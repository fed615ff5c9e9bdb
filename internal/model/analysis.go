package model

// RedFlags - 求人の危険シグナル。5つの固定キーのみを持つ
type RedFlags struct {
	UnrealisticPay         bool `json:"unrealisticPay"`
	LackOfCompanyInfo      bool `json:"lackOfCompanyInfo"`
	RequestForPersonalInfo bool `json:"requestForPersonalInfo"`
	UnclearJobDescription  bool `json:"unclearJobDescription"`
	IllegalActivity        bool `json:"illegalActivity"`
}

// Verdict - LLMが返す構造化された安全性判定
//
// Gemini応答のJSONをNormalize（internal/analysis）に通した後の形。
// Normalize後は全フィールドが存在し、スコアは[0,100]に収まる。
type Verdict struct {
	IsSafe                    bool     `json:"isSafe"`
	SafetyScore               int      `json:"safetyScore"`
	WarningFlags              []string `json:"warningFlags"`
	ReasonsForConcern         []string `json:"reasonsForConcern"`
	LegalIssues               []string `json:"legalIssues"`
	RedFlags                  RedFlags `json:"redFlags"`
	SafetyAnalysis            string   `json:"safetyAnalysis"`
	RecommendedActions        []string `json:"recommendedActions"`
	AlternativeJobSuggestions []string `json:"alternativeJobSuggestions"`
	ConfidenceLevel           int      `json:"confidenceLevel"`
}

// Record - 1件の分析結果（保存/返却の単位）
//
// 保存しない場合はIDが "temp-<epochMillis>" になり、SavedToHistoryはfalse。
type Record struct {
	ID             string  `json:"id"`
	Timestamp      string  `json:"timestamp"`
	JobDescription string  `json:"jobDescription"`
	AnalysisResult Verdict `json:"analysisResult"`
	SavedToHistory bool    `json:"savedToHistory"`
}

// AnalyzeRequest - POST /api/v1/analyze リクエスト
type AnalyzeRequest struct {
	JobDescription string `json:"jobDescription"`
	SaveToHistory  bool   `json:"saveToHistory"`
}

// ListOptions - 履歴取得のソート/フィルタ条件
type ListOptions struct {
	SortBy    string // created_at | safety_score
	SortOrder string // asc | desc
	Filter    string // all | safe | unsafe
	Limit     int
}

// CompareRequest - POST /api/v1/compare リクエスト
type CompareRequest struct {
	JobDescriptions []string `json:"jobDescriptions"`
}

// CompareResponse - 複数求人の一括分析結果
type CompareResponse struct {
	Results []Record `json:"results"`
}

// ScrapeRequest - POST /api/v1/scrape リクエスト
type ScrapeRequest struct {
	URL string `json:"url"`
}

// ScrapeResponse - スクレイピング結果
type ScrapeResponse struct {
	JobDescription string `json:"jobDescription"`
}

// OCRResponse - 画像からのテキスト抽出結果
type OCRResponse struct {
	Text       string `json:"text"`
	Confidence int    `json:"confidence"`
}

// SimilarAnalysis - 類似求人検索の1件
type SimilarAnalysis struct {
	Record   Record  `json:"record"`
	Distance float64 `json:"distance"`
}

// SimilarResponse - 類似求人検索結果
type SimilarResponse struct {
	Status  string            `json:"status"`
	Results []SimilarAnalysis `json:"results"`
}
