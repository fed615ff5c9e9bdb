package db

import "github.com/baitoguard/backend/internal/model"

// fixtureRecords - メモリストアの初期データ。安全/危険/非常に危険の3件
func fixtureRecords() []model.Record {
	return []model.Record{
		{
			ID:             "fixture-1",
			Timestamp:      "2025-03-25T10:30:00Z",
			JobDescription: "都内オフィスでの一般事務のアルバイトです。時給1,200円、交通費支給。勤務時間は平日10時〜17時。書類整理やデータ入力が主な業務です。社会保険完備、研修制度あり。正社員登用制度もあります。",
			AnalysisResult: model.Verdict{
				IsSafe:            true,
				SafetyScore:       95,
				WarningFlags:      []string{},
				ReasonsForConcern: []string{},
				LegalIssues:       []string{},
				RedFlags:          model.RedFlags{},
				SafetyAnalysis:    "この求人は安全な正規のアルバイトと判断されます。時給1,200円は都内の一般事務の相場として適切な範囲内です。勤務時間や業務内容が明確に記載されており、社会保険完備や研修制度、正社員登用制度などの福利厚生も提示されています。特に懸念される点は見当たりません。",
				RecommendedActions: []string{
					"応募前に企業の公式サイトを確認する",
					"面接時に具体的な業務内容や勤務条件を確認する",
					"労働契約書の内容をしっかり確認する",
				},
				AlternativeJobSuggestions: []string{},
				ConfidenceLevel:           95,
			},
			SavedToHistory: true,
		},
		{
			ID:             "fixture-2",
			Timestamp:      "2025-03-24T15:45:00Z",
			JobDescription: "簡単作業で日給3万円保証！ノルマなし、即日払いOK。身分証のみで即採用。内容は当日説明します。LINE登録で詳細をお伝えします。学生・フリーター大歓迎！シフト自由！",
			AnalysisResult: model.Verdict{
				IsSafe:      false,
				SafetyScore: 20,
				WarningFlags: []string{
					"非現実的に高い報酬が提示されています",
					"仕事内容が明確に説明されていません",
					"応募前にLINE登録を求めています",
					"身分証のみで即採用という不自然な採用プロセス",
				},
				ReasonsForConcern: []string{
					"日給3万円という高額報酬は一般的なアルバイトとしては非現実的",
					"仕事内容が事前に説明されず、「当日説明」とされている",
					"公式の採用プロセスではなくLINE登録を求めている",
				},
				LegalIssues: []string{
					"労働基準法に基づく労働条件の明示義務に違反している可能性",
					"適切な雇用契約を結ばない「闇バイト」の可能性",
				},
				RedFlags: model.RedFlags{
					UnrealisticPay:         true,
					LackOfCompanyInfo:      true,
					RequestForPersonalInfo: true,
					UnclearJobDescription:  true,
				},
				SafetyAnalysis: "この求人は複数の危険信号を示しており、闇バイトである可能性が高いです。日給3万円という報酬は一般的なアルバイトとしては非常に高額で、通常の労働では得られない水準です。また、仕事内容が事前に明示されておらず「当日説明」とされている点は、労働条件明示義務に違反している可能性があります。これらの特徴は、違法な活動や搾取的な労働環境に関連する「闇バイト」の典型的な特徴と一致します。",
				RecommendedActions: []string{
					"この求人には応募しないことを強く推奨します",
					"同様の求人を見つけた場合は労働基準監督署に報告することを検討してください",
					"安全な求人を探すには公式の求人サイトや人材紹介会社を利用してください",
				},
				AlternativeJobSuggestions: []string{
					"公式の求人サイト（ハローワーク、リクナビなど）で同様の職種を探す",
					"信頼できる人材派遣会社に登録する",
				},
				ConfidenceLevel: 90,
			},
			SavedToHistory: true,
		},
		{
			ID:             "fixture-3",
			Timestamp:      "2025-03-23T20:15:00Z",
			JobDescription: "夜のお客様と会話するだけの簡単なお仕事。時給5000円以上可能。容姿に自信のある方優遇。身バレ防止対策あり。ノンアダルト・ノンタッチ。即日勤務可能。出勤自由。",
			AnalysisResult: model.Verdict{
				IsSafe:      false,
				SafetyScore: 5,
				WarningFlags: []string{
					"非現実的に高い時給が提示されています",
					"「身バレ防止」「ノンアダルト」などの不審な表現が使用されています",
					"「容姿に自信のある方優遇」という採用基準は不適切です",
				},
				ReasonsForConcern: []string{
					"時給5000円以上という非現実的な高額報酬",
					"「身バレ防止」という表現は違法または社会的に問題のある活動を示唆",
					"「容姿」による採用基準は差別的で不適切",
				},
				LegalIssues: []string{
					"風営法（風俗営業等の規制及び業務の適正化等に関する法律）に違反している可能性",
					"労働基準法違反の可能性",
				},
				RedFlags: model.RedFlags{
					UnrealisticPay:        true,
					LackOfCompanyInfo:     true,
					UnclearJobDescription: true,
					IllegalActivity:       true,
				},
				SafetyAnalysis: "この求人は明らかに危険な「闇バイト」の特徴を多く示しています。時給5000円という非現実的な高額報酬、「身バレ防止」「ノンアダルト・ノンタッチ」などの不審な表現、曖昧な仕事内容など、多くの危険信号が含まれています。労働者の安全や権利が守られない環境で、法的リスクや個人的なリスクが非常に高いと考えられます。",
				RecommendedActions: []string{
					"この求人には絶対に応募しないでください",
					"同様の求人を見つけた場合は警察や労働基準監督署に報告することを検討してください",
				},
				AlternativeJobSuggestions: []string{
					"公式の求人サイトや人材紹介会社を通じた求人を探してみてください",
				},
				ConfidenceLevel: 95,
			},
			SavedToHistory: true,
		},
	}
}
