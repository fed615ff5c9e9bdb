// 求人ページのコンテンツソース
//
// 現状は実スクレイピングではなく、ドメイン部分一致で決定的な
// 求人テキストを返すモック実装。固定文面はAnalyzerConfigの
// scrape_fixturesで差し替え・追加できる。
package client

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

type fixture struct {
	key  string
	text string
}

// defaultFixtures - ドメイン部分一致キー→求人テキスト
//
// 先頭から順に評価する。複数キーに一致するホストでも常に同じ文面を
// 返すよう、優先順はこの並びで固定。
var defaultFixtures = []fixture{
	{"indeed", "【Indeed】東京都内のオフィスワーク。時給1,300円、交通費支給。週3日から勤務可能。データ入力や書類整理などの一般事務業務。未経験者歓迎、研修制度あり。社会保険完備。"},
	{"townwork", "【タウンワーク】カフェスタッフ募集！時給1,050円〜、シフト制、週2日〜OK。接客、ドリンク作り、レジ対応など。学生・フリーター歓迎。まかない付き、交通費一部支給。"},
	{"baito", "【バイトル】コンビニスタッフ大募集！時給1,100円〜、深夜手当あり。レジ打ち、品出し、清掃など。未経験者歓迎、研修あり。シフト相談可能、学生・フリーター活躍中。"},
	{"wantedly", "【Wantedly】ITベンチャー企業でのマーケティングインターン募集。週3日〜、リモートワーク可。SNS運用、コンテンツ制作、データ分析など。実務経験を積みたい学生歓迎。交通費支給、社員登用の可能性あり。"},
	{"suspicious", "【急募】簡単作業で日給3万円保証！ノルマなし、即日払いOK。身分証のみで即採用。内容は当日説明します。LINE登録で詳細をお伝えします。学生・フリーター大歓迎！シフト自由！"},
}

// defaultJobDescription - どのキーにも一致しない場合の文面
const defaultJobDescription = "一般事務のアルバイト募集。時給1,200円、交通費支給。勤務時間は平日10時〜17時。書類整理やデータ入力が主な業務です。未経験者歓迎、研修制度あり。週3日から勤務可能、シフト相談可。社会保険完備、正社員登用制度あり。"

type Scraper struct {
	fixtures []fixture
}

// NewScraper - extraのエントリは既定の固定文面に対して上書き・追加になる
//
// 同名キーは既定の位置のまま文面だけ差し替え、新規キーはキーの辞書順で
// 既定の後ろに並べる。評価順が入力に依らないようにするため。
func NewScraper(extra map[string]string) *Scraper {
	fixtures := make([]fixture, len(defaultFixtures))
	copy(fixtures, defaultFixtures)

	normalized := make(map[string]string, len(extra))
	for key, text := range extra {
		if key = strings.ToLower(strings.TrimSpace(key)); key != "" {
			normalized[key] = text
		}
	}
	keys := make([]string, 0, len(normalized))
	for key := range normalized {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		replaced := false
		for i := range fixtures {
			if fixtures[i].key == key {
				fixtures[i].text = normalized[key]
				replaced = true
				break
			}
		}
		if !replaced {
			fixtures = append(fixtures, fixture{key: key, text: normalized[key]})
		}
	}
	return &Scraper{fixtures: fixtures}
}

// FetchJobDescription - URLのホスト名に一致する固定文面を返す
func (s *Scraper) FetchJobDescription(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("invalid url: %q", rawURL)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	host := strings.ToLower(parsed.Hostname())
	for _, f := range s.fixtures {
		if strings.Contains(host, f.key) {
			return f.text, nil
		}
	}
	return defaultJobDescription, nil
}
