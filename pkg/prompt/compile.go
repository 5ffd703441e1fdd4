package prompt

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/akiyanavi/concierge/pkg/listing"
)

// NoDataSentence выводится вместо каталога, когда в базе нет ни одного объекта.
const NoDataSentence = "物件データがありません。"

var yenPrinter = message.NewPrinter(language.Japanese)

// Catalog разворачивает нормализованные объекты в плоский текстовый блок для
// вставки в системный промпт. Детерминированно: одинаковый вход — одинаковый
// байт в байт выход.
func Catalog(properties []listing.Property) string {
	if len(properties) == 0 {
		return NoDataSentence
	}

	lines := []string{"【登録物件一覧】\n"}

	for i, p := range properties {
		name := "名称未設定"
		if p.Name != nil {
			name = *p.Name
		}
		lines = append(lines, fmt.Sprintf("--- 物件%d: %s ---", i+1, name))

		// Location parts concatenate with no separator, the Japanese way.
		var loc strings.Builder
		for _, part := range []*string{p.Prefecture, p.City, p.Street} {
			if part != nil {
				loc.WriteString(*part)
			}
		}
		if loc.Len() > 0 {
			lines = append(lines, "所在地: "+loc.String())
		}

		if p.Price != nil {
			lines = append(lines, "販売価格: "+formatPrice(*p.Price))
		} else {
			lines = append(lines, "販売価格: 相談")
		}

		if p.LandArea != nil {
			lines = append(lines, fmt.Sprintf("土地面積: %.2f㎡", *p.LandArea))
		}
		if p.BuildingArea != nil {
			lines = append(lines, fmt.Sprintf("建物面積: %.2f㎡", *p.BuildingArea))
		}
		if p.BuiltAt != nil {
			lines = append(lines, "築年月: "+*p.BuiltAt)
		}
		if p.Structure != nil {
			lines = append(lines, "構造: "+*p.Structure)
		}
		if p.Zoning != nil {
			lines = append(lines, "用途地域: "+*p.Zoning)
		}
		if p.CityPlanning != nil {
			lines = append(lines, "都市計画: "+*p.CityPlanning)
		}
		if p.Access != nil {
			lines = append(lines, "アクセス: "+*p.Access)
		}
		if p.Condition != nil {
			lines = append(lines, "状態: "+*p.Condition)
		}

		if p.AirdnaArea != nil || p.AirdnaAnnualRevenue != nil || p.AirdnaOccupancy != nil {
			lines = append(lines, "【AirDNA民泊分析データ】")
			if p.AirdnaArea != nil {
				lines = append(lines, "  対象エリア: "+*p.AirdnaArea)
			}
			if p.AirdnaListingCount != nil {
				lines = append(lines, fmt.Sprintf("  リスティング数: %d件", *p.AirdnaListingCount))
			}
			if p.AirdnaOccupancy != nil {
				lines = append(lines, fmt.Sprintf("  稼働率: %.1f%%", *p.AirdnaOccupancy*100))
			}
			if p.AirdnaADR != nil {
				lines = append(lines, "  ADR(平均日額): "+formatYen(*p.AirdnaADR))
			}
			if p.AirdnaRevPAR != nil {
				lines = append(lines, "  RevPAR: "+formatYen(*p.AirdnaRevPAR))
			}
			if p.AirdnaAnnualRevenue != nil {
				lines = append(lines, "  年間売上予測: "+formatYen(*p.AirdnaAnnualRevenue))
			}
			if p.AirdnaSurveyedAt != nil {
				lines = append(lines, "  調査日: "+*p.AirdnaSurveyedAt)
			}
			if p.AirdnaRemarks != nil {
				lines = append(lines, "  備考: "+*p.AirdnaRemarks)
			}
		}

		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// formatPrice renders yen amounts the way listings are advertised:
// one decimal of 億円 from 1億 up, whole 万円 below that.
func formatPrice(yen float64) string {
	if yen >= 100_000_000 {
		return fmt.Sprintf("%.1f億円", yen/100_000_000)
	}
	return fmt.Sprintf("%d万円", int(math.Round(yen/10_000)))
}

// formatYen renders a yen amount with thousands separators.
func formatYen(yen float64) string {
	return yenPrinter.Sprintf("%d円", int64(math.Round(yen)))
}

// System собирает системный промпт: роль ассистента, необязательный блок по
// цели пользователя, каталог объектов и правила ответа. Пользователь этот
// текст никогда не видит.
func System(catalogText string, intent Intent) string {
	var b strings.Builder

	b.WriteString("あなたは空き家・不動産の販売を支援する専門家アシスタントです。\n\n")

	if g := intent.guidance(); g != "" {
		b.WriteString(g)
		b.WriteString("\n\n")
	}

	b.WriteString("以下の物件データベースを基に、ユーザーの質問に回答してください。\n\n")
	b.WriteString(catalogText)
	b.WriteString("\n\n## 回答ルール\n")
	b.WriteString(`1. 物件データに基づいた正確な情報を提供してください
2. ユーザーの予算や条件に合った物件を提案してください
3. 物件の特徴やメリット・デメリットを専門用語を避けて分かりやすく説明してください
4. 投資物件の場合は、利回りや将来性についても考慮してください
5. データにない情報は「情報がありません」と正直に伝えてください。物件を創作してはいけません
6. 複数の物件を比較する際は表形式で分かりやすく整理してください
7. 日本語で丁寧に回答してください
8. 回答は簡潔に、要点を押さえて
9. 特定の物件について助言する際は、次の具体的なアクションを提案してください`)

	return b.String()
}
