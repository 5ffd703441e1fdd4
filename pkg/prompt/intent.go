package prompt

// Intent — подсказка о цели пользователя, выбирающая дополнительный блок
// инструкций. Закрытое перечисление: отсутствие подсказки — полноценный
// вариант, а не пустая строка.
type Intent int

const (
	IntentNone Intent = iota
	IntentInvestment
	IntentResidence
	IntentShortStay
)

// ParseIntent maps the wire tag to an Intent. Unknown tags mean no guidance.
func ParseIntent(tag string) Intent {
	switch tag {
	case "investment":
		return IntentInvestment
	case "residence":
		return IntentResidence
	case "short_term_rental":
		return IntentShortStay
	default:
		return IntentNone
	}
}

func (i Intent) String() string {
	switch i {
	case IntentInvestment:
		return "investment"
	case IntentResidence:
		return "residence"
	case IntentShortStay:
		return "short_term_rental"
	default:
		return "none"
	}
}

// guidance returns the intent-specific fragment, empty for IntentNone.
func (i Intent) guidance() string {
	switch i {
	case IntentInvestment:
		return `## 投資目的の相談です
利回り・将来性・リスクを中心に説明してください。販売価格と想定収益から表面利回りの目安を示し、根拠となるデータを必ず添えてください。`
	case IntentResidence:
		return `## 居住目的の相談です
住み心地を中心に説明してください。アクセス・物件の状態・築年月・周辺環境を重視し、リフォームの必要性が読み取れる場合は率直に伝えてください。`
	case IntentShortStay:
		return `## 民泊運営目的の相談です
AirDNAの民泊分析データ(稼働率・ADR・RevPAR・年間売上予測)を中心に説明してください。データのない物件については民泊向きかどうか断定しないでください。`
	default:
		return ""
	}
}
