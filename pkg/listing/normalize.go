package listing

import (
	"math"

	"github.com/akiyanavi/concierge/pkg/notion"
)

// Provider-side property names. The database is maintained in Japanese.
const (
	fieldName          = "物件名"
	fieldPrefecture    = "都道府県"
	fieldCity          = "市区町村"
	fieldStreet        = "町名番地"
	fieldPrice         = "販売価格"
	fieldLandArea      = "土地面積㎡"
	fieldBuildingArea  = "建物面積㎡"
	fieldBuiltAt       = "築年月"
	fieldStructure     = "構造"
	fieldZoning        = "用途地域"
	fieldCityPlanning  = "都市計画"
	fieldAccess        = "アクセス"
	fieldCondition     = "物件の状態"
	fieldCoverageRatio = "建ぺい率/容積率"

	fieldAirdnaArea          = "AirDNA_対象エリア"
	fieldAirdnaListingCount  = "AirDNA_リスティング数"
	fieldAirdnaOccupancy     = "AirDNA_稼働率"
	fieldAirdnaADR           = "AirDNA_ADR"
	fieldAirdnaRevPAR        = "AirDNA_RevPAR"
	fieldAirdnaAnnualRevenue = "AirDNA_年間売上予測"
	fieldAirdnaSurveyedAt    = "AirDNA_調査日"
	fieldAirdnaRemarks       = "AirDNA_備考"
)

// Normalize приводит строки базы провайдера к внутреннему виду, one-to-one
// и с сохранением порядка. Отсутствующие или чужого типа поля дают nil,
// ошибок здесь не бывает.
func Normalize(pages []notion.Page) []Property {
	out := make([]Property, 0, len(pages))
	for _, p := range pages {
		out = append(out, FromPage(p))
	}
	return out
}

// FromPage extracts every known field from one raw page.
func FromPage(p notion.Page) Property {
	props := p.Properties
	return Property{
		ID:            p.ID,
		Name:          props[fieldName].PlainText(),
		Prefecture:    props[fieldPrefecture].SelectName(),
		City:          props[fieldCity].PlainText(),
		Street:        props[fieldStreet].PlainText(),
		Price:         props[fieldPrice].NumberValue(),
		LandArea:      props[fieldLandArea].NumberValue(),
		BuildingArea:  props[fieldBuildingArea].NumberValue(),
		BuiltAt:       props[fieldBuiltAt].DateStart(),
		Structure:     props[fieldStructure].SelectName(),
		Zoning:        props[fieldZoning].SelectName(),
		CityPlanning:  props[fieldCityPlanning].SelectName(),
		Access:        props[fieldAccess].PlainText(),
		Condition:     props[fieldCondition].SelectName(),
		CoverageRatio: props[fieldCoverageRatio].PlainText(),

		AirdnaArea:          props[fieldAirdnaArea].PlainText(),
		AirdnaListingCount:  asCount(props[fieldAirdnaListingCount].NumberValue()),
		AirdnaOccupancy:     props[fieldAirdnaOccupancy].NumberValue(),
		AirdnaADR:           props[fieldAirdnaADR].NumberValue(),
		AirdnaRevPAR:        props[fieldAirdnaRevPAR].NumberValue(),
		AirdnaAnnualRevenue: props[fieldAirdnaAnnualRevenue].NumberValue(),
		AirdnaSurveyedAt:    props[fieldAirdnaSurveyedAt].DateStart(),
		AirdnaRemarks:       props[fieldAirdnaRemarks].PlainText(),
	}
}

func asCount(n *float64) *int {
	if n == nil {
		return nil
	}
	c := int(math.Round(*n))
	return &c
}
