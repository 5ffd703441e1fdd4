package listing

// Property описывает одно объявление каталога недвижимости. Все атрибуты
// опциональны: провайдер данных не навязывает строкам никакой схемы.
type Property struct {
	ID string

	Name       *string
	Prefecture *string
	City       *string
	Street     *string

	// Asking price in yen.
	Price *float64

	// Square meters.
	LandArea     *float64
	BuildingArea *float64

	BuiltAt       *string
	Structure     *string
	Zoning        *string
	CityPlanning  *string
	Access        *string
	Condition     *string
	CoverageRatio *string

	// Short-term-rental market analytics (AirDNA feed). Populated together
	// in practice, but nothing enforces that.
	AirdnaArea          *string
	AirdnaListingCount  *int
	AirdnaOccupancy     *float64
	AirdnaADR           *float64
	AirdnaRevPAR        *float64
	AirdnaAnnualRevenue *float64
	AirdnaSurveyedAt    *string
	AirdnaRemarks       *string
}
