package insight

// Result shapes returned to the conversational layer. JSON keys are part of
// the tool-call contract and must not be renamed; the agent prompts refer to
// them verbatim. All leaves are portable float64/int64/string values.

// ProductContext aggregates one product over one reporting window.
// Totals and averages are rounded to 2 decimal places.
type ProductContext struct {
	ProductID                string   `json:"Product ID"`
	StoreID                  string   `json:"Store ID"`
	Year                     int      `json:"Year"`
	Month                    string   `json:"Month"`
	ProductName              string   `json:"Product Name"`
	Category                 string   `json:"Category"`
	Regions                  []string `json:"Regions"`
	InventoryLevelTotal      float64  `json:"Inventory Level (Total)"`
	UnitsSoldTotal           float64  `json:"Units Sold (Total)"`
	UnitsOrderedTotal        float64  `json:"Units Ordered (Total)"`
	AveragePrice             float64  `json:"Average Price"`
	AverageDiscount          float64  `json:"Average Discount"`
	AverageCompetitorPricing float64  `json:"Average Competitor Pricing"`
	MostCommonWeather        string   `json:"Most Common Weather Condition"`
	MostCommonSeasonality    string   `json:"Most Common Seasonality"`
}

// CategoryContext aggregates one category over one reporting window.
// The three unit totals are truncated integers, unlike the product family's
// 2-decimal floats. The asymmetry is part of the contract.
type CategoryContext struct {
	Category                 string   `json:"Category"`
	StoreID                  string   `json:"Store ID"`
	Year                     int      `json:"Year"`
	Month                    string   `json:"Month"`
	TotalStores              int      `json:"Total Stores"`
	TotalProducts            int      `json:"Total Products"`
	AveragePrice             float64  `json:"Average Price"`
	AverageDiscount          float64  `json:"Average Discount"`
	TotalUnitsSold           int64    `json:"Total Units Sold"`
	TotalUnitsOrdered        int64    `json:"Total Units Ordered"`
	TotalInventory           int64    `json:"Total Inventory"`
	AverageCompetitorPricing float64  `json:"Average Competitor Pricing"`
	MostCommonWeather        string   `json:"Most Common Weather Condition"`
	MostCommonSeasonality    string   `json:"Most Common Seasonality"`
	DistinctRegions          []string `json:"Distinct Regions"`
}

// CategoryDetail is one per-category row inside an overall summary.
// All numeric metrics here are 2-decimal floats, including the unit totals.
type CategoryDetail struct {
	Category                 string  `json:"Category"`
	UniqueProducts           int     `json:"Unique Products"`
	StoresCount              int     `json:"Stores Count"`
	TotalUnitsSold           float64 `json:"Total Units Sold"`
	TotalUnitsOrdered        float64 `json:"Total Units Ordered"`
	TotalInventory           float64 `json:"Total Inventory"`
	AveragePrice             float64 `json:"Average Price"`
	AverageDiscount          float64 `json:"Average Discount"`
	AverageCompetitorPricing float64 `json:"Average Competitor Pricing"`
}

// OverallSummary aggregates the whole dataset over one reporting window,
// grouped by category. TotalUniqueProducts counts distinct products across
// the entire dataset rather than the window; see DESIGN.md.
type OverallSummary struct {
	Year                int              `json:"Year"`
	Month               string           `json:"Month"`
	Scope               string           `json:"Scope"`
	TotalCategories     int              `json:"Total Categories"`
	TotalUniqueProducts int              `json:"Total Unique Products"`
	OverallUnitsSold    float64          `json:"Overall Units Sold"`
	OverallUnitsOrdered float64          `json:"Overall Units Ordered"`
	OverallInventory    float64          `json:"Overall Inventory"`
	CategoryDetails     []CategoryDetail `json:"Category Details"`
}

// ProductParameters echoes the resolved arguments of a product comparison.
type ProductParameters struct {
	ProductID      string `json:"Product ID"`
	ProductName    string `json:"Product Name"`
	StoreID        string `json:"Store ID"`
	Month          string `json:"Month"`
	CurrentYear    int    `json:"Current Year"`
	ComparisonYear int    `json:"Comparison Year"`
}

// CategoryParameters echoes the resolved arguments of a category comparison.
type CategoryParameters struct {
	Category       string `json:"Category"`
	StoreID        string `json:"Store ID"`
	Month          string `json:"Month"`
	CurrentYear    int    `json:"Current Year"`
	ComparisonYear int    `json:"Comparison Year"`
}

// SummaryParameters echoes the resolved arguments of an overall summary.
type SummaryParameters struct {
	Month          string `json:"Month"`
	CurrentYear    int    `json:"Current Year"`
	ComparisonYear int    `json:"Comparison Year"`
	StoreID        string `json:"Store ID"`
}

// ProductComparison is the year-over-year result for one product.
type ProductComparison struct {
	Current    PeriodOutcome[ProductContext] `json:"Current Year Context"`
	Previous   PeriodOutcome[ProductContext] `json:"Last Year Context"`
	Parameters ProductParameters             `json:"Parameters Used"`
}

// CategoryComparison is the year-over-year result for one category.
type CategoryComparison struct {
	Current    PeriodOutcome[CategoryContext] `json:"Current Year Context"`
	Previous   PeriodOutcome[CategoryContext] `json:"Last Year Context"`
	Parameters CategoryParameters             `json:"Parameters Used"`
}

// SummaryComparison is the year-over-year result for the whole dataset.
type SummaryComparison struct {
	Current    PeriodOutcome[OverallSummary] `json:"Current Year Summary"`
	Previous   PeriodOutcome[OverallSummary] `json:"Last Year Summary"`
	Parameters SummaryParameters             `json:"Parameters Used"`
}
