package dataset

// TownPermitProfile is one row of the EOHLC ADU permit survey. The slug is
// the unique key; every page and subcommand resolves towns through this one
// table so the same town never carries two different figures.
type TownPermitProfile struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	County     string `json:"county"`
	Population int    `json:"population"`

	// SingleFamilyParcels is an assessor estimate; 0 means unknown.
	SingleFamilyParcels int `json:"singleFamilyParcels,omitempty"`

	Submitted int `json:"submitted"`
	Approved  int `json:"approved"`
	Denied    int `json:"denied"`
	Pending   int `json:"pending"`

	// ApprovalRate is approved/submitted as a percentage, one decimal,
	// 0 when the town has no submissions.
	ApprovalRate float64 `json:"approvalRate"`

	ByRight   bool `json:"byRight"`
	Responded bool `json:"responded"`

	// AvgRent and MedianHome are dollar figures; 0 means unknown.
	AvgRent    int `json:"avgRent,omitempty"`
	MedianHome int `json:"medianHome,omitempty"`

	Source string `json:"source"`
	Notes  string `json:"notes,omitempty"`
}

// ComplianceStatus classifies one bylaw provision against state law.
type ComplianceStatus string

const (
	StatusInconsistent ComplianceStatus = "inconsistent"
	StatusReview       ComplianceStatus = "review"
	StatusCompliant    ComplianceStatus = "compliant"
)

// Statuses lists every ComplianceStatus value.
var Statuses = []ComplianceStatus{StatusInconsistent, StatusReview, StatusCompliant}

// ProvisionCategory groups provisions by regulatory topic.
type ProvisionCategory string

const (
	CategoryUseOccupancy   ProvisionCategory = "Use & Occupancy"
	CategoryDimensional    ProvisionCategory = "Dimensional & Parking"
	CategoryBuildingSafety ProvisionCategory = "Building & Safety"
	CategoryProcess        ProvisionCategory = "Process & Administration"
)

// Categories lists every ProvisionCategory value in display order.
var Categories = []ProvisionCategory{
	CategoryUseOccupancy,
	CategoryDimensional,
	CategoryBuildingSafety,
	CategoryProcess,
}

// Citation is a labeled source link for a provision analysis.
type Citation struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ComplianceProvision is one discrete rule in a town's ADU bylaw compared
// against the relevant state statute or regulation.
type ComplianceProvision struct {
	ID         string            `json:"id"`
	Provision  string            `json:"provision"`
	Category   ProvisionCategory `json:"category"`
	Status     ComplianceStatus  `json:"status"`
	StateLaw   string            `json:"stateLaw"`
	LocalBylaw string            `json:"localBylaw"`
	Impact     string            `json:"impact"`

	// AGDecision cites a formal Attorney General disapproval, when one
	// exists for this provision.
	AGDecision string     `json:"agDecision,omitempty"`
	Citations  []Citation `json:"citations,omitempty"`
}

// MunicipalityType distinguishes towns (bylaws, AG review) from cities
// (ordinances, no AG review).
type MunicipalityType string

const (
	MunicipalityTown MunicipalityType = "town"
	MunicipalityCity MunicipalityType = "city"
)

// PermitSummary is the permit sub-record attached to a compliance profile.
type PermitSummary struct {
	Submitted    int     `json:"submitted"`
	Approved     int     `json:"approved"`
	Denied       int     `json:"denied"`
	Pending      int     `json:"pending"`
	ApprovalRate float64 `json:"approvalRate"`
}

// TownComplianceProfile is the bylaw analysis for one community: metadata,
// the AG disapproval count, a permit sub-record, and the ordered provision
// list. Provisions have no life outside their profile.
type TownComplianceProfile struct {
	Slug       string           `json:"slug"`
	Name       string           `json:"name"`
	County     string           `json:"county"`
	Population int              `json:"population"`
	Type       MunicipalityType `json:"municipalityType"`

	LastReviewed string `json:"lastReviewed"`
	BylawSource  string `json:"bylawSource"`

	AGDisapprovals int                   `json:"agDisapprovals"`
	Permits        PermitSummary         `json:"permits"`
	Provisions     []ComplianceProvision `json:"provisions"`
}

// ProductionRecord is one town's row in the statewide housing-production
// survey. Lat/Lng of 0,0 means no coordinates are known.
type ProductionRecord struct {
	Name         string  `json:"name"`
	MuniID       int     `json:"muni_id"`
	Applications int     `json:"applications"`
	Approved     int     `json:"approved"`
	Rejected     int     `json:"rejected"`
	DetachedApps int     `json:"detached_apps"`
	AttachedApps int     `json:"attached_apps"`
	Lat          float64 `json:"lat,omitempty"`
	Lng          float64 `json:"lng,omitempty"`
}

// PortalPermit is one permit row scraped from a municipal building portal.
// Dates are kept as published (M/D/YY); empty string means not yet issued.
type PortalPermit struct {
	Permit     string `json:"permit"`
	Address    string `json:"address"`
	Applied    string `json:"applied"`
	Issued     string `json:"issued"`
	Status     string `json:"status"`
	Cost       int    `json:"cost"`
	SqFt       int    `json:"sqft"`
	Type       string `json:"type"`
	Contractor string `json:"contractor"`
	Notes      string `json:"notes"`
}
