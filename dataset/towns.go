package dataset

const surveySource = "EOHLC Survey Feb 2026"

// Towns is the statewide permit survey table, one row per municipality,
// keyed by slug. Rates are approved/submitted to one decimal; towns that
// did not respond to the survey carry zero permit counts.
var Towns = []TownPermitProfile{
	{
		Slug: "arlington", Name: "Arlington", County: "Middlesex",
		Population: 46204, SingleFamilyParcels: 7900,
		Submitted: 18, Approved: 12, Denied: 1, Pending: 5, ApprovalRate: 66.7,
		ByRight: true, Responded: true,
		AvgRent: 2600, MedianHome: 850000,
		Source: surveySource,
		Notes:  "Active ADU adoption with strong community support.",
	},
	{
		Slug: "boston", Name: "Boston", County: "Suffolk",
		Population: 675647, SingleFamilyParcels: 28400,
		Submitted: 48, Approved: 31, Denied: 5, Pending: 12, ApprovalRate: 64.6,
		ByRight: true, Responded: true,
		AvgRent: 3400, MedianHome: 790000,
		Source: surveySource,
		Notes:  "City ADU program predates Chapter 150; permit rows mirrored from the building portal.",
	},
	{
		Slug: "brookline", Name: "Brookline", County: "Norfolk",
		Population: 63191, SingleFamilyParcels: 5400,
		Submitted: 25, Approved: 19, Denied: 2, Pending: 4, ApprovalRate: 76.0,
		ByRight: true, Responded: true,
		AvgRent: 3100, MedianHome: 1350000,
		Source: surveySource,
	},
	{
		Slug: "cambridge", Name: "Cambridge", County: "Middlesex",
		Population: 118403, SingleFamilyParcels: 3800,
		Submitted: 31, Approved: 22, Denied: 3, Pending: 6, ApprovalRate: 71.0,
		ByRight: true, Responded: true,
		AvgRent: 3200, MedianHome: 1050000,
		Source: surveySource,
	},
	{
		Slug: "canton", Name: "Canton", County: "Norfolk",
		Population: 24370,
		Submitted:  7, Approved: 4, Denied: 1, Pending: 2, ApprovalRate: 57.1,
		ByRight: false, Responded: true,
		AvgRent: 2500, MedianHome: 710000,
		Source: surveySource,
	},
	{
		Slug: "duxbury", Name: "Duxbury", County: "Plymouth",
		Population: 16090,
		Submitted:  3, Approved: 1, Denied: 1, Pending: 1, ApprovalRate: 33.3,
		ByRight: false, Responded: true,
		MedianHome: 980000,
		Source:     surveySource,
		Notes:      "Low volume; special-permit process still on the books.",
	},
	{
		Slug: "framingham", Name: "Framingham", County: "Middlesex",
		Population: 72362,
		Submitted:  9, Approved: 6, Denied: 1, Pending: 2, ApprovalRate: 66.7,
		ByRight: true, Responded: true,
		AvgRent: 2200, MedianHome: 580000,
		Source: surveySource,
	},
	{
		Slug: "leicester", Name: "Leicester", County: "Worcester",
		Population: 11087,
		Submitted:  5, Approved: 2, Denied: 2, Pending: 1, ApprovalRate: 40.0,
		ByRight: false, Responded: true,
		MedianHome: 420000,
		Source:     surveySource,
		Notes:      "Three bylaw provisions formally disapproved by the AG in May 2025.",
	},
	{
		Slug: "marshfield", Name: "Marshfield", County: "Plymouth",
		Population: 25841,
		Submitted:  6, Approved: 4, Denied: 0, Pending: 2, ApprovalRate: 66.7,
		ByRight: true, Responded: true,
		AvgRent: 2300, MedianHome: 640000,
		Source: surveySource,
	},
	{
		Slug: "nantucket", Name: "Nantucket", County: "Nantucket",
		Population: 14255,
		Submitted:  27, Approved: 27, Denied: 0, Pending: 0, ApprovalRate: 100.0,
		ByRight: true, Responded: true,
		MedianHome: 2100000,
		Source:     surveySource,
		Notes:      "Long-standing ADU program; highest per-capita production in the state.",
	},
	{
		Slug: "needham", Name: "Needham", County: "Norfolk",
		Population: 32091,
		Submitted:  4, Approved: 3, Denied: 1, Pending: 0, ApprovalRate: 75.0,
		ByRight: false, Responded: true,
		AvgRent: 2900, MedianHome: 1150000,
		Source: surveySource,
		Notes:  "Roughly a dozen ADUs permitted in the three years before Chapter 150.",
	},
	{
		Slug: "newton", Name: "Newton", County: "Middlesex",
		Population: 88923, SingleFamilyParcels: 17800,
		Submitted: 16, Approved: 11, Denied: 2, Pending: 3, ApprovalRate: 68.8,
		ByRight: true, Responded: true,
		AvgRent: 3000, MedianHome: 1250000,
		Source: surveySource,
		Notes:  "Ordinance revised April 2025 after council review.",
	},
	{
		Slug: "plymouth", Name: "Plymouth", County: "Plymouth",
		Population: 61217,
		Submitted:  42, Approved: 34, Denied: 8, Pending: 0, ApprovalRate: 81.0,
		ByRight: true, Responded: true,
		AvgRent: 2100, MedianHome: 560000,
		Source: surveySource,
	},
	{
		Slug: "quincy", Name: "Quincy", County: "Norfolk",
		Population: 101636,
		Submitted:  20, Approved: 15, Denied: 2, Pending: 3, ApprovalRate: 75.0,
		ByRight: true, Responded: true,
		AvgRent: 2400, MedianHome: 620000,
		Source: surveySource,
	},
	{
		Slug: "revere", Name: "Revere", County: "Suffolk",
		Population: 62186,
		Submitted:  10, Approved: 7, Denied: 1, Pending: 2, ApprovalRate: 70.0,
		ByRight: true, Responded: true,
		AvgRent: 2500, MedianHome: 560000,
		Source: surveySource,
		Notes:  "Council filed a home-rule petition seeking relief from the state ordinance mandate.",
	},
	{
		Slug: "salem", Name: "Salem", County: "Essex",
		Population: 44480,
		Submitted:  8, Approved: 5, Denied: 1, Pending: 2, ApprovalRate: 62.5,
		ByRight: true, Responded: true,
		AvgRent: 2100, MedianHome: 560000,
		Source: surveySource,
	},
	{
		Slug: "somerville", Name: "Somerville", County: "Middlesex",
		Population: 81360, SingleFamilyParcels: 4100,
		Submitted: 14, Approved: 10, Denied: 1, Pending: 3, ApprovalRate: 71.4,
		ByRight: true, Responded: true,
		AvgRent: 2800, MedianHome: 880000,
		Source: surveySource,
	},
	{
		Slug: "sudbury", Name: "Sudbury", County: "Middlesex",
		Population: 18934,
		Submitted:  6, Approved: 3, Denied: 2, Pending: 1, ApprovalRate: 50.0,
		ByRight: false, Responded: true,
		MedianHome: 1050000,
		Source:     surveySource,
		Notes:      "AG disapproved three provisions of the 2025 town meeting bylaw.",
	},
	{
		Slug: "upton", Name: "Upton", County: "Worcester",
		Population: 8090,
		Submitted:  0, Approved: 0, Denied: 0, Pending: 0, ApprovalRate: 0,
		ByRight: false, Responded: false,
		Source: surveySource,
		Notes:  "No survey response on file.",
	},
	{
		Slug: "weston", Name: "Weston", County: "Middlesex",
		Population: 11851,
		Submitted:  2, Approved: 0, Denied: 1, Pending: 1, ApprovalRate: 0,
		ByRight: false, Responded: true,
		MedianHome: 1900000,
		Source:     surveySource,
		Notes:      "No approvals on record since Chapter 150 took effect.",
	},
	{
		Slug: "worcester", Name: "Worcester", County: "Worcester",
		Population: 206518,
		Submitted:  35, Approved: 28, Denied: 3, Pending: 4, ApprovalRate: 80.0,
		ByRight: true, Responded: true,
		AvgRent: 1600, MedianHome: 370000,
		Source: surveySource,
	},
}
