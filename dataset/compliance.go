package dataset

// Source URLs shared across provision citations.
const (
	srcCh150    = "https://malegislature.gov/Laws/SessionLaws/Acts/2024/Chapter150"
	srcCh150S78 = "https://www.mass.gov/info-details/chapter-150-section-7-and-8-of-the-acts-of-2024-adus"
	srcMGL40A3  = "https://malegislature.gov/Laws/GeneralLaws/PartI/TitleVII/Chapter40A/Section3"
	srcCMR71    = "https://www.mass.gov/doc/760-cmr-7100-protected-use-adus-final-version/download"
	srcEOHLCFAQ = "https://www.mass.gov/info-details/accessory-dwelling-unit-adu-faqs"
	srcAGMLU    = "https://massago.onbaseonline.com/Massago/1700PublicAccess/MLU.htm"
)

// ComplianceProfiles holds the hand-researched bylaw analyses, one per
// profiled community. Provisions are ordered: inconsistent first, then
// review, then compliant, matching how they are presented.
var ComplianceProfiles = []TownComplianceProfile{
	{
		Slug: "plymouth", Name: "Plymouth", County: "Plymouth",
		Population: 61217, Type: MunicipalityTown,
		LastReviewed:   "2026-02-15",
		BylawSource:    "Plymouth Zoning Bylaw §205-51",
		AGDisapprovals: 0,
		Permits:        PermitSummary{Submitted: 42, Approved: 34, Denied: 8, Pending: 0, ApprovalRate: 81.0},
		Provisions: []ComplianceProvision{
			{
				ID: "ply-01", Provision: "Owner-Occupancy Requirement",
				Category: CategoryUseOccupancy, Status: StatusInconsistent,
				StateLaw:   "MGL c.40A §3 (as amended by Ch. 150) — towns may not require owner-occupancy for ADUs as a protected use.",
				LocalBylaw: "Plymouth §205-51 requires the property owner to occupy either the principal dwelling or the ADU.",
				Impact:     "Preempted by state law; homeowners may build ADUs regardless of occupancy status.",
				Citations: []Citation{
					{Label: "MGL c.40A §3", URL: srcMGL40A3},
					{Label: "Ch. 150 §§7–8", URL: srcCh150S78},
				},
			},
			{
				ID: "ply-02", Provision: "Bedroom-Based Parking",
				Category: CategoryDimensional, Status: StatusInconsistent,
				StateLaw:   "760 CMR 71.05(2) — parking for an ADU shall not exceed one space.",
				LocalBylaw: "Plymouth requires one space per bedroom, which can exceed the state maximum.",
				Impact:     "The bedroom-based ratio is preempted; parking is capped at one space regardless of bedroom count.",
				Citations:  []Citation{{Label: "760 CMR 71.05(2)", URL: srcCMR71}},
			},
			{
				ID: "ply-03", Provision: "District Scope Limitation",
				Category: CategoryUseOccupancy, Status: StatusInconsistent,
				StateLaw:   "MGL c.40A §3 — ADUs are allowed by right on any lot with a single-family dwelling, in any zoning district.",
				LocalBylaw: "Plymouth limits ADUs to single-family residential districts.",
				Impact:     "Preempted; the protected use applies in every district with a single-family dwelling.",
				Citations: []Citation{
					{Label: "MGL c.40A §3", URL: srcMGL40A3},
					{Label: "EOHLC FAQ", URL: srcEOHLCFAQ},
				},
			},
			{
				ID: "ply-04", Provision: "Design Review / Compatibility",
				Category: CategoryBuildingSafety, Status: StatusReview,
				StateLaw:   "760 CMR 71.05(5) — design standards for detached ADUs must be reasonable and may not effectively prohibit construction.",
				LocalBylaw: "Plymouth requires architectural compatibility including materials, roof pitch, and fenestration.",
				Impact:     "Ambiguous standard; could delay permits if applied subjectively.",
				Citations:  []Citation{{Label: "760 CMR 71.05(5)", URL: srcCMR71}},
			},
			{
				ID: "ply-05", Provision: "Setback Requirements",
				Category: CategoryDimensional, Status: StatusReview,
				StateLaw:   "760 CMR 71.05(1) — setbacks for detached ADUs may not exceed those for principal structures.",
				LocalBylaw: "Plymouth applies principal-structure setbacks plus a 10-foot minimum from the principal dwelling.",
				Impact:     "The separation rule may be reasonable or may exceed state limits on narrow lots.",
				Citations:  []Citation{{Label: "760 CMR 71.05(1)", URL: srcCMR71}},
			},
			{
				ID: "ply-06", Provision: "ADU Size Limits",
				Category: CategoryDimensional, Status: StatusCompliant,
				StateLaw:   "760 CMR 71.05(3) — ADUs must be allowed up to 900 sq ft or 50% of the principal dwelling, whichever is less.",
				LocalBylaw: "Plymouth allows ADUs up to 900 sq ft.",
				Impact:     "Consistent with state law.",
				Citations:  []Citation{{Label: "760 CMR 71.05(3)", URL: srcCMR71}},
			},
			{
				ID: "ply-07", Provision: "By-Right Permitting",
				Category: CategoryProcess, Status: StatusCompliant,
				StateLaw:   "MGL c.40A §3 — conforming ADUs must be allowed by right with no special permit or variance.",
				LocalBylaw: "Plymouth permits conforming ADUs through the building permit process.",
				Impact:     "Consistent with state law.",
				Citations:  []Citation{{Label: "Ch. 150 §8", URL: srcCh150S78}},
			},
		},
	},
	{
		Slug: "nantucket", Name: "Nantucket", County: "Nantucket",
		Population: 14255, Type: MunicipalityTown,
		LastReviewed:   "2026-02-15",
		BylawSource:    "Nantucket Zoning Bylaw §139-16A",
		AGDisapprovals: 0,
		Permits:        PermitSummary{Submitted: 27, Approved: 27, Denied: 0, Pending: 0, ApprovalRate: 100.0},
		Provisions: []ComplianceProvision{
			{
				ID: "nan-01", Provision: "By-Right Permitting",
				Category: CategoryProcess, Status: StatusCompliant,
				StateLaw:   "MGL c.40A §3 — conforming ADUs must be allowed by right.",
				LocalBylaw: "Nantucket has allowed secondary dwellings by right since 1984, predating Chapter 150.",
				Impact:     "Consistent with state law.",
				Citations:  []Citation{{Label: "MGL c.40A §3", URL: srcMGL40A3}},
			},
			{
				ID: "nan-02", Provision: "ADU Size Limits",
				Category: CategoryDimensional, Status: StatusCompliant,
				StateLaw:   "760 CMR 71.05(3) — up to 900 sq ft or 50% of the principal dwelling.",
				LocalBylaw: "Nantucket allows secondary dwellings larger than the state minimum entitlement.",
				Impact:     "More permissive than state law; no inconsistency.",
				Citations:  []Citation{{Label: "760 CMR 71.05(3)", URL: srcCMR71}},
			},
			{
				ID: "nan-03", Provision: "Owner-Occupancy",
				Category: CategoryUseOccupancy, Status: StatusCompliant,
				StateLaw:   "MGL c.40A §3 — no owner-occupancy requirement may be imposed.",
				LocalBylaw: "No owner-occupancy provision in the bylaw.",
				Impact:     "Consistent with state law.",
				Citations:  []Citation{{Label: "Ch. 150 §§7–8", URL: srcCh150S78}},
			},
		},
	},
	{
		Slug: "leicester", Name: "Leicester", County: "Worcester",
		Population: 11087, Type: MunicipalityTown,
		LastReviewed:   "2026-02-15",
		BylawSource:    "Leicester Zoning Bylaw, Article 9 (2025 ATM)",
		AGDisapprovals: 3,
		Permits:        PermitSummary{Submitted: 5, Approved: 2, Denied: 2, Pending: 1, ApprovalRate: 40.0},
		Provisions: []ComplianceProvision{
			{
				ID: "lei-01", Provision: "Owner-Occupancy Requirement",
				Category: CategoryUseOccupancy, Status: StatusInconsistent,
				StateLaw:   "MGL c.40A §3 — towns may not require owner-occupancy for protected-use ADUs.",
				LocalBylaw: "Article 9 required the owner to reside on the property.",
				Impact:     "Formally disapproved; the provision is void and may not be applied.",
				AGDecision: "Disapproved by the Attorney General, Article 9 decision, May 27, 2025.",
				Citations: []Citation{
					{Label: "AG MLU Decision Lookup", URL: srcAGMLU},
					{Label: "MGL c.40A §3", URL: srcMGL40A3},
				},
			},
			{
				ID: "lei-02", Provision: "Special Permit for Detached ADUs",
				Category: CategoryProcess, Status: StatusInconsistent,
				StateLaw:   "MGL c.40A §3 — no special permit may be required for a conforming ADU.",
				LocalBylaw: "Article 9 routed detached ADUs through a special permit from the Planning Board.",
				Impact:     "Formally disapproved; detached ADUs are by right when conforming.",
				AGDecision: "Disapproved by the Attorney General, Article 9 decision, May 27, 2025.",
				Citations:  []Citation{{Label: "AG MLU Decision Lookup", URL: srcAGMLU}},
			},
			{
				ID: "lei-03", Provision: "Minimum Lot Size",
				Category: CategoryDimensional, Status: StatusInconsistent,
				StateLaw:   "760 CMR 71.05(1) — lot-size minimums beyond the underlying district are not permitted.",
				LocalBylaw: "Article 9 imposed a one-acre minimum lot for any ADU.",
				Impact:     "Formally disapproved; the district minimum controls.",
				AGDecision: "Disapproved by the Attorney General, Article 9 decision, May 27, 2025.",
				Citations:  []Citation{{Label: "760 CMR 71.05(1)", URL: srcCMR71}},
			},
			{
				ID: "lei-04", Provision: "Short-Term Rental Restriction",
				Category: CategoryUseOccupancy, Status: StatusReview,
				StateLaw:   "Ch. 150 — towns may restrict short-term rental of ADUs.",
				LocalBylaw: "Leicester bars rentals under 31 days and adds an annual registration fee.",
				Impact:     "The restriction itself is allowed; the fee schedule is a grey area.",
				Citations:  []Citation{{Label: "Ch. 150", URL: srcCh150}},
			},
			{
				ID: "lei-05", Provision: "Building Code Compliance",
				Category: CategoryBuildingSafety, Status: StatusCompliant,
				StateLaw:   "760 CMR 71.05(4) — ADUs must meet the state building code and Title 5.",
				LocalBylaw: "Full code and Title 5 compliance required.",
				Impact:     "Consistent with state law.",
				Citations:  []Citation{{Label: "760 CMR 71.05(4)", URL: srcCMR71}},
			},
		},
	},
	{
		Slug: "sudbury", Name: "Sudbury", County: "Middlesex",
		Population: 18934, Type: MunicipalityTown,
		LastReviewed:   "2026-02-15",
		BylawSource:    "Sudbury Zoning Bylaw, Art. 22 (2025 ATM)",
		AGDisapprovals: 3,
		Permits:        PermitSummary{Submitted: 6, Approved: 3, Denied: 2, Pending: 1, ApprovalRate: 50.0},
		Provisions: []ComplianceProvision{
			{
				ID: "sud-01", Provision: "Owner-Occupancy Requirement",
				Category: CategoryUseOccupancy, Status: StatusInconsistent,
				StateLaw:   "MGL c.40A §3 — no owner-occupancy requirement for protected-use ADUs.",
				LocalBylaw: "The 2025 article required owner occupancy of the principal dwelling.",
				Impact:     "Formally disapproved and void.",
				AGDecision: "Disapproved by the Attorney General, 2025 annual town meeting review.",
				Citations:  []Citation{{Label: "AG MLU Decision Lookup", URL: srcAGMLU}},
			},
			{
				ID: "sud-02", Provision: "Site Plan Review Trigger",
				Category: CategoryProcess, Status: StatusInconsistent,
				StateLaw:   "760 CMR 71.04 — review procedures may not exceed those for a single-family dwelling.",
				LocalBylaw: "Sudbury required full site plan review for every detached ADU.",
				Impact:     "Formally disapproved; only building-permit review applies.",
				AGDecision: "Disapproved by the Attorney General, 2025 annual town meeting review.",
				Citations:  []Citation{{Label: "760 CMR 71.04", URL: srcCMR71}},
			},
			{
				ID: "sud-03", Provision: "Septic Reserve Requirement",
				Category: CategoryBuildingSafety, Status: StatusInconsistent,
				StateLaw:   "760 CMR 71.05(4) — Title 5 governs septic capacity; towns may not add reserve-area mandates.",
				LocalBylaw: "Sudbury required a designated reserve septic area sized for the ADU.",
				Impact:     "Formally disapproved; Title 5 alone controls.",
				AGDecision: "Disapproved by the Attorney General, 2025 annual town meeting review.",
				Citations:  []Citation{{Label: "760 CMR 71.05(4)", URL: srcCMR71}},
			},
			{
				ID: "sud-04", Provision: "Design Review",
				Category: CategoryBuildingSafety, Status: StatusReview,
				StateLaw:   "760 CMR 71.05(5) — reasonable design standards only.",
				LocalBylaw: "Advisory design review by the Historic Districts Commission for ADUs in district buffers.",
				Impact:     "Advisory-only review is likely permissible; mandatory conditions would not be.",
				Citations:  []Citation{{Label: "760 CMR 71.05(5)", URL: srcCMR71}},
			},
			{
				ID: "sud-05", Provision: "ADU Size Limits",
				Category: CategoryDimensional, Status: StatusCompliant,
				StateLaw:   "760 CMR 71.05(3) — 900 sq ft or 50% of the principal dwelling.",
				LocalBylaw: "Sudbury tracks the state maximum exactly.",
				Impact:     "Consistent with state law.",
				Citations:  []Citation{{Label: "760 CMR 71.05(3)", URL: srcCMR71}},
			},
		},
	},
	{
		Slug: "canton", Name: "Canton", County: "Norfolk",
		Population: 24370, Type: MunicipalityTown,
		LastReviewed:   "2026-02-15",
		BylawSource:    "Canton Zoning Bylaw §8.7",
		AGDisapprovals: 1,
		Permits:        PermitSummary{Submitted: 7, Approved: 4, Denied: 1, Pending: 2, ApprovalRate: 57.1},
		Provisions: []ComplianceProvision{
			{
				ID: "can-01", Provision: "Parking Minimum Beyond State Cap",
				Category: CategoryDimensional, Status: StatusInconsistent,
				StateLaw:   "760 CMR 71.05(2) — no more than one parking space may be required, none within a half mile of transit.",
				LocalBylaw: "Canton required two off-street spaces for detached ADUs.",
				Impact:     "Formally disapproved; one space is the ceiling.",
				AGDecision: "Disapproved by the Attorney General, decision of June 4, 2025.",
				Citations: []Citation{
					{Label: "EOHLC FAQ", URL: srcEOHLCFAQ},
					{Label: "760 CMR 71.05(2)", URL: srcCMR71},
				},
			},
			{
				ID: "can-02", Provision: "By-Right Permitting",
				Category: CategoryProcess, Status: StatusCompliant,
				StateLaw:   "MGL c.40A §3 — conforming ADUs by right.",
				LocalBylaw: "Canton processes conforming ADUs as building permits.",
				Impact:     "Consistent with state law.",
				Citations:  []Citation{{Label: "MGL c.40A §3", URL: srcMGL40A3}},
			},
			{
				ID: "can-03", Provision: "ADU Size Limits",
				Category: CategoryDimensional, Status: StatusCompliant,
				StateLaw:   "760 CMR 71.05(3) — 900 sq ft or 50% of the principal dwelling.",
				LocalBylaw: "Canton allows the full state entitlement.",
				Impact:     "Consistent with state law.",
				Citations:  []Citation{{Label: "760 CMR 71.05(3)", URL: srcCMR71}},
			},
		},
	},
	{
		Slug: "newton", Name: "Newton", County: "Middlesex",
		Population: 88923, Type: MunicipalityCity,
		LastReviewed:   "2026-02-15",
		BylawSource:    "Newton Zoning Ordinance §6.8 (rev. April 2025)",
		AGDisapprovals: 0,
		Permits:        PermitSummary{Submitted: 16, Approved: 11, Denied: 2, Pending: 3, ApprovalRate: 68.8},
		Provisions: []ComplianceProvision{
			{
				ID: "new-01", Provision: "Detached ADU Lot Minimum",
				Category: CategoryDimensional, Status: StatusInconsistent,
				StateLaw:   "760 CMR 71.05(1) — dimensional requirements may not exceed those for principal structures.",
				LocalBylaw: "Newton retains a 10,000 sq ft lot minimum for detached ADUs in two districts.",
				Impact:     "Appears inconsistent; cities receive no AG review, so the conflict stands until challenged.",
				Citations:  []Citation{{Label: "760 CMR 71.05(1)", URL: srcCMR71}},
			},
			{
				ID: "new-02", Provision: "Stormwater Review",
				Category: CategoryProcess, Status: StatusReview,
				StateLaw:   "760 CMR 71.04 — procedures may not exceed single-family review.",
				LocalBylaw: "Detached ADUs over 500 sq ft trigger a stormwater permit that single-family additions do not.",
				Impact:     "Grey area; depends on whether the trigger is use-neutral in practice.",
				Citations:  []Citation{{Label: "760 CMR 71.04", URL: srcCMR71}},
			},
			{
				ID: "new-03", Provision: "By-Right Permitting",
				Category: CategoryProcess, Status: StatusCompliant,
				StateLaw:   "MGL c.40A §3 — conforming ADUs by right.",
				LocalBylaw: "The April 2025 revision removed the special-permit path.",
				Impact:     "Consistent with state law.",
				Citations:  []Citation{{Label: "MGL c.40A §3", URL: srcMGL40A3}},
			},
			{
				ID: "new-04", Provision: "ADU Size Limits",
				Category: CategoryDimensional, Status: StatusCompliant,
				StateLaw:   "760 CMR 71.05(3) — 900 sq ft or 50% of the principal dwelling.",
				LocalBylaw: "Newton allows the full state entitlement.",
				Impact:     "Consistent with state law.",
				Citations:  []Citation{{Label: "760 CMR 71.05(3)", URL: srcCMR71}},
			},
		},
	},
	{
		Slug: "somerville", Name: "Somerville", County: "Middlesex",
		Population: 81360, Type: MunicipalityCity,
		LastReviewed:   "2026-02-15",
		BylawSource:    "Somerville Zoning Ordinance §3.1.9",
		AGDisapprovals: 0,
		Permits:        PermitSummary{Submitted: 14, Approved: 10, Denied: 1, Pending: 3, ApprovalRate: 71.4},
		Provisions: []ComplianceProvision{
			{
				ID: "som-01", Provision: "By-Right Permitting",
				Category: CategoryProcess, Status: StatusCompliant,
				StateLaw:   "MGL c.40A §3 — conforming ADUs by right.",
				LocalBylaw: "ADUs permitted by right citywide since the 2019 overhaul.",
				Impact:     "Consistent with state law.",
				Citations:  []Citation{{Label: "MGL c.40A §3", URL: srcMGL40A3}},
			},
			{
				ID: "som-02", Provision: "Parking",
				Category: CategoryDimensional, Status: StatusCompliant,
				StateLaw:   "760 CMR 71.05(2) — at most one space, none near transit.",
				LocalBylaw: "No ADU parking minimum anywhere in the city.",
				Impact:     "More permissive than state law.",
				Citations:  []Citation{{Label: "760 CMR 71.05(2)", URL: srcCMR71}},
			},
			{
				ID: "som-03", Provision: "ADU Size Limits",
				Category: CategoryDimensional, Status: StatusCompliant,
				StateLaw:   "760 CMR 71.05(3) — 900 sq ft or 50% of the principal dwelling.",
				LocalBylaw: "Somerville caps ADUs at 900 sq ft.",
				Impact:     "Consistent with state law.",
				Citations:  []Citation{{Label: "760 CMR 71.05(3)", URL: srcCMR71}},
			},
		},
	},
}
