// Package dataset holds the authoritative static tables behind ADU Pulse:
// town permit profiles from the EOHLC survey, hand-researched bylaw
// compliance profiles, the housing-production survey, and permit records
// scraped from municipal portals. Every table is defined at build time and
// never mutated; all derived figures live in the analytics package.
package dataset

// TownBySlug returns the permit profile for a town, or false when the town
// is not in the survey table.
func TownBySlug(slug string) (TownPermitProfile, bool) {
	for _, t := range Towns {
		if t.Slug == slug {
			return t, true
		}
	}
	return TownPermitProfile{}, false
}

// ComplianceBySlug returns the compliance profile for a town, or false when
// no bylaw analysis exists for it. Absence is a normal state: only a subset
// of surveyed towns have been profiled.
func ComplianceBySlug(slug string) (TownComplianceProfile, bool) {
	for _, t := range ComplianceProfiles {
		if t.Slug == slug {
			return t, true
		}
	}
	return TownComplianceProfile{}, false
}

// ComplianceMap returns the compliance profiles keyed by slug.
func ComplianceMap() map[string]TownComplianceProfile {
	m := make(map[string]TownComplianceProfile, len(ComplianceProfiles))
	for _, t := range ComplianceProfiles {
		m[t.Slug] = t
	}
	return m
}

// Counties returns the distinct counties in the permit table, unsorted.
func Counties() []string {
	seen := make(map[string]bool)
	var counties []string
	for _, t := range Towns {
		if !seen[t.County] {
			seen[t.County] = true
			counties = append(counties, t.County)
		}
	}
	return counties
}

// PortalPermits returns the scraped permit records for a town's building
// portal. Towns without a scraped portal return nil.
func PortalPermits(slug string) []PortalPermit {
	return portalPermits[slug]
}

// PortalTowns returns the slugs that have scraped portal data.
func PortalTowns() []string {
	slugs := make([]string, 0, len(portalPermits))
	for s := range portalPermits {
		slugs = append(slugs, s)
	}
	return slugs
}
