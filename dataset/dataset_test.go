package dataset

import (
	"math"
	"testing"
)

func TestTownSlugsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, town := range Towns {
		if town.Slug == "" {
			t.Errorf("%s: empty slug", town.Name)
		}
		if seen[town.Slug] {
			t.Errorf("duplicate slug %q", town.Slug)
		}
		seen[town.Slug] = true
	}
}

func TestPermitCountsResolve(t *testing.T) {
	for _, town := range Towns {
		resolved := town.Approved + town.Denied + town.Pending
		if resolved > town.Submitted {
			t.Errorf("%s: approved+denied+pending = %d exceeds submitted %d",
				town.Slug, resolved, town.Submitted)
		}
		if town.ApprovalRate < 0 || town.ApprovalRate > 100 {
			t.Errorf("%s: approval rate %.1f out of range", town.Slug, town.ApprovalRate)
		}
		if town.Submitted > 0 {
			derived := float64(town.Approved) / float64(town.Submitted) * 100
			if math.Abs(derived-town.ApprovalRate) > 1.0 {
				t.Errorf("%s: approval rate %.1f disagrees with derived %.1f",
					town.Slug, town.ApprovalRate, derived)
			}
		} else if town.ApprovalRate != 0 {
			t.Errorf("%s: nonzero rate with no submissions", town.Slug)
		}
		if town.Population <= 0 {
			t.Errorf("%s: population %d", town.Slug, town.Population)
		}
	}
}

func TestComplianceProfilesValid(t *testing.T) {
	validStatus := make(map[ComplianceStatus]bool)
	for _, s := range Statuses {
		validStatus[s] = true
	}
	validCategory := make(map[ProvisionCategory]bool)
	for _, c := range Categories {
		validCategory[c] = true
	}

	seen := make(map[string]bool)
	for _, profile := range ComplianceProfiles {
		if seen[profile.Slug] {
			t.Errorf("duplicate compliance slug %q", profile.Slug)
		}
		seen[profile.Slug] = true

		if profile.Type != MunicipalityTown && profile.Type != MunicipalityCity {
			t.Errorf("%s: bad municipality type %q", profile.Slug, profile.Type)
		}
		if profile.AGDisapprovals < 0 {
			t.Errorf("%s: negative AG disapprovals", profile.Slug)
		}
		// Cities get no AG review.
		if profile.Type == MunicipalityCity && profile.AGDisapprovals > 0 {
			t.Errorf("%s: city with AG disapprovals", profile.Slug)
		}

		ids := make(map[string]bool)
		for _, p := range profile.Provisions {
			if !validStatus[p.Status] {
				t.Errorf("%s/%s: bad status %q", profile.Slug, p.ID, p.Status)
			}
			if !validCategory[p.Category] {
				t.Errorf("%s/%s: bad category %q", profile.Slug, p.ID, p.Category)
			}
			if ids[p.ID] {
				t.Errorf("%s: duplicate provision id %q", profile.Slug, p.ID)
			}
			ids[p.ID] = true
			if p.AGDecision != "" && p.Status != StatusInconsistent {
				t.Errorf("%s/%s: AG decision on non-inconsistent provision", profile.Slug, p.ID)
			}
		}
	}
}

func TestComplianceSlugsResolveAgainstSurvey(t *testing.T) {
	for _, profile := range ComplianceProfiles {
		town, ok := TownBySlug(profile.Slug)
		if !ok {
			t.Errorf("compliance profile %q has no survey row", profile.Slug)
			continue
		}
		// One source of truth: sub-record must match the survey table.
		if profile.Permits.Submitted != town.Submitted ||
			profile.Permits.Approved != town.Approved ||
			profile.Permits.Denied != town.Denied ||
			profile.Permits.Pending != town.Pending {
			t.Errorf("%s: compliance permit sub-record drifts from survey row", profile.Slug)
		}
		if profile.Population != town.Population {
			t.Errorf("%s: population drift (%d vs %d)", profile.Slug, profile.Population, town.Population)
		}
	}
}

func TestLookups(t *testing.T) {
	if _, ok := TownBySlug("plymouth"); !ok {
		t.Error("plymouth missing from survey table")
	}
	if _, ok := TownBySlug("nowhere"); ok {
		t.Error("unexpected town for unknown slug")
	}
	if _, ok := ComplianceBySlug("leicester"); !ok {
		t.Error("leicester missing from compliance profiles")
	}
	if _, ok := ComplianceBySlug("upton"); ok {
		t.Error("unexpected compliance profile for upton")
	}
	m := ComplianceMap()
	if len(m) != len(ComplianceProfiles) {
		t.Errorf("ComplianceMap has %d entries, want %d", len(m), len(ComplianceProfiles))
	}
}

func TestPortalPermits(t *testing.T) {
	for _, slug := range PortalTowns() {
		if _, ok := TownBySlug(slug); !ok {
			t.Errorf("portal town %q has no survey row", slug)
		}
		for _, p := range PortalPermits(slug) {
			if p.Status == "Issued" && p.Issued == "" {
				t.Errorf("%s/%s: issued permit without issue date", slug, p.Permit)
			}
			if p.Status != "Issued" && p.Issued != "" {
				t.Errorf("%s/%s: issue date on %s permit", slug, p.Permit, p.Status)
			}
		}
	}
	if PortalPermits("upton") != nil {
		t.Error("expected no portal data for upton")
	}
}
