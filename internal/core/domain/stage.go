package domain

import "fmt"

// Stage names double as leaf task names.
const (
	StageStyles          = "styles"
	StageStylesRTL       = "stylesRTL"
	StageVendorJS        = "vendorJS"
	StageCustomJS        = "customJS"
	StageImages          = "images"
	StageTranslate       = "translate"
	StageClearCache      = "clearCache"
	StageCleanDist       = "cleanDistFolder"
	StageCleanDistVendor = "cleanDistVendor"
	StageCleanDistCustom = "cleanDistCustom"
	StageOnInstall       = "onInstall"
	StageReload          = "reload"
)

// StageReport summarizes a single stage invocation.
type StageReport struct {
	Stage       string
	Written     []string
	Removed     []string
	Skipped     bool
	CacheHits   int
	CacheMisses int
}

// String renders a short human readable summary.
func (r StageReport) String() string {
	if r.Skipped {
		return fmt.Sprintf("%s: skipped", r.Stage)
	}
	s := fmt.Sprintf("%s: %d file(s) written", r.Stage, len(r.Written))
	if len(r.Removed) > 0 {
		s += fmt.Sprintf(", %d removed", len(r.Removed))
	}
	if r.CacheHits+r.CacheMisses > 0 {
		s += fmt.Sprintf(", cache %d hit / %d miss", r.CacheHits, r.CacheMisses)
	}
	return s
}
