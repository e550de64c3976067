package pipeline

import "go.trai.ch/wpbuild/internal/core/domain"

// Composite task names.
const (
	TaskBuild       = "build"
	TaskWatchStyles = "watch:styles"
	TaskWatchVendor = "watch:vendor"
	TaskWatchCustom = "watch:custom"
	TaskWatchImages = "watch:images"
)

// Bindings returns the watch bindings of a project.
// Edits to the configuration file rebuild both script bundles. Vendor
// sources also rebuild the vendor bundle.
func Bindings(cfg domain.Config) []domain.WatchBinding {
	configFile := cfg.Pattern(cfg.File)
	return []domain.WatchBinding{
		{Name: "php", Patterns: []string{cfg.Pattern(cfg.WatchPHP)}, Task: domain.StageReload, Debounce: cfg.Debounce},
		{Name: "styles", Patterns: []string{cfg.Pattern(cfg.WatchStyles)}, Task: TaskWatchStyles, Debounce: cfg.Debounce},
		{
			Name:     "vendor",
			Patterns: []string{cfg.Pattern(cfg.WatchJSVendor), configFile},
			Task:     TaskWatchVendor,
			Debounce: cfg.Debounce,
		},
		{
			Name:     "custom",
			Patterns: []string{cfg.Pattern(cfg.WatchJSCustom), configFile},
			Task:     TaskWatchCustom,
			Debounce: cfg.Debounce,
		},
		{Name: "images", Patterns: []string{cfg.Pattern(cfg.ImgSRC)}, Task: TaskWatchImages, Debounce: cfg.Debounce},
	}
}
