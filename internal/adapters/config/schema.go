package config

import (
	"gopkg.in/yaml.v3"
)

// Wpfile is the structure of the wpbuild.yaml configuration file.
// Keys follow the names used by WordPress theme build configs.
type Wpfile struct {
	ProjectURL      string `yaml:"projectURL"`
	BrowserAutoOpen bool   `yaml:"browserAutoOpen"`
	Port            int    `yaml:"port"`
	InjectChanges   bool   `yaml:"injectChanges"`

	StyleSRC         string `yaml:"styleSRC"`
	StyleDestination string `yaml:"styleDestination"`
	OutputStyle      string `yaml:"outputStyle"`
	Precision        int    `yaml:"precision"`

	JSVendorSRC         StringList `yaml:"jsVendorSRC"`
	JSVendorDestination string     `yaml:"jsVendorDestination"`
	JSVendorFile        string     `yaml:"jsVendorFile"`

	JSCustomSRC         StringList `yaml:"jsCustomSRC"`
	JSCustomDestination string     `yaml:"jsCustomDestination"`
	JSCustomFile        string     `yaml:"jsCustomFile"`

	ImgSRC string `yaml:"imgSRC"`
	ImgDST string `yaml:"imgDST"`

	WatchStyles   string `yaml:"watchStyles"`
	WatchJSVendor string `yaml:"watchJsVendor"`
	WatchJSCustom string `yaml:"watchJsCustom"`
	WatchPHP      string `yaml:"watchPhp"`

	TextDomain             string `yaml:"textDomain"`
	TranslationFile        string `yaml:"translationFile"`
	TranslationDestination string `yaml:"translationDestination"`
	PackageName            string `yaml:"packageName"`
	BugReport              string `yaml:"bugReport"`
	LastTranslator         string `yaml:"lastTranslator"`
	Team                   string `yaml:"team"`

	Browsers StringList `yaml:"BROWSERS_LIST"`
	Debounce string     `yaml:"debounce"`
}

// StringList accepts either a single string or a sequence of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		if node.Tag == "!!null" {
			*s = nil
			return nil
		}
		*s = StringList{node.Value}
		return nil
	}

	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*s = list
	return nil
}

// DefaultBrowsers is the browser support list used when none is configured.
var DefaultBrowsers = []string{
	"last 2 version",
	"> 1%",
	"ie >= 11",
	"last 1 Android versions",
	"last 1 ChromeAndroid versions",
	"last 2 Chrome versions",
	"last 2 Firefox versions",
	"last 2 Safari versions",
	"last 2 iOS versions",
	"last 2 Edge versions",
	"last 2 Opera versions",
}

// Defaults returns the configuration used for every key the file leaves out.
func Defaults() Wpfile {
	return Wpfile{
		BrowserAutoOpen: true,
		Port:            8000,
		InjectChanges:   true,

		StyleSRC:         "./assets/scss/style.scss",
		StyleDestination: "./",
		OutputStyle:      "compact",
		Precision:        10,

		JSVendorDestination: "./dist/js/vendor/",
		JSVendorFile:        "vendor",

		JSCustomSRC:         StringList{"./assets/js/custom/**/*.js"},
		JSCustomDestination: "./dist/js/custom/",
		JSCustomFile:        "custom",

		ImgSRC: "./assets/img/raw/**/*",
		ImgDST: "./assets/img/",

		WatchStyles:   "./assets/scss/**/*.scss",
		WatchJSVendor: "./assets/js/vendor/**/*.js",
		WatchJSCustom: "./assets/js/custom/**/*.js",
		WatchPHP:      "./**/*.php",

		TextDomain:             "WPGULP",
		TranslationFile:        "WPGULP.pot",
		TranslationDestination: "./languages",
		PackageName:            "WPGULP",
		BugReport:              "https://AhmadAwais.com/contact/",
		LastTranslator:         "Ahmad Awais <your_email@email.com>",
		Team:                   "AhmadAwais <your_email@email.com>",

		Browsers: StringList(DefaultBrowsers),
		Debounce: "200ms",
	}
}
