package esbuild

import (
	"slices"
	"strconv"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// release lists the known versions of a browser, newest first.
type release struct {
	engine   api.EngineName
	versions []string
}

// releases is a snapshot of recent browser versions used to evaluate
// "last N versions" queries without a live usage database.
var releases = map[string]release{
	"chrome":  {api.EngineChrome, []string{"131", "130", "129", "128"}},
	"edge":    {api.EngineEdge, []string{"131", "130", "129", "128"}},
	"firefox": {api.EngineFirefox, []string{"133", "132", "131", "130"}},
	"safari":  {api.EngineSafari, []string{"18.2", "18.1", "18.0", "17.6"}},
	"ios":     {api.EngineIOS, []string{"18.2", "18.1", "18.0", "17.6"}},
	"opera":   {api.EngineOpera, []string{"115", "114", "113", "112"}},
	"ie":      {api.EngineIE, []string{"11", "10", "9"}},
}

var aliases = map[string]string{
	"android":        "chrome",
	"chromeandroid":  "chrome",
	"and_chr":        "chrome",
	"firefoxandroid": "firefox",
	"and_ff":         "firefox",
	"ff":             "firefox",
	"ios_saf":        "ios",
	"explorer":       "ie",
	"op":             "opera",
}

// defaultQueries are used when no query of the list can be evaluated.
var defaultQueries = []string{"last 2 versions"}

// Targets resolves a browserslist style query list to esbuild engines,
// keeping the oldest matching version of every browser.
//
// Supported queries: "last N versions", "last N <browser> versions",
// "<browser> >= V", "<browser> > V" and "<browser> V". Usage based queries
// such as "> 1%" cannot be evaluated offline and are ignored.
// Internet Explorer is only included when withIE is set, since scripts
// cannot be lowered that far.
func Targets(queries []string, withIE bool) []api.Engine {
	minimum := map[string]string{}
	add := func(browser, version string) {
		if browser == "ie" && !withIE {
			return
		}
		if cur, ok := minimum[browser]; !ok || compareVersions(version, cur) < 0 {
			minimum[browser] = version
		}
	}

	evaluated := false
	for _, q := range queries {
		if evalQuery(strings.ToLower(strings.TrimSpace(q)), add) {
			evaluated = true
		}
	}
	if !evaluated {
		for _, q := range defaultQueries {
			evalQuery(q, add)
		}
	}

	names := make([]string, 0, len(minimum))
	for name := range minimum {
		names = append(names, name)
	}
	slices.Sort(names)

	engines := make([]api.Engine, 0, len(names))
	for _, name := range names {
		engines = append(engines, api.Engine{Name: releases[name].engine, Version: minimum[name]})
	}
	return engines
}

func evalQuery(q string, add func(browser, version string)) bool {
	fields := strings.Fields(q)
	if len(fields) == 0 {
		return false
	}

	if fields[0] == "last" && len(fields) >= 3 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return false
		}
		if len(fields) == 3 && strings.HasPrefix(fields[2], "version") {
			for name := range releases {
				addLast(name, n, add)
			}
			return true
		}
		if len(fields) == 4 && strings.HasPrefix(fields[3], "version") {
			name, ok := browserName(fields[2])
			if !ok {
				return false
			}
			addLast(name, n, add)
			return true
		}
		return false
	}

	name, ok := browserName(fields[0])
	if !ok {
		return false
	}
	switch {
	case len(fields) == 3 && (fields[1] == ">=" || fields[1] == ">"):
		if !isVersion(fields[2]) {
			return false
		}
		version := fields[2]
		if fields[1] == ">" {
			version = nextVersion(name, version)
		}
		add(name, version)
		return true
	case len(fields) == 2 && isVersion(fields[1]):
		add(name, fields[1])
		return true
	}
	return false
}

func addLast(name string, n int, add func(browser, version string)) {
	versions := releases[name].versions
	n = min(n, len(versions))
	add(name, versions[n-1])
}

func browserName(s string) (string, bool) {
	if alias, ok := aliases[s]; ok {
		s = alias
	}
	_, ok := releases[s]
	return s, ok
}

// nextVersion returns the oldest known version newer than v, or v itself.
func nextVersion(name, v string) string {
	versions := releases[name].versions
	for i := len(versions) - 1; i >= 0; i-- {
		if compareVersions(versions[i], v) > 0 {
			return versions[i]
		}
	}
	return v
}

func isVersion(s string) bool {
	for part := range strings.SplitSeq(s, ".") {
		if _, err := strconv.Atoi(part); err != nil {
			return false
		}
	}
	return true
}

func compareVersions(a, b string) int {
	pa, pb := strings.Split(a, "."), strings.Split(b, ".")
	for i := range max(len(pa), len(pb)) {
		var x, y int
		if i < len(pa) {
			x, _ = strconv.Atoi(pa[i])
		}
		if i < len(pb) {
			y, _ = strconv.Atoi(pb[i])
		}
		if x != y {
			return x - y
		}
	}
	return 0
}
