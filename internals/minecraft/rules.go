package minecraft

import (
	"regexp"

	"github.com/minepkg/mclaunch/internals/platform"
)

// Rule is a rule that can be applied to an argument or library.
// It can be used to determine if the argument or library should be applied to a specific OS.
type Rule struct {
	Action   string          `json:"action"`
	OS       OS              `json:"os,omitempty"`
	Features map[string]bool `json:"features,omitempty"`
}

// OS defines the feature of an OS that can be used in a [Rule] to determine if it should be applied.
type OS struct {
	Name string `json:"name,omitempty"`
	// Version of the os (can be a regex string)
	Version string `json:"version,omitempty"`
	// Arch of the system
	Arch string `json:"arch,omitempty"`
}

// Environment is everything a rule can be evaluated against
type Environment struct {
	Platform platform.Info
	Options  *LaunchOptions
}

// CurrentEnvironment returns the environment of the running system with the given options
func CurrentEnvironment(opts *LaunchOptions) Environment {
	return Environment{Platform: platform.Current(), Options: opts}
}

// RulesApply returns true if every rule applies. An empty list always applies
func RulesApply(rules []Rule, env Environment) bool {
	for _, rule := range rules {
		if !rule.Applies(env) {
			return false
		}
	}
	return true
}

// Applies returns true if this rule allows the thing it is attached to.
// An "allow" rule passes and a "disallow" rule blocks, unless one of its predicates
// does not match, which flips the outcome.
func (r Rule) Applies(env Environment) bool {
	allow := r.Action != "disallow"
	if r.mismatches(env) {
		return !allow
	}
	return allow
}

func (r Rule) mismatches(env Environment) bool {
	host := env.Platform

	switch r.OS.Name {
	case platform.Windows:
		if host.OS != platform.Windows {
			return true
		}
	case platform.OSX, "macos":
		if host.OS != platform.OSX {
			return true
		}
	case platform.Linux:
		if host.OS != platform.Linux {
			return true
		}
	}

	// "x86" is the only arch manifests use
	if r.OS.Arch == "x86" && !host.Is32Bit() {
		return true
	}

	if r.OS.Version != "" {
		matcher, err := regexp.Compile("^(?:" + r.OS.Version + ")")
		if err != nil || !matcher.MatchString(host.Version) {
			return true
		}
	}

	opts := env.Options
	if opts == nil {
		opts = &LaunchOptions{}
	}
	for feature := range r.Features {
		switch feature {
		case "has_custom_resolution":
			if !opts.CustomResolution {
				return true
			}
		case "is_demo_user":
			if !opts.Demo {
				return true
			}
		case "has_quick_plays_support":
			if opts.QuickPlayPath == "" {
				return true
			}
		case "is_quick_play_singleplayer":
			if opts.QuickPlaySingleplayer == "" {
				return true
			}
		case "is_quick_play_multiplayer":
			if opts.QuickPlayMultiplayer == "" {
				return true
			}
		case "is_quick_play_realms":
			if opts.QuickPlayRealms == "" {
				return true
			}
		}
	}

	return false
}
