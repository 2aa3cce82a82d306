// Package killswitch turns whole UI sections on or off per environment.
package killswitch

// App is a switchable section of the UI.
type App string

const (
	Bounty     App = "bounty"
	PeerReview App = "peerReview"
)

const (
	Development = "development"
	Staging     = "staging"
	Production  = "production"
)

var configs = map[App]map[string]bool{
	Bounty: {
		Development: true,
		Staging:     true,
		Production:  false,
	},
	PeerReview: {
		Development: false,
		Staging:     false,
		Production:  false,
	},
}

// Enabled reports whether app is on in env. Unknown apps and environments
// are off.
func Enabled(app App, env string) bool {
	return configs[app][env]
}

// Flags is the set of switches for one environment, handed to templates.
type Flags map[App]bool

func For(env string) Flags {
	f := make(Flags, len(configs))
	for app := range configs {
		f[app] = Enabled(app, env)
	}
	return f
}

func (f Flags) On(app string) bool {
	return f[App(app)]
}
