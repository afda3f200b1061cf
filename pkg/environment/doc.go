// Package environment defines the deployment environments recognised by the
// utilkit command-line tool and helpers to parse them from configuration.
//
//	env := environment.Parse(os.Getenv("UTILKIT_ENV"))
//	if env.IsProduction() {
//		// JSON logs, info level
//	}
//
// Short aliases ("dev", "stage", "prod") are accepted. Anything unrecognised
// falls back to Development.
package environment
