// Package vendoclient constructs Vendo API clients.
//
// The builder is the usual entry point:
//
//	cli, err := vendoclient.New().
//	  WithToken(os.Getenv("VENDO_TOKEN")).
//	  WithEnvironment(vendo.EnvironmentSandbox).
//	  WithMaxRetries(5).
//	  Build()
//
// Configuration can also come from a YAML file plus VENDO_* environment
// variables via LoadConfig, then NewFromConfig. Validation is front-loaded:
// an empty token fails at Build, before any request can be issued.
package vendoclient
