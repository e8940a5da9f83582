package env

import "os"

// Github stores the GitHub credentials found in the environment.
type Github struct {
	Token  string
	APIURL string
}

// ReadGithub reads GITHUB_TOKEN, falling back to GITHUB_ACCESS_TOKEN, and
// GITHUB_API_URL as set by GitHub Actions runners.
func ReadGithub() Github {
	g := Github{}
	g.Token = os.Getenv("GITHUB_TOKEN")
	if g.Token == "" {
		g.Token = os.Getenv("GITHUB_ACCESS_TOKEN")
	}
	g.APIURL = os.Getenv("GITHUB_API_URL")

	return g
}
