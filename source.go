package jobsets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/telia-oss/hydra-pr-jobsets/pullrequest"
)

// FetchSource configures where pull requests are fetched from and which of
// them are kept.
type FetchSource struct {
	Repository          string
	AccessToken         string
	V3Endpoint          string
	SkipSSLVerification bool
	DisableForks        bool
	BaseBranches        []string
	Associations        []string
}

// Validate the source configuration.
func (s FetchSource) Validate() error {
	if s.AccessToken == "" || s.Repository == "" {
		return errors.New("access_token & repository are required")
	}
	if _, _, err := parseRepository(s.Repository); err != nil {
		return err
	}
	if _, err := s.associations(); err != nil {
		return err
	}
	return nil
}

func (s FetchSource) associations() ([]pullrequest.AuthorAssociation, error) {
	var out []pullrequest.AuthorAssociation
	for _, a := range s.Associations {
		v, err := pullrequest.ParseAuthorAssociation(a)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseRepository(s string) (string, string, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed repository: %q", s)
	}
	return parts[0], parts[1], nil
}
