package pullrequest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrUnknownAuthorAssociation is returned when an author_association value
// is not one of the values defined by the GitHub API.
var ErrUnknownAuthorAssociation = errors.New("unknown author association")

// AuthorAssociation is the relationship of the PR author to the repository.
// https://docs.github.com/en/graphql/reference/enums#commentauthorassociation
type AuthorAssociation string

// AuthorAssociation values, as spelled by the GitHub API.
const (
	Member               AuthorAssociation = "MEMBER"
	Contributor          AuthorAssociation = "CONTRIBUTOR"
	None                 AuthorAssociation = "NONE"
	Collaborator         AuthorAssociation = "COLLABORATOR"
	FirstTimer           AuthorAssociation = "FIRST_TIMER"
	FirstTimeContributor AuthorAssociation = "FIRST_TIME_CONTRIBUTOR"
	Mannequin            AuthorAssociation = "MANNEQUIN"
	Owner                AuthorAssociation = "OWNER"
)

// ParseAuthorAssociation matches s against the known values, case-sensitively.
func ParseAuthorAssociation(s string) (AuthorAssociation, error) {
	switch a := AuthorAssociation(s); a {
	case Member, Contributor, None, Collaborator, FirstTimer, FirstTimeContributor, Mannequin, Owner:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAuthorAssociation, s)
}

// UnmarshalJSON rejects values outside the known set.
func (a *AuthorAssociation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseAuthorAssociation(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Number is the PR number. It is an identifier, not a quantity, so it is
// kept as the decimal string GitHub displays.
type Number string

// MarshalJSON always writes the number as a JSON string.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

// UnmarshalJSON accepts both "42" and 42.
func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = Number(s)
		return nil
	}

	var num json.Number
	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()
	if err := d.Decode(&num); err != nil {
		return fmt.Errorf("number must be a string or an integer: %s", data)
	}
	// Any integer literal is accepted, however large; only the text is kept.
	if strings.ContainsAny(num.String(), ".eE") {
		return fmt.Errorf("number must be a string or an integer: %s", data)
	}
	*n = Number(num.String())
	return nil
}

// User is a GitHub account.
type User struct {
	Login string `json:"login"`
}

// UnmarshalJSON ...
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	return decodeRequired(data, "user", (*alias)(u), "login")
}

// Repo holds the clone locations of a repository.
type Repo struct {
	GitURL string `json:"git_url"`
	SSHURL string `json:"ssh_url"`
}

// UnmarshalJSON ...
func (r *Repo) UnmarshalJSON(data []byte) error {
	type alias Repo
	return decodeRequired(data, "repo", (*alias)(r), "git_url", "ssh_url")
}

// Branch is one side (base or head) of a pull request.
type Branch struct {
	Ref  string `json:"ref"`
	Repo Repo   `json:"repo"`
	SHA  string `json:"sha"`
	User User   `json:"user"`
}

// UnmarshalJSON ...
func (b *Branch) UnmarshalJSON(data []byte) error {
	type alias Branch
	return decodeRequired(data, "branch", (*alias)(b), "ref", "repo", "sha", "user")
}

// PullRequest is the subset of the GitHub REST pull request object needed
// to build a jobset.
// https://docs.github.com/en/rest/pulls/pulls#get-a-pull-request
type PullRequest struct {
	AuthorAssociation AuthorAssociation `json:"author_association"`
	Base              Branch            `json:"base"`
	Head              Branch            `json:"head"`
	HTMLURL           string            `json:"html_url"`
	Number            Number            `json:"number"`
	Title             string            `json:"title"`
	User              User              `json:"user"`
}

// UnmarshalJSON ...
func (p *PullRequest) UnmarshalJSON(data []byte) error {
	type alias PullRequest
	return decodeRequired(data, "pull request", (*alias)(p),
		"author_association", "base", "head", "html_url", "number", "title", "user")
}

// PullRequests maps an opaque key (usually the PR number) to a pull request.
type PullRequests map[string]PullRequest

// Keys returns the keys in lexicographic order.
func (p PullRequests) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Decode reads a single JSON object of pull requests from r.
func Decode(r io.Reader) (PullRequests, error) {
	d := json.NewDecoder(r)

	var prs PullRequests
	if err := d.Decode(&prs); err != nil {
		return nil, fmt.Errorf("failed to decode pull requests: %w", err)
	}
	if prs == nil {
		return nil, errors.New("failed to decode pull requests: document is null")
	}
	if _, err := d.Token(); err != io.EOF {
		return nil, errors.New("failed to decode pull requests: unexpected data after document")
	}
	return prs, nil
}

// MissingFieldError is returned when a required field is absent or null.
type MissingFieldError struct {
	Object string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Object, e.Field)
}

func decodeRequired(data []byte, object string, v interface{}, required ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%s: %w", object, err)
	}
	if fields == nil {
		return fmt.Errorf("%s: expected an object, got null", object)
	}
	for _, name := range required {
		raw, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return &MissingFieldError{Object: object, Field: name}
		}
	}
	return json.Unmarshal(data, v)
}
