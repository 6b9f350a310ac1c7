package preferences

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	gistAPIURL = "https://api.github.com/gists"
	timeout    = 15 * time.Second
)

// GistStorage implements Storage using a private GitHub Gist
type GistStorage struct {
	gistID      string
	githubToken string
	apiURL      string
	httpClient  *http.Client
}

// NewGistStorage creates a new Gist-based storage
func NewGistStorage(gistID, githubToken string) (*GistStorage, error) {
	if gistID == "" {
		return nil, fmt.Errorf("gist ID is required")
	}
	if githubToken == "" {
		return nil, fmt.Errorf("GitHub token is required")
	}

	return &GistStorage{
		gistID:      gistID,
		githubToken: githubToken,
		apiURL:      gistAPIURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type gistFile struct {
	Content string `json:"content"`
}

type gistPayload struct {
	Description string              `json:"description,omitempty"`
	Public      *bool               `json:"public,omitempty"`
	Files       map[string]gistFile `json:"files"`
}

type gistResponse struct {
	ID    string              `json:"id"`
	Files map[string]gistFile `json:"files"`
}

func settingsFiles(s *Settings) (map[string]gistFile, error) {
	data, err := s.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("marshaling settings: %w", err)
	}
	return map[string]gistFile{settingsFilename: {Content: string(data)}}, nil
}

// gistCall performs one GitHub API round trip. A non-nil payload is sent as
// JSON; a non-nil out receives the decoded body. Errors carry only the status
// code, never the response body.
func gistCall(client *http.Client, token, method, target string, payload *gistPayload, want int, out *gistResponse) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshaling payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, target, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "token "+token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return fmt.Errorf("GitHub API error (status %d)", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding gist response: %w", err)
	}
	return nil
}

func (g *GistStorage) url() string {
	return g.apiURL + "/" + g.gistID
}

// fetch returns the settings file content and whether the gist holds one
func (g *GistStorage) fetch() (string, bool, error) {
	var resp gistResponse
	if err := gistCall(g.httpClient, g.githubToken, http.MethodGet, g.url(), nil, http.StatusOK, &resp); err != nil {
		return "", false, err
	}
	file, ok := resp.Files[settingsFilename]
	return file.Content, ok, nil
}

// Load retrieves settings from the Gist
func (g *GistStorage) Load() (*Settings, error) {
	content, ok, err := g.fetch()
	if err != nil {
		return nil, err
	}
	if !ok {
		return Defaults(), nil
	}

	s, err := FromJSON([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return s, nil
}

// Exists reports whether the Gist already holds a settings file
func (g *GistStorage) Exists() (bool, error) {
	_, ok, err := g.fetch()
	return ok, err
}

// Save replaces the settings file in the Gist
func (g *GistStorage) Save(s *Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	files, err := settingsFiles(s)
	if err != nil {
		return err
	}
	return gistCall(g.httpClient, g.githubToken, http.MethodPatch, g.url(), &gistPayload{Files: files}, http.StatusOK, nil)
}

// CreateGist creates a new private Gist seeded with default settings and
// returns its ID
func CreateGist(githubToken, description string) (string, error) {
	return createGist(gistAPIURL, githubToken, description)
}

func createGist(apiURL, githubToken, description string) (string, error) {
	if githubToken == "" {
		return "", fmt.Errorf("GitHub token is required")
	}

	files, err := settingsFiles(Defaults())
	if err != nil {
		return "", err
	}

	public := false
	payload := &gistPayload{Description: description, Public: &public, Files: files}
	var resp gistResponse
	client := &http.Client{Timeout: timeout}
	if err := gistCall(client, githubToken, http.MethodPost, apiURL, payload, http.StatusCreated, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}
