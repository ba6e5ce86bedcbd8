package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"crown-status/pkg/config"
)

// Provider wraps the third-party identity provider used for operator
// login. The provider is generic: endpoint URLs come from config, and
// the userinfo document only needs an "email" field.
type Provider struct {
	oauth       *oauth2.Config
	userinfoURL string
	client      *http.Client
}

// NewProvider returns nil when no client ID is configured, which
// disables OAuth login entirely.
func NewProvider(c config.OAuthConfig) *Provider {
	if c.ClientID == "" {
		return nil
	}
	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURL:  c.RedirectURL,
			Scopes:       []string{"openid", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  c.AuthURL,
				TokenURL: c.TokenURL,
			},
		},
		userinfoURL: c.UserinfoURL,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *Provider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

func (p *Provider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	return p.oauth.Exchange(ctx, code)
}

// FetchEmail resolves the logged-in account's email from the
// provider's userinfo endpoint.
func (p *Provider) FetchEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userinfoURL, nil)
	if err != nil {
		return "", fmt.Errorf("userinfo request: %w", err)
	}
	token.SetAuthHeader(req)
	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("userinfo fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("userinfo fetch: status %d", resp.StatusCode)
	}
	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("userinfo decode: %w", err)
	}
	if info.Email == "" {
		return "", fmt.Errorf("userinfo: no email in response")
	}
	return info.Email, nil
}
