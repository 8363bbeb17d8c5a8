package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
)

// GetGmailClient builds an HTTP client allowed to send mail as the HR mailbox.
// Both files must already exist: the service never prompts for a login.
func GetGmailClient(ctx context.Context, credentialsFile, tokenFile string) (*http.Client, error) {
	// credentials.json is the OAuth app's ID
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, errors.Wrap(err, "read gmail client secret")
	}

	config, err := google.ConfigFromJSON(b, gmail.GmailSendScope)
	if err != nil {
		return nil, errors.Wrap(err, "parse gmail client secret")
	}

	// token.json is the mailbox owner's session, provisioned out of band
	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, errors.Wrap(err, "read gmail token")
	}
	return config.Client(ctx, tok), nil
}

// tokenFromFile retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}
