// Command gcal-auth performs the one-time OAuth consent for desktop-app
// Google credentials and stores the token next to the credentials file,
// where pkg/gcalendar looks for it.
//
//	go run ./scripts/gcal-auth [path/to/google-credentials.json]
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"breeze/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if err := run(context.Background(), credsPath); err != nil {
		fmt.Fprintln(os.Stderr, "gcal-auth:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, credsPath string) error {
	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}
	conf, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return fmt.Errorf("%s is not an OAuth desktop-app credentials file: %w", credsPath, err)
	}

	fmt.Println("Open this URL, sign in and approve calendar access:")
	fmt.Println()
	fmt.Println(conf.AuthCodeURL("breeze", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("Authorization code: ")

	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return fmt.Errorf("read code: %w", err)
	}
	tok, err := conf.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return fmt.Errorf("exchange code: %w", err)
	}

	tokenPath := filepath.Join(filepath.Dir(credsPath), gcalendar.TokenFile)
	f, err := os.OpenFile(tokenPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create token file: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write token: %w", err)
	}

	fmt.Printf("Saved %s. Set google_calendar.enabled=true and restart the API.\n", tokenPath)
	return nil
}
