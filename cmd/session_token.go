package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/ops-dashboard/internal/session"
)

var (
	tokenUserID   string
	tokenEmail    string
	tokenRole     string
	tokenMemberID string
	tokenTTL      time.Duration
)

// sessionTokenCmd mints a token signed with the configured secret, for local testing of the
// endpoints that need a session.
var sessionTokenCmd = &cobra.Command{
	Use:   "session-token",
	Short: "Issue a signed session token for local testing",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		authorizer := session.NewAuthorizer(cfg.Security.SessionSecret, setupLogger(cfg))
		token, err := authorizer.Issue(session.Claims{
			UserID:          tokenUserID,
			Email:           tokenEmail,
			Role:            tokenRole,
			MemberID:        tokenMemberID,
			IsAuthenticated: true,
		}, tokenTTL)
		if err != nil {
			log.Fatalf("failed to issue token: %v", err)
		}
		fmt.Println(token)
	},
}

func init() {
	sessionTokenCmd.Flags().StringVar(&tokenUserID, "user-id", "1", "user id carried in the token")
	sessionTokenCmd.Flags().StringVar(&tokenEmail, "email", "ops@acme.test", "email carried in the token")
	sessionTokenCmd.Flags().StringVar(&tokenRole, "role", "admin", "role carried in the token")
	sessionTokenCmd.Flags().StringVar(&tokenMemberID, "member-id", seedMemberID, "member id carried in the token")
	sessionTokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
}
