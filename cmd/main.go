package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/oze4/go-egnyte/internal/app"
	"github.com/oze4/go-egnyte/internal/config"
	"github.com/oze4/go-egnyte/internal/services/links"
	"github.com/oze4/go-egnyte/internal/utils"
	"github.com/spf13/cobra"
)

const version = "0.2.0"

var configPath string

func main() {
	// Get default config path
	defaultConfigPath, err := config.DefaultConfigPath()
	if err != nil {
		defaultConfigPath = "./config.toml"
	}

	// Root command
	rootCmd := &cobra.Command{
		Use:   "go-egnyte",
		Short: "Egnyte links API client",
		Long:  "Command line client for the Egnyte public API links surface: list, inspect, create and delete shareable links.",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to config file")

	// Links command group
	linksCmd := &cobra.Command{
		Use:   "links",
		Short: "Work with shareable links",
	}
	linksCmd.AddCommand(newListCmd())
	linksCmd.AddCommand(newGetCmd())
	linksCmd.AddCommand(newCreateCmd())
	linksCmd.AddCommand(newDeleteCmd())

	// Verify command
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the configured domain and token",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := buildContainer(true)
			if err != nil {
				return err
			}
			container.Logger.Info("Token verified")
			return nil
		},
	}

	// Generate-config command
	generateConfigCmd := &cobra.Command{
		Use:   "generate-config",
		Short: "Generate config",
		RunE: func(cmd *cobra.Command, args []string) error {
			return utils.GenerateConfig(configPath)
		},
	}

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("go-egnyte version %s\n", version)
		},
	}

	rootCmd.AddCommand(linksCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(generateConfigCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildContainer loads and validates the config, then wires dependencies.
func buildContainer(validateAuth bool) (*app.Container, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return app.NewContainer(cfg, app.WithAuthValidation(validateAuth))
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func newListCmd() *cobra.Command {
	var (
		path          string
		username      string
		createdBefore string
		createdAfter  string
		linkType      string
		accessibility string
		offset        int
		count         int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List link IDs matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := links.ListOptions{
				Path:     path,
				Username: username,
			}
			if createdBefore != "" {
				ts, err := parseDateFlag("created-before", createdBefore)
				if err != nil {
					return err
				}
				opts.CreatedBefore = &ts
			}
			if createdAfter != "" {
				ts, err := parseDateFlag("created-after", createdAfter)
				if err != nil {
					return err
				}
				opts.CreatedAfter = &ts
			}
			if linkType != "" {
				t, err := parseTypeFlag(linkType)
				if err != nil {
					return err
				}
				opts.Type = &t
			}
			if accessibility != "" {
				a, err := parseAccessibilityFlag(accessibility)
				if err != nil {
					return err
				}
				opts.Accessibility = &a
			}
			if cmd.Flags().Changed("offset") {
				opts.Offset = &offset
			}
			if cmd.Flags().Changed("count") {
				opts.Count = &count
			}

			container, err := buildContainer(false)
			if err != nil {
				return err
			}

			ctx, stop := signalContext()
			defer stop()

			list, err := container.Links.ListLinks(ctx, opts)
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Filter by file or folder path")
	cmd.Flags().StringVar(&username, "username", "", "Filter by link creator")
	cmd.Flags().StringVar(&createdBefore, "created-before", "", "Only links created before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&createdAfter, "created-after", "", "Only links created after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&linkType, "type", "", "Filter by link type (file|folder)")
	cmd.Flags().StringVar(&accessibility, "accessibility", "", "Filter by accessibility (anyone|password|domain|recipients)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Pagination offset")
	cmd.Flags().IntVar(&count, "count", 0, "Page size")

	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <link-id>",
		Short: "Fetch details of a single link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := buildContainer(false)
			if err != nil {
				return err
			}

			ctx, stop := signalContext()
			defer stop()

			details, err := container.Links.GetLinkDetails(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(presentLinkDetails(details))
		},
	}
}

func newCreateCmd() *cobra.Command {
	var (
		linkType      string
		accessibility string
		recipients    []string
		sendEmail     bool
		message       string
		copyMe        bool
		notify        bool
		linkToCurrent bool
		expiryDate    string
		expiryClicks  int
		addFileName   bool
	)

	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a link for a file or folder path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link := links.NewLink{
				Path:       args[0],
				Recipients: recipients,
				Message:    message,
			}
			if linkType != "" {
				t, err := parseTypeFlag(linkType)
				if err != nil {
					return err
				}
				link.Type = &t
			}
			if accessibility != "" {
				a, err := parseAccessibilityFlag(accessibility)
				if err != nil {
					return err
				}
				link.Accessibility = &a
			}
			if expiryDate != "" {
				ts, err := parseDateFlag("expiry-date", expiryDate)
				if err != nil {
					return err
				}
				link.ExpiryDate = &ts
			}
			if cmd.Flags().Changed("send-email") {
				link.SendEmail = &sendEmail
			}
			if cmd.Flags().Changed("copy-me") {
				link.CopyMe = &copyMe
			}
			if cmd.Flags().Changed("notify") {
				link.Notify = &notify
			}
			if cmd.Flags().Changed("link-to-current") {
				link.LinkToCurrent = &linkToCurrent
			}
			if cmd.Flags().Changed("expiry-clicks") {
				link.ExpiryClicks = &expiryClicks
			}
			if cmd.Flags().Changed("add-file-name") {
				link.AddFileName = &addFileName
			}

			container, err := buildContainer(false)
			if err != nil {
				return err
			}

			ctx, stop := signalContext()
			defer stop()

			created, err := container.Links.CreateLink(ctx, link)
			if err != nil {
				return err
			}
			return printJSON(presentCreatedLinks(created))
		},
	}

	cmd.Flags().StringVar(&linkType, "type", "", "Link type (file|folder)")
	cmd.Flags().StringVar(&accessibility, "accessibility", "", "Who may use the link (anyone|password|domain|recipients)")
	cmd.Flags().StringSliceVar(&recipients, "recipient", nil, "Recipient email address (repeatable)")
	cmd.Flags().BoolVar(&sendEmail, "send-email", false, "Email the link to the recipients")
	cmd.Flags().StringVar(&message, "message", "", "Message to include in the email")
	cmd.Flags().BoolVar(&copyMe, "copy-me", false, "Send a copy of the email to the creator")
	cmd.Flags().BoolVar(&notify, "notify", false, "Notify the creator on access")
	cmd.Flags().BoolVar(&linkToCurrent, "link-to-current", false, "Always link to the current file version")
	cmd.Flags().StringVar(&expiryDate, "expiry-date", "", "Expiry date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&expiryClicks, "expiry-clicks", 0, "Expire after this many clicks")
	cmd.Flags().BoolVar(&addFileName, "add-file-name", false, "Append the file name to the link URL")

	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <link-id>",
		Short: "Delete a link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := buildContainer(false)
			if err != nil {
				return err
			}

			ctx, stop := signalContext()
			defer stop()

			if err := container.Links.DeleteLink(ctx, args[0]); err != nil {
				return err
			}
			container.Logger.Infof("Deleted link %s", args[0])
			return nil
		},
	}
}

func parseDateFlag(name, value string) (time.Time, error) {
	ts, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be YYYY-MM-DD, got %q", name, value)
	}
	return ts, nil
}

func parseTypeFlag(value string) (links.LinkType, error) {
	switch strings.ToLower(value) {
	case "file":
		return links.LinkTypeFile, nil
	case "folder":
		return links.LinkTypeFolder, nil
	default:
		return 0, fmt.Errorf("--type must be file or folder, got %q", value)
	}
}

func parseAccessibilityFlag(value string) (links.Accessibility, error) {
	switch strings.ToLower(value) {
	case "anyone":
		return links.AccessibilityAnyone, nil
	case "password":
		return links.AccessibilityPassword, nil
	case "domain":
		return links.AccessibilityDomain, nil
	case "recipients":
		return links.AccessibilityRecipients, nil
	default:
		return 0, fmt.Errorf("--accessibility must be one of anyone, password, domain, recipients; got %q", value)
	}
}

// Presenter shapes so enum fields render as their wire strings instead of
// raw ints.

type linkDetailsView struct {
	ID            string   `json:"id"`
	Path          string   `json:"path"`
	URL           string   `json:"url"`
	Type          string   `json:"type"`
	Accessibility string   `json:"accessibility"`
	Notify        bool     `json:"notify"`
	LinkToCurrent bool     `json:"link_to_current"`
	CreationDate  string   `json:"creation_date,omitempty"`
	CreatedBy     string   `json:"created_by"`
	Protection    string   `json:"protection,omitempty"`
	Recipients    []string `json:"recipients,omitempty"`
}

func presentLinkDetails(d *links.LinkDetails) linkDetailsView {
	view := linkDetailsView{
		ID:            d.ID,
		Path:          d.Path,
		URL:           d.URL,
		Type:          d.Type.String(),
		Accessibility: d.Accessibility.String(),
		Notify:        d.Notify,
		LinkToCurrent: d.LinkToCurrent,
		CreatedBy:     d.CreatedBy,
		Protection:    d.Protection,
		Recipients:    d.Recipients,
	}
	if !d.CreationDate.IsZero() {
		view.CreationDate = d.CreationDate.Format(time.RFC3339)
	}
	return view
}

type createdLinksView struct {
	Links []struct {
		ID         string   `json:"id"`
		URL        string   `json:"url"`
		Recipients []string `json:"recipients,omitempty"`
	} `json:"links"`
	Path          string `json:"path"`
	Type          string `json:"type"`
	Accessibility string `json:"accessibility"`
	Notify        bool   `json:"notify"`
	LinkToCurrent bool   `json:"link_to_current"`
	ExpiryDate    string `json:"expiry_date,omitempty"`
	CreationDate  string `json:"creation_date,omitempty"`
	CreatedBy     string `json:"created_by"`
}

func presentCreatedLinks(c *links.CreatedLinks) createdLinksView {
	view := createdLinksView{
		Path:          c.Path,
		Type:          c.Type.String(),
		Accessibility: c.Accessibility.String(),
		Notify:        c.Notify,
		LinkToCurrent: c.LinkToCurrent,
		CreatedBy:     c.CreatedBy,
	}
	if !c.ExpiryDate.IsZero() {
		view.ExpiryDate = c.ExpiryDate.Format("2006-01-02")
	}
	if !c.CreationDate.IsZero() {
		view.CreationDate = c.CreationDate.Format(time.RFC3339)
	}
	for _, l := range c.Links {
		view.Links = append(view.Links, struct {
			ID         string   `json:"id"`
			URL        string   `json:"url"`
			Recipients []string `json:"recipients,omitempty"`
		}{l.ID, l.URL, l.Recipients})
	}
	return view
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
