package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
	"github.com/Pings-Lab/pings-lab.github.io/internal/usecase"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/formpost"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/validation"
)

// printGateway writes the encoded body instead of posting it.
type printGateway struct {
	w io.Writer
}

func (p printGateway) Submit(_ context.Context, endpoint string, fields []formpost.Field) error {
	_, err := fmt.Fprintf(p.w, "POST %s\n%s\n", endpoint, formpost.Encode(fields))
	return err
}

type submitOptions struct {
	endpoint string
	dryRun   bool
}

func (o *submitOptions) session(cmd *cobra.Command) (*usecase.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	endpoint := cfg.FormEndpoint
	if o.endpoint != "" {
		endpoint = o.endpoint
	}

	var gateway usecase.Gateway = formpost.NewClient(cfg.FormTimeout)
	if o.dryRun {
		gateway = printGateway{w: cmd.OutOrStdout()}
	}
	return usecase.NewSessionStore(gateway, endpoint, validation.New(), cfg.SessionTTL).NewSession(), nil
}

// report prints the toasts the submission produced.
func report(cmd *cobra.Command, toasts *usecase.Toaster) {
	for _, t := range toasts.Drain() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", t.Title, t.Description)
	}
}

func newSubmitCommand() *cobra.Command {
	opts := &submitOptions{}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send a form submission from the command line",
		Long: `Runs a contact or notify submission through the same validation and
gateway the website uses. Handy for checking FORM_ENDPOINT after a deploy.`,
	}
	cmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "form endpoint (default FORM_ENDPOINT)")
	cmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "print the encoded body instead of sending it")

	cmd.AddCommand(newSubmitContactCommand(opts))
	cmd.AddCommand(newSubmitNotifyCommand(opts))
	return cmd
}

func newSubmitContactCommand(opts *submitOptions) *cobra.Command {
	var form domain.ContactForm

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Submit the contact form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.session(cmd)
			if err != nil {
				return err
			}
			sess.Contact.SetForm(form)
			_, err = sess.Contact.Submit(cmd.Context())
			report(cmd, sess.Toasts)
			return err
		},
	}

	types := make([]string, 0, len(domain.ProjectTypes))
	for _, pt := range domain.ProjectTypes {
		types = append(types, string(pt))
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "your name")
	cmd.Flags().StringVar(&form.Email, "email", "", "reply address")
	cmd.Flags().StringVar(&form.Type, "type", "", "project type: "+strings.Join(types, ", "))
	cmd.Flags().StringVar(&form.Message, "message", "", "message body")
	return cmd
}

func newSubmitNotifyCommand(opts *submitOptions) *cobra.Command {
	var product, email string

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Subscribe an email to a product launch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.session(cmd)
			if err != nil {
				return err
			}
			if err := sess.Notify.Open(product); err != nil {
				return err
			}
			sess.Notify.SetEmail(email)
			_, err = sess.Notify.Submit(cmd.Context())
			report(cmd, sess.Toasts)
			return err
		},
	}

	cmd.Flags().StringVar(&product, "product", "", "product name, e.g. \"Web Helm\"")
	cmd.Flags().StringVar(&email, "email", "", "subscriber address")
	return cmd
}
