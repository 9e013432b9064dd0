package cli

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tcfw/indyres/internal/config"
	"github.com/tcfw/indyres/internal/utils/logging"
	"github.com/tcfw/indyres/pkg/pool"
	"github.com/tcfw/indyres/pkg/resolver"
)

var (
	resolveCmd = &cobra.Command{
		Use:   "resolve <did>",
		Short: "resolve a did:indy DID into a DID document",
		Args:  cobra.ExactArgs(1),
		RunE:  runResolve,
	}

	dereferenceCmd = &cobra.Command{
		Use:   "dereference <did-url>",
		Short: "dereference a did:indy DID URL into ledger object content",
		Args:  cobra.ExactArgs(1),
		RunE:  runDereference,
	}
)

func runResolve(cmd *cobra.Command, args []string) error {
	r, err := newResolver()
	if err != nil {
		return err
	}

	out, err := r.Resolve(context.Background(), args[0])
	if err != nil {
		return errors.Wrap(err, "resolving")
	}

	fmt.Println(out)

	return nil
}

func runDereference(cmd *cobra.Command, args []string) error {
	r, err := newResolver()
	if err != nil {
		return err
	}

	out, err := r.Dereference(context.Background(), args[0])
	if err != nil {
		return errors.Wrap(err, "dereferencing")
	}

	fmt.Println(out)

	return nil
}

func newResolver() (*resolver.Resolver, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, errors.Wrap(err, "loading config")
	}

	gateway := pool.NewGatewayClient(cfg.Pool().Gateway, cfg.Pool().Timeout)

	return resolver.New(gateway, resolver.WithLogger(logging.Entry())), nil
}
