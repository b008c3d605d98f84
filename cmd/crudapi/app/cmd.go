package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/ucsb-cs156/crudapi/internal/api/routes"
	"github.com/ucsb-cs156/crudapi/pkg/bslog"
	"github.com/ucsb-cs156/crudapi/pkg/rest/request/client"
)

const requestTimeout = 10 * time.Second

// Options are shared by the API client commands.
type Options struct {
	address string
	token   string
	retries int
	verbose bool
}

type kind struct {
	base     string
	keyParam string
}

var kinds = map[string]kind{
	"book":        {routes.BOOKS, "id"},
	"books":       {routes.BOOKS, "id"},
	"dog":         {routes.DOGS, "name"},
	"dogs":        {routes.DOGS, "name"},
	"restaurant":  {routes.RESTAURANTS, "id"},
	"restaurants": {routes.RESTAURANTS, "id"},
}

func New() *cobra.Command {
	opts := &Options{
		address: os.Getenv("CRUDAPI_SERVER"),
		token:   os.Getenv("CRUDAPI_TOKEN"),
	}
	if opts.address == "" {
		opts.address = "http://localhost:8080"
	}

	maincmd := &cobra.Command{
		Use:   "crudapi <cmd> <args>",
		Short: "serve and query the books, dogs and restaurants API",
		Long: `
This command runs the CRUD API server and offers a small client for it.
Client commands take the kinds book, dog and restaurant.
`,
		SilenceUsage:     true,
		TraverseChildren: true,
	}

	flags := maincmd.PersistentFlags()
	flags.StringVarP(&opts.address, "server", "s", opts.address, "API server address (CRUDAPI_SERVER)")
	flags.StringVarP(&opts.token, "token", "t", opts.token, "bearer token (CRUDAPI_TOKEN)")
	flags.IntVar(&opts.retries, "retries", 3, "retries on transport failures and 5xx answers")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every request")

	maincmd.AddCommand(NewServe())
	maincmd.AddCommand(NewToken())
	maincmd.AddCommand(NewHashPassword())
	maincmd.AddCommand(NewGet(opts))
	maincmd.AddCommand(NewCreate(opts))
	maincmd.AddCommand(NewUpdate(opts))
	maincmd.AddCommand(NewDelete(opts))
	return maincmd
}

// Resource returns an API client for the named kind.
func (o *Options) Resource(cmd *cobra.Command, name string) (*client.Resource, error) {
	k, ok := kinds[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", name)
	}

	env := "prod"
	if o.verbose {
		env = "dev"
	}
	logger := bslog.Setup(env, cmd.ErrOrStderr())

	c, err := client.NewClient(requestTimeout,
		client.WithRequestLogging(logger),
		client.WithRetry(o.retries, client.RetryClientWithRetryFunc(client.RetryOnServerError)),
	)
	if err != nil {
		return nil, err
	}
	return client.NewResource(c, o.address, k.base, k.keyParam, o.token), nil
}

func output(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// attributes parses name=value arguments.
func attributes(args []string) (map[string]string, error) {
	attrs := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid attribute %q, expected name=value", arg)
		}
		attrs[name] = value
	}
	return attrs, nil
}
