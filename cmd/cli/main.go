// Command frc is a CLI client for the flashrecall scheduler.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "github.com/and161185/flashrecall/api/flashrecall/v1"
)

// ---- config/token store ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "flashrecall")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "flashrecall")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tok string, exp time.Time) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(tokenPath(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenFile{AccessToken: tok, ExpiresAt: exp})
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errors.New("no valid token (run `frc token --save`)")
	}
	return tf.AccessToken, nil
}

// resolveToken prefers an explicit flag, then FRC_TOKEN, then the saved token.
func resolveToken(flagVal string) (string, error) {
	if flagVal != "" {
		return flagVal, nil
	}
	if v := os.Getenv("FRC_TOKEN"); v != "" {
		return v, nil
	}
	return loadToken()
}

// ---- grpc dial ----

type bearerCreds struct {
	token  string
	secure bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return b.secure }

type dialOpts struct {
	addr      string
	caPath    string
	insecure  bool // TLS without certificate verification
	plaintext bool // no TLS at all
}

func loadTLS(caPath string, skipVerify bool) (credentials.TransportCredentials, error) {
	if skipVerify {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

func dial(o dialOpts, bearer string) (*grpc.ClientConn, pb.SchedulerClient, error) {
	var opts []grpc.DialOption
	if o.plaintext {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	} else {
		creds, err := loadTLS(o.caPath, o.insecure)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, grpc.WithTransportCredentials(creds))
	}
	if bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer, secure: !o.plaintext}))
	}
	cc, err := grpc.NewClient(o.addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cc, pb.NewSchedulerClient(cc), nil
}

// ---- utils ----

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var protoOut = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true, EmitUnpopulated: true}

// printProto writes a response message as indented JSON with proto field names.
func printProto(w io.Writer, m proto.Message) error {
	b, err := protoOut.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func errorText(err error) string {
	if s, ok := status.FromError(err); ok {
		return fmt.Sprintf("rpc error: code=%s msg=%s", s.Code(), s.Message())
	}
	return err.Error()
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errorText(err))
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, `frc CLI
Usage:
  frc [--addr HOST:PORT] [--cacert file | --insecure | --plaintext] [--token JWT] <cmd> [args]

Commands:
  version
  token      --key <hs256 key> [--sub <uuid>] [--ttl 720h] [--save]
  decks
  deck-add   <name>
  card-add   --deck <uuid> --front <text> --back <text> [--exam] [--difficulty easy|medium|hard]
  card-edit  --id <uuid> --front <text> --back <text> [--exam] [--difficulty ...]
  card-rm    --id <uuid>
  due        [--deck <uuid>] [--limit N]
  rate       --id <uuid> --rating again|hard|good|easy|1..4
  history    --id <uuid>
  import     --deck <uuid> [--batch N] [--cache dir] <dir | file.md | git-url>
`)
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// main parses global flags and dispatches the subcommand.
func main() {
	fs := pflag.NewFlagSet("frc", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.Usage = usage
	addr := fs.String("addr", "localhost:8443", "server addr")
	caPath := fs.String("cacert", "", "CA cert (PEM)")
	skipVerify := fs.Bool("insecure", false, "skip cert verify (dev)")
	plaintext := fs.Bool("plaintext", false, "connect without TLS")
	tokenFlag := fs.String("token", "", "bearer token (default: $FRC_TOKEN, then the saved token)")
	timeout := fs.Duration("timeout", 30*time.Second, "request timeout")
	verbose := fs.Bool("verbose", false, "log importer progress")
	if err := fs.Parse(os.Args[1:]); err != nil || fs.NArg() < 1 {
		usage()
	}
	cmd, args := fs.Arg(0), fs.Args()[1:]

	switch cmd {
	case "version":
		fmt.Printf("frc %s (%s)\n", version, buildDate)
		return
	case "token":
		if err := runToken(os.Stdout, args, time.Now()); err != nil {
			fail(err)
		}
		return
	}

	run, ok := commands[cmd]
	if !ok {
		usage()
	}

	token, err := resolveToken(*tokenFlag)
	if err != nil {
		fail(err)
	}
	cc, cl, err := dial(dialOpts{addr: *addr, caPath: *caPath, insecure: *skipVerify, plaintext: *plaintext}, token)
	if err != nil {
		fail(err)
	}
	defer cc.Close()

	log := zap.NewNop()
	if *verbose {
		log, _ = zap.NewDevelopment()
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, &env{client: cl, out: os.Stdout, log: log}, args); err != nil {
		cc.Close()
		fail(err)
	}
}
