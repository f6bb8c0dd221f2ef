package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/keystore"
	"github.com/mrz1836/rcli/internal/source"
	"github.com/mrz1836/rcli/internal/text"
	"github.com/mrz1836/rcli/internal/tui"
)

// textFlags holds the flags shared by the text subcommands.
type textFlags struct {
	format crypto.Algorithm
	input  string
	key    string
	sig    string
	out    string
	force  bool
}

// signResult is the JSON output of text sign.
type signResult struct {
	Algorithm string `json:"algorithm"`
	Signature string `json:"signature"`
}

// verifyResult is the JSON output of text verify.
type verifyResult struct {
	Algorithm string `json:"algorithm"`
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
}

// generateResult is the JSON output of text generate.
type generateResult struct {
	Algorithm string   `json:"algorithm"`
	Files     []string `json:"files"`
}

// AddTextCommand adds the text command and its subcommands to the root command.
func AddTextCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Sign and verify text, generate signing keys",
		Long: `Sign and verify arbitrary message bytes.

Two formats are supported:
  blake3   BLAKE3 keyed hash with a shared 32-byte key (blake3.key)
  ed25519  Ed25519 signatures with a private seed (ed25519.sk) and public key (ed25519.pk)

Signatures are printed as URL-safe base64 without padding.`,
	}

	cmd.AddCommand(newTextSignCmd(), newTextVerifyCmd(), newTextGenerateCmd())
	root.AddCommand(cmd)
}

func addFormatFlag(cmd *cobra.Command, flags *textFlags) {
	flags.format = crypto.Blake3
	cmd.Flags().Var(&flags.format, "format", "signing format (blake3|ed25519); defaults to text.format from config")
}

func addMessageFlags(cmd *cobra.Command, flags *textFlags, keyUsage string) {
	addFormatFlag(cmd, flags)
	cmd.Flags().StringVarP(&flags.input, "input", "i", constants.StdinSentinel, "message file, or - for standard input")
	cmd.Flags().StringVarP(&flags.key, "key", "k", "", keyUsage)
}

func newTextSignCmd() *cobra.Command {
	flags := &textFlags{}

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message",
		Long: `Sign a message and print the signature.

Examples:
  rcli text sign -k blake3.key -i message.txt
  echo -n hello | rcli text sign --format ed25519 -k ed25519.sk`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextSign(cmd, flags)
		},
	}

	addMessageFlags(cmd, flags, "signing key file (default: the format's key in text.key_dir)")
	return cmd
}

func newTextVerifyCmd() *cobra.Command {
	flags := &textFlags{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a message signature",
		Long: `Verify a signature and print true or false.

A signature that does not match, or that is not valid base64 of the right
length, prints false and still exits 0. Only failures to run the check
(unreadable message or key, bad flags) exit non-zero.

Examples:
  rcli text verify -k blake3.key -i message.txt --sig <signature>
  rcli text verify --format ed25519 -k ed25519.pk -i message.txt --sig <signature>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextVerify(cmd, flags)
		},
	}

	addMessageFlags(cmd, flags, "verifying key file (default: the format's public or shared key in text.key_dir)")
	cmd.Flags().StringVar(&flags.sig, "sig", "", "signature to check")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}

func newTextGenerateCmd() *cobra.Command {
	flags := &textFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a signing key",
		Long: `Generate fresh key material and write it as raw bytes.

blake3 writes blake3.key; ed25519 writes ed25519.sk and ed25519.pk.
The output directory must already exist. Existing key files are never
replaced without confirmation or --force.

Examples:
  rcli text generate -o keys
  rcli text generate --format ed25519 -o keys --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextGenerate(cmd, flags)
		},
	}

	addFormatFlag(cmd, flags)
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output directory (default: text.key_dir from config)")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing key files without asking")
	return cmd
}

// resolveAlgorithm returns the --format flag when set, otherwise the configured format.
func resolveAlgorithm(cmd *cobra.Command, ec *ExecutionContext, flags *textFlags) (crypto.Algorithm, error) {
	if cmd.Flags().Changed("format") {
		return flags.format, nil
	}
	alg, err := crypto.ParseAlgorithm(ec.Config.Text.Format)
	if err != nil {
		return 0, errors.NewExitCode2Error(err)
	}
	return alg, nil
}

// defaultKeyPath picks the key a command uses when -k is not given. Signing
// and symmetric verification use the first key file; asymmetric verification
// uses the public key that follows it.
func defaultKeyPath(svc *text.Service, alg crypto.Algorithm, dir string, signing bool) string {
	paths := svc.KeyPaths(alg, dir)
	if len(paths) == 0 {
		return ""
	}
	if signing || alg.Symmetric() {
		return paths[0]
	}
	return paths[len(paths)-1]
}

func newTextService(cmd *cobra.Command, ec *ExecutionContext) (*text.Service, *source.Resolver) {
	resolver := source.NewResolver(afero.NewOsFs(), cmd.InOrStdin())
	return text.NewService(resolver, keystore.NewOS(), ec.Logger), resolver
}

// checkSources fails early, with a configuration error, when the message or
// key location does not name standard input or an existing file.
func checkSources(resolver *source.Resolver, input, keyPath string) error {
	for _, location := range []string{input, keyPath} {
		if err := resolver.Check(location); err != nil {
			return errors.NewExitCode2Error(err)
		}
	}
	return nil
}

func runTextSign(cmd *cobra.Command, flags *textFlags) error {
	ec := executionContext(cmd)
	alg, err := resolveAlgorithm(cmd, ec, flags)
	if err != nil {
		return err
	}

	svc, resolver := newTextService(cmd, ec)
	keyPath := flags.key
	if keyPath == "" {
		keyPath = defaultKeyPath(svc, alg, ec.Config.Text.KeyDir, true)
	}
	if err = checkSources(resolver, flags.input, keyPath); err != nil {
		return err
	}

	sig, err := svc.Sign(cmd.Context(), text.SignRequest{
		Input:     flags.input,
		KeyPath:   keyPath,
		Algorithm: alg,
	})
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), ec, sig, signResult{Algorithm: alg.String(), Signature: sig})
}

func runTextVerify(cmd *cobra.Command, flags *textFlags) error {
	ec := executionContext(cmd)
	alg, err := resolveAlgorithm(cmd, ec, flags)
	if err != nil {
		return err
	}

	svc, resolver := newTextService(cmd, ec)
	keyPath := flags.key
	if keyPath == "" {
		keyPath = defaultKeyPath(svc, alg, ec.Config.Text.KeyDir, false)
	}
	if err = checkSources(resolver, flags.input, keyPath); err != nil {
		return err
	}

	result, err := svc.Verify(cmd.Context(), text.VerifyRequest{
		Input:     flags.input,
		KeyPath:   keyPath,
		Algorithm: alg,
		Signature: flags.sig,
	})
	if err != nil {
		return err
	}

	out := verifyResult{Algorithm: alg.String(), Valid: result.Valid}
	if result.Reason != nil {
		out.Reason = errors.UserMessage(result.Reason)
	}
	return writeResult(cmd.OutOrStdout(), ec, fmt.Sprint(result.Valid), out)
}

func runTextGenerate(cmd *cobra.Command, flags *textFlags) error {
	ec := executionContext(cmd)
	alg, err := resolveAlgorithm(cmd, ec, flags)
	if err != nil {
		return err
	}

	dir := flags.out
	if dir == "" {
		dir = ec.Config.Text.KeyDir
	}

	svc, _ := newTextService(cmd, ec)
	force := flags.force
	if !force {
		force, err = checkOverwrite(cmd, svc, alg, dir, ec)
		if err != nil {
			return err
		}
	}

	paths, err := svc.Generate(cmd.Context(), text.GenerateRequest{
		Algorithm: alg,
		OutputDir: dir,
		Force:     force,
	})
	if err != nil {
		return err
	}

	if ec.JSON() {
		return tui.NewJSONOutput(cmd.OutOrStdout()).JSON(generateResult{Algorithm: alg.String(), Files: paths})
	}
	out := tui.NewOutput(cmd.OutOrStdout(), ec.OutputFormat)
	for _, p := range paths {
		out.Success("wrote " + p)
	}
	if !ec.Quiet {
		tui.NewOutput(cmd.ErrOrStderr(), ec.OutputFormat).Info("keep " + paths[0] + " private")
	}
	return nil
}

// checkOverwrite decides whether existing key files may be replaced.
// On an interactive terminal the user is asked; otherwise the answer is no
// and the caller fails with ErrKeyExists.
func checkOverwrite(cmd *cobra.Command, svc *text.Service, alg crypto.Algorithm, dir string, ec *ExecutionContext) (bool, error) {
	existing, err := svc.ExistingKeys(alg, dir)
	if err != nil || len(existing) == 0 {
		return false, err
	}

	if ec.JSON() || !terminalCheck() {
		return false, fmt.Errorf("%w: %v: %w", errors.ErrKeyExists, existing, errors.ErrNonInteractiveMode)
	}

	confirmed, err := confirmOverwrite(existing)
	if err != nil {
		return false, errors.Wrap(err, "confirmation prompt failed")
	}
	if !confirmed {
		return false, errors.ErrOperationCanceled
	}

	ec.Logger.Warn().Strs("files", existing).Msg("overwriting existing key files")
	tui.NewOutput(cmd.ErrOrStderr(), ec.OutputFormat).Warning("overwriting " + strings.Join(existing, ", "))
	return true, nil
}

// writeResult prints a command result: the plain line in text mode, v as
// JSON otherwise.
func writeResult(w io.Writer, ec *ExecutionContext, line string, v any) error {
	if ec.JSON() {
		return tui.NewJSONOutput(w).JSON(v)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
