package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/relic/pkg/checksum"
)

// NewVerifyCmd creates the verify command.
func NewVerifyCmd() *cobra.Command {
	var (
		digest string
		algo   string
	)

	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Verify a file against a digest",
		Long: `Compute the file's digest and compare it against the given value, or
against the sibling digest file (<file>.sha1) when no value is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm := checksum.Algorithm(algo)
			switch algorithm {
			case checksum.SHA1, checksum.SHA256:
			default:
				return fmt.Errorf("unsupported digest algorithm %q", algo)
			}

			var ok bool
			var err error
			if digest != "" {
				ok, err = checksum.Verify(args[0], digest, algorithm)
			} else {
				ok, err = checksum.VerifyAgainstDigestFile(args[0], algorithm)
			}
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s: verification failed", args[0])
			}
			cmd.Printf("%s: OK\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&digest, "checksum", "", "expected hex digest")
	cmd.Flags().StringVar(&algo, "algorithm", string(checksum.SHA1), "digest algorithm (sha1 or sha256)")

	return cmd
}
