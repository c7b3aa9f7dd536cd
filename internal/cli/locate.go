package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/relic/pkg/checksum"
	"github.com/glorpus-work/relic/pkg/logger"
	"github.com/glorpus-work/relic/pkg/model"
)

// NewLocateCmd creates the locate command.
func NewLocateCmd() *cobra.Command {
	var (
		branch     string
		artifact   string
		artType    string
		ext        string
		classifier string
		digest     string
		verify     bool
	)

	cmd := &cobra.Command{
		Use:   "locate <organisation> <module> <revision>",
		Short: "Find an artifact in the local caches",
		Long: `Search the current artifact store, the cache layouts of previous
releases and the local Maven repository for an artifact matching the given
coordinates, without touching the network.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := model.NewIdentity(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			id.Branch = branch
			id.Classifier = classifier
			if artifact != "" {
				id.Artifact = artifact
			}
			if artType != "" {
				id.Type = artType
				id.Ext = artType
			}
			if ext != "" {
				id.Ext = ext
			}
			return runLocate(cmd, id, digest, verify)
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "branch coordinate")
	cmd.Flags().StringVar(&artifact, "artifact", "", "artifact name (defaults to module)")
	cmd.Flags().StringVar(&artType, "type", "", "artifact type (default jar)")
	cmd.Flags().StringVar(&ext, "ext", "", "file extension (defaults to type)")
	cmd.Flags().StringVar(&classifier, "classifier", "", "classifier coordinate")
	cmd.Flags().StringVar(&digest, "checksum", "", "expected hex digest to verify the candidate against")
	cmd.Flags().BoolVar(&verify, "verify", false, "verify the candidate against its sibling digest file")

	return cmd
}

func runLocate(cmd *cobra.Command, id model.ArtifactIdentity, digest string, verify bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	chain, err := buildChain(cfg)
	if err != nil {
		return err
	}

	candidate, err := chain.Find(id)
	if err != nil {
		return err
	}
	if candidate == nil {
		return fmt.Errorf("no local artifact for %s", id)
	}

	if digest != "" || verify {
		var ok bool
		if digest != "" {
			ok, err = checksum.Verify(candidate.Path, digest, checksum.SHA1)
		} else {
			ok, err = checksum.VerifyAgainstDigestFile(candidate.Path, checksum.SHA1)
		}
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("local artifact %s failed verification", candidate.Path)
		}
		logger.Debugf("Verified %s", candidate.Path)
	}

	cmd.Println(candidate.Path)
	return nil
}
