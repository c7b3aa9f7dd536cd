package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewCacheCmd creates the cache command with subcommands.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the artifact caches",
		Long:  "Show the cache root and which cache generations are present on disk",
	}

	cmd.AddCommand(
		newCacheDirCmd(),
		newCacheInfoCmd(),
	)

	return cmd
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Show the caches root path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			root, err := cfg.CachesRoot()
			if err != nil {
				return err
			}
			cmd.Println(root)
			return nil
		},
	}
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show per-generation cache information",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			root, err := cfg.CachesRoot()
			if err != nil {
				return err
			}

			cmd.Printf("Caches root: %s\n", root)
			for _, name := range []string{"filestore-3", "filestore-2", "artifacts-1", "legacy"} {
				dir := filepath.Join(root, name)
				size, files, err := dirSizeAndFiles(dir)
				if err != nil {
					return err
				}
				if files == 0 {
					if _, statErr := os.Stat(dir); os.IsNotExist(statErr) {
						cmd.Printf("  %-12s absent\n", name)
						continue
					}
				}
				cmd.Printf("  %-12s %d files, %d bytes\n", name, files, size)
			}
			return nil
		},
	}
}

// dirSizeAndFiles calculates directory size and file count.
func dirSizeAndFiles(dir string) (size int64, count int, err error) {
	if _, err = os.Stat(dir); os.IsNotExist(err) {
		return 0, 0, nil
	}

	err = filepath.Walk(dir, func(_ string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !info.IsDir() {
			size += info.Size()
			count++
		}
		return nil
	})
	return size, count, err
}
