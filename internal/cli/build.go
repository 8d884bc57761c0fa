package cli

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	var f queryFlags
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an unsigned query and print its payload and hash",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			d, err := f.draft(cmd, cfg, time.Now())
			if err != nil {
				return err
			}
			q, err := d.Build()
			if err != nil {
				return err
			}
			payload, err := q.Bytes()
			if err != nil {
				return err
			}
			hash, err := q.Hash()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "kind:    %s\n", q.Kind())
			fmt.Fprintf(out, "hash:    %s\n", hex.EncodeToString(hash[:]))
			fmt.Fprintf(out, "payload: %s\n", hex.EncodeToString(payload))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
