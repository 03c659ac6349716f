package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/an-ttt/matrix-org-olm/internal/crypto"
)

func genKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "genkey [x25519|ed25519]",
		Short:     "Generate a fresh key pair and print the public key",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"x25519", "ed25519"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "x25519":
				_, pub, err := crypto.GenerateX25519Random()
				if err != nil {
					return err
				}
				fmt.Println(crypto.EncodeToString(pub[:]))
				return nil
			case "ed25519":
				_, pub, err := crypto.GenerateEd25519Random()
				if err != nil {
					return err
				}
				fmt.Println(crypto.EncodeToString(pub[:]))
				return nil
			default:
				return fmt.Errorf("unknown key type %q (want x25519 or ed25519)", args[0])
			}
		},
	}
	return cmd
}
