package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/an-ttt/matrix-org-olm/internal/crypto"
)

func base64Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "b64",
		Short: "Encode or decode the canonical unpadded Base64 form",
	}
	cmd.AddCommand(base64EncodeCmd(), base64DecodeCmd())
	return cmd
}

func base64EncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode",
		Short: "Read raw bytes from stdin, write the unpadded Base64 encoding to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := io.ReadAll(bufio.NewReader(os.Stdin))
			if err != nil {
				return err
			}
			fmt.Println(crypto.EncodeToString(raw))
			return nil
		},
	}
}

func base64DecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "Read an unpadded Base64 string from stdin, write the raw bytes to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil && err != io.EOF {
				return err
			}
			trimmed := trimNewline(line)
			out, err := crypto.DecodeString(trimmed)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
