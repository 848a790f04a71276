package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mraflifirmansyah/arcanist/internal/cowfile"
	"github.com/mraflifirmansyah/arcanist/pkg/cow"
)

func init() {
	rootCmd.AddCommand(sayCmd)
	rootCmd.AddCommand(thinkCmd)
	for _, cmd := range []*cobra.Command{sayCmd, thinkCmd} {
		cmd.Flags().StringP("cowfile", "f", "", "cowfile name or path (default from config)")
		cmd.Flags().StringP("eyes", "e", "", "eye string, padded to 2 characters")
		cmd.Flags().StringP("tongue", "T", "", "tongue string, padded to 2 characters")
		cmd.Flags().String("mode", "", "preset face: borg, dead, greedy, paranoid, stoned, tired, wired, young")
	}
}

var sayCmd = &cobra.Command{
	Use:   "say [text...]",
	Short: "Render a speech balloon",
	Long:  "Render text in a speech balloon above a cow figure. Reads stdin when no text arguments are given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, args, cow.ActionSay)
	},
}

var thinkCmd = &cobra.Command{
	Use:   "think [text...]",
	Short: "Render a thought balloon",
	Long:  "Render text in a thought balloon above a cow figure. Reads stdin when no text arguments are given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, args, cow.ActionThink)
	},
}

func runRender(cmd *cobra.Command, args []string, action cow.Action) error {
	text, err := gatherText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	opts, err := renderOptions(cmd, action, text)
	if err != nil {
		return err
	}

	out, err := cow.New(opts...).Render()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// gatherText joins arguments, or falls back to stdin with the trailing
// newline stripped.
func gatherText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func renderOptions(cmd *cobra.Command, action cow.Action, text string) ([]cow.Option, error) {
	opts := []cow.Option{
		cow.WithAction(action),
		cow.WithText(text),
	}

	name, _ := cmd.Flags().GetString("cowfile")
	if name == "" {
		name = viper.GetString("cowfile")
	}
	selected, err := resolveCowfile(name)
	if err != nil {
		return nil, err
	}
	opts = append(opts, cow.WithTemplate(selected.Template))
	logger.Debug().Str("cowfile", selected.Name).Str("source", selected.Source).Msg("resolved cowfile")

	eyes := viper.GetString("eyes")
	tongue := viper.GetString("tongue")
	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		preset, ok := cow.ModeNamed(mode)
		if !ok {
			return nil, fmt.Errorf("unknown mode %q", mode)
		}
		eyes, tongue = preset.Eyes, preset.Tongue
	}
	if flag, _ := cmd.Flags().GetString("eyes"); flag != "" {
		eyes = flag
	}
	if flag, _ := cmd.Flags().GetString("tongue"); flag != "" {
		tongue = flag
	}
	opts = append(opts, cow.WithEyes(eyes), cow.WithTongue(tongue))

	return opts, nil
}

// resolveCowfile accepts either a name looked up on the search paths or a
// direct path to a .cow file.
func resolveCowfile(name string) (*cowfile.Cowfile, error) {
	if strings.ContainsRune(name, os.PathSeparator) || strings.HasSuffix(name, ".cow") {
		if _, err := os.Stat(name); err == nil {
			return cowfile.Load(name)
		}
	}
	return cowfile.Lookup(name)
}
